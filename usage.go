// File: miniconf/usage.go
package miniconf

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Usage returns the one-line invocation synopsis, e.g.
//
//	usage: app [--verbose <bool>] --output <string>
//
// Optional options are bracketed; hidden options are left out.
func (c *Config) Usage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.usageLine()
}

// PrintUsage writes the synopsis to w.
func (c *Config) PrintUsage(w io.Writer) {
	fmt.Fprintln(w, c.Usage())
}

func (c *Config) usageLine() string {
	name := c.appName
	if name == "" {
		name = "app"
	}

	var b strings.Builder
	b.WriteString("usage: ")
	b.WriteString(name)
	for _, flag := range c.sortedFlags() {
		opt := c.options[flag]
		if opt.hidden {
			continue
		}
		form := "--" + flag
		if opt.shortFlag != "" {
			form = "-" + opt.shortFlag
		}
		form = fmt.Sprintf("%s <%s>", form, opt.Type())
		if !opt.required {
			form = "[" + form + "]"
		}
		b.WriteByte(' ')
		b.WriteString(form)
	}
	return b.String()
}

// Help returns the full help text: the program description, the synopsis and
// one table row per non-hidden option.
func (c *Config) Help() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var b strings.Builder
	c.printHelp(&b)
	return b.String()
}

// PrintHelp writes the full help text to w.
func (c *Config) PrintHelp(w io.Writer) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	c.printHelp(w)
}

// printHelp renders the help text. Callers must hold the mutex.
func (c *Config) printHelp(w io.Writer) {
	if c.description != "" {
		fmt.Fprintln(w, c.description)
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, c.usageLine())
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	for _, flag := range c.sortedFlags() {
		opt := c.options[flag]
		if opt.hidden {
			continue
		}
		short := ""
		if opt.shortFlag != "" {
			short = "-" + opt.shortFlag
		}
		required := ""
		if opt.required {
			required = "(required)"
		}
		fmt.Fprintf(tw, "  --%s\t%s\t%s\t%s\t%s %s\n",
			flag, short, opt.Type(), opt.defValue.Print(), opt.description, required)
	}
	tw.Flush()
}

// PrintConfig dumps the resolved values, one "flag = value" line per key in
// sorted order, hidden options excluded.
func (c *Config) PrintConfig(w io.Writer) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, key := range c.sortedKeys() {
		if opt, ok := c.options[key]; ok && opt.hidden {
			continue
		}
		fmt.Fprintf(w, "%s = %s\n", key, c.values[key].Print())
	}
}
