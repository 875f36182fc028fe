// File: miniconf/parse.go
package miniconf

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Parse resolves the configuration from the argument vector, conventionally
// os.Args. The pipeline is: format check, defaults, optional config-file
// merge, left-to-right token scan, help trigger, post-parse validation.
// Later stages override earlier ones, so CLI tokens always win.
//
// Parse reports success; on failure the diagnostic log holds the details.
// It fails when a checkpoint reaches error severity and the configured log
// level permits aborting.
func (c *Config) Parse(args []string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(args) > 0 {
		c.appName = filepath.Base(args[0])
	}

	if worst := c.checkFormatLocked(); c.aborts(worst) {
		return false
	}

	// Seed every declared option with an independent copy of its default.
	for flag, opt := range c.options {
		c.values[flag] = opt.defValue
	}

	if c.autoConfig {
		c.mergeConfigFile(args)
	}

	c.scan(args)

	if c.autoHelp {
		if v, ok := c.values[HelpFlag]; ok {
			if wanted, err := v.Bool(); err == nil && wanted {
				c.printHelp(c.helpOutput)
			}
		}
	}

	return !c.aborts(c.validateLocked())
}

// aborts decides whether a checkpoint severity fails the parse. LogNone as
// the configured level suppresses aborting entirely.
func (c *Config) aborts(worst LogLevel) bool {
	return worst >= LogError && c.logLevel <= LogError
}

// mergeConfigFile pre-scans the tokens, without touching scan state, for a
// --config/-cfg flag immediately followed by a value token, and merges the
// referenced file. Running before the main scan keeps CLI precedence intact.
func (c *Config) mergeConfigFile(args []string) {
	for i := 1; i < len(args)-1; i++ {
		if args[i] != "--"+ConfigFlag && args[i] != "-"+ConfigShortFlag {
			continue
		}
		if classifyToken(args[i+1]) != tokenValue {
			continue
		}
		path := args[i+1]
		c.values[ConfigFlag] = NewString(path)
		if err := c.loadFileLocked(path); err != nil {
			c.logf(LogError, ConfigFlag, "cannot load config file %q: %v", path, err)
		} else {
			c.logf(LogInfo, ConfigFlag, "merged config file %q", path)
		}
		return
	}
}

// scan is the token state machine. It walks args[1:]; a flag token selects
// the pending option, the following value token is coerced to that option's
// declared kind and recorded.
func (c *Config) scan(args []string) {
	var pending *Option

	if len(args) == 0 {
		return
	}
	for _, token := range args[1:] {
		switch classifyToken(token) {
		case tokenUnknown:
			// The pending flag is deliberately kept; see the stale-flag
			// test pinning this behavior.
			c.logf(LogError, token, "invalid token")

		case tokenFlag, tokenShortFlag:
			if opt := c.resolveFlag(token); opt != nil {
				if opt.Type() == KindBool {
					// Presence implies true; a following value token
					// overwrites it.
					c.values[opt.flag] = NewBool(true)
				}
				pending = opt
			}

		case tokenValue:
			if pending == nil {
				c.logf(LogWarning, token, "unassociated value, ignored")
				continue
			}
			parsed := parseToken(token, pending.Type())
			if parsed.IsEmpty() {
				c.logf(LogWarning, pending.flag, "cannot parse %q as %s", token, pending.Type())
			} else {
				c.values[pending.flag] = parsed
				c.logf(LogInfo, pending.flag, "set to %s", parsed.Print())
			}
			pending = nil
		}
	}
}

// resolveFlag maps a flag token to its declared option. An unrecognized long
// flag degrades to a transient string-typed stray option keyed by the flag
// text; an unrecognized short flag is dropped.
func (c *Config) resolveFlag(token string) *Option {
	var name string
	long := strings.HasPrefix(token, "--")
	if long {
		name = strings.TrimPrefix(token, "--")
	} else {
		name = c.translateShortFlag(strings.TrimPrefix(token, "-"))
	}

	if opt, ok := c.options[name]; ok {
		return opt
	}
	if long {
		c.logf(LogWarning, token, "unrecognized option, capturing value as string")
		return &Option{cfg: c, flag: name, defValue: NewString("")}
	}
	c.logf(LogWarning, token, "unrecognized short flag, ignored")
	return nil
}

// parseToken coerces a raw value token to an option's declared kind. The
// boolean rule is deliberately permissive: only the false spellings parse to
// false, anything else means true. Failures return the empty value.
func parseToken(token string, kind Kind) Value {
	switch kind {
	case KindInt:
		if n, err := strconv.ParseInt(token, 10, 64); err == nil {
			return NewInt(n)
		}
		return Unknown()
	case KindFloat:
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return NewFloat(f)
		}
		return Unknown()
	case KindBool:
		switch strings.ToLower(token) {
		case "false", "f":
			return NewBool(false)
		}
		return NewBool(true)
	case KindString:
		return NewString(token)
	}
	return Unknown()
}
