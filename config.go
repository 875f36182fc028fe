package miniconf

import (
	"errors"
	"io"
	"os"
	"sort"
	"sync"
)

// Sentinel errors returned by file loading and value access.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrNotDeclared    = errors.New("option not declared")
)

// Names of the options every Config declares on construction. Both are
// hidden: excluded from help output, validation and exported configuration.
const (
	HelpFlag        = "help"
	HelpShortFlag   = "h"
	ConfigFlag      = "config"
	ConfigShortFlag = "cfg"
)

// Config holds the option registry, the resolved values and the diagnostic
// log. A zero Config is not usable; create instances with New.
type Config struct {
	mu      sync.RWMutex
	options map[string]*Option // keyed by canonical flag
	values  map[string]Value   // resolved configuration

	entries  []LogEntry
	logLevel LogLevel

	appName     string
	description string

	autoHelp   bool
	autoConfig bool
	helpOutput io.Writer
}

// New creates a Config and injects the two standard hidden options:
// --help/-h (bool, triggers help rendering after a successful scan) and
// --config/-cfg (string, names a config file merged before the CLI scan).
func New() *Config {
	c := &Config{
		options:    make(map[string]*Option),
		values:     make(map[string]Value),
		logLevel:   LogWarning,
		autoHelp:   true,
		autoConfig: true,
		helpOutput: os.Stdout,
	}
	c.Option(HelpFlag).ShortFlag(HelpShortFlag).
		DefaultBool(false).Description("display help message").Hidden(true)
	c.Option(ConfigFlag).ShortFlag(ConfigShortFlag).
		DefaultString("").Description("load a config file").Hidden(true)
	return c
}

// Option declares a configuration option keyed by its canonical flag and
// returns a handle for chained configuration. Declaring an existing flag
// returns the existing option, so declarations can be amended later.
// No validation happens here; inconsistencies surface in CheckFormat.
func (c *Config) Option(flag string) *Option {
	c.mu.Lock()
	defer c.mu.Unlock()

	if opt, ok := c.options[flag]; ok {
		return opt
	}
	opt := &Option{cfg: c, flag: flag}
	c.options[flag] = opt
	return opt
}

// Remove erases a declared option. It reports whether the flag was present.
func (c *Config) Remove(flag string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.options[flag]; !ok {
		return false
	}
	delete(c.options, flag)
	return true
}

// Find returns the option declared under the canonical flag, or nil.
func (c *Config) Find(flag string) *Option {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.options[flag]
}

// translateShortFlag maps a short flag to its canonical flag by scanning the
// declared options. When nothing matches, the input is returned unchanged so
// an unmatched short flag falls through to the normal unrecognized-flag
// path. Callers must hold the mutex.
func (c *Config) translateShortFlag(short string) string {
	for _, flag := range c.sortedFlags() {
		if c.options[flag].shortFlag == short {
			return flag
		}
	}
	return short
}

// sortedFlags returns the declared canonical flags in ascending order, for
// deterministic validation and help output. Callers must hold the mutex.
func (c *Config) sortedFlags() []string {
	flags := make([]string, 0, len(c.options))
	for flag := range c.options {
		flags = append(flags, flag)
	}
	sort.Strings(flags)
	return flags
}

// sortedKeys returns the resolved value keys in ascending order. Callers
// must hold the mutex.
func (c *Config) sortedKeys() []string {
	keys := make([]string, 0, len(c.values))
	for key := range c.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Contains reports whether a resolved value exists for the flag.
func (c *Config) Contains(flag string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.values[flag]
	return ok
}

// Get returns the resolved value for the flag.
func (c *Config) Get(flag string) (Value, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.values[flag]
	return v, ok
}

// Set stores a resolved value under the flag. The flag does not need to be
// declared; undeclared keys behave like stray options in exported output.
func (c *Config) Set(flag string, v Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[flag] = v
}

// GetInt returns the resolved integer value for the flag. It returns
// ErrNotDeclared when no value exists and ErrTypeMismatch on a kind
// mismatch.
func (c *Config) GetInt(flag string) (int64, error) {
	v, ok := c.Get(flag)
	if !ok {
		return 0, ErrNotDeclared
	}
	return v.Int()
}

// GetFloat returns the resolved floating-point value for the flag.
func (c *Config) GetFloat(flag string) (float64, error) {
	v, ok := c.Get(flag)
	if !ok {
		return 0, ErrNotDeclared
	}
	return v.Float()
}

// GetBool returns the resolved boolean value for the flag.
func (c *Config) GetBool(flag string) (bool, error) {
	v, ok := c.Get(flag)
	if !ok {
		return false, ErrNotDeclared
	}
	return v.Bool()
}

// GetString returns the resolved string value for the flag.
func (c *Config) GetString(flag string) (string, error) {
	v, ok := c.Get(flag)
	if !ok {
		return "", ErrNotDeclared
	}
	return v.String()
}

// SetDescription sets the program description shown in help output.
func (c *Config) SetDescription(text string) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.description = text
	return c
}

// SetLogLevel sets the minimum severity rendered by LogString and the abort
// threshold for Parse. LogNone disables aborting entirely; errors are still
// logged but ignored.
func (c *Config) SetLogLevel(level LogLevel) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logLevel = level
	return c
}

// EnableHelp controls whether a true help option triggers help rendering
// after a scan. The help option itself stays declared either way.
func (c *Config) EnableHelp(enabled bool) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoHelp = enabled
	return c
}

// EnableConfig controls whether Parse pre-scans the arguments for
// --config/-cfg and merges the named file before the CLI scan.
func (c *Config) EnableConfig(enabled bool) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoConfig = enabled
	return c
}

// SetHelpOutput redirects automatic help rendering, which defaults to
// standard output.
func (c *Config) SetHelpOutput(w io.Writer) *Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.helpOutput = w
	return c
}

// AppName returns the executable basename retained from the last Parse call.
func (c *Config) AppName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.appName
}
