// File: miniconf/validate.go
package miniconf

// CheckFormat verifies the declared schema before any tokens are consumed:
// every optional option needs a default value, short flags must not collide,
// and missing descriptions or short flags are worth a warning. The worst
// severity seen is returned; details go to the diagnostic log.
func (c *Config) CheckFormat() LogLevel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkFormatLocked()
}

func (c *Config) checkFormatLocked() LogLevel {
	worst := LogInfo
	record := func(level LogLevel, flag, format string, args ...any) {
		c.logf(level, flag, format, args...)
		if level > worst {
			worst = level
		}
	}

	if c.description == "" {
		record(LogWarning, "", "program description is not set")
	}

	flags := c.sortedFlags()
	for _, flag := range flags {
		opt := c.options[flag]

		if !opt.required && opt.defValue.IsEmpty() {
			record(LogError, flag, "optional option has no default value")
		}
		if opt.description == "" {
			record(LogWarning, flag, "option has no description")
		}
		if opt.shortFlag == "" {
			record(LogWarning, flag, "option has no short flag")
			continue
		}
		for _, other := range flags {
			if other != flag && c.options[other].shortFlag == opt.shortFlag {
				record(LogError, flag, "short flag %q collides with option %q", opt.shortFlag, other)
			}
		}
	}
	return worst
}

// Validate checks the resolved values after a parse: hidden options are
// purged first, then every remaining value must be non-empty and every
// non-hidden declared option must have resolved to something. The worst
// severity seen is returned.
func (c *Config) Validate() LogLevel {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validateLocked()
}

func (c *Config) validateLocked() LogLevel {
	worst := LogInfo
	record := func(level LogLevel, flag, format string, args ...any) {
		c.logf(level, flag, format, args...)
		if level > worst {
			worst = level
		}
	}

	// Hidden options never appear in the exported configuration and never
	// count as undefined.
	for flag, opt := range c.options {
		if opt.hidden {
			delete(c.values, flag)
		}
	}

	for _, key := range c.sortedKeys() {
		if c.values[key].IsEmpty() {
			record(LogError, key, "resolved value is empty")
		}
	}

	for _, flag := range c.sortedFlags() {
		if c.options[flag].hidden {
			continue
		}
		if _, ok := c.values[flag]; !ok {
			record(LogError, flag, "option is not defined")
		}
	}
	return worst
}
