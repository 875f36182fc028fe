// File: miniconf/option.go
package miniconf

// Option describes one declared configuration option: its canonical flag,
// optional short flag, description, default value (whose kind fixes the
// option's declared type), and the required/hidden markers.
//
// Options are declared through Config.Option and configured by chaining:
//
//	cfg.Option("server.port").ShortFlag("p").DefaultInt(8080).Description("listen port")
//
// Setters return the same *Option and are idempotent; the last write wins.
// An Option handle is owned by a single declaring goroutine and is not safe
// for concurrent mutation.
type Option struct {
	cfg         *Config
	flag        string
	shortFlag   string
	description string
	defValue    Value
	required    bool
	hidden      bool
}

// Flag sets the canonical flag text. The registry key is fixed when the
// option is declared; this only updates the stored name.
func (o *Option) Flag(flag string) *Option {
	o.flag = flag
	return o
}

// ShortFlag sets the abbreviated alias, e.g. "p" for -p.
func (o *Option) ShortFlag(short string) *Option {
	o.shortFlag = short
	return o
}

// Description sets the human-readable description used in help output.
func (o *Option) Description(text string) *Option {
	o.description = text
	return o
}

// Default sets the default value. The default's kind establishes the
// option's declared type; once established, a default of a different kind
// is rejected and logged as a warning, leaving the option unchanged.
func (o *Option) Default(v Value) *Option {
	if o.defValue.Kind() != KindUnknown && v.Kind() != o.defValue.Kind() {
		o.cfg.mu.Lock()
		o.cfg.logf(LogWarning, o.flag, "default of kind %s rejected, option is declared as %s",
			v.Kind(), o.defValue.Kind())
		o.cfg.mu.Unlock()
		return o
	}
	o.defValue = v
	return o
}

// DefaultInt sets an integer default.
func (o *Option) DefaultInt(v int64) *Option {
	return o.Default(NewInt(v))
}

// DefaultFloat sets a floating-point default.
func (o *Option) DefaultFloat(v float64) *Option {
	return o.Default(NewFloat(v))
}

// DefaultBool sets a boolean default.
func (o *Option) DefaultBool(v bool) *Option {
	return o.Default(NewBool(v))
}

// DefaultString sets a string default.
func (o *Option) DefaultString(v string) *Option {
	return o.Default(NewString(v))
}

// Required marks whether the option must resolve to a value by the end of a
// parse.
func (o *Option) Required(required bool) *Option {
	o.required = required
	return o
}

// Hidden excludes the option from help output, definedness validation and
// exported configuration.
func (o *Option) Hidden(hidden bool) *Option {
	o.hidden = hidden
	return o
}

// GetFlag returns the canonical flag text.
func (o *Option) GetFlag() string { return o.flag }

// GetShortFlag returns the short flag, or "" when none is set.
func (o *Option) GetShortFlag() string { return o.shortFlag }

// GetDescription returns the description text.
func (o *Option) GetDescription() string { return o.description }

// GetDefault returns the default value.
func (o *Option) GetDefault() Value { return o.defValue }

// IsRequired reports whether the option is required.
func (o *Option) IsRequired() bool { return o.required }

// IsHidden reports whether the option is hidden.
func (o *Option) IsHidden() bool { return o.hidden }

// Type returns the option's declared kind, fixed by its default value.
func (o *Option) Type() Kind { return o.defValue.Kind() }
