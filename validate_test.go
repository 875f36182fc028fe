// FILE: miniconf/validate_test.go
package miniconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckFormat(t *testing.T) {
	t.Run("CleanSchema", func(t *testing.T) {
		conf := New()
		conf.SetDescription("clean")
		conf.Option("a").ShortFlag("a").DefaultInt(1).Description("a")
		assert.Equal(t, LogInfo, conf.CheckFormat())
	})

	t.Run("ShortFlagCollision", func(t *testing.T) {
		conf := New()
		conf.SetDescription("collision")
		conf.Option("first").ShortFlag("x").DefaultInt(1).Description("a")
		conf.Option("second").ShortFlag("x").DefaultInt(2).Description("b")

		assert.Equal(t, LogError, conf.CheckFormat())

		var errored bool
		for _, e := range conf.Log() {
			if e.Level == LogError && e.Flag == "first" {
				errored = true
			}
		}
		assert.True(t, errored)
	})

	t.Run("OptionalWithoutDefault", func(t *testing.T) {
		conf := New()
		conf.SetDescription("no default")
		conf.Option("loose").ShortFlag("l").Description("no default set")
		assert.Equal(t, LogError, conf.CheckFormat())
	})

	t.Run("MissingDescriptionWarns", func(t *testing.T) {
		conf := New()
		conf.SetDescription("warn")
		conf.Option("quiet").ShortFlag("q").DefaultBool(false)
		assert.Equal(t, LogWarning, conf.CheckFormat())
	})

	t.Run("MissingShortFlagWarns", func(t *testing.T) {
		conf := New()
		conf.SetDescription("warn")
		conf.Option("long-only").DefaultBool(false).Description("d")
		assert.Equal(t, LogWarning, conf.CheckFormat())
	})

	t.Run("UnsetProgramDescriptionWarns", func(t *testing.T) {
		conf := New()
		conf.Option("a").ShortFlag("a").DefaultInt(1).Description("a")
		assert.Equal(t, LogWarning, conf.CheckFormat())
	})

	t.Run("FormatErrorAbortsParse", func(t *testing.T) {
		conf := New()
		conf.SetDescription("abort")
		conf.Option("loose").ShortFlag("l").Description("no default")
		assert.False(t, conf.Parse([]string{"app"}))
	})
}

func TestValidate(t *testing.T) {
	t.Run("PurgesHiddenOptions", func(t *testing.T) {
		conf := New()
		conf.Set(HelpFlag, NewBool(true))
		conf.Set(ConfigFlag, NewString("x.json"))

		assert.Equal(t, LogInfo, conf.Validate())
		assert.False(t, conf.Contains(HelpFlag))
		assert.False(t, conf.Contains(ConfigFlag))
	})

	t.Run("EmptyValueIsError", func(t *testing.T) {
		conf := New()
		conf.Set("ghost", Unknown())
		assert.Equal(t, LogError, conf.Validate())
	})

	t.Run("UndefinedOptionIsError", func(t *testing.T) {
		conf := New()
		conf.Option("needed").ShortFlag("n").DefaultInt(1).Description("d")
		// No parse ran, so nothing resolved.
		assert.Equal(t, LogError, conf.Validate())
	})

	t.Run("HiddenNeverUndefined", func(t *testing.T) {
		conf := New()
		require.Equal(t, LogInfo, conf.Validate())
	})
}
