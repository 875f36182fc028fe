// FILE: miniconf/config_test.go
package miniconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInjectedOptions pins the constructor contract: every Config starts
// with hidden help and config options.
func TestInjectedOptions(t *testing.T) {
	conf := New()

	help := conf.Find(HelpFlag)
	require.NotNil(t, help)
	assert.Equal(t, HelpShortFlag, help.GetShortFlag())
	assert.Equal(t, KindBool, help.Type())
	assert.True(t, help.IsHidden())

	cfg := conf.Find(ConfigFlag)
	require.NotNil(t, cfg)
	assert.Equal(t, ConfigShortFlag, cfg.GetShortFlag())
	assert.Equal(t, KindString, cfg.Type())
	assert.True(t, cfg.IsHidden())
}

func TestTranslateShortFlag(t *testing.T) {
	conf := New()
	conf.Option("verbose").ShortFlag("v").DefaultBool(false)

	assert.Equal(t, "verbose", conf.translateShortFlag("v"))
	assert.Equal(t, "config", conf.translateShortFlag("cfg"))
	// No match: the input comes back unchanged so the caller can fail it
	// cleanly as an unrecognized flag.
	assert.Equal(t, "zz", conf.translateShortFlag("zz"))
}

func TestGetSetValues(t *testing.T) {
	conf := New()

	_, ok := conf.Get("missing")
	assert.False(t, ok)
	assert.False(t, conf.Contains("missing"))

	conf.Set("stray", NewFloat(1.5))
	assert.True(t, conf.Contains("stray"))

	f, err := conf.GetFloat("stray")
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	_, err = conf.GetInt("stray")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = conf.GetString("missing")
	assert.ErrorIs(t, err, ErrNotDeclared)
	_, err = conf.GetBool("missing")
	assert.ErrorIs(t, err, ErrNotDeclared)
}

func TestChainedSetters(t *testing.T) {
	conf := New().
		SetDescription("demo").
		SetLogLevel(LogInfo).
		EnableHelp(false).
		EnableConfig(false)

	assert.Equal(t, "demo", conf.description)
	assert.Equal(t, LogInfo, conf.logLevel)
	assert.False(t, conf.autoHelp)
	assert.False(t, conf.autoConfig)
}
