// FILE: miniconf/usage_test.go
package miniconf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageLine(t *testing.T) {
	conf := New()
	conf.Option("output").ShortFlag("o").DefaultString("out.txt").Description("output path").Required(true)
	conf.Option("level").DefaultInt(1).Description("level")

	usage := conf.Usage()
	assert.True(t, strings.HasPrefix(usage, "usage: app"), usage)
	// Required options are bare, optional ones bracketed; a short flag is
	// preferred when present.
	assert.Contains(t, usage, "-o <string>")
	assert.NotContains(t, usage, "[-o <string>]")
	assert.Contains(t, usage, "[--level <int>]")
	// Hidden injected options stay out of the synopsis.
	assert.NotContains(t, usage, "help")
	assert.NotContains(t, usage, "config")
}

func TestHelpTable(t *testing.T) {
	conf := New()
	conf.SetDescription("help table test")
	conf.Option("verbose").ShortFlag("v").DefaultBool(false).Description("chatty output")
	conf.Option("secret").DefaultString("x").Description("internal").Hidden(true)

	help := conf.Help()
	assert.Contains(t, help, "help table test")
	assert.Contains(t, help, "--verbose")
	assert.Contains(t, help, "chatty output")
	assert.NotContains(t, help, "secret")
}

func TestPrintConfig(t *testing.T) {
	conf := demoConfig()
	require.True(t, conf.Parse([]string{"app", "--name", "printed"}))

	var b strings.Builder
	conf.PrintConfig(&b)
	out := b.String()

	assert.Contains(t, out, `name = "printed"`)
	assert.Contains(t, out, "count = 122")
	assert.NotContains(t, out, "config =")
}
