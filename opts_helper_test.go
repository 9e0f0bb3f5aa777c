package opts

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrExitSuccess(t *testing.T) {
	o := New("testapp")
	assert.NoError(t, o.Add("v,verbose", "", nil))

	exitCalled := false
	SetExitFunc(func(code int) { exitCalled = true })
	defer SetExitFunc(os.Exit)

	r := o.ParseOrExit([]string{"testapp", "-v"})
	assert.False(t, exitCalled)
	assert.NotNil(t, r)
	assert.True(t, r.Has("verbose"))
}

func TestPrintHelpUsesStdoutWriter(t *testing.T) {
	t.Setenv("OPTS_COLOR", "never")

	o := New("testapp")
	assert.NoError(t, o.Add("v,verbose", "Enable verbose output", nil))

	var stdout bytes.Buffer
	SetStdoutWriter(&stdout)
	defer SetStdoutWriter(os.Stdout)

	o.PrintHelp()
	assert.Equal(t, o.Help(), stdout.String())
}

func TestParseOrExitFailure(t *testing.T) {
	t.Setenv("OPTS_COLOR", "never")

	o := New("testapp")
	assert.NoError(t, o.Add("v,verbose", "Enable verbose output", nil))

	var stderr bytes.Buffer
	SetStderrWriter(&stderr)
	defer SetStderrWriter(os.Stderr)

	var exitCalled bool
	var exitCode int
	SetExitFunc(func(code int) {
		exitCalled = true
		exitCode = code
	})
	defer SetExitFunc(os.Exit)

	r := o.ParseOrExit([]string{"testapp", "--nope"})

	assert.Nil(t, r)
	assert.True(t, exitCalled)
	assert.Equal(t, 1, exitCode)

	expected := `option "nope" does not exist

Usage:
  testapp [OPTION...]

  -v, --verbose  Enable verbose output

`
	assert.Equal(t, expected, stderr.String())
}
