package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteUsage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteUsage(&buf, "peacock"))

	have := buf.String()
	assert.True(t, strings.HasPrefix(have, "Usage: peacock [mode] [input_file]"), have)

	for _, want := range []string{
		"com", "lex", "parse",
		"--target", "wasm32", "pvm", "ir",
		"--out", DefaultOutput,
		"peacock help",
	} {
		assert.Contains(t, have, want)
	}
}

func TestUsageDescriptions(t *testing.T) {
	for _, name := range Modes() {
		m, ok := ModeByName(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, modeHelp[m.Stage()], "mode %s has no description", name)
	}

	for _, name := range Targets() {
		tt, ok := TargetByName(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, targetHelp[tt], "target %s has no description", name)
	}
}

func TestWriteUsageExtensions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteUsage(&buf, "peacock"))

	have := buf.String()
	assert.Contains(t, have, "usually named *.wat")
	assert.Contains(t, have, "usually named *.pvm")
	assert.Contains(t, have, "usually named *.ir")
	assert.Contains(t, have, "`--out myfile.wat`")
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteUsageError(t *testing.T) {
	err := WriteUsage(failWriter{}, "peacock")
	require.Error(t, err)
	assert.Equal(t, "usage: disk full", err.Error())
}
