// Released under an MIT license. See LICENSE.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 10000, c.Interpreter.MaxDepth)
	assert.Equal(t, 64, c.Interpreter.ParseCache)
	assert.Equal(t, "warning", c.Log.Level)
	assert.Equal(t, "hs> ", c.REPL.Prompt)
	assert.True(t, c.REPL.Color)
	assert.Equal(t, ".hsnb_history", filepath.Base(c.REPL.History))
}

func TestDecodeTOML(t *testing.T) {
	c := Default()

	err := Decode("hsnb.toml", []byte(`
[interpreter]
max_depth = 500

[repl]
prompt = "> "
color = false
`), c)
	require.NoError(t, err)

	assert.Equal(t, 500, c.Interpreter.MaxDepth)
	assert.Equal(t, 64, c.Interpreter.ParseCache)
	assert.Equal(t, "> ", c.REPL.Prompt)
	assert.False(t, c.REPL.Color)
}

func TestDecodeYAML(t *testing.T) {
	c := Default()

	err := Decode("hsnb.yaml", []byte("log:\n  level: debug\ninterpreter:\n  parse_cache: 8\n"), c)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, 8, c.Interpreter.ParseCache)
	assert.Equal(t, 10000, c.Interpreter.MaxDepth)
}

func TestDecodeError(t *testing.T) {
	err := Decode("bad.toml", []byte("[interpreter\n"), Default())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding configuration file bad.toml")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hsnb.yml")
	require.NoError(t, os.WriteFile(path, []byte("repl:\n  prompt: \"λ \"\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "λ ", c.REPL.Prompt)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.Error(t, err)
}

func TestLoadDefaultPathAbsent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, Default().REPL.Prompt, c.REPL.Prompt)
}
