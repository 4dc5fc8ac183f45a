// Released under an MIT license. See LICENSE.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func notebook(t *testing.T, text string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nb.hs")
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRunNotebook(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.Equal(t, 0, run([]string{notebook(t, "%hs\nx = 1\n%hs\nx + 1\n")}))
	assert.Equal(t, 1, run([]string{notebook(t, "%hs\nhead []\n%hs\n2\n")}))
	assert.Equal(t, 1, run([]string{filepath.Join(t.TempDir(), "missing.hs")}))
}

func TestRunCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.Equal(t, 0, run([]string{"-c", "1 + 1"}))
	assert.Equal(t, 1, run([]string{"-c", "1 `div` 0"}))
}

func TestRunConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "hsnb.toml")
	if err := os.WriteFile(path, []byte("[interpreter]\nmax_depth = 'deep'\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 1, run([]string{"-C", path, "-c", "1"}))
}
