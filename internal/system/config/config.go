// Released under an MIT license. See LICENSE.

// Package config loads hsnb's settings from a TOML or YAML file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Interpreter holds the script runtime settings.
type Interpreter struct {
	MaxDepth   int `toml:"max_depth" yaml:"max_depth"`
	ParseCache int `toml:"parse_cache" yaml:"parse_cache"`
}

// Log holds the logging settings.
type Log struct {
	Level string `toml:"level" yaml:"level"`
}

// REPL holds the interactive settings.
type REPL struct {
	Color   bool   `toml:"color" yaml:"color"`
	History string `toml:"history" yaml:"history"`
	Prompt  string `toml:"prompt" yaml:"prompt"`
}

// T (config) holds all settings.
type T struct {
	Interpreter Interpreter `toml:"interpreter" yaml:"interpreter"`
	Log         Log         `toml:"log" yaml:"log"`
	REPL        REPL        `toml:"repl" yaml:"repl"`
}

// Default returns the settings used when no file overrides them.
func Default() *T {
	return &T{
		Interpreter: Interpreter{
			MaxDepth:   10000, //nolint:gomnd
			ParseCache: 64,    //nolint:gomnd
		},
		Log: Log{
			Level: "warning",
		},
		REPL: REPL{
			Color:   true,
			History: filepath.Join(os.Getenv("HOME"), ".hsnb_history"),
			Prompt:  "hs> ",
		},
	}
}

// DefaultPath returns the path of the file read when none is specified.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".hsnb.toml")
}

// Load reads the settings in path over the defaults. If path is empty the
// default path is used, if it exists.
func Load(path string) (*T, error) {
	c := Default()

	if path == "" {
		path = DefaultPath()
		if _, err := os.Stat(path); err != nil {
			return c, nil
		}
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading configuration file %s", path)
	}

	if err := Decode(path, contents, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Decode parses contents into c. The format is chosen by the extension
// of path. Files that are not YAML are TOML.
func Decode(path string, contents []byte, c *T) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(contents, c); err != nil {
			return errors.Wrapf(err, "error decoding configuration file %s", path)
		}
	default:
		if _, err := toml.Decode(string(contents), c); err != nil {
			return errors.Wrapf(err, "error decoding configuration file %s", path)
		}
	}

	return nil
}
