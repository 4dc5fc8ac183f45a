// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive prompt's history.
package history

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Load passes the contents of the history file at path to read.
// A missing file is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return errors.Wrapf(err, "error opening history file %s", path)
	}

	defer f.Close()

	if _, err = read(f); err != nil {
		return errors.Wrapf(err, "error reading history file %s", path)
	}

	return nil
}

// Save replaces the history file at path with the output of write.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "error creating history file %s", path)
	}

	if _, err = write(f); err != nil {
		f.Close()

		return errors.Wrapf(err, "error writing history file %s", path)
	}

	return errors.Wrapf(f.Close(), "error closing history file %s", path)
}
