// Package flatstore reads flat KEY=VALUE files such as a project's .env file
// or the deprecated ui.cfg written by older setup flows.
//
// Values are returned as untyped strings; no interpolation against the
// process environment is performed.
package flatstore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Read parses the file at path into a key/value map.
//
// A missing file yields an error wrapping ErrNotFound; content godotenv
// cannot parse yields an error wrapping ErrMalformed.
func Read(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	values, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}

// Parse reads KEY=VALUE pairs from r.
func Parse(r io.Reader) (map[string]string, error) {
	values, err := godotenv.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

// ReadOptional is like Read but treats a missing file as empty.
func ReadOptional(path string) (map[string]string, error) {
	values, err := Read(path)
	if errors.Is(err, ErrNotFound) {
		return map[string]string{}, nil
	}
	return values, err
}
