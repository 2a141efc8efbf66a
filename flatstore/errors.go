package flatstore

import "errors"

var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("flat store not found")

	// ErrMalformed indicates the file could not be parsed.
	ErrMalformed = errors.New("malformed flat store")
)
