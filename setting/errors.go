package setting

import "errors"

// Registry construction errors
var (
	// ErrEmptyName indicates a definition without a name.
	ErrEmptyName = errors.New("setting name is empty")

	// ErrDuplicateSetting indicates two definitions share a name.
	ErrDuplicateSetting = errors.New("duplicate setting")
)
