package context

import "errors"

// Context lookup errors
var (
	// ErrNoSettings indicates no settings service was injected.
	ErrNoSettings = errors.New("settings service not found in context")
)
