package store

import "errors"

// ErrNoPath indicates a YAMLStore was asked to write without a manifest path.
var ErrNoPath = errors.New("project config path not configured")
