package config

import (
	"log/slog"

	"github.com/randalmurphal/projectsettings/flatstore"
)

// DefaultLegacyKeys maps settings to their key in the deprecated ui.cfg file
// generated by older UI setup flows. Each call returns a fresh map.
func DefaultLegacyKeys() map[string]string {
	return map[string]string{
		"ui.server_name":   "SERVER_NAME",
		"ui.secret_key":    "SECRET_KEY",
		"ui.password_salt": "SECURITY_PASSWORD_SALT",
	}
}

// legacyNull is how ui.cfg, historically a Python file, spells "no value".
const legacyNull = "None"

// LegacyValue is the outcome of a legacy lookup. The zero value is absent.
type LegacyValue struct {
	Value   string
	Present bool
}

// LegacyAbsent is the absent legacy lookup.
var LegacyAbsent = LegacyValue{}

func legacyPresent(value string) LegacyValue {
	if value == legacyNull {
		return LegacyAbsent
	}
	return LegacyValue{Value: value, Present: true}
}

// LegacySource answers lookups against a deprecated flat store. It never
// fails: anything that prevents reading a value yields LegacyAbsent.
type LegacySource interface {
	Lookup(key string) LegacyValue
}

// LegacyFile reads a flat KEY=VALUE file on every lookup.
type LegacyFile struct {
	Path   string
	Logger *slog.Logger
}

// Lookup reads the file and returns the value stored under key.
func (f LegacyFile) Lookup(key string) LegacyValue {
	if f.Path == "" {
		return LegacyAbsent
	}

	values, err := flatstore.Read(f.Path)
	if err != nil {
		if f.Logger != nil {
			f.Logger.Debug("legacy config unavailable",
				slog.String("path", f.Path),
				slog.String("error", err.Error()))
		}
		return LegacyAbsent
	}

	value, ok := values[key]
	if !ok {
		return LegacyAbsent
	}
	return legacyPresent(value)
}

// LegacyMap is an in-memory LegacySource.
type LegacyMap map[string]string

// Lookup returns the value stored under key.
func (m LegacyMap) Lookup(key string) LegacyValue {
	value, ok := m[key]
	if !ok {
		return LegacyAbsent
	}
	return legacyPresent(value)
}
