package config

import (
	"sort"

	"github.com/randalmurphal/projectsettings/store"
)

// OverrideMap is an immutable set of forced setting values.
// The zero value is an empty map.
type OverrideMap struct {
	values map[string]any
}

// DefaultOverrides returns the process-wide base overrides, which are empty.
// Callers wanting shared overrides build their own map and pass it as
// Options.BaseOverrides. Each call returns a fresh map.
func DefaultOverrides() map[string]any {
	return map[string]any{}
}

// MergeOverrides composes override layers ordered weakest to strongest:
// a key in a later layer replaces the same key from an earlier one. Nil
// values are dropped, so absence always means "not overridden". The inputs
// are copied; mutating them afterwards has no effect on the result.
func MergeOverrides(layers ...map[string]any) OverrideMap {
	merged := make(map[string]any)
	for _, layer := range layers {
		for name, value := range layer {
			if value == nil {
				continue
			}
			merged[name] = store.Clone(value)
		}
	}
	return OverrideMap{values: merged}
}

// With returns a new map with other layered on top of m.
func (m OverrideMap) With(other map[string]any) OverrideMap {
	return MergeOverrides(m.values, other)
}

// Get returns a copy of the override for name.
func (m OverrideMap) Get(name string) (any, bool) {
	value, ok := m.values[name]
	if !ok {
		return nil, false
	}
	return store.Clone(value), true
}

// Len returns the number of overridden settings.
func (m OverrideMap) Len() int {
	return len(m.values)
}

// Keys returns the overridden setting names, sorted.
func (m OverrideMap) Keys() []string {
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the overrides as a plain map.
func (m OverrideMap) Map() map[string]any {
	out := make(map[string]any, len(m.values))
	for k, v := range m.values {
		out[k] = store.Clone(v)
	}
	return out
}
