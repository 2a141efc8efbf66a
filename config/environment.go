package config

import (
	"sort"
	"strings"
)

// Environment is an immutable snapshot of environment-style variables.
type Environment struct {
	values map[string]string
}

// NewEnvironment layers variable maps ordered weakest to strongest. The
// service builds it from the project .env file, then the process
// environment, then any explicit environment override.
func NewEnvironment(layers ...map[string]string) Environment {
	values := make(map[string]string)
	for _, layer := range layers {
		for k, v := range layer {
			values[k] = v
		}
	}
	return Environment{values: values}
}

// ParseEnviron converts KEY=VALUE pairs as returned by os.Environ.
func ParseEnviron(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

// Lookup returns the value of key. An empty value is still present.
func (e Environment) Lookup(key string) (string, bool) {
	value, ok := e.values[key]
	return value, ok
}

// First returns the first of keys present in the snapshot.
func (e Environment) First(keys []string) (key, value string, ok bool) {
	for _, k := range keys {
		if v, found := e.values[k]; found {
			return k, v, true
		}
	}
	return "", "", false
}

// Len returns the number of variables.
func (e Environment) Len() int {
	return len(e.values)
}

// Keys returns the variable names, sorted.
func (e Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
