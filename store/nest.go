package store

import (
	"fmt"
	"sort"
	"strings"
)

// Nest expands dotted keys into nested maps, so {"ui.server_name": "x"}
// and {"ui": {"server_name": "x"}} are equivalent. Keys that are already
// nested are merged; when both forms set the same leaf the dotted key wins.
// The input is never modified.
func Nest(config map[string]any) map[string]any {
	keys := make([]string, 0, len(config))
	for key := range config {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		di, dj := strings.Count(keys[i], "."), strings.Count(keys[j], ".")
		if di != dj {
			return di < dj
		}
		return keys[i] < keys[j]
	})

	out := make(map[string]any, len(config))
	for _, key := range keys {
		value := config[key]
		if m, ok := asMap(value); ok {
			value = Nest(m)
		} else {
			value = Clone(value)
		}
		setNested(out, strings.Split(key, "."), value)
	}
	return out
}

func setNested(dst map[string]any, path []string, value any) {
	for _, key := range path[:len(path)-1] {
		next, ok := asMap(dst[key])
		if !ok {
			next = make(map[string]any)
		}
		dst[key] = next
		dst = next
	}

	last := path[len(path)-1]
	if incoming, ok := value.(map[string]any); ok {
		if existing, ok := dst[last].(map[string]any); ok {
			for k, v := range incoming {
				setNested(existing, []string{k}, v)
			}
			return
		}
	}
	dst[last] = value
}

// Lookup walks path through nested maps. A present key holding an empty
// string, zero or nil is still reported as found.
func Lookup(config map[string]any, path []string) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}

	current := config
	for _, key := range path[:len(path)-1] {
		next, ok := asMap(current[key])
		if !ok {
			return nil, false
		}
		current = next
	}

	value, ok := current[path[len(path)-1]]
	return value, ok
}

// SetPath returns a copy of config with value stored at path.
func SetPath(config map[string]any, path []string, value any) map[string]any {
	out := Nest(config)
	if len(path) == 0 {
		return out
	}

	current := out
	for _, key := range path[:len(path)-1] {
		next, ok := asMap(current[key])
		if !ok {
			next = make(map[string]any)
		}
		current[key] = next
		current = next
	}
	current[path[len(path)-1]] = Clone(value)
	return out
}

// DeletePath returns a copy of config without the key at path. Maps left
// empty by the removal are pruned.
func DeletePath(config map[string]any, path []string) map[string]any {
	out := Nest(config)
	deletePath(out, path)
	return out
}

func deletePath(m map[string]any, path []string) {
	if len(path) == 0 {
		return
	}
	if len(path) == 1 {
		delete(m, path[0])
		return
	}

	child, ok := asMap(m[path[0]])
	if !ok {
		return
	}
	deletePath(child, path[1:])
	if len(child) == 0 {
		delete(m, path[0])
	}
}

// Clone deep-copies maps and slices so callers cannot mutate a snapshot.
func Clone(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = Clone(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprint(k)] = Clone(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = Clone(item)
		}
		return out
	default:
		return v
	}
}

func asMap(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	case map[any]any:
		m, _ := Clone(v).(map[string]any)
		return m, true
	default:
		return nil, false
	}
}
