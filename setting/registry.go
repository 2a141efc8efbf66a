package setting

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed settings.yml
var defaultDefinitions []byte

// Registry supplies the known setting definitions.
type Registry interface {
	// Definitions returns all settings in declaration order.
	Definitions() []Setting

	// Find returns the setting with the given name.
	Find(name string) (Setting, bool)
}

// StaticRegistry is an immutable, in-memory Registry.
type StaticRegistry struct {
	ordered []Setting
	byName  map[string]int
}

// NewStaticRegistry builds a registry from definitions. Names must be
// non-empty and unique.
func NewStaticRegistry(defs ...Setting) (*StaticRegistry, error) {
	r := &StaticRegistry{
		ordered: make([]Setting, 0, len(defs)),
		byName:  make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		if def.Name == "" {
			return nil, ErrEmptyName
		}
		if _, exists := r.byName[def.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSetting, def.Name)
		}
		r.byName[def.Name] = len(r.ordered)
		r.ordered = append(r.ordered, def)
	}
	return r, nil
}

// MustStaticRegistry is like NewStaticRegistry but panics on error.
// Use it for package-level registries built from literals.
func MustStaticRegistry(defs ...Setting) *StaticRegistry {
	r, err := NewStaticRegistry(defs...)
	if err != nil {
		panic("setting: " + err.Error())
	}
	return r
}

// Definitions returns a copy of the ordered definitions.
func (r *StaticRegistry) Definitions() []Setting {
	out := make([]Setting, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Find returns the setting with the given name.
func (r *StaticRegistry) Find(name string) (Setting, bool) {
	idx, ok := r.byName[name]
	if !ok {
		return Setting{}, false
	}
	return r.ordered[idx], true
}

// Names returns the setting names in declaration order.
func (r *StaticRegistry) Names() []string {
	names := make([]string, len(r.ordered))
	for i, def := range r.ordered {
		names[i] = def.Name
	}
	return names
}

type definitionsFile struct {
	Settings []Setting `yaml:"settings"`
}

// LoadDefinitions parses a YAML document of the form
//
//	settings:
//	  - name: ui.server_name
//	    env: MELTANO_UI_SERVER_NAME
//	    value: localhost
func LoadDefinitions(r io.Reader) (*StaticRegistry, error) {
	var file definitionsFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return NewStaticRegistry()
		}
		return nil, fmt.Errorf("parse setting definitions: %w", err)
	}
	return NewStaticRegistry(file.Settings...)
}

// LoadFile reads setting definitions from a YAML file.
func LoadFile(path string) (*StaticRegistry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open setting definitions: %w", err)
	}
	defer f.Close()

	return LoadDefinitions(f)
}

// Defaults returns the built-in project setting definitions.
func Defaults() *StaticRegistry {
	var file definitionsFile
	if err := yaml.Unmarshal(defaultDefinitions, &file); err != nil {
		panic("setting: invalid embedded definitions: " + err.Error())
	}
	return MustStaticRegistry(file.Settings...)
}
