package setting

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Setting describes a single named project setting.
type Setting struct {
	// Name uniquely identifies the setting, e.g. "ui.server_name".
	Name string `yaml:"name"`

	// Env is the primary environment variable for the setting.
	Env string `yaml:"env,omitempty"`

	// EnvAliases lists additional environment variables, checked after Env.
	EnvAliases []string `yaml:"env_aliases,omitempty"`

	// Path is the nested path used in the structured project config.
	// Defaults to Name split on ".".
	Path []string `yaml:"path,omitempty"`

	// Value is the declared default.
	Value any `yaml:"value,omitempty"`

	// Kind is informational (string, boolean, integer, password...).
	Kind string `yaml:"kind,omitempty"`

	Label       string `yaml:"label,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// NestedPath returns the path of the setting in the structured config.
func (s Setting) NestedPath() []string {
	if len(s.Path) > 0 {
		out := make([]string, len(s.Path))
		copy(out, s.Path)
		return out
	}
	return strings.Split(s.Name, ".")
}

// EnvKeys returns the environment variable names to probe, in order.
//
// The declared Env comes first, then EnvAliases, then the conventional
// PREFIX_SETTING_NAME form when prefix is non-empty. Duplicates are dropped.
func (s Setting) EnvKeys(prefix string) []string {
	keys := make([]string, 0, len(s.EnvAliases)+2)
	seen := make(map[string]struct{}, cap(keys))
	add := func(key string) {
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	add(s.Env)
	for _, alias := range s.EnvAliases {
		add(alias)
	}
	if prefix != "" {
		add(EnvName(prefix, s.Name))
	}
	return keys
}

// EnvName builds the conventional environment variable name for a setting.
// EnvName("meltano", "ui.server_name") == "MELTANO_UI_SERVER_NAME".
func EnvName(prefix, name string) string {
	replacer := strings.NewReplacer(".", "_", "-", "_")
	key := replacer.Replace(name)
	if prefix != "" {
		key = strings.TrimSuffix(prefix, "_") + "_" + key
	}
	return strings.ToUpper(key)
}

// DisplayLabel returns Label, or a title-cased label derived from the
// last element of the nested path.
func (s Setting) DisplayLabel() string {
	if s.Label != "" {
		return s.Label
	}
	path := s.NestedPath()
	last := strings.ReplaceAll(path[len(path)-1], "_", " ")
	return cases.Title(language.English).String(last)
}
