package setting

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSetting_NestedPath(t *testing.T) {
	tests := []struct {
		name    string
		setting Setting
		want    []string
	}{
		{"flat", Setting{Name: "project_id"}, []string{"project_id"}},
		{"dotted", Setting{Name: "ui.server_name"}, []string{"ui", "server_name"}},
		{"explicit", Setting{Name: "ui.x", Path: []string{"web", "x"}}, []string{"web", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.setting.NestedPath(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NestedPath() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetting_NestedPathReturnsCopy(t *testing.T) {
	s := Setting{Name: "x", Path: []string{"a", "b"}}
	path := s.NestedPath()
	path[0] = "mutated"

	if s.Path[0] != "a" {
		t.Errorf("Path[0] = %q, want %q", s.Path[0], "a")
	}
}

func TestSetting_EnvKeys(t *testing.T) {
	tests := []struct {
		name    string
		setting Setting
		prefix  string
		want    []string
	}{
		{
			name:    "declared only",
			setting: Setting{Name: "x", Env: "X"},
			want:    []string{"X"},
		},
		{
			name:    "declared then aliases then derived",
			setting: Setting{Name: "ui.server_name", Env: "SERVER", EnvAliases: []string{"OLD_SERVER"}},
			prefix:  "meltano",
			want:    []string{"SERVER", "OLD_SERVER", "MELTANO_UI_SERVER_NAME"},
		},
		{
			name:    "derived duplicate dropped",
			setting: Setting{Name: "ui.server_name", Env: "MELTANO_UI_SERVER_NAME"},
			prefix:  "MELTANO",
			want:    []string{"MELTANO_UI_SERVER_NAME"},
		},
		{
			name:    "no env and no prefix",
			setting: Setting{Name: "x"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.setting.EnvKeys(tt.prefix)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EnvKeys(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestEnvName(t *testing.T) {
	tests := []struct {
		prefix, name, want string
	}{
		{"meltano", "ui.server_name", "MELTANO_UI_SERVER_NAME"},
		{"MELTANO_", "database_uri", "MELTANO_DATABASE_URI"},
		{"", "ui.bind-port", "UI_BIND_PORT"},
	}

	for _, tt := range tests {
		if got := EnvName(tt.prefix, tt.name); got != tt.want {
			t.Errorf("EnvName(%q, %q) = %q, want %q", tt.prefix, tt.name, got, tt.want)
		}
	}
}

func TestSetting_DisplayLabel(t *testing.T) {
	if got := (Setting{Name: "ui.bind_port"}).DisplayLabel(); got != "Bind Port" {
		t.Errorf("DisplayLabel() = %q, want %q", got, "Bind Port")
	}
	if got := (Setting{Name: "x", Label: "Custom"}).DisplayLabel(); got != "Custom" {
		t.Errorf("DisplayLabel() = %q, want %q", got, "Custom")
	}
}

func TestNewStaticRegistry(t *testing.T) {
	r, err := NewStaticRegistry(
		Setting{Name: "b"},
		Setting{Name: "a", Value: "1"},
	)
	if err != nil {
		t.Fatalf("NewStaticRegistry() error = %v", err)
	}

	if got := r.Names(); !reflect.DeepEqual(got, []string{"b", "a"}) {
		t.Errorf("Names() = %v, want declaration order", got)
	}

	def, ok := r.Find("a")
	if !ok {
		t.Fatal("Find(a) not found")
	}
	if def.Value != "1" {
		t.Errorf("Value = %v, want 1", def.Value)
	}

	if _, ok := r.Find("missing"); ok {
		t.Error("Find(missing) should not be found")
	}
}

func TestNewStaticRegistry_Errors(t *testing.T) {
	if _, err := NewStaticRegistry(Setting{}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("error = %v, want ErrEmptyName", err)
	}
	if _, err := NewStaticRegistry(Setting{Name: "a"}, Setting{Name: "a"}); !errors.Is(err, ErrDuplicateSetting) {
		t.Errorf("error = %v, want ErrDuplicateSetting", err)
	}
}

func TestStaticRegistry_DefinitionsIsCopy(t *testing.T) {
	r := MustStaticRegistry(Setting{Name: "a"})
	defs := r.Definitions()
	defs[0].Name = "changed"

	if _, ok := r.Find("a"); !ok {
		t.Error("registry was mutated through Definitions()")
	}
	if r.Definitions()[0].Name != "a" {
		t.Error("Definitions() exposed internal slice")
	}
}

func TestLoadDefinitions(t *testing.T) {
	doc := `
settings:
  - name: ui.server_name
    env: MELTANO_UI_SERVER_NAME
    env_aliases: [SERVER_NAME]
  - name: ui.bind_port
    value: 5000
  - name: nested.custom
    path: [custom, deep, key]
`
	r, err := LoadDefinitions(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadDefinitions() error = %v", err)
	}

	server, _ := r.Find("ui.server_name")
	if server.Env != "MELTANO_UI_SERVER_NAME" {
		t.Errorf("Env = %q", server.Env)
	}
	if !reflect.DeepEqual(server.EnvAliases, []string{"SERVER_NAME"}) {
		t.Errorf("EnvAliases = %v", server.EnvAliases)
	}

	port, _ := r.Find("ui.bind_port")
	if port.Value != 5000 {
		t.Errorf("Value = %#v, want 5000", port.Value)
	}

	custom, _ := r.Find("nested.custom")
	if !reflect.DeepEqual(custom.NestedPath(), []string{"custom", "deep", "key"}) {
		t.Errorf("NestedPath() = %v", custom.NestedPath())
	}
}

func TestLoadDefinitions_Empty(t *testing.T) {
	r, err := LoadDefinitions(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadDefinitions() error = %v", err)
	}
	if len(r.Definitions()) != 0 {
		t.Errorf("got %d definitions, want 0", len(r.Definitions()))
	}
}

func TestLoadDefinitions_Invalid(t *testing.T) {
	if _, err := LoadDefinitions(strings.NewReader("settings: [")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yml")
	if err := os.WriteFile(path, []byte("settings:\n  - name: a\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if _, ok := r.Find("a"); !ok {
		t.Error("Find(a) not found")
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestDefaults(t *testing.T) {
	r := Defaults()

	for _, name := range []string{"ui.server_name", "ui.secret_key", "ui.password_salt"} {
		if _, ok := r.Find(name); !ok {
			t.Errorf("built-in definitions missing %s", name)
		}
	}

	port, _ := r.Find("ui.bind_port")
	if port.Value != 5000 {
		t.Errorf("ui.bind_port default = %#v, want 5000", port.Value)
	}
}
