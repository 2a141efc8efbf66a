// Package testutil provides utilities for testing code that reads project
// settings.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/projectsettings/project"
)

// ProjectFiles describes the files written by SetupProject. Empty fields
// are not written.
type ProjectFiles struct {
	// Manifest is marshalled to meltano.yml.
	Manifest map[string]any

	// Env is written to .env as KEY=VALUE lines.
	Env map[string]string

	// UICfg is the raw content of the legacy ui.cfg file.
	UICfg string
}

// SetupProject creates a project in a temporary directory.
// It is automatically cleaned up when the test ends.
func SetupProject(t *testing.T, files ProjectFiles) *project.Project {
	t.Helper()

	p, err := project.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	manifest := files.Manifest
	if manifest == nil {
		manifest = map[string]any{}
	}
	WriteManifest(t, p, manifest)

	if len(files.Env) > 0 {
		WriteEnvFile(t, p, files.Env)
	}
	if files.UICfg != "" {
		WriteUICfg(t, p, files.UICfg)
	}

	return p
}

// WriteManifest marshals manifest to the project's meltano.yml.
func WriteManifest(t *testing.T, p *project.Project, manifest map[string]any) {
	t.Helper()

	data, err := yaml.Marshal(manifest)
	if err != nil {
		t.Fatalf("failed to marshal manifest: %v", err)
	}
	writeFile(t, p.ManifestPath(), data)
}

// WriteEnvFile writes vars to the project's .env file, quoted and escaped by
// godotenv.
func WriteEnvFile(t *testing.T, p *project.Project, vars map[string]string) {
	t.Helper()

	content, err := godotenv.Marshal(vars)
	if err != nil {
		t.Fatalf("failed to marshal .env: %v", err)
	}
	writeFile(t, p.EnvFilePath(), []byte(content+"\n"))
}

// WriteUICfg writes raw content to the project's legacy ui.cfg.
func WriteUICfg(t *testing.T, p *project.Project, content string) {
	t.Helper()
	writeFile(t, p.LegacyConfigPath(), []byte(content))
}

// RemoveUICfg deletes the project's legacy ui.cfg if present.
func RemoveUICfg(t *testing.T, p *project.Project) {
	t.Helper()

	if err := os.Remove(p.LegacyConfigPath()); err != nil && !os.IsNotExist(err) {
		t.Fatalf("failed to remove ui.cfg: %v", err)
	}
}

// Environ converts vars to the KEY=VALUE form of os.Environ.
func Environ(vars map[string]string) []string {
	out := make([]string, 0, len(vars))
	for k, v := range vars {
		out = append(out, k+"="+v)
	}
	return out
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
