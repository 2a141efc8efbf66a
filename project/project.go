// Package project locates the files that make up a data project: the
// manifest holding persisted settings, the project .env file and the
// deprecated ui.cfg left behind by older setup flows.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/randalmurphal/projectsettings/flatstore"
)

// Default file names, relative to the project root.
const (
	ManifestName     = "meltano.yml"
	EnvFileName      = ".env"
	LegacyConfigName = "ui.cfg"
)

// ErrNotProject indicates no manifest was found walking up from a directory.
var ErrNotProject = errors.New("not a project directory")

// Project is a project rooted at a directory.
type Project struct {
	root string
}

// New returns the project rooted at root. The directory is not required to
// exist yet.
func New(root string) (*Project, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve project root: %w", err)
	}
	return &Project{root: abs}, nil
}

// Find walks up from startDir until a directory containing the manifest is
// found.
func Find(startDir string) (*Project, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		if info, err := os.Stat(filepath.Join(dir, ManifestName)); err == nil && !info.IsDir() {
			return &Project{root: dir}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%w: %s", ErrNotProject, startDir)
		}
		dir = parent
	}
}

// Root returns the absolute project root.
func (p *Project) Root() string {
	return p.root
}

// RootPath joins elem onto the project root.
func (p *Project) RootPath(elem ...string) string {
	return filepath.Join(append([]string{p.root}, elem...)...)
}

// ManifestPath returns the path of the project manifest.
func (p *Project) ManifestPath() string {
	return p.RootPath(ManifestName)
}

// EnvFilePath returns the path of the project .env file.
func (p *Project) EnvFilePath() string {
	return p.RootPath(EnvFileName)
}

// LegacyConfigPath returns the path of the deprecated ui.cfg file.
func (p *Project) LegacyConfigPath() string {
	return p.RootPath(LegacyConfigName)
}

// Env reads the project .env file. A missing file yields an empty map.
func (p *Project) Env() (map[string]string, error) {
	return flatstore.ReadOptional(p.EnvFilePath())
}
