package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// YAMLStore persists the project configuration in a YAML manifest
// (meltano.yml).
type YAMLStore struct {
	path   string
	logger *slog.Logger

	// Serialises writes to the manifest. Callers that read, modify and
	// write back must hold their own lock across the cycle.
	mu sync.Mutex
}

// YAMLOption configures a YAMLStore.
type YAMLOption func(*YAMLStore)

// WithLogger sets the logger used for warnings.
func WithLogger(logger *slog.Logger) YAMLOption {
	return func(s *YAMLStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewYAMLStore creates a store backed by the manifest at path.
func NewYAMLStore(path string, opts ...YAMLOption) *YAMLStore {
	s := &YAMLStore{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the manifest path.
func (s *YAMLStore) Path() string {
	return s.path
}

// CurrentConfig reads the manifest. A missing file is an empty config; a file
// that cannot be parsed is logged and also treated as empty.
func (s *YAMLStore) CurrentConfig() map[string]any {
	config, err := s.load()
	if err != nil {
		s.logger.Warn("could not read project config",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return map[string]any{}
	}
	return config
}

// UpdateConfig writes config to the manifest, creating parent directories.
func (s *YAMLStore) UpdateConfig(config map[string]any) error {
	if s.path == "" {
		return ErrNoPath
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if config == nil {
		config = map[string]any{}
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshal project config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	// The manifest is shared with the project and should be readable.
	if err := os.WriteFile(s.path, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("write project config: %w", err)
	}
	return nil
}

func (s *YAMLStore) load() (map[string]any, error) {
	if s.path == "" {
		return map[string]any{}, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]any{}, nil
		}
		return nil, err
	}

	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if parsed == nil {
		parsed = map[string]any{}
	}
	return parsed, nil
}
