package store

import "sync"

// ConfigStore provides the structured project configuration.
type ConfigStore interface {
	// CurrentConfig returns a snapshot of the persisted configuration.
	// Implementations return a copy the caller may keep.
	CurrentConfig() map[string]any

	// UpdateConfig replaces the persisted configuration.
	UpdateConfig(config map[string]any) error
}

// MemoryStore is an in-memory ConfigStore.
type MemoryStore struct {
	mu     sync.RWMutex
	config map[string]any
}

// NewMemoryStore creates a store seeded with a copy of config.
func NewMemoryStore(config map[string]any) *MemoryStore {
	return &MemoryStore{config: cloneMap(config)}
}

// CurrentConfig returns a deep copy of the stored configuration.
func (s *MemoryStore) CurrentConfig() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMap(s.config)
}

// UpdateConfig replaces the stored configuration with a copy of config.
func (s *MemoryStore) UpdateConfig(config map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cloneMap(config)
	return nil
}

func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return map[string]any{}
	}
	out, _ := Clone(m).(map[string]any)
	return out
}
