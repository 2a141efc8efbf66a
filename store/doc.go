// Package store provides the structured project configuration that settings
// are persisted in.
//
// ConfigStore is the collaborator consumed by the settings service: it hands
// out snapshots via CurrentConfig and accepts full replacements via
// UpdateConfig. YAMLStore keeps the configuration in the project manifest;
// MemoryStore is useful in tests and for ephemeral projects.
//
// Settings live at nested paths. Nest, Lookup, SetPath and DeletePath work on
// the map form, treating dotted keys ("ui.server_name") the same as nested
// ones:
//
//	cfg := store.Nest(s.CurrentConfig())
//	v, ok := store.Lookup(cfg, []string{"ui", "server_name"})
package store
