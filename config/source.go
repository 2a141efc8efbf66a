package config

// ValueStore identifies where a resolved setting value came from.
type ValueStore int

// Value stores, from highest to lowest priority.
const (
	// StoreOverride indicates the value was forced by an override map.
	StoreOverride ValueStore = iota + 1

	// StoreEnv indicates the value came from the environment snapshot
	// (process environment, project .env file, or the legacy ui.cfg).
	StoreEnv

	// StoreConfigFile indicates the value came from the persisted project
	// config (meltano.yml).
	StoreConfigFile

	// StoreDefault indicates the value is the setting's declared default.
	StoreDefault
)

// Stores lists every value store in priority order.
var Stores = []ValueStore{StoreOverride, StoreEnv, StoreConfigFile, StoreDefault}

func (s ValueStore) String() string {
	switch s {
	case StoreOverride:
		return "override"
	case StoreEnv:
		return "env"
	case StoreConfigFile:
		return "config_file"
	case StoreDefault:
		return "default"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the declared stores.
func (s ValueStore) Valid() bool {
	switch s {
	case StoreOverride, StoreEnv, StoreConfigFile, StoreDefault:
		return true
	default:
		return false
	}
}

// Priority ranks s in the resolution chain: 1 is consulted first. Invalid
// stores rank 0.
func (s ValueStore) Priority() int {
	switch s {
	case StoreOverride:
		return 1
	case StoreEnv:
		return 2
	case StoreConfigFile:
		return 3
	case StoreDefault:
		return 4
	default:
		return 0
	}
}

// Overrides reports whether a value from s takes precedence over one from other.
func (s ValueStore) Overrides(other ValueStore) bool {
	if s.Priority() == 0 {
		return false
	}
	return other.Priority() == 0 || s.Priority() < other.Priority()
}

// MarshalText implements encoding.TextMarshaler.
func (s ValueStore) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseValueStore converts a store name back into a ValueStore.
func ParseValueStore(name string) (ValueStore, bool) {
	for _, s := range Stores {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}
