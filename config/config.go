package config

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/randalmurphal/projectsettings/project"
	"github.com/randalmurphal/projectsettings/setting"
	"github.com/randalmurphal/projectsettings/store"
)

// DefaultEnvPrefix is the prefix of conventional setting environment variables.
const DefaultEnvPrefix = "MELTANO"

// Options configures a Service. All maps are copied by New.
type Options struct {
	// Registry lists the known settings. Defaults to setting.Defaults().
	Registry setting.Registry

	// Store provides the persisted project config. Defaults to a YAMLStore on
	// the project manifest, or an empty MemoryStore without a project.
	Store store.ConfigStore

	// Project supplies the .env file and the legacy ui.cfg path. Optional.
	Project *project.Project

	// EnvPrefix is used to derive PREFIX_SETTING_NAME variables. Empty
	// disables derivation; only declared env names are probed.
	EnvPrefix string

	// BaseOverrides are shared defaults applied to every service built from
	// the same Options. Overrides win over them key by key.
	BaseOverrides map[string]any

	// Overrides are instance-level forced values.
	Overrides map[string]any

	// Environ is the process environment as KEY=VALUE pairs.
	// Defaults to os.Environ().
	Environ []string

	// EnvOverride has the final say over the environment snapshot.
	EnvOverride map[string]string

	// LegacyKeys maps setting names to ui.cfg keys. Defaults to
	// DefaultLegacyKeys().
	LegacyKeys map[string]string

	// Legacy answers ui.cfg lookups. Defaults to a LegacyFile on the
	// project's ui.cfg; without a project the fallback never hits.
	Legacy LegacySource

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Service resolves setting values across the override, environment, project
// config and default stores. Its snapshots are immutable after New. It is
// safe for concurrent use when its Registry and Store are; Set and Unset are
// serialised so concurrent writes through one Service are not lost.
type Service struct {
	registry   setting.Registry
	store      store.ConfigStore
	envPrefix  string
	overrides  OverrideMap
	env        Environment
	legacyKeys map[string]string
	legacy     LegacySource
	logger     *slog.Logger

	// writeMu covers the read-modify-write cycle of Set and Unset.
	writeMu sync.Mutex
}

// Result is a resolved setting value and the store that supplied it.
type Result struct {
	Name   string
	Value  any
	Source ValueStore
}

// New builds a Service, snapshotting overrides and the environment.
func New(opts Options) *Service {
	s := &Service{
		registry:  opts.Registry,
		store:     opts.Store,
		envPrefix: opts.EnvPrefix,
		overrides: MergeOverrides(opts.BaseOverrides, opts.Overrides),
		legacy:    opts.Legacy,
		logger:    opts.Logger,
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.registry == nil {
		s.registry = setting.Defaults()
	}
	if s.store == nil {
		if opts.Project != nil {
			s.store = store.NewYAMLStore(opts.Project.ManifestPath(), store.WithLogger(s.logger))
		} else {
			s.store = store.NewMemoryStore(nil)
		}
	}

	if opts.LegacyKeys == nil {
		s.legacyKeys = DefaultLegacyKeys()
	} else {
		s.legacyKeys = make(map[string]string, len(opts.LegacyKeys))
		for name, key := range opts.LegacyKeys {
			s.legacyKeys[name] = key
		}
	}
	if s.legacy == nil {
		if opts.Project != nil {
			s.legacy = LegacyFile{Path: opts.Project.LegacyConfigPath(), Logger: s.logger}
		} else {
			s.legacy = LegacyMap(nil)
		}
	}

	environ := opts.Environ
	if environ == nil {
		environ = os.Environ()
	}
	s.env = NewEnvironment(s.projectEnv(opts.Project), ParseEnviron(environ), opts.EnvOverride)

	return s
}

func (s *Service) projectEnv(p *project.Project) map[string]string {
	if p == nil {
		return nil
	}
	env, err := p.Env()
	if err != nil {
		s.logger.Warn("could not read project env file",
			slog.String("path", p.EnvFilePath()),
			slog.String("error", err.Error()))
		return nil
	}
	return env
}

// Resolve returns the effective value of name and the store it came from.
// Stores are probed in order: overrides, environment, project config,
// default. The first store holding a value wins, even when that value is
// empty or zero.
func (s *Service) Resolve(name string) (Result, error) {
	def, ok := s.registry.Find(name)
	if !ok {
		return Result{}, &UnknownSettingError{Name: name}
	}

	if value, ok := s.overrides.Get(name); ok {
		return Result{Name: name, Value: value, Source: StoreOverride}, nil
	}

	if _, value, ok := s.env.First(def.EnvKeys(s.envPrefix)); ok {
		return Result{Name: name, Value: value, Source: StoreEnv}, nil
	}

	config := store.Nest(s.store.CurrentConfig())
	if value, ok := store.Lookup(config, def.NestedPath()); ok {
		return Result{Name: name, Value: store.Clone(value), Source: StoreConfigFile}, nil
	}

	return Result{Name: name, Value: store.Clone(def.Value), Source: StoreDefault}, nil
}

// ResolveWithFallback is Resolve plus the legacy ui.cfg fallback: when the
// value came from the default and the setting has a legacy key, a value in
// ui.cfg replaces it and is reported as coming from the environment.
func (s *Service) ResolveWithFallback(name string) (Result, error) {
	result, err := s.Resolve(name)
	if err != nil {
		return Result{}, err
	}

	switch result.Source {
	case StoreDefault:
		key, ok := s.legacyKeys[name]
		if !ok {
			return result, nil
		}
		legacy := s.legacy.Lookup(key)
		if !legacy.Present {
			return result, nil
		}
		s.logger.Debug("using legacy ui.cfg value",
			slog.String("setting", name),
			slog.String("key", key))
		return Result{Name: name, Value: legacy.Value, Source: StoreEnv}, nil
	case StoreOverride, StoreEnv, StoreConfigFile:
		return result, nil
	default:
		panic(fmt.Sprintf("config: unhandled value store %d", int(result.Source)))
	}
}

// Get returns only the effective value of name, with the legacy fallback.
func (s *Service) Get(name string) (any, error) {
	result, err := s.ResolveWithFallback(name)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

// All resolves every registered setting in registry order.
func (s *Service) All() ([]Result, error) {
	defs := s.registry.Definitions()
	results := make([]Result, 0, len(defs))
	for _, def := range defs {
		result, err := s.ResolveWithFallback(def.Name)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}

// Set persists value for name in the project config. The value only becomes
// effective when no override or environment variable shadows it. Writes from
// other processes or other Services sharing the store are not coordinated.
func (s *Service) Set(name string, value any) error {
	def, ok := s.registry.Find(name)
	if !ok {
		return &UnknownSettingError{Name: name}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	updated := store.SetPath(s.store.CurrentConfig(), def.NestedPath(), value)
	if err := s.store.UpdateConfig(updated); err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	return nil
}

// Unset removes name from the project config.
func (s *Service) Unset(name string) error {
	def, ok := s.registry.Find(name)
	if !ok {
		return &UnknownSettingError{Name: name}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	updated := store.DeletePath(s.store.CurrentConfig(), def.NestedPath())
	if err := s.store.UpdateConfig(updated); err != nil {
		return fmt.Errorf("unset %s: %w", name, err)
	}
	return nil
}

// Overrides returns the merged override map.
func (s *Service) Overrides() OverrideMap {
	return s.overrides
}

// Environment returns the environment snapshot taken by New.
func (s *Service) Environment() Environment {
	return s.env
}

// Registry returns the setting registry.
func (s *Service) Registry() setting.Registry {
	return s.registry
}

// Label names the owner of these settings.
func (s *Service) Label() string {
	return "Meltano"
}

// DocsURL points at the settings documentation.
func (s *Service) DocsURL() string {
	return "https://meltano.com/docs/settings.html"
}

// EnvPrefixes returns the prefixes used to derive environment variable names.
func (s *Service) EnvPrefixes() []string {
	if s.envPrefix == "" {
		return nil
	}
	return []string{s.envPrefix}
}
