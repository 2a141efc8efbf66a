package projectsettings

import (
	"log/slog"

	"github.com/randalmurphal/projectsettings/config"
	"github.com/randalmurphal/projectsettings/project"
	"github.com/randalmurphal/projectsettings/setting"
	"github.com/randalmurphal/projectsettings/store"
)

// Option configures Open.
type Option func(*config.Options)

// WithRegistry replaces the built-in setting definitions.
func WithRegistry(r setting.Registry) Option {
	return func(o *config.Options) {
		o.Registry = r
	}
}

// WithStore replaces the manifest-backed config store.
func WithStore(s store.ConfigStore) Option {
	return func(o *config.Options) {
		o.Store = s
	}
}

// WithOverrides forces setting values. Later calls layer on top of earlier
// ones.
func WithOverrides(overrides map[string]any) Option {
	return func(o *config.Options) {
		o.Overrides = config.MergeOverrides(o.Overrides, overrides).Map()
	}
}

// WithBaseOverrides sets shared overrides that instance overrides win over.
func WithBaseOverrides(overrides map[string]any) Option {
	return func(o *config.Options) {
		o.BaseOverrides = overrides
	}
}

// WithEnviron replaces the process environment snapshot.
func WithEnviron(environ []string) Option {
	return func(o *config.Options) {
		o.Environ = environ
	}
}

// WithEnvOverride sets environment values that win over everything else in
// the environment snapshot.
func WithEnvOverride(env map[string]string) Option {
	return func(o *config.Options) {
		o.EnvOverride = env
	}
}

// WithEnvPrefix changes the prefix of derived environment variable names.
func WithEnvPrefix(prefix string) Option {
	return func(o *config.Options) {
		o.EnvPrefix = prefix
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *config.Options) {
		o.Logger = logger
	}
}

// Open builds a settings service for the project rooted at root using the
// built-in definitions, the project manifest, its .env file and the
// MELTANO environment prefix.
func Open(root string, opts ...Option) (*config.Service, error) {
	p, err := project.New(root)
	if err != nil {
		return nil, err
	}

	options := config.Options{
		Project:   p,
		EnvPrefix: config.DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return config.New(options), nil
}

// Find is like Open but locates the project by walking up from dir.
func Find(dir string, opts ...Option) (*config.Service, error) {
	p, err := project.Find(dir)
	if err != nil {
		return nil, err
	}
	return Open(p.Root(), opts...)
}
