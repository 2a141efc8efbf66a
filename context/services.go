package context

import (
	"context"
	"log/slog"

	"github.com/randalmurphal/projectsettings/config"
	"github.com/randalmurphal/projectsettings/project"
)

// Services wraps the settings services for convenient initialization
type Services struct {
	Project  *project.Project
	Settings *config.Service
}

// InjectAll adds all configured services to the context
func (s *Services) InjectAll(ctx context.Context) context.Context {
	if s.Project != nil {
		ctx = WithProject(ctx, s.Project)
	}
	if s.Settings != nil {
		ctx = WithSettings(ctx, s.Settings)
	}
	return ctx
}

// Config configures NewServices
type Config struct {
	ProjectRoot string         // Project directory (default: search upward from ".")
	EnvPrefix   string         // Prefix for derived env names (default: config.DefaultEnvPrefix)
	Overrides   map[string]any // Forced setting values
	Logger      *slog.Logger   // Default: slog.Default()
}

// NewServices creates Services with common defaults
func NewServices(cfg Config) (*Services, error) {
	var (
		proj *project.Project
		err  error
	)
	if cfg.ProjectRoot != "" {
		proj, err = project.New(cfg.ProjectRoot)
	} else {
		proj, err = project.Find(".")
	}
	if err != nil {
		return nil, err
	}

	prefix := cfg.EnvPrefix
	if prefix == "" {
		prefix = config.DefaultEnvPrefix
	}

	return &Services{
		Project: proj,
		Settings: config.New(config.Options{
			Project:   proj,
			EnvPrefix: prefix,
			Overrides: cfg.Overrides,
			Logger:    cfg.Logger,
		}),
	}, nil
}
