package context

import (
	"context"

	"github.com/randalmurphal/projectsettings/config"
	"github.com/randalmurphal/projectsettings/project"
)

// serviceContextKey is a private type for context keys to avoid collisions
type serviceContextKey string

// Context keys for injected services
const (
	settingsServiceKey serviceContextKey = "projectsettings.settings"
	projectServiceKey  serviceContextKey = "projectsettings.project"
)

// WithSettings adds a settings service to the context
func WithSettings(ctx context.Context, svc *config.Service) context.Context {
	return context.WithValue(ctx, settingsServiceKey, svc)
}

// Settings extracts the settings service from context
func Settings(ctx context.Context) *config.Service {
	if svc, ok := ctx.Value(settingsServiceKey).(*config.Service); ok {
		return svc
	}
	return nil
}

// MustSettings extracts the settings service or panics
func MustSettings(ctx context.Context) *config.Service {
	svc := Settings(ctx)
	if svc == nil {
		panic("projectsettings/context: config.Service not found in context")
	}
	return svc
}

// WithProject adds a project to the context
func WithProject(ctx context.Context, p *project.Project) context.Context {
	return context.WithValue(ctx, projectServiceKey, p)
}

// Project extracts the project from context
func Project(ctx context.Context) *project.Project {
	if p, ok := ctx.Value(projectServiceKey).(*project.Project); ok {
		return p
	}
	return nil
}

// MustProject extracts the project or panics
func MustProject(ctx context.Context) *project.Project {
	p := Project(ctx)
	if p == nil {
		panic("projectsettings/context: project.Project not found in context")
	}
	return p
}

// Resolve looks up a setting through the service stored in ctx, with the
// legacy fallback applied.
func Resolve(ctx context.Context, name string) (config.Result, error) {
	svc := Settings(ctx)
	if svc == nil {
		return config.Result{}, ErrNoSettings
	}
	return svc.ResolveWithFallback(name)
}
