// Package projectsettings resolves the settings of a data project.
//
// The package is organized into subpackages by concern:
//
//   - config: layered resolution (overrides, environment, manifest, defaults)
//     and the legacy ui.cfg fallback
//   - setting: setting definitions and registries
//   - store: the persisted project configuration (meltano.yml)
//   - flatstore: KEY=VALUE files (.env, ui.cfg)
//   - project: project root and file locations
//   - context: service injection into context.Context
//   - testutil: temporary project fixtures
//
// # Quick Start
//
//	svc, err := projectsettings.Open("/path/to/project")
//	if err != nil {
//	    return err
//	}
//
//	res, err := svc.ResolveWithFallback("ui.server_name")
//	fmt.Println(res.Value, res.Source)
//
// See individual package documentation for detailed usage.
package projectsettings
