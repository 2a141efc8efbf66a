// Package context provides dependency injection for the settings service.
//
// Context injection functions:
//   - WithSettings/Settings: settings service injection
//   - WithProject/Project: project injection
//   - Resolve: resolve a setting through the injected service
//
// Example usage:
//
//	services, err := context.NewServices(context.Config{ProjectRoot: root})
//	if err != nil {
//	    return err
//	}
//	ctx = services.InjectAll(ctx)
//
//	// Later, retrieve services
//	res, err := context.Resolve(ctx, "ui.server_name")
package context
