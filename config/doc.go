// Package config resolves project settings across layered value stores.
//
// Every lookup walks the same chain, highest priority first:
//  1. Overrides (forced values supplied when the service is built)
//  2. Environment (project .env file, process environment, explicit overrides)
//  3. Project config (the manifest, via a store.ConfigStore)
//  4. The setting's declared default
//
// The first store holding a value wins, even when the value is empty or zero.
//
// # Basic Usage
//
//	svc := config.New(config.Options{
//	    Project:   proj,
//	    EnvPrefix: config.DefaultEnvPrefix,
//	})
//
//	res, err := svc.ResolveWithFallback("ui.server_name")
//	if err != nil {
//	    return err // only *UnknownSettingError
//	}
//	fmt.Println(res.Value, res.Source) // "example.com env"
//
// # Value Stores
//
// Each Result carries the ValueStore that supplied it:
//   - "override": forced by Options.BaseOverrides or Options.Overrides
//   - "env": environment variable, or a legacy ui.cfg value
//   - "config_file": the project manifest
//   - "default": the setting's declared default
//
// # Legacy ui.cfg
//
// ResolveWithFallback consults the deprecated ui.cfg file when a setting
// listed in DefaultLegacyKeys() resolved to its default. A value found there is
// reported as StoreEnv. The literal text "None" counts as no value. Problems
// reading the file are never returned; the default is kept.
//
// # Overrides
//
// Options.BaseOverrides and Options.Overrides are merged once in New, with
// instance overrides winning. Later changes to the caller's maps do not affect
// a built Service; build a new one instead.
package config
