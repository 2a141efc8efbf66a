// Package setting defines project settings and the registry that lists them.
//
// A Setting names a value, its environment variables, its location in the
// structured project config and its declared default. Registries are read-only
// once built; use NewStaticRegistry for literals, LoadFile for YAML definition
// files, or Defaults for the built-in project settings.
package setting
