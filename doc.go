// Package config merges application configuration from layered sources into
// a single read-only, dotted-path-addressable result. Five sources are
// combined in fixed precedence order, later sources overriding earlier ones
// on key collision: programmatic defaults, allow-listed environment
// variables, a ".env" file in the working directory, a YAML config file
// selected by environment name or explicit filename, and "key=value"
// command-line arguments.
//
// Missing files and unset variables contribute nothing and are never errors.
// After the merge, every key declared required must be present or the whole
// call fails.
//
// Typical usage:
//
//	cfg, err := config.Create(
//		config.WithEnvironment("DEV"),
//		config.WithAllowedEnvVars("debug"),
//		config.WithRequired(map[string]any{"debug": false}),
//	)
//	if err != nil {
//		// handle
//	}
//	debug := cfg.Bool("debug")
package config
