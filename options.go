package config

import (
	"os"

	"go.uber.org/zap"
)

const (
	defaultPath        = "./conf"
	defaultEnvironment = "PROD"
)

// Options holds the resolved inputs of a Create call.
type Options struct {
	path           string
	file           string
	env            string
	allowedEnvVars []string
	required       any
	args           []string
	argsSet        bool
	logger         *zap.Logger
}

// Option configures a Create call.
type Option func(*Options)

// WithPath sets the directory searched for YAML config files.
// The default is "./conf".
func WithPath(dir string) Option {
	return func(o *Options) {
		o.path = dir
	}
}

// WithConfigFile names an explicit config file inside the config directory,
// bypassing the environment-name filename convention.
func WithConfigFile(name string) Option {
	return func(o *Options) {
		o.file = name
	}
}

// WithEnvironment sets the environment name used to derive the config
// filename (PROD, DEV, TEST, DEBUG). The default is "PROD". Names outside
// the convention table select no file.
func WithEnvironment(name string) Option {
	return func(o *Options) {
		o.env = name
	}
}

// WithAllowedEnvVars lists the environment variables admitted into the
// merge. No variables are read by default.
func WithAllowedEnvVars(names ...string) Option {
	return func(o *Options) {
		o.allowedEnvVars = names
	}
}

// WithRequired declares the keys that must be present in the merged result.
// v is a map[string]any or a string holding a YAML mapping. Keys with
// non-nil values double as the lowest-precedence defaults; keys with nil
// values are required without supplying a default.
func WithRequired(v any) Option {
	return func(o *Options) {
		o.required = v
	}
}

// WithArgs overrides the command-line argument list inspected for
// "key=value" tokens. The default is os.Args[1:].
func WithArgs(args []string) Option {
	return func(o *Options) {
		o.args = args
		o.argsSet = true
	}
}

// WithLogger sets the logger used to trace source resolution at debug
// level. The default discards all output.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		o.logger = l
	}
}

func newOptions(opts ...Option) *Options {
	o := &Options{
		path:   defaultPath,
		env:    defaultEnvironment,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	if !o.argsSet {
		o.args = os.Args[1:]
	}
	return o
}
