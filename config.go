package config

import (
	"fmt"

	"github.com/knadh/koanf/v2"
	"go.uber.org/zap"

	"github.com/twonms/config/internal/source"
)

// Create resolves the configuration from all sources and returns the merged
// result. Sources are merged in fixed precedence order — defaults,
// environment variables, dotenv file, config file, command-line arguments —
// with later sources deep-merged on top of earlier ones. After the merge
// every required key must be present; otherwise the whole call fails and no
// partial result is returned.
func Create(opts ...Option) (*Config, error) {
	o := newOptions(opts...)

	required, err := source.ParseMapping(o.required)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequiredConfig, err)
	}

	layers := []source.Layer{
		source.NewDefaults(source.PruneNils(required)),
		source.NewEnvVar(o.allowedEnvVars),
		source.NewDotenv(),
		source.NewFileConfig(o.path, o.file, o.env),
		source.NewCLI(o.args),
	}

	k := koanf.New(source.KeyDelim)
	for _, layer := range layers {
		provider, parser, err := layer.Provide()
		if err != nil {
			return nil, err
		}
		if provider == nil {
			o.logger.Debug("configuration source skipped",
				zap.String("source", layer.Name()),
				zap.Int("rank", int(layer.Rank())),
			)
			continue
		}
		if err := k.Load(provider, parser); err != nil {
			return nil, fmt.Errorf("load %s: %w", layer.Name(), err)
		}
		o.logger.Debug("configuration source merged",
			zap.String("source", layer.Name()),
			zap.Int("rank", int(layer.Rank())),
		)
	}

	for _, path := range source.LeafPaths(required) {
		if !k.Exists(path) {
			return nil, fmt.Errorf("%w: %s", ErrMissingRequiredKey, path)
		}
	}

	return &Config{k: k}, nil
}
