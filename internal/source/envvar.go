package source

import (
	"os"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// EnvVar reads process environment variables named in an explicit allow-list.
// Variables outside the list are never consulted; variables in the list that
// are unset or empty are simply omitted.
type EnvVar struct {
	allowed []string
}

// NewEnvVar builds the environment variable layer for the given allow-list.
func NewEnvVar(allowed []string) *EnvVar {
	return &EnvVar{allowed: allowed}
}

// Name implements Layer.
func (e *EnvVar) Name() string { return "environment variables" }

// Rank implements Layer.
func (e *EnvVar) Rank() Rank { return RankEnvVar }

// Provide implements Layer.
func (e *EnvVar) Provide() (koanf.Provider, koanf.Parser, error) {
	values := make(map[string]any, len(e.allowed))
	for _, name := range e.allowed {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			values[name] = v
		}
	}
	if len(values) == 0 {
		return nil, nil, nil
	}
	return confmap.Provider(values, KeyDelim), nil, nil
}
