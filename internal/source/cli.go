package source

import (
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// CLI parses command-line tokens of the form "key=value" into the
// highest-precedence layer. Dotted keys address nested structure
// (e.g. "script.usage=test.py --help"); tokens without "=" or with an
// empty key are ignored.
type CLI struct {
	args []string
}

// NewCLI builds the command-line layer from the given argument list.
func NewCLI(args []string) *CLI {
	return &CLI{args: args}
}

// Name implements Layer.
func (c *CLI) Name() string { return "command-line arguments" }

// Rank implements Layer.
func (c *CLI) Rank() Rank { return RankCLI }

// Provide implements Layer.
func (c *CLI) Provide() (koanf.Provider, koanf.Parser, error) {
	values := make(map[string]any, len(c.args))
	for _, arg := range c.args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = coerceScalar(raw)
	}
	if len(values) == 0 {
		return nil, nil, nil
	}
	return confmap.Provider(values, KeyDelim), nil, nil
}

// coerceScalar interprets a raw token value as a YAML scalar so that
// "true" becomes a bool and "5" an int. Values that do not parse as a
// scalar are kept as the raw string.
func coerceScalar(raw string) any {
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil || v == nil {
		return raw
	}
	switch v.(type) {
	case map[string]any, []any:
		return raw
	}
	return v
}
