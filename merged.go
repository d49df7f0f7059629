package config

import (
	"fmt"

	yamlparser "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

// Config is the merged configuration. It is read-only: getters address
// values by dotted key path and return zero values for absent keys.
type Config struct {
	k *koanf.Koanf
}

// Get returns the value at the dotted key path, or nil when absent.
func (c *Config) Get(path string) any { return c.k.Get(path) }

// String returns the string value at the dotted key path.
func (c *Config) String(path string) string { return c.k.String(path) }

// Int returns the int value at the dotted key path.
func (c *Config) Int(path string) int { return c.k.Int(path) }

// Bool returns the bool value at the dotted key path.
func (c *Config) Bool(path string) bool { return c.k.Bool(path) }

// Float64 returns the float64 value at the dotted key path.
func (c *Config) Float64(path string) float64 { return c.k.Float64(path) }

// Strings returns the string slice value at the dotted key path.
func (c *Config) Strings(path string) []string { return c.k.Strings(path) }

// Exists reports whether the dotted key path is present.
func (c *Config) Exists(path string) bool { return c.k.Exists(path) }

// All returns a flat copy of the configuration keyed by dotted paths.
func (c *Config) All() map[string]any { return c.k.All() }

// Raw returns a deep copy of the configuration as a nested mapping.
func (c *Config) Raw() map[string]any { return c.k.Raw() }

// Unmarshal decodes the configuration subtree at the dotted key path into
// out, a struct using `koanf` field tags. An empty path decodes the whole
// configuration.
func (c *Config) Unmarshal(path string, out any) error {
	if err := c.k.Unmarshal(path, out); err != nil {
		return fmt.Errorf("unmarshal configuration at %q: %w", path, err)
	}
	return nil
}

// Dump renders the configuration as YAML.
func (c *Config) Dump() (string, error) {
	b, err := c.k.Marshal(yamlparser.Parser())
	if err != nil {
		return "", fmt.Errorf("render configuration: %w", err)
	}
	return string(b), nil
}
