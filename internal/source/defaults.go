package source

import (
	"fmt"
	"sort"

	yamlparser "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Defaults is the lowest-precedence layer. It carries the programmatically
// supplied default values, typically derived from the caller's required
// configuration mapping.
type Defaults struct {
	values map[string]any
}

// NewDefaults builds the defaults layer from an already parsed mapping.
func NewDefaults(values map[string]any) *Defaults {
	return &Defaults{values: values}
}

// Name implements Layer.
func (d *Defaults) Name() string { return "defaults" }

// Rank implements Layer.
func (d *Defaults) Rank() Rank { return RankDefaults }

// Provide implements Layer.
func (d *Defaults) Provide() (koanf.Provider, koanf.Parser, error) {
	if len(d.values) == 0 {
		return nil, nil, nil
	}
	return confmap.Provider(d.values, ""), nil, nil
}

// ParseMapping normalises a caller-supplied value into a nested mapping.
// Accepted forms are nil (empty mapping), a map[string]any, or a string
// holding a YAML mapping. Anything else is an error.
func ParseMapping(v any) (map[string]any, error) {
	switch val := v.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return val, nil
	case string:
		parsed, err := yamlparser.Parser().Unmarshal([]byte(val))
		if err != nil {
			return nil, fmt.Errorf("not a valid YAML mapping: %w", err)
		}
		if parsed == nil {
			parsed = map[string]any{}
		}
		return parsed, nil
	default:
		return nil, fmt.Errorf("expected a mapping or YAML string, got %T", v)
	}
}

// PruneNils returns a copy of m with nil-valued leaves removed. Such keys
// mark a parameter as required without supplying a default for it, so they
// must not enter the merge as values. Sub-mappings emptied by pruning are
// dropped as well.
func PruneNils(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, v := range m {
		switch child := v.(type) {
		case nil:
			continue
		case map[string]any:
			if len(child) == 0 {
				out[key] = map[string]any{}
				continue
			}
			if pruned := PruneNils(child); len(pruned) > 0 {
				out[key] = pruned
			}
		default:
			out[key] = v
		}
	}
	return out
}

// LeafPaths returns the sorted dotted paths of every leaf in m. A non-empty
// sub-mapping is descended into; everything else (scalars, sequences, nils,
// empty mappings) counts as a leaf.
func LeafPaths(m map[string]any) []string {
	var paths []string
	var walk func(prefix string, m map[string]any)
	walk = func(prefix string, m map[string]any) {
		for key, v := range m {
			path := key
			if prefix != "" {
				path = prefix + KeyDelim + key
			}
			if child, ok := v.(map[string]any); ok && len(child) > 0 {
				walk(path, child)
				continue
			}
			paths = append(paths, path)
		}
	}
	walk("", m)
	sort.Strings(paths)
	return paths
}
