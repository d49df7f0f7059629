package source

import (
	"github.com/knadh/koanf/v2"
)

// KeyDelim separates segments of a dotted key path (e.g. "script.usage").
const KeyDelim = "."

// Rank is the precedence rank of a configuration source. Higher ranks win on
// key collision. The order is total and fixed: no two sources ever merge
// sideways.
type Rank int

const (
	RankDefaults Rank = iota
	RankEnvVar
	RankDotenv
	RankFileConfig
	RankCLI
)

// Layer produces the contribution of a single configuration source.
//
// Provide returns a koanf provider/parser pair ready to be loaded onto the
// merged tree. A nil provider means the source contributes nothing (missing
// file, no matching variables), which is never an error. The parser is nil
// for sources that already yield structured maps.
type Layer interface {
	Name() string
	Rank() Rank
	Provide() (koanf.Provider, koanf.Parser, error)
}
