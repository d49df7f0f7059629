package source

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

const dotenvFile = ".env"

// Dotenv loads every key from a ".env" file in the working directory.
// Absence of the file is not an error; a file that cannot be parsed is.
type Dotenv struct{}

// NewDotenv builds the dotenv layer.
func NewDotenv() *Dotenv {
	return &Dotenv{}
}

// Name implements Layer.
func (d *Dotenv) Name() string { return "dotenv file " + dotenvFile }

// Rank implements Layer.
func (d *Dotenv) Rank() Rank { return RankDotenv }

// Provide implements Layer.
func (d *Dotenv) Provide() (koanf.Provider, koanf.Parser, error) {
	if info, err := os.Stat(dotenvFile); err != nil || info.IsDir() {
		return nil, nil, nil
	}

	pairs, err := godotenv.Read(dotenvFile)
	if err != nil {
		return nil, nil, fmt.Errorf("parse dotenv file %s: %w", dotenvFile, err)
	}
	if len(pairs) == 0 {
		return nil, nil, nil
	}

	values := make(map[string]any, len(pairs))
	for key, v := range pairs {
		values[key] = v
	}
	return confmap.Provider(values, KeyDelim), nil, nil
}
