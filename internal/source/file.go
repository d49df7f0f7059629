package source

import (
	"os"
	"path/filepath"

	yamlparser "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// environmentFiles maps well-known environment names to their conventional
// config filenames. Lookup is case-sensitive; unknown names select no file.
var environmentFiles = map[string]string{
	"PROD":  "production.yaml",
	"DEV":   "development.yaml",
	"TEST":  "test.yaml",
	"DEBUG": "debug.yaml",
}

// FileConfig loads a YAML configuration file. The file is either named
// explicitly or derived from an environment name via the conventional
// filename table. A file or directory that does not exist contributes
// nothing.
type FileConfig struct {
	dir      string
	filename string
	env      string
}

// NewFileConfig builds the file layer. dir is the directory holding config
// files, filename (optional) an explicit file inside it, and env the
// environment name used when no explicit filename is given.
func NewFileConfig(dir, filename, env string) *FileConfig {
	return &FileConfig{dir: dir, filename: filename, env: env}
}

// Name implements Layer.
func (f *FileConfig) Name() string {
	if path := f.resolve(); path != "" {
		return "config file " + path
	}
	return "config file"
}

// Rank implements Layer.
func (f *FileConfig) Rank() Rank { return RankFileConfig }

// Provide implements Layer.
func (f *FileConfig) Provide() (koanf.Provider, koanf.Parser, error) {
	path := f.resolve()
	if path == "" {
		return nil, nil, nil
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return nil, nil, nil
	}
	return file.Provider(path), yamlparser.Parser(), nil
}

// resolve returns the config file path, or "" when no filename applies.
func (f *FileConfig) resolve() string {
	if f.filename != "" {
		return filepath.Join(f.dir, f.filename)
	}
	if name, ok := environmentFiles[f.env]; ok {
		return filepath.Join(f.dir, name)
	}
	return ""
}
