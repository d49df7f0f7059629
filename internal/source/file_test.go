package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
)

func writeConfigFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestFileConfigResolve(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		env      string
		want     string
	}{
		{"explicit filename wins", "myconfig.yaml", "DEV", filepath.Join("conf", "myconfig.yaml")},
		{"PROD", "", "PROD", filepath.Join("conf", "production.yaml")},
		{"DEV", "", "DEV", filepath.Join("conf", "development.yaml")},
		{"TEST", "", "TEST", filepath.Join("conf", "test.yaml")},
		{"DEBUG", "", "DEBUG", filepath.Join("conf", "debug.yaml")},
		{"unknown environment", "", "STAGING", ""},
		{"lookup is case-sensitive", "", "prod", ""},
		{"empty environment", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layer := NewFileConfig("conf", tt.filename, tt.env)
			if got := layer.resolve(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFileConfigProvide(t *testing.T) {
	t.Run("missing file contributes nothing", func(t *testing.T) {
		layer := NewFileConfig(filepath.Join(t.TempDir(), "conf"), "", "PROD")
		if got := loadLayer(t, layer); got != nil {
			t.Fatalf("expected no contribution, got %v", got)
		}
	})

	t.Run("unknown environment contributes nothing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "conf")
		writeConfigFile(t, dir, "production.yaml", "port: 80\n")

		if got := loadLayer(t, NewFileConfig(dir, "", "STAGING")); got != nil {
			t.Fatalf("expected no contribution, got %v", got)
		}
	})

	t.Run("loads the environment file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "conf")
		writeConfigFile(t, dir, "debug.yaml", "script:\n  usage: \"test.py --help\"\n")

		got := loadLayer(t, NewFileConfig(dir, "", "DEBUG"))
		if got["script.usage"] != "test.py --help" {
			t.Fatalf("expected script.usage, got %v", got)
		}
	})

	t.Run("malformed YAML fails the load", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "conf")
		writeConfigFile(t, dir, "production.yaml", "port: [unclosed\n")

		layer := NewFileConfig(dir, "", "PROD")
		provider, parser, err := layer.Provide()
		if err != nil {
			t.Fatalf("Provide returned error: %v", err)
		}
		if provider == nil {
			t.Fatalf("expected a provider for an existing file")
		}

		k := koanf.New(KeyDelim)
		if err := k.Load(provider, parser); err == nil {
			t.Fatalf("expected parse error for malformed YAML")
		}
	})
}

func TestFileConfigName(t *testing.T) {
	layer := NewFileConfig("conf", "", "DEBUG")
	if got, want := layer.Name(), "config file "+filepath.Join("conf", "debug.yaml"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	none := NewFileConfig("conf", "", "STAGING")
	if got := none.Name(); got != "config file" {
		t.Fatalf("expected generic name when no file applies, got %q", got)
	}
}
