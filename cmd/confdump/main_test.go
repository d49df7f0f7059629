package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir switches the working directory for the duration of the test,
// restoring the previous one on cleanup (stand-in for t.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("chdir back to %s: %v", old, err)
		}
	})
}

func TestRun(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.MkdirAll("conf", 0o755); err != nil {
		t.Fatalf("mkdir conf: %v", err)
	}
	content := "script:\n  usage: \"test.py --help\"\n"
	if err := os.WriteFile(filepath.Join("conf", "debug.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Run("dumps the merged configuration", func(t *testing.T) {
		var out strings.Builder
		err := run([]string{"--env", "DEBUG", "extra=1"}, &out)
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
		if !strings.Contains(out.String(), "usage: test.py --help") {
			t.Fatalf("expected config file values in output, got:\n%s", out.String())
		}
		if !strings.Contains(out.String(), "extra: 1") {
			t.Fatalf("expected CLI override in output, got:\n%s", out.String())
		}
	})

	t.Run("fails on missing required key", func(t *testing.T) {
		var out strings.Builder
		err := run([]string{"--env", "DEBUG", "--required", "must_exist:"}, &out)
		if err == nil {
			t.Fatalf("expected error for missing required key")
		}
		if !strings.Contains(err.Error(), "must_exist") {
			t.Fatalf("expected error to name the missing key, got %v", err)
		}
	})

	t.Run("fails on unknown flag", func(t *testing.T) {
		var out strings.Builder
		if err := run([]string{"--nope"}, &out); err == nil {
			t.Fatalf("expected flag parse error")
		}
	})
}
