package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `input:
  defaultDir: ./notes
output:
  defaultDir: ./out
images:
  fullPath: true
export:
  html: true
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Input.DefaultDir != "./notes" {
			t.Errorf("Input.DefaultDir = %q", cfg.Input.DefaultDir)
		}
		if cfg.Output.DefaultDir != "./out" {
			t.Errorf("Output.DefaultDir = %q", cfg.Output.DefaultDir)
		}
		if !cfg.Images.FullPath {
			t.Error("Images.FullPath = false")
		}
		if !cfg.Export.HTML {
			t.Error("Export.HTML = false")
		}
	})

	t.Run("partial config keeps zero values", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "output:\n  defaultDir: ./out\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig: %v", err)
		}
		if cfg.Input.DefaultDir != "" {
			t.Errorf("Input.DefaultDir = %q, want empty", cfg.Input.DefaultDir)
		}
		if cfg.Images.FullPath {
			t.Error("Images.FullPath = true, want false")
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("err = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nope.yaml")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("err = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("missing name lists searched paths", func(t *testing.T) {
		t.Parallel()

		_, err := LoadConfig("definitely-not-a-real-config-name")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("err = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), ".yaml") {
			t.Errorf("error does not list tried paths: %v", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "outptu:\n  defaultDir: ./out\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("err = %v, want ErrConfigParse", err)
		}
	})

	t.Run("malformed yaml rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "input: [broken\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("err = %v, want ErrConfigParse", err)
		}
	})

	t.Run("oversized field rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "input:\n  defaultDir: "+strings.Repeat("a", MaxPathLength+1)+"\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("err = %v, want ErrFieldTooLong", err)
		}
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("default config valid", func(t *testing.T) {
		t.Parallel()

		if err := DefaultConfig().Validate(); err != nil {
			t.Errorf("Validate: %v", err)
		}
	})

	t.Run("long output dir rejected", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{}
		cfg.Output.DefaultDir = strings.Repeat("b", MaxPathLength+1)
		if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("err = %v, want ErrFieldTooLong", err)
		}
	})
}
