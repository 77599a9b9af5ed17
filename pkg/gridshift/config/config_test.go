package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/gridshift-go/pkg/gridshift"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.toml")} {
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%q) error: %v", path, err)
		}
		opts := cfg.Options(nil)
		d := gridshift.DefaultOptions()
		if opts.MaxRows != d.MaxRows || opts.MaxColumns != d.MaxColumns {
			t.Fatalf("Load(%q) limits = %d x %d, want %d x %d", path, opts.MaxRows, opts.MaxColumns, d.MaxRows, d.MaxColumns)
		}
		if !opts.ShouldAdjustOtherSheets() {
			t.Fatalf("Load(%q) AdjustOtherSheets = false, want true", path)
		}
	}
}

func TestLoadTOMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridshift.toml")
	writeFile(t, path, `
[editor]
max-rows = 500
default-row-height = 20.5
adjust-other-sheets = false

[log]
debug = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.MaxRows != 500 {
		t.Fatalf("MaxRows = %d, want 500", cfg.Editor.MaxRows)
	}
	if cfg.Editor.MaxColumns != gridshift.DefaultOptions().MaxColumns {
		t.Fatalf("MaxColumns = %d, want default", cfg.Editor.MaxColumns)
	}
	if cfg.Editor.DefaultRowHeight != 20.5 {
		t.Fatalf("DefaultRowHeight = %v, want 20.5", cfg.Editor.DefaultRowHeight)
	}
	if cfg.Options(nil).ShouldAdjustOtherSheets() {
		t.Fatalf("AdjustOtherSheets = true, want false")
	}
	if !cfg.Log.Debug {
		t.Fatalf("Log.Debug = false, want true")
	}
}

func TestLoadYAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridshift.yaml")
	writeFile(t, path, `
editor:
  max-columns: 100
  max-digit-width: 8
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Editor.MaxColumns != 100 {
		t.Fatalf("MaxColumns = %d, want 100", cfg.Editor.MaxColumns)
	}
	if cfg.Editor.MaxDigitWidth != 8 {
		t.Fatalf("MaxDigitWidth = %v, want 8", cfg.Editor.MaxDigitWidth)
	}
	if cfg.Editor.DefaultColumnWidth != gridshift.DefaultColumnWidth {
		t.Fatalf("DefaultColumnWidth = %v, want default", cfg.Editor.DefaultColumnWidth)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridshift.toml")
	writeFile(t, path, "[editor\nmax-rows = ")

	if _, err := Load(path); err == nil {
		t.Fatalf("Load error = nil, want parse error")
	}
}
