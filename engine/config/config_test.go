package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ombra.toml")
	data := []byte(`
[application]
name = "Testbed"
start_pos_x = 10
start_pos_y = 20
start_width = 800
start_height = 600
log_level = "info"
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	app := cfg.Application
	if app.Name != "Testbed" {
		t.Errorf("expected name Testbed, got %q", app.Name)
	}
	if app.StartPosX != 10 || app.StartPosY != 20 {
		t.Errorf("expected position (10, 20), got (%d, %d)", app.StartPosX, app.StartPosY)
	}
	if app.StartWidth != 800 || app.StartHeight != 600 {
		t.Errorf("expected size 800x600, got %dx%d", app.StartWidth, app.StartHeight)
	}
	if app.LogLevel != "info" {
		t.Errorf("expected log level info, got %q", app.LogLevel)
	}
}

func TestLoadKeepsDefaultsForAbsentFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ombra.toml")
	if err := os.WriteFile(path, []byte("[application]\nname = \"Partial\"\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if cfg.Application.Name != "Partial" {
		t.Errorf("expected name Partial, got %q", cfg.Application.Name)
	}
	if cfg.Application.StartWidth != Default().Application.StartWidth {
		t.Errorf("expected default width, got %d", cfg.Application.StartWidth)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("application = [unclosed"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}
