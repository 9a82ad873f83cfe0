package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/axwes/Paint-Replica/internal/grid"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Style != "SET" {
		t.Errorf("expected style SET, got %s", cfg.Style)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("dimensions should be positive")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -2 }},
		{"bad style", func(c *Config) { c.Style = "SPLATTER" }},
		{"brush too big", func(c *Config) { c.Brush = grid.MaxBrush + 1 }},
		{"brush negative", func(c *Config) { c.Brush = -1 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paint.yaml")

	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Style = "SEQUENCE"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if back.Width != 40 || back.Style != "SEQUENCE" {
		t.Errorf("roundtrip lost fields: %+v", back)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paint.yaml")
	if err := os.WriteFile(path, []byte("width: 10\nheight: 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Width != 10 || cfg.Height != 7 {
		t.Errorf("explicit fields not applied: %+v", cfg)
	}
	if cfg.Style != DefaultStyle || cfg.FPS != DefaultFPS {
		t.Errorf("omitted fields should keep defaults: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paint.yaml")
	if err := os.WriteFile(path, []byte("style: NOPE\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid style")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset should validate: %v", err)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestAllPresetsValid(t *testing.T) {
	for _, name := range ListPresets() {
		if err := GetPreset(name).Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}

func TestNewGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Brush = 4

	g, err := cfg.NewGrid()
	if err != nil {
		t.Fatalf("new grid: %v", err)
	}
	if g.Width != cfg.Width || g.Height != cfg.Height {
		t.Errorf("grid %dx%d, want %dx%d", g.Width, g.Height, cfg.Width, cfg.Height)
	}
	if g.Brush() != 4 {
		t.Errorf("brush = %d, want 4", g.Brush())
	}
	if g.Style != grid.DrawStyleSet {
		t.Errorf("style = %s, want SET", g.Style)
	}
}
