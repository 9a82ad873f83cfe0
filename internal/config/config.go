package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/axwes/Paint-Replica/internal/grid"
)

const (
	DefaultWidth      = 24
	DefaultHeight     = 16
	DefaultStyle      = "SET"
	DefaultTheme      = "midnight"
	DefaultBackground = "#1a1a2e"
	DefaultFPS        = 30
)

type Config struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Style      string `yaml:"style"`
	Brush      int    `yaml:"brush"`
	Theme      string `yaml:"theme"`
	Background string `yaml:"background"`
	FPS        int    `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Style:      DefaultStyle,
		Brush:      grid.DefaultBrush,
		Theme:      DefaultTheme,
		Background: DefaultBackground,
		FPS:        DefaultFPS,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fields a grid cannot be built from.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	switch grid.DrawStyle(c.Style) {
	case grid.DrawStyleSet, grid.DrawStyleAdd, grid.DrawStyleSequence:
	default:
		return fmt.Errorf("unknown draw style %q", c.Style)
	}
	if c.Brush < grid.MinBrush || c.Brush > grid.MaxBrush {
		return fmt.Errorf("brush size %d outside [%d,%d]", c.Brush, grid.MinBrush, grid.MaxBrush)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}

// DrawStyle returns the configured style as a grid.DrawStyle.
func (c *Config) DrawStyle() grid.DrawStyle {
	return grid.DrawStyle(c.Style)
}

// NewGrid builds a grid from the config, applying the configured brush size.
func (c *Config) NewGrid() (*grid.Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(c.DrawStyle(), c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	for g.Brush() > c.Brush {
		g.DecreaseBrush()
	}
	for g.Brush() < c.Brush {
		g.IncreaseBrush()
	}
	return g, nil
}
