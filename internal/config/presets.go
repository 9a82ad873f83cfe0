package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Width: 24, Height: 16, Style: "SET", Brush: 2,
		Theme: "midnight", Background: "#1a1a2e", FPS: 30,
	},
	"postcard": {
		Width: 32, Height: 12, Style: "SET", Brush: 1,
		Theme: "paper", Background: "#f4ecd8", FPS: 30,
	},
	"stacks": {
		Width: 20, Height: 14, Style: "ADD", Brush: 2,
		Theme: "midnight", Background: "#10101c", FPS: 30,
	},
	"neon": {
		Width: 28, Height: 18, Style: "ADD", Brush: 3,
		Theme: "retro", Background: "#001100", FPS: 60,
	},
	"mosaic": {
		Width: 16, Height: 16, Style: "SEQUENCE", Brush: 1,
		Theme: "ocean", Background: "#001a33", FPS: 30,
	},
	"mural": {
		Width: 48, Height: 24, Style: "SEQUENCE", Brush: 3,
		Theme: "midnight", Background: "#1a1a2e", FPS: 30,
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
// Callers may mutate the result freely.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
