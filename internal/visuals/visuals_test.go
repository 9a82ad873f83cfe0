package visuals

import (
	"strings"
	"testing"

	"github.com/axwes/Paint-Replica/internal/render"
)

func TestScene(t *testing.T) {
	for _, name := range Names {
		t.Run(name, func(t *testing.T) {
			out, err := Scene(name, render.ThemeMidnight)
			if err != nil {
				t.Fatalf("scene: %v", err)
			}
			if out == "" {
				t.Error("scene rendered nothing")
			}
		})
	}
}

func TestSceneUnknown(t *testing.T) {
	if _, err := Scene("dramatic", render.ThemeMidnight); err == nil {
		t.Error("expected error for unknown scene")
	}
}

func TestStylesShowsAllThree(t *testing.T) {
	out, _ := Scene("styles", render.ThemeMidnight)
	for _, want := range []string{"SET", "ADD", "SEQUENCE"} {
		if !strings.Contains(out, want) {
			t.Errorf("styles scene missing %s panel", want)
		}
	}
}

func TestScenesDiffer(t *testing.T) {
	basic, _ := Scene("basic", render.ThemeMidnight)
	complexScene, _ := Scene("complex", render.ThemeMidnight)
	if basic == complexScene {
		t.Error("scenes should render differently")
	}
}
