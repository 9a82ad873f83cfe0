// Package layers defines the colour effects that can be painted onto a grid
// square. A Layer transforms the colour a square would otherwise show; some
// layers ignore the input entirely (black, rainbow), others modify it
// (lighten, invert). Layers carry a registry index so stores can composite
// them in a stable order.
package layers

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB triple as shown on screen.
type Color struct {
	R, G, B uint8
}

// ApplyFunc computes the output colour for a square. t is the animation
// timestamp (frame counter) and x, y the square position, so effects like
// rainbow and sparkle can vary over time and space while staying pure.
type ApplyFunc func(start Color, t int64, x, y int) Color

// Layer is a named colour effect. Index is its position in the registry and
// fixes the composition order used by sequence stores.
type Layer struct {
	Index int
	Name  string
	Apply ApplyFunc
}

var registry []Layer

func register(name string, fn ApplyFunc) Layer {
	l := Layer{Index: len(registry), Name: name, Apply: fn}
	registry = append(registry, l)
	return l
}

// All returns every registered layer in index order.
func All() []Layer {
	out := make([]Layer, len(registry))
	copy(out, registry)
	return out
}

// ByName looks a layer up by its registered name.
func ByName(name string) (Layer, bool) {
	for _, l := range registry {
		if l.Name == name {
			return l, true
		}
	}
	return Layer{}, false
}

// Count reports how many layers are registered.
func Count() int { return len(registry) }

// The standard layers. Registration order fixes their indices, which sequence
// stores rely on, so new layers must be appended here rather than inserted.
var (
	Black   = register("black", applyBlack)
	Darken  = register("darken", applyDarken)
	Invert  = register("invert", applyInvert)
	Lighten = register("lighten", applyLighten)
	Rainbow = register("rainbow", applyRainbow)
	Sparkle = register("sparkle", applySparkle)
)

func applyBlack(Color, int64, int, int) Color {
	return Color{}
}

func applyInvert(start Color, _ int64, _, _ int) Color {
	return Color{R: 255 - start.R, G: 255 - start.G, B: 255 - start.B}
}

const luminanceStep = 0.15

func applyLighten(start Color, _ int64, _, _ int) Color {
	h, s, l := toColorful(start).Hsl()
	return fromColorful(colorful.Hsl(h, s, math.Min(1, l+luminanceStep)))
}

func applyDarken(start Color, _ int64, _, _ int) Color {
	h, s, l := toColorful(start).Hsl()
	return fromColorful(colorful.Hsl(h, s, math.Max(0, l-luminanceStep)))
}

func applyRainbow(_ Color, t int64, x, y int) Color {
	hue := math.Mod(float64(t)*4+float64(x*7+y*11)*6, 360)
	if hue < 0 {
		hue += 360
	}
	return fromColorful(colorful.Hsv(hue, 0.8, 0.95))
}

func applySparkle(start Color, t int64, x, y int) Color {
	h := hash3(t, x, y)
	// Most frames pass through faded; the rest flash white.
	if h%7 != 0 {
		return applyDarken(start, t, x, y)
	}
	return Color{R: 255, G: 255, B: uint8(200 + h%56)}
}

func hash3(t int64, x, y int) uint64 {
	h := uint64(t)*2654435761 ^ uint64(int64(x))*40503 ^ uint64(int64(y))*9973
	h ^= h >> 33
	h *= 0xff51afd7ed558ccd
	h ^= h >> 33
	return h
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Hex formats the colour as #rrggbb, the form lipgloss and SVG expect.
func (c Color) Hex() string {
	return toColorful(c).Hex()
}

// Luminance returns perceived brightness in [0,1], used by the stats command.
func (c Color) Luminance() float64 {
	_, _, l := toColorful(c).Hsl()
	return l
}
