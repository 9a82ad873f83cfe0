package layers_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/axwes/Paint-Replica/internal/layers"
)

var _ = Describe("Registry", func() {
	It("assigns indices in registration order", func() {
		all := layers.All()
		Expect(all).To(HaveLen(layers.Count()))
		for i, l := range all {
			Expect(l.Index).To(Equal(i))
		}
	})

	It("resolves layers by name", func() {
		l, ok := layers.ByName("invert")
		Expect(ok).To(BeTrue())
		Expect(l.Index).To(Equal(layers.Invert.Index))

		_, ok = layers.ByName("no-such-layer")
		Expect(ok).To(BeFalse())
	})

	It("keeps names sorted by index for the standard set", func() {
		// The sequence store's special mode depends on name ordering
		// matching index ordering for the built-in layers.
		all := layers.All()
		for i := 1; i < len(all); i++ {
			Expect(all[i-1].Name < all[i].Name).To(BeTrue())
		}
	})
})

var _ = Describe("Effects", func() {
	white := layers.Color{R: 255, G: 255, B: 255}
	grey := layers.Color{R: 128, G: 128, B: 128}

	It("black ignores its input", func() {
		Expect(layers.Black.Apply(white, 0, 0, 0)).To(Equal(layers.Color{}))
		Expect(layers.Black.Apply(grey, 99, 3, 4)).To(Equal(layers.Color{}))
	})

	It("invert flips every channel", func() {
		c := layers.Invert.Apply(layers.Color{R: 10, G: 200, B: 0}, 0, 0, 0)
		Expect(c).To(Equal(layers.Color{R: 245, G: 55, B: 255}))
	})

	It("invert is its own inverse", func() {
		c := layers.Invert.Apply(layers.Invert.Apply(grey, 0, 0, 0), 0, 0, 0)
		Expect(c).To(Equal(grey))
	})

	It("lighten raises luminance and saturates at white", func() {
		lighter := layers.Lighten.Apply(grey, 0, 0, 0)
		Expect(lighter.Luminance()).To(BeNumerically(">", grey.Luminance()))
		Expect(layers.Lighten.Apply(white, 0, 0, 0)).To(Equal(white))
	})

	It("darken lowers luminance and saturates at black", func() {
		darker := layers.Darken.Apply(grey, 0, 0, 0)
		Expect(darker.Luminance()).To(BeNumerically("<", grey.Luminance()))
		Expect(layers.Darken.Apply(layers.Color{}, 0, 0, 0)).To(Equal(layers.Color{}))
	})

	It("rainbow is deterministic in (t, x, y)", func() {
		a := layers.Rainbow.Apply(grey, 42, 3, 5)
		b := layers.Rainbow.Apply(white, 42, 3, 5)
		Expect(a).To(Equal(b))

		moved := layers.Rainbow.Apply(grey, 42, 4, 5)
		Expect(moved).NotTo(Equal(a))
	})

	It("sparkle is deterministic in (t, x, y)", func() {
		a := layers.Sparkle.Apply(grey, 7, 1, 2)
		b := layers.Sparkle.Apply(grey, 7, 1, 2)
		Expect(a).To(Equal(b))
	})
})

var _ = Describe("Color", func() {
	It("formats hex for rendering", func() {
		Expect(layers.Color{R: 255, G: 0, B: 128}.Hex()).To(Equal("#ff0080"))
	})

	It("orders luminance black < grey < white", func() {
		black := layers.Color{}
		grey := layers.Color{R: 128, G: 128, B: 128}
		white := layers.Color{R: 255, G: 255, B: 255}
		Expect(black.Luminance()).To(BeNumerically("<", grey.Luminance()))
		Expect(grey.Luminance()).To(BeNumerically("<", white.Luminance()))
	})
})
