package grid

import (
	"testing"

	"github.com/axwes/Paint-Replica/internal/layers"
)

var white = layers.Color{R: 255, G: 255, B: 255}

func TestSetLayerStore(t *testing.T) {
	s := NewSetLayerStore()

	if got := s.GetColor(white, 0, 0, 0); got != white {
		t.Errorf("empty store should pass start through, got %v", got)
	}

	if !s.Add(layers.Black) {
		t.Error("adding to empty store should change it")
	}
	if s.Add(layers.Black) {
		t.Error("re-adding the same layer should be a no-op")
	}
	if !s.Add(layers.Invert) {
		t.Error("replacing the layer should change the store")
	}

	if got := s.GetColor(white, 0, 0, 0); got != (layers.Color{}) {
		t.Errorf("invert(white) = %v, want black", got)
	}

	if !s.Erase(layers.Black) {
		t.Error("erase should succeed regardless of which layer is passed")
	}
	if s.Erase(layers.Black) {
		t.Error("erasing an empty store should be a no-op")
	}
}

func TestSetLayerStore_Special(t *testing.T) {
	s := NewSetLayerStore()
	s.Add(layers.Black)

	s.Special()
	if got := s.GetColor(white, 0, 0, 0); got != white {
		t.Errorf("special should invert black output to white, got %v", got)
	}

	s.Special()
	if got := s.GetColor(white, 0, 0, 0); got != (layers.Color{}) {
		t.Errorf("special twice should cancel out, got %v", got)
	}
}

func TestSetLayerStore_SpecialWithoutLayer(t *testing.T) {
	s := NewSetLayerStore()
	s.Special()
	if got := s.GetColor(white, 0, 0, 0); got != white {
		t.Errorf("special with no layer should not touch the start colour, got %v", got)
	}
}

func TestAdditiveLayerStore(t *testing.T) {
	s := NewAdditiveLayerStore()

	if s.Erase(layers.Black) {
		t.Error("erasing an empty store should be a no-op")
	}

	s.Add(layers.Black)
	s.Add(layers.Invert)

	// black then invert: white -> black -> white
	if got := s.GetColor(white, 0, 0, 0); got != white {
		t.Errorf("composite = %v, want white", got)
	}

	// special reverses: invert then black -> black
	s.Special()
	if got := s.GetColor(white, 0, 0, 0); got != (layers.Color{}) {
		t.Errorf("after reverse composite = %v, want black", got)
	}

	// erase drops the oldest (now invert)
	if !s.Erase(layers.Black) {
		t.Error("erase on non-empty store should change it")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 layer left, got %d", s.Len())
	}
}

func TestAdditiveLayerStore_Capacity(t *testing.T) {
	s := NewAdditiveLayerStore()
	for i := 0; i < AdditiveCapacity; i++ {
		if !s.Add(layers.Lighten) {
			t.Fatalf("add %d rejected below capacity", i)
		}
	}
	if s.Add(layers.Lighten) {
		t.Error("add beyond capacity should be rejected")
	}
}

func TestSequenceLayerStore(t *testing.T) {
	s := NewSequenceLayerStore()

	if !s.Add(layers.Invert) {
		t.Error("adding a new layer type should change the store")
	}
	if s.Add(layers.Invert) {
		t.Error("adding an applied layer type should be a no-op")
	}

	// Composition follows index order, not insertion order: black (index 0)
	// applies before invert even though invert was added first.
	s.Add(layers.Black)
	if got := s.GetColor(white, 0, 0, 0); got != white {
		t.Errorf("composite = %v, want white (black then invert)", got)
	}

	if !s.Erase(layers.Black) {
		t.Error("erasing an applied layer should change the store")
	}
	if s.Erase(layers.Black) {
		t.Error("erasing an absent layer should be a no-op")
	}
}

func TestSequenceLayerStore_Special(t *testing.T) {
	tests := []struct {
		name    string
		applied []layers.Layer
		removed layers.Layer
	}{
		{
			name:    "odd count removes middle name",
			applied: []layers.Layer{layers.Black, layers.Invert, layers.Sparkle},
			removed: layers.Invert,
		},
		{
			name:    "even count removes smaller middle name",
			applied: []layers.Layer{layers.Black, layers.Darken, layers.Invert, layers.Lighten},
			removed: layers.Darken,
		},
		{
			name:    "single layer removes it",
			applied: []layers.Layer{layers.Rainbow},
			removed: layers.Rainbow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSequenceLayerStore()
			for _, l := range tt.applied {
				s.Add(l)
			}
			s.Special()
			if s.Add(tt.removed) != true {
				t.Errorf("expected %s to have been removed", tt.removed.Name)
			}
			if s.Len() != len(tt.applied) {
				t.Errorf("expected only one layer removed")
			}
		})
	}
}

func TestSequenceLayerStore_SpecialEmpty(t *testing.T) {
	s := NewSequenceLayerStore()
	s.Special() // must not panic
	if s.Len() != 0 {
		t.Error("special on empty store should do nothing")
	}
}
