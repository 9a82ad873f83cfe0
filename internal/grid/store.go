package grid

import (
	"sort"

	"github.com/axwes/Paint-Replica/internal/layers"
)

// LayerStore holds the layers applied to a single grid square. Add and Erase
// report whether the store actually changed, so callers can skip recording
// no-op steps. Special is a store-specific twist on the output.
type LayerStore interface {
	Add(l layers.Layer) bool
	Erase(l layers.Layer) bool
	GetColor(start layers.Color, t int64, x, y int) layers.Color
	Special()
}

// SetLayerStore keeps at most one layer. Adding replaces it, erasing clears
// it regardless of which layer is passed, and special inverts the output of
// the stored layer.
type SetLayerStore struct {
	layer  *layers.Layer
	invert bool
}

func NewSetLayerStore() *SetLayerStore { return &SetLayerStore{} }

func (s *SetLayerStore) Add(l layers.Layer) bool {
	if s.layer != nil && s.layer.Index == l.Index {
		return false
	}
	s.layer = &l
	return true
}

func (s *SetLayerStore) Erase(layers.Layer) bool {
	if s.layer == nil {
		return false
	}
	s.layer = nil
	return true
}

func (s *SetLayerStore) GetColor(start layers.Color, t int64, x, y int) layers.Color {
	if s.layer == nil {
		return start
	}
	c := s.layer.Apply(start, t, x, y)
	if s.invert {
		c = layers.Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
	}
	return c
}

func (s *SetLayerStore) Special() { s.invert = !s.invert }

// AdditiveCapacity bounds how many layers one square can stack.
const AdditiveCapacity = 100

// AdditiveLayerStore stacks layers in arrival order; each applies on top of
// the previous output. Erasing drops the oldest layer and special reverses
// the stack.
type AdditiveLayerStore struct {
	queue []layers.Layer
}

func NewAdditiveLayerStore() *AdditiveLayerStore {
	return &AdditiveLayerStore{queue: make([]layers.Layer, 0, 8)}
}

func (s *AdditiveLayerStore) Add(l layers.Layer) bool {
	if len(s.queue) >= AdditiveCapacity {
		return false
	}
	s.queue = append(s.queue, l)
	return true
}

func (s *AdditiveLayerStore) Erase(layers.Layer) bool {
	if len(s.queue) == 0 {
		return false
	}
	s.queue = s.queue[1:]
	return true
}

func (s *AdditiveLayerStore) GetColor(start layers.Color, t int64, x, y int) layers.Color {
	c := start
	for _, l := range s.queue {
		c = l.Apply(c, t, x, y)
	}
	return c
}

func (s *AdditiveLayerStore) Special() {
	for i, j := 0, len(s.queue)-1; i < j; i, j = i+1, j-1 {
		s.queue[i], s.queue[j] = s.queue[j], s.queue[i]
	}
}

// Len reports how many layers are stacked.
func (s *AdditiveLayerStore) Len() int { return len(s.queue) }

// SequenceLayerStore tracks, per layer type, whether it is applied. Output
// composites the applied layers in registry index order no matter when they
// were added. Special removes the applied layer with the median name; with an
// even count the lexicographically smaller of the two middle names goes.
type SequenceLayerStore struct {
	applied map[int]layers.Layer
}

func NewSequenceLayerStore() *SequenceLayerStore {
	return &SequenceLayerStore{applied: make(map[int]layers.Layer)}
}

func (s *SequenceLayerStore) Add(l layers.Layer) bool {
	if _, ok := s.applied[l.Index]; ok {
		return false
	}
	s.applied[l.Index] = l
	return true
}

func (s *SequenceLayerStore) Erase(l layers.Layer) bool {
	if _, ok := s.applied[l.Index]; !ok {
		return false
	}
	delete(s.applied, l.Index)
	return true
}

func (s *SequenceLayerStore) GetColor(start layers.Color, t int64, x, y int) layers.Color {
	if len(s.applied) == 0 {
		return start
	}
	indices := make([]int, 0, len(s.applied))
	for idx := range s.applied {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	c := start
	for _, idx := range indices {
		c = s.applied[idx].Apply(c, t, x, y)
	}
	return c
}

func (s *SequenceLayerStore) Special() {
	if len(s.applied) == 0 {
		return
	}
	current := make([]layers.Layer, 0, len(s.applied))
	for _, l := range s.applied {
		current = append(current, l)
	}
	sort.Slice(current, func(i, j int) bool { return current[i].Name < current[j].Name })
	median := current[(len(current)-1)/2]
	delete(s.applied, median.Index)
}

// Len reports how many layer types are applied.
func (s *SequenceLayerStore) Len() int { return len(s.applied) }
