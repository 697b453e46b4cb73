package engine

import "github.com/piwi3910/StowPack/internal/model"

// anchorSet maintains the ordered frontier of candidate positions where
// the packer tries to place an item's minimum corner. Order is strict
// insertion order, never coordinate-sorted; anchors are never removed,
// because a later, differently shaped item may still succeed where an
// earlier one failed. A map keyed by position gives O(1) deduplication so
// the frontier cannot accumulate duplicates as it grows.
type anchorSet struct {
	order []model.Position
	seen  map[model.Position]struct{}
}

// newAnchorSet creates a frontier seeded with the container origin.
func newAnchorSet() *anchorSet {
	s := &anchorSet{
		seen: make(map[model.Position]struct{}),
	}
	s.register(model.Position{})
	return s
}

// register appends a candidate position unless a coordinate-equal anchor
// is already present.
func (s *anchorSet) register(p model.Position) {
	if _, ok := s.seen[p]; ok {
		return
	}
	s.seen[p] = struct{}{}
	s.order = append(s.order, p)
}

// snapshot returns a copy of the current frontier. Each item's search
// iterates over a snapshot so anchors registered during that search are
// only visible to later items.
func (s *anchorSet) snapshot() []model.Position {
	cp := make([]model.Position, len(s.order))
	copy(cp, s.order)
	return cp
}

// len returns the number of distinct anchors registered so far.
func (s *anchorSet) len() int {
	return len(s.order)
}
