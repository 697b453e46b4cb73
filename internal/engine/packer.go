// Package engine implements the 3D container-loading algorithm: a
// deterministic first-fit-decreasing heuristic over a growing frontier of
// candidate anchor positions, with six axis-aligned rotations per item.
package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/StowPack/internal/model"
)

// Packer runs the container-loading algorithm.
type Packer struct {
	Settings model.PackSettings
}

func New(settings model.PackSettings) *Packer {
	return &Packer{Settings: settings}
}

// Pack validates the inputs and loads the manifest into the container.
// Manifest quantities are expanded into unit items before packing. Items
// that cannot be placed are returned in the result's Unfitted list in
// manifest order; malformed input fails the whole call before any
// placement work starts.
func (p *Packer) Pack(container model.Container, manifest []model.Cargo) (model.LoadResult, error) {
	if err := ValidateContainer(container); err != nil {
		return model.LoadResult{}, err
	}
	if err := ValidateManifest(manifest); err != nil {
		return model.LoadResult{}, err
	}

	units := ExpandManifest(manifest)

	if p.Settings.Algorithm == model.AlgorithmGenetic {
		return packGenetic(container, units, DefaultGeneticConfig(), p.Settings.GeneticSeed), nil
	}
	return packGreedy(container, units), nil
}

// ValidateContainer checks that all container dimensions and the weight
// limit are strictly positive.
func ValidateContainer(c model.Container) error {
	if !c.Dims().Valid() {
		return fmt.Errorf("container %q: dimensions must be positive, got %.3f x %.3f x %.3f",
			c.Name, c.Width, c.Height, c.Depth)
	}
	if c.MaxWeight <= 0 {
		return fmt.Errorf("container %q: max weight must be positive, got %.3f", c.Name, c.MaxWeight)
	}
	return nil
}

// ValidateManifest checks every manifest line for positive dimensions and
// quantity and non-negative weight. A bad line is a configuration error,
// not an "unfitted" outcome.
func ValidateManifest(manifest []model.Cargo) error {
	for _, c := range manifest {
		if !c.Dims().Valid() {
			return fmt.Errorf("cargo %q: dimensions must be positive, got %.3f x %.3f x %.3f",
				c.Name, c.Width, c.Height, c.Depth)
		}
		if c.Weight < 0 {
			return fmt.Errorf("cargo %q: weight must not be negative, got %.3f", c.Name, c.Weight)
		}
		if c.Quantity <= 0 {
			return fmt.Errorf("cargo %q: quantity must be positive, got %d", c.Name, c.Quantity)
		}
	}
	return nil
}

// ExpandManifest expands manifest quantities into individual unit items.
// Each unit is named "<name>_<index>" and keeps the manifest name in
// Group, preserving manifest order for stable tie-breaking.
func ExpandManifest(manifest []model.Cargo) []model.Cargo {
	var units []model.Cargo
	for _, line := range manifest {
		for i := 0; i < line.Quantity; i++ {
			unit := line
			unit.ID = fmt.Sprintf("%s-%d", line.ID, i)
			unit.Name = fmt.Sprintf("%s_%d", line.Name, i)
			unit.Group = line.Name
			unit.Quantity = 1
			units = append(units, unit)
		}
	}
	return units
}

// placedBox is the occupied-space bookkeeping entry for one placement.
type placedBox struct {
	pos  model.Position
	dims model.Dimensions
}

// packGreedy places units in volume-descending order, accepting for each
// unit the first anchor/rotation pair that passes containment, overlap,
// and weight checks.
func packGreedy(container model.Container, units []model.Cargo) model.LoadResult {
	sorted := sortForPacking(units)

	result := model.LoadResult{Container: container}
	anchors := newAnchorSet()
	var placed []placedBox
	var runningWeight float64
	unfittedIDs := make(map[string]bool)

	for _, unit := range sorted {
		if runningWeight+unit.Weight > container.MaxWeight {
			unfittedIDs[unit.ID] = true
			continue
		}

		pos, rotation, ok := findPlacement(container, placed, unit, anchors.snapshot())
		if !ok {
			unfittedIDs[unit.ID] = true
			continue
		}

		dims := unit.Dims().Rotated(rotation)
		result.Placements = append(result.Placements, model.Placement{
			Cargo:    unit,
			Position: pos,
			Rotation: rotation,
		})
		placed = append(placed, placedBox{pos: pos, dims: dims})
		runningWeight += unit.Weight

		// Extend the frontier from the three far faces of the placed
		// box, in x, y, z order.
		anchors.register(model.Position{X: pos.X + dims.Width, Y: pos.Y, Z: pos.Z})
		anchors.register(model.Position{X: pos.X, Y: pos.Y + dims.Height, Z: pos.Z})
		anchors.register(model.Position{X: pos.X, Y: pos.Y, Z: pos.Z + dims.Depth})
	}

	// Unfitted units are reported in manifest order, not sort order.
	for _, unit := range units {
		if unfittedIDs[unit.ID] {
			result.Unfitted = append(result.Unfitted, unit)
		}
	}
	return result
}

// findPlacement searches the anchor frontier in insertion order, trying
// the six rotations in numeric order at each anchor, and returns the
// first pair that fits inside the container without overlapping any
// placed box.
func findPlacement(container model.Container, placed []placedBox, unit model.Cargo, anchors []model.Position) (model.Position, model.RotationType, bool) {
	containerDims := container.Dims()
	for _, anchor := range anchors {
		for _, rotation := range model.AllRotations {
			dims := unit.Dims().Rotated(rotation)
			if !boxFitsWithin(anchor, dims, containerDims) {
				continue
			}
			if overlapsAny(anchor, dims, placed) {
				continue
			}
			return anchor, rotation, true
		}
	}
	return model.Position{}, model.RotationWHD, false
}

func overlapsAny(pos model.Position, dims model.Dimensions, placed []placedBox) bool {
	for _, b := range placed {
		if boxesOverlap(pos, dims, b.pos, b.dims) {
			return true
		}
	}
	return false
}

// sortForPacking returns units ordered by intrinsic volume descending.
// The sort is stable so units of equal volume keep their manifest order;
// large items go first while space is least fragmented.
func sortForPacking(units []model.Cargo) []model.Cargo {
	sorted := make([]model.Cargo, len(units))
	copy(sorted, units)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Volume() > sorted[j].Volume()
	})
	return sorted
}
