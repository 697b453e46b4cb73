package model

import (
	"fmt"

	"github.com/google/uuid"
)

// RotationType identifies one of the six axis permutations of a cargo
// item's dimensions. The numeric values are a contract shared with the
// exporters and the load canvas: a placement's occupied box is always
// reconstructed through Dimensions.Rotated with the stored index.
type RotationType int

const (
	RotationWHD RotationType = iota // width, height, depth as given
	RotationHWD                     // height, width, depth
	RotationHDW                     // height, depth, width
	RotationDHW                     // depth, height, width
	RotationDWH                     // depth, width, height
	RotationWDH                     // width, depth, height
)

// AllRotations lists the rotation types in placement search order.
var AllRotations = [6]RotationType{
	RotationWHD, RotationHWD, RotationHDW, RotationDHW, RotationDWH, RotationWDH,
}

func (r RotationType) String() string {
	switch r {
	case RotationWHD:
		return "WHD"
	case RotationHWD:
		return "HWD"
	case RotationHDW:
		return "HDW"
	case RotationDHW:
		return "DHW"
	case RotationDWH:
		return "DWH"
	case RotationWDH:
		return "WDH"
	default:
		return fmt.Sprintf("RotationType(%d)", int(r))
	}
}

// Dimensions is a width/height/depth triple in metres.
type Dimensions struct {
	Width  float64 `json:"width"`  // m, X axis
	Height float64 `json:"height"` // m, Y axis
	Depth  float64 `json:"depth"`  // m, Z axis
}

// Volume returns the box volume in cubic metres.
func (d Dimensions) Volume() float64 {
	return d.Width * d.Height * d.Depth
}

// Valid reports whether all three dimensions are strictly positive.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0 && d.Depth > 0
}

// Rotated returns the dimensions permuted by the given rotation type.
func (d Dimensions) Rotated(r RotationType) Dimensions {
	switch r {
	case RotationHWD:
		return Dimensions{Width: d.Height, Height: d.Width, Depth: d.Depth}
	case RotationHDW:
		return Dimensions{Width: d.Height, Height: d.Depth, Depth: d.Width}
	case RotationDHW:
		return Dimensions{Width: d.Depth, Height: d.Height, Depth: d.Width}
	case RotationDWH:
		return Dimensions{Width: d.Depth, Height: d.Width, Depth: d.Height}
	case RotationWDH:
		return Dimensions{Width: d.Width, Height: d.Depth, Depth: d.Height}
	default:
		return d
	}
}

// Position is the minimum corner of a box inside the container, in metres
// from the container origin.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Cargo represents one line of the load manifest: a box type with a
// quantity. Before packing, quantities are expanded into unit items
// (Quantity 1) with indexed names; Group then holds the manifest name.
type Cargo struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Group    string  `json:"group,omitempty"` // manifest name for expanded units
	Width    float64 `json:"width"`           // m
	Height   float64 `json:"height"`          // m
	Depth    float64 `json:"depth"`           // m
	Weight   float64 `json:"weight"`          // kg per unit
	Quantity int     `json:"quantity"`
}

func NewCargo(name string, w, h, d, weight float64, qty int) Cargo {
	return Cargo{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Width:    w,
		Height:   h,
		Depth:    d,
		Weight:   weight,
		Quantity: qty,
	}
}

// Dims returns the intrinsic (unrotated) dimensions.
func (c Cargo) Dims() Dimensions {
	return Dimensions{Width: c.Width, Height: c.Height, Depth: c.Depth}
}

// Volume returns the intrinsic volume of a single unit. Rotation never
// changes an item's volume, so this is also its occupied volume.
func (c Cargo) Volume() float64 {
	return c.Width * c.Height * c.Depth
}

// GroupName returns the manifest-level name of this item: Group when the
// item is an expanded unit, otherwise Name.
func (c Cargo) GroupName() string {
	if c.Group != "" {
		return c.Group
	}
	return c.Name
}

// Container represents the loading space: a rectangular box with a
// payload weight limit. Immutable for the duration of a pack run.
type Container struct {
	Name      string  `json:"name"`
	Width     float64 `json:"width"`      // m, X axis
	Height    float64 `json:"height"`     // m, Y axis
	Depth     float64 `json:"depth"`      // m, Z axis
	MaxWeight float64 `json:"max_weight"` // kg
}

// NewContainer returns a standard 40 ft container. The dimensions are the
// usual internal measurements: 12.03 x 2.39 x 2.35 m, 28 t payload.
func NewContainer() Container {
	return Container{
		Name:      "40ft Container",
		Width:     12.03,
		Height:    2.39,
		Depth:     2.35,
		MaxWeight: 28000,
	}
}

// Dims returns the container's interior dimensions.
func (c Container) Dims() Dimensions {
	return Dimensions{Width: c.Width, Height: c.Height, Depth: c.Depth}
}

// Volume returns the interior volume in cubic metres.
func (c Container) Volume() float64 {
	return c.Width * c.Height * c.Depth
}

// Placement records one cargo unit fixed inside the container: its minimum
// corner position and the rotation applied to its intrinsic dimensions.
type Placement struct {
	Cargo    Cargo        `json:"cargo"`
	Position Position     `json:"position"`
	Rotation RotationType `json:"rotation"`
}

// PlacedDims returns the occupied dimensions after rotation.
func (p Placement) PlacedDims() Dimensions {
	return p.Cargo.Dims().Rotated(p.Rotation)
}

// LoadResult holds the outcome of one pack run: the placements in item
// sort order and the units that could not be placed, in manifest order.
type LoadResult struct {
	Container  Container   `json:"container"`
	Placements []Placement `json:"placements"`
	Unfitted   []Cargo     `json:"unfitted"`
}

// PackedVolume returns the total intrinsic volume of all placed units.
func (lr LoadResult) PackedVolume() float64 {
	var total float64
	for _, p := range lr.Placements {
		total += p.Cargo.Volume()
	}
	return total
}

// PackedWeight returns the total weight of all placed units.
func (lr LoadResult) PackedWeight() float64 {
	var total float64
	for _, p := range lr.Placements {
		total += p.Cargo.Weight
	}
	return total
}

// LoadEfficiency returns the packed volume as a percentage of the
// container volume.
func (lr LoadResult) LoadEfficiency() float64 {
	cv := lr.Container.Volume()
	if cv == 0 {
		return 0
	}
	return (lr.PackedVolume() / cv) * 100.0
}

// FreeVolume returns the unoccupied container volume.
func (lr LoadResult) FreeVolume() float64 {
	return lr.Container.Volume() - lr.PackedVolume()
}

// RemainingWeight returns the unused payload weight allowance.
func (lr LoadResult) RemainingWeight() float64 {
	return lr.Container.MaxWeight - lr.PackedWeight()
}

// UnfittedCountsByName aggregates the unfitted units per manifest name,
// for the reporting views.
func (lr LoadResult) UnfittedCountsByName() map[string]int {
	counts := make(map[string]int)
	for _, c := range lr.Unfitted {
		counts[c.GroupName()]++
	}
	return counts
}

// Algorithm selects the packing strategy.
type Algorithm string

const (
	AlgorithmGreedy  Algorithm = "greedy"  // First-fit decreasing (fast, deterministic)
	AlgorithmGenetic Algorithm = "genetic" // Genetic order refinement (slower, often better)
)

// PackSettings holds the packing configuration for a project.
type PackSettings struct {
	Algorithm   Algorithm `json:"algorithm"`
	GeneticSeed int64     `json:"genetic_seed"` // RNG seed for the genetic refinement
}

func DefaultSettings() PackSettings {
	return PackSettings{
		Algorithm:   AlgorithmGreedy,
		GeneticSeed: 1,
	}
}

// Project ties everything together for save/load.
type Project struct {
	Name      string       `json:"name"`
	Container Container    `json:"container"`
	Manifest  []Cargo      `json:"manifest"`
	Settings  PackSettings `json:"settings"`
	Result    *LoadResult  `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:      "Untitled",
		Container: NewContainer(),
		Manifest:  []Cargo{},
		Settings:  DefaultSettings(),
	}
}
