package model

import "github.com/google/uuid"

// CargoPreset represents a reusable cargo definition in the catalog.
type CargoPreset struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Width  float64 `json:"width"`  // m
	Height float64 `json:"height"` // m
	Depth  float64 `json:"depth"`  // m
	Weight float64 `json:"weight"` // kg per unit
}

// NewCargoPreset creates a new CargoPreset with a generated ID.
func NewCargoPreset(name string, w, h, d, weight float64) CargoPreset {
	return CargoPreset{
		ID:     uuid.New().String()[:8],
		Name:   name,
		Width:  w,
		Height: h,
		Depth:  d,
		Weight: weight,
	}
}

// ToCargo converts a preset into a manifest line with the given quantity.
func (cp CargoPreset) ToCargo(qty int) Cargo {
	return NewCargo(cp.Name, cp.Width, cp.Height, cp.Depth, cp.Weight, qty)
}

// ContainerPreset represents a reusable container definition (the fleet).
type ContainerPreset struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Width     float64 `json:"width"`      // m
	Height    float64 `json:"height"`     // m
	Depth     float64 `json:"depth"`      // m
	MaxWeight float64 `json:"max_weight"` // kg
}

// NewContainerPreset creates a new ContainerPreset with a generated ID.
func NewContainerPreset(name string, w, h, d, maxWeight float64) ContainerPreset {
	return ContainerPreset{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Width:     w,
		Height:    h,
		Depth:     d,
		MaxWeight: maxWeight,
	}
}

// ToContainer converts a preset into a Container for a pack run.
func (cp ContainerPreset) ToContainer() Container {
	return Container{
		Name:      cp.Name,
		Width:     cp.Width,
		Height:    cp.Height,
		Depth:     cp.Depth,
		MaxWeight: cp.MaxWeight,
	}
}

// Catalog holds the user's saved cargo presets and container fleet.
type Catalog struct {
	Cargo      []CargoPreset     `json:"cargo"`
	Containers []ContainerPreset `json:"containers"`
}

// DefaultCatalog returns a catalog populated with common defaults:
// standard ISO container internals and a few typical cargo types.
func DefaultCatalog() Catalog {
	return Catalog{
		Cargo: []CargoPreset{
			NewCargoPreset("Euro Pallet (loaded)", 1.2, 1.5, 0.8, 800),
			NewCargoPreset("Standard Pallet (loaded)", 1.2, 1.5, 1.0, 800),
			NewCargoPreset("Large Box", 2.0, 1.8, 1.5, 1500),
			NewCargoPreset("Machine Crate", 1.5, 1.2, 1.0, 1000),
			NewCargoPreset("Drum (boxed)", 0.6, 0.9, 0.6, 220),
			NewCargoPreset("Carton", 0.6, 0.4, 0.4, 25),
		},
		Containers: []ContainerPreset{
			NewContainerPreset("20ft Container", 5.90, 2.39, 2.35, 28230),
			NewContainerPreset("40ft Container", 12.03, 2.39, 2.35, 28000),
			NewContainerPreset("40ft High Cube", 12.03, 2.69, 2.35, 28560),
			NewContainerPreset("Box Truck 7.5t", 6.10, 2.30, 2.45, 2800),
		},
	}
}

// FindCargoByID returns a pointer to the cargo preset with the given ID, or nil.
func (cat *Catalog) FindCargoByID(id string) *CargoPreset {
	for i := range cat.Cargo {
		if cat.Cargo[i].ID == id {
			return &cat.Cargo[i]
		}
	}
	return nil
}

// FindContainerByID returns a pointer to the container preset with the given ID, or nil.
func (cat *Catalog) FindContainerByID(id string) *ContainerPreset {
	for i := range cat.Containers {
		if cat.Containers[i].ID == id {
			return &cat.Containers[i]
		}
	}
	return nil
}

// CargoNames returns the cargo preset names for UI dropdowns.
func (cat *Catalog) CargoNames() []string {
	names := make([]string, len(cat.Cargo))
	for i, c := range cat.Cargo {
		names[i] = c.Name
	}
	return names
}

// ContainerNames returns the container preset names for UI dropdowns.
func (cat *Catalog) ContainerNames() []string {
	names := make([]string, len(cat.Containers))
	for i, c := range cat.Containers {
		names[i] = c.Name
	}
	return names
}

// FindCargoByName returns a pointer to the first cargo preset with the given name, or nil.
func (cat *Catalog) FindCargoByName(name string) *CargoPreset {
	for i := range cat.Cargo {
		if cat.Cargo[i].Name == name {
			return &cat.Cargo[i]
		}
	}
	return nil
}

// FindContainerByName returns a pointer to the first container preset with the given name, or nil.
func (cat *Catalog) FindContainerByName(name string) *ContainerPreset {
	for i := range cat.Containers {
		if cat.Containers[i].Name == name {
			return &cat.Containers[i]
		}
	}
	return nil
}
