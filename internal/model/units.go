package model

import "math"

// Catalog files come in two unit schemes: metres + kilograms, or
// millimetres + grams. The engine works in metres and kilograms
// throughout; these helpers normalize imported values.

// MetersFromMillimeters converts a length in mm to m.
func MetersFromMillimeters(mm float64) float64 {
	return mm / 1000.0
}

// KilogramsFromGrams converts a weight in g to kg.
func KilogramsFromGrams(g float64) float64 {
	return g / 1000.0
}

// LoadEstimate holds the results of a container purchase/booking estimate.
type LoadEstimate struct {
	TotalVolume          float64 `json:"total_volume"`          // Total manifest volume (m3)
	TotalWeight          float64 `json:"total_weight"`          // Total manifest weight (kg)
	ContainerVolume      float64 `json:"container_volume"`      // Volume of one container (m3)
	ContainersByVolume   float64 `json:"containers_by_volume"`  // Exact fractional count by volume
	ContainersByWeight   float64 `json:"containers_by_weight"`  // Exact fractional count by weight
	ContainersNeededMin  int     `json:"containers_needed_min"` // Ceiling of the binding constraint
	ContainersWithMargin int     `json:"containers_with_margin"`
	UtilizationPercent   float64 `json:"utilization_percent"` // Assumed achievable fill rate
}

// CalculateLoadEstimate estimates how many containers a manifest needs.
// Perfect packing is never achieved in practice, so the volume demand is
// scaled by an assumed achievable utilization (e.g. 85 means the planner
// expects to fill at most 85% of each container).
func CalculateLoadEstimate(manifest []Cargo, container Container, utilizationPercent float64) LoadEstimate {
	var totalVolume, totalWeight float64
	for _, c := range manifest {
		qty := float64(c.Quantity)
		if c.Quantity <= 0 {
			qty = 1
		}
		totalVolume += c.Volume() * qty
		totalWeight += c.Weight * qty
	}

	est := LoadEstimate{
		TotalVolume:        totalVolume,
		TotalWeight:        totalWeight,
		ContainerVolume:    container.Volume(),
		UtilizationPercent: utilizationPercent,
	}
	if container.Volume() <= 0 || container.MaxWeight <= 0 {
		return est
	}

	est.ContainersByVolume = totalVolume / container.Volume()
	est.ContainersByWeight = totalWeight / container.MaxWeight

	binding := est.ContainersByVolume
	if est.ContainersByWeight > binding {
		binding = est.ContainersByWeight
	}
	est.ContainersNeededMin = int(math.Ceil(binding))

	if utilizationPercent > 0 && utilizationPercent < 100 {
		// Only the volume constraint degrades with imperfect packing.
		adjusted := est.ContainersByVolume / (utilizationPercent / 100.0)
		if est.ContainersByWeight > adjusted {
			adjusted = est.ContainersByWeight
		}
		est.ContainersWithMargin = int(math.Ceil(adjusted))
	} else {
		est.ContainersWithMargin = est.ContainersNeededMin
	}
	if est.ContainersWithMargin < est.ContainersNeededMin {
		est.ContainersWithMargin = est.ContainersNeededMin
	}
	return est
}
