package engine

import (
	"math/rand"
	"sort"

	"github.com/piwi3910/StowPack/internal/model"
)

// GeneticConfig holds parameters for the genetic order refinement.
type GeneticConfig struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	TournamentSize int
	EliteCount     int
}

// DefaultGeneticConfig returns sensible default parameters.
func DefaultGeneticConfig() GeneticConfig {
	return GeneticConfig{
		PopulationSize: 40,
		Generations:    80,
		MutationRate:   0.15,
		TournamentSize: 3,
		EliteCount:     2,
	}
}

// gene represents a single loading decision in the chromosome.
type gene struct {
	unitIndex int                // Index into the expanded units slice
	rotation  model.RotationType // Rotation tried first for this unit
}

// chromosome represents a candidate solution: a loading order with
// preferred rotations.
type chromosome struct {
	genes   []gene
	fitness float64
}

// geneticPacker refines the greedy loading order with a genetic search.
// The placement rules (anchor frontier, containment, overlap, weight) are
// identical to the greedy packer; only the item order and the rotation
// tried first are evolved.
type geneticPacker struct {
	container model.Container
	units     []model.Cargo
	config    GeneticConfig
	rng       *rand.Rand
}

func newGeneticPacker(container model.Container, units []model.Cargo, config GeneticConfig, seed int64) *geneticPacker {
	return &geneticPacker{
		container: container,
		units:     units,
		config:    config,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// packGenetic runs the genetic refinement and returns the best load found.
// The run is deterministic for a given seed.
func packGenetic(container model.Container, units []model.Cargo, config GeneticConfig, seed int64) model.LoadResult {
	if len(units) == 0 {
		return model.LoadResult{Container: container}
	}

	// Scale effort for larger manifests
	if len(units) > 30 {
		config.Generations = 120
	}
	if len(units) > 80 {
		config.Generations = 160
		config.PopulationSize = 60
	}

	ga := newGeneticPacker(container, units, config, seed)
	return ga.run()
}

func (g *geneticPacker) run() model.LoadResult {
	population := g.initPopulation()
	for i := range population {
		population[i].fitness = g.evaluate(population[i])
	}

	for gen := 0; gen < g.config.Generations; gen++ {
		sort.SliceStable(population, func(i, j int) bool {
			return population[i].fitness > population[j].fitness
		})

		newPop := make([]chromosome, 0, g.config.PopulationSize)

		// Elitism: carry over the best individuals unchanged
		eliteCount := g.config.EliteCount
		if eliteCount > len(population) {
			eliteCount = len(population)
		}
		for i := 0; i < eliteCount; i++ {
			newPop = append(newPop, copyChromosome(population[i]))
		}

		for len(newPop) < g.config.PopulationSize {
			parent1 := g.tournamentSelect(population)
			parent2 := g.tournamentSelect(population)
			child := g.orderCrossover(parent1, parent2)
			g.mutate(&child)
			child.fitness = g.evaluate(child)
			newPop = append(newPop, child)
		}
		population = newPop
	}

	sort.SliceStable(population, func(i, j int) bool {
		return population[i].fitness > population[j].fitness
	})
	return g.decode(population[0])
}

// initPopulation creates random orderings plus one greedy
// volume-descending seed so the search never starts worse than the
// greedy heuristic.
func (g *geneticPacker) initPopulation() []chromosome {
	n := len(g.units)
	population := make([]chromosome, g.config.PopulationSize)

	for i := range population {
		genes := make([]gene, n)
		perm := g.rng.Perm(n)
		for j := 0; j < n; j++ {
			genes[j] = gene{
				unitIndex: perm[j],
				rotation:  model.AllRotations[g.rng.Intn(len(model.AllRotations))],
			}
		}
		population[i] = chromosome{genes: genes}
	}

	if g.config.PopulationSize > 0 {
		population[0] = g.createGreedyChromosome()
	}
	return population
}

// createGreedyChromosome mirrors the greedy heuristic: volume descending,
// no rotation preference.
func (g *geneticPacker) createGreedyChromosome() chromosome {
	n := len(g.units)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	sort.SliceStable(indices, func(i, j int) bool {
		return g.units[indices[i]].Volume() > g.units[indices[j]].Volume()
	})

	genes := make([]gene, n)
	for i, idx := range indices {
		genes[i] = gene{unitIndex: idx, rotation: model.RotationWHD}
	}
	return chromosome{genes: genes}
}

// evaluate decodes a chromosome and scores it by load efficiency with a
// heavy penalty per unfitted unit.
func (g *geneticPacker) evaluate(c chromosome) float64 {
	result := g.decode(c)

	fitness := result.LoadEfficiency() / 100.0
	fitness -= float64(len(result.Unfitted)) * 0.1
	if fitness < 0 {
		fitness = 0
	}
	return fitness
}

// decode converts a chromosome into an actual load by placing units in
// gene order, trying each gene's preferred rotation first at every anchor.
func (g *geneticPacker) decode(c chromosome) model.LoadResult {
	result := model.LoadResult{Container: g.container}
	anchors := newAnchorSet()
	var placed []placedBox
	var runningWeight float64
	unfittedIDs := make(map[string]bool)

	containerDims := g.container.Dims()
	for _, gn := range c.genes {
		unit := g.units[gn.unitIndex]
		if runningWeight+unit.Weight > g.container.MaxWeight {
			unfittedIDs[unit.ID] = true
			continue
		}

		pos, rotation, ok := findPlacementPreferred(containerDims, placed, unit, anchors.snapshot(), gn.rotation)
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

		anchors.register(model.Position{X: pos.X + dims.Width, Y: pos.Y, Z: pos.Z})
		anchors.register(model.Position{X: pos.X, Y: pos.Y + dims.Height, Z: pos.Z})
		anchors.register(model.Position{X: pos.X, Y: pos.Y, Z: pos.Z + dims.Depth})
	}

	for _, unit := range g.units {
		if unfittedIDs[unit.ID] {
			result.Unfitted = append(result.Unfitted, unit)
		}
	}
	return result
}

// findPlacementPreferred is findPlacement with one rotation promoted to
// the front of the search order at every anchor.
func findPlacementPreferred(containerDims model.Dimensions, placed []placedBox, unit model.Cargo, anchors []model.Position, preferred model.RotationType) (model.Position, model.RotationType, bool) {
	for _, anchor := range anchors {
		for _, rotation := range rotationOrder(preferred) {
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

// rotationOrder returns the six rotations with the preferred one first
// and the rest in numeric order.
func rotationOrder(preferred model.RotationType) []model.RotationType {
	order := make([]model.RotationType, 0, len(model.AllRotations))
	order = append(order, preferred)
	for _, r := range model.AllRotations {
		if r != preferred {
			order = append(order, r)
		}
	}
	return order
}

// tournamentSelect picks the best individual from a random tournament.
func (g *geneticPacker) tournamentSelect(population []chromosome) chromosome {
	best := population[g.rng.Intn(len(population))]
	for i := 1; i < g.config.TournamentSize; i++ {
		candidate := population[g.rng.Intn(len(population))]
		if candidate.fitness > best.fitness {
			best = candidate
		}
	}
	return copyChromosome(best)
}

// orderCrossover implements Order Crossover (OX1) for permutation
// chromosomes. It preserves the relative order of genes from both parents.
func (g *geneticPacker) orderCrossover(parent1, parent2 chromosome) chromosome {
	n := len(parent1.genes)
	if n <= 2 {
		return copyChromosome(parent1)
	}

	point1 := g.rng.Intn(n)
	point2 := g.rng.Intn(n)
	if point1 > point2 {
		point1, point2 = point2, point1
	}

	child := chromosome{genes: make([]gene, n)}

	inSegment := make(map[int]bool)
	for i := point1; i <= point2; i++ {
		child.genes[i] = parent1.genes[i]
		inSegment[parent1.genes[i].unitIndex] = true
	}

	childIdx := (point2 + 1) % n
	for _, pg := range parent2.genes {
		if !inSegment[pg.unitIndex] {
			child.genes[childIdx] = pg
			childIdx = (childIdx + 1) % n
		}
	}
	return child
}

// mutate applies random mutations to a chromosome.
func (g *geneticPacker) mutate(c *chromosome) {
	n := len(c.genes)
	if n < 2 {
		return
	}

	// Swap mutation: swap two random genes' positions
	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
	}

	// Rotation mutation: re-roll the preferred rotation of a random gene
	if g.rng.Float64() < g.config.MutationRate {
		i := g.rng.Intn(n)
		c.genes[i].rotation = model.AllRotations[g.rng.Intn(len(model.AllRotations))]
	}

	// Inversion mutation: reverse a small segment (less frequent)
	if g.rng.Float64() < g.config.MutationRate*0.5 {
		i := g.rng.Intn(n)
		j := g.rng.Intn(n)
		if i > j {
			i, j = j, i
		}
		for i < j {
			c.genes[i], c.genes[j] = c.genes[j], c.genes[i]
			i++
			j--
		}
	}
}

// copyChromosome creates a deep copy of a chromosome.
func copyChromosome(c chromosome) chromosome {
	genes := make([]gene, len(c.genes))
	copy(genes, c.genes)
	return chromosome{genes: genes, fitness: c.fitness}
}
