package engine

import (
	"fmt"

	"github.com/piwi3910/StowPack/internal/model"
)

// ComparisonScenario defines a named container/settings pair to compare.
type ComparisonScenario struct {
	Name      string
	Container model.Container
	Settings  model.PackSettings
}

// ComparisonResult holds the pack result and computed statistics for a
// single scenario.
type ComparisonResult struct {
	Scenario      ComparisonScenario
	Result        model.LoadResult
	PackedCount   int
	UnfittedCount int
	Efficiency    float64
	PackedWeight  float64
	Err           error
}

// CompareScenarios packs the same manifest under each scenario and
// returns the results in scenario order. Each scenario is an independent
// single-container run, so the comparison stays within the engine's
// one-bin model. A scenario with invalid input carries its error instead
// of statistics.
func CompareScenarios(scenarios []ComparisonScenario, manifest []model.Cargo) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		packer := New(scenario.Settings)
		result, err := packer.Pack(scenario.Container, manifest)
		if err != nil {
			results = append(results, ComparisonResult{Scenario: scenario, Err: err})
			continue
		}

		results = append(results, ComparisonResult{
			Scenario:      scenario,
			Result:        result,
			PackedCount:   len(result.Placements),
			UnfittedCount: len(result.Unfitted),
			Efficiency:    result.LoadEfficiency(),
			PackedWeight:  result.PackedWeight(),
		})
	}
	return results
}

// BuildDefaultScenarios generates what-if scenarios from the current
// project: the current setup, the other algorithm, and each container
// preset from the catalog that differs from the current container.
func BuildDefaultScenarios(container model.Container, settings model.PackSettings, catalog model.Catalog) []ComparisonScenario {
	scenarios := []ComparisonScenario{
		{
			Name:      "Current Settings",
			Container: container,
			Settings:  settings,
		},
	}

	altAlgo := settings
	if settings.Algorithm == model.AlgorithmGreedy {
		altAlgo.Algorithm = model.AlgorithmGenetic
		scenarios = append(scenarios, ComparisonScenario{
			Name:      "Genetic Refinement",
			Container: container,
			Settings:  altAlgo,
		})
	} else {
		altAlgo.Algorithm = model.AlgorithmGreedy
		scenarios = append(scenarios, ComparisonScenario{
			Name:      "Greedy First-Fit",
			Container: container,
			Settings:  altAlgo,
		})
	}

	for _, preset := range catalog.Containers {
		c := preset.ToContainer()
		if c.Width == container.Width && c.Height == container.Height &&
			c.Depth == container.Depth && c.MaxWeight == container.MaxWeight {
			continue
		}
		scenarios = append(scenarios, ComparisonScenario{
			Name:      fmt.Sprintf("Container: %s", preset.Name),
			Container: c,
			Settings:  settings,
		})
	}
	return scenarios
}
