package model

import (
	"testing"
)

func TestDefaultAppConfigMatchesDefaults(t *testing.T) {
	cfg := DefaultAppConfig()
	container := NewContainer()

	if cfg.DefaultContainerName != container.Name {
		t.Errorf("expected container name %q, got %q", container.Name, cfg.DefaultContainerName)
	}
	if cfg.DefaultWidth != container.Width || cfg.DefaultHeight != container.Height || cfg.DefaultDepth != container.Depth {
		t.Error("expected default dimensions to match the default container")
	}
	if cfg.DefaultAlgorithm != AlgorithmGreedy {
		t.Errorf("expected greedy default algorithm, got %q", cfg.DefaultAlgorithm)
	}
	if cfg.Theme != "system" {
		t.Errorf("expected theme=system, got %q", cfg.Theme)
	}
	if cfg.RecentProjects == nil {
		t.Error("expected non-nil RecentProjects")
	}
	if cfg.AssumedUtilization != 85.0 {
		t.Errorf("expected 85%% assumed utilization, got %f", cfg.AssumedUtilization)
	}
}

func TestApplyToProject(t *testing.T) {
	cfg := DefaultAppConfig()
	cfg.DefaultContainerName = "Reefer 40ft"
	cfg.DefaultWidth = 11.56
	cfg.DefaultHeight = 2.25
	cfg.DefaultDepth = 2.28
	cfg.DefaultMaxWeight = 27700
	cfg.DefaultAlgorithm = AlgorithmGenetic
	cfg.DefaultGeneticSeed = 99

	p := NewProject()
	cfg.ApplyToProject(&p)

	if p.Container.Name != "Reefer 40ft" {
		t.Errorf("expected container name applied, got %q", p.Container.Name)
	}
	if p.Container.Width != 11.56 || p.Container.MaxWeight != 27700 {
		t.Errorf("expected container dimensions applied, got %+v", p.Container)
	}
	if p.Settings.Algorithm != AlgorithmGenetic {
		t.Errorf("expected genetic algorithm applied, got %q", p.Settings.Algorithm)
	}
	if p.Settings.GeneticSeed != 99 {
		t.Errorf("expected seed 99 applied, got %d", p.Settings.GeneticSeed)
	}
}
