package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default container applied to new projects
	DefaultContainerName string  `json:"default_container_name"`
	DefaultWidth         float64 `json:"default_width"`
	DefaultHeight        float64 `json:"default_height"`
	DefaultDepth         float64 `json:"default_depth"`
	DefaultMaxWeight     float64 `json:"default_max_weight"`

	// Default packing settings
	DefaultAlgorithm   Algorithm `json:"default_algorithm"`
	DefaultGeneticSeed int64     `json:"default_genetic_seed"`

	// Estimation preferences
	AssumedUtilization float64 `json:"assumed_utilization"` // percent, for load estimates

	// Application preferences
	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentProjects   []string `json:"recent_projects"`
	Theme            string   `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching NewContainer and DefaultSettings.
func DefaultAppConfig() AppConfig {
	container := NewContainer()
	settings := DefaultSettings()
	return AppConfig{
		DefaultContainerName: container.Name,
		DefaultWidth:         container.Width,
		DefaultHeight:        container.Height,
		DefaultDepth:         container.Depth,
		DefaultMaxWeight:     container.MaxWeight,
		DefaultAlgorithm:     settings.Algorithm,
		DefaultGeneticSeed:   settings.GeneticSeed,
		AssumedUtilization:   85.0,
		AutoSaveInterval:     0,
		RecentProjects:       []string{},
		Theme:                "system",
	}
}

// ApplyToProject copies the configured defaults into a project. This is
// used when creating a new project so it inherits the user's saved defaults.
func (c AppConfig) ApplyToProject(p *Project) {
	p.Container = Container{
		Name:      c.DefaultContainerName,
		Width:     c.DefaultWidth,
		Height:    c.DefaultHeight,
		Depth:     c.DefaultDepth,
		MaxWeight: c.DefaultMaxWeight,
	}
	p.Settings.Algorithm = c.DefaultAlgorithm
	p.Settings.GeneticSeed = c.DefaultGeneticSeed
}
