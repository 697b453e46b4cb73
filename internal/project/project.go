// Package project handles on-disk persistence for StowPack: project
// files, the application config, the cargo/container catalog, load
// templates, and full-data backups. Everything is JSON under
// ~/.stowpack except project files, which live wherever the user
// saves them.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/StowPack/internal/model"
)

// fileVersion is written into saved project files so later releases can
// migrate old formats.
const fileVersion = "1.0.0"

// projectFile is the on-disk envelope for a saved project.
type projectFile struct {
	Version string        `json:"version"`
	Project model.Project `json:"project"`
}

// SaveProject writes a project to the given path as JSON, creating
// parent directories as needed.
func SaveProject(path string, p model.Project) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	envelope := projectFile{Version: fileVersion, Project: p}
	data, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadProject reads a project from the given path.
func LoadProject(path string) (model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Project{}, fmt.Errorf("failed to read project file: %w", err)
	}

	var envelope projectFile
	if err := json.Unmarshal(data, &envelope); err != nil {
		return model.Project{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if envelope.Version == "" {
		return model.Project{}, fmt.Errorf("invalid project file: missing version field")
	}

	p := envelope.Project
	if p.Manifest == nil {
		p.Manifest = []model.Cargo{}
	}
	return p, nil
}

// AddRecentProject prepends a path to the recent-projects list, keeping
// at most max entries and dropping duplicates.
func AddRecentProject(config *model.AppConfig, path string, max int) {
	recent := []string{path}
	for _, r := range config.RecentProjects {
		if r == path {
			continue
		}
		recent = append(recent, r)
		if len(recent) == max {
			break
		}
	}
	config.RecentProjects = recent
}
