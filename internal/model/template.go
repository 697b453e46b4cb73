package model

import (
	"time"

	"github.com/google/uuid"
)

// LoadTemplate represents a reusable load-plan configuration that captures
// the manifest, container, and settings but not pack results.
type LoadTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	Container   Container    `json:"container"`
	Manifest    []Cargo      `json:"manifest"`
	Settings    PackSettings `json:"settings"`
}

// NewLoadTemplate creates a new template from the given project data.
// It copies the manifest, container, and settings but intentionally
// excludes results.
func NewLoadTemplate(name, description string, container Container, manifest []Cargo, settings PackSettings) LoadTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return LoadTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Container:   container,
		Manifest:    copyManifest(manifest),
		Settings:    settings,
	}
}

// ToProject creates a new Project from this template. Manifest lines get
// fresh IDs so they are independent of the template.
func (t LoadTemplate) ToProject(projectName string) Project {
	manifest := make([]Cargo, len(t.Manifest))
	for i, c := range t.Manifest {
		manifest[i] = NewCargo(c.Name, c.Width, c.Height, c.Depth, c.Weight, c.Quantity)
	}
	return Project{
		Name:      projectName,
		Container: t.Container,
		Manifest:  manifest,
		Settings:  t.Settings,
	}
}

// TemplateStore holds a collection of load templates.
type TemplateStore struct {
	Templates []LoadTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []LoadTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t LoadTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *LoadTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names for UI dropdowns.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *LoadTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// BuiltinTemplates returns the bundled demo load plans. The mixed-carton
// set is the classic small demo (1.2 x 0.3 x 0.3 m test container); the
// 40 ft set is a typical palletized booking.
func BuiltinTemplates() []LoadTemplate {
	demo := NewLoadTemplate(
		"Demo: mixed cartons",
		"Small test container with five carton sizes",
		Container{Name: "Test Container", Width: 1.2, Height: 0.3, Depth: 0.3, MaxWeight: 30000},
		[]Cargo{
			NewCargo("small", 0.10, 0.10, 0.10, 20, 12),
			NewCargo("medium", 0.15, 0.10, 0.08, 30, 10),
			NewCargo("large", 0.20, 0.15, 0.10, 40, 4),
			NewCargo("item5", 0.16, 0.14, 0.09, 35, 8),
			NewCargo("item6", 0.12, 0.08, 0.08, 25, 10),
		},
		DefaultSettings(),
	)

	freight := NewLoadTemplate(
		"40ft: palletized freight",
		"Standard pallets, large boxes, and machine crates in a 40 ft container",
		NewContainer(),
		[]Cargo{
			NewCargo("Standard Pallet", 1.2, 1.5, 1.0, 800, 10),
			NewCargo("Large Box", 2.0, 1.8, 1.5, 1500, 5),
			NewCargo("Machine Part", 1.5, 1.2, 1.0, 1000, 8),
		},
		DefaultSettings(),
	)

	return []LoadTemplate{demo, freight}
}

// copyManifest creates a deep copy of a manifest slice.
func copyManifest(manifest []Cargo) []Cargo {
	if manifest == nil {
		return []Cargo{}
	}
	cp := make([]Cargo, len(manifest))
	copy(cp, manifest)
	return cp
}
