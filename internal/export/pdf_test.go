package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/StowPack/internal/model"
)

// buildTestResult creates a realistic load result for testing.
func buildTestResult() model.LoadResult {
	container := model.Container{
		Name: "20ft Standard", Width: 5.9, Height: 2.39, Depth: 2.35, MaxWeight: 28230,
	}
	return model.LoadResult{
		Container: container,
		Placements: []model.Placement{
			{
				Cargo:    model.Cargo{ID: "c1", Name: "Euro Pallet_0", Group: "Euro Pallet", Width: 1.2, Height: 1.0, Depth: 0.8, Weight: 400, Quantity: 1},
				Position: model.Position{X: 0, Y: 0, Z: 0},
				Rotation: model.RotationWHD,
			},
			{
				Cargo:    model.Cargo{ID: "c2", Name: "Euro Pallet_1", Group: "Euro Pallet", Width: 1.2, Height: 1.0, Depth: 0.8, Weight: 400, Quantity: 1},
				Position: model.Position{X: 1.2, Y: 0, Z: 0},
				Rotation: model.RotationWHD,
			},
			{
				Cargo:    model.Cargo{ID: "c3", Name: "Crate_0", Group: "Crate", Width: 0.8, Height: 0.6, Depth: 0.6, Weight: 120, Quantity: 1},
				Position: model.Position{X: 2.4, Y: 0, Z: 0},
				Rotation: model.RotationHWD,
			},
		},
		Unfitted: nil,
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_output.pdf")

	result := buildTestResult()

	err := ExportPDF(path, result)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid PDF with 3 pages (plan + elevation + summary) should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	result := model.LoadResult{Container: model.NewContainer()}

	err := ExportPDF(path, result)
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportPDF_WithUnfittedCargo(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "unfitted.pdf")

	result := buildTestResult()
	result.Unfitted = []model.Cargo{
		{ID: "u1", Name: "Too Big_0", Group: "Too Big", Width: 8, Height: 3, Depth: 3, Weight: 500, Quantity: 1},
		{ID: "u2", Name: "Too Big_1", Group: "Too Big", Width: 8, Height: 3, Depth: 3, Weight: 500, Quantity: 1},
	}

	err := ExportPDF(path, result)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportPDF_ManyPlacements(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many.pdf")

	// More groups than colors, and enough rows to overflow the summary table
	result := model.LoadResult{
		Container: model.NewContainer(),
	}
	for i := 0; i < 40; i++ {
		result.Placements = append(result.Placements, model.Placement{
			Cargo: model.Cargo{
				ID:    fmt.Sprintf("c%d", i),
				Name:  fmt.Sprintf("Box %d_0", i%12),
				Group: fmt.Sprintf("Box %d", i%12),
				Width: 0.5, Height: 0.5, Depth: 0.5, Weight: 10, Quantity: 1,
			},
			Position: model.Position{X: float64(i%10) * 0.5, Y: 0, Z: float64(i/10) * 0.5},
			Rotation: model.RotationWHD,
		})
	}

	err := ExportPDF(path, result)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestSortForProjection(t *testing.T) {
	placements := []model.Placement{
		{Cargo: model.Cargo{Name: "far"}, Position: model.Position{Y: 2}},
		{Cargo: model.Cargo{Name: "near"}, Position: model.Position{Y: 0}},
		{Cargo: model.Cargo{Name: "mid"}, Position: model.Position{Y: 1}},
	}

	ordered := sortForProjection(placements, projectionPlan)

	if ordered[0].Cargo.Name != "near" || ordered[1].Cargo.Name != "mid" || ordered[2].Cargo.Name != "far" {
		t.Errorf("wrong order: %s, %s, %s", ordered[0].Cargo.Name, ordered[1].Cargo.Name, ordered[2].Cargo.Name)
	}
	// Input must stay untouched
	if placements[0].Cargo.Name != "far" {
		t.Error("sortForProjection mutated its input")
	}
}

func TestProjectionProject(t *testing.T) {
	pos := model.Position{X: 1, Y: 0.5, Z: 2}
	dims := model.Dimensions{Width: 0.4, Height: 0.3, Depth: 0.6}

	px, py, pw, ph := projectionPlan.project(pos, dims, 2.39)
	if px != 1 || py != 2 || pw != 0.4 || ph != 0.6 {
		t.Errorf("plan projection = (%v, %v, %v, %v)", px, py, pw, ph)
	}

	// Elevation flips vertically so y grows upward on the page
	px, py, pw, ph = projectionElevation.project(pos, dims, 2.39)
	if px != 1 || pw != 0.4 || ph != 0.3 {
		t.Errorf("elevation projection = (%v, %v, %v, %v)", px, py, pw, ph)
	}
	wantY := 2.39 - 0.5 - 0.3
	if py != wantY {
		t.Errorf("elevation y = %v, want %v", py, wantY)
	}
}

func TestColorForGroup_StableAcrossGroups(t *testing.T) {
	result := buildTestResult()

	r1, g1, b1 := ColorForGroup(result, "Euro Pallet")
	r2, g2, b2 := ColorForGroup(result, "Crate")

	if r1 == r2 && g1 == g2 && b1 == b2 {
		t.Error("expected distinct colors for distinct groups")
	}

	// Same group always gets the same color
	r3, g3, b3 := ColorForGroup(result, "Euro Pallet")
	if r1 != r3 || g1 != g3 || b1 != b3 {
		t.Error("expected stable color for the same group")
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 50, 8},
		{30, 25, 7},
		{10, 15, 6},
	}
	for _, tt := range tests {
		got := labelFontSize(tt.w, tt.h)
		if got != tt.want {
			t.Errorf("labelFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
