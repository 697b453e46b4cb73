package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// ─── DetectCSVDelimiter Tests ──────────────────────────────

func TestDetectCSVDelimiter_Comma(t *testing.T) {
	data := []byte("Name,Width,Height,Depth,Weight,Qty\nBox,0.5,0.4,0.3,2.5,2\n")
	got := DetectCSVDelimiter(data)
	if got != ',' {
		t.Errorf("expected comma delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Semicolon(t *testing.T) {
	data := []byte("Name;Width;Height;Depth;Weight;Qty\nBox;0.5;0.4;0.3;2.5;2\n")
	got := DetectCSVDelimiter(data)
	if got != ';' {
		t.Errorf("expected semicolon delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Tab(t *testing.T) {
	data := []byte("Name\tWidth\tHeight\tDepth\tWeight\tQty\nBox\t0.5\t0.4\t0.3\t2.5\t2\n")
	got := DetectCSVDelimiter(data)
	if got != '\t' {
		t.Errorf("expected tab delimiter, got %q", got)
	}
}

func TestDetectCSVDelimiter_Pipe(t *testing.T) {
	data := []byte("Name|Width|Height|Depth|Weight|Qty\nBox|0.5|0.4|0.3|2.5|2\n")
	got := DetectCSVDelimiter(data)
	if got != '|' {
		t.Errorf("expected pipe delimiter, got %q", got)
	}
}

// ─── DetectColumns Tests ───────────────────────────────────

func TestDetectColumns_StandardHeaders(t *testing.T) {
	row := []string{"Name", "Width", "Height", "Depth", "Weight", "Quantity"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Name != 0 {
		t.Errorf("expected Name at 0, got %d", mapping.Name)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Height != 2 {
		t.Errorf("expected Height at 2, got %d", mapping.Height)
	}
	if mapping.Depth != 3 {
		t.Errorf("expected Depth at 3, got %d", mapping.Depth)
	}
	if mapping.Weight != 4 {
		t.Errorf("expected Weight at 4, got %d", mapping.Weight)
	}
	if mapping.Quantity != 5 {
		t.Errorf("expected Quantity at 5, got %d", mapping.Quantity)
	}
}

func TestDetectColumns_AlternativeNames(t *testing.T) {
	row := []string{"SKU", "W", "H", "Length", "Mass", "Pcs"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Name != 0 {
		t.Errorf("expected Name at 0, got %d", mapping.Name)
	}
	if mapping.Width != 1 {
		t.Errorf("expected Width at 1, got %d", mapping.Width)
	}
	if mapping.Depth != 3 {
		t.Errorf("expected Depth at 3, got %d", mapping.Depth)
	}
	if mapping.Weight != 4 {
		t.Errorf("expected Weight at 4, got %d", mapping.Weight)
	}
	if mapping.Quantity != 5 {
		t.Errorf("expected Quantity at 5, got %d", mapping.Quantity)
	}
}

func TestDetectColumns_UnitAnnotationsStripped(t *testing.T) {
	row := []string{"Name", "Width (mm)", "Height (mm)", "Depth (mm)", "Weight [g]", "Qty"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Width != 1 || mapping.Height != 2 || mapping.Depth != 3 || mapping.Weight != 4 {
		t.Errorf("expected annotated headers to map positionally, got %+v", mapping)
	}
}

func TestDetectColumns_ReorderedColumns(t *testing.T) {
	row := []string{"Qty", "Depth", "Height", "Width", "Weight", "Name"}
	mapping, isHeader := DetectColumns(row)

	if !isHeader {
		t.Error("expected header to be detected")
	}
	if mapping.Quantity != 0 {
		t.Errorf("expected Quantity at 0, got %d", mapping.Quantity)
	}
	if mapping.Depth != 1 {
		t.Errorf("expected Depth at 1, got %d", mapping.Depth)
	}
	if mapping.Name != 5 {
		t.Errorf("expected Name at 5, got %d", mapping.Name)
	}
}

func TestDetectColumns_NoHeader(t *testing.T) {
	row := []string{"Box", "0.5", "0.4", "0.3", "2.5", "2"}
	mapping, isHeader := DetectColumns(row)

	if isHeader {
		t.Error("expected no header detection for numeric data")
	}
	// Should fall back to positional
	if mapping.Name != 0 || mapping.Width != 1 || mapping.Height != 2 ||
		mapping.Depth != 3 || mapping.Weight != 4 || mapping.Quantity != 5 {
		t.Errorf("expected positional mapping, got %+v", mapping)
	}
}

// ─── DetectUnitScheme Tests ────────────────────────────────

func TestDetectUnitScheme(t *testing.T) {
	tests := []struct {
		name     string
		row      []string
		expected UnitScheme
	}{
		{"plain headers default to metric base units", []string{"Name", "Width", "Height", "Depth", "Weight"}, UnitsMetersKilograms},
		{"metre annotations stay native", []string{"Name", "Width (m)", "Weight (kg)"}, UnitsMetersKilograms},
		{"millimetre annotation switches scheme", []string{"Name", "Width (mm)", "Height (mm)"}, UnitsMillimetersGrams},
		{"gram annotation switches scheme", []string{"Name", "Width", "Weight [g]"}, UnitsMillimetersGrams},
		{"underscore suffix switches scheme", []string{"name", "width_mm", "height_mm"}, UnitsMillimetersGrams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectUnitScheme(tt.row); got != tt.expected {
				t.Errorf("expected scheme %v, got %v", tt.expected, got)
			}
		})
	}
}

// ─── CSV Import Tests ──────────────────────────────────────

func TestImportCSVFromReader_WithHeaders(t *testing.T) {
	data := "Name,Width,Height,Depth,Weight,Quantity\nBox,0.5,0.4,0.3,2.5,2\nCrate,1.2,0.8,0.8,40,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cargo) != 2 {
		t.Fatalf("expected 2 cargo lines, got %d", len(result.Cargo))
	}

	if result.Cargo[0].Name != "Box" {
		t.Errorf("expected name 'Box', got '%s'", result.Cargo[0].Name)
	}
	if result.Cargo[0].Width != 0.5 {
		t.Errorf("expected width 0.5, got %f", result.Cargo[0].Width)
	}
	if result.Cargo[0].Depth != 0.3 {
		t.Errorf("expected depth 0.3, got %f", result.Cargo[0].Depth)
	}
	if result.Cargo[0].Weight != 2.5 {
		t.Errorf("expected weight 2.5, got %f", result.Cargo[0].Weight)
	}
	if result.Cargo[0].Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", result.Cargo[0].Quantity)
	}
}

func TestImportCSVFromReader_MillimeterGramConversion(t *testing.T) {
	data := "Name,Width (mm),Height (mm),Depth (mm),Weight (g),Qty\nBox,500,400,300,2500,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cargo) != 1 {
		t.Fatalf("expected 1 cargo line, got %d", len(result.Cargo))
	}

	c := result.Cargo[0]
	if c.Width != 0.5 || c.Height != 0.4 || c.Depth != 0.3 {
		t.Errorf("expected dimensions 0.5x0.4x0.3 m, got %fx%fx%f", c.Width, c.Height, c.Depth)
	}
	if c.Weight != 2.5 {
		t.Errorf("expected weight 2.5 kg, got %f", c.Weight)
	}

	hasConversionWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "converting") {
			hasConversionWarning = true
		}
	}
	if !hasConversionWarning {
		t.Error("expected warning about unit conversion")
	}
}

func TestImportCSVFromReader_WithoutHeaders(t *testing.T) {
	data := "Box,0.5,0.4,0.3,2.5,2\nCrate,1.2,0.8,0.8,40,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Cargo) != 2 {
		t.Fatalf("expected 2 cargo lines, got %d (errors: %v)", len(result.Cargo), result.Errors)
	}
	if result.Cargo[0].Name != "Box" {
		t.Errorf("expected name 'Box', got '%s'", result.Cargo[0].Name)
	}
	if result.Cargo[1].Weight != 40 {
		t.Errorf("expected weight 40, got %f", result.Cargo[1].Weight)
	}
}

func TestImportCSVFromReader_ReorderedColumns(t *testing.T) {
	data := "Qty,Depth,Height,Width,Weight,Name\n2,0.3,0.4,0.5,2.5,Box\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cargo) != 1 {
		t.Fatalf("expected 1 cargo line, got %d", len(result.Cargo))
	}
	if result.Cargo[0].Name != "Box" {
		t.Errorf("expected name 'Box', got '%s'", result.Cargo[0].Name)
	}
	if result.Cargo[0].Width != 0.5 {
		t.Errorf("expected width 0.5, got %f", result.Cargo[0].Width)
	}
	if result.Cargo[0].Depth != 0.3 {
		t.Errorf("expected depth 0.3, got %f", result.Cargo[0].Depth)
	}
}

func TestImportCSVFromReader_EmptyFile(t *testing.T) {
	result := ImportCSVFromReader(strings.NewReader(""), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

func TestImportCSVFromReader_InvalidWidth(t *testing.T) {
	data := "Name,Width,Height,Depth,Weight,Quantity\nBox,abc,0.4,0.3,2.5,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for invalid width")
	}
	if len(result.Cargo) != 0 {
		t.Errorf("expected 0 cargo lines, got %d", len(result.Cargo))
	}
}

func TestImportCSVFromReader_NegativeWeight(t *testing.T) {
	data := "Name,Width,Height,Depth,Weight,Quantity\nBox,0.5,0.4,0.3,-2.5,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for negative weight")
	}
}

func TestImportCSVFromReader_ZeroQuantity(t *testing.T) {
	data := "Name,Width,Height,Depth,Weight,Quantity\nBox,0.5,0.4,0.3,2.5,0\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for zero quantity")
	}
}

func TestImportCSVFromReader_MissingQuantityDefaultsToOne(t *testing.T) {
	data := "Name,Width,Height,Depth,Weight\nBox,0.5,0.4,0.3,2.5\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cargo) != 1 {
		t.Fatalf("expected 1 cargo line, got %d", len(result.Cargo))
	}
	if result.Cargo[0].Quantity != 1 {
		t.Errorf("expected default quantity 1, got %d", result.Cargo[0].Quantity)
	}

	hasWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "assuming 1") {
			hasWarning = true
		}
	}
	if !hasWarning {
		t.Error("expected warning about missing quantity")
	}
}

func TestImportCSVFromReader_MixedValidAndInvalid(t *testing.T) {
	data := "Name,Width,Height,Depth,Weight,Quantity\nGood,0.5,0.4,0.3,2.5,2\nBad,abc,0.4,0.3,2.5,2\nAlsoGood,0.2,0.2,0.2,1,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Cargo) != 2 {
		t.Errorf("expected 2 valid cargo lines, got %d", len(result.Cargo))
	}
	if len(result.Errors) != 1 {
		t.Errorf("expected 1 error, got %d", len(result.Errors))
	}
}

func TestImportCSVFromReader_EmptyRows(t *testing.T) {
	data := "Name,Width,Height,Depth,Weight,Quantity\nBox,0.5,0.4,0.3,2.5,2\n\n\nCrate,1.2,0.8,0.8,40,1\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Cargo) != 2 {
		t.Errorf("expected 2 cargo lines (skipping empty rows), got %d (errors: %v)", len(result.Cargo), result.Errors)
	}
}

func TestImportCSVFromReader_EmptyName(t *testing.T) {
	data := "Name,Width,Height,Depth,Weight,Quantity\n,0.5,0.4,0.3,2.5,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Cargo) != 1 {
		t.Fatalf("expected 1 cargo line, got %d", len(result.Cargo))
	}
	if result.Cargo[0].Name != "Cargo 1" {
		t.Errorf("expected auto-generated name 'Cargo 1', got '%s'", result.Cargo[0].Name)
	}
}

func TestImportCSVFromReader_MissingRequiredColumnInHeader(t *testing.T) {
	data := "Name,Width,Qty\nBox,0.5,2\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Errors) == 0 {
		t.Error("expected error for missing Height, Depth, and Weight columns")
	}
	foundMissing := false
	for _, e := range result.Errors {
		if strings.Contains(e, "Required columns not found") {
			foundMissing = true
		}
	}
	if !foundMissing {
		t.Errorf("expected 'Required columns not found' error, got: %v", result.Errors)
	}
}

// ─── CSV File Import Tests ──────────────────────────────────

func TestImportCSV_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.csv")
	content := "Name,Width,Height,Depth,Weight,Quantity\nBox,0.5,0.4,0.3,2.5,2\nCrate,1.2,0.8,0.8,40,1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cargo) != 2 {
		t.Fatalf("expected 2 cargo lines, got %d", len(result.Cargo))
	}
}

func TestImportCSV_SemicolonFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.csv")
	content := "Name;Width;Height;Depth;Weight;Quantity\nBox;0.5;0.4;0.3;2.5;2\nCrate;1.2;0.8;0.8;40;1\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Cargo) != 2 {
		t.Errorf("expected 2 cargo lines, got %d (errors: %v)", len(result.Cargo), result.Errors)
	}

	// Should have a warning about semicolon delimiter
	hasSemicolonWarning := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "semicolon") {
			hasSemicolonWarning = true
		}
	}
	if !hasSemicolonWarning {
		t.Error("expected warning about semicolon delimiter detection")
	}
}

func TestImportCSV_FileNotFound(t *testing.T) {
	result := ImportCSV("/nonexistent/path/file.csv")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportCSV_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	result := ImportCSV(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for empty file")
	}
}

// ─── Excel Import Tests ────────────────────────────────────

func createTestExcel(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		for j, cell := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("failed to create cell reference: %v", err)
			}
			if err := f.SetCellValue(sheet, cellRef, cell); err != nil {
				t.Fatalf("failed to set cell value: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save Excel file: %v", err)
	}
	return path
}

func TestImportExcel_WithHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Width", "Height", "Depth", "Weight", "Quantity"},
		{"Box", 0.5, 0.4, 0.3, 2.5, 2},
		{"Crate", 1.2, 0.8, 0.8, 40, 1},
	})

	result := ImportExcel(path)

	if len(result.Errors) > 0 {
		t.Errorf("unexpected errors: %v", result.Errors)
	}
	if len(result.Cargo) != 2 {
		t.Fatalf("expected 2 cargo lines, got %d", len(result.Cargo))
	}

	if result.Cargo[0].Name != "Box" {
		t.Errorf("expected 'Box', got '%s'", result.Cargo[0].Name)
	}
	if result.Cargo[0].Width != 0.5 {
		t.Errorf("expected width 0.5, got %f", result.Cargo[0].Width)
	}
	if result.Cargo[1].Weight != 40 {
		t.Errorf("expected weight 40, got %f", result.Cargo[1].Weight)
	}
}

func TestImportExcel_MillimeterGramConversion(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Width (mm)", "Height (mm)", "Depth (mm)", "Weight (g)", "Qty"},
		{"Box", 500, 400, 300, 2500, 2},
	})

	result := ImportExcel(path)

	if len(result.Cargo) != 1 {
		t.Fatalf("expected 1 cargo line, got %d (errors: %v)", len(result.Cargo), result.Errors)
	}
	if result.Cargo[0].Width != 0.5 {
		t.Errorf("expected width 0.5 m, got %f", result.Cargo[0].Width)
	}
	if result.Cargo[0].Weight != 2.5 {
		t.Errorf("expected weight 2.5 kg, got %f", result.Cargo[0].Weight)
	}
}

func TestImportExcel_WithoutHeaders(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Box", 0.5, 0.4, 0.3, 2.5, 2},
		{"Crate", 1.2, 0.8, 0.8, 40, 1},
	})

	result := ImportExcel(path)

	if len(result.Cargo) != 2 {
		t.Fatalf("expected 2 cargo lines, got %d (errors: %v)", len(result.Cargo), result.Errors)
	}
}

func TestImportExcel_FileNotFound(t *testing.T) {
	result := ImportExcel("/nonexistent/file.xlsx")

	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestImportExcel_InvalidData(t *testing.T) {
	path := createTestExcel(t, [][]interface{}{
		{"Name", "Width", "Height", "Depth", "Weight", "Quantity"},
		{"Box", "abc", 0.4, 0.3, 2.5, 2},
	})

	result := ImportExcel(path)

	if len(result.Errors) == 0 {
		t.Error("expected error for invalid width")
	}
}

// ─── Edge Cases ────────────────────────────────────────────

func TestImportCSVFromReader_OnlyHeaders(t *testing.T) {
	data := "Name,Width,Height,Depth,Weight,Quantity\n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Cargo) != 0 {
		t.Errorf("expected 0 cargo lines for header-only file, got %d", len(result.Cargo))
	}
	// Should not have errors (just no data)
}

func TestImportCSVFromReader_WhitespaceInValues(t *testing.T) {
	data := "Name , Width , Height , Depth , Weight , Quantity\n Box , 0.5 , 0.4 , 0.3 , 2.5 , 2 \n"
	result := ImportCSVFromReader(strings.NewReader(data), ',')

	if len(result.Cargo) != 1 {
		t.Fatalf("expected 1 cargo line, got %d (errors: %v)", len(result.Cargo), result.Errors)
	}
	if result.Cargo[0].Width != 0.5 {
		t.Errorf("expected width 0.5, got %f", result.Cargo[0].Width)
	}
}
