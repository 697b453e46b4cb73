// Package importer provides CSV and Excel import functionality for cargo
// manifests. It supports automatic delimiter detection, flexible column
// mapping, case-insensitive header recognition, and two unit schemes:
// metres with kilograms (the engine's native units) and millimetres with
// grams, which get converted on the way in.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/StowPack/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Cargo    []model.Cargo
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	Name     int
	Width    int
	Height   int
	Depth    int
	Weight   int
	Quantity int
}

// UnitScheme describes the units a manifest file uses for dimensions and
// weight.
type UnitScheme int

const (
	// UnitsMetersKilograms is the engine's native scheme, no conversion.
	UnitsMetersKilograms UnitScheme = iota
	// UnitsMillimetersGrams is common in packaging data exports.
	UnitsMillimetersGrams
)

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"name":     {"name", "label", "item", "cargo", "description", "desc", "product", "sku"},
	"width":    {"width", "w", "x"},
	"height":   {"height", "h", "y"},
	"depth":    {"depth", "d", "length", "len", "z"},
	"weight":   {"weight", "mass", "kg", "g"},
	"quantity": {"quantity", "qty", "count", "num", "amount", "pcs", "pieces"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1 // Allow variable field counts

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		// Score: count how many rows have the same column count as the first row
		// Only consider delimiters that produce more than 1 column
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		// Prefer delimiters with higher consistency and more columns
		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// normalizeHeader lowercases a header cell and strips a trailing unit
// annotation such as "(mm)" or "[kg]".
func normalizeHeader(cell string) string {
	normalized := strings.ToLower(strings.TrimSpace(cell))
	for _, open := range []string{"(", "["} {
		if idx := strings.Index(normalized, open); idx > 0 {
			normalized = strings.TrimSpace(normalized[:idx])
		}
	}
	return strings.TrimSuffix(normalized, "_mm")
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or a default positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		Name:     -1,
		Width:    -1,
		Height:   -1,
		Depth:    -1,
		Weight:   -1,
		Quantity: -1,
	}

	isHeader := false
	for i, cell := range row {
		normalized := normalizeHeader(cell)
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					switch role {
					case "name":
						if mapping.Name == -1 {
							mapping.Name = i
						}
					case "width":
						if mapping.Width == -1 {
							mapping.Width = i
						}
					case "height":
						if mapping.Height == -1 {
							mapping.Height = i
						}
					case "depth":
						if mapping.Depth == -1 {
							mapping.Depth = i
						}
					case "weight":
						if mapping.Weight == -1 {
							mapping.Weight = i
						}
					case "quantity":
						if mapping.Quantity == -1 {
							mapping.Quantity = i
						}
					}
				}
			}
		}
	}

	if !isHeader {
		// Fall back to positional mapping: Name, Width, Height, Depth, Weight, Quantity
		return ColumnMapping{
			Name:     0,
			Width:    1,
			Height:   2,
			Depth:    3,
			Weight:   4,
			Quantity: 5,
		}, false
	}

	return mapping, true
}

// DetectUnitScheme inspects a header row for unit annotations. A header
// like "Width (mm)" or "Weight [g]" switches the whole file to the
// millimetre/gram scheme. Without annotations the file is assumed to be
// in metres and kilograms.
func DetectUnitScheme(row []string) UnitScheme {
	for _, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		if strings.Contains(normalized, "(mm)") || strings.Contains(normalized, "[mm]") ||
			strings.HasSuffix(normalized, "_mm") || strings.HasSuffix(normalized, " mm") {
			return UnitsMillimetersGrams
		}
		if strings.Contains(normalized, "(g)") || strings.Contains(normalized, "[g]") {
			return UnitsMillimetersGrams
		}
	}
	return UnitsMetersKilograms
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDimension parses a required positive float cell.
func parseDimension(row []string, idx int, field, rowLabel string) (float64, string) {
	raw := getCell(row, idx)
	if raw == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, field)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, field, raw)
	}
	return value, ""
}

// parseRow extracts a Cargo from a row using the given column mapping.
// Returns the cargo, any error message, and any warning message.
func parseRow(row []string, mapping ColumnMapping, units UnitScheme, rowLabel string, cargoCount int) (model.Cargo, string, string) {
	name := getCell(row, mapping.Name)
	if name == "" {
		name = fmt.Sprintf("Cargo %d", cargoCount+1)
	}

	width, errMsg := parseDimension(row, mapping.Width, "width", rowLabel)
	if errMsg != "" {
		return model.Cargo{}, errMsg, ""
	}
	height, errMsg := parseDimension(row, mapping.Height, "height", rowLabel)
	if errMsg != "" {
		return model.Cargo{}, errMsg, ""
	}
	depth, errMsg := parseDimension(row, mapping.Depth, "depth", rowLabel)
	if errMsg != "" {
		return model.Cargo{}, errMsg, ""
	}
	weight, errMsg := parseDimension(row, mapping.Weight, "weight", rowLabel)
	if errMsg != "" {
		return model.Cargo{}, errMsg, ""
	}

	qtyStr := getCell(row, mapping.Quantity)
	qty := 1
	var warning string
	if qtyStr == "" {
		warning = fmt.Sprintf("%s: Missing quantity, assuming 1", rowLabel)
	} else {
		parsed, err := strconv.Atoi(qtyStr)
		if err != nil {
			return model.Cargo{}, fmt.Sprintf("%s: Invalid quantity '%s'", rowLabel, qtyStr), ""
		}
		qty = parsed
	}

	if width <= 0 || height <= 0 || depth <= 0 || qty <= 0 {
		return model.Cargo{}, fmt.Sprintf("%s: Width, height, depth, and quantity must be positive", rowLabel), ""
	}
	if weight < 0 {
		return model.Cargo{}, fmt.Sprintf("%s: Weight must not be negative", rowLabel), ""
	}

	if units == UnitsMillimetersGrams {
		width = model.MetersFromMillimeters(width)
		height = model.MetersFromMillimeters(height)
		depth = model.MetersFromMillimeters(depth)
		weight = model.KilogramsFromGrams(weight)
	}

	return model.NewCargo(name, width, height, depth, weight, qty), "", warning
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports cargo from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	result = importFromRows(records, "Line", result.Warnings)
	return result
}

// ImportCSVFromReader imports cargo from a CSV reader with a specific delimiter.
// This is useful for testing or when the delimiter is already known.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// ImportExcel imports cargo from an Excel (.xlsx, .xls) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into cargo lines.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	// Detect columns and unit scheme from first row
	mapping, hasHeader := DetectColumns(rows[0])
	units := UnitsMetersKilograms
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		units = DetectUnitScheme(rows[0])
		if units == UnitsMillimetersGrams {
			result.Warnings = append(result.Warnings, "Detected millimetre/gram units, converting to metres and kilograms")
		}

		// Validate that required columns were found
		missing := []string{}
		if mapping.Width == -1 {
			missing = append(missing, "Width")
		}
		if mapping.Height == -1 {
			missing = append(missing, "Height")
		}
		if mapping.Depth == -1 {
			missing = append(missing, "Depth")
		}
		if mapping.Weight == -1 {
			missing = append(missing, "Weight")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else {
		// No header: check if first row is numeric (positional mapping)
		if len(rows[0]) >= 4 {
			if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][1]), 64); err != nil {
				// First column after the name is not numeric - might be an
				// unrecognized header. Skip it but keep positional mapping.
				startRow = 1
				result.Warnings = append(result.Warnings, "Detected header row, skipping")
			}
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		lineNum := i + 1

		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, lineNum)
		cargo, errMsg, warning := parseRow(row, mapping, units, rowLabel, len(result.Cargo))

		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}

		result.Cargo = append(result.Cargo, cargo)
	}

	return result
}
