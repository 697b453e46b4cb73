package export

import (
	"fmt"
	"sort"

	"github.com/piwi3910/StowPack/internal/model"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by the Excel workbook export.
const (
	sheetPacked   = "Packed"
	sheetUnfitted = "Unfitted"
	sheetSummary  = "Summary"
)

// ExportExcel writes the load result as an Excel workbook with one sheet
// per concern: placements, unfitted cargo, and overall statistics. The
// packed sheet round-trips through the importer, so a load plan can be
// re-imported as a manifest.
func ExportExcel(path string, result model.LoadResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writePackedSheet(f, result); err != nil {
		return err
	}
	if err := writeUnfittedSheet(f, result); err != nil {
		return err
	}
	if err := writeSummarySheet(f, result); err != nil {
		return err
	}

	// The default sheet becomes Packed; drop the excelize placeholder.
	if err := f.SetSheetName(f.GetSheetName(0), sheetPacked); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}
	if idx, err := f.GetSheetIndex(sheetPacked); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save Excel file: %w", err)
	}
	return nil
}

// setRow writes the cells of one row starting at column A.
func setRow(f *excelize.File, sheet string, rowNum int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}

func writePackedSheet(f *excelize.File, result model.LoadResult) error {
	// Sheet 0 is the excelize default; it gets renamed to Packed at the end.
	sheet := f.GetSheetName(0)

	header := []interface{}{"Name", "Group", "Width", "Height", "Depth", "Weight", "X", "Y", "Z", "Rotation"}
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, p := range result.Placements {
		row := []interface{}{
			p.Cargo.Name,
			p.Cargo.GroupName(),
			p.Cargo.Width,
			p.Cargo.Height,
			p.Cargo.Depth,
			p.Cargo.Weight,
			p.Position.X,
			p.Position.Y,
			p.Position.Z,
			p.Rotation.String(),
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeUnfittedSheet(f *excelize.File, result model.LoadResult) error {
	if _, err := f.NewSheet(sheetUnfitted); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	header := []interface{}{"Name", "Group", "Width", "Height", "Depth", "Weight"}
	if err := setRow(f, sheetUnfitted, 1, header); err != nil {
		return err
	}

	for i, c := range result.Unfitted {
		row := []interface{}{
			c.Name,
			c.GroupName(),
			c.Width,
			c.Height,
			c.Depth,
			c.Weight,
		}
		if err := setRow(f, sheetUnfitted, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, result model.LoadResult) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	container := result.Container
	rows := [][]interface{}{
		{"Container", container.Name},
		{"Container Dimensions (m)", fmt.Sprintf("%.2f x %.2f x %.2f", container.Width, container.Height, container.Depth)},
		{"Container Volume (m3)", container.Volume()},
		{"Max Weight (kg)", container.MaxWeight},
		{"Items Placed", len(result.Placements)},
		{"Items Unfitted", len(result.Unfitted)},
		{"Packed Volume (m3)", result.PackedVolume()},
		{"Free Volume (m3)", result.FreeVolume()},
		{"Load Efficiency (%)", result.LoadEfficiency()},
		{"Packed Weight (kg)", result.PackedWeight()},
		{"Remaining Weight (kg)", result.RemainingWeight()},
	}

	rowNum := 1
	for _, row := range rows {
		if err := setRow(f, sheetSummary, rowNum, row); err != nil {
			return err
		}
		rowNum++
	}

	counts := result.UnfittedCountsByName()
	if len(counts) > 0 {
		rowNum++
		if err := setRow(f, sheetSummary, rowNum, []interface{}{"Unfitted by item"}); err != nil {
			return err
		}
		rowNum++

		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if err := setRow(f, sheetSummary, rowNum, []interface{}{name, counts[name]}); err != nil {
				return err
			}
			rowNum++
		}
	}
	return nil
}
