// Package export provides functionality for exporting load plans to
// various file formats.
package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/StowPack/internal/model"
)

// cargoColor represents an RGB color for a placed cargo box.
type cargoColor struct {
	R, G, B int
}

// cargoColors mirrors the color scheme used in the UI load canvas widget.
var cargoColors = []cargoColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ColorForGroup returns a stable color for a cargo group so the same
// group renders identically across pages and exports.
func ColorForGroup(result model.LoadResult, group string) (int, int, int) {
	idx := 0
	seen := map[string]int{}
	for _, p := range result.Placements {
		g := p.Cargo.GroupName()
		if _, ok := seen[g]; !ok {
			seen[g] = idx
			idx++
		}
	}
	col := cargoColors[seen[group]%len(cargoColors)]
	return col.R, col.G, col.B
}

// ExportPDF generates a PDF document containing the load plan.
// The plan view (looking down into the container) and the side elevation
// each get their own page, followed by a summary page with statistics
// and the full placement table.
func ExportPDF(path string, result model.LoadResult) error {
	if len(result.Placements) == 0 && len(result.Unfitted) == 0 {
		return fmt.Errorf("no load plan to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderProjectionPage(pdf, result, projectionPlan)

	pdf.AddPage()
	renderProjectionPage(pdf, result, projectionElevation)

	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// projection selects which two of the three container axes a page shows.
type projection int

const (
	projectionPlan      projection = iota // top view: x across, z down the page
	projectionElevation                   // side view: x across, y up the page
)

func (p projection) title() string {
	if p == projectionPlan {
		return "Plan View (top)"
	}
	return "Side Elevation"
}

// project maps a placement onto the 2D page plane for the projection:
// horizontal position/extent along x, vertical along z (plan) or y
// (elevation). The elevation flips vertically so y grows upward.
func (p projection) project(pos model.Position, dims model.Dimensions, containerH float64) (px, py, pw, ph float64) {
	if p == projectionPlan {
		return pos.X, pos.Z, dims.Width, dims.Depth
	}
	return pos.X, containerH - pos.Y - dims.Height, dims.Width, dims.Height
}

func (p projection) planeSize(c model.Container) (w, h float64) {
	if p == projectionPlan {
		return c.Width, c.Depth
	}
	return c.Width, c.Height
}

// renderProjectionPage draws one 2D projection of the load on the
// current PDF page. Boxes are drawn in ascending order along the hidden
// axis so nearer cargo overpaints what sits behind it.
func renderProjectionPage(pdf *fpdf.Fpdf, result model.LoadResult, proj projection) {
	container := result.Container

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("%s: %s (%.2f x %.2f x %.2f m)",
		proj.title(), container.Name, container.Width, container.Height, container.Depth)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Placed: %d | Unfitted: %d | Load efficiency: %.1f%% | Weight: %.0f / %.0f kg",
		len(result.Placements), len(result.Unfitted), result.LoadEfficiency(),
		result.PackedWeight(), container.MaxWeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	planeW, planeH := proj.planeSize(container)
	if planeW <= 0 || planeH <= 0 {
		return
	}

	// Calculate drawing area and scale to fit the container cross-section
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	scale := math.Min(drawWidth/planeW, drawHeight/planeH)
	canvasW := planeW * scale
	canvasH := planeH * scale

	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Container outline
	pdf.SetFillColor(235, 235, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Draw placed cargo, back to front along the hidden axis
	for _, p := range sortForProjection(result.Placements, proj) {
		r, g, b := ColorForGroup(result, p.Cargo.GroupName())
		dims := p.PlacedDims()
		bx, by, bw, bh := proj.project(p.Position, dims, container.Height)

		px := offsetX + bx*scale
		py := offsetY + by*scale
		pw := bw * scale
		ph := bh * scale

		pdf.SetFillColor(r, g, b)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Label (only if rectangle is large enough)
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.Cargo.GroupName()
			labelW := pdf.GetStringWidth(label)
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, planeW, planeH, offsetX, offsetY, canvasW, canvasH)
	drawGroupLegend(pdf, result, offsetY+canvasH+5)
}

// sortForProjection orders placements by the coordinate hidden in the
// projection, ascending, without mutating the input.
func sortForProjection(placements []model.Placement, proj projection) []model.Placement {
	ordered := make([]model.Placement, len(placements))
	copy(ordered, placements)

	hidden := func(p model.Placement) float64 {
		if proj == projectionPlan {
			return p.Position.Y
		}
		return p.Position.Z
	}
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && hidden(ordered[j]) < hidden(ordered[j-1]); j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}
	return ordered
}

// drawDimensionAnnotations adds the projected container dimensions
// outside the outline.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, planeW, planeH, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the outline)
	widthLabel := fmt.Sprintf("%.2f m", planeW)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left, rotated)
	heightLabel := fmt.Sprintf("%.2f m", planeH)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawGroupLegend renders a compact legend of cargo groups below the drawing.
func drawGroupLegend(pdf *fpdf.Fpdf, result model.LoadResult, startY float64) {
	if len(result.Placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Cargo groups:", "", 0, "L", false, 0, "")

	counts := map[string]int{}
	var groups []string
	for _, p := range result.Placements {
		g := p.Cargo.GroupName()
		if counts[g] == 0 {
			groups = append(groups, g)
		}
		counts[g]++
	}

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for _, group := range groups {
		r, g, b := ColorForGroup(result, group)
		label := fmt.Sprintf("%s (%d)", group, counts[group])
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		// Color swatch
		pdf.SetFillColor(r, g, b)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with statistics, the
// full placement table, and any unfitted cargo.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.LoadResult) {
	container := result.Container

	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Load Plan Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Overall statistics
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Container", fmt.Sprintf("%s (%.2f x %.2f x %.2f m)", container.Name, container.Width, container.Height, container.Depth)},
		{"Items Placed", fmt.Sprintf("%d", len(result.Placements))},
		{"Items Unfitted", fmt.Sprintf("%d", len(result.Unfitted))},
		{"Load Efficiency", fmt.Sprintf("%.1f%%", result.LoadEfficiency())},
		{"Packed Volume", fmt.Sprintf("%.3f / %.3f m³", result.PackedVolume(), container.Volume())},
		{"Packed Weight", fmt.Sprintf("%.1f / %.1f kg", result.PackedWeight(), container.MaxWeight)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(45, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(100, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Placement table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Placements", "", 0, "L", false, 0, "")
	y += 9

	colWidths := []float64{15, 60, 55, 55, 45, 35}
	headers := []string{"#", "Item", "Position (m)", "Dimensions (m)", "Rotation", "Weight (kg)"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	pdf.SetFont("Helvetica", "", 9)
	for i, p := range result.Placements {
		// New page when the table runs off the bottom
		if y > pageHeight-marginBottom-10 {
			pdf.AddPage()
			y = marginTop
		}

		dims := p.PlacedDims()
		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			p.Cargo.Name,
			fmt.Sprintf("%.2f, %.2f, %.2f", p.Position.X, p.Position.Y, p.Position.Z),
			fmt.Sprintf("%.2f x %.2f x %.2f", dims.Width, dims.Height, dims.Depth),
			p.Rotation.String(),
			fmt.Sprintf("%.1f", p.Cargo.Weight),
		}

		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Unfitted cargo warning
	if len(result.Unfitted) > 0 {
		y += 8
		if y > pageHeight-marginBottom-20 {
			pdf.AddPage()
			y = marginTop
		}

		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "WARNING: Unfitted Cargo", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		counts := result.UnfittedCountsByName()
		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %d not placed", name, counts[name])
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by StowPack - Container Load Planner", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
