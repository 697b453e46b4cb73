package export

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/piwi3910/StowPack/internal/model"
)

// htmlColors is the hex twin of cargoColors for browser rendering.
var htmlColors = []string{
	"#4caf50", // green
	"#2196f3", // blue
	"#ff9800", // orange
	"#9c27b0", // purple
	"#00bcd4", // cyan
	"#f44336", // red
	"#ffeb3b", // yellow
	"#795548", // brown
}

// ExportHTML renders the load plan as an interactive 3D scatter chart in
// a standalone HTML file. Each placed box contributes its eight corner
// points, grouped and colored by cargo group, so the load can be rotated
// and inspected in a browser.
func ExportHTML(path string, result model.LoadResult) error {
	if len(result.Placements) == 0 {
		return fmt.Errorf("no placements to visualize")
	}

	container := result.Container

	scatter := charts.NewScatter3D()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("StowPack Load Plan: %s", container.Name),
			Subtitle: fmt.Sprintf("Placed %d, unfitted %d, efficiency %.1f%%",
				len(result.Placements), len(result.Unfitted), result.LoadEfficiency()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "Width (m)", Min: 0, Max: container.Width}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Depth (m)", Min: 0, Max: container.Depth}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Height (m)", Min: 0, Max: container.Height}),
	)

	for i, group := range placementGroups(result) {
		color := htmlColors[i%len(htmlColors)]
		scatter.AddSeries(group, groupCornerPoints(result, group),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
		)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create HTML file: %w", err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// placementGroups returns the cargo groups in first-placement order.
func placementGroups(result model.LoadResult) []string {
	var groups []string
	seen := map[string]bool{}
	for _, p := range result.Placements {
		g := p.Cargo.GroupName()
		if !seen[g] {
			seen[g] = true
			groups = append(groups, g)
		}
	}
	return groups
}

// groupCornerPoints collects the eight corners of every placed box in
// the group. The chart axes are x/depth/height, so the engine's y (up)
// maps to the chart's z.
func groupCornerPoints(result model.LoadResult, group string) []opts.Chart3DData {
	var points []opts.Chart3DData
	for _, p := range result.Placements {
		if p.Cargo.GroupName() != group {
			continue
		}
		dims := p.PlacedDims()
		for _, dx := range []float64{0, dims.Width} {
			for _, dy := range []float64{0, dims.Height} {
				for _, dz := range []float64{0, dims.Depth} {
					points = append(points, opts.Chart3DData{
						Name: p.Cargo.Name,
						Value: []interface{}{
							p.Position.X + dx,
							p.Position.Z + dz,
							p.Position.Y + dy,
						},
					})
				}
			}
		}
	}
	return points
}
