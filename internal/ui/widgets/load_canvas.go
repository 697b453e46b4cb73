package widgets

import (
	"fmt"
	"image/color"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StowPack/internal/model"
)

// Cargo group colors — cycle through these for visual distinction.
var groupColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

// ViewKind selects which orthographic projection a LoadCanvas draws.
type ViewKind int

const (
	// ViewPlan looks down the container from above: X across, Z up the
	// screen. Stacked items hide what is below them.
	ViewPlan ViewKind = iota
	// ViewElevation looks at the container from the side: X across,
	// height up the screen. Items nearer the viewer hide the far wall.
	ViewElevation
)

func (v ViewKind) String() string {
	if v == ViewElevation {
		return "Side Elevation"
	}
	return "Plan View"
}

// projectedRect is one placement flattened onto the viewing plane, in
// container metres.
type projectedRect struct {
	x, y, w, h float64
	depthKey   float64 // hidden-axis coordinate, draw ascending
	group      string
	name       string
}

// projectPlacements flattens the placements of a result onto the given
// view plane and returns them in painter's order: the rectangle with the
// greatest hidden-axis coordinate is drawn last, on top.
func projectPlacements(result model.LoadResult, view ViewKind) []projectedRect {
	rects := make([]projectedRect, 0, len(result.Placements))
	for _, p := range result.Placements {
		dims := p.PlacedDims()
		r := projectedRect{
			group: p.Cargo.GroupName(),
			name:  p.Cargo.Name,
		}
		switch view {
		case ViewElevation:
			r.x = p.Position.X
			r.y = result.Container.Height - p.Position.Y - dims.Height
			r.w = dims.Width
			r.h = dims.Height
			r.depthKey = p.Position.Z
		default:
			r.x = p.Position.X
			r.y = p.Position.Z
			r.w = dims.Width
			r.h = dims.Depth
			r.depthKey = p.Position.Y
		}
		rects = append(rects, r)
	}
	sort.SliceStable(rects, func(i, j int) bool {
		return rects[i].depthKey < rects[j].depthKey
	})
	return rects
}

// planeSize returns the container extent of the viewing plane in metres.
func planeSize(c model.Container, view ViewKind) (float64, float64) {
	if view == ViewElevation {
		return c.Width, c.Height
	}
	return c.Width, c.Depth
}

// groupColorIndex assigns palette slots by first appearance in placement
// order, so a group keeps its color across both views.
func groupColorIndex(result model.LoadResult) map[string]int {
	idx := make(map[string]int)
	for _, p := range result.Placements {
		g := p.Cargo.GroupName()
		if _, ok := idx[g]; !ok {
			idx[g] = len(idx)
		}
	}
	return idx
}

// LoadCanvas renders one orthographic projection of a load result.
type LoadCanvas struct {
	widget.BaseWidget
	result    model.LoadResult
	view      ViewKind
	maxWidth  float32
	maxHeight float32
}

func NewLoadCanvas(result model.LoadResult, view ViewKind, maxW, maxH float32) *LoadCanvas {
	lc := &LoadCanvas{
		result:    result,
		view:      view,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	lc.ExtendBaseWidget(lc)
	return lc
}

func (lc *LoadCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newLoadCanvasRenderer(lc)
}

type loadCanvasRenderer struct {
	lc      *LoadCanvas
	objects []fyne.CanvasObject
}

func newLoadCanvasRenderer(lc *LoadCanvas) *loadCanvasRenderer {
	r := &loadCanvasRenderer{lc: lc}
	r.rebuild()
	return r
}

func (r *loadCanvasRenderer) scale() (float32, float32, float32) {
	planeW, planeH := planeSize(r.lc.result.Container, r.lc.view)
	w := float32(planeW)
	h := float32(planeH)
	if w <= 0 || h <= 0 {
		return 1, 0, 0
	}
	scale := r.lc.maxWidth / w
	if s := r.lc.maxHeight / h; s < scale {
		scale = s
	}
	return scale, w * scale, h * scale
}

func (r *loadCanvasRenderer) rebuild() {
	r.objects = nil

	scale, canvasW, canvasH := r.scale()
	if canvasW == 0 || canvasH == 0 {
		return
	}

	// Container floor/wall background
	bg := canvas.NewRectangle(color.NRGBA{R: 224, G: 224, B: 224, A: 255})
	bg.Resize(fyne.NewSize(canvasW, canvasH))
	bg.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, bg)

	// Container outline
	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	border.StrokeWidth = 2
	border.Resize(fyne.NewSize(canvasW, canvasH))
	border.Move(fyne.NewPos(0, 0))
	r.objects = append(r.objects, border)

	colorIdx := groupColorIndex(r.lc.result)

	for _, rect := range projectPlacements(r.lc.result, r.lc.view) {
		col := groupColors[colorIdx[rect.group]%len(groupColors)]
		pw := float32(rect.w) * scale
		ph := float32(rect.h) * scale
		px := float32(rect.x) * scale
		py := float32(rect.y) * scale

		// Item rectangle
		itemRect := canvas.NewRectangle(col)
		itemRect.Resize(fyne.NewSize(pw, ph))
		itemRect.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, itemRect)

		// Item border
		itemBorder := canvas.NewRectangle(color.Transparent)
		itemBorder.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		itemBorder.StrokeWidth = 1
		itemBorder.Resize(fyne.NewSize(pw, ph))
		itemBorder.Move(fyne.NewPos(px, py))
		r.objects = append(r.objects, itemBorder)

		// Label (only if big enough)
		if pw > 30 && ph > 16 {
			label := canvas.NewText(rect.name, color.Black)
			label.TextSize = 10
			label.Move(fyne.NewPos(px+3, py+2))
			r.objects = append(r.objects, label)
		}
	}
}

func (r *loadCanvasRenderer) Layout(size fyne.Size)        {}
func (r *loadCanvasRenderer) Refresh()                     { r.rebuild() }
func (r *loadCanvasRenderer) Destroy()                     {}
func (r *loadCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *loadCanvasRenderer) MinSize() fyne.Size {
	_, w, h := r.scale()
	return fyne.NewSize(w, h)
}

// RenderLoadResult creates a scrollable container with both projections
// of a load result plus the headline statistics.
func RenderLoadResult(result *model.LoadResult) fyne.CanvasObject {
	if result == nil || (len(result.Placements) == 0 && len(result.Unfitted) == 0) {
		return widget.NewLabel("No results yet. Add cargo, then click Pack.")
	}

	var items []fyne.CanvasObject

	for _, view := range []ViewKind{ViewPlan, ViewElevation} {
		header := widget.NewLabel(fmt.Sprintf(
			"%s: %s (%.2f x %.2f x %.2f m)",
			view, result.Container.Name,
			result.Container.Width, result.Container.Height, result.Container.Depth,
		))
		header.TextStyle = fyne.TextStyle{Bold: true}

		items = append(items, header, NewLoadCanvas(*result, view, 700, 300), widget.NewSeparator())
	}

	if len(result.Unfitted) > 0 {
		warning := widget.NewLabel(fmt.Sprintf(
			"WARNING: %d items could not be placed! Use a larger container or reduce the manifest.",
			len(result.Unfitted),
		))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)

		for _, line := range unfittedBreakdown(result) {
			items = append(items, widget.NewLabel(line))
		}
		items = append(items, widget.NewSeparator())
	}

	summary := widget.NewLabel(fmt.Sprintf(
		"Packed %d items, %.1f%% load efficiency | %.0f kg of %.0f kg payload | %.2f m3 free",
		len(result.Placements), result.LoadEfficiency(),
		result.PackedWeight(), result.Container.MaxWeight, result.FreeVolume(),
	))
	summary.TextStyle = fyne.TextStyle{Bold: true}
	items = append(items, summary)

	return container.NewVScroll(container.NewVBox(items...))
}

// unfittedBreakdown generates per-manifest-name statistics lines for the
// items left behind.
func unfittedBreakdown(result *model.LoadResult) []string {
	counts := result.UnfittedCountsByName()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var lines []string
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("  %s: %d unplaced", name, counts[name]))
	}
	return lines
}
