package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StowPack/internal/engine"
	"github.com/piwi3910/StowPack/internal/export"
	cargoimporter "github.com/piwi3910/StowPack/internal/importer"
	"github.com/piwi3910/StowPack/internal/model"
	"github.com/piwi3910/StowPack/internal/project"
	"github.com/piwi3910/StowPack/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	window      fyne.Window
	project     model.Project
	config      model.AppConfig
	catalog     model.Catalog
	catalogPath string
	templates   model.TemplateStore
	history     *History
	tabs        *container.AppTabs

	// UI references for dynamic updates
	cargoContainer  *fyne.Container
	resultContainer *fyne.Container
}

func NewApp(window fyne.Window) *App {
	a := &App{
		window:  window,
		project: model.NewProject(),
		history: NewHistory(),
	}

	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		config = model.DefaultAppConfig()
	}
	a.config = config
	a.config.ApplyToProject(&a.project)

	catalog, catalogPath, err := project.LoadOrCreateCatalog()
	if err != nil {
		catalog = model.DefaultCatalog()
	}
	a.catalog = catalog
	a.catalogPath = catalogPath

	templates, err := project.LoadDefaultTemplates()
	if err != nil {
		templates = model.NewTemplateStore()
	}
	a.templates = templates

	a.applyTheme()

	return a
}

// applyTheme installs the compact theme with the configured variant.
func (a *App) applyTheme() {
	app := fyne.CurrentApp()
	if app == nil {
		return
	}
	switch a.config.Theme {
	case "light":
		app.Settings().SetTheme(NewStowPackThemeWithVariant(theme.VariantLight))
	case "dark":
		app.Settings().SetTheme(NewStowPackThemeWithVariant(theme.VariantDark))
	default:
		app.Settings().SetTheme(NewStowPackTheme())
	}
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Project", func() {
			a.newProject()
		}),
		fyne.NewMenuItem("Open Project...", func() {
			a.loadProject()
		}),
		fyne.NewMenuItem("Save Project...", func() {
			a.saveProject()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Cargo from CSV...", func() {
			a.importCSV()
		}),
		fyne.NewMenuItem("Import Cargo from Excel...", func() {
			a.importExcel()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Load Plan PDF...", func() {
			a.exportResult("pdf")
		}),
		fyne.NewMenuItem("Export Cargo Labels PDF...", func() {
			a.exportResult("labels")
		}),
		fyne.NewMenuItem("Export Excel Workbook...", func() {
			a.exportResult("xlsx")
		}),
		fyne.NewMenuItem("Export 3D View (HTML)...", func() {
			a.exportResult("html")
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear Manifest", func() {
			a.pushHistory("Clear Manifest")
			a.project.Manifest = nil
			a.refreshCargoList()
		}),
	)

	// Tools Menu
	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Pack", func() {
			a.runPack()
			a.tabs.SelectIndex(3) // Switch to Results tab
		}),
		fyne.NewMenuItem("Compare Scenarios...", func() {
			a.showCompareDialog()
		}),
		fyne.NewMenuItem("Container Estimate...", func() {
			a.showEstimateDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Save as Template...", func() {
			a.showSaveTemplateDialog()
		}),
		fyne.NewMenuItem("New from Template...", func() {
			a.showLoadTemplateDialog()
		}),
		fyne.NewMenuItem("Manage Templates...", func() {
			a.showManageTemplatesDialog()
		}),
	)

	// Admin Menu
	adminMenu := fyne.NewMenu("Admin",
		fyne.NewMenuItem("Cargo Catalog...", func() {
			a.showCargoCatalogDialog()
		}),
		fyne.NewMenuItem("Container Fleet...", func() {
			a.showContainerFleetDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItem("Import / Export Data...", func() {
			a.showImportExportDialog()
		}),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	// Set the main menu
	mainMenu := fyne.NewMainMenu(
		fileMenu,
		editMenu,
		toolsMenu,
		adminMenu,
		helpMenu,
	)
	a.window.SetMainMenu(mainMenu)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About StowPack",
		"StowPack — Container Load Planner\n\n"+
			"A cross-platform desktop application for planning\n"+
			"3D container loads with rotation and weight limits.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	// Main tabs
	cargoTab := container.NewTabItem("Cargo", a.buildCargoPanel())
	containerTab := container.NewTabItem("Container", a.buildContainerPanel())
	settingsTab := container.NewTabItem("Settings", a.buildSettingsPanel())
	resultsTab := container.NewTabItem("Results", a.buildResultsPanel())

	a.tabs = container.NewAppTabs(cargoTab, containerTab, settingsTab, resultsTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	return a.tabs
}

// ─── Cargo Panel ───────────────────────────────────────────

func (a *App) buildCargoPanel() fyne.CanvasObject {
	a.cargoContainer = container.NewVBox()
	a.refreshCargoList()

	addBtn := widget.NewButtonWithIcon("Add Cargo", theme.ContentAddIcon(), func() {
		a.showAddCargoDialog()
	})
	catalogBtn := widget.NewButtonWithIcon("Add from Catalog", theme.FolderOpenIcon(), func() {
		a.showAddFromCatalogDialog()
	})

	return container.NewBorder(
		container.NewHBox(
			widget.NewLabelWithStyle("Load Manifest", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			layout.NewSpacer(),
			catalogBtn,
			addBtn,
		),
		nil, nil, nil,
		container.NewVScroll(a.cargoContainer),
	)
}

func (a *App) refreshCargoList() {
	a.cargoContainer.RemoveAll()

	if len(a.project.Manifest) == 0 {
		a.cargoContainer.Add(widget.NewLabel("No cargo added yet. Click 'Add Cargo' to begin."))
		return
	}

	// Header
	header := container.NewGridWithColumns(8,
		widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Width (m)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Height (m)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Depth (m)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Weight (kg)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Qty", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.cargoContainer.Add(header)
	a.cargoContainer.Add(widget.NewSeparator())

	for i := range a.project.Manifest {
		idx := i // capture
		c := a.project.Manifest[idx]
		row := container.NewGridWithColumns(8,
			widget.NewLabel(c.Name),
			widget.NewLabel(fmt.Sprintf("%.2f", c.Width)),
			widget.NewLabel(fmt.Sprintf("%.2f", c.Height)),
			widget.NewLabel(fmt.Sprintf("%.2f", c.Depth)),
			widget.NewLabel(fmt.Sprintf("%.1f", c.Weight)),
			widget.NewLabel(fmt.Sprintf("%d", c.Quantity)),
			newIconButtonWithTooltip(theme.DocumentCreateIcon(), "Edit cargo", func() {
				a.showEditCargoDialog(idx)
			}),
			newIconButtonWithTooltip(theme.DeleteIcon(), "Remove from manifest", func() {
				a.pushHistory("Delete Cargo")
				a.project.Manifest = append(a.project.Manifest[:idx], a.project.Manifest[idx+1:]...)
				a.refreshCargoList()
			}),
		)
		a.cargoContainer.Add(row)
	}
}

func (a *App) showAddCargoDialog() {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Cargo name")
	nameEntry.SetText(fmt.Sprintf("Cargo %d", len(a.project.Manifest)+1))

	widthEntry := widget.NewEntry()
	widthEntry.SetPlaceHolder("Width in m")

	heightEntry := widget.NewEntry()
	heightEntry.SetPlaceHolder("Height in m")

	depthEntry := widget.NewEntry()
	depthEntry.SetPlaceHolder("Depth in m")

	weightEntry := widget.NewEntry()
	weightEntry.SetPlaceHolder("Weight per unit in kg")

	qtyEntry := widget.NewEntry()
	qtyEntry.SetText("1")

	form := dialog.NewForm("Add Cargo", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width (m)", widthEntry),
			widget.NewFormItem("Height (m)", heightEntry),
			widget.NewFormItem("Depth (m)", depthEntry),
			widget.NewFormItem("Weight (kg)", weightEntry),
			widget.NewFormItem("Quantity", qtyEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			d, _ := strconv.ParseFloat(depthEntry.Text, 64)
			weight, _ := strconv.ParseFloat(weightEntry.Text, 64)
			q, _ := strconv.Atoi(qtyEntry.Text)
			if w <= 0 || h <= 0 || d <= 0 || q <= 0 {
				dialog.ShowError(fmt.Errorf("width, height, depth, and quantity must be > 0"), a.window)
				return
			}
			if weight < 0 {
				dialog.ShowError(fmt.Errorf("weight must not be negative"), a.window)
				return
			}

			a.pushHistory("Add Cargo")
			a.project.Manifest = append(a.project.Manifest, model.NewCargo(nameEntry.Text, w, h, d, weight, q))
			a.refreshCargoList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 400))
	form.Show()
}

func (a *App) showEditCargoDialog(idx int) {
	c := a.project.Manifest[idx]

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Cargo name")
	nameEntry.SetText(c.Name)

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%.2f", c.Width))

	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%.2f", c.Height))

	depthEntry := widget.NewEntry()
	depthEntry.SetText(fmt.Sprintf("%.2f", c.Depth))

	weightEntry := widget.NewEntry()
	weightEntry.SetText(fmt.Sprintf("%.1f", c.Weight))

	qtyEntry := widget.NewEntry()
	qtyEntry.SetText(fmt.Sprintf("%d", c.Quantity))

	form := dialog.NewForm("Edit Cargo", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width (m)", widthEntry),
			widget.NewFormItem("Height (m)", heightEntry),
			widget.NewFormItem("Depth (m)", depthEntry),
			widget.NewFormItem("Weight (kg)", weightEntry),
			widget.NewFormItem("Quantity", qtyEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			d, _ := strconv.ParseFloat(depthEntry.Text, 64)
			weight, _ := strconv.ParseFloat(weightEntry.Text, 64)
			q, _ := strconv.Atoi(qtyEntry.Text)
			if w <= 0 || h <= 0 || d <= 0 || q <= 0 {
				dialog.ShowError(fmt.Errorf("width, height, depth, and quantity must be > 0"), a.window)
				return
			}
			if weight < 0 {
				dialog.ShowError(fmt.Errorf("weight must not be negative"), a.window)
				return
			}

			a.pushHistory("Edit Cargo")
			a.project.Manifest[idx].Name = nameEntry.Text
			a.project.Manifest[idx].Width = w
			a.project.Manifest[idx].Height = h
			a.project.Manifest[idx].Depth = d
			a.project.Manifest[idx].Weight = weight
			a.project.Manifest[idx].Quantity = q
			a.refreshCargoList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 400))
	form.Show()
}

// showAddFromCatalogDialog shows a picker to add a manifest line from the cargo catalog.
func (a *App) showAddFromCatalogDialog() {
	if len(a.catalog.Cargo) == 0 {
		dialog.ShowInformation("No Presets",
			"No cargo presets defined. Use Admin > Cargo Catalog to add presets.",
			a.window)
		return
	}

	names := a.catalog.CargoNames()
	cargoSelect := widget.NewSelect(names, nil)
	cargoSelect.SetSelected(names[0])

	qtyEntry := widget.NewEntry()
	qtyEntry.SetText("1")

	form := dialog.NewForm("Add from Catalog", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Cargo Preset", cargoSelect),
			widget.NewFormItem("Quantity", qtyEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			preset := a.catalog.FindCargoByName(cargoSelect.Selected)
			if preset == nil {
				return
			}
			qty, _ := strconv.Atoi(qtyEntry.Text)
			if qty <= 0 {
				qty = 1
			}
			a.pushHistory("Add Cargo")
			a.project.Manifest = append(a.project.Manifest, preset.ToCargo(qty))
			a.refreshCargoList()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 250))
	form.Show()
}

// ─── Container Panel ───────────────────────────────────────

func (a *App) buildContainerPanel() fyne.CanvasObject {
	c := &a.project.Container

	nameEntry := widget.NewEntry()
	nameEntry.SetText(c.Name)
	nameEntry.OnChanged = func(text string) { c.Name = text }

	floatEntry := func(val *float64) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%.2f", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.ParseFloat(text, 64); err == nil {
				*val = v
			}
		}
		return e
	}

	widthEntry := floatEntry(&c.Width)
	heightEntry := floatEntry(&c.Height)
	depthEntry := floatEntry(&c.Depth)
	weightEntry := floatEntry(&c.MaxWeight)

	// Preset dropdown from the container fleet
	names := a.catalog.ContainerNames()
	presetSelect := widget.NewSelect(names, func(selected string) {
		preset := a.catalog.FindContainerByName(selected)
		if preset == nil {
			return
		}
		a.pushHistory("Change Container")
		*c = preset.ToContainer()
		nameEntry.SetText(c.Name)
		widthEntry.SetText(fmt.Sprintf("%.2f", c.Width))
		heightEntry.SetText(fmt.Sprintf("%.2f", c.Height))
		depthEntry.SetText(fmt.Sprintf("%.2f", c.Depth))
		weightEntry.SetText(fmt.Sprintf("%.2f", c.MaxWeight))
	})
	presetSelect.PlaceHolder = "Select a container preset..."

	dimensionsSection := widget.NewCard("Container", "", container.NewGridWithColumns(2,
		widget.NewLabel("Preset"), presetSelect,
		widget.NewLabel("Name"), nameEntry,
		widget.NewLabel("Interior Width (m)"), widthEntry,
		widget.NewLabel("Interior Height (m)"), heightEntry,
		widget.NewLabel("Interior Depth (m)"), depthEntry,
		widget.NewLabel("Max Payload (kg)"), weightEntry,
	))

	return container.NewVScroll(container.NewVBox(dimensionsSection))
}

// ─── Settings Panel ────────────────────────────────────────

func (a *App) buildSettingsPanel() fyne.CanvasObject {
	s := &a.project.Settings

	algorithmSelect := widget.NewSelect([]string{"Greedy First-Fit (Fast)", "Genetic Refinement (Better)"}, func(selected string) {
		switch selected {
		case "Genetic Refinement (Better)":
			s.Algorithm = model.AlgorithmGenetic
		default:
			s.Algorithm = model.AlgorithmGreedy
		}
	})
	switch s.Algorithm {
	case model.AlgorithmGenetic:
		algorithmSelect.SetSelected("Genetic Refinement (Better)")
	default:
		algorithmSelect.SetSelected("Greedy First-Fit (Fast)")
	}

	seedEntry := widget.NewEntry()
	seedEntry.SetText(fmt.Sprintf("%d", s.GeneticSeed))
	seedEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			s.GeneticSeed = v
		}
	}

	packerSection := widget.NewCard("Packer", "", container.NewGridWithColumns(2,
		widget.NewLabel("Algorithm"), algorithmSelect,
		widget.NewLabel("Genetic Seed"), seedEntry,
	))

	return container.NewVScroll(container.NewVBox(packerSection))
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	a.resultContainer = container.NewStack(
		widget.NewLabel("No results yet. Add cargo, then click Pack."),
	)
	return a.resultContainer
}

func (a *App) refreshResults() {
	a.resultContainer.RemoveAll()
	a.resultContainer.Add(widgets.RenderLoadResult(a.project.Result))
	a.resultContainer.Refresh()
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) newProject() {
	a.project = model.NewProject()
	a.config.ApplyToProject(&a.project)
	a.history.Clear()
	a.refreshCargoList()
	a.refreshResults()
	a.rebuildStaticTabs()
}

// rebuildStaticTabs recreates the container and settings panels after the
// project they bind to has been replaced.
func (a *App) rebuildStaticTabs() {
	if a.tabs == nil {
		return
	}
	a.tabs.Items[1].Content = a.buildContainerPanel()
	a.tabs.Items[2].Content = a.buildSettingsPanel()
	a.tabs.Refresh()
}

func (a *App) runPack() {
	if len(a.project.Manifest) == 0 {
		dialog.ShowInformation("Nothing to pack", "Add at least one cargo item first.", a.window)
		return
	}

	packer := engine.New(a.project.Settings)
	result, err := packer.Pack(a.project.Container, a.project.Manifest)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.project.Result = &result
	a.refreshResults()
}

func (a *App) saveProject() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.SaveProject(path, a.project); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		project.AddRecentProject(&a.config, path, 10)
		if err := a.saveConfig(); err != nil {
			dialog.ShowError(err, a.window)
		}
	}, a.window)
	d.SetFileName(a.project.Name + ".stowpack")
	d.Show()
}

func (a *App) loadProject() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		path := reader.URI().Path()
		proj, err := project.LoadProject(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.project = proj
		a.history.Clear()
		project.AddRecentProject(&a.config, path, 10)
		if err := a.saveConfig(); err != nil {
			dialog.ShowError(err, a.window)
		}
		a.refreshCargoList()
		a.rebuildStaticTabs()
		if a.project.Result != nil {
			a.refreshResults()
		}
	}, a.window)
	d.Show()
}

// exportResult writes the current pack result in the requested format.
func (a *App) exportResult(format string) {
	if a.project.Result == nil {
		dialog.ShowInformation("No results", "Run the packer first before exporting.", a.window)
		return
	}
	result := *a.project.Result

	var defaultName string
	var exportFn func(string) error
	switch format {
	case "labels":
		defaultName = a.project.Name + "-labels.pdf"
		exportFn = func(path string) error { return export.ExportLabels(path, result) }
	case "xlsx":
		defaultName = a.project.Name + ".xlsx"
		exportFn = func(path string) error { return export.ExportExcel(path, result) }
	case "html":
		defaultName = a.project.Name + ".html"
		exportFn = func(path string) error { return export.ExportHTML(path, result) }
	default:
		defaultName = a.project.Name + ".pdf"
		exportFn = func(path string) error { return export.ExportPDF(path, result) }
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := exportFn(path); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Load plan saved to %s", path), a.window)
		}
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

// ─── Undo / Redo ───────────────────────────────────────────

// pushHistory records the current manifest and container before a mutation.
func (a *App) pushHistory(label string) {
	a.history.Push(MakeSnapshot(a.project.Manifest, a.project.Container, label))
}

func (a *App) undo() {
	current := MakeSnapshot(a.project.Manifest, a.project.Container, "current")
	snap, ok := a.history.Undo(current)
	if !ok {
		return
	}
	a.restoreSnapshot(snap)
}

func (a *App) redo() {
	current := MakeSnapshot(a.project.Manifest, a.project.Container, "current")
	snap, ok := a.history.Redo(current)
	if !ok {
		return
	}
	a.restoreSnapshot(snap)
}

func (a *App) restoreSnapshot(snap Snapshot) {
	a.project.Manifest = copyCargo(snap.Manifest)
	a.project.Container = snap.Container
	a.refreshCargoList()
	a.rebuildStaticTabs()
}

// ─── Import Functions ───────────────────────────────────────

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := cargoimporter.ImportCSV(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		result := cargoimporter.ImportExcel(reader.URI().Path())
		a.handleImportResult(result)
	}, a.window)
}

func (a *App) handleImportResult(result cargoimporter.ImportResult) {
	// Show errors if any
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(fmt.Errorf("%s", errorMsg), a.window)
	}

	// Show warnings if any
	if len(result.Warnings) > 0 {
		// Just log warnings, don't block
		fmt.Printf("Import warnings: %v\n", result.Warnings)
	}

	// Add imported cargo
	if len(result.Cargo) > 0 {
		a.pushHistory("Import Cargo")
		a.project.Manifest = append(a.project.Manifest, result.Cargo...)
		a.refreshCargoList()

		// Show success message
		msg := fmt.Sprintf("Successfully imported %d cargo lines.", len(result.Cargo))
		if len(result.Errors) > 0 {
			msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
		}
		dialog.ShowInformation("Import Complete", msg, a.window)
	}
}

// ─── Analysis Dialogs ──────────────────────────────────────

func (a *App) showCompareDialog() {
	if len(a.project.Manifest) == 0 {
		dialog.ShowInformation("Nothing to compare", "Add at least one cargo item first.", a.window)
		return
	}

	scenarios := engine.BuildDefaultScenarios(a.project.Container, a.project.Settings, a.catalog)
	results := engine.CompareScenarios(scenarios, a.project.Manifest)

	list := container.NewVBox()
	header := container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Scenario", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Packed", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Unfitted", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Efficiency", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Weight", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	list.Add(header)
	list.Add(widget.NewSeparator())

	for _, r := range results {
		if r.Err != nil {
			list.Add(container.NewGridWithColumns(5,
				widget.NewLabel(r.Scenario.Name),
				widget.NewLabel("error"),
				widget.NewLabel(r.Err.Error()),
				widget.NewLabel("-"),
				widget.NewLabel("-"),
			))
			continue
		}
		list.Add(container.NewGridWithColumns(5,
			widget.NewLabel(r.Scenario.Name),
			widget.NewLabel(fmt.Sprintf("%d", r.PackedCount)),
			widget.NewLabel(fmt.Sprintf("%d", r.UnfittedCount)),
			widget.NewLabel(fmt.Sprintf("%.1f%%", r.Efficiency)),
			widget.NewLabel(fmt.Sprintf("%.0f kg", r.PackedWeight)),
		))
	}

	d := dialog.NewCustom("Scenario Comparison", "Close", container.NewVScroll(list), a.window)
	d.Resize(fyne.NewSize(700, 450))
	d.Show()
}

func (a *App) showEstimateDialog() {
	if len(a.project.Manifest) == 0 {
		dialog.ShowInformation("Nothing to estimate", "Add at least one cargo item first.", a.window)
		return
	}

	est := model.CalculateLoadEstimate(a.project.Manifest, a.project.Container, a.config.AssumedUtilization)

	content := container.NewVBox(
		widget.NewLabel(fmt.Sprintf("Total cargo volume: %.2f m3", est.TotalVolume)),
		widget.NewLabel(fmt.Sprintf("Total cargo weight: %.0f kg", est.TotalWeight)),
		widget.NewSeparator(),
		widget.NewLabel(fmt.Sprintf("Containers by volume: %.2f", est.ContainersByVolume)),
		widget.NewLabel(fmt.Sprintf("Containers by weight: %.2f", est.ContainersByWeight)),
		widget.NewLabel(fmt.Sprintf("Minimum containers (perfect packing): %d", est.ContainersNeededMin)),
		widget.NewLabel(fmt.Sprintf("Recommended at %.0f%% utilization: %d", est.UtilizationPercent, est.ContainersWithMargin)),
	)

	d := dialog.NewCustom(
		fmt.Sprintf("Container Estimate — %s", a.project.Container.Name),
		"Close", content, a.window,
	)
	d.Resize(fyne.NewSize(450, 300))
	d.Show()
}
