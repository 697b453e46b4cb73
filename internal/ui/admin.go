package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StowPack/internal/model"
	"github.com/piwi3910/StowPack/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	// Helper to create a float entry bound to a pointer
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

	intEntry := func(val *int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(fmt.Sprintf("%d", *val))
		e.OnChanged = func(text string) {
			if v, err := strconv.Atoi(text); err == nil {
				*val = v
			}
		}
		return e
	}

	// Default container selector from the fleet
	containerNames := a.catalog.ContainerNames()
	containerSelect := widget.NewSelect(containerNames, func(selected string) {
		preset := a.catalog.FindContainerByName(selected)
		if preset == nil {
			return
		}
		cfg.DefaultContainerName = preset.Name
		cfg.DefaultWidth = preset.Width
		cfg.DefaultHeight = preset.Height
		cfg.DefaultDepth = preset.Depth
		cfg.DefaultMaxWeight = preset.MaxWeight
	})
	containerSelect.SetSelected(cfg.DefaultContainerName)

	// Default algorithm selector
	algorithmSelect := widget.NewSelect([]string{"greedy", "genetic"}, func(selected string) {
		cfg.DefaultAlgorithm = model.Algorithm(selected)
	})
	algorithmSelect.SetSelected(string(cfg.DefaultAlgorithm))

	// Theme selector
	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	// Auto-save interval
	autoSaveEntry := intEntry(&cfg.AutoSaveInterval)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Auto-Save Interval (min, 0=off)", autoSaveEntry),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Container", containerSelect),
		widget.NewFormItem("Default Width (m)", floatEntry(&cfg.DefaultWidth)),
		widget.NewFormItem("Default Height (m)", floatEntry(&cfg.DefaultHeight)),
		widget.NewFormItem("Default Depth (m)", floatEntry(&cfg.DefaultDepth)),
		widget.NewFormItem("Default Max Payload (kg)", floatEntry(&cfg.DefaultMaxWeight)),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Default Algorithm", algorithmSelect),
		widget.NewFormItem("Assumed Utilization (%)", floatEntry(&cfg.AssumedUtilization)),
	}

	d := dialog.NewForm("Preferences", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			a.config = cfg
			a.applyTheme()
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved", "Application settings have been saved.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 550))
	d.Show()
}

// showImportExportDialog displays the import/export data dialog.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config, a.catalog, a.templates); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("stowpack-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings, catalog, and templates.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					path := reader.URI().Path()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.catalog = backup.Catalog
					a.templates = backup.Templates
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					a.saveCatalog()
					a.saveTemplates()
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export all application data (settings, catalog, templates) to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Data", "Close", content, a.window)
	d.Resize(fyne.NewSize(450, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}

// saveCatalog persists the current catalog to disk.
func (a *App) saveCatalog() {
	if a.catalogPath == "" {
		return
	}
	if err := project.SaveCatalog(a.catalogPath, a.catalog); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save catalog: %w", err), a.window)
	}
}

// saveTemplates persists the current template store to disk.
func (a *App) saveTemplates() {
	if err := project.SaveDefaultTemplates(a.templates); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save templates: %w", err), a.window)
	}
}

// ─── Cargo Catalog Dialog ──────────────────────────────────

func (a *App) showCargoCatalogDialog() {
	cargoList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		cargoList.RemoveAll()

		if len(a.catalog.Cargo) == 0 {
			cargoList.Add(widget.NewLabel("No cargo presets defined."))
			return
		}

		header := container.NewGridWithColumns(7,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Width", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Height", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Depth", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Weight", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		)
		cargoList.Add(header)
		cargoList.Add(widget.NewSeparator())

		for i := range a.catalog.Cargo {
			idx := i
			c := a.catalog.Cargo[idx]
			row := container.NewGridWithColumns(7,
				widget.NewLabel(c.Name),
				widget.NewLabel(fmt.Sprintf("%.2f m", c.Width)),
				widget.NewLabel(fmt.Sprintf("%.2f m", c.Height)),
				widget.NewLabel(fmt.Sprintf("%.2f m", c.Depth)),
				widget.NewLabel(fmt.Sprintf("%.0f kg", c.Weight)),
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					a.showEditCargoPresetDialog(idx, refreshList)
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.catalog.Cargo = append(a.catalog.Cargo[:idx], a.catalog.Cargo[idx+1:]...)
					a.saveCatalog()
					refreshList()
				}),
			)
			cargoList.Add(row)
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Add Cargo Preset", theme.ContentAddIcon(), func() {
		a.showAddCargoPresetDialog(refreshList)
	})

	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		a.importCatalog(refreshList)
	})

	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		a.exportCatalog()
	})

	toolbar := container.NewHBox(addBtn, layout.NewSpacer(), importBtn, exportBtn)

	content := container.NewBorder(
		toolbar,
		nil, nil, nil,
		container.NewVScroll(cargoList),
	)

	d := dialog.NewCustom("Cargo Catalog", "Close", content, a.window)
	d.Resize(fyne.NewSize(700, 500))
	d.Show()
}

func (a *App) showAddCargoPresetDialog(onDone func()) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Cargo preset name")
	nameEntry.SetText("New Cargo")

	widthEntry := widget.NewEntry()
	widthEntry.SetText("1.20")

	heightEntry := widget.NewEntry()
	heightEntry.SetText("1.00")

	depthEntry := widget.NewEntry()
	depthEntry.SetText("0.80")

	weightEntry := widget.NewEntry()
	weightEntry.SetText("100")

	form := dialog.NewForm("Add Cargo Preset", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width (m)", widthEntry),
			widget.NewFormItem("Height (m)", heightEntry),
			widget.NewFormItem("Depth (m)", depthEntry),
			widget.NewFormItem("Weight (kg)", weightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			d, _ := strconv.ParseFloat(depthEntry.Text, 64)
			weight, _ := strconv.ParseFloat(weightEntry.Text, 64)
			if w <= 0 || h <= 0 || d <= 0 {
				dialog.ShowError(fmt.Errorf("width, height, and depth must be > 0"), a.window)
				return
			}

			preset := model.NewCargoPreset(nameEntry.Text, w, h, d, weight)
			a.catalog.Cargo = append(a.catalog.Cargo, preset)
			a.saveCatalog()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 400))
	form.Show()
}

func (a *App) showEditCargoPresetDialog(idx int, onDone func()) {
	c := a.catalog.Cargo[idx]

	nameEntry := widget.NewEntry()
	nameEntry.SetText(c.Name)

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%.2f", c.Width))

	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%.2f", c.Height))

	depthEntry := widget.NewEntry()
	depthEntry.SetText(fmt.Sprintf("%.2f", c.Depth))

	weightEntry := widget.NewEntry()
	weightEntry.SetText(fmt.Sprintf("%.1f", c.Weight))

	form := dialog.NewForm("Edit Cargo Preset", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width (m)", widthEntry),
			widget.NewFormItem("Height (m)", heightEntry),
			widget.NewFormItem("Depth (m)", depthEntry),
			widget.NewFormItem("Weight (kg)", weightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			a.catalog.Cargo[idx].Name = nameEntry.Text
			a.catalog.Cargo[idx].Width, _ = strconv.ParseFloat(widthEntry.Text, 64)
			a.catalog.Cargo[idx].Height, _ = strconv.ParseFloat(heightEntry.Text, 64)
			a.catalog.Cargo[idx].Depth, _ = strconv.ParseFloat(depthEntry.Text, 64)
			a.catalog.Cargo[idx].Weight, _ = strconv.ParseFloat(weightEntry.Text, 64)
			a.saveCatalog()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 400))
	form.Show()
}

// ─── Container Fleet Dialog ────────────────────────────────

func (a *App) showContainerFleetDialog() {
	fleetList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		fleetList.RemoveAll()

		if len(a.catalog.Containers) == 0 {
			fleetList.Add(widget.NewLabel("No container presets defined."))
			return
		}

		header := container.NewGridWithColumns(7,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Width", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Height", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Depth", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Payload", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		)
		fleetList.Add(header)
		fleetList.Add(widget.NewSeparator())

		for i := range a.catalog.Containers {
			idx := i
			c := a.catalog.Containers[idx]
			row := container.NewGridWithColumns(7,
				widget.NewLabel(c.Name),
				widget.NewLabel(fmt.Sprintf("%.2f m", c.Width)),
				widget.NewLabel(fmt.Sprintf("%.2f m", c.Height)),
				widget.NewLabel(fmt.Sprintf("%.2f m", c.Depth)),
				widget.NewLabel(fmt.Sprintf("%.0f kg", c.MaxWeight)),
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					a.showEditContainerPresetDialog(idx, refreshList)
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.catalog.Containers = append(a.catalog.Containers[:idx], a.catalog.Containers[idx+1:]...)
					a.saveCatalog()
					refreshList()
				}),
			)
			fleetList.Add(row)
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Add Container Preset", theme.ContentAddIcon(), func() {
		a.showAddContainerPresetDialog(refreshList)
	})

	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		a.importCatalog(refreshList)
	})

	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		a.exportCatalog()
	})

	toolbar := container.NewHBox(addBtn, layout.NewSpacer(), importBtn, exportBtn)

	content := container.NewBorder(
		toolbar,
		nil, nil, nil,
		container.NewVScroll(fleetList),
	)

	d := dialog.NewCustom("Container Fleet", "Close", content, a.window)
	d.Resize(fyne.NewSize(700, 500))
	d.Show()
}

func (a *App) showAddContainerPresetDialog(onDone func()) {
	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Container preset name")
	nameEntry.SetText("New Container")

	widthEntry := widget.NewEntry()
	widthEntry.SetText("12.03")

	heightEntry := widget.NewEntry()
	heightEntry.SetText("2.39")

	depthEntry := widget.NewEntry()
	depthEntry.SetText("2.35")

	weightEntry := widget.NewEntry()
	weightEntry.SetText("28000")

	form := dialog.NewForm("Add Container Preset", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Interior Width (m)", widthEntry),
			widget.NewFormItem("Interior Height (m)", heightEntry),
			widget.NewFormItem("Interior Depth (m)", depthEntry),
			widget.NewFormItem("Max Payload (kg)", weightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			w, _ := strconv.ParseFloat(widthEntry.Text, 64)
			h, _ := strconv.ParseFloat(heightEntry.Text, 64)
			d, _ := strconv.ParseFloat(depthEntry.Text, 64)
			maxWeight, _ := strconv.ParseFloat(weightEntry.Text, 64)
			if w <= 0 || h <= 0 || d <= 0 || maxWeight <= 0 {
				dialog.ShowError(fmt.Errorf("dimensions and payload must be > 0"), a.window)
				return
			}

			preset := model.NewContainerPreset(nameEntry.Text, w, h, d, maxWeight)
			a.catalog.Containers = append(a.catalog.Containers, preset)
			a.saveCatalog()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 400))
	form.Show()
}

func (a *App) showEditContainerPresetDialog(idx int, onDone func()) {
	c := a.catalog.Containers[idx]

	nameEntry := widget.NewEntry()
	nameEntry.SetText(c.Name)

	widthEntry := widget.NewEntry()
	widthEntry.SetText(fmt.Sprintf("%.2f", c.Width))

	heightEntry := widget.NewEntry()
	heightEntry.SetText(fmt.Sprintf("%.2f", c.Height))

	depthEntry := widget.NewEntry()
	depthEntry.SetText(fmt.Sprintf("%.2f", c.Depth))

	weightEntry := widget.NewEntry()
	weightEntry.SetText(fmt.Sprintf("%.0f", c.MaxWeight))

	form := dialog.NewForm("Edit Container Preset", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Interior Width (m)", widthEntry),
			widget.NewFormItem("Interior Height (m)", heightEntry),
			widget.NewFormItem("Interior Depth (m)", depthEntry),
			widget.NewFormItem("Max Payload (kg)", weightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			a.catalog.Containers[idx].Name = nameEntry.Text
			a.catalog.Containers[idx].Width, _ = strconv.ParseFloat(widthEntry.Text, 64)
			a.catalog.Containers[idx].Height, _ = strconv.ParseFloat(heightEntry.Text, 64)
			a.catalog.Containers[idx].Depth, _ = strconv.ParseFloat(depthEntry.Text, 64)
			a.catalog.Containers[idx].MaxWeight, _ = strconv.ParseFloat(weightEntry.Text, 64)
			a.saveCatalog()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 400))
	form.Show()
}

// ─── Catalog Import / Export ───────────────────────────────

func (a *App) importCatalog(onDone func()) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		merged, err := project.ImportCatalog(reader.URI().Path(), a.catalog)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}

		a.catalog = merged
		a.saveCatalog()
		onDone()
		dialog.ShowInformation("Import Complete",
			fmt.Sprintf("Catalog now contains %d cargo presets and %d containers.",
				len(a.catalog.Cargo), len(a.catalog.Containers)),
			a.window)
	}, a.window)
}

func (a *App) exportCatalog() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if err := project.ExportCatalog(writer.URI().Path(), a.catalog); err != nil {
			dialog.ShowError(err, a.window)
		} else {
			dialog.ShowInformation("Export Complete",
				fmt.Sprintf("Catalog exported to %s", writer.URI().Path()),
				a.window)
		}
	}, a.window)
	d.SetFileName("catalog.json")
	d.Show()
}
