package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/StowPack/internal/model"
)

// ─── Template Dialogs ──────────────────────────────────────

// showSaveTemplateDialog captures the current manifest, container, and
// settings as a reusable template.
func (a *App) showSaveTemplateDialog() {
	if len(a.project.Manifest) == 0 {
		dialog.ShowInformation("Nothing to save", "Add at least one cargo item first.", a.window)
		return
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("Template name")
	nameEntry.SetText(a.project.Name)

	descEntry := widget.NewEntry()
	descEntry.SetPlaceHolder("Optional description")

	form := dialog.NewForm("Save as Template", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Description", descEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			if nameEntry.Text == "" {
				dialog.ShowError(fmt.Errorf("template name must not be empty"), a.window)
				return
			}
			tmpl := model.NewLoadTemplate(
				nameEntry.Text, descEntry.Text,
				a.project.Container, a.project.Manifest, a.project.Settings,
			)
			a.templates.Add(tmpl)
			a.saveTemplates()
			dialog.ShowInformation("Template Saved",
				fmt.Sprintf("Template %q saved with %d manifest lines.", tmpl.Name, len(tmpl.Manifest)),
				a.window)
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 250))
	form.Show()
}

// showLoadTemplateDialog creates a new project from a stored template.
func (a *App) showLoadTemplateDialog() {
	if len(a.templates.Templates) == 0 {
		dialog.ShowInformation("No Templates",
			"No templates saved yet. Use Tools > Save as Template first.",
			a.window)
		return
	}

	names := a.templates.Names()
	templateSelect := widget.NewSelect(names, nil)
	templateSelect.SetSelected(names[0])

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder("New project name")
	nameEntry.SetText("Untitled")

	form := dialog.NewForm("New from Template", "Create", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Template", templateSelect),
			widget.NewFormItem("Project Name", nameEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			tmpl := a.templates.FindByName(templateSelect.Selected)
			if tmpl == nil {
				return
			}
			a.project = tmpl.ToProject(nameEntry.Text)
			a.history.Clear()
			a.refreshCargoList()
			a.refreshResults()
			a.rebuildStaticTabs()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(400, 250))
	form.Show()
}

// showManageTemplatesDialog lists the stored templates with delete buttons.
func (a *App) showManageTemplatesDialog() {
	templateList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		templateList.RemoveAll()

		if len(a.templates.Templates) == 0 {
			templateList.Add(widget.NewLabel("No templates saved."))
			return
		}

		header := container.NewGridWithColumns(5,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Container", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Lines", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Updated", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		)
		templateList.Add(header)
		templateList.Add(widget.NewSeparator())

		for i := range a.templates.Templates {
			t := a.templates.Templates[i]
			id := t.ID
			row := container.NewGridWithColumns(5,
				widget.NewLabel(t.Name),
				widget.NewLabel(t.Container.Name),
				widget.NewLabel(fmt.Sprintf("%d", len(t.Manifest))),
				widget.NewLabel(t.UpdatedAt),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.templates.Remove(id)
					a.saveTemplates()
					refreshList()
				}),
			)
			templateList.Add(row)
		}
	}

	refreshList()

	content := container.NewVScroll(templateList)

	d := dialog.NewCustom("Manage Templates", "Close", content, a.window)
	d.Resize(fyne.NewSize(700, 450))
	d.Show()
}
