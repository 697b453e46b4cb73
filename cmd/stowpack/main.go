// StowPack — Container Load Planner
//
// A cross-platform desktop application for planning 3D container loads
// with rotation and weight limits, and exporting load plans.
//
// Build:
//   go build -o stowpack ./cmd/stowpack
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o stowpack.exe ./cmd/stowpack
//   GOOS=darwin  GOARCH=amd64 go build -o stowpack-darwin ./cmd/stowpack
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/StowPack/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.stowpack")
	window := application.NewWindow("StowPack — Container Load Planner")

	appUI := ui.NewApp(window)
	appUI.SetupMenus() // Setup the native menu bar
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1000, 700))
	window.CenterOnScreen()
	window.ShowAndRun()
}
