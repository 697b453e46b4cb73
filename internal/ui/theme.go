// Package ui provides the StowPack application UI components.
//
// This file defines a custom compact Fyne theme for a professional, dense layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// StowPackTheme wraps the default Fyne theme with compact sizing overrides
// for an information-dense load planning layout.
type StowPackTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewStowPackTheme creates a new StowPackTheme with the system default variant.
func NewStowPackTheme() *StowPackTheme {
	return &StowPackTheme{
		base:    theme.DefaultTheme(),
		variant: 0, // system default
	}
}

// NewStowPackThemeWithVariant creates a StowPackTheme with a specific light/dark variant.
func NewStowPackThemeWithVariant(variant fyne.ThemeVariant) *StowPackTheme {
	return &StowPackTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
	}
}

// SetVariant updates the theme variant (light/dark/system).
func (t *StowPackTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
}

// Color delegates to the base theme with the stored variant.
func (t *StowPackTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

// Font delegates to the base theme.
func (t *StowPackTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *StowPackTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense, professional layout.
func (t *StowPackTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
