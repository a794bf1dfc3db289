// internal/platform/ui/colors.go
package ui

import "github.com/pterm/pterm"

// Palette used for diagnostics on a terminal.
var (
	// InfernoRed - errors
	InfernoRed = pterm.NewRGB(215, 38, 56)

	// MoltenGold - warnings
	MoltenGold = pterm.NewRGB(255, 182, 39)
)

// Preconfigured styles
var (
	StyleError   = InfernoRed.ToRGBStyle().AddOptions(pterm.Bold)
	StyleWarning = MoltenGold.ToRGBStyle()
)
