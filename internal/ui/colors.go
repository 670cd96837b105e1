package ui

import (
	"os"

	"github.com/fatih/color"
)

// ColorMode is an enum for the current state of the color configuration
type ColorMode int

const (
	// ColorModeUndefined lets the color library decide from the environment
	ColorModeUndefined ColorMode = iota + 1
	// ColorModeSuppressed means color output is off
	ColorModeSuppressed
	// ColorModeForced means color output is on regardless of terminal support
	ColorModeForced
)

// GetColorModeFromEnv returns the ColorMode implied by FORCE_COLOR.
// The accepted values follow the supports-color NodeJS package: "0" (and
// "false") disable color, "1", "2", "3" (and "true") force-enable it at the
// given support level. We only treat this as on or off.
func GetColorModeFromEnv() ColorMode {
	switch forceColor := os.Getenv("FORCE_COLOR"); {
	case forceColor == "false" || forceColor == "0":
		return ColorModeSuppressed
	case forceColor == "true" || forceColor == "1" || forceColor == "2" || forceColor == "3":
		return ColorModeForced
	default:
		return ColorModeUndefined
	}
}

func applyColorMode(colorMode ColorMode) ColorMode {
	switch colorMode {
	case ColorModeForced:
		color.NoColor = false
	case ColorModeSuppressed:
		color.NoColor = true
	case ColorModeUndefined:
	default:
		// color.NoColor already gets its default value based on
		// isTTY and/or the presence of the NO_COLOR env variable.
	}

	if color.NoColor {
		return ColorModeSuppressed
	}
	return ColorModeForced
}
