// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// term.go - TTY detection and color gating for shell output.

package shell

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// =============================================================================
// STYLES
// =============================================================================

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// colorize renders s with style when colored output is enabled, and
// passes it through untouched otherwise.
func colorize(style lipgloss.Style, s string) string {
	if !ColorsEnabled() {
		return s
	}
	return style.Render(s)
}

// =============================================================================
// TTY DETECTION
// =============================================================================

// IsTTY returns true if stdin is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// IsStdoutTTY returns true if stdout is a terminal.
func IsStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// =============================================================================
// COLOR OUTPUT CONTROL
// =============================================================================

var (
	colorsEnabled     bool
	colorsEnabledOnce sync.Once
)

// ColorsEnabled returns true if styled output should be used. Respects
// the NO_COLOR convention (any non-empty value disables colors) and
// FORCE_COLOR, otherwise falls back to TTY detection.
func ColorsEnabled() bool {
	colorsEnabledOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			colorsEnabled = false
			return
		}
		if os.Getenv("FORCE_COLOR") != "" {
			colorsEnabled = true
			return
		}
		colorsEnabled = IsStdoutTTY()
	})
	return colorsEnabled
}

// GetColorProfile returns the termenv profile for the current output:
// Ascii when colors are disabled, auto-detected otherwise.
func GetColorProfile() termenv.Profile {
	return colorProfile(ColorsEnabled())
}

func colorProfile(enabled bool) termenv.Profile {
	if !enabled {
		return termenv.Ascii
	}
	return termenv.ColorProfile()
}

var colorProfileOnce sync.Once

// applyColorProfile points lipgloss at the detected profile so the
// package styles degrade correctly on dumb terminals and under
// NO_COLOR. Runs once, at loop startup.
func applyColorProfile() {
	colorProfileOnce.Do(func() {
		lipgloss.SetColorProfile(GetColorProfile())
	})
}
