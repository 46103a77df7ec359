package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/np-os/npos/internal/shell"
)

// Color palette - phosphor green on black, with accents for the prompt and errors.
var (
	ColorPrimary   = lipgloss.Color("46")  // Green
	ColorPrompt    = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for terminal output.
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(ColorPrompt).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	OutputStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SystemStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	BootStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Spinner style
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)
)

// LineStyle returns the style an output line of the given kind is drawn with.
func LineStyle(kind shell.LineKind) lipgloss.Style {
	switch kind {
	case shell.KindInput:
		return InputStyle
	case shell.KindError:
		return ErrorStyle
	case shell.KindSystem:
		return SystemStyle
	case shell.KindBoot:
		return BootStyle
	default:
		return OutputStyle
	}
}
