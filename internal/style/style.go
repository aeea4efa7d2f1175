// Package style provides the terminal styles used by the CLI output.
package style

import "github.com/charmbracelet/lipgloss"

var (
	// Success style for completed operations
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10")). // Green
		Bold(true)

	// Warning style for normal-but-negative outcomes (not found, bad option)
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("11")) // Yellow

	// Error style for failures
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")). // Red
		Bold(true)

	// Dim style for secondary information
	Dim = lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")) // Gray

	// Bold style for headings and labels
	Bold = lipgloss.NewStyle().
		Bold(true)

	SuccessPrefix = Success.Render("✓")
	WarningPrefix = Warning.Render("!")
	ErrorPrefix   = Error.Render("✗")
)
