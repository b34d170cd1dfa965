package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("12")  // bright blue
	colorSecondary = lipgloss.Color("10")  // bright green
	colorDim       = lipgloss.Color("240") // gray
	colorHighlight = lipgloss.Color("11")  // bright yellow
	colorError     = lipgloss.Color("9")   // bright red

	styleTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	styleLabel = lipgloss.NewStyle().
			Foreground(colorDim)

	styleHours = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	// Rows
	styleRowSelected = lipgloss.NewStyle().
				Foreground(colorHighlight).
				Bold(true)

	styleRowNormal = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleRowPause = lipgloss.NewStyle().
			Foreground(colorDim)

	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	styleError = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)
