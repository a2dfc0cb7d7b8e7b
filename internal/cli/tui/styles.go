package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("86")  // Cyan
	colorSecondary = lipgloss.Color("240") // Gray
	colorSuccess   = lipgloss.Color("82")  // Green
	colorWarning   = lipgloss.Color("214") // Orange
	colorDanger    = lipgloss.Color("196") // Red
	colorMuted     = lipgloss.Color("245") // Light gray
)

// Styles
var (
	// Title bar
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(0)

	// Help text
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Section headers
	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary)

	// Progress bar
	progressBarEmptyStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	// Table
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorPrimary).
				BorderBottom(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorSecondary)

	tableCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	// Values
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Error
	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Verdicts
	alertStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	fatiguedStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)
)

// riskColor maps a risk band to a bar color.
func riskColor(risk string) lipgloss.Color {
	switch risk {
	case "high":
		return colorDanger
	case "moderate":
		return colorWarning
	default:
		return colorSuccess
	}
}

// scoreColor maps a score fraction (score/max) to a bar color.
func scoreColor(fraction float64) lipgloss.Color {
	switch {
	case fraction >= 0.35:
		return colorDanger
	case fraction >= 0.20:
		return colorWarning
	default:
		return colorSuccess
	}
}
