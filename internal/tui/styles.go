package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/casey/apptrack/internal/domain"
)

var (
	// Colors
	primaryColor = lipgloss.Color("39")  // Blue
	mutedColor   = lipgloss.Color("241") // Gray
	successColor = lipgloss.Color("76")  // Green
	warningColor = lipgloss.Color("214") // Orange
	errorColor   = lipgloss.Color("196") // Red
	cyanColor    = lipgloss.Color("44")

	// Base styles
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	subtitleStyle = lipgloss.NewStyle().Foreground(mutedColor)
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("117")) // Bright cyan
	idStyle       = lipgloss.NewStyle().Foreground(cyanColor)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(errorColor)

	statusStyles = map[domain.Status]lipgloss.Style{
		domain.StatusDevelopment: lipgloss.NewStyle().Foreground(warningColor),
		domain.StatusStaging:     lipgloss.NewStyle().Foreground(cyanColor),
		domain.StatusProduction:  lipgloss.NewStyle().Foreground(successColor),
		domain.StatusArchived:    lipgloss.NewStyle().Foreground(errorColor),
	}
)

func statusStyle(s domain.Status) lipgloss.Style {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return lipgloss.NewStyle()
}
