package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	headingStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	notificationStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("2")).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("2")).
				Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("1")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Width(8)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	dimStyle = lipgloss.NewStyle().
			Faint(true)
)
