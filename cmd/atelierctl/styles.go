package main

import "github.com/charmbracelet/lipgloss"

//nolint:gochecknoglobals
var (
	green = lipgloss.Color("#10B981")
	red   = lipgloss.Color("#EF4444")
	muted = lipgloss.Color("#6B7280")

	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	okStyle    = lipgloss.NewStyle().Foreground(green).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(red).Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(muted)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1)
)
