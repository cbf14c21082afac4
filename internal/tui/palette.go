package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorInk       = lipgloss.Color("#E5E9F0")
	ColorDim       = lipgloss.Color("#7A8291")
	ColorAccent    = lipgloss.Color("#88C0D0")
	ColorAccentAlt = lipgloss.Color("#81A1C1")
	ColorSuccess   = lipgloss.Color("#A3BE8C")
	ColorWarn      = lipgloss.Color("#EBCB8B")
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	labelStyle   = lipgloss.NewStyle().Foreground(ColorInk)
	valueStyle   = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(ColorDim)
	fileStyle    = lipgloss.NewStyle().Foreground(ColorAccentAlt)
	warnStyle    = lipgloss.NewStyle().Foreground(ColorWarn)
	spinnerStyle = lipgloss.NewStyle().Foreground(ColorAccent)
)
