package main

import (
	lipgloss "charm.land/lipgloss/v2"
)

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	styleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("205"))

	styleLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	styleContainer = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	styleScalar = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleLogPane = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder())

	styleFooter = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)
