package main

import "charm.land/lipgloss/v2"

var (
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	pathStyle    = lipgloss.NewStyle().Bold(true)
	hintStyle    = lipgloss.NewStyle().Faint(true)
	lightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)
