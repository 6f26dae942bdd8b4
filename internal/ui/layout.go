package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout joins the radar panel and readout column horizontally,
// with menu bar on top and status bar on bottom.
func ComposeLayout(menuBar, radarPanel, side, statusBar string) string {
	middle := lipgloss.JoinHorizontal(lipgloss.Top, radarPanel, side)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}
