package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"serial-radar.klederson.com/internal/radar"
)

// RenderReadout renders the latest-reading panel for the terminal.
func RenderReadout(ro radar.Readout, width, height int) string {
	lines := []string{StylePanelTitle.Render("LATEST READING"), ""}

	if !ro.Valid {
		lines = append(lines, StyleHelp.Render("waiting for data..."))
	} else {
		band := lipgloss.NewStyle().Foreground(hexColor(ro.Band.Color())).Bold(true)
		if !ro.InRange() {
			band = StyleReadoutMuted
		}
		lines = append(lines,
			StyleReadoutValue.Render(ro.AngleText()),
			band.Render(ro.DistanceText()),
			band.Render(ro.StatusText()),
		)
	}

	lines = append(lines, "", StyleHelp.Render("Press ESC to exit"))

	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}
