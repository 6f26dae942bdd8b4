package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"serial-radar.klederson.com/internal/radar"
)

// RenderRadarPanel wraps radar content with a styled border.
func RenderRadarPanel(width, height int, radarContent, legend string) string {
	content := radarContent + "\n" + legend
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

// RenderLegend produces the distance band legend line.
func RenderLegend(width int) string {
	legend := ""
	for i, b := range []radar.Band{radar.BandNear, radar.BandMid, radar.BandFar} {
		if i > 0 {
			legend += "  "
		}
		legend += lipgloss.NewStyle().Foreground(hexColor(b.DotColor())).Render("● " + b.String())
	}

	pad := (width - lipgloss.Width(legend)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + legend
}
