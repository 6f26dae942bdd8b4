package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Counters are the running totals shown in the status bar.
type Counters struct {
	Samples   int
	Dropped   int
	Faults    int
	Particles int
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, running bool, c Counters, sweepDeg, maxRange int) string {
	status := ""
	switch {
	case !running:
		status = StyleStatusStopped.Render("[CLOSED]")
	case c.Faults > 0:
		status = StyleStatusFault.Render("[READ FAULTS]")
	default:
		status = StyleStatusRunning.Render("[LIVE]")
	}

	info := fmt.Sprintf(" Samples: %d  Dropped: %d  Faults: %d  Particles: %d  Sweep: %ddeg  Range: 0-%dcm",
		c.Samples, c.Dropped, c.Faults, c.Particles, sweepDeg, maxRange)

	content := status + StyleMenuLabel.Render(info)

	gap := width - 2 - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}

	return StyleStatusBar.Width(width).Render(content + strings.Repeat(" ", gap))
}
