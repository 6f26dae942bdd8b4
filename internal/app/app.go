package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"serial-radar.klederson.com/internal/config"
	"serial-radar.klederson.com/internal/radar"
	"serial-radar.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	loop  *Loop
	frame string // Last rendered radar, as terminal cells
}

// AppModel is the root Bubble Tea model for terminal display.
type AppModel struct {
	width  int
	height int

	source   string
	maxRange int

	shared *shared
}

// New creates an AppModel driving loop. source names the data source in
// the menu bar.
func New(loop *Loop, source string, maxRange int) AppModel {
	return AppModel{
		source:   source,
		maxRange: maxRange,
		shared:   &shared{loop: loop},
	}
}

func (m AppModel) Init() tea.Cmd {
	return tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		if m.shared.loop.Phase() != Running {
			return m, nil
		}
		c := m.shared.loop.Frame(time.Time(msg))
		m.shared.frame = ui.RenderFrame(c.Image())
		return m, tickCmd()
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "esc", "ctrl+c":
		_ = m.shared.loop.Stop()
		return m, tea.Quit
	}
	return m, nil
}

// bodySize splits the terminal between the radar and the readout column.
func (m AppModel) bodySize() (radarW, sideW, bodyH int) {
	bodyH = m.height - 2
	if bodyH < 6 {
		bodyH = 6
	}

	radarW = m.width * 3 / 4
	if radarW < 30 {
		radarW = 30
	}
	sideW = m.width - radarW
	if sideW < 24 {
		sideW = 24
		radarW = m.width - sideW
	}
	return radarW, sideW, bodyH
}

// radarCells is the number of terminal cells available for the radar image.
func (m AppModel) radarCells() (cols, rows int) {
	radarW, _, bodyH := m.bodySize()
	cols = radarW - 4
	rows = bodyH - 4
	if cols < 5 {
		cols = 5
	}
	if rows < 3 {
		rows = 3
	}
	return cols, rows
}

func (m AppModel) resize() {
	cols, rows := m.radarCells()
	// Each cell shows two vertically stacked pixels.
	m.shared.loop.Resize(radar.CompactLayout(cols, rows*2, m.maxRange))
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing " + config.AppName + "..."
	}

	radarW, sideW, bodyH := m.bodySize()
	running := m.shared.loop.Phase() == Running
	st := m.shared.loop.State()

	menuBar := ui.RenderMenuBar(m.width, m.source, running)

	cols, _ := m.radarCells()
	radarPanel := ui.RenderRadarPanel(radarW, bodyH, m.shared.frame, ui.RenderLegend(cols))

	readout := radar.ReadoutFor(st.History, m.maxRange)
	side := ui.RenderReadout(readout, sideW, bodyH)

	s := m.shared.loop.Stats()
	statusBar := ui.RenderStatusBar(m.width, running, ui.Counters{
		Samples:   s.Accepted,
		Dropped:   s.Dropped,
		Faults:    s.Faults,
		Particles: s.Particles,
	}, s.SweepDeg, m.maxRange)

	return ui.ComposeLayout(menuBar, radarPanel, side, statusBar)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
