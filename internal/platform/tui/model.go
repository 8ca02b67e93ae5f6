package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-hero/internal/core"
	"github.com/vovakirdan/flappy-hero/internal/engine"
)

// statusRows is the space kept below the playfield for the help line.
const statusRows = 1

// Model is the Bubble Tea model that plays one game through an engine loop.
type Model struct {
	loop     *engine.Loop
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	input    core.InputFrame
	pilot    engine.Controller
	quitting bool
}

// NewModel creates a model for the loop. A zero seed is replaced by the
// current time.
func NewModel(loop *engine.Loop, cfg core.RuntimeConfig) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		loop:   loop,
		screen: core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		keys:   DefaultKeyMap(),
		help:   h,
		config: cfg,
		input:  core.NewInputFrame(),
	}
}

// WithPilot lets a controller play alongside the keyboard. Its inputs are
// merged with the player's each frame.
func (m Model) WithPilot(p engine.Controller) Model {
	m.pilot = p
	return m
}

func playfieldHeight(h int) int {
	return max(h-statusRows, 1)
}

// Init puts the game in its menu and starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.loop.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey collects actions for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize adapts the buffer. The world is scaled at render time, so
// the run carries on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the loop with the inputs gathered since the last frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.pilot != nil {
		auto := m.pilot.Decide(m.loop.Game().Snapshot())
		for a, on := range auto.Actions {
			if on {
				m.input.Set(a)
			}
		}
	}
	m.loop.Tick(m.input)
	m.input.Clear()
	return m, tickCmd(m.config.TickRate)
}

// View renders the playfield and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.loop.Game().Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	line := m.help.View(m.keys)
	if m.loop.Muted() {
		line = styleFor(core.ColorMuted).Render("[muted] ") + line
	}
	return line
}

// Run plays the loop in the terminal until the player quits. A non-nil
// pilot plays the game as an attract demo.
func Run(loop *engine.Loop, cfg core.RuntimeConfig, pilot engine.Controller) error {
	p := tea.NewProgram(
		NewModel(loop, cfg).WithPilot(pilot),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
