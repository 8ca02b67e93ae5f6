package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-hero/internal/core"
	"github.com/vovakirdan/flappy-hero/internal/registry"
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Reset, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Reset, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset best"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel lists every registered mode with its best score.
type ScoreboardModel struct {
	games    []registry.GameInfo
	scores   core.ScoreKeeper
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	err      error
	quitting bool
}

// NewScoreboardModel creates a scoreboard backed by scores.
func NewScoreboardModel(scores core.ScoreKeeper) ScoreboardModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Mode", Width: 14},
			{Title: "Title", Width: 22},
			{Title: "Best", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(6),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := ScoreboardModel{
		games:  registry.List(),
		scores: scores,
		table:  t,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
	}
	m.refresh()
	return m
}

// refresh reloads every mode's best score into the table.
func (m *ScoreboardModel) refresh() {
	rows := make([]table.Row, len(m.games))
	m.err = nil
	for i, g := range m.games {
		best := 0
		if m.scores != nil {
			b, err := m.scores.LoadBest(g.ID)
			if err != nil {
				m.err = err
			}
			best = b
		}
		rows[i] = table.Row{g.ID, g.Title, strconv.Itoa(best)}
	}
	m.table.SetRows(rows)
}

// Rows returns the rows currently shown.
func (m ScoreboardModel) Rows() []table.Row {
	return m.table.Rows()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Reset):
			m.resetSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) resetSelected() {
	row := m.table.SelectedRow()
	if row == nil || m.scores == nil {
		return
	}
	if err := m.scores.ResetBest(row[0]); err != nil {
		m.err = err
		return
	}
	m.refresh()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(title.Render("BEST SCORES"))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(box.Render(m.table.View()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(styleFor(core.ColorDanger).Render(m.err.Error()))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// RunScoreboard shows the scoreboard until the user quits.
func RunScoreboard(scores core.ScoreKeeper) error {
	p := tea.NewProgram(NewScoreboardModel(scores), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
