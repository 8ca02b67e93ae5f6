package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-hero/internal/core"
)

// KeyMap binds terminal keys to game actions.
type KeyMap struct {
	Jump      key.Binding
	Start     key.Binding
	Ability   key.Binding
	Cycle     key.Binding
	Mute      key.Binding
	ResetBest key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "start"),
		),
		Ability: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "ability"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab", "c"),
			key.WithHelp("tab", "next ability"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		ResetBest: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "reset best"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown under the playfield.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Start, k.Ability, k.Cycle, k.Mute, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Start},
		{k.Ability, k.Cycle},
		{k.Mute, k.ResetBest, k.Quit},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Jump):
		return core.ActionJump, false
	case key.Matches(msg, k.Start):
		return core.ActionStart, false
	case key.Matches(msg, k.Ability):
		return core.ActionUseAbility, false
	case key.Matches(msg, k.Cycle):
		return core.ActionCycleAbility, false
	case key.Matches(msg, k.Mute):
		return core.ActionMute, false
	case key.Matches(msg, k.ResetBest):
		return core.ActionResetBest, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame records a key message in an input frame.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
