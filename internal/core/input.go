package core

// Action represents a semantic game command, abstracted from physical key presses.
// Frontends translate keys, clicks and SSH input into these.
type Action int

const (
	ActionNone         Action = iota
	ActionJump                // Space, Up, W, click - flap; also starts a run from the menu
	ActionStart               // Enter, R - start or retry
	ActionMute                // M - toggle audio
	ActionUseAbility          // E - trigger the equipped ability
	ActionCycleAbility        // Tab, C - equip the next unlocked ability
	ActionResetBest           // X - reset the persisted best score
	ActionQuit                // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionMute:
		return "Mute"
	case ActionUseAbility:
		return "UseAbility"
	case ActionCycleAbility:
		return "CycleAbility"
	case ActionResetBest:
		return "ResetBest"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the commands received during one frame tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// InputOf creates an input frame with the given actions set.
func InputOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Without returns a copy of the frame with the given action removed.
func (f InputFrame) Without(a Action) InputFrame {
	clone := f.Clone()
	delete(clone.Actions, a)
	return clone
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
