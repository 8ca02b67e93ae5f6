package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame ticks per second requested from the frontend
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the lifecycle phase of a run.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int     // Current score
	Best      int     // Best score across runs
	Phase     Phase   // Lifecycle phase
	Intensity float64 // Difficulty ramp progress in [0, 1]
}

// GameOver reports whether the run has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseGameOver
}

// EventKind identifies a discrete cue emitted by a simulation step.
type EventKind int

const (
	EventJump EventKind = iota
	EventHit
	EventAbility
	EventAmbientStart
	EventAmbientStop
	EventNewBest
	EventUnlock
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventJump:
		return "jump"
	case EventHit:
		return "hit"
	case EventAbility:
		return "ability"
	case EventAmbientStart:
		return "ambient-start"
	case EventAmbientStop:
		return "ambient-stop"
	case EventNewBest:
		return "new-best"
	case EventUnlock:
		return "unlock"
	default:
		return "unknown"
	}
}

// Event is a side effect produced by a step for collaborators (audio, logs).
type Event struct {
	Kind   EventKind
	Detail string // Ability name for EventAbility/EventUnlock
	Value  int    // Score for EventNewBest
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result contains an event of the given kind.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
