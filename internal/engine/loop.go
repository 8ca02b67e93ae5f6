// Package engine drives a game: it turns clock readings into frame deltas,
// steps the simulation and forwards the results to the audio sink.
package engine

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-hero/internal/audio"
	"github.com/vovakirdan/flappy-hero/internal/core"
	"github.com/vovakirdan/flappy-hero/internal/registry"
)

// Loop steps one game. It is not safe for concurrent use; frontends call it
// from their single update goroutine.
type Loop struct {
	game   registry.Game
	sink   audio.Sink
	frames *core.FrameClock
	log    *log.Logger

	ticks uint64
	last  core.StepResult
}

// NewLoop creates a loop. A nil sink is replaced by a silent one and a nil
// clock by the system clock.
func NewLoop(game registry.Game, sink audio.Sink, clock core.Clock, logger *log.Logger) *Loop {
	if sink == nil {
		sink = audio.NewSilent()
	}
	if clock == nil {
		clock = core.SystemClock{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loop{
		game:   game,
		sink:   sink,
		frames: core.NewFrameClock(clock),
		log:    logger.With("game", game.ID()),
		last:   core.StepResult{State: game.State()},
	}
}

// Tick steps the game by the time elapsed since the previous Tick.
func (l *Loop) Tick(in core.InputFrame) core.StepResult {
	return l.Step(in, l.frames.Tick())
}

// Step handles mute, steps the game by dt seconds (capped) and dispatches
// the emitted events to the audio sink.
func (l *Loop) Step(in core.InputFrame, dt float64) core.StepResult {
	if in.Has(core.ActionMute) {
		l.sink.SetMuted(!l.sink.Muted())
		l.log.Debug("mute toggled", "muted", l.sink.Muted())
		in = in.Without(core.ActionMute)
	}

	dt = min(max(dt, 0), core.MaxFrameDelta.Seconds())
	res := l.game.Step(in, dt)
	l.ticks++

	l.sink.SetIntensity(res.State.Intensity)
	for _, ev := range res.Events {
		audio.Dispatch(l.sink, ev)
		l.logEvent(ev, res.State)
	}

	l.last = res
	return res
}

func (l *Loop) logEvent(ev core.Event, st core.GameState) {
	switch ev.Kind {
	case core.EventAmbientStart:
		l.log.Info("run started")
	case core.EventHit:
		l.log.Info("run over", "score", st.Score, "best", st.Best)
	case core.EventNewBest:
		l.log.Info("new best score", "score", ev.Value)
	case core.EventUnlock:
		l.log.Info("ability unlocked", "ability", ev.Detail, "score", ev.Value)
	case core.EventAbility:
		l.log.Debug("ability used", "ability", ev.Detail)
	}
}

// Reset puts the game back into the menu and restarts frame timing.
func (l *Loop) Reset(cfg core.RuntimeConfig) {
	l.game.Reset(cfg)
	l.sink.StopAmbient()
	l.frames.Restart()
	l.last = core.StepResult{State: l.game.State()}
}

// Game returns the driven game.
func (l *Loop) Game() registry.Game {
	return l.game
}

// Last returns the result of the most recent step.
func (l *Loop) Last() core.StepResult {
	return l.last
}

// Ticks returns how many steps have run.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Muted reports whether audio is muted.
func (l *Loop) Muted() bool {
	return l.sink.Muted()
}

// Close stops audio.
func (l *Loop) Close() {
	l.sink.StopAmbient()
	l.sink.Close()
}
