package engine

import (
	"context"
	"time"

	"github.com/vovakirdan/flappy-hero/internal/core"
)

// Controller decides the inputs for the next frame from a snapshot.
type Controller interface {
	Decide(snap core.Snapshot) core.InputFrame
}

// RunResult summarises one finished (or cut-off) run.
type RunResult struct {
	Score   int
	Elapsed float64 // Effective survival seconds
	Ticks   int
	Ended   bool // False if the tick limit stopped the run
}

// Report is the outcome of a headless simulation.
type Report struct {
	Runs []RunResult
	Best int
}

// Runner drives a Loop without a frontend on a manual clock.
type Runner struct {
	Loop     *Loop
	Clock    *core.ManualClock
	Pilot    Controller
	Config   core.RuntimeConfig
	Frame    time.Duration // Simulated frame length
	MaxTicks int           // Per run; 0 means no limit
}

// NewRunner creates a headless runner. The loop must have been built on clock.
func NewRunner(loop *Loop, clock *core.ManualClock, pilot Controller, cfg core.RuntimeConfig) *Runner {
	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Runner{
		Loop:   loop,
		Clock:  clock,
		Pilot:  pilot,
		Config: cfg,
		Frame:  time.Second / time.Duration(tickRate),
	}
}

// Run plays the given number of runs. It stops early with ctx.Err() when the
// context is cancelled; the report then holds the runs finished so far.
func (r *Runner) Run(ctx context.Context, runs int) (Report, error) {
	var report Report
	game := r.Loop.Game()

	for len(report.Runs) < runs {
		res, err := r.playOne(ctx, game.Snapshot)
		if res.Ticks > 0 {
			report.Runs = append(report.Runs, res)
		}
		report.Best = game.State().Best
		if err != nil {
			return report, err
		}
	}
	return report, nil
}

func (r *Runner) playOne(ctx context.Context, snapshot func() core.Snapshot) (RunResult, error) {
	var res RunResult

	// A run cut off by MaxTicks is still playing; start over from the menu.
	if r.Loop.Last().State.Phase == core.PhasePlaying {
		r.Loop.Reset(r.Config)
	}

	// Leave the menu or game-over screen
	r.Loop.Tick(core.InputOf(core.ActionStart))

	for r.MaxTicks == 0 || res.Ticks < r.MaxTicks {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		r.Clock.Advance(r.Frame)
		step := r.Loop.Tick(r.Pilot.Decide(snapshot()))
		res.Ticks++
		res.Score = step.State.Score

		if step.State.GameOver() {
			res.Ended = true
			break
		}
	}

	res.Elapsed = snapshot().Elapsed
	return res, nil
}
