package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-hero/internal/config"
	"github.com/vovakirdan/flappy-hero/internal/core"
	"github.com/vovakirdan/flappy-hero/internal/engine"
	"github.com/vovakirdan/flappy-hero/internal/games/hero"
	"github.com/vovakirdan/flappy-hero/internal/registry"
	"github.com/vovakirdan/flappy-hero/internal/storage"
)

var (
	flagRuns     int
	flagMaxTicks int
	flagNoAbils  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [mode]",
	Short: "Let the autopilot play headless runs",
	Long: `Play runs with the built-in autopilot on a simulated clock and print
the results. Nothing is rendered, no audio is played and the real best
scores are left untouched.

Examples:
  flappyhero simulate --runs 20
  flappyhero simulate hero_classic --seed 42
  flappyhero simulate --difficulty hard --max-ticks 3600`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 10, "Number of runs")
	simulateCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Stop a run after this many ticks (0 = two simulated minutes)")
	simulateCmd.Flags().BoolVar(&flagNoAbils, "no-abilities", false, "Never trigger abilities")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	s, err := newSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	deps := s.deps()
	deps.Scores = storage.NewMemory()

	game, err := registry.Create(modeArg(args), deps)
	if err != nil {
		return err
	}

	clock := core.NewManualClock(time.Unix(0, 0))
	loop := engine.NewLoop(game, nil, clock, s.logger)
	defer loop.Close()

	rc := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	loop.Reset(rc)

	pilot := hero.NewPilot(effectivePhysics(game, s.config))
	pilot.UseAbilities = !flagNoAbils

	runner := engine.NewRunner(loop, clock, pilot, rc)
	runner.MaxTicks = flagMaxTicks
	if runner.MaxTicks == 0 {
		runner.MaxTicks = max(flagFPS, 1) * 120
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Printf("Simulating %d runs of %s (seed %d)\n", flagRuns, game.ID(), rc.Seed)
	report, err := runner.Run(ctx, flagRuns)
	for i, r := range report.Runs {
		note := ""
		if !r.Ended {
			note = "  (tick limit)"
		}
		fmt.Printf("  run %2d: score %4d  %6.1fs  %6d ticks%s\n", i+1, r.Score, r.Elapsed, r.Ticks, note)
	}
	fmt.Printf("Best: %d\n", report.Best)

	if errors.Is(err, context.Canceled) {
		fmt.Println("Interrupted.")
		return nil
	}
	return err
}

// effectivePhysics returns the physics the game actually runs with.
func effectivePhysics(game registry.Game, fallback config.HeroConfig) config.PhysicsConfig {
	if g, ok := game.(*hero.Game); ok {
		return g.Config().Physics
	}
	return fallback.Physics
}
