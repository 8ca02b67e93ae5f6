package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-hero/internal/games/hero"
	"github.com/vovakirdan/flappy-hero/internal/platform/gui"
	"github.com/vovakirdan/flappy-hero/internal/platform/tui"
)

var (
	flagDemo  bool
	flagScale float64
)

const controlsHelp = `Controls:
  Space/Up/W  - Flap (also starts from the menu)
  Enter/R     - Start / retry
  E           - Use the equipped ability
  Tab/C       - Equip the next unlocked ability
  M           - Mute / unmute
  X           - Reset the best score
  Q           - Quit`

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. The mode defaults to "hero";
"hero_classic" plays without abilities.

` + controlsHelp + `

Difficulty options:
  easy   - Start at the bottom of the ramp
  normal - Start 30% up the ramp
  hard   - Start 70% up the ramp
  fixed  - No ramp, stay at the config's initial level

Examples:
  flappyhero play
  flappyhero play hero_classic
  flappyhero play --difficulty hard
  flappyhero play --config ./my-hero.yaml
  flappyhero play --demo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

var windowCmd = &cobra.Command{
	Use:   "window [mode]",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play. Mouse clicks flap too.

` + controlsHelp,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	playCmd.Flags().BoolVar(&flagDemo, "demo", false, "Let the autopilot play")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per world unit")
}

func runPlay(_ *cobra.Command, args []string) error {
	s, err := newSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	loop, err := s.newLoop(modeArg(args), nil, true)
	if err != nil {
		return err
	}
	defer loop.Close()

	var pilot *hero.Pilot
	if flagDemo {
		pilot = hero.NewPilot(s.config.Physics)
		pilot.Retry = true
	}

	s.logger.Info("starting terminal game", "mode", loop.Game().ID(), "demo", flagDemo)
	if pilot == nil {
		return tui.Run(loop, runtimeConfig(), nil)
	}
	return tui.Run(loop, runtimeConfig(), pilot)
}

func runWindow(_ *cobra.Command, args []string) error {
	s, err := newSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	loop, err := s.newLoop(modeArg(args), nil, true)
	if err != nil {
		return err
	}
	defer loop.Close()

	s.logger.Info("starting window game", "mode", loop.Game().ID())
	return gui.Run(loop, runtimeConfig(), gui.Options{Scale: flagScale})
}
