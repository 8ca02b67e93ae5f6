package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-hero/internal/platform/tui"
	"github.com/vovakirdan/flappy-hero/internal/registry"
	"github.com/vovakirdan/flappy-hero/internal/storage"
)

var (
	flagReset bool
	flagBoard bool
)

var bestCmd = &cobra.Command{
	Use:   "best [mode]",
	Short: "Show or reset best scores",
	Long: `Show the best score of one mode, or of every mode when none is given.

Examples:
  flappyhero best
  flappyhero best hero_classic
  flappyhero best --reset hero
  flappyhero best --board`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBest,
}

func init() {
	bestCmd.Flags().BoolVar(&flagReset, "reset", false, "Reset the best score of the given mode to 0")
	bestCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive best-score board")
}

func runBest(_ *cobra.Command, args []string) error {
	s, err := newSession(false)
	if err != nil {
		return err
	}
	defer s.Close()

	if flagBoard {
		return tui.RunScoreboard(s.store)
	}

	modes := registry.List()
	if len(args) > 0 {
		info, ok := registry.Info(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", registry.ErrUnknownGame, args[0])
		}
		modes = []registry.GameInfo{info}
	} else if flagReset {
		return errors.New("--reset needs a mode")
	}

	if flagReset {
		if err := s.store.ResetBest(modes[0].ID); err != nil {
			return err
		}
		s.logger.Info("best score reset", "game", modes[0].ID)
		fmt.Printf("Best score for %s reset.\n", modes[0].Title)
		return nil
	}

	updated := map[string]string{}
	if sq, ok := s.store.(*storage.SQLiteStore); ok {
		entries, err := sq.Entries()
		if err != nil {
			return err
		}
		for _, e := range entries {
			updated[e.GameID] = e.UpdatedAt.Local().Format("Jan 02 2006 15:04")
		}
	}

	for _, m := range modes {
		best, err := s.store.LoadBest(m.ID)
		if err != nil {
			return err
		}
		line := fmt.Sprintf("%-14s %-22s %6d", m.ID, m.Title, best)
		if at, ok := updated[m.ID]; ok && best > 0 {
			line += "  " + at
		}
		fmt.Println(line)
	}
	return nil
}
