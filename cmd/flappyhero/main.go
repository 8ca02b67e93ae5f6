// flappyhero is a flying-hero arcade game for the terminal and the desktop.
//
// Usage:
//
//	flappyhero play [mode]      - Play in the terminal
//	flappyhero window [mode]    - Play in a desktop window
//	flappyhero serve            - Start an SSH server for remote play
//	flappyhero best [mode]      - Show or reset best scores
//	flappyhero list             - List game modes
//	flappyhero simulate [mode]  - Let the autopilot play headless runs
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible obstacles
//	--db <path>        - Set database path (default: ~/.flappyhero/scores.db)
//	--store <backend>  - Best-score backend: sqlite, gdata or memory
//	--log-file <path>  - Write logs to a file
//	--mute             - Start with audio muted
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/flappy-hero/internal/games/hero"
	"github.com/vovakirdan/flappy-hero/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagStore   string
	flagLogFile string
	flagMute    bool
	flagConfig  string
	flagPreset  string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappyhero",
	Short: "Flappy Hero - fly through the gaps, unlock abilities",
	Long: `Flappy Hero is an arcade runner: keep the hero in the air, fly through
the gaps and unlock Blast, Shield and Slow-Mo as your score climbs.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  best      - Show or reset best scores
  list      - Show game modes
  simulate  - Run the autopilot headless

Examples:
  flappyhero play
  flappyhero play hero_classic --difficulty hard
  flappyhero window --scale 1.5
  flappyhero serve --ssh :2222
  flappyhero best --reset hero`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultDBPath, "Path to the scores database")
	pf.StringVar(&flagStore, "store", string(storage.BackendSQLite), "Best-score backend: sqlite, gdata, memory")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagMute, "mute", false, "Start with audio muted")
	pf.StringVar(&flagConfig, "config", "", "Path to a game config YAML")
	pf.StringVar(&flagPreset, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simulateCmd)
}
