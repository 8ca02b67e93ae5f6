package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-hero/internal/audio"
	"github.com/vovakirdan/flappy-hero/internal/config"
	"github.com/vovakirdan/flappy-hero/internal/core"
	"github.com/vovakirdan/flappy-hero/internal/engine"
	"github.com/vovakirdan/flappy-hero/internal/games/hero"
	"github.com/vovakirdan/flappy-hero/internal/registry"
	"github.com/vovakirdan/flappy-hero/internal/storage"
)

// session holds what every command shares: logger, config and score store.
type session struct {
	logger  *log.Logger
	config  config.HeroConfig
	preset  config.DifficultyPreset
	store   storage.BestScores
	closers []func()
}

// newSession sets up logging, loads the config and opens the score store.
// Logs go to --log-file when set, otherwise to stderr for server commands
// and nowhere for interactive ones.
func newSession(logToStderr bool) (*session, error) {
	s := &session{}

	var out io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		s.closers = append(s.closers, func() { f.Close() })
	case logToStderr:
		out = os.Stderr
	}
	s.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappyhero",
	})
	if flagVerbose {
		s.logger.SetLevel(log.DebugLevel)
	}

	s.preset = config.ParsePreset(flagPreset)
	if flagPreset != "" && s.preset == "" {
		s.Close()
		return nil, fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", flagPreset)
	}

	cfg, err := config.LoadHero(flagConfig)
	if err != nil {
		s.logger.Warn("using default config", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: %v; using defaults\n", err)
	}
	s.config = cfg

	store, err := storage.Open(storage.Options{
		Backend: storage.Backend(flagStore),
		DBPath:  flagDBPath,
	})
	switch {
	case errors.Is(err, storage.ErrUnknownBackend):
		s.Close()
		return nil, err
	case err != nil:
		s.logger.Warn("best scores will not be saved", "store", flagStore, "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores store: %v\n", err)
		store = storage.NewMemory()
	}
	s.store = store
	s.closers = append(s.closers, func() { store.Close() })

	return s, nil
}

// deps returns what game factories need.
func (s *session) deps() registry.Deps {
	cfg := s.config
	return registry.Deps{
		Scores:     s.store,
		Logger:     s.logger,
		ConfigPath: flagConfig,
		Preset:     s.preset,
		Config:     &cfg,
	}
}

// newLoop creates the mode's game and wraps it in an engine loop.
// With withAudio the speaker is opened, falling back to silence.
func (s *session) newLoop(mode string, clock core.Clock, withAudio bool) (*engine.Loop, error) {
	game, err := registry.Create(mode, s.deps())
	if err != nil {
		return nil, fmt.Errorf("%w (run 'flappyhero list' to see modes)", err)
	}

	var sink audio.Sink = audio.NewSilent()
	if withAudio {
		sink, err = audio.OpenOrSilent(s.config.Audio)
		if err != nil {
			s.logger.Warn("audio unavailable", "err", err)
		}
	}
	sink.SetMuted(flagMute)

	return engine.NewLoop(game, sink, clock, s.logger), nil
}

// Close releases the store and the log file.
func (s *session) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// modeArg returns the mode named on the command line or the default mode.
func modeArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return hero.ModeID
}
