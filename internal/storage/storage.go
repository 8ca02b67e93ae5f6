// Package storage persists one best score per game mode.
// The default backend is SQLite through the pure-Go modernc.org/sqlite driver;
// gdata and in-memory backends are available for other environments.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/flappy-hero/internal/core"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("storage: unknown backend")

// BestScores is a closable best-score store.
type BestScores interface {
	core.ScoreKeeper
	Close() error
}

// Backend names a storage implementation.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendGdata  Backend = "gdata"
	BackendMemory Backend = "memory"
)

// DefaultDBPath is where the SQLite database lives unless overridden.
const DefaultDBPath = "~/.flappyhero/scores.db"

// DefaultAppName is the gdata application name.
const DefaultAppName = "flappyhero"

// Options select and configure a backend.
type Options struct {
	Backend Backend
	DBPath  string // SQLite file, "~" is expanded
	AppName string // gdata application name
}

// Open creates the configured backend.
func Open(opts Options) (BestScores, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		path := opts.DBPath
		if path == "" {
			path = DefaultDBPath
		}
		return OpenSQLite(path)
	case BackendGdata:
		name := opts.AppName
		if name == "" {
			name = DefaultAppName
		}
		return OpenGdata(name)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownBackend, opts.Backend)
	}
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
