package storage

import (
	"fmt"
	"sync"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const bestObject = "best_scores"

// bestRecord is the YAML payload stored per game mode.
type bestRecord struct {
	Score int `yaml:"score"`
}

// GdataStore keeps best scores in the platform's per-user data directory.
// A nil manager turns every call into a no-op.
type GdataStore struct {
	mu sync.Mutex
	m  *gdata.Manager
}

// OpenGdata opens the gdata manager for the given application name.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open gdata: %w", err)
	}
	return NewGdataStore(m), nil
}

// NewGdataStore wraps an existing manager.
func NewGdataStore(m *gdata.Manager) *GdataStore {
	return &GdataStore{m: m}
}

// LoadBest returns the stored best score, or 0 if none is stored.
func (s *GdataStore) LoadBest(gameID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(gameID)
}

func (s *GdataStore) load(gameID string) (int, error) {
	if s.m == nil || !s.m.ObjectPropExists(bestObject, gameID) {
		return 0, nil
	}

	data, err := s.m.LoadObjectProp(bestObject, gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best score: %w", err)
	}

	var rec bestRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("storage: cannot decode best score: %w", err)
	}
	return rec.Score, nil
}

// SaveBest stores score unless a higher one is already stored.
func (s *GdataStore) SaveBest(gameID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load(gameID)
	if err != nil {
		return err
	}
	if score <= current {
		return nil
	}
	return s.store(gameID, score)
}

// ResetBest sets the stored best score to 0.
func (s *GdataStore) ResetBest(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store(gameID, 0)
}

func (s *GdataStore) store(gameID string, score int) error {
	if s.m == nil {
		return nil
	}

	data, err := yaml.Marshal(bestRecord{Score: score})
	if err != nil {
		return fmt.Errorf("storage: cannot encode best score: %w", err)
	}
	if err := s.m.SaveObjectProp(bestObject, gameID, data); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// Close is a no-op; gdata writes files synchronously.
func (s *GdataStore) Close() error {
	return nil
}
