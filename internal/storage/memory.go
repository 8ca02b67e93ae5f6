package storage

import "sync"

// MemoryStore keeps best scores for the lifetime of the process.
type MemoryStore struct {
	mu   sync.Mutex
	best map[string]int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{best: make(map[string]int)}
}

// LoadBest returns the best score, or 0.
func (s *MemoryStore) LoadBest(gameID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best[gameID], nil
}

// SaveBest keeps the higher of the stored and given score.
func (s *MemoryStore) SaveBest(gameID string, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best[gameID] = max(s.best[gameID], score)
	return nil
}

// ResetBest sets the best score to 0.
func (s *MemoryStore) ResetBest(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.best[gameID] = 0
	return nil
}

// Close does nothing.
func (s *MemoryStore) Close() error {
	return nil
}
