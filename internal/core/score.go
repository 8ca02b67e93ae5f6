package core

// ScoreKeeper persists one best score per game mode.
// Implementations live in the storage package; games treat a nil keeper
// as "not persisting".
type ScoreKeeper interface {
	LoadBest(gameID string) (int, error)
	SaveBest(gameID string, score int) error
	ResetBest(gameID string) error
}
