package score

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// LocalService keeps scores in the local SQLite store.
// It is used when playing offline.
type LocalService struct {
	store  *storage.Store
	logger *log.Logger
}

// NewLocalService wraps store. A nil store is never available.
func NewLocalService(store *storage.Store, logger *log.Logger) *LocalService {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &LocalService{store: store, logger: logger}
}

// Initialize implements Service.
func (s *LocalService) Initialize(context.Context) error {
	return nil
}

// Available implements Service.
func (s *LocalService) Available() bool {
	return s.store != nil
}

// SubmitScore implements Service.
func (s *LocalService) SubmitScore(_ context.Context, player string, value int) bool {
	if !s.Available() {
		return false
	}
	if _, err := s.store.SaveScore(player, value); err != nil {
		s.logger.Warn("cannot save score", "err", err)
		return false
	}
	return true
}

// TopScores implements Service.
func (s *LocalService) TopScores(_ context.Context, limit int) []ScoreData {
	if !s.Available() {
		return nil
	}
	entries, err := s.store.TopScores(limit)
	if err != nil {
		s.logger.Warn("cannot load top scores", "err", err)
		return nil
	}
	return FromEntries(entries)
}

// PlayerHighScore implements Service.
func (s *LocalService) PlayerHighScore(_ context.Context, player string) (ScoreData, bool) {
	if !s.Available() {
		return ScoreData{}, false
	}
	e, err := s.store.PlayerHighScore(player)
	if err != nil {
		s.logger.Warn("cannot load player high score", "err", err)
		return ScoreData{}, false
	}
	if e == nil {
		return ScoreData{}, false
	}
	return FromEntry(*e), true
}

// PlayerScores implements Service.
func (s *LocalService) PlayerScores(_ context.Context, player string) []ScoreData {
	if !s.Available() {
		return nil
	}
	entries, err := s.store.PlayerScores(player)
	if err != nil {
		s.logger.Warn("cannot load player scores", "err", err)
		return nil
	}
	return FromEntries(entries)
}

var _ Service = (*LocalService)(nil)
