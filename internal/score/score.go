// Package score provides the score-service capability consumed by game
// sessions: submitting results and reading leaderboards. Failures are
// reported as false or empty results and never returned into the frame
// loop.
package score

import (
	"context"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// DefaultLimit is the leaderboard size used when a caller passes no limit.
const DefaultLimit = 10

// ScoreData is one leaderboard row.
type ScoreData struct {
	ID         int64     `json:"id,omitempty"`
	PlayerName string    `json:"playerName"`
	ScoreValue int       `json:"scoreValue"`
	GameDate   time.Time `json:"gameDate,omitempty"`
}

// Service is the score-service capability.
type Service interface {
	// Initialize probes the backend and updates Available.
	Initialize(ctx context.Context) error

	// Available reports whether the last probe succeeded.
	Available() bool

	// SubmitScore records a result. Returns false on any failure.
	SubmitScore(ctx context.Context, player string, value int) bool

	// TopScores returns up to limit scores, highest first.
	// A limit of zero or less returns the default top ten.
	TopScores(ctx context.Context, limit int) []ScoreData

	// PlayerHighScore returns the best score of player.
	PlayerHighScore(ctx context.Context, player string) (ScoreData, bool)

	// PlayerScores returns every score of player, highest first.
	PlayerScores(ctx context.Context, player string) []ScoreData
}

// FromEntry converts a stored row.
func FromEntry(e storage.ScoreEntry) ScoreData {
	return ScoreData{
		ID:         e.ID,
		PlayerName: e.PlayerName,
		ScoreValue: e.ScoreValue,
		GameDate:   e.GameDate,
	}
}

// FromEntries converts stored rows.
func FromEntries(es []storage.ScoreEntry) []ScoreData {
	out := make([]ScoreData, len(es))
	for i, e := range es {
		out[i] = FromEntry(e)
	}
	return out
}
