// Package tui is the terminal front end of the game: the Bubble Tea models
// for playing, the title menu and the high score table, plus the Wish SSH
// server that hosts them for remote players.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/score"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// leaderboardDelay gives the score reporter time to deliver the final
// score before the game over screen asks for the leaderboard.
const leaderboardDelay = 300 * time.Millisecond

// LeaderboardMsg carries the scores shown on the game over screen.
type LeaderboardMsg struct {
	Scores []score.ScoreData
}

// tickInterval is the wall time between steps. Rates of zero or less run
// at 60 ticks per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next simulation step.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// fetchLeaderboard loads the top scores off the UI goroutine.
func fetchLeaderboard(svc score.Service) tea.Cmd {
	if svc == nil || !svc.Available() {
		return nil
	}
	return tea.Tick(leaderboardDelay, func(time.Time) tea.Msg {
		return LeaderboardMsg{Scores: svc.TopScores(context.Background(), score.DefaultLimit)}
	})
}
