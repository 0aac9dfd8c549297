package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/game"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var (
	flagPlayName string
	flagOffline  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play asteroids",
	Long: `Start a game of asteroids.

Controls:
  W/Up        - Thrust
  A/D, Left/Right - Rotate
  Space/F     - Fire
  P           - Pause
  R           - Restart (after game over)
  B/Esc       - Back (when paused or after game over)
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Scores go to the score server in ASTEROIDS_SCORE_URL when it answers,
and to the local database otherwise.

Examples:
  asteroids play
  asteroids play --name ace --difficulty hard
  asteroids play --offline
  asteroids play --config ./my-asteroids.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayName, "name", "", "Pilot name for the leaderboard")
	playCmd.Flags().BoolVar(&flagOffline, "offline", false, "Keep scores in the local database only")
}

func runPlay(_ *cobra.Command, _ []string) {
	gc, preset := loadGameConfig()
	cfg := runtimeConfig()

	logger, closeLog := tuiLogger()
	defer closeLog()

	store := openStore()
	scores := scoreService(gc, flagOffline, store, logger)

	session := game.New(game.Options{
		Config:     gc,
		Preset:     preset,
		Scores:     scores,
		PlayerName: playerName(flagPlayName, gc),
		Policy:     game.DefaultPolicy(),
		Logger:     logger.WithPrefix("game"),
	})

	runErr := tui.Run(session, scores, cfg)

	// Flushes pending score submissions before the store goes away
	session.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
