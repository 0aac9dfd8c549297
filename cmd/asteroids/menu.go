package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/game"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var flagMenuName string

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start asteroids with the title menu",
	Long: `Start asteroids in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select (Difficulty cycles easy, normal, hard)
  Tab          - High scores
  Q            - Quit

Examples:
  asteroids menu
  asteroids menu --fps 30
  asteroids menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagMenuName, "name", "", "Pilot name for the leaderboard")
	menuCmd.Flags().BoolVar(&flagOffline, "offline", false, "Keep scores in the local database only")
}

func runMenu(_ *cobra.Command, _ []string) {
	gc, preset := loadGameConfig()
	cfg := runtimeConfig()
	player := playerName(flagMenuName, gc)

	logger, closeLog := tuiLogger()
	defer closeLog()

	store := openStore()
	scores := scoreService(gc, flagOffline, store, logger)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(player, preset, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size and difficulty changes made in the menu
		cfg = menuResult.Config
		preset = menuResult.Preset

		if menuResult.Quit {
			break
		}

		if menuResult.Choice == tui.ChoiceScores {
			goBack, sbErr := tui.RunScoreboard(scores, player, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.Choice != tui.ChoicePlay {
			break
		}

		session := game.New(game.Options{
			Config:     gc,
			Preset:     preset,
			Scores:     scores,
			PlayerName: player,
			Policy:     game.DefaultPolicy(),
			Logger:     logger.WithPrefix("game"),
		})

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		runErr := tui.Run(session, scores, cfg)
		session.Close()
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}

		// Loop back to menu
	}

	if store != nil {
		store.Close()
	}
}
