package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/score"
)

var (
	flagScoresRemote bool
	flagScoresPlayer string
	flagScoresLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the high scores from the local database, or from the score
server with --remote.

Examples:
  asteroids scores
  asteroids scores --limit 25
  asteroids scores --player ace
  asteroids scores --remote`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresRemote, "remote", false, "Read from the score server instead of the local database")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show every score of one player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", score.DefaultLimit, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) {
	gc, _ := loadGameConfig()
	ctx := context.Background()
	logger := serverLogger("scores")

	var svc score.Service
	if flagScoresRemote {
		client := score.NewRESTClient(gc.Service.URL, gc.Service.Timeout, logger)
		if err := client.Initialize(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		svc = client
	} else {
		store := openStore()
		if store == nil {
			os.Exit(1)
		}
		defer store.Close()
		svc = score.NewLocalService(store, logger)
	}

	var scores []score.ScoreData
	if flagScoresPlayer != "" {
		scores = svc.PlayerScores(ctx, flagScoresPlayer)
		fmt.Printf("High Scores - %s\n", flagScoresPlayer)
	} else {
		scores = svc.TopScores(ctx, flagScoresLimit)
		fmt.Println("High Scores - Asteroids")
	}
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'asteroids play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := "-"
		if !entry.GameDate.IsZero() {
			dateStr = entry.GameDate.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.PlayerName, entry.ScoreValue, dateStr)
	}

	// Show high score
	fmt.Println()
	if flagScoresPlayer != "" {
		if best, ok := svc.PlayerHighScore(ctx, flagScoresPlayer); ok {
			fmt.Printf("Best: %d\n", best.ScoreValue)
		}
		return
	}
	fmt.Printf("Best: %d (%s)\n", scores[0].ScoreValue, scores[0].PlayerName)
}
