// asteroids is a terminal asteroids game with a local or remote leaderboard.
//
// Usage:
//
//	asteroids play           - Play in the terminal
//	asteroids menu           - Title menu with difficulty and high scores
//	asteroids scores         - Print high scores
//	asteroids simulate       - Run a headless game and print the result
//	asteroids list           - List game modules in pipeline order
//	asteroids api            - Start the HTTP score server
//	asteroids serve          - Start the SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.asteroids/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - fly, shoot and survive in your terminal",
	Long: `Asteroids is a terminal arcade game: steer a ship through drifting
asteroids and hunting enemy ships, and post your score to a shared
leaderboard.

Available commands:
  play      - Play directly
  menu      - Title menu with difficulty and high scores
  scores    - Print high scores
  simulate  - Headless run for testing and tuning
  list      - Show game modules in pipeline order
  api       - HTTP score server
  serve     - SSH server for remote play

Examples:
  asteroids play --name ace
  asteroids play --difficulty hard --offline
  asteroids menu
  asteroids api --addr :8080
  asteroids serve --ssh :23234 --http :8080`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		// A missing .env is fine; the process environment still applies
		if err := godotenv.Load(".env"); err != nil {
			_ = godotenv.Load("../.env")
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(serveCmd)
}
