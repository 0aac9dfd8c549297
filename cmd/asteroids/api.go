package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/api"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var flagAPIAddr string

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Start the HTTP score server",
	Long: `Start the HTTP score server that game clients submit scores to.

Endpoints:
  POST   /api/scores                      - Submit {"playerName", "scoreValue"}
  GET    /api/scores[?limit=N]            - All scores, or the top N
  GET    /api/scores/top                  - Top 10
  GET    /api/scores/player/{name}        - Scores of one player
  GET    /api/scores/player/{name}/highest - Best score of one player
  GET    /api/scores/stats                - Aggregate statistics
  GET    /api/scores/rank?value=N         - Rank a score would take
  DELETE /api/scores/{id}                 - Remove a score
  GET    /healthz                         - Liveness probe
  GET    /metrics                         - Prometheus metrics

The listen address defaults to ASTEROIDS_API_ADDR, then :8080.

Examples:
  asteroids api
  asteroids api --addr :9090 --db ./scores.db`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", "", "HTTP listen address (host:port)")
}

func runAPI(_ *cobra.Command, _ []string) {
	gc, _ := loadGameConfig()
	logger := serverLogger("api")

	addr := flagAPIAddr
	if addr == "" {
		addr = gc.Service.APIAddr
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	server := api.NewServer(addr, store, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			store.Close()
			os.Exit(1)
		}
		return
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
