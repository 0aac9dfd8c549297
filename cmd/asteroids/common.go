package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/score"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

// loadGameConfig resolves the game config, environment overrides and the
// difficulty preset from the global flags. It exits on bad input.
func loadGameConfig() (config.GameConfig, config.DifficultyPreset) {
	gc, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyEnv(&gc)

	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		fmt.Fprintln(os.Stderr, "Valid presets: easy, normal, hard, fixed")
		os.Exit(1)
	}
	return gc, preset
}

// runtimeConfig sizes the screen to the terminal. World size comes from
// the game config at reset.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.WorldW = 0
	cfg.WorldH = 0
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// tuiLogger writes to ~/.asteroids/asteroids.log, since the terminal
// belongs to the game while it runs. The returned func closes the file.
func tuiLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	dir := filepath.Join(home, ".asteroids")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "asteroids.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
	})
	return logger, func() { f.Close() }
}

// serverLogger logs to stderr for the long-running commands.
func serverLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
}

// openStore opens the scores database, warning instead of failing.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// scoreService picks the remote score service when it answers its probe,
// and the local database otherwise.
func scoreService(gc config.GameConfig, offline bool, store *storage.Store, logger *log.Logger) score.Service {
	local := score.NewLocalService(store, logger.WithPrefix("scores"))
	if offline || gc.Service.URL == "" {
		return local
	}

	timeout := gc.Service.Timeout
	if timeout <= 0 {
		timeout = score.DefaultTimeout
	}
	remote := score.NewRESTClient(gc.Service.URL, timeout, logger.WithPrefix("scores"))
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := remote.Initialize(ctx); err != nil {
		logger.Warn("using local scores", "error", err)
		return local
	}
	return remote
}

// playerName resolves the pilot name: flag, then config, then $USER.
func playerName(flag string, gc config.GameConfig) string {
	if flag != "" {
		return flag
	}
	if gc.Service.PlayerName != "" {
		return gc.Service.PlayerName
	}
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "Player"
}
