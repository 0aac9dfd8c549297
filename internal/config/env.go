package config

import (
	"os"
	"strings"
	"time"
)

// Environment variables that override file configuration.
const (
	EnvScoreURL     = "ASTEROIDS_SCORE_URL"
	EnvScoreTimeout = "ASTEROIDS_SCORE_TIMEOUT"
	EnvPlayer       = "ASTEROIDS_PLAYER"
	EnvAPIAddr      = "ASTEROIDS_API_ADDR"
)

// ApplyEnv overrides service settings from the process environment.
// Callers load .env files beforehand.
func ApplyEnv(cfg *GameConfig) {
	applyEnv(cfg, os.Getenv)
}

func applyEnv(cfg *GameConfig, getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvScoreURL)); v != "" {
		cfg.Service.URL = v
	}
	if v := strings.TrimSpace(getenv(EnvScoreTimeout)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Service.Timeout = d
		}
	}
	if v := strings.TrimSpace(getenv(EnvPlayer)); v != "" {
		cfg.Service.PlayerName = v
	}
	if v := strings.TrimSpace(getenv(EnvAPIAddr)); v != "" {
		cfg.Service.APIAddr = v
	}
}
