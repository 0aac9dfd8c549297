package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := decode(defaultAsteroidsYAML)
	if err != nil {
		t.Fatalf("embedded yaml: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultGameConfig()) {
		t.Errorf("embedded config differs from DefaultGameConfig():\n%+v\n%+v", cfg, DefaultGameConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  lives: 7\nservice:\n  timeout: 2s\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Service.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v, expected 2s", cfg.Service.Timeout)
	}
	// Keys absent from the file keep their defaults
	if cfg.Enemy.TrackingRange != 250 {
		t.Errorf("TrackingRange = %v, expected 250", cfg.Enemy.TrackingRange)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [unterminated"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Player.Lives != 3 {
		t.Errorf("embedded default Lives = %d, expected 3", cfg.Player.Lives)
	}

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", FileName), []byte("player:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Player.Lives != 4 {
		t.Errorf("local config Lives = %d, expected 4", cfg.Player.Lives)
	}

	userDir := filepath.Join(home, ".asteroids", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, FileName), []byte("player:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = Load("")
	if cfg.Player.Lives != 9 {
		t.Errorf("user config Lives = %d, expected 9", cfg.Player.Lives)
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		lives   int
	}{
		{DifficultyEasy, true, 0.0, 5},
		{DifficultyNormal, true, 0.3, 3},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.3, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultGameConfig()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if cfg.Player.Lives != tc.lives {
				t.Errorf("Lives = %d, expected %d", cfg.Player.Lives, tc.lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvScoreURL:     " http://scores.example:9000/api/scores ",
		EnvScoreTimeout: "750ms",
		EnvPlayer:       "Ripley",
	}
	cfg := DefaultGameConfig()
	applyEnv(&cfg, func(k string) string { return env[k] })

	if cfg.Service.URL != "http://scores.example:9000/api/scores" {
		t.Errorf("URL = %q", cfg.Service.URL)
	}
	if cfg.Service.Timeout != 750*time.Millisecond {
		t.Errorf("Timeout = %v", cfg.Service.Timeout)
	}
	if cfg.Service.PlayerName != "Ripley" {
		t.Errorf("PlayerName = %q", cfg.Service.PlayerName)
	}
	if cfg.Service.APIAddr != ":8080" {
		t.Errorf("APIAddr = %q, expected default", cfg.Service.APIAddr)
	}

	env[EnvScoreTimeout] = "soon"
	applyEnv(&cfg, func(k string) string { return env[k] })
	if cfg.Service.Timeout != 750*time.Millisecond {
		t.Error("invalid timeout should be ignored")
	}
}

func TestApplyEnvProcess(t *testing.T) {
	t.Setenv(EnvAPIAddr, ":9191")
	cfg := DefaultGameConfig()
	ApplyEnv(&cfg)
	if cfg.Service.APIAddr != ":9191" {
		t.Errorf("APIAddr = %q, expected :9191", cfg.Service.APIAddr)
	}
}
