package config

import (
	"math"
	"testing"
)

func testDifficulty() DifficultyConfig {
	return DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling: ScalingConfig{
			SpeedMultiplier: 1.0,
			SpawnReduction:  0.5,
			ExtraEnemies:    4,
			ExtraAsteroids:  2,
		},
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name     string
		score    int
		expected float64
	}{
		{"start", 0, 0.0},
		{"halfway", 500, 0.5},
		{"max", 1000, 1.0},
		{"beyond max", 5000, 1.0},
	}

	d := NewDifficultyManager(testDifficulty())
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.Level(tc.score, 0); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
			}
		})
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := testDifficulty()
	cfg.InitialLevel = 0.3
	d := NewDifficultyManager(cfg)
	d.SetEnabled(false)

	if d.IsEnabled() {
		t.Error("IsEnabled() should be false")
	}
	if got := d.Level(100000, 0); got != 0.3 {
		t.Errorf("Level() = %v, expected initial level 0.3", got)
	}
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := testDifficulty()
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 600}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 300); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(ticks=300) = %v, expected 0.5", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())

	if got := d.SpawnInterval(10, 0, 0); got != 10 {
		t.Errorf("SpawnInterval at start = %v, expected 10", got)
	}
	if got := d.SpawnInterval(10, 1000, 0); math.Abs(got-5) > 1e-9 {
		t.Errorf("SpawnInterval at max = %v, expected 5", got)
	}
	if got := d.SpawnInterval(0.6, 1000, 0); got != 0.5 {
		t.Errorf("SpawnInterval floor = %v, expected 0.5", got)
	}
	if got := d.Speed(100, 1000, 0); got != 200 {
		t.Errorf("Speed at max = %v, expected 200", got)
	}
	if got := d.MaxEnemies(5, 1000, 0); got != 9 {
		t.Errorf("MaxEnemies at max = %d, expected 9", got)
	}
	if got := d.MaxAsteroids(10, 500, 0); got != 11 {
		t.Errorf("MaxAsteroids halfway = %d, expected 11", got)
	}
	if got := d.Stage(0, 0); got != 1 {
		t.Errorf("Stage at start = %d, expected 1", got)
	}
	if got := d.Stage(1000, 0); got != 10 {
		t.Errorf("Stage at max = %d, expected 10", got)
	}
}

func TestSetInitialLevelClamps(t *testing.T) {
	d := NewDifficultyManager(testDifficulty())
	d.SetInitialLevel(3)
	d.SetEnabled(false)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("Level() = %v, expected clamp to 1", got)
	}
}
