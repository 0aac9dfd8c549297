package core

// RuntimeConfig contains configuration passed to a session at reset.
// The simulation runs in world units; the screen is the terminal viewport
// the world is projected onto.
type RuntimeConfig struct {
	ScreenW  int     // Screen width in characters
	ScreenH  int     // Screen height in characters
	WorldW   float64 // World width in world units
	WorldH   float64 // World height in world units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		WorldW:   800,
		WorldH:   600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// DT returns the fixed frame step in seconds.
func (c RuntimeConfig) DT() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a session.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining player lives
	Level    int  // Difficulty level shown in the HUD (1-based)
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State GameState
	Frame uint64 // Completed frames since reset
}
