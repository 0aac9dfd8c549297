// Package config provides YAML-based tuning, difficulty management and
// environment overrides for the asteroids game.
package config

import "time"

// GameConfig contains every tunable of a session.
type GameConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Weapon     WeaponConfig     `yaml:"weapon"`
	Enemy      EnemyConfig      `yaml:"enemy"`
	Asteroid   AsteroidConfig   `yaml:"asteroid"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Service    ServiceConfig    `yaml:"service"`
}

// WorldConfig defines the playfield in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Radius        float64 `yaml:"radius"`
	Lives         int     `yaml:"lives"`
	Acceleration  float64 `yaml:"acceleration"`
	RotationSpeed float64 `yaml:"rotation_speed"` // Radians per second
	MaxSpeed      float64 `yaml:"max_speed"`
	Deceleration  float64 `yaml:"deceleration"` // Velocity factor applied every frame
	Invulnerable  float64 `yaml:"invulnerable"` // Seconds of grace after losing a life
}

// WeaponConfig defines projectiles and fire rate.
type WeaponConfig struct {
	Cooldown     float64 `yaml:"cooldown"` // Seconds between shots
	BulletSpeed  float64 `yaml:"bullet_speed"`
	BulletLife   float64 `yaml:"bullet_life"` // Seconds
	BulletRadius float64 `yaml:"bullet_radius"`
	Damage       int     `yaml:"damage"`
	Level        int     `yaml:"level"` // Starting weapon level (1-3)
}

// EnemyConfig defines hostile ships and their spawner.
type EnemyConfig struct {
	Radius        float64 `yaml:"radius"`
	Health        int     `yaml:"health"`
	Acceleration  float64 `yaml:"acceleration"`
	MaxSpeed      float64 `yaml:"max_speed"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	Deceleration  float64 `yaml:"deceleration"`
	TrackingRange float64 `yaml:"tracking_range"`
	BehaviorTime  float64 `yaml:"behavior_time"` // Seconds between behaviour changes
	ReaimChance   float64 `yaml:"reaim_chance"`  // Probability of a new wander target
	Initial       int     `yaml:"initial"`
	EdgeMargin    float64 `yaml:"edge_margin"`
	SpawnInterval float64 `yaml:"spawn_interval"` // Seconds
	MaxActive     int     `yaml:"max_active"`
	OneShot       bool    `yaml:"one_shot"` // Projectiles destroy enemies outright
}

// AsteroidConfig defines asteroid sizes and their spawner.
type AsteroidConfig struct {
	Large         SizeConfig `yaml:"large"`
	Medium        SizeConfig `yaml:"medium"`
	Small         SizeConfig `yaml:"small"`
	MinSpin       float64    `yaml:"min_spin"`
	MaxSpin       float64    `yaml:"max_spin"`
	Initial       int        `yaml:"initial"`
	SafeZone      float64    `yaml:"safe_zone"` // Radius kept clear around the world center
	SpawnInterval float64    `yaml:"spawn_interval"`
	MaxActive     int        `yaml:"max_active"`
}

// SizeConfig defines one asteroid size class.
type SizeConfig struct {
	Radius float64 `yaml:"radius"`
	Points int     `yaml:"points"`
	Speed  float64 `yaml:"speed"`
	Split  int     `yaml:"split"` // Fragments produced when destroyed
}

// ScoringConfig defines the collision outcome policy.
type ScoringConfig struct {
	EnemyPoints    int     `yaml:"enemy_points"`
	FallbackPoints int     `yaml:"fallback_points"`
	BounceDamping  float64 `yaml:"bounce_damping"`
}

// ServiceConfig defines the remote score service and player identity.
type ServiceConfig struct {
	URL        string        `yaml:"url"`
	Timeout    time.Duration `yaml:"timeout"`
	PlayerName string        `yaml:"player_name"`
	APIAddr    string        `yaml:"api_addr"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // Fraction of spawn interval removed at max difficulty
	ExtraEnemies    int     `yaml:"extra_enemies"`    // Added to enemy max_active at max difficulty
	ExtraAsteroids  int     `yaml:"extra_asteroids"`  // Added to asteroid max_active at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
