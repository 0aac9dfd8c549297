package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultGameConfig returns the built-in tuning, used when no YAML source
// can be read.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Radius:        8,
			Lives:         3,
			Acceleration:  200,
			RotationSpeed: 3.0,
			MaxSpeed:      300,
			Deceleration:  0.97,
			Invulnerable:  2.0,
		},
		Weapon: WeaponConfig{
			Cooldown:     0.3,
			BulletSpeed:  400,
			BulletLife:   1.5,
			BulletRadius: 3,
			Damage:       1,
			Level:        1,
		},
		Enemy: EnemyConfig{
			Radius:        12,
			Health:        3,
			Acceleration:  120,
			MaxSpeed:      150,
			RotationSpeed: 2.0,
			Deceleration:  0.98,
			TrackingRange: 250,
			BehaviorTime:  3.0,
			ReaimChance:   0.3,
			Initial:       3,
			EdgeMargin:    50,
			SpawnInterval: 5,
			MaxActive:     5,
			OneShot:       true,
		},
		Asteroid: AsteroidConfig{
			Large:         SizeConfig{Radius: 32, Points: 20, Speed: 50, Split: 2},
			Medium:        SizeConfig{Radius: 16, Points: 50, Speed: 75, Split: 2},
			Small:         SizeConfig{Radius: 8, Points: 100, Speed: 100, Split: 0},
			MinSpin:       0.2,
			MaxSpin:       1.5,
			Initial:       4,
			SafeZone:      150,
			SpawnInterval: 10,
			MaxActive:     10,
		},
		Scoring: ScoringConfig{
			EnemyPoints:    150,
			FallbackPoints: 50,
			BounceDamping:  0.8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  0.5,
				ExtraEnemies:    3,
				ExtraAsteroids:  4,
			},
		},
		Service: ServiceConfig{
			URL:        "http://localhost:8080/api/scores",
			Timeout:    5 * time.Second,
			PlayerName: "Player",
			APIAddr:    ":8080",
		},
	}
}
