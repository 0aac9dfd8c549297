package entity

import "github.com/google/uuid"

// Payload is the type-specific part of an entity.
// The set of implementations is closed to this package.
type Payload interface {
	payloadType() Type
}

// BehaviorState is the AI state of an enemy.
type BehaviorState int

const (
	StateWandering BehaviorState = iota
	StateHunting
	StateFleeing
)

// String returns a human-readable name for the state.
func (s BehaviorState) String() string {
	switch s {
	case StateWandering:
		return "WANDERING"
	case StateHunting:
		return "HUNTING"
	case StateFleeing:
		return "FLEEING"
	default:
		return "UNKNOWN"
	}
}

// AsteroidSize identifies one of the asteroid size classes.
type AsteroidSize int

const (
	SizeSmall AsteroidSize = iota
	SizeMedium
	SizeLarge
)

// String returns a human-readable name for the size.
func (s AsteroidSize) String() string {
	switch s {
	case SizeSmall:
		return "SMALL"
	case SizeMedium:
		return "MEDIUM"
	case SizeLarge:
		return "LARGE"
	default:
		return "UNKNOWN"
	}
}

// PlayerData holds the ship's lives, weapon level and input intents.
// Intents are set by the input collaborator; the engine never polls devices.
type PlayerData struct {
	Lives        int
	WeaponLevel  int
	Invulnerable float64 // Seconds of remaining post-hit grace

	Accelerating  bool
	RotatingLeft  bool
	RotatingRight bool
	Firing        bool
}

func (*PlayerData) payloadType() Type { return TypePlayer }

// EnemyData holds the AI state of a hostile ship.
type EnemyData struct {
	Health        int
	State         BehaviorState
	TargetX       float64
	TargetY       float64
	HasTarget     bool
	BehaviorTimer float64
}

func (*EnemyData) payloadType() Type { return TypeEnemy }

// AsteroidData holds the size class and spin of an asteroid.
type AsteroidData struct {
	Size          AsteroidSize
	RotationSpeed float64 // Radians per second
}

func (*AsteroidData) payloadType() Type { return TypeAsteroid }

// BulletData holds projectile ownership and lifetime.
type BulletData struct {
	ShooterID uuid.UUID
	Lifetime  float64 // Seconds before expiry
	Age       float64 // Seconds since spawn
	Damage    int
}

func (*BulletData) payloadType() Type { return TypeProjectile }

// Expired reports whether the bullet has outlived its lifetime.
func (b *BulletData) Expired() bool {
	return b.Age >= b.Lifetime
}

// Player returns the player payload if the entity carries one.
func (e *Entity) Player() (*PlayerData, bool) {
	d, ok := e.Data.(*PlayerData)
	return d, ok && d != nil
}

// Enemy returns the enemy payload if the entity carries one.
func (e *Entity) Enemy() (*EnemyData, bool) {
	d, ok := e.Data.(*EnemyData)
	return d, ok && d != nil
}

// Asteroid returns the asteroid payload if the entity carries one.
func (e *Entity) Asteroid() (*AsteroidData, bool) {
	d, ok := e.Data.(*AsteroidData)
	return d, ok && d != nil
}

// Bullet returns the projectile payload if the entity carries one.
func (e *Entity) Bullet() (*BulletData, bool) {
	d, ok := e.Data.(*BulletData)
	return d, ok && d != nil
}

// PayloadMatches reports whether the payload (if any) agrees with the type tag.
func (e *Entity) PayloadMatches() bool {
	if e.Data == nil {
		return true
	}
	return e.Data.payloadType() == e.Type
}
