// Package weapon fires projectiles and ages them out.
//
// The world y axis points up: a heading of 0 faces right and positive
// rotation turns counter-clockwise.
package weapon

import (
	"math"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Level bounds.
const (
	MinLevel = 1
	MaxLevel = 3
)

// Spread angles in radians for the multi-shot levels.
const (
	pairSpread = 0.1
	fanSpread  = 0.2
)

// muzzleGap is the distance between the shooter's hull and a new bullet.
const muzzleGap = 5

// Service tracks per-shooter cooldowns and creates bullets.
type Service struct {
	cfg       config.WeaponConfig
	cooldowns map[uuid.UUID]float64
	fired     int
}

// NewService creates a weapon service.
func NewService(cfg config.WeaponConfig) *Service {
	return &Service{
		cfg:       cfg,
		cooldowns: make(map[uuid.UUID]float64),
	}
}

// ClampLevel restricts a weapon level to the supported range.
func ClampLevel(level int) int {
	return min(max(level, MinLevel), MaxLevel)
}

// Ready reports whether the shooter may fire.
func (s *Service) Ready(shooter uuid.UUID) bool {
	return s.cooldowns[shooter] <= 0
}

// Cooldown returns the seconds left before the shooter may fire again.
func (s *Service) Cooldown(shooter uuid.UUID) float64 {
	return max(s.cooldowns[shooter], 0)
}

// Fired returns the number of bullets created since the last Reset.
func (s *Service) Fired() int {
	return s.fired
}

// Fire returns the bullets for one trigger pull, or nil while the shooter
// is cooling down. Bullets start just ahead of the shooter's hull and do
// not inherit its velocity.
func (s *Service) Fire(shooter *entity.Entity, level int) []*entity.Entity {
	if !shooter.IsActive() || !s.Ready(shooter.ID) {
		return nil
	}
	s.cooldowns[shooter.ID] = s.cfg.Cooldown

	var angles []float64
	switch ClampLevel(level) {
	case 1:
		angles = []float64{shooter.Radians}
	case 2:
		angles = []float64{shooter.Radians - pairSpread, shooter.Radians + pairSpread}
	default:
		angles = []float64{shooter.Radians, shooter.Radians - fanSpread, shooter.Radians + fanSpread}
	}

	dist := shooter.Radius + muzzleGap
	x := shooter.X + math.Cos(shooter.Radians)*dist
	y := shooter.Y + math.Sin(shooter.Radians)*dist

	bullets := make([]*entity.Entity, 0, len(angles))
	for _, a := range angles {
		bullets = append(bullets, s.newBullet(shooter.ID, x, y, a))
	}
	s.fired += len(bullets)
	return bullets
}

func (s *Service) newBullet(shooter uuid.UUID, x, y, angle float64) *entity.Entity {
	b := entity.New(entity.TypeProjectile, x, y, s.cfg.BulletRadius)
	b.Radians = angle
	b.SetVelocity(angle, s.cfg.BulletSpeed)
	b.Data = &entity.BulletData{
		ShooterID: shooter,
		Lifetime:  s.cfg.BulletLife,
		Damage:    s.cfg.Damage,
	}
	return b
}

// Tick decays every cooldown by dt and forgets shooters that are ready.
func (s *Service) Tick(dt float64) {
	for id, left := range s.cooldowns {
		left -= dt
		if left <= 0 {
			delete(s.cooldowns, id)
			continue
		}
		s.cooldowns[id] = left
	}
}

// Reset clears all cooldowns and counters.
func (s *Service) Reset() {
	clear(s.cooldowns)
	s.fired = 0
}
