// Package enemy implements hostile ships: a small state machine that hunts
// the player inside a tracking range and wanders otherwise.
package enemy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Brain holds the behaviour rules shared by every enemy of a session.
type Brain struct {
	cfg config.EnemyConfig
	rng *rand.Rand
}

// NewBrain creates the behaviour rules.
func NewBrain(cfg config.EnemyConfig, rng *rand.Rand) *Brain {
	return &Brain{cfg: cfg, rng: rng}
}

// New creates a wandering enemy at (x, y) with a random heading and no
// velocity.
func (b *Brain) New(x, y float64) *entity.Entity {
	e := entity.New(entity.TypeEnemy, x, y, b.cfg.Radius)
	e.Data = &entity.EnemyData{
		Health: b.cfg.Health,
		State:  entity.StateWandering,
	}
	b.Reaim(e)
	return e
}

// Reaim points the enemy in a random direction.
func (b *Brain) Reaim(e *entity.Entity) {
	e.Radians = b.rng.Float64() * 2 * math.Pi
}

// Track records the player position as the target and picks HUNTING when
// it lies within the tracking range, WANDERING otherwise.
func (b *Brain) Track(e *entity.Entity, ed *entity.EnemyData, px, py float64) {
	ed.TargetX, ed.TargetY = px, py

	dx, dy := px-e.X, py-e.Y
	if dx*dx+dy*dy <= b.cfg.TrackingRange*b.cfg.TrackingRange {
		ed.HasTarget = true
		ed.State = entity.StateHunting
	} else {
		ed.HasTarget = false
		ed.State = entity.StateWandering
	}
}

// Tick advances the behaviour timer. Each time it expires while wandering
// there is a chance of a new random heading.
func (b *Brain) Tick(e *entity.Entity, ed *entity.EnemyData, dt float64) {
	ed.BehaviorTimer += dt
	if ed.BehaviorTimer >= b.cfg.BehaviorTime && ed.State == entity.StateWandering {
		ed.BehaviorTimer = 0
		if b.rng.Float64() < b.cfg.ReaimChance {
			b.Reaim(e)
		}
	}
}

// Steer turns toward the target by the shortest path, at most
// RotationSpeed*dt radians.
func (b *Brain) Steer(e *entity.Entity, ed *entity.EnemyData, dt float64) {
	if !ed.HasTarget {
		return
	}
	target := math.Atan2(ed.TargetY-e.Y, ed.TargetX-e.X)
	e.Radians = core.TurnToward(e.Radians, target, b.cfg.RotationSpeed*dt)
}

// Thrust accelerates along the heading. Hunting uses full thrust up to
// MaxSpeed; other states use half thrust, deceleration and a 70% cap.
func (b *Brain) Thrust(e *entity.Entity, ed *entity.EnemyData, dt float64) {
	accel := b.cfg.Acceleration
	if ed.State != entity.StateHunting {
		accel *= 0.5
	}
	e.DX += math.Cos(e.Radians) * accel * dt
	e.DY += math.Sin(e.Radians) * accel * dt

	if ed.State == entity.StateHunting {
		e.LimitSpeed(b.cfg.MaxSpeed)
		return
	}
	e.DX *= b.cfg.Deceleration
	e.DY *= b.cfg.Deceleration
	e.LimitSpeed(b.cfg.MaxSpeed * 0.7)
}
