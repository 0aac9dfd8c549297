package player

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Weapon creates the bullets of one trigger pull, or nil while the shooter
// cannot fire.
type Weapon interface {
	Fire(shooter *entity.Entity, level int) []*entity.Entity
}

// Processor applies the ship's intents, flies it and fires its weapon.
type Processor struct {
	cfg    config.PlayerConfig
	weapon Weapon
	worldW float64
	worldH float64
}

// NewProcessor creates the player processor. A nil weapon disables firing.
func NewProcessor(cfg config.PlayerConfig, weapon Weapon, worldW, worldH float64) *Processor {
	return &Processor{cfg: cfg, weapon: weapon, worldW: worldW, worldH: worldH}
}

// Process implements engine.EntityProcessor.
func (p *Processor) Process(w *engine.World, dt float64) error {
	w.Each(entity.TypePlayer, func(e *entity.Entity) {
		pd, ok := e.Player()
		if !ok {
			return
		}

		if pd.Invulnerable > 0 {
			pd.Invulnerable = max(pd.Invulnerable-dt, 0)
		}

		if pd.RotatingLeft {
			e.Radians += p.cfg.RotationSpeed * dt
		}
		if pd.RotatingRight {
			e.Radians -= p.cfg.RotationSpeed * dt
		}

		if pd.Accelerating {
			e.DX += math.Cos(e.Radians) * p.cfg.Acceleration * dt
			e.DY += math.Sin(e.Radians) * p.cfg.Acceleration * dt
			e.LimitSpeed(p.cfg.MaxSpeed)
		}

		e.DX *= p.cfg.Deceleration
		e.DY *= p.cfg.Deceleration

		e.Integrate(dt)
		e.X = core.Wrap(e.X, p.worldW)
		e.Y = core.Wrap(e.Y, p.worldH)

		if pd.Firing && p.weapon != nil {
			w.Add(p.weapon.Fire(e, pd.WeaponLevel)...)
		}
	})
	return nil
}

var _ engine.EntityProcessor = (*Processor)(nil)
