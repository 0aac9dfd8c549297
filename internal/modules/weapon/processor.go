package weapon

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// CooldownProcessor decays weapon cooldowns. It must run before anything
// that fires in the same frame, so a shot waits exactly its cooldown.
type CooldownProcessor struct {
	service *Service
}

// NewCooldownProcessor creates a processor that ticks s.
func NewCooldownProcessor(s *Service) *CooldownProcessor {
	return &CooldownProcessor{service: s}
}

// Process implements engine.EntityProcessor.
func (p *CooldownProcessor) Process(_ *engine.World, dt float64) error {
	p.service.Tick(dt)
	return nil
}

// BulletProcessor ages projectiles and moves the ones still alive.
type BulletProcessor struct {
	worldW float64
	worldH float64
}

// NewBulletProcessor creates a processor for a world of the given size.
func NewBulletProcessor(worldW, worldH float64) *BulletProcessor {
	return &BulletProcessor{worldW: worldW, worldH: worldH}
}

// Process implements engine.EntityProcessor.
func (p *BulletProcessor) Process(w *engine.World, dt float64) error {
	w.Each(entity.TypeProjectile, func(e *entity.Entity) {
		if bd, ok := e.Bullet(); ok {
			bd.Age += dt
			if bd.Expired() {
				e.Destroy()
				return
			}
		}
		e.Integrate(dt)
		e.X = core.Wrap(e.X, p.worldW)
		e.Y = core.Wrap(e.Y, p.worldH)
	})
	return nil
}

var (
	_ engine.EntityProcessor = (*CooldownProcessor)(nil)
	_ engine.EntityProcessor = (*BulletProcessor)(nil)
)
