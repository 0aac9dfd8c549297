package asteroid

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Plugin places the initial asteroid field.
type Plugin struct {
	factory  *Factory
	rng      *rand.Rand
	count    int
	safeZone float64
	worldW   float64
	worldH   float64
	owned    []*entity.Entity
}

// NewPlugin creates a plugin that starts count large asteroids outside a
// circle of radius safeZone around the world center.
func NewPlugin(f *Factory, rng *rand.Rand, count int, safeZone, worldW, worldH float64) *Plugin {
	return &Plugin{
		factory:  f,
		rng:      rng,
		count:    count,
		safeZone: safeZone,
		worldW:   worldW,
		worldH:   worldH,
	}
}

// Start implements engine.EntitySource.
func (p *Plugin) Start() []*entity.Entity {
	p.owned = make([]*entity.Entity, 0, p.count)
	for i := 0; i < p.count; i++ {
		x, y := p.position()
		p.owned = append(p.owned, p.factory.New(entity.SizeLarge, x, y))
	}
	return p.owned
}

// Stop implements engine.EntitySource. Asteroids it started are deactivated.
func (p *Plugin) Stop() {
	for _, e := range p.owned {
		e.Destroy()
	}
	p.owned = nil
}

// position draws points until one falls outside the safe zone.
func (p *Plugin) position() (float64, float64) {
	cx, cy := p.worldW/2, p.worldH/2
	limit := p.safeZone * p.safeZone
	for attempt := 0; ; attempt++ {
		x := p.rng.Float64() * p.worldW
		y := p.rng.Float64() * p.worldH
		dx, dy := x-cx, y-cy
		if dx*dx+dy*dy > limit || attempt >= 100 {
			return x, y
		}
	}
}

var _ engine.EntitySource = (*Plugin)(nil)
