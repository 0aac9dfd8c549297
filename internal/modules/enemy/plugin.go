package enemy

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Plugin places the initial enemies on the world edges.
type Plugin struct {
	brain  *Brain
	rng    *rand.Rand
	count  int
	margin float64
	worldW float64
	worldH float64
	owned  []*entity.Entity
}

// NewPlugin creates a plugin that starts count enemies, inset margin from
// a random edge each.
func NewPlugin(b *Brain, rng *rand.Rand, count int, margin, worldW, worldH float64) *Plugin {
	return &Plugin{
		brain:  b,
		rng:    rng,
		count:  count,
		margin: margin,
		worldW: worldW,
		worldH: worldH,
	}
}

// Start implements engine.EntitySource.
func (p *Plugin) Start() []*entity.Entity {
	p.owned = make([]*entity.Entity, 0, p.count)
	for i := 0; i < p.count; i++ {
		x, y := core.EdgePoint(p.rng, p.worldW, p.worldH, p.margin)
		p.owned = append(p.owned, p.brain.New(x, y))
	}
	return p.owned
}

// Stop implements engine.EntitySource.
func (p *Plugin) Stop() {
	for _, e := range p.owned {
		e.Destroy()
	}
	p.owned = nil
}

var _ engine.EntitySource = (*Plugin)(nil)
