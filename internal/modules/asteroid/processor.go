package asteroid

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Processor spins and moves asteroids. An asteroid leaves the world fully
// before it reappears on the opposite edge.
type Processor struct {
	worldW float64
	worldH float64
}

// NewProcessor creates a processor for a world of the given size.
func NewProcessor(worldW, worldH float64) *Processor {
	return &Processor{worldW: worldW, worldH: worldH}
}

// Process implements engine.EntityProcessor.
func (p *Processor) Process(w *engine.World, dt float64) error {
	w.Each(entity.TypeAsteroid, func(e *entity.Entity) {
		if ad, ok := e.Asteroid(); ok {
			e.Radians += ad.RotationSpeed * dt
		}
		e.Integrate(dt)
		e.X = core.WrapMargin(e.X, e.Radius, p.worldW)
		e.Y = core.WrapMargin(e.Y, e.Radius, p.worldH)
	})
	return nil
}

var _ engine.EntityProcessor = (*Processor)(nil)
