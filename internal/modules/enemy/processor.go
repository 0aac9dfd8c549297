package enemy

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Processor runs the enemy AI and moves every enemy.
type Processor struct {
	brain  *Brain
	worldW float64
	worldH float64
}

// NewProcessor creates the enemy processor.
func NewProcessor(b *Brain, worldW, worldH float64) *Processor {
	return &Processor{brain: b, worldW: worldW, worldH: worldH}
}

// Process implements engine.EntityProcessor.
func (p *Processor) Process(w *engine.World, dt float64) error {
	target := w.First(entity.TypePlayer)

	w.Each(entity.TypeEnemy, func(e *entity.Entity) {
		ed, ok := e.Enemy()
		if !ok {
			return
		}

		if target != nil {
			p.brain.Track(e, ed, target.X, target.Y)
			p.brain.Tick(e, ed, dt)
			if ed.State == entity.StateHunting {
				p.brain.Steer(e, ed, dt)
			}
		} else {
			ed.State = entity.StateWandering
			ed.HasTarget = false
			p.brain.Tick(e, ed, dt)
		}

		p.brain.Thrust(e, ed, dt)
		e.Integrate(dt)
		e.X = core.Wrap(e.X, p.worldW)
		e.Y = core.Wrap(e.Y, p.worldH)
	})
	return nil
}

var _ engine.EntityProcessor = (*Processor)(nil)
