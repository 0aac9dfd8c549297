package player

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Controller copies the front end's input frame onto the intents of every
// ship. Register it ahead of the player Processor.
type Controller struct {
	frame core.InputFrame
}

// NewController creates a controller with no actions held.
func NewController() *Controller {
	return &Controller{frame: core.NewInputFrame()}
}

// Set replaces the input frame applied on the next Process.
func (c *Controller) Set(frame core.InputFrame) {
	c.frame = frame
}

// Apply writes the intents of frame onto e. Entities without a player
// payload are left untouched.
func Apply(e *entity.Entity, frame core.InputFrame) {
	pd, ok := e.Player()
	if !ok {
		return
	}
	pd.Accelerating = frame.Has(core.ActionThrust)
	pd.RotatingLeft = frame.Has(core.ActionRotateLeft)
	pd.RotatingRight = frame.Has(core.ActionRotateRight)
	pd.Firing = frame.Has(core.ActionFire)
}

// Process implements engine.EntityProcessor.
func (c *Controller) Process(w *engine.World, _ float64) error {
	w.Each(entity.TypePlayer, func(e *entity.Entity) {
		Apply(e, c.frame)
	})
	return nil
}

var _ engine.EntityProcessor = (*Controller)(nil)
