package asteroid

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
	"github.com/vovakirdan/tui-asteroids/internal/lifecycle"
)

// Pace reports the current spawn interval in seconds and the cap on active
// asteroids. Sessions use it to tie reinforcements to difficulty.
type Pace func() (interval float64, max int)

// Spawner adds a large asteroid at a world edge every interval while fewer
// than max asteroids are active. It only runs while its component is active.
type Spawner struct {
	lifecycle.NopHooks

	comp    *lifecycle.Component
	factory *Factory
	rng     *rand.Rand
	logger  *log.Logger
	worldW  float64
	worldH  float64

	interval float64
	max      int
	pace     Pace

	elapsed float64
	spawned int
}

// NewSpawner creates a spawner with a fixed pace.
func NewSpawner(f *Factory, rng *rand.Rand, worldW, worldH, interval float64, max int, logger *log.Logger) *Spawner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Spawner{
		factory:  f,
		rng:      rng,
		logger:   logger,
		worldW:   worldW,
		worldH:   worldH,
		interval: interval,
		max:      max,
	}
	s.comp = lifecycle.New("asteroid-spawner", s, logger)
	return s
}

// SetPace replaces the fixed interval and cap with a dynamic source.
func (s *Spawner) SetPace(p Pace) {
	s.pace = p
}

// Component returns the lifecycle controller of the spawner.
func (s *Spawner) Component() *lifecycle.Component {
	return s.comp
}

// Spawned returns how many asteroids the spawner added since it started.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// OnStart resets the spawn timer.
func (s *Spawner) OnStart() error {
	s.elapsed = 0
	s.spawned = 0
	return nil
}

// Process implements engine.EntityProcessor.
func (s *Spawner) Process(w *engine.World, dt float64) error {
	if !s.comp.IsActive() {
		return nil
	}

	interval, max := s.interval, s.max
	if s.pace != nil {
		interval, max = s.pace()
	}

	s.elapsed += dt
	if s.elapsed < interval {
		return nil
	}
	s.elapsed = 0

	if w.Count(entity.TypeAsteroid) >= max {
		return nil
	}

	x, y := core.EdgePoint(s.rng, s.worldW, s.worldH, 0)
	w.Add(s.factory.New(entity.SizeLarge, x, y))
	s.spawned++
	s.logger.Debug("asteroid spawned", "x", x, "y", y, "active", w.Count(entity.TypeAsteroid))
	return nil
}

var _ engine.EntityProcessor = (*Spawner)(nil)
