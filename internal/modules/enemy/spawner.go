package enemy

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
// enemies.
type Pace func() (interval float64, max int)

// Spawner brings in a new enemy every interval while fewer than max are
// active. It only runs while its component is active.
type Spawner struct {
	lifecycle.NopHooks

	comp   *lifecycle.Component
	brain  *Brain
	rng    *rand.Rand
	logger *log.Logger
	margin float64
	worldW float64
	worldH float64

	interval float64
	max      int
	pace     Pace

	elapsed float64
}

// NewSpawner creates an enemy spawner with a fixed pace.
func NewSpawner(b *Brain, rng *rand.Rand, margin, worldW, worldH, interval float64, max int, logger *log.Logger) *Spawner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Spawner{
		brain:    b,
		rng:      rng,
		logger:   logger,
		margin:   margin,
		worldW:   worldW,
		worldH:   worldH,
		interval: interval,
		max:      max,
	}
	s.comp = lifecycle.New("enemy-spawner", s, logger)
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

// OnStart resets the spawn timer.
func (s *Spawner) OnStart() error {
	s.elapsed = 0
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

	if w.Count(entity.TypeEnemy) >= max {
		return nil
	}

	x, y := core.EdgePoint(s.rng, s.worldW, s.worldH, s.margin)
	w.Add(s.brain.New(x, y))
	s.logger.Debug("enemy spawned", "x", x, "y", y, "active", w.Count(entity.TypeEnemy))
	return nil
}

var _ engine.EntityProcessor = (*Spawner)(nil)
