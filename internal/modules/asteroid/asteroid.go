// Package asteroid implements the asteroid field: size classes, splitting,
// the initial field, motion and timed reinforcements.
package asteroid

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Next returns the size produced when an asteroid of size s splits.
// Small asteroids do not split.
func Next(s entity.AsteroidSize) (entity.AsteroidSize, bool) {
	switch s {
	case entity.SizeLarge:
		return entity.SizeMedium, true
	case entity.SizeMedium:
		return entity.SizeSmall, true
	default:
		return entity.SizeSmall, false
	}
}

// Factory creates asteroids and splits them. It owns the RNG used for
// headings and spin so that a seeded session is reproducible.
type Factory struct {
	rng        *rand.Rand
	sizes      map[entity.AsteroidSize]config.SizeConfig
	minSpin    float64
	maxSpin    float64
	speedScale float64
}

// NewFactory creates a factory for the given tuning.
func NewFactory(cfg config.AsteroidConfig, rng *rand.Rand) *Factory {
	return &Factory{
		rng: rng,
		sizes: map[entity.AsteroidSize]config.SizeConfig{
			entity.SizeLarge:  cfg.Large,
			entity.SizeMedium: cfg.Medium,
			entity.SizeSmall:  cfg.Small,
		},
		minSpin:    cfg.MinSpin,
		maxSpin:    cfg.MaxSpin,
		speedScale: 1,
	}
}

// SetSpeedScale multiplies the base speed of asteroids created from now on.
func (f *Factory) SetSpeedScale(scale float64) {
	if scale > 0 {
		f.speedScale = scale
	}
}

// Size returns the tuning for a size class.
func (f *Factory) Size(s entity.AsteroidSize) config.SizeConfig {
	return f.sizes[s]
}

// Points returns the score awarded for hitting an asteroid of each size.
func (f *Factory) Points() map[entity.AsteroidSize]int {
	return map[entity.AsteroidSize]int{
		entity.SizeLarge:  f.sizes[entity.SizeLarge].Points,
		entity.SizeMedium: f.sizes[entity.SizeMedium].Points,
		entity.SizeSmall:  f.sizes[entity.SizeSmall].Points,
	}
}

// New creates an asteroid of the given size at (x, y) with a random
// heading, velocity and spin.
func (f *Factory) New(size entity.AsteroidSize, x, y float64) *entity.Entity {
	sc := f.sizes[size]
	e := entity.New(entity.TypeAsteroid, x, y, sc.Radius)
	e.SetVelocity(f.rng.Float64()*2*math.Pi, sc.Speed*f.speedScale)
	e.Radians = f.rng.Float64() * 2 * math.Pi

	spin := f.minSpin + f.rng.Float64()*(f.maxSpin-f.minSpin)
	if f.rng.Intn(2) == 0 {
		spin = -spin
	}
	e.Data = &entity.AsteroidData{Size: size, RotationSpeed: spin}
	return e
}

// Split deactivates e and returns its fragments: Split-many asteroids of
// the next size at the parent position. Small asteroids return nil.
func (f *Factory) Split(e *entity.Entity) []*entity.Entity {
	e.Destroy()

	ad, ok := e.Asteroid()
	if !ok {
		return nil
	}
	next, ok := Next(ad.Size)
	if !ok {
		return nil
	}

	n := f.sizes[ad.Size].Split
	out := make([]*entity.Entity, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.New(next, e.X, e.Y))
	}
	return out
}
