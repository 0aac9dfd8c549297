// Package player implements the ship: spawning, input intents, flight
// physics and firing.
//
// The world y axis points up: a heading of Pi/2 faces the top of the
// screen and rotating left increases the heading.
package player

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// New creates a ship at (x, y) facing up.
func New(cfg config.PlayerConfig, weaponLevel int, x, y float64) *entity.Entity {
	e := entity.New(entity.TypePlayer, x, y, cfg.Radius)
	e.Radians = math.Pi / 2
	e.Data = &entity.PlayerData{
		Lives:       cfg.Lives,
		WeaponLevel: weaponLevel,
	}
	return e
}

// Plugin places the ship at the world center.
type Plugin struct {
	cfg         config.PlayerConfig
	weaponLevel int
	worldW      float64
	worldH      float64
	current     *entity.Entity
}

// NewPlugin creates the player plugin.
func NewPlugin(cfg config.PlayerConfig, weaponLevel int, worldW, worldH float64) *Plugin {
	return &Plugin{
		cfg:         cfg,
		weaponLevel: weaponLevel,
		worldW:      worldW,
		worldH:      worldH,
	}
}

// Start implements engine.EntitySource.
func (p *Plugin) Start() []*entity.Entity {
	p.current = New(p.cfg, p.weaponLevel, p.worldW/2, p.worldH/2)
	return []*entity.Entity{p.current}
}

// Stop implements engine.EntitySource.
func (p *Plugin) Stop() {
	if p.current != nil {
		p.current.Destroy()
		p.current = nil
	}
}

// Current returns the ship created by the last Start, or nil.
func (p *Plugin) Current() *entity.Entity {
	return p.current
}

var _ engine.EntitySource = (*Plugin)(nil)
