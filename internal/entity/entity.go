// Package entity defines the unit of simulation shared by every module.
// An Entity is a plain record: kinematics, an active flag, a type tag and a
// typed payload. Processors switch on the tag and read the payload through
// the typed accessors instead of relying on a class hierarchy.
package entity

import (
	"math"

	"github.com/google/uuid"
)

// Type is the tag that drives render dispatch and collision-handler lookup.
type Type string

// Known entity types. The set is open; modules may introduce their own tags.
const (
	TypeNone       Type = ""
	TypePlayer     Type = "player"
	TypeEnemy      Type = "enemy"
	TypeAsteroid   Type = "asteroid"
	TypeProjectile Type = "projectile"
)

// Entity is a mutable positional and state record.
// Inactive entities are logically destroyed and must be ignored by
// processors and collision checks even while they still occupy a list slot.
type Entity struct {
	ID uuid.UUID // Assigned once by New, never reassigned

	X, Y    float64 // Center position in world units
	DX, DY  float64 // Velocity in world units per second
	Radians float64 // Heading
	Radius  float64 // Bounding circle radius

	Active bool
	Type   Type
	Data   Payload // Type-specific state, may be nil
}

// New creates an active entity with a fresh id.
func New(t Type, x, y, radius float64) *Entity {
	return &Entity{
		ID:     uuid.New(),
		X:      x,
		Y:      y,
		Radius: radius,
		Active: true,
		Type:   t,
	}
}

// Destroy marks the entity as logically removed.
func (e *Entity) Destroy() {
	e.Active = false
}

// IsActive reports whether the entity is non-nil and active.
func (e *Entity) IsActive() bool {
	return e != nil && e.Active
}

// Is reports whether the entity is active and carries the given tag.
func (e *Entity) Is(t Type) bool {
	return e.IsActive() && e.Type == t
}

// Untyped reports whether the entity has no type tag.
func (e *Entity) Untyped() bool {
	return e.Type == TypeNone
}

// Speed returns the magnitude of the velocity vector.
func (e *Entity) Speed() float64 {
	return math.Hypot(e.DX, e.DY)
}

// SetVelocity sets velocity from a heading and speed.
func (e *Entity) SetVelocity(angle, speed float64) {
	e.DX = math.Cos(angle) * speed
	e.DY = math.Sin(angle) * speed
}

// Integrate advances the position by the current velocity.
func (e *Entity) Integrate(dt float64) {
	e.X += e.DX * dt
	e.Y += e.DY * dt
}

// LimitSpeed scales velocity down so its magnitude does not exceed max.
func (e *Entity) LimitSpeed(max float64) {
	sq := e.DX*e.DX + e.DY*e.DY
	if sq > max*max {
		f := max / math.Sqrt(sq)
		e.DX *= f
		e.DY *= f
	}
}

// Distance2 returns the squared distance between two entity centers.
func Distance2(a, b *Entity) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
