package engine

import (
	"slices"

	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// World holds the authoritative entity list for a session.
// Growth during a frame is append-only; removal is modeled as
// entity.Active = false and compaction happens only between frames.
type World struct {
	entities []*entity.Entity
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{}
}

// Len returns the number of entity slots, active or not.
func (w *World) Len() int {
	return len(w.entities)
}

// At returns the entity in slot i.
func (w *World) At(i int) *entity.Entity {
	return w.entities[i]
}

// Entities returns the backing list. Callers must treat it as read-only;
// it is the view handed to renderers.
func (w *World) Entities() []*entity.Entity {
	return w.entities
}

// Add appends entities, ignoring nil values.
func (w *World) Add(es ...*entity.Entity) {
	for _, e := range es {
		if e != nil {
			w.entities = append(w.entities, e)
		}
	}
}

// Each calls fn for every active entity with the given tag, including
// entities appended by fn itself.
func (w *World) Each(t entity.Type, fn func(e *entity.Entity)) {
	for i := 0; i < len(w.entities); i++ {
		if e := w.entities[i]; e.Is(t) {
			fn(e)
		}
	}
}

// First returns the first active entity with the given tag, or nil.
func (w *World) First(t entity.Type) *entity.Entity {
	for _, e := range w.entities {
		if e.Is(t) {
			return e
		}
	}
	return nil
}

// Count returns the number of active entities with the given tag.
func (w *World) Count(t entity.Type) int {
	n := 0
	for _, e := range w.entities {
		if e.Is(t) {
			n++
		}
	}
	return n
}

// ActiveCount returns the number of active entities of any type.
func (w *World) ActiveCount() int {
	n := 0
	for _, e := range w.entities {
		if e.IsActive() {
			n++
		}
	}
	return n
}

// Compact drops inactive entities and returns how many were removed.
// Must only be called at a frame boundary.
func (w *World) Compact() int {
	before := len(w.entities)
	w.entities = slices.DeleteFunc(w.entities, func(e *entity.Entity) bool {
		return !e.IsActive()
	})
	return before - len(w.entities)
}

// Clear removes every entity.
func (w *World) Clear() {
	clear(w.entities)
	w.entities = w.entities[:0]
}
