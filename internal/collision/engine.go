// Package collision detects overlapping entities and dispatches them to
// handlers registered per unordered pair of type tags.
//
// Two entities collide when both are active and the distance between their
// centers is less than or equal to the sum of their radii. Touching circles
// collide.
package collision

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Result records one detected overlap.
// Resolved is true when a handler fired and applied its effects.
type Result struct {
	A, B     *entity.Entity
	Resolved bool
}

// Handler resolves a collision between a and b. The first argument always
// has the first type of the pair the handler was registered for.
type Handler func(a, b *entity.Entity) Result

// Engine is the collision post-processor.
type Engine struct {
	handlers    map[entity.Type]map[entity.Type]Handler
	autoProcess bool
	logger      *log.Logger

	pending []*entity.Entity // Spawned by handlers during a pass
	results []Result         // Results of the last PostProcess
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for handler failures.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithAutoProcess sets the initial autoProcess flag (default true).
func WithAutoProcess(on bool) Option {
	return func(e *Engine) {
		e.autoProcess = on
	}
}

// New creates an engine with no handlers and autoProcess enabled.
func New(opts ...Option) *Engine {
	e := &Engine{
		handlers:    make(map[entity.Type]map[entity.Type]Handler),
		autoProcess: true,
		logger:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Collides reports whether a and b are both active and overlap.
// Compares squared distance with the squared sum of radii.
func Collides(a, b *entity.Entity) bool {
	if !a.IsActive() || !b.IsActive() {
		return false
	}
	r := a.Radius + b.Radius
	return entity.Distance2(a, b) <= r*r
}

// AddHandler registers h for the pair (t1, t2). The reverse pair is
// registered too, with arguments swapped back before h is called.
// Registering an existing pair replaces it.
func (e *Engine) AddHandler(t1, t2 entity.Type, h Handler) {
	if h == nil {
		return
	}
	e.bucket(t1)[t2] = h
	if t1 != t2 {
		e.bucket(t2)[t1] = func(b, a *entity.Entity) Result {
			return h(a, b)
		}
	}
	e.logger.Debug("collision handler added", "type1", t1, "type2", t2)
}

// RemoveHandler removes the handler for (t1, t2) in both directions.
func (e *Engine) RemoveHandler(t1, t2 entity.Type) {
	if m, ok := e.handlers[t1]; ok {
		delete(m, t2)
	}
	if m, ok := e.handlers[t2]; ok {
		delete(m, t1)
	}
	e.logger.Debug("collision handler removed", "type1", t1, "type2", t2)
}

// HasHandler reports whether a handler is registered for (t1, t2).
func (e *Engine) HasHandler(t1, t2 entity.Type) bool {
	_, ok := e.handlers[t1][t2]
	return ok
}

// SetAutoProcess toggles handler dispatch. When off, Detect only records
// unresolved results.
func (e *Engine) SetAutoProcess(on bool) {
	e.autoProcess = on
}

// AutoProcess returns the current dispatch mode.
func (e *Engine) AutoProcess() bool {
	return e.autoProcess
}

// Spawn queues entities created by a handler. They are appended to the
// world by Flush, which PostProcess calls after each pass.
func (e *Engine) Spawn(es ...*entity.Entity) {
	for _, s := range es {
		if s != nil {
			e.pending = append(e.pending, s)
		}
	}
}

// Results returns the results of the last PostProcess pass.
func (e *Engine) Results() []Result {
	return e.results
}

// Process dispatches one pair to its handler.
// Returns false when either entity is untyped or no handler is registered.
func (e *Engine) Process(a, b *entity.Entity) (Result, bool) {
	if a.Untyped() || b.Untyped() {
		return Result{}, false
	}
	h, ok := e.handlers[a.Type][b.Type]
	if !ok {
		return Result{}, false
	}
	return h(a, b), true
}

// Detect checks every unordered pair (i < j) of entities.
// With autoProcess on, overlapping pairs with a handler are resolved and
// pairs without one are skipped. With autoProcess off, every overlap is
// recorded unresolved. A handler failure affects only its own pair.
func (e *Engine) Detect(entities []*entity.Entity) []Result {
	var results []Result

	for i := 0; i < len(entities); i++ {
		a := entities[i]
		if !a.IsActive() {
			continue
		}
		for j := i + 1; j < len(entities); j++ {
			// a may have been destroyed by an earlier pair
			if !a.IsActive() {
				break
			}
			b := entities[j]
			if !Collides(a, b) {
				continue
			}

			if !e.autoProcess {
				results = append(results, Result{A: a, B: b})
				continue
			}

			if r, ok := e.safeProcess(a, b); ok {
				results = append(results, r)
			}
		}
	}

	return results
}

// PostProcess runs Detect over the world and merges spawned entities,
// including those queued by Process calls made since the last pass.
func (e *Engine) PostProcess(w *engine.World, _ float64) error {
	e.results = e.Detect(w.Entities())
	e.Flush(w)
	return nil
}

// Flush appends the entities queued by handlers to w and returns how many
// were added. Callers resolving detect-only results with Process use it to
// merge fragments without waiting for the next pass.
func (e *Engine) Flush(w *engine.World) int {
	n := len(e.pending)
	if n == 0 {
		return 0
	}
	w.Add(e.pending...)
	clear(e.pending)
	e.pending = e.pending[:0]
	return n
}

// safeProcess is Process with panic isolation.
func (e *Engine) safeProcess(a, b *entity.Entity) (r Result, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			e.logger.Warn("collision handler failed",
				"type1", a.Type, "type2", b.Type,
				"err", fmt.Sprint(rec),
			)
			r, ok = Result{}, false
		}
	}()
	return e.Process(a, b)
}

func (e *Engine) bucket(t entity.Type) map[entity.Type]Handler {
	m, ok := e.handlers[t]
	if !ok {
		m = make(map[entity.Type]Handler)
		e.handlers[t] = m
	}
	return m
}

var _ engine.PostProcessor = (*Engine)(nil)
