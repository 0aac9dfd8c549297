// Package registry provides an explicit, instance-owned registry of game
// modules. Modules are registered at startup with concrete instances; the
// pipeline order is (Priority, Name) ascending and never depends on
// discovery order.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/lifecycle"
)

// ErrDuplicate is returned when a module name is registered twice.
var ErrDuplicate = errors.New("registry: module already registered")

// Module is everything one module contributes to the game.
// Every field except Name is optional.
type Module struct {
	// Name uniquely identifies the module (e.g., "asteroid", "enemy").
	Name string

	// Priority orders modules in the pipeline, lower first.
	// Modules with equal priority are ordered by Name.
	Priority int

	// Source produces the module's initial entities.
	Source engine.EntitySource

	// Processors run every frame in the order listed here.
	Processors []engine.EntityProcessor

	// PostProcessors run after all processors of the frame.
	PostProcessors []engine.PostProcessor

	// Component is the module's lifecycle descriptor.
	Component *lifecycle.Component
}

// Info contains display metadata about a registered module.
type Info struct {
	Name           string
	Priority       int
	HasSource      bool
	Processors     int
	PostProcessors int
}

// Registry holds modules for one game session.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Module
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{modules: make(map[string]Module)}
}

// Register adds a module. Returns ErrDuplicate if the name is taken.
func (r *Registry) Register(m Module) error {
	if m.Name == "" {
		return errors.New("registry: module name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[m.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, m.Name)
	}
	r.modules[m.Name] = m
	return nil
}

// MustRegister is like Register but panics on error.
// Intended for static wiring where a duplicate is a programming error.
func (r *Registry) MustRegister(m Module) {
	if err := r.Register(m); err != nil {
		panic(err)
	}
}

// List returns all modules in pipeline order.
func (r *Registry) List() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Module, 0, len(r.modules))
	for _, m := range r.modules {
		result = append(result, m)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Priority != result[j].Priority {
			return result[i].Priority < result[j].Priority
		}
		return result[i].Name < result[j].Name
	})

	return result
}

// Infos returns display metadata for all modules in pipeline order.
func (r *Registry) Infos() []Info {
	mods := r.List()
	infos := make([]Info, len(mods))
	for i, m := range mods {
		infos[i] = Info{
			Name:           m.Name,
			Priority:       m.Priority,
			HasSource:      m.Source != nil,
			Processors:     len(m.Processors),
			PostProcessors: len(m.PostProcessors),
		}
	}
	return infos
}

// Get returns the module with the given name.
func (r *Registry) Get(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.modules[name]
	return m, ok
}

// Exists checks if a module with the given name is registered.
func (r *Registry) Exists(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns module names in pipeline order.
func (r *Registry) Names() []string {
	mods := r.List()
	names := make([]string, len(mods))
	for i, m := range mods {
		names[i] = m.Name
	}
	return names
}

// Sources returns every entity source in pipeline order.
func (r *Registry) Sources() []engine.EntitySource {
	var out []engine.EntitySource
	for _, m := range r.List() {
		if m.Source != nil {
			out = append(out, m.Source)
		}
	}
	return out
}

// Processors returns every processor in pipeline order.
func (r *Registry) Processors() []engine.EntityProcessor {
	var out []engine.EntityProcessor
	for _, m := range r.List() {
		out = append(out, m.Processors...)
	}
	return out
}

// PostProcessors returns every post-processor in pipeline order.
func (r *Registry) PostProcessors() []engine.PostProcessor {
	var out []engine.PostProcessor
	for _, m := range r.List() {
		out = append(out, m.PostProcessors...)
	}
	return out
}

// Components returns every lifecycle component in pipeline order.
func (r *Registry) Components() lifecycle.Group {
	var out lifecycle.Group
	for _, m := range r.List() {
		if m.Component != nil {
			out = append(out, m.Component)
		}
	}
	return out
}

// Install registers every source, processor and post-processor with the
// manager in pipeline order.
func (r *Registry) Install(mgr *engine.Manager) {
	for _, m := range r.List() {
		mgr.AddSource(m.Source)
		for _, p := range m.Processors {
			mgr.AddProcessor(p)
		}
		for _, p := range m.PostProcessors {
			mgr.AddPostProcessor(p)
		}
	}
}
