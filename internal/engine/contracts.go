// Package engine runs the per-frame simulation pipeline.
//
// A frame is: every EntityProcessor in registration order, then every
// PostProcessor in registration order, all against one shared World. Steps
// are isolated from each other: a failing step is logged and skipped and the
// rest of the frame still runs.
package engine

import "github.com/vovakirdan/tui-asteroids/internal/entity"

// EntitySource produces the entities a module initially owns.
// Start may be called again after Stop and must then return a fresh set.
type EntitySource interface {
	Start() []*entity.Entity
	Stop()
}

// EntityProcessor transforms the shared world once per frame.
// It may mutate any entity and append new ones; appended entities are seen
// by later processors and all post-processors within the same frame.
type EntityProcessor interface {
	Process(w *World, dt float64) error
}

// PostProcessor runs after every EntityProcessor of the frame.
type PostProcessor interface {
	PostProcess(w *World, dt float64) error
}

// ProcessorFunc adapts a function to EntityProcessor.
type ProcessorFunc func(w *World, dt float64) error

// Process calls f(w, dt).
func (f ProcessorFunc) Process(w *World, dt float64) error {
	return f(w, dt)
}

// PostProcessorFunc adapts a function to PostProcessor.
type PostProcessorFunc func(w *World, dt float64) error

// PostProcess calls f(w, dt).
func (f PostProcessorFunc) PostProcess(w *World, dt float64) error {
	return f(w, dt)
}
