package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// Manager orchestrates sources, processors and post-processors over one World.
type Manager struct {
	world          *World
	sources        []EntitySource
	processors     []EntityProcessor
	postProcessors []PostProcessor
	logger         *log.Logger

	frame        uint64
	compactEvery uint64
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for step failures.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithCompaction sweeps inactive entities every n frames (0 disables).
func WithCompaction(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.compactEvery = uint64(n)
		}
	}
}

// NewManager creates a manager with an empty world.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		world:  NewWorld(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AddSource registers an entity source. Order of registration is preserved.
func (m *Manager) AddSource(s EntitySource) {
	if s != nil {
		m.sources = append(m.sources, s)
	}
}

// AddProcessor registers an entity processor.
func (m *Manager) AddProcessor(p EntityProcessor) {
	if p != nil {
		m.processors = append(m.processors, p)
	}
}

// AddPostProcessor registers a post-processor.
func (m *Manager) AddPostProcessor(p PostProcessor) {
	if p != nil {
		m.postProcessors = append(m.postProcessors, p)
	}
}

// World returns the shared world.
func (m *Manager) World() *World {
	return m.world
}

// Entities returns the shared entity list for read-only iteration.
func (m *Manager) Entities() []*entity.Entity {
	return m.world.Entities()
}

// Frame returns the number of completed Update calls.
func (m *Manager) Frame() uint64 {
	return m.frame
}

// AddEntity appends e to the shared list. Nil is ignored.
func (m *Manager) AddEntity(e *entity.Entity) {
	m.world.Add(e)
}

// Initialize starts every source and appends the entities it returns.
// A panicking source is logged and skipped; the others still start.
func (m *Manager) Initialize() error {
	var errs []error
	for i, src := range m.sources {
		err := guard(func() error {
			m.world.Add(src.Start()...)
			return nil
		})
		if err != nil {
			m.logger.Error("source start failed", "index", i, "source", fmt.Sprintf("%T", src), "err", err)
			errs = append(errs, fmt.Errorf("engine: source %d: %w", i, err))
		}
	}
	m.logger.Info("initialized", "sources", len(m.sources), "entities", m.world.Len())
	return errors.Join(errs...)
}

// Update runs one frame: processors, then post-processors.
// Step failures are logged and joined into the returned error; they never
// prevent later steps from running.
func (m *Manager) Update(dt float64) error {
	var errs []error

	for i, p := range m.processors {
		if err := guard(func() error { return p.Process(m.world, dt) }); err != nil {
			m.logger.Warn("processor failed", "index", i, "processor", fmt.Sprintf("%T", p), "err", err)
			errs = append(errs, fmt.Errorf("engine: processor %d: %w", i, err))
		}
	}

	for i, p := range m.postProcessors {
		if err := guard(func() error { return p.PostProcess(m.world, dt) }); err != nil {
			m.logger.Warn("post-processor failed", "index", i, "processor", fmt.Sprintf("%T", p), "err", err)
			errs = append(errs, fmt.Errorf("engine: post-processor %d: %w", i, err))
		}
	}

	m.frame++
	if m.compactEvery > 0 && m.frame%m.compactEvery == 0 {
		if n := m.world.Compact(); n > 0 {
			m.logger.Debug("compacted world", "removed", n, "remaining", m.world.Len())
		}
	}

	return errors.Join(errs...)
}

// Shutdown stops every source and clears the shared list.
func (m *Manager) Shutdown() {
	for i, src := range m.sources {
		err := guard(func() error {
			src.Stop()
			return nil
		})
		if err != nil {
			m.logger.Error("source stop failed", "index", i, "err", err)
		}
	}
	m.world.Clear()
	m.frame = 0
}

// guard runs fn and turns a panic into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}
