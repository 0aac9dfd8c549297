// Package lifecycle implements the per-module component state machine.
//
// A Component moves through Uninitialized -> Initialized -> Active ->
// Stopped -> Disposed. Start and Init bring not-yet-active dependencies up
// first; Stop never touches dependencies. Errors from module hooks are
// logged, wrapped in *Error and returned so the caller can keep going with
// sibling modules.
package lifecycle

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
)

// State is the externally visible lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateInitialized
	StateActive
	StateStopped
	StateDisposed
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateInitialized:
		return "initialized"
	case StateActive:
		return "active"
	case StateStopped:
		return "stopped"
	case StateDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

var (
	// ErrNilDependency is returned when adding a nil dependency.
	ErrNilDependency = errors.New("lifecycle: dependency cannot be nil")
	// ErrDependencyCycle is returned when a dependency would create a cycle.
	ErrDependencyCycle = errors.New("lifecycle: dependency cycle")
)

// Error wraps a failure of one lifecycle transition of one component.
type Error struct {
	Component string
	Op        string
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("lifecycle: %s %s: %v", e.Op, e.Component, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Hooks is the module-specific part of a component.
type Hooks interface {
	OnInit() error
	OnStart() error
	OnStop() error
	OnDispose() error
}

// NopHooks implements Hooks with no-ops. Embed it to override selectively.
type NopHooks struct{}

func (NopHooks) OnInit() error    { return nil }
func (NopHooks) OnStart() error   { return nil }
func (NopHooks) OnStop() error    { return nil }
func (NopHooks) OnDispose() error { return nil }

// Component is a lifecycle-managed module.
type Component struct {
	name   string
	hooks  Hooks
	logger *log.Logger
	deps   []*Component

	initialized bool
	active      bool
	stopped     bool
	disposed    bool
}

// New creates a component. A nil hooks value behaves like NopHooks and a
// nil logger discards output.
func New(name string, hooks Hooks, logger *log.Logger) *Component {
	if hooks == nil {
		hooks = NopHooks{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Component{
		name:   name,
		hooks:  hooks,
		logger: logger.With("component", name),
	}
}

// Name returns the component name.
func (c *Component) Name() string { return c.name }

// IsInitialized reports whether Init has completed since the last Dispose.
func (c *Component) IsInitialized() bool { return c.initialized }

// IsActive reports whether the component is started.
func (c *Component) IsActive() bool { return c.active }

// IsDisposed reports whether the component has been disposed.
func (c *Component) IsDisposed() bool { return c.disposed }

// State returns the current lifecycle state.
func (c *Component) State() State {
	switch {
	case c.active:
		return StateActive
	case c.disposed:
		return StateDisposed
	case c.initialized && c.stopped:
		return StateStopped
	case c.initialized:
		return StateInitialized
	default:
		return StateUninitialized
	}
}

// Dependencies returns a copy of the dependency list in insertion order.
func (c *Component) Dependencies() []*Component {
	return slices.Clone(c.deps)
}

// AddDependency appends dep to the dependency list.
// Adding the same dependency twice is a no-op.
func (c *Component) AddDependency(dep *Component) error {
	if dep == nil {
		return ErrNilDependency
	}
	if slices.Contains(c.deps, dep) {
		return nil
	}
	if dep == c || dep.dependsOn(c) {
		return fmt.Errorf("%w: %s -> %s", ErrDependencyCycle, c.name, dep.name)
	}
	c.deps = append(c.deps, dep)
	return nil
}

// RemoveDependency removes dep if present.
func (c *Component) RemoveDependency(dep *Component) {
	c.deps = slices.DeleteFunc(c.deps, func(d *Component) bool { return d == dep })
}

// dependsOn reports whether target is reachable through the dependency graph.
func (c *Component) dependsOn(target *Component) bool {
	for _, d := range c.deps {
		if d == target || d.dependsOn(target) {
			return true
		}
	}
	return false
}

// Init initializes not-yet-active dependencies and then the component.
func (c *Component) Init() error {
	if c.initialized {
		c.logger.Warn("already initialized")
		return nil
	}

	for _, dep := range c.deps {
		if dep.active || dep.initialized {
			continue
		}
		if err := dep.Init(); err != nil {
			return c.fail("init", fmt.Errorf("dependency %s: %w", dep.name, err))
		}
	}

	if err := runHook(c.hooks.OnInit); err != nil {
		return c.fail("init", err)
	}

	c.initialized = true
	c.disposed = false
	c.logger.Debug("initialized")
	return nil
}

// Start initializes if needed, starts not-yet-active dependencies and then
// the component.
func (c *Component) Start() error {
	if !c.initialized {
		if err := c.Init(); err != nil {
			return err
		}
	}
	if c.active {
		c.logger.Warn("already active")
		return nil
	}

	for _, dep := range c.deps {
		if dep.active {
			continue
		}
		if err := dep.Start(); err != nil {
			return c.fail("start", fmt.Errorf("dependency %s: %w", dep.name, err))
		}
	}

	if err := runHook(c.hooks.OnStart); err != nil {
		return c.fail("start", err)
	}

	c.active = true
	c.stopped = false
	c.logger.Debug("started")
	return nil
}

// Stop stops the component. Dependencies are left running.
func (c *Component) Stop() error {
	if !c.active {
		c.logger.Warn("not active")
		return nil
	}

	if err := runHook(c.hooks.OnStop); err != nil {
		return c.fail("stop", err)
	}

	c.active = false
	c.stopped = true
	c.logger.Debug("stopped")
	return nil
}

// Dispose stops the component if needed and releases it.
// A disposed component is also uninitialized and may be initialized again.
func (c *Component) Dispose() error {
	if c.disposed {
		c.logger.Warn("already disposed")
		return nil
	}

	if c.active {
		if err := c.Stop(); err != nil {
			return err
		}
	}

	if err := runHook(c.hooks.OnDispose); err != nil {
		return c.fail("dispose", err)
	}

	c.disposed = true
	c.initialized = false
	c.stopped = false
	c.logger.Debug("disposed")
	return nil
}

// SetActive starts or stops the component only on a state change.
func (c *Component) SetActive(active bool) error {
	if active == c.active {
		return nil
	}
	if active {
		return c.Start()
	}
	return c.Stop()
}

// runHook calls one hook and turns a panic into an error.
func runHook(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn()
}

// fail logs and wraps a hook error.
func (c *Component) fail(op string, err error) error {
	var lerr *Error
	if errors.As(err, &lerr) && lerr.Component == c.name {
		return err
	}
	c.logger.Error(op+" failed", "err", err)
	return &Error{Component: c.name, Op: op, Err: err}
}
