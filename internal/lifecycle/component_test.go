package lifecycle

import (
	"errors"
	"testing"
)

// recordingHooks counts hook calls and can be told to fail.
type recordingHooks struct {
	name  string
	calls *[]string

	initErr, startErr, stopErr, disposeErr error
}

func (h *recordingHooks) record(op string) {
	if h.calls != nil {
		*h.calls = append(*h.calls, h.name+"."+op)
	}
}

func (h *recordingHooks) OnInit() error    { h.record("init"); return h.initErr }
func (h *recordingHooks) OnStart() error   { h.record("start"); return h.startErr }
func (h *recordingHooks) OnStop() error    { h.record("stop"); return h.stopErr }
func (h *recordingHooks) OnDispose() error { h.record("dispose"); return h.disposeErr }

func newRecorded(name string, calls *[]string) (*Component, *recordingHooks) {
	h := &recordingHooks{name: name, calls: calls}
	return New(name, h, nil), h
}

func equalCalls(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestStartFromUninitialized(t *testing.T) {
	var calls []string
	c, _ := newRecorded("asteroids", &calls)

	if c.State() != StateUninitialized {
		t.Fatalf("initial state = %v", c.State())
	}

	if err := c.Start(); err != nil {
		t.Fatalf("Start() failed: %v", err)
	}

	if c.State() != StateActive {
		t.Errorf("State() = %v, expected active", c.State())
	}
	if !c.IsInitialized() {
		t.Error("expected component to be initialized")
	}
	if want := []string{"asteroids.init", "asteroids.start"}; !equalCalls(calls, want) {
		t.Errorf("calls = %v, expected %v", calls, want)
	}
}

func TestStopTwiceIsNoop(t *testing.T) {
	var calls []string
	c, _ := newRecorded("enemy", &calls)

	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	if err := c.Stop(); err != nil {
		t.Fatal(err)
	}
	if err := c.Stop(); err != nil {
		t.Fatalf("second Stop() returned error: %v", err)
	}

	stops := 0
	for _, call := range calls {
		if call == "enemy.stop" {
			stops++
		}
	}
	if stops != 1 {
		t.Errorf("OnStop called %d times, expected 1", stops)
	}
	if c.State() != StateStopped {
		t.Errorf("State() = %v, expected stopped", c.State())
	}
}

func TestDisposeAfterStopDoesNotStopAgain(t *testing.T) {
	var calls []string
	c, _ := newRecorded("player", &calls)

	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	if err := c.Stop(); err != nil {
		t.Fatal(err)
	}
	calls = nil

	if err := c.Dispose(); err != nil {
		t.Fatalf("Dispose() failed: %v", err)
	}

	if want := []string{"player.dispose"}; !equalCalls(calls, want) {
		t.Errorf("calls = %v, expected %v", calls, want)
	}
	if c.State() != StateDisposed || c.IsInitialized() {
		t.Errorf("State() = %v initialized=%v", c.State(), c.IsInitialized())
	}
}

func TestDisposeActiveStopsFirst(t *testing.T) {
	var calls []string
	c, _ := newRecorded("spawner", &calls)
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	calls = nil

	if err := c.Dispose(); err != nil {
		t.Fatal(err)
	}
	if want := []string{"spawner.stop", "spawner.dispose"}; !equalCalls(calls, want) {
		t.Errorf("calls = %v, expected %v", calls, want)
	}

	// Second dispose is a no-op
	calls = nil
	if err := c.Dispose(); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 0 {
		t.Errorf("second Dispose() ran hooks: %v", calls)
	}
}

func TestReinitAfterDispose(t *testing.T) {
	c, _ := newRecorded("asteroids", nil)
	if err := c.Start(); err != nil {
		t.Fatal(err)
	}
	if err := c.Dispose(); err != nil {
		t.Fatal(err)
	}
	if err := c.Start(); err != nil {
		t.Fatalf("restart after dispose failed: %v", err)
	}
	if c.State() != StateActive || c.IsDisposed() {
		t.Errorf("State() = %v disposed=%v", c.State(), c.IsDisposed())
	}
}

func TestDependenciesStartFirstAndAreNotStopped(t *testing.T) {
	var calls []string
	weapon, _ := newRecorded("weapon", &calls)
	player, _ := newRecorded("player", &calls)

	if err := player.AddDependency(weapon); err != nil {
		t.Fatal(err)
	}

	if err := player.Start(); err != nil {
		t.Fatal(err)
	}

	want := []string{"weapon.init", "player.init", "weapon.start", "player.start"}
	if !equalCalls(calls, want) {
		t.Errorf("calls = %v, expected %v", calls, want)
	}

	if err := player.Stop(); err != nil {
		t.Fatal(err)
	}
	if !weapon.IsActive() {
		t.Error("dependency should stay active after dependent stops")
	}
}

func TestAlreadyActiveDependencyIsSkipped(t *testing.T) {
	var calls []string
	weapon, _ := newRecorded("weapon", &calls)
	player, _ := newRecorded("player", &calls)
	_ = player.AddDependency(weapon)

	if err := weapon.Start(); err != nil {
		t.Fatal(err)
	}
	calls = nil

	if err := player.Start(); err != nil {
		t.Fatal(err)
	}
	want := []string{"player.init", "player.start"}
	if !equalCalls(calls, want) {
		t.Errorf("calls = %v, expected %v", calls, want)
	}
}

func TestAddDependency(t *testing.T) {
	a, _ := newRecorded("a", nil)
	b, _ := newRecorded("b", nil)
	c, _ := newRecorded("c", nil)

	if err := a.AddDependency(nil); !errors.Is(err, ErrNilDependency) {
		t.Errorf("AddDependency(nil) = %v, expected ErrNilDependency", err)
	}

	if err := a.AddDependency(b); err != nil {
		t.Fatal(err)
	}
	if err := a.AddDependency(b); err != nil {
		t.Fatalf("duplicate dependency returned error: %v", err)
	}
	if len(a.Dependencies()) != 1 {
		t.Errorf("expected 1 dependency, got %d", len(a.Dependencies()))
	}

	if err := b.AddDependency(c); err != nil {
		t.Fatal(err)
	}
	if err := c.AddDependency(a); !errors.Is(err, ErrDependencyCycle) {
		t.Errorf("cycle c->a = %v, expected ErrDependencyCycle", err)
	}
	if err := a.AddDependency(a); !errors.Is(err, ErrDependencyCycle) {
		t.Errorf("self dependency = %v, expected ErrDependencyCycle", err)
	}

	a.RemoveDependency(b)
	if len(a.Dependencies()) != 0 {
		t.Error("RemoveDependency did not remove")
	}
}

func TestHookErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	c, h := newRecorded("broken", nil)
	h.startErr = boom

	err := c.Start()
	if !errors.Is(err, boom) {
		t.Fatalf("Start() = %v, expected wrapped boom", err)
	}

	var lerr *Error
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if lerr.Component != "broken" || lerr.Op != "start" {
		t.Errorf("Error = %+v", lerr)
	}
	if c.IsActive() {
		t.Error("failed start must not mark component active")
	}
	if !c.IsInitialized() {
		t.Error("init succeeded and should remain recorded")
	}
}

func TestSetActive(t *testing.T) {
	var calls []string
	c, _ := newRecorded("x", &calls)

	if err := c.SetActive(false); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 0 {
		t.Errorf("SetActive(false) on inactive ran hooks: %v", calls)
	}

	if err := c.SetActive(true); err != nil {
		t.Fatal(err)
	}
	calls = nil
	if err := c.SetActive(true); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 0 {
		t.Errorf("SetActive(true) on active ran hooks: %v", calls)
	}

	if err := c.SetActive(false); err != nil {
		t.Fatal(err)
	}
	if c.IsActive() {
		t.Error("expected inactive")
	}
}

func TestGroupIsolatesFailures(t *testing.T) {
	var calls []string
	good1, _ := newRecorded("good1", &calls)
	bad, h := newRecorded("bad", &calls)
	good2, _ := newRecorded("good2", &calls)
	h.startErr = errors.New("cannot start")

	g := Group{good1, bad, good2}
	err := g.StartAll()
	if err == nil {
		t.Fatal("expected joined error")
	}
	if !good1.IsActive() || !good2.IsActive() {
		t.Error("siblings of a failing component should still start")
	}
	if bad.IsActive() {
		t.Error("failing component should not be active")
	}

	calls = nil
	if err := g.StopAll(); err != nil {
		t.Fatalf("StopAll() = %v", err)
	}
	want := []string{"good2.stop", "good1.stop"}
	if !equalCalls(calls, want) {
		t.Errorf("calls = %v, expected %v", calls, want)
	}
}

// panickingHooks panics in the named transition.
type panickingHooks struct {
	NopHooks
	on string
}

func (h panickingHooks) OnStart() error {
	if h.on == "start" {
		panic("start exploded")
	}
	return nil
}

func (h panickingHooks) OnStop() error {
	if h.on == "stop" {
		panic("stop exploded")
	}
	return nil
}

func TestGroupIsolatesPanics(t *testing.T) {
	var calls []string
	first, _ := newRecorded("first", &calls)
	startPanics := New("start-panics", panickingHooks{on: "start"}, nil)
	stopPanics := New("stop-panics", panickingHooks{on: "stop"}, nil)
	last, _ := newRecorded("last", &calls)

	g := Group{first, startPanics, stopPanics, last}
	err := g.StartAll()

	var lerr *Error
	if !errors.As(err, &lerr) {
		t.Fatalf("StartAll() = %v, expected *Error", err)
	}
	if lerr.Component != "start-panics" || lerr.Op != "start" {
		t.Errorf("Error = %+v", lerr)
	}
	if !first.IsActive() || !stopPanics.IsActive() || !last.IsActive() {
		t.Error("siblings of a panicking component should still start")
	}
	if startPanics.IsActive() {
		t.Error("panicking component should not be active")
	}

	calls = nil
	err = g.StopAll()
	if !errors.As(err, &lerr) || lerr.Op != "stop" || lerr.Component != "stop-panics" {
		t.Fatalf("StopAll() = %v, expected stop error from stop-panics", err)
	}
	want := []string{"last.stop", "first.stop"}
	if !equalCalls(calls, want) {
		t.Errorf("calls = %v, expected %v", calls, want)
	}
	if !stopPanics.IsActive() {
		t.Error("a failed stop leaves the component active")
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateUninitialized, "uninitialized"},
		{StateInitialized, "initialized"},
		{StateActive, "active"},
		{StateStopped, "stopped"},
		{StateDisposed, "disposed"},
		{State(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.state.String(); got != tc.expected {
			t.Errorf("State(%d).String() = %q, expected %q", tc.state, got, tc.expected)
		}
	}
}
