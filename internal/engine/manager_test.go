package engine

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

// stubSource returns a fixed number of fresh asteroids and tracks them.
type stubSource struct {
	n       int
	owned   []*entity.Entity
	starts  int
	stops   int
	explode bool
}

func (s *stubSource) Start() []*entity.Entity {
	s.starts++
	if s.explode {
		panic("source exploded")
	}
	s.owned = nil
	for i := 0; i < s.n; i++ {
		s.owned = append(s.owned, entity.New(entity.TypeAsteroid, float64(i*100), 0, 8))
	}
	return s.owned
}

func (s *stubSource) Stop() {
	s.stops++
	for _, e := range s.owned {
		e.Destroy()
	}
}

func TestInitializeAppendsSourceEntities(t *testing.T) {
	m := NewManager()
	a := &stubSource{n: 2}
	b := &stubSource{n: 3}
	m.AddSource(a)
	m.AddSource(b)

	if err := m.Initialize(); err != nil {
		t.Fatalf("Initialize() failed: %v", err)
	}
	if got := len(m.Entities()); got != 5 {
		t.Errorf("expected 5 entities, got %d", got)
	}
	// Order follows registration
	if m.Entities()[0] != a.owned[0] || m.Entities()[2] != b.owned[0] {
		t.Error("entities not in source registration order")
	}
}

func TestInitializeIsolatesPanickingSource(t *testing.T) {
	m := NewManager()
	m.AddSource(&stubSource{explode: true})
	good := &stubSource{n: 1}
	m.AddSource(good)

	err := m.Initialize()
	if err == nil {
		t.Fatal("expected error from panicking source")
	}
	if good.starts != 1 || len(m.Entities()) != 1 {
		t.Errorf("later source should still start, entities=%d", len(m.Entities()))
	}
}

func TestUpdateContinuesAfterFailingProcessor(t *testing.T) {
	m := NewManager()
	var order []string

	m.AddProcessor(ProcessorFunc(func(w *World, dt float64) error {
		order = append(order, "first")
		return errors.New("first failed")
	}))
	m.AddProcessor(ProcessorFunc(func(w *World, dt float64) error {
		order = append(order, "panics")
		panic("processor panic")
	}))
	m.AddProcessor(ProcessorFunc(func(w *World, dt float64) error {
		order = append(order, "second")
		return nil
	}))
	m.AddPostProcessor(PostProcessorFunc(func(w *World, dt float64) error {
		order = append(order, "post")
		return nil
	}))

	err := m.Update(1.0 / 60)
	if err == nil {
		t.Error("expected joined step errors")
	}

	want := []string{"first", "panics", "second", "post"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, expected %v", order, want)
		}
	}
	if m.Frame() != 1 {
		t.Errorf("Frame() = %d, expected 1", m.Frame())
	}
}

func TestAppendedEntitiesVisibleToLaterSteps(t *testing.T) {
	m := NewManager()
	const spawned = 3

	var seenByEarlier, seenByLater, seenByPost int

	m.AddProcessor(ProcessorFunc(func(w *World, dt float64) error {
		seenByEarlier = w.Len()
		return nil
	}))
	m.AddProcessor(ProcessorFunc(func(w *World, dt float64) error {
		for i := 0; i < spawned; i++ {
			w.Add(entity.New(entity.TypeProjectile, 0, 0, 3))
		}
		return nil
	}))
	m.AddProcessor(ProcessorFunc(func(w *World, dt float64) error {
		seenByLater = w.Count(entity.TypeProjectile)
		return nil
	}))
	m.AddPostProcessor(PostProcessorFunc(func(w *World, dt float64) error {
		seenByPost = w.Count(entity.TypeProjectile)
		return nil
	}))

	if err := m.Update(0.016); err != nil {
		t.Fatal(err)
	}

	if seenByEarlier != 0 {
		t.Errorf("earlier processor saw %d entities, expected 0", seenByEarlier)
	}
	if seenByLater != spawned {
		t.Errorf("later processor saw %d, expected %d", seenByLater, spawned)
	}
	if seenByPost != spawned {
		t.Errorf("post-processor saw %d, expected %d", seenByPost, spawned)
	}
}

func TestShutdownStopsSourcesAndClears(t *testing.T) {
	m := NewManager()
	src := &stubSource{n: 4}
	m.AddSource(src)
	if err := m.Initialize(); err != nil {
		t.Fatal(err)
	}
	owned := src.owned

	m.Shutdown()

	if src.stops != 1 {
		t.Errorf("Stop called %d times, expected 1", src.stops)
	}
	if len(m.Entities()) != 0 {
		t.Errorf("expected empty list after shutdown, got %d", len(m.Entities()))
	}
	for _, e := range owned {
		if e.Active {
			t.Error("source should have deactivated its entities")
		}
	}

	// Restart produces a fresh set
	if err := m.Initialize(); err != nil {
		t.Fatal(err)
	}
	if len(m.Entities()) != 4 || m.Entities()[0] == owned[0] {
		t.Error("restart should produce a fresh entity set")
	}
}

func TestAddEntityIgnoresNil(t *testing.T) {
	m := NewManager()
	m.AddEntity(nil)
	m.AddEntity(entity.New(entity.TypeEnemy, 0, 0, 12))
	if len(m.Entities()) != 1 {
		t.Errorf("expected 1 entity, got %d", len(m.Entities()))
	}
}

func TestCompactionAtFrameBoundary(t *testing.T) {
	m := NewManager(WithCompaction(2))
	e1 := entity.New(entity.TypeAsteroid, 0, 0, 8)
	e2 := entity.New(entity.TypeAsteroid, 0, 0, 8)
	m.AddEntity(e1)
	m.AddEntity(e2)
	e1.Destroy()

	_ = m.Update(0.016)
	if len(m.Entities()) != 2 {
		t.Fatalf("compaction ran too early: %d entities", len(m.Entities()))
	}

	_ = m.Update(0.016)
	if len(m.Entities()) != 1 || m.Entities()[0] != e2 {
		t.Errorf("expected only the active entity after compaction, got %d", len(m.Entities()))
	}
}

func TestWorldHelpers(t *testing.T) {
	w := NewWorld()
	p := entity.New(entity.TypePlayer, 0, 0, 8)
	a := entity.New(entity.TypeAsteroid, 0, 0, 32)
	dead := entity.New(entity.TypeAsteroid, 0, 0, 32)
	dead.Destroy()
	w.Add(p, nil, a, dead)

	if w.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", w.Len())
	}
	if w.First(entity.TypePlayer) != p {
		t.Error("First(player) mismatch")
	}
	if w.Count(entity.TypeAsteroid) != 1 {
		t.Errorf("Count(asteroid) = %d, expected 1", w.Count(entity.TypeAsteroid))
	}
	if w.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, expected 2", w.ActiveCount())
	}

	visited := 0
	w.Each(entity.TypeAsteroid, func(e *entity.Entity) {
		visited++
		if visited == 1 {
			w.Add(entity.New(entity.TypeAsteroid, 0, 0, 16))
		}
	})
	if visited != 2 {
		t.Errorf("Each visited %d, expected 2 (including appended)", visited)
	}

	w.Clear()
	if w.Len() != 0 {
		t.Error("Clear() left entities behind")
	}
}
