package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/lifecycle"
)

func TestRegisterDuplicate(t *testing.T) {
	r := New()
	if err := r.Register(Module{Name: "enemy"}); err != nil {
		t.Fatal(err)
	}
	err := r.Register(Module{Name: "enemy"})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("Register() = %v, expected ErrDuplicate", err)
	}
	if err := r.Register(Module{}); err == nil {
		t.Error("expected error for empty name")
	}
}

func TestListOrder(t *testing.T) {
	r := New()
	r.MustRegister(Module{Name: "collision", Priority: 100})
	r.MustRegister(Module{Name: "enemy", Priority: 30})
	r.MustRegister(Module{Name: "asteroid", Priority: 30})
	r.MustRegister(Module{Name: "player", Priority: 10})

	want := []string{"player", "asteroid", "enemy", "collision"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Names() = %v, expected %v", got, want)
		}
	}
}

func TestInstallFollowsPipelineOrder(t *testing.T) {
	var order []string
	proc := func(name string) engine.EntityProcessor {
		return engine.ProcessorFunc(func(w *engine.World, dt float64) error {
			order = append(order, name)
			return nil
		})
	}
	post := engine.PostProcessorFunc(func(w *engine.World, dt float64) error {
		order = append(order, "collision")
		return nil
	})

	r := New()
	r.MustRegister(Module{Name: "collision", Priority: 100, PostProcessors: []engine.PostProcessor{post}})
	r.MustRegister(Module{Name: "weapon", Priority: 20, Processors: []engine.EntityProcessor{proc("bullets")}})
	r.MustRegister(Module{Name: "player", Priority: 10, Processors: []engine.EntityProcessor{proc("player-move"), proc("player-fire")}})

	mgr := engine.NewManager()
	r.Install(mgr)
	if err := mgr.Update(0.016); err != nil {
		t.Fatal(err)
	}

	want := []string{"player-move", "player-fire", "bullets", "collision"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, expected %v", order, want)
		}
	}
}

func TestComponentsAndInfos(t *testing.T) {
	r := New()
	c := lifecycle.New("spawner", nil, nil)
	r.MustRegister(Module{Name: "asteroid", Priority: 40, Component: c})
	r.MustRegister(Module{Name: "player", Priority: 10})

	comps := r.Components()
	if len(comps) != 1 || comps[0] != c {
		t.Errorf("Components() = %v", comps)
	}

	infos := r.Infos()
	if len(infos) != 2 || infos[0].Name != "player" {
		t.Errorf("Infos() = %+v", infos)
	}
	if !r.Exists("asteroid") || r.Exists("ufo") {
		t.Error("Exists() mismatch")
	}
	if _, ok := r.Get("player"); !ok {
		t.Error("Get(player) failed")
	}
}
