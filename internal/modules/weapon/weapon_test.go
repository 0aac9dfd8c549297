package weapon

import (
	"fmt"
	"math"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
	"github.com/vovakirdan/tui-asteroids/internal/entity"
)

func newService() *Service {
	return NewService(config.DefaultGameConfig().Weapon)
}

func newShooter() *entity.Entity {
	return entity.New(entity.TypePlayer, 400, 300, 8)
}

func TestFireLevels(t *testing.T) {
	tests := []struct {
		level  int
		angles []float64
	}{
		{0, []float64{0}},
		{1, []float64{0}},
		{2, []float64{-0.1, 0.1}},
		{3, []float64{0, -0.2, 0.2}},
		{9, []float64{0, -0.2, 0.2}},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("level %d", tc.level), func(t *testing.T) {
			s := newService()
			bullets := s.Fire(newShooter(), tc.level)
			if len(bullets) != len(tc.angles) {
				t.Fatalf("level %d: got %d bullets, expected %d", tc.level, len(bullets), len(tc.angles))
			}
			for i, b := range bullets {
				if math.Abs(b.Radians-tc.angles[i]) > 1e-9 {
					t.Errorf("bullet %d angle = %v, expected %v", i, b.Radians, tc.angles[i])
				}
				if math.Abs(b.Speed()-400) > 1e-9 {
					t.Errorf("bullet %d speed = %v, expected 400", i, b.Speed())
				}
			}
		})
	}
}

func TestFireSpawnsAheadOfShooter(t *testing.T) {
	s := newService()
	shooter := newShooter()
	shooter.Radians = math.Pi / 2
	shooter.DX = 1000

	b := s.Fire(shooter, 1)[0]
	if math.Abs(b.X-400) > 1e-9 || math.Abs(b.Y-313) > 1e-9 {
		t.Errorf("bullet at (%v, %v), expected (400, 313)", b.X, b.Y)
	}
	if math.Abs(b.DX) > 1e-9 {
		t.Errorf("bullet DX = %v, shooter velocity must not be inherited", b.DX)
	}

	bd, ok := b.Bullet()
	if !ok {
		t.Fatal("bullet payload missing")
	}
	if bd.ShooterID != shooter.ID || bd.Lifetime != 1.5 || bd.Damage != 1 {
		t.Errorf("payload = %+v", bd)
	}
	if b.Type != entity.TypeProjectile || b.Radius != 3 {
		t.Errorf("bullet = %+v", b)
	}
}

func TestCooldown(t *testing.T) {
	s := newService()
	shooter := newShooter()

	if s.Fire(shooter, 1) == nil {
		t.Fatal("first shot should fire")
	}
	if s.Fire(shooter, 1) != nil {
		t.Error("second shot should be blocked by the cooldown")
	}

	// Another shooter is not affected
	if s.Fire(newShooter(), 1) == nil {
		t.Error("cooldowns must be per shooter")
	}

	s.Tick(0.2)
	if s.Ready(shooter.ID) {
		t.Error("shooter should still be cooling down")
	}
	if math.Abs(s.Cooldown(shooter.ID)-0.1) > 1e-9 {
		t.Errorf("Cooldown() = %v, expected 0.1", s.Cooldown(shooter.ID))
	}
	s.Tick(0.1)
	if !s.Ready(shooter.ID) {
		t.Error("shooter should be ready")
	}
	if s.Fire(shooter, 1) == nil {
		t.Error("shot after cooldown should fire")
	}
	if s.Fired() != 3 {
		t.Errorf("Fired() = %d, expected 3", s.Fired())
	}

	s.Reset()
	if !s.Ready(shooter.ID) || s.Fired() != 0 {
		t.Error("Reset() should clear state")
	}
}

func TestInactiveShooterCannotFire(t *testing.T) {
	s := newService()
	shooter := newShooter()
	shooter.Destroy()
	if s.Fire(shooter, 1) != nil {
		t.Error("inactive shooter fired")
	}
}

func TestBulletProcessor(t *testing.T) {
	s := newService()
	w := engine.NewWorld()
	w.Add(s.Fire(newShooter(), 1)...)
	b := w.At(0)

	p := NewBulletProcessor(800, 600)
	if err := p.Process(w, 0.5); err != nil {
		t.Fatal(err)
	}
	if !b.Active {
		t.Fatal("bullet expired too early")
	}
	if math.Abs(b.X-613) > 1e-9 {
		t.Errorf("X = %v, expected 613", b.X)
	}

	p.Process(w, 0.5)
	if b.X != 0 {
		t.Errorf("X = %v, expected wrap to 0", b.X)
	}

	p.Process(w, 0.5)
	if b.Active {
		t.Error("bullet should expire at its lifetime")
	}
}

func TestCooldownProcessor(t *testing.T) {
	s := newService()
	shooter := newShooter()
	cooldown := NewCooldownProcessor(s)
	w := engine.NewWorld()
	dt := 0.1

	// One frame: cooldowns decay first, then the ship fires
	frame := func() bool {
		if err := cooldown.Process(w, dt); err != nil {
			t.Fatal(err)
		}
		return s.Fire(shooter, 1) != nil
	}

	if !frame() {
		t.Fatal("first shot should fire")
	}
	if math.Abs(s.Cooldown(shooter.ID)-0.3) > 1e-9 {
		t.Errorf("Cooldown() = %v, expected the full 0.3 after the firing frame", s.Cooldown(shooter.ID))
	}

	// The next shot comes exactly one cooldown (three frames) later
	for i := 1; i <= 3; i++ {
		fired := frame()
		if fired != (i == 3) {
			t.Errorf("frame %d fired = %t", i, fired)
		}
	}
}

func TestClampLevel(t *testing.T) {
	for in, want := range map[int]int{-1: 1, 1: 1, 2: 2, 3: 3, 4: 3} {
		if got := ClampLevel(in); got != want {
			t.Errorf("ClampLevel(%d) = %d, expected %d", in, got, want)
		}
	}
}
