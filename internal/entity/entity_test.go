package entity

import (
	"math"
	"testing"
)

func TestNewAssignsUniqueIDs(t *testing.T) {
	a := New(TypeAsteroid, 0, 0, 8)
	b := New(TypeAsteroid, 0, 0, 8)

	if a.ID == b.ID {
		t.Fatal("expected distinct ids")
	}
	if !a.Active {
		t.Error("new entity should be active")
	}
}

func TestIs(t *testing.T) {
	e := New(TypeEnemy, 0, 0, 12)
	if !e.Is(TypeEnemy) {
		t.Error("expected enemy tag to match")
	}
	if e.Is(TypePlayer) {
		t.Error("enemy should not match player tag")
	}

	e.Destroy()
	if e.Is(TypeEnemy) {
		t.Error("inactive entity should not match")
	}

	var nilEntity *Entity
	if nilEntity.IsActive() {
		t.Error("nil entity should not be active")
	}
}

func TestLimitSpeed(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		max      float64
		expected float64
	}{
		{"below limit", 3, 4, 10, 5},
		{"above limit", 30, 40, 10, 10},
		{"zero", 0, 0, 10, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := New(TypePlayer, 0, 0, 8)
			e.DX, e.DY = tc.dx, tc.dy
			e.LimitSpeed(tc.max)
			if math.Abs(e.Speed()-tc.expected) > 1e-9 {
				t.Errorf("Speed() = %v, expected %v", e.Speed(), tc.expected)
			}
		})
	}
}

func TestPayloadAccessors(t *testing.T) {
	e := New(TypePlayer, 0, 0, 8)
	e.Data = &PlayerData{Lives: 3}

	if p, ok := e.Player(); !ok || p.Lives != 3 {
		t.Fatalf("Player() = %v, %v", p, ok)
	}
	if _, ok := e.Enemy(); ok {
		t.Error("Enemy() should fail on player payload")
	}
	if !e.PayloadMatches() {
		t.Error("player payload should match player tag")
	}

	e.Type = TypeEnemy
	if e.PayloadMatches() {
		t.Error("player payload should not match enemy tag")
	}
}

func TestBulletExpired(t *testing.T) {
	b := &BulletData{Lifetime: 1.5}
	if b.Expired() {
		t.Error("fresh bullet should not be expired")
	}
	b.Age = 1.5
	if !b.Expired() {
		t.Error("bullet at lifetime should be expired")
	}
}
