package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		v, size  float64
		expected float64
	}{
		{"inside", 400, 800, 400},
		{"past left edge", -0.5, 800, 800},
		{"past right edge", 800.5, 800, 0},
		{"on the edge", 800, 800, 800},
		{"zero size", 42, 0, 42},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Wrap(tc.v, tc.size); got != tc.expected {
				t.Errorf("Wrap(%v, %v) = %v, expected %v", tc.v, tc.size, got, tc.expected)
			}
		})
	}
}

func TestWrapMargin(t *testing.T) {
	tests := []struct {
		name     string
		v        float64
		expected float64
	}{
		{"inside", 10, 10},
		{"partly off left", -20, -20},
		{"fully off left", -33, 832},
		{"fully off right", 833, -32},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WrapMargin(tc.v, 32, 800); got != tc.expected {
				t.Errorf("WrapMargin(%v) = %v, expected %v", tc.v, got, tc.expected)
			}
		})
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{4*math.Pi + 0.5, 0.5},
	}

	for _, tc := range tests {
		if got := NormalizeAngle(tc.in); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestTurnToward(t *testing.T) {
	tests := []struct {
		name               string
		from, target, step float64
		expected           float64
	}{
		{"reaches target within step", 0, 0.1, 0.5, 0.1},
		{"capped counter-clockwise", 0, 1, 0.2, 0.2},
		{"capped clockwise", 0, -1, 0.2, -0.2},
		{"shortest path across pi", 3, -3, 0.1, 3.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := TurnToward(tc.from, tc.target, tc.step)
			if math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("TurnToward(%v, %v, %v) = %v, expected %v", tc.from, tc.target, tc.step, got, tc.expected)
			}
		})
	}
}

func TestProject(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"origin", 0, 0, 0, 0},
		{"center", 400, 300, 40, 12},
		{"far corner clamps", 800, 600, 79, 23},
		{"negative clamps", -10, -10, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cx, cy := Project(tc.x, tc.y, 800, 600, 80, 24)
			if cx != tc.cx || cy != tc.cy {
				t.Errorf("Project(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, cx, cy, tc.cx, tc.cy)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestRuntimeConfigDT(t *testing.T) {
	cfg := DefaultConfig()
	if math.Abs(cfg.DT()-1.0/60) > 1e-12 {
		t.Errorf("DT() = %v, expected 1/60", cfg.DT())
	}
	cfg.TickRate = 0
	if cfg.DT() <= 0 {
		t.Error("DT() must stay positive")
	}
}

func TestLatch(t *testing.T) {
	l := NewLatch(2)
	l.Press(ActionThrust)

	for i := 0; i < 2; i++ {
		if f := l.Frame(); !f.Has(ActionThrust) {
			t.Fatalf("tick %d: thrust should be held", i)
		}
	}
	if f := l.Frame(); f.Has(ActionThrust) {
		t.Error("thrust should be released after the hold")
	}

	l.Press(ActionFire)
	l.Release()
	if f := l.Frame(); f.Has(ActionFire) {
		t.Error("Release() should drop every action")
	}
}

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionFire) {
		t.Error("zero frame should hold nothing")
	}
	f.Set(ActionFire)
	clone := f.Clone()
	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Clear() should drop actions")
	}
	if !clone.Has(ActionFire) {
		t.Error("Clone() should be independent")
	}
	if ActionRotateLeft.String() != "RotateLeft" {
		t.Errorf("String() = %q", ActionRotateLeft.String())
	}
}

func TestEdgePoint(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		x, y := EdgePoint(rng, 800, 600, 50)
		onEdge := x == 50 || x == 750 || y == 50 || y == 550
		if !onEdge {
			t.Fatalf("EdgePoint() = (%v, %v), not on an inset edge", x, y)
		}
		if x < 50 || x > 750 || y < 50 || y > 550 {
			t.Fatalf("EdgePoint() = (%v, %v), outside the inset area", x, y)
		}
	}
}
