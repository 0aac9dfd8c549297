// Package core provides fundamental types and utilities shared by the
// simulation and the platform layer. It has no Bubble Tea dependency so the
// game logic stays pure and testable.
package core

import (
	"math"
	"math/rand"
)

// Rect is an axis-aligned rectangle in screen cells, used for HUD layout.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Wrap moves v back into [0, size) when it leaves either edge.
// Values exactly on the far edge wrap to 0.
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	if v < 0 {
		return size
	}
	if v > size {
		return 0
	}
	return v
}

// WrapMargin wraps v once it is fully outside [-margin, size+margin],
// so that a body of radius margin slides off one edge before reappearing.
func WrapMargin(v, margin, size float64) float64 {
	if v < -margin {
		return size + margin
	}
	if v > size+margin {
		return -margin
	}
	return v
}

// NormalizeAngle maps an angle in radians into (-Pi, Pi].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// TurnToward rotates from toward target by the shortest path, moving at
// most step radians.
func TurnToward(from, target, step float64) float64 {
	diff := NormalizeAngle(target - from)
	if math.Abs(diff) <= step {
		return from + diff
	}
	if diff > 0 {
		return from + step
	}
	return from - step
}

// Project maps world coordinates onto a screen of w by h cells.
func Project(x, y, worldW, worldH float64, w, h int) (int, int) {
	if worldW <= 0 || worldH <= 0 {
		return int(x), int(y)
	}
	cx := int(x / worldW * float64(w))
	cy := int(y / worldH * float64(h))
	return Clamp(cx, 0, w-1), Clamp(cy, 0, h-1)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// EdgePoint picks a random point on one of the four edges of a w by h area,
// inset by margin.
func EdgePoint(rng *rand.Rand, w, h, margin float64) (x, y float64) {
	switch rng.Intn(4) {
	case 0: // top
		return margin + rng.Float64()*(w-2*margin), margin
	case 1: // right
		return w - margin, margin + rng.Float64()*(h-2*margin)
	case 2: // bottom
		return margin + rng.Float64()*(w-2*margin), h - margin
	default: // left
		return margin, margin + rng.Float64()*(h-2*margin)
	}
}
