package math3d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float32
}

// V2 creates a new Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

func (a Vec2) Scale(s float32) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

func (a Vec2) Dot(b Vec2) float32 {
	return a.X*b.X + a.Y*b.Y
}

// Len returns the length of the vector.
func (a Vec2) Len() float32 {
	return math32.Hypot(a.X, a.Y)
}

// Normalize returns the unit vector in the same direction.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

func (a Vec2) Lerp(b Vec2, t float32) Vec2 {
	return Vec2{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

func (a Vec2) Min(b Vec2) Vec2 {
	return Vec2{math32.Min(a.X, b.X), math32.Min(a.Y, b.Y)}
}

func (a Vec2) Max(b Vec2) Vec2 {
	return Vec2{math32.Max(a.X, b.X), math32.Max(a.Y, b.Y)}
}

// NearEqual reports whether both components differ by at most tol.
func (a Vec2) NearEqual(b Vec2, tol float32) bool {
	return math32.Abs(a.X-b.X) <= tol && math32.Abs(a.Y-b.Y) <= tol
}

// String formats the vector as <x, y>.
func (a Vec2) String() string {
	return fmt.Sprintf("<%g, %g>", a.X, a.Y)
}
