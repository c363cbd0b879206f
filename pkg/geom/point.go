package geom

import "fmt"

// Point is a 2D location.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{X: x, Y: y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

func (p Point[T]) Add(q Point[T]) Point[T] { return Point[T]{p.X + q.X, p.Y + q.Y} }
func (p Point[T]) Sub(q Point[T]) Point[T] { return Point[T]{p.X - q.X, p.Y - q.Y} }
func (p Point[T]) Scale(s T) Point[T]      { return Point[T]{p.X * s, p.Y * s} }

// In reports whether p lies in r.
func (p Point[T]) In(r Rect[T]) bool { return r.Contains(p) }

// Within reports whether p and q differ by at most tol on each axis.
func (p Point[T]) Within(q Point[T], tol T) bool {
	return absDiff(p.X, q.X) <= tol && absDiff(p.Y, q.Y) <= tol
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Size is a width and height.
type Size[T Scalar] struct {
	Width, Height T
}

// Sz is shorthand for Size[T]{Width: w, Height: h}.
func Sz[T Scalar](w, h T) Size[T] {
	return Size[T]{Width: w, Height: h}
}

func (s Size[T]) Area() T { return s.Width * s.Height }

// IsEmpty reports whether either dimension is zero or negative.
func (s Size[T]) IsEmpty() bool { return s.Width <= 0 || s.Height <= 0 }

func (s Size[T]) Scale(f T) Size[T] { return Size[T]{s.Width * f, s.Height * f} }

// Aspect returns Width / Height in float64.
func (s Size[T]) Aspect() float64 { return float64(s.Width) / float64(s.Height) }

func (s Size[T]) String() string {
	return fmt.Sprintf("%vx%v", s.Width, s.Height)
}

func absDiff[T Scalar](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
