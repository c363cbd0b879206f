package vecn

import (
	"fmt"
	"hash/maphash"
)

// Vec2 is a two-component vector.
type Vec2[T Scalar] struct {
	X, Y T
}

// V2 creates a Vec2.
func V2[T Scalar](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// FromSlice2 builds a Vec2 from the first two elements of s.
func FromSlice2[T Scalar](s []T) (Vec2[T], error) {
	if err := checkLen(2, len(s)); err != nil {
		return Vec2[T]{}, err
	}
	return Vec2[T]{s[0], s[1]}, nil
}

// Convert2 converts every component of v to U with Go's conversion rules.
func Convert2[U, T Scalar](v Vec2[T]) Vec2[U] {
	return Vec2[U]{U(v.X), U(v.Y)}
}

func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X + o.X, v.Y + o.Y} }
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X - o.X, v.Y - o.Y} }
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X * o.X, v.Y * o.Y} }

// Div divides component-wise. Integer division by zero panics.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { return Vec2[T]{v.X / o.X, v.Y / o.Y} }

func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v.X * s, v.Y * s} }
func (v Vec2[T]) Dot(o Vec2[T]) T { return v.X*o.X + v.Y*o.Y }

func (v Vec2[T]) Min(o Vec2[T]) Vec2[T] { return Vec2[T]{min(v.X, o.X), min(v.Y, o.Y)} }
func (v Vec2[T]) Max(o Vec2[T]) Vec2[T] { return Vec2[T]{max(v.X, o.X), max(v.Y, o.Y)} }

// Clamp limits each component to [lo, hi].
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] { return v.Max(lo).Min(hi) }

// LenSq returns the squared length in the component type.
func (v Vec2[T]) LenSq() T { return v.Dot(v) }

// Len returns the Euclidean length.
func (v Vec2[T]) Len() float64 { return length(v.LenSq()) }

// Equal reports exact component equality; it is the same as ==.
func (v Vec2[T]) Equal(o Vec2[T]) bool { return v == o }

func (v Vec2[T]) IsZero() bool { return v == Vec2[T]{} }

func (v Vec2[T]) Array() [2]T { return [2]T{v.X, v.Y} }

// CopyTo writes the components to the start of dst.
func (v Vec2[T]) CopyTo(dst []T) error {
	if err := checkLen(2, len(dst)); err != nil {
		return err
	}
	dst[0], dst[1] = v.X, v.Y
	return nil
}

// Hash returns a hash of the components under seed.
func (v Vec2[T]) Hash(seed maphash.Seed) uint64 { return hash(seed, v) }

func (v Vec2[T]) String() string {
	return fmt.Sprintf("<%v, %v>", v.X, v.Y)
}
