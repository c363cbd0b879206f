package vecn

import (
	"fmt"
	"hash/maphash"

	"github.com/taigrr/geomkit/pkg/math3d"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vec3 is a three-component vector.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// V3 creates a Vec3.
func V3[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// FromSlice3 builds a Vec3 from the first three elements of s.
func FromSlice3[T Scalar](s []T) (Vec3[T], error) {
	if err := checkLen(3, len(s)); err != nil {
		return Vec3[T]{}, err
	}
	return Vec3[T]{s[0], s[1], s[2]}, nil
}

// Convert3 converts every component of v to U with Go's conversion rules.
func Convert3[U, T Scalar](v Vec3[T]) Vec3[U] {
	return Vec3[U]{U(v.X), U(v.Y), U(v.Z)}
}

// FromMath3d converts a float32 geometry vector.
func FromMath3d[T Scalar](v math3d.Vec3) Vec3[T] {
	return Vec3[T]{T(v.X), T(v.Y), T(v.Z)}
}

// FromR3 converts a gonum vector.
func FromR3[T Scalar](v r3.Vec) Vec3[T] {
	return Vec3[T]{T(v.X), T(v.Y), T(v.Z)}
}

func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Div divides component-wise. Integer division by zero panics.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] { return Vec3[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z} }

func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3[T]) Dot(o Vec3[T]) T { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product. For unsigned T the result wraps.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3[T]) Min(o Vec3[T]) Vec3[T] {
	return Vec3[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

func (v Vec3[T]) Max(o Vec3[T]) Vec3[T] {
	return Vec3[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

// Clamp limits each component to [lo, hi].
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] { return v.Max(lo).Min(hi) }

// LenSq returns the squared length in the component type.
func (v Vec3[T]) LenSq() T { return v.Dot(v) }

// Len returns the Euclidean length.
func (v Vec3[T]) Len() float64 { return length(v.LenSq()) }

// Equal reports exact component equality; it is the same as ==.
func (v Vec3[T]) Equal(o Vec3[T]) bool { return v == o }

func (v Vec3[T]) IsZero() bool { return v == Vec3[T]{} }

func (v Vec3[T]) Array() [3]T { return [3]T{v.X, v.Y, v.Z} }

// XY drops Z.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v.X, v.Y} }

// CopyTo writes the components to the start of dst.
func (v Vec3[T]) CopyTo(dst []T) error {
	if err := checkLen(3, len(dst)); err != nil {
		return err
	}
	dst[0], dst[1], dst[2] = v.X, v.Y, v.Z
	return nil
}

// Math3d converts to the float32 geometry vector.
func (v Vec3[T]) Math3d() math3d.Vec3 {
	return math3d.Vec3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// R3 converts to a gonum vector.
func (v Vec3[T]) R3() r3.Vec {
	return r3.Vec{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

// Hash returns a hash of the components under seed.
func (v Vec3[T]) Hash(seed maphash.Seed) uint64 { return hash(seed, v) }

func (v Vec3[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v>", v.X, v.Y, v.Z)
}
