package vecn

import (
	"fmt"
	"hash/maphash"

	"github.com/taigrr/geomkit/pkg/math3d"
)

// Vec4 is a four-component vector.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

// V4 creates a Vec4.
func V4[T Scalar](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// FromSlice4 builds a Vec4 from the first four elements of s.
func FromSlice4[T Scalar](s []T) (Vec4[T], error) {
	if err := checkLen(4, len(s)); err != nil {
		return Vec4[T]{}, err
	}
	return Vec4[T]{s[0], s[1], s[2], s[3]}, nil
}

// Convert4 converts every component of v to U with Go's conversion rules.
func Convert4[U, T Scalar](v Vec4[T]) Vec4[U] {
	return Vec4[U]{U(v.X), U(v.Y), U(v.Z), U(v.W)}
}

func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W}
}

// Div divides component-wise. Integer division by zero panics.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] {
	return Vec4[T]{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W}
}

func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vec4[T]) Dot(o Vec4[T]) T {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

func (v Vec4[T]) Min(o Vec4[T]) Vec4[T] {
	return Vec4[T]{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z), min(v.W, o.W)}
}

func (v Vec4[T]) Max(o Vec4[T]) Vec4[T] {
	return Vec4[T]{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z), max(v.W, o.W)}
}

// Clamp limits each component to [lo, hi].
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] { return v.Max(lo).Min(hi) }

func (v Vec4[T]) LenSq() T { return v.Dot(v) }
func (v Vec4[T]) Len() float64 { return length(v.LenSq()) }
func (v Vec4[T]) IsZero() bool { return v == Vec4[T]{} }
func (v Vec4[T]) Array() [4]T { return [4]T{v.X, v.Y, v.Z, v.W} }
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v.X, v.Y, v.Z} }
func (v Vec4[T]) Equal(o Vec4[T]) bool { return v == o }

// CopyTo writes the components to the start of dst.
func (v Vec4[T]) CopyTo(dst []T) error {
	if err := checkLen(4, len(dst)); err != nil {
		return err
	}
	dst[0], dst[1], dst[2], dst[3] = v.X, v.Y, v.Z, v.W
	return nil
}

// Math3d converts to the float32 geometry vector.
func (v Vec4[T]) Math3d() math3d.Vec4 {
	return math3d.Vec4{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z), W: float32(v.W)}
}

// Hash returns a hash of the components under seed.
func (v Vec4[T]) Hash(seed maphash.Seed) uint64 { return hash(seed, v) }

func (v Vec4[T]) String() string {
	return fmt.Sprintf("<%v, %v, %v, %v>", v.X, v.Y, v.Z, v.W)
}
