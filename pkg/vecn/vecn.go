// Package vecn provides small fixed-size vectors over any integer or floating
// point component type, with the named instantiations (Int3, UInt4,
// Double3, ...) used for grid coordinates, indices and double-precision work.
//
// The float32 vectors used by the geometry packages live in math3d; the
// conversions here move between the two.
package vecn

import (
	"errors"
	"fmt"
	"hash/maphash"
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is a constraint for the component types vecn vectors can hold.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// ErrInvalidLength is returned when a slice is too short to fill a vector.
var ErrInvalidLength = errors.New("vecn: invalid length")

type (
	Int2 = Vec2[int32]
	Int3 = Vec3[int32]
	Int4 = Vec4[int32]

	UInt2 = Vec2[uint32]
	UInt3 = Vec3[uint32]
	UInt4 = Vec4[uint32]

	Double2 = Vec2[float64]
	Double3 = Vec3[float64]
	Double4 = Vec4[float64]
)

func checkLen(want, got int) error {
	if got < want {
		return fmt.Errorf("need %d components, got %d: %w", want, got, ErrInvalidLength)
	}
	return nil
}

// hash hashes any comparable vector. Two vectors with equal components hash
// equally under the same seed.
func hash[V comparable](seed maphash.Seed, v V) uint64 {
	return maphash.Comparable(seed, v)
}

func length[T Scalar](sq T) float64 {
	return math.Sqrt(float64(sq))
}
