package color

import (
	"math"

	"github.com/chewxy/math32"
)

// ClampAndRound clamps v to [lo, hi] and rounds half to even. NaN maps to 0
// and infinities saturate to the nearer bound.
func ClampAndRound(v, lo, hi float32) float32 {
	switch {
	case math32.IsNaN(v):
		return 0
	case math32.IsInf(v, -1):
		return lo
	case math32.IsInf(v, 1):
		return hi
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return float32(math.RoundToEven(float64(v)))
}

// PackUNorm scales v in [0, 1] to [0, bitmask] and rounds.
func PackUNorm(bitmask, v float32) uint32 {
	return uint32(ClampAndRound(v*bitmask, 0, bitmask))
}

// UnpackUNorm is the inverse of PackUNorm. Bits outside bitmask are ignored.
func UnpackUNorm(bitmask, v uint32) float32 {
	return float32(v&bitmask) / float32(bitmask)
}

// PackSNorm scales v in [-1, 1] to a two's complement value that fits in
// bitmask. Both -1 and the most negative code unpack to -1.
func PackSNorm(bitmask uint32, v float32) uint32 {
	hi := float32(bitmask >> 1)
	return uint32(int32(ClampAndRound(v*hi, -hi, hi))) & bitmask
}

// UnpackSNorm is the inverse of PackSNorm.
func UnpackSNorm(bitmask, v uint32) float32 {
	sign := (bitmask + 1) >> 1
	if v&sign != 0 {
		if v&bitmask == sign {
			return -1
		}
		v |= ^bitmask
	} else {
		v &= bitmask
	}
	return float32(int32(v)) / float32(bitmask>>1)
}

// packUnsigned packs an unnormalized value into [0, bitmask].
func packUnsigned(bitmask, v float32) uint32 {
	return uint32(ClampAndRound(v, 0, bitmask))
}

// packSigned packs an unnormalized value into a two's complement field.
func packSigned(bitmask uint32, v float32) uint32 {
	hi := float32(bitmask >> 1)
	return uint32(int32(ClampAndRound(v, -hi-1, hi))) & bitmask
}

func unpackSigned(bitmask, v uint32) float32 {
	sign := (bitmask + 1) >> 1
	if v&sign != 0 {
		v |= ^bitmask
	} else {
		v &= bitmask
	}
	return float32(int32(v))
}
