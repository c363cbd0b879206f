package math3d

import (
	"math"

	"github.com/chewxy/math32"
)

const (
	// Pi as a float32.
	Pi = math32.Pi
	// TwoPi is 2π.
	TwoPi = 2 * math32.Pi
	// PiOver2 is π/2.
	PiOver2 = math32.Pi / 2

	// ZeroTolerance is the absolute tolerance under which a float32 is
	// treated as zero.
	ZeroTolerance = 1e-6
)

// Clamp returns v limited to [lo, hi]. lo must not exceed hi.
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Saturate clamps v to [0, 1].
func Saturate(v float32) float32 {
	return Clamp(v, 0, 1)
}

// Lerp interpolates linearly from a to b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// SmoothStep performs a cubic Hermite interpolation between 0 and 1.
func SmoothStep(a, b, t float32) float32 {
	t = Saturate(t)
	t = t * t * (3 - 2*t)
	return a + (b-a)*t
}

// IsZero reports whether |v| is below ZeroTolerance.
func IsZero(v float32) bool {
	return math32.Abs(v) < ZeroTolerance
}

// IsOne reports whether v is within ZeroTolerance of one.
func IsOne(v float32) bool {
	return IsZero(v - 1)
}

// NearEqual compares two floats using both an absolute tolerance (for
// values near zero) and a unit-in-the-last-place check.
func NearEqual(a, b float32) bool {
	if IsZero(a - b) {
		return true
	}
	// Differently signed values are never near unless both are near zero.
	if (a < 0) != (b < 0) {
		return false
	}
	ia := int32(math.Float32bits(a))
	ib := int32(math.Float32bits(b))
	ulp := ia - ib
	if ulp < 0 {
		ulp = -ulp
	}
	return ulp <= 4
}

// WithinEpsilon reports whether a and b differ by at most eps.
func WithinEpsilon(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

// ToRadians converts degrees to radians.
func ToRadians(degrees float32) float32 {
	return degrees * (Pi / 180)
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float32) float32 {
	return radians * (180 / Pi)
}
