// Package geom provides axis-aligned 2D regions: points, sizes and
// rectangles over any numeric type, plus the fixed-width offset and extent
// types used to address textures and framebuffers.
//
// Rectangles are stored as a location and a size, not as two corners, and
// cover the half-open ranges [X, X+Width) and [Y, Y+Height).
package geom

// Scalar is a constraint for the types that geom types and functions
// can handle.
type Scalar interface {
	~float32 | ~float64 | Integer
}

// Integer is a constraint for any integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type (
	PointI = Point[int32]
	PointF = Point[float32]
	SizeI  = Size[int32]
	SizeF  = Size[float32]
	RectI  = Rect[int32]
	RectF  = Rect[float32]
)

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)
