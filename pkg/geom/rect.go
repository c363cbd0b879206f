package geom

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect[T Scalar] struct {
	X, Y          T
	Width, Height T
}

// Rt is shorthand for Rect[T]{x, y, w, h}.
func Rt[T Scalar](x, y, w, h T) Rect[T] {
	return Rect[T]{X: x, Y: y, Width: w, Height: h}
}

// FromLTRB builds a rectangle from its edges.
func FromLTRB[T Scalar](left, top, right, bottom T) Rect[T] {
	return Rect[T]{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// FromPointSize builds a rectangle at p with size s.
func FromPointSize[T Scalar](p Point[T], s Size[T]) Rect[T] {
	return Rect[T]{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// FromImage converts an image.Rectangle.
func FromImage(r image.Rectangle) RectI {
	return FromLTRB(int32(r.Min.X), int32(r.Min.Y), int32(r.Max.X), int32(r.Max.Y))
}

func (r Rect[T]) Left() T   { return r.X }
func (r Rect[T]) Top() T    { return r.Y }
func (r Rect[T]) Right() T  { return r.X + r.Width }
func (r Rect[T]) Bottom() T { return r.Y + r.Height }

func (r Rect[T]) Location() Point[T] { return Point[T]{r.X, r.Y} }
func (r Rect[T]) Size() Size[T]      { return Size[T]{r.Width, r.Height} }

func (r Rect[T]) TopLeft() Point[T]     { return Point[T]{r.X, r.Y} }
func (r Rect[T]) BottomRight() Point[T] { return Point[T]{r.Right(), r.Bottom()} }

// Center returns the middle of r. Integer rectangles round toward zero.
func (r Rect[T]) Center() Point[T] {
	return Point[T]{r.X + r.Width/2, r.Y + r.Height/2}
}

// IsEmpty reports whether r covers no area.
func (r Rect[T]) IsEmpty() bool { return r.Width <= 0 || r.Height <= 0 }

// Canon returns r with negative dimensions flipped so that the same area
// is described with a non-negative size.
func (r Rect[T]) Canon() Rect[T] {
	if r.Width < 0 {
		r.X, r.Width = r.X+r.Width, -r.Width
	}
	if r.Height < 0 {
		r.Y, r.Height = r.Y+r.Height, -r.Height
	}
	return r
}

// Contains reports whether p lies in the half-open area of r.
func (r Rect[T]) Contains(p Point[T]) bool {
	return r.X <= p.X && p.X < r.Right() && r.Y <= p.Y && p.Y < r.Bottom()
}

// ContainsRect reports whether o lies entirely inside r. An empty o is
// contained by any r.
func (r Rect[T]) ContainsRect(o Rect[T]) bool {
	if o.IsEmpty() {
		return true
	}
	return r.X <= o.X && o.Right() <= r.Right() && r.Y <= o.Y && o.Bottom() <= r.Bottom()
}

// Intersects reports whether r and o share any area. Rectangles that only
// touch along an edge do not intersect.
func (r Rect[T]) Intersects(o Rect[T]) bool {
	return o.X < r.Right() && r.X < o.Right() && o.Y < r.Bottom() && r.Y < o.Bottom()
}

// Intersect returns the overlap of a and b, or false if they do not share
// any area.
func Intersect[T Scalar](a, b Rect[T]) (Rect[T], bool) {
	if !a.Intersects(b) {
		return Rect[T]{}, false
	}
	return FromLTRB(
		max(a.X, b.X),
		max(a.Y, b.Y),
		min(a.Right(), b.Right()),
		min(a.Bottom(), b.Bottom()),
	), true
}

// Union returns the smallest rectangle containing both a and b. Empty
// rectangles are ignored.
func Union[T Scalar](a, b Rect[T]) Rect[T] {
	switch {
	case a.IsEmpty():
		return b
	case b.IsEmpty():
		return a
	}
	return FromLTRB(
		min(a.X, b.X),
		min(a.Y, b.Y),
		max(a.Right(), b.Right()),
		max(a.Bottom(), b.Bottom()),
	)
}

// Offset moves r by p.
func (r Rect[T]) Offset(p Point[T]) Rect[T] {
	r.X += p.X
	r.Y += p.Y
	return r
}

// Inflate grows r by dx on the left and right and dy on the top and
// bottom. Negative values shrink it.
func (r Rect[T]) Inflate(dx, dy T) Rect[T] {
	return Rect[T]{X: r.X - dx, Y: r.Y - dy, Width: r.Width + 2*dx, Height: r.Height + 2*dy}
}

// Scale multiplies the location and size of r by s.
func (r Rect[T]) Scale(s T) Rect[T] {
	return Rect[T]{X: r.X * s, Y: r.Y * s, Width: r.Width * s, Height: r.Height * s}
}

// Resize returns r with its top-left corner kept and its size replaced.
func (r Rect[T]) Resize(s Size[T]) Rect[T] {
	r.Width, r.Height = s.Width, s.Height
	return r
}

// CenterAt returns r moved so that its center is p.
func (r Rect[T]) CenterAt(p Point[T]) Rect[T] {
	return r.Offset(p.Sub(r.Center()))
}

// Image converts to an image.Rectangle. Float components are truncated.
func (r Rect[T]) Image() image.Rectangle {
	return image.Rect(int(r.X), int(r.Y), int(r.Right()), int(r.Bottom()))
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("{X:%v Y:%v Width:%v Height:%v}", r.X, r.Y, r.Width, r.Height)
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Edges not named are
// centered.
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	inner = inner.CenterAt(outer.Center())
	switch {
	case edges&EdgeTop != 0:
		inner.Y = outer.Y
		if edges&EdgeBottom != 0 {
			inner.Height = outer.Height
		}
	case edges&EdgeBottom != 0:
		inner.Y = outer.Bottom() - inner.Height
	}
	switch {
	case edges&EdgeLeft != 0:
		inner.X = outer.X
		if edges&EdgeRight != 0 {
			inner.Width = outer.Width
		}
	case edges&EdgeRight != 0:
		inner.X = outer.Right() - inner.Width
	}
	return inner
}
