package geom

import (
	"fmt"

	"github.com/taigrr/geomkit/pkg/vecn"
)

// Offset2D is a signed texel or pixel offset.
type Offset2D struct {
	X, Y int32
}

// Offset3D is a signed texel offset into a volume.
type Offset3D struct {
	X, Y, Z int32
}

// Extent2D is an unsigned width and height, as used for image and
// framebuffer dimensions.
type Extent2D struct {
	Width, Height uint32
}

// Extent3D adds a depth to Extent2D.
type Extent3D struct {
	Width, Height, Depth uint32
}

func (o Offset2D) Add(p Offset2D) Offset2D { return Offset2D{o.X + p.X, o.Y + p.Y} }
func (o Offset2D) Sub(p Offset2D) Offset2D { return Offset2D{o.X - p.X, o.Y - p.Y} }
func (o Offset2D) Point() PointI           { return PointI{o.X, o.Y} }
func (o Offset2D) String() string          { return fmt.Sprintf("(%d, %d)", o.X, o.Y) }

func (o Offset3D) Add(p Offset3D) Offset3D { return Offset3D{o.X + p.X, o.Y + p.Y, o.Z + p.Z} }
func (o Offset3D) Sub(p Offset3D) Offset3D { return Offset3D{o.X - p.X, o.Y - p.Y, o.Z - p.Z} }

// Offset2D drops Z.
func (o Offset3D) Offset2D() Offset2D { return Offset2D{o.X, o.Y} }

func (o Offset3D) Int3() vecn.Int3 { return vecn.Int3{X: o.X, Y: o.Y, Z: o.Z} }

func (o Offset3D) String() string { return fmt.Sprintf("(%d, %d, %d)", o.X, o.Y, o.Z) }

// Area returns Width*Height as a uint64 so large extents do not overflow.
func (e Extent2D) Area() uint64 { return uint64(e.Width) * uint64(e.Height) }

func (e Extent2D) IsEmpty() bool { return e.Width == 0 || e.Height == 0 }

// Size converts to a signed size. Dimensions above MaxInt32 wrap.
func (e Extent2D) Size() SizeI { return SizeI{int32(e.Width), int32(e.Height)} }

// Rect places the extent at o.
func (e Extent2D) Rect(o Offset2D) RectI {
	return RectI{X: o.X, Y: o.Y, Width: int32(e.Width), Height: int32(e.Height)}
}

// Contains reports whether o addresses a texel inside e.
func (e Extent2D) Contains(o Offset2D) bool {
	return o.X >= 0 && o.Y >= 0 && uint32(o.X) < e.Width && uint32(o.Y) < e.Height
}

// Mip returns the extent of mip level n, never smaller than 1x1.
func (e Extent2D) Mip(n int) Extent2D {
	return Extent2D{max(e.Width>>n, 1), max(e.Height>>n, 1)}
}

func (e Extent2D) String() string { return fmt.Sprintf("%dx%d", e.Width, e.Height) }

// ExtentOf returns the extent of a non-negative size. Negative dimensions
// clamp to zero.
func ExtentOf(s SizeI) Extent2D {
	return Extent2D{uint32(max(s.Width, 0)), uint32(max(s.Height, 0))}
}

func (e Extent3D) Volume() uint64 {
	return uint64(e.Width) * uint64(e.Height) * uint64(e.Depth)
}

func (e Extent3D) IsEmpty() bool { return e.Width == 0 || e.Height == 0 || e.Depth == 0 }

// Extent2D drops Depth.
func (e Extent3D) Extent2D() Extent2D { return Extent2D{e.Width, e.Height} }

// Contains reports whether o addresses a texel inside e.
func (e Extent3D) Contains(o Offset3D) bool {
	return e.Extent2D().Contains(o.Offset2D()) && o.Z >= 0 && uint32(o.Z) < e.Depth
}

// Mip returns the extent of mip level n, never smaller than 1 on any axis.
func (e Extent3D) Mip(n int) Extent3D {
	return Extent3D{max(e.Width>>n, 1), max(e.Height>>n, 1), max(e.Depth>>n, 1)}
}

func (e Extent3D) UInt3() vecn.UInt3 { return vecn.UInt3{X: e.Width, Y: e.Height, Z: e.Depth} }

func (e Extent3D) String() string { return fmt.Sprintf("%dx%dx%d", e.Width, e.Height, e.Depth) }
