package bounds

import (
	"fmt"

	"github.com/taigrr/geomkit/pkg/math3d"
)

// BoundingBox represents an axis-aligned bounding box. Every query assumes
// Min <= Max on each axis.
type BoundingBox struct {
	Min math3d.Vec3
	Max math3d.Vec3
}

// NewBoundingBox creates a box from min and max points.
func NewBoundingBox(min, max math3d.Vec3) BoundingBox {
	return BoundingBox{Min: min, Max: max}
}

// BoxFromPoints returns the smallest box enclosing every point.
func BoxFromPoints(points []math3d.Vec3) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, fmt.Errorf("box from points: %w", ErrNoPoints)
	}
	b := BoundingBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		b = b.Include(p)
	}
	return b, nil
}

// BoxFromSphere returns the box circumscribing s.
func BoxFromSphere(s BoundingSphere) BoundingBox {
	r := math3d.Splat3(s.Radius)
	return BoundingBox{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}

// BoxMerged returns the smallest box enclosing a and b.
func BoxMerged(a, b BoundingBox) BoundingBox {
	return BoundingBox{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Include returns the box grown to contain p.
func (b BoundingBox) Include(p math3d.Vec3) BoundingBox {
	return BoundingBox{Min: b.Min.Min(p), Max: b.Max.Max(p)}
}

// Center returns the center of the box.
func (b BoundingBox) Center() math3d.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Size returns the dimensions of the box.
func (b BoundingBox) Size() math3d.Vec3 {
	return b.Max.Sub(b.Min)
}

// Extent returns half the dimensions (extents from center).
func (b BoundingBox) Extent() math3d.Vec3 {
	return b.Size().Scale(0.5)
}

// Corners returns the eight corners. Bit 0 of the index selects Max.X,
// bit 1 Max.Y and bit 2 Max.Z.
func (b BoundingBox) Corners() [8]math3d.Vec3 {
	var c [8]math3d.Vec3
	for i := range c {
		c[i] = math3d.V3(
			selectComponent(i&1 != 0, b.Max.X, b.Min.X),
			selectComponent(i&2 != 0, b.Max.Y, b.Min.Y),
			selectComponent(i&4 != 0, b.Max.Z, b.Min.Z),
		)
	}
	return c
}

// Transform returns a box that bounds the original after transformation,
// computed from all 8 transformed corners.
func (b BoundingBox) Transform(m math3d.Mat4) BoundingBox {
	corners := b.Corners()
	first := m.MulVec3(corners[0])
	out := BoundingBox{Min: first, Max: first}
	for _, c := range corners[1:] {
		out = out.Include(m.MulVec3(c))
	}
	return out
}

// Contains classifies a point. Points on a face are contained.
func (b BoundingBox) Contains(p math3d.Vec3) ContainmentType {
	if p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z {
		return Contains
	}
	return Disjoint
}

// ContainsBox classifies o against b.
func (b BoundingBox) ContainsBox(o BoundingBox) ContainmentType {
	if !b.Intersects(o) {
		return Disjoint
	}
	if b.Min.X <= o.Min.X && o.Max.X <= b.Max.X &&
		b.Min.Y <= o.Min.Y && o.Max.Y <= b.Max.Y &&
		b.Min.Z <= o.Min.Z && o.Max.Z <= b.Max.Z {
		return Contains
	}
	return Intersects
}

// ContainsSphere classifies s against b.
func (b BoundingBox) ContainsSphere(s BoundingSphere) ContainmentType {
	if !s.IntersectsBox(b) {
		return Disjoint
	}

	c, r := s.Center, s.Radius
	inside := func(lo, hi, v float32) bool {
		return lo+r <= v && v <= hi-r && hi-lo > r
	}
	if inside(b.Min.X, b.Max.X, c.X) &&
		inside(b.Min.Y, b.Max.Y, c.Y) &&
		inside(b.Min.Z, b.Max.Z, c.Z) {
		return Contains
	}
	return Intersects
}

// Intersects reports whether the two boxes overlap or touch.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// IntersectsSphere reports whether the box overlaps or touches s.
func (b BoundingBox) IntersectsSphere(s BoundingSphere) bool {
	return s.IntersectsBox(b)
}

// IntersectsPlane classifies the box against p.
func (b BoundingBox) IntersectsPlane(p Plane) PlaneIntersectionType {
	return p.IntersectsBox(b)
}

// IntersectsRay returns the entry distance of r into the box.
func (b BoundingBox) IntersectsRay(r Ray) (float32, bool) {
	return r.IntersectsBox(b)
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("{Min:%v Max:%v}", b.Min, b.Max)
}
