package bounds

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/taigrr/geomkit/pkg/math3d"
)

// BoundingSphere is a sphere used as a bounding volume. A negative radius is
// not rejected but gives meaningless results from every query; see Valid.
type BoundingSphere struct {
	Center math3d.Vec3
	Radius float32
}

// NewBoundingSphere creates a sphere.
func NewBoundingSphere(center math3d.Vec3, radius float32) BoundingSphere {
	return BoundingSphere{Center: center, Radius: radius}
}

// SphereFromPoints returns a sphere enclosing every point. It is a single
// expanding pass seeded by the most separated pair of axis extremes, so the
// result is tight but not minimal.
func SphereFromPoints(points []math3d.Vec3) (BoundingSphere, error) {
	if len(points) == 0 {
		return BoundingSphere{}, fmt.Errorf("sphere from points: %w", ErrNoPoints)
	}

	// Extreme points along each axis.
	minX, maxX := points[0], points[0]
	minY, maxY := points[0], points[0]
	minZ, maxZ := points[0], points[0]
	for _, p := range points[1:] {
		if p.X < minX.X {
			minX = p
		}
		if p.X > maxX.X {
			maxX = p
		}
		if p.Y < minY.Y {
			minY = p
		}
		if p.Y > maxY.Y {
			maxY = p
		}
		if p.Z < minZ.Z {
			minZ = p
		}
		if p.Z > maxZ.Z {
			maxZ = p
		}
	}

	lo, hi := minX, maxX
	spanX := maxX.DistanceSq(minX)
	spanY := maxY.DistanceSq(minY)
	spanZ := maxZ.DistanceSq(minZ)
	if spanY > spanX && spanY > spanZ {
		lo, hi = minY, maxY
	}
	if spanZ > spanX && spanZ > spanY {
		lo, hi = minZ, maxZ
	}

	center := lo.Add(hi).Scale(0.5)
	radius := hi.Distance(center)

	for _, p := range points {
		distSq := p.DistanceSq(center)
		if distSq <= radius*radius {
			continue
		}
		dist := math32.Sqrt(distSq)
		grown := (radius + dist) * 0.5
		center = center.Add(p.Sub(center).Scale(1 - grown/dist))
		radius = grown
	}

	return BoundingSphere{Center: center, Radius: radius}, nil
}

// SphereFromBox returns the sphere through the corners of b.
func SphereFromBox(b BoundingBox) BoundingSphere {
	center := b.Center()
	return BoundingSphere{Center: center, Radius: b.Max.Distance(center)}
}

// SphereMerged returns the smallest sphere enclosing a and b. When one
// already encloses the other it is returned unchanged.
func SphereMerged(a, b BoundingSphere) BoundingSphere {
	diff := b.Center.Sub(a.Center)
	d := diff.Len()

	if a.Radius-b.Radius >= d {
		return a
	}
	if b.Radius-a.Radius >= d {
		return b
	}

	// Only reachable with NaN radii or rounding on nearly coincident
	// centers; there is no direction to grow along.
	if d < ZeroTolerance {
		if a.Radius >= b.Radius {
			return a
		}
		return b
	}

	n := diff.Scale(1 / d)
	t1 := math32.Min(-a.Radius, d-b.Radius)
	t2 := math32.Max(a.Radius, d+b.Radius)
	r := (t2 - t1) * 0.5

	return BoundingSphere{
		Center: a.Center.Add(n.Scale(r + t1)),
		Radius: r,
	}
}

// Valid reports whether the radius is a non-negative number.
func (s BoundingSphere) Valid() bool {
	return s.Radius >= 0
}

// Transform maps the sphere through m. The radius grows by the largest axis
// scale of m, so a non-uniform scale gives a conservative sphere rather than
// the exact ellipsoid.
func (s BoundingSphere) Transform(m math3d.Mat4) BoundingSphere {
	return BoundingSphere{
		Center: m.MulVec3(s.Center),
		Radius: s.Radius * math32.Sqrt(m.MaxScaleSq()),
	}
}

// Contains classifies a point. Points on the surface are contained.
func (s BoundingSphere) Contains(p math3d.Vec3) ContainmentType {
	if p.DistanceSq(s.Center) <= s.Radius*s.Radius {
		return Contains
	}
	return Disjoint
}

// ContainsSphere classifies o against s.
func (s BoundingSphere) ContainsSphere(o BoundingSphere) ContainmentType {
	d := s.Center.Distance(o.Center)

	switch {
	case s.Radius+o.Radius < d:
		return Disjoint
	case s.Radius-o.Radius < d:
		return Intersects
	}
	return Contains
}

// ContainsBox classifies b against s. The box is contained only when all
// eight corners are.
func (s BoundingSphere) ContainsBox(b BoundingBox) ContainmentType {
	if !s.IntersectsBox(b) {
		return Disjoint
	}

	rSq := s.Radius * s.Radius
	for _, c := range b.Corners() {
		if c.DistanceSq(s.Center) > rSq {
			return Intersects
		}
	}
	return Contains
}

// Intersects reports whether the two spheres overlap or touch.
func (s BoundingSphere) Intersects(o BoundingSphere) bool {
	r := s.Radius + o.Radius
	return s.Center.DistanceSq(o.Center) <= r*r
}

// IntersectsBox reports whether the sphere overlaps or touches b.
func (s BoundingSphere) IntersectsBox(b BoundingBox) bool {
	closest := s.Center.Clamp(b.Min, b.Max)
	return s.Center.DistanceSq(closest) <= s.Radius*s.Radius
}

// IntersectsPlane classifies the sphere against p by its signed center
// distance. A sphere exactly tangent to the plane is Intersecting.
func (s BoundingSphere) IntersectsPlane(p Plane) PlaneIntersectionType {
	d := p.DotCoordinate(s.Center)
	switch {
	case d > s.Radius:
		return Front
	case d < -s.Radius:
		return Back
	}
	return Intersecting
}

// IntersectsRay returns the distance along r to the sphere. See Ray.IntersectsSphere.
func (s BoundingSphere) IntersectsRay(r Ray) (float32, bool) {
	return r.IntersectsSphere(s)
}

func (s BoundingSphere) String() string {
	return fmt.Sprintf("{Center:%v Radius:%g}", s.Center, s.Radius)
}
