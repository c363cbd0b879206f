package bounds

import (
	"fmt"

	"github.com/taigrr/geomkit/pkg/math3d"
)

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the normal and D is the distance from origin.
type Plane struct {
	Normal math3d.Vec3
	D      float32
}

// NewPlane returns the plane normal·x + d = 0. The normal is used as given.
func NewPlane(normal math3d.Vec3, d float32) Plane {
	return Plane{Normal: normal, D: d}
}

// PlaneFromPointNormal returns the plane through point with the given normal.
func PlaneFromPointNormal(point, normal math3d.Vec3) Plane {
	return Plane{Normal: normal, D: -normal.Dot(point)}
}

// PlaneFromPoints returns the plane through a, b and c. The normal follows
// the right-hand rule over a→b→c and is normalized.
func PlaneFromPoints(a, b, c math3d.Vec3) Plane {
	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	return PlaneFromPointNormal(a, n)
}

// Normalize normalizes the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1 / l)
	p.D /= l
}

// Normalized returns a copy of p with a unit normal.
func (p Plane) Normalized() Plane {
	p.Normalize()
	return p
}

// DotCoordinate returns normal·point + D, the signed distance to point for a
// normalized plane. Positive is in front (the side the normal points to).
func (p Plane) DotCoordinate(point math3d.Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

// DotNormal returns normal·v, ignoring D.
func (p Plane) DotNormal(v math3d.Vec3) float32 {
	return p.Normal.Dot(v)
}

// Transform maps the plane through m. Normals are carried by the inverse
// transpose, so the result is not normalized when m scales.
func (p Plane) Transform(m math3d.Mat4) Plane {
	v := m.Inverse().Transpose().MulVec4(math3d.V4FromV3(p.Normal, p.D))
	return Plane{Normal: v.Vec3(), D: v.W}
}

// IntersectsPoint classifies a point. A point exactly on the plane is Intersecting.
func (p Plane) IntersectsPoint(point math3d.Vec3) PlaneIntersectionType {
	d := p.DotCoordinate(point)
	switch {
	case d > 0:
		return Front
	case d < 0:
		return Back
	}
	return Intersecting
}

// IntersectsBox classifies a box using the two corners nearest to and
// furthest from the plane along its normal.
func (p Plane) IntersectsBox(b BoundingBox) PlaneIntersectionType {
	// Nearest corner in the normal direction; if it is in front, all are.
	near := math3d.V3(
		selectComponent(p.Normal.X >= 0, b.Min.X, b.Max.X),
		selectComponent(p.Normal.Y >= 0, b.Min.Y, b.Max.Y),
		selectComponent(p.Normal.Z >= 0, b.Min.Z, b.Max.Z),
	)
	if p.DotCoordinate(near) > 0 {
		return Front
	}

	far := math3d.V3(
		selectComponent(p.Normal.X >= 0, b.Max.X, b.Min.X),
		selectComponent(p.Normal.Y >= 0, b.Max.Y, b.Min.Y),
		selectComponent(p.Normal.Z >= 0, b.Max.Z, b.Min.Z),
	)
	if p.DotCoordinate(far) < 0 {
		return Back
	}
	return Intersecting
}

// IntersectsSphere classifies a sphere; see BoundingSphere.IntersectsPlane.
func (p Plane) IntersectsSphere(s BoundingSphere) PlaneIntersectionType {
	return s.IntersectsPlane(p)
}

// IntersectsPlane returns the line shared by two planes. ok is false for
// parallel planes.
func (p Plane) IntersectsPlane(q Plane) (line Ray, ok bool) {
	dir := p.Normal.Cross(q.Normal)
	lenSq := dir.LenSq()
	if lenSq < ZeroTolerance {
		return Ray{}, false
	}

	// Solve n1·x = -D1, n2·x = -D2 for the point on the line closest to the origin.
	point := q.Normal.Cross(dir).Scale(-p.D).
		Add(dir.Cross(p.Normal).Scale(-q.D)).
		Div(lenSq)
	return Ray{Position: point, Direction: dir.Normalize()}, true
}

// intersectPlanes returns the single point shared by three planes, or false
// when any two are parallel.
func intersectPlanes(a, b, c Plane) (math3d.Vec3, bool) {
	bc := b.Normal.Cross(c.Normal)
	det := a.Normal.Dot(bc)
	if math3d.IsZero(det) {
		return math3d.Vec3{}, false
	}
	ca := c.Normal.Cross(a.Normal)
	ab := a.Normal.Cross(b.Normal)
	sum := bc.Scale(a.D).Add(ca.Scale(b.D)).Add(ab.Scale(c.D))
	return sum.Scale(-1 / det), true
}

func (p Plane) String() string {
	return fmt.Sprintf("{Normal:%v D:%g}", p.Normal, p.D)
}
