package models

import (
	"github.com/taigrr/geomkit/pkg/bounds"
	"github.com/taigrr/geomkit/pkg/math3d"
)

// Hit describes the nearest triangle a ray struck.
type Hit struct {
	Face     int
	Distance float32
	Point    math3d.Vec3
	Normal   math3d.Vec3 // geometric normal, facing the ray origin
}

// Raycast returns the nearest triangle hit by r. The mesh's bounding
// sphere and box reject rays that cannot hit before any triangle is
// tested. Back faces are hit as well as front faces.
func (m *Mesh) Raycast(r bounds.Ray) (Hit, bool) {
	if len(m.Faces) == 0 {
		return Hit{}, false
	}
	if _, ok := r.IntersectsSphere(m.Sphere); !ok {
		return Hit{}, false
	}
	if _, ok := r.IntersectsBox(m.Box); !ok {
		return Hit{}, false
	}

	best := Hit{Face: -1}
	for i := range m.Faces {
		a, b, c := m.Triangle(i)
		t, ok := r.IntersectsTriangle(a, b, c)
		if !ok || (best.Face >= 0 && t >= best.Distance) {
			continue
		}
		best.Face, best.Distance = i, t
	}
	if best.Face < 0 {
		return Hit{}, false
	}

	a, b, c := m.Triangle(best.Face)
	best.Point = r.At(best.Distance)
	best.Normal = b.Sub(a).Cross(c.Sub(a)).Normalize()
	if best.Normal.Dot(r.Direction) > 0 {
		best.Normal = best.Normal.Negate()
	}
	return best, true
}

// Barycentric returns the weights of p relative to the corners of face
// i. The weights sum to one; they are all zero for a degenerate face.
func (m *Mesh) Barycentric(i int, p math3d.Vec3) (u, v, w float32) {
	a, b, c := m.Triangle(i)
	v0, v1, v2 := b.Sub(a), c.Sub(a), p.Sub(a)
	d00, d01, d11 := v0.Dot(v0), v0.Dot(v1), v1.Dot(v1)
	d20, d21 := v2.Dot(v0), v2.Dot(v1)
	denom := d00*d11 - d01*d01
	if denom == 0 {
		return 0, 0, 0
	}
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	return 1 - v - w, v, w
}

// UVAt interpolates the texture coordinate at a hit point.
func (m *Mesh) UVAt(h Hit) math3d.Vec2 {
	u, v, w := m.Barycentric(h.Face, h.Point)
	f := m.Faces[h.Face].V
	return m.Vertices[f[0]].UV.Scale(u).
		Add(m.Vertices[f[1]].UV.Scale(v)).
		Add(m.Vertices[f[2]].UV.Scale(w))
}

// Cull reports how the mesh's bounding volumes relate to f. The sphere
// is tested first because it is cheaper; the box refines a sphere that
// straddles a plane.
func (m *Mesh) Cull(f bounds.BoundingFrustum) bounds.ContainmentType {
	switch f.ContainsSphere(m.Sphere) {
	case bounds.Disjoint:
		return bounds.Disjoint
	case bounds.Contains:
		return bounds.Contains
	}
	return f.ContainsBox(m.Box)
}
