package bounds

import (
	"github.com/taigrr/geomkit/pkg/math3d"
)

// FrustumPlane indices for clarity.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// BoundingFrustum represents the 6 planes of a view frustum.
// Planes are ordered: Left, Right, Bottom, Top, Near, Far.
// Each plane's normal points inward (toward the center of the frustum).
type BoundingFrustum struct {
	Planes [6]Plane
	Matrix math3d.Mat4
}

// NewBoundingFrustum extracts frustum planes from a view-projection matrix
// using the Gribb/Hartmann method. The resulting planes are normalized and
// their normals point inward.
func NewBoundingFrustum(m math3d.Mat4) BoundingFrustum {
	f := BoundingFrustum{Matrix: m}

	// For column-major m, row i element j is at m[i + j*4].
	row := func(i int) math3d.Vec4 {
		return math3d.V4(m[i], m[i+4], m[i+8], m[i+12])
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	for i, v := range [6]math3d.Vec4{
		FrustumLeft:   r3.Add(r0),
		FrustumRight:  r3.Sub(r0),
		FrustumBottom: r3.Add(r1),
		FrustumTop:    r3.Sub(r1),
		FrustumNear:   r3.Add(r2),
		FrustumFar:    r3.Sub(r2),
	} {
		f.Planes[i] = Plane{Normal: v.Vec3(), D: v.W}.Normalized()
	}

	return f
}

// Contains classifies a point. A point on a face is Intersects.
func (f BoundingFrustum) Contains(p math3d.Vec3) ContainmentType {
	result := Contains
	for i := range f.Planes {
		switch f.Planes[i].IntersectsPoint(p) {
		case Back:
			return Disjoint
		case Intersecting:
			result = Intersects
		}
	}
	return result
}

// ContainsBox classifies a box against the frustum. The test is conservative:
// a box near a frustum edge may be reported as Intersects while lying outside.
func (f BoundingFrustum) ContainsBox(b BoundingBox) ContainmentType {
	result := Contains
	for i := range f.Planes {
		switch f.Planes[i].IntersectsBox(b) {
		case Back:
			return Disjoint
		case Intersecting:
			result = Intersects
		}
	}
	return result
}

// ContainsSphere classifies a sphere against the frustum, with the same
// conservative edge behavior as ContainsBox.
func (f BoundingFrustum) ContainsSphere(s BoundingSphere) ContainmentType {
	result := Contains
	for i := range f.Planes {
		switch s.IntersectsPlane(f.Planes[i]) {
		case Back:
			return Disjoint
		case Intersecting:
			result = Intersects
		}
	}
	return result
}

// Intersects reports whether any part of the box may be visible.
func (f BoundingFrustum) Intersects(b BoundingBox) bool {
	return f.ContainsBox(b) != Disjoint
}

// IntersectsSphere reports whether any part of the sphere may be visible.
func (f BoundingFrustum) IntersectsSphere(s BoundingSphere) bool {
	return f.ContainsSphere(s) != Disjoint
}

// Corners returns the four near corners followed by the four far corners,
// each set ordered bottom-right, top-right, top-left, bottom-left.
func (f BoundingFrustum) Corners() [8]math3d.Vec3 {
	var c [8]math3d.Vec3
	p := f.Planes
	for i, end := range [2]Plane{p[FrustumNear], p[FrustumFar]} {
		c[i*4+0], _ = intersectPlanes(end, p[FrustumBottom], p[FrustumRight])
		c[i*4+1], _ = intersectPlanes(end, p[FrustumTop], p[FrustumRight])
		c[i*4+2], _ = intersectPlanes(end, p[FrustumTop], p[FrustumLeft])
		c[i*4+3], _ = intersectPlanes(end, p[FrustumBottom], p[FrustumLeft])
	}
	return c
}

// Bounds returns the axis-aligned box around the frustum's corners.
func (f BoundingFrustum) Bounds() BoundingBox {
	c := f.Corners()
	b, _ := BoxFromPoints(c[:])
	return b
}
