package bounds

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"github.com/taigrr/geomkit/pkg/math3d"
)

// Ray is a half-line starting at Position. Distances returned by the
// intersection tests are in units of Direction, so they are true distances
// only when Direction is normalized.
type Ray struct {
	Position  math3d.Vec3
	Direction math3d.Vec3
}

// NewRay creates a ray. The direction is used as given.
func NewRay(position, direction math3d.Vec3) Ray {
	return Ray{Position: position, Direction: direction}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float32) math3d.Vec3 {
	return r.Position.Add(r.Direction.Scale(t))
}

// Transform maps the ray through m. The direction is not renormalized, so
// distances along the result are measured in the source space.
func (r Ray) Transform(m math3d.Mat4) Ray {
	return Ray{Position: m.MulVec3(r.Position), Direction: m.MulVec3Dir(r.Direction)}
}

// IntersectsPlane returns the distance to the plane. A ray parallel to the
// plane misses. Hits up to ZeroTolerance behind the origin count as a hit at
// distance 0.
func (r Ray) IntersectsPlane(p Plane) (float32, bool) {
	denom := p.Normal.Dot(r.Direction)
	if math32.Abs(denom) < ZeroTolerance {
		return 0, false
	}

	t := (-p.D - p.Normal.Dot(r.Position)) / denom
	if t < 0 {
		if t < -ZeroTolerance {
			return 0, false
		}
		t = 0
	}
	return t, true
}

// IntersectsPlanePoint is IntersectsPlane returning the hit point.
func (r Ray) IntersectsPlanePoint(p Plane) (math3d.Vec3, bool) {
	t, ok := r.IntersectsPlane(p)
	if !ok {
		return math3d.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectsSphere returns the distance to the first hit on the sphere. A ray
// starting inside the sphere hits at distance 0.
func (r Ray) IntersectsSphere(s BoundingSphere) (float32, bool) {
	m := r.Position.Sub(s.Center)
	b := m.Dot(r.Direction)
	c := m.Dot(m) - s.Radius*s.Radius

	// Outside and pointing away.
	if c > 0 && b > 0 {
		return 0, false
	}

	disc := b*b - c
	if disc < 0 {
		return 0, false
	}

	t := -b - math32.Sqrt(disc)
	if t < 0 {
		t = 0
	}
	return t, true
}

// IntersectsSpherePoint is IntersectsSphere returning the hit point.
func (r Ray) IntersectsSpherePoint(s BoundingSphere) (math3d.Vec3, bool) {
	t, ok := r.IntersectsSphere(s)
	if !ok {
		return math3d.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectsBox returns the entry distance into the box using the slab test.
// A ray starting inside the box hits at distance 0.
func (r Ray) IntersectsBox(b BoundingBox) (float32, bool) {
	var dist float32
	tmax := float32(math.MaxFloat32)

	pos := r.Position.Array()
	dir := r.Direction.Array()
	lo := b.Min.Array()
	hi := b.Max.Array()

	for i := range 3 {
		if math32.Abs(dir[i]) < ZeroTolerance {
			// Parallel to this slab: must already be inside it.
			if pos[i] < lo[i] || pos[i] > hi[i] {
				return 0, false
			}
			continue
		}

		inv := 1 / dir[i]
		t1 := (lo[i] - pos[i]) * inv
		t2 := (hi[i] - pos[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		dist = math32.Max(t1, dist)
		tmax = math32.Min(t2, tmax)
		if dist > tmax {
			return 0, false
		}
	}
	return dist, true
}

// IntersectsBoxPoint is IntersectsBox returning the hit point.
func (r Ray) IntersectsBoxPoint(b BoundingBox) (math3d.Vec3, bool) {
	t, ok := r.IntersectsBox(b)
	if !ok {
		return math3d.Vec3{}, false
	}
	return r.At(t), true
}

// IntersectsTriangle runs the Möller–Trumbore test against the triangle
// v1 v2 v3 and returns the distance to the hit. Both faces are hit; there is
// no back-face culling.
func (r Ray) IntersectsTriangle(v1, v2, v3 math3d.Vec3) (float32, bool) {
	edge1 := v2.Sub(v1)
	edge2 := v3.Sub(v1)

	dirCrossEdge2 := r.Direction.Cross(edge2)
	det := edge1.Dot(dirCrossEdge2)

	// Parallel to the triangle's plane.
	if math32.Abs(det) < RayEpsilon {
		return 0, false
	}
	inv := 1 / det

	dist := r.Position.Sub(v1)
	u := dist.Dot(dirCrossEdge2) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	distCrossEdge1 := dist.Cross(edge1)
	v := r.Direction.Dot(distCrossEdge1) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := edge2.Dot(distCrossEdge1) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectsTrianglePoint is IntersectsTriangle returning the hit point.
func (r Ray) IntersectsTrianglePoint(v1, v2, v3 math3d.Vec3) (math3d.Vec3, bool) {
	t, ok := r.IntersectsTriangle(v1, v2, v3)
	if !ok {
		return math3d.Vec3{}, false
	}
	return r.At(t), true
}

func (r Ray) String() string {
	return fmt.Sprintf("{Position:%v Direction:%v}", r.Position, r.Direction)
}
