package bounds

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/taigrr/geomkit/pkg/math3d"
)

func TestSphereContainsPoint(t *testing.T) {
	s := NewBoundingSphere(math3d.Zero3(), 2)

	tests := []struct {
		name  string
		point math3d.Vec3
		want  ContainmentType
	}{
		{"center", math3d.Zero3(), Contains},
		{"on surface X", math3d.V3(2, 0, 0), Contains},
		{"on surface Z", math3d.V3(0, 0, -2), Contains},
		{"just outside", math3d.V3(0, 2.001, 0), Disjoint},
		{"far", math3d.V3(10, 10, 10), Disjoint},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Contains(tc.point); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.point, got, tc.want)
			}
		})
	}
}

func TestSphereContainsSphere(t *testing.T) {
	s := NewBoundingSphere(math3d.Zero3(), 5)

	tests := []struct {
		name  string
		other BoundingSphere
		want  ContainmentType
	}{
		{"self", s, Contains},
		{"nested", NewBoundingSphere(math3d.V3(1, 0, 0), 1), Contains},
		{"touching inside", NewBoundingSphere(math3d.V3(4, 0, 0), 1), Contains},
		{"crossing surface", NewBoundingSphere(math3d.V3(5, 0, 0), 1), Intersects},
		{"larger", NewBoundingSphere(math3d.Zero3(), 6), Intersects},
		{"apart", NewBoundingSphere(math3d.V3(10, 0, 0), 1), Disjoint},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.ContainsSphere(tc.other); got != tc.want {
				t.Errorf("ContainsSphere(%v) = %v, want %v", tc.other, got, tc.want)
			}
		})
	}
}

func TestSphereContainsBox(t *testing.T) {
	s := NewBoundingSphere(math3d.Zero3(), 2)

	tests := []struct {
		name string
		box  BoundingBox
		want ContainmentType
	}{
		{"small box", NewBoundingBox(math3d.Splat3(-1), math3d.Splat3(1)), Contains},
		{"corner outside", NewBoundingBox(math3d.Splat3(-1.5), math3d.Splat3(1.5)), Intersects},
		{"far away", NewBoundingBox(math3d.Splat3(5), math3d.Splat3(6)), Disjoint},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.ContainsBox(tc.box); got != tc.want {
				t.Errorf("ContainsBox(%v) = %v, want %v", tc.box, got, tc.want)
			}
		})
	}
}

func TestSphereMergedSelf(t *testing.T) {
	spheres := []BoundingSphere{
		NewBoundingSphere(math3d.Zero3(), 1),
		NewBoundingSphere(math3d.V3(3, -2, 7), 0.25),
		NewBoundingSphere(math3d.V3(-1, 1, 1), 0),
	}
	for _, s := range spheres {
		if got := SphereMerged(s, s); got != s {
			t.Errorf("SphereMerged(%v, %v) = %v", s, s, got)
		}
	}
}

func TestSphereMergedContained(t *testing.T) {
	a := NewBoundingSphere(math3d.Zero3(), 10)
	b := NewBoundingSphere(math3d.V3(1, 0, 0), 2)

	if got := SphereMerged(a, b); got != a {
		t.Errorf("SphereMerged(a, b) = %v, want %v", got, a)
	}
	if got := SphereMerged(b, a); got != a {
		t.Errorf("SphereMerged(b, a) = %v, want %v", got, a)
	}
}

func TestSphereMergedDisjoint(t *testing.T) {
	a := NewBoundingSphere(math3d.Zero3(), 1)
	b := NewBoundingSphere(math3d.V3(4, 0, 0), 1)

	m := SphereMerged(a, b)
	if !m.Center.NearEqual(math3d.V3(2, 0, 0), tol) || math32.Abs(m.Radius-3) > tol {
		t.Errorf("SphereMerged = %v, want {<2, 0, 0> 3}", m)
	}
	if m.ContainsSphere(a) != Contains || m.ContainsSphere(b) != Contains {
		t.Errorf("merged sphere %v does not contain its inputs", m)
	}
}

func TestSphereFromBoxIntersectsBox(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	boxes := []BoundingBox{
		NewBoundingBox(math3d.Splat3(-1), math3d.Splat3(1)),
		NewBoundingBox(math3d.V3(2, 3, 4), math3d.V3(2, 3, 4)),
		NewBoundingBox(math3d.V3(-100, 0, 0), math3d.V3(100, 0, 0.5)),
	}
	for range 100 {
		lo := math3d.V3(rng.Float32()*200-100, rng.Float32()*200-100, rng.Float32()*200-100)
		size := math3d.V3(rng.Float32()*50, rng.Float32()*50, rng.Float32()*50)
		boxes = append(boxes, NewBoundingBox(lo, lo.Add(size)))
	}

	for _, b := range boxes {
		s := SphereFromBox(b)
		if !s.IntersectsBox(b) {
			t.Errorf("SphereFromBox(%v) = %v does not intersect its box", b, s)
		}
		if !b.IntersectsSphere(s) {
			t.Errorf("box %v does not intersect its sphere %v", b, s)
		}
	}
}

func TestSphereFromPoints(t *testing.T) {
	if _, err := SphereFromPoints(nil); !errors.Is(err, ErrNoPoints) {
		t.Errorf("empty input err = %v, want ErrNoPoints", err)
	}

	single, err := SphereFromPoints([]math3d.Vec3{math3d.V3(1, 2, 3)})
	if err != nil {
		t.Fatal(err)
	}
	if single.Center != math3d.V3(1, 2, 3) || single.Radius != 0 {
		t.Errorf("single point sphere = %v", single)
	}

	s, err := SphereFromPoints([]math3d.Vec3{
		math3d.V3(-1, 0, 0),
		math3d.V3(1, 0, 0),
		math3d.V3(0, 0.5, 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	if s.Center != math3d.Zero3() || s.Radius != 1 {
		t.Errorf("sphere = %v, want {<0, 0, 0> 1}", s)
	}
}

func TestSphereFromPointsEnclosesAll(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	points := make([]math3d.Vec3, 500)
	for i := range points {
		points[i] = math3d.V3(rng.Float32()*20-10, rng.Float32()*4-2, rng.Float32()*50)
	}

	s, err := SphereFromPoints(points)
	if err != nil {
		t.Fatal(err)
	}
	slack := s.Radius*1e-5 + 1e-5
	for _, p := range points {
		if d := p.Distance(s.Center); d > s.Radius+slack {
			t.Fatalf("point %v is %v from center, radius %v", p, d, s.Radius)
		}
	}
}

func TestSphereTransform(t *testing.T) {
	s := NewBoundingSphere(math3d.V3(1, 0, 0), 1)
	m := math3d.Translate(math3d.V3(0, 2, 0)).Mul(math3d.Scale(math3d.V3(1, 3, 2)))

	got := s.Transform(m)
	if !got.Center.NearEqual(math3d.V3(1, 2, 0), tol) {
		t.Errorf("center = %v, want <1, 2, 0>", got.Center)
	}
	if math32.Abs(got.Radius-3) > tol {
		t.Errorf("radius = %v, want 3 (largest axis scale)", got.Radius)
	}

	rotated := s.Transform(math3d.RotateZ(0.7))
	if math32.Abs(rotated.Radius-1) > tol {
		t.Errorf("rotation changed radius to %v", rotated.Radius)
	}
}

func TestSphereIntersects(t *testing.T) {
	a := NewBoundingSphere(math3d.Zero3(), 1)

	if !a.Intersects(NewBoundingSphere(math3d.V3(2, 0, 0), 1)) {
		t.Error("touching spheres should intersect")
	}
	if a.Intersects(NewBoundingSphere(math3d.V3(2.5, 0, 0), 1)) {
		t.Error("separated spheres should not intersect")
	}
	if !a.IntersectsBox(NewBoundingBox(math3d.V3(1, -1, -1), math3d.V3(2, 1, 1))) {
		t.Error("box touching the sphere should intersect")
	}
	if a.IntersectsBox(NewBoundingBox(math3d.Splat3(0.8), math3d.Splat3(2))) {
		t.Error("box beyond the sphere's diagonal should not intersect")
	}
}

func TestSphereValid(t *testing.T) {
	if !NewBoundingSphere(math3d.Zero3(), 0).Valid() {
		t.Error("zero radius should be valid")
	}
	if NewBoundingSphere(math3d.Zero3(), -1).Valid() {
		t.Error("negative radius should be invalid")
	}
	if NewBoundingSphere(math3d.Zero3(), math32.NaN()).Valid() {
		t.Error("NaN radius should be invalid")
	}
}
