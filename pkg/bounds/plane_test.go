package bounds

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/taigrr/geomkit/pkg/math3d"
)

const tol = 1e-5

func TestPlaneDotCoordinate(t *testing.T) {
	// Plane at Z=0, normal pointing +Z
	plane := Plane{Normal: math3d.V3(0, 0, 1), D: 0}

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected float32
	}{
		{"origin", math3d.V3(0, 0, 0), 0},
		{"in front", math3d.V3(0, 0, 5), 5},
		{"behind", math3d.V3(0, 0, -3), -3},
		{"offset XY", math3d.V3(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dist := plane.DotCoordinate(tc.point)
			if math32.Abs(dist-tc.expected) > tol {
				t.Errorf("got %v, want %v", dist, tc.expected)
			}
		})
	}
}

func TestPlaneNormalize(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0, 3, 4), D: 10}
	plane.Normalize()

	if length := plane.Normal.Len(); math32.Abs(length-1) > tol {
		t.Errorf("normalized normal length = %v, want 1.0", length)
	}
	if !plane.Normal.NearEqual(math3d.V3(0, 0.6, 0.8), tol) {
		t.Errorf("normal = %v, want (0, 0.6, 0.8)", plane.Normal)
	}
	// D should be scaled too (10/5 = 2)
	if math32.Abs(plane.D-2) > tol {
		t.Errorf("D = %v, want 2.0", plane.D)
	}

	zero := Plane{D: 3}
	zero.Normalize()
	if zero.D != 3 {
		t.Errorf("zero-normal plane changed: %v", zero)
	}
}

func TestPlaneConstruction(t *testing.T) {
	p := PlaneFromPointNormal(math3d.V3(0, 0, 4), math3d.V3(0, 0, 1))
	if p.D != -4 {
		t.Errorf("PlaneFromPointNormal D = %v, want -4", p.D)
	}

	q := PlaneFromPoints(math3d.V3(0, 0, 2), math3d.V3(1, 0, 2), math3d.V3(0, 1, 2))
	if !q.Normal.NearEqual(math3d.V3(0, 0, 1), tol) || math32.Abs(q.D+2) > tol {
		t.Errorf("PlaneFromPoints = %v, want {<0, 0, 1> -2}", q)
	}
}

func TestPlaneIntersectsBox(t *testing.T) {
	plane := NewPlane(math3d.V3(0, 0, 1), 0)

	tests := []struct {
		name string
		box  BoundingBox
		want PlaneIntersectionType
	}{
		{"in front", NewBoundingBox(math3d.V3(-1, -1, 1), math3d.V3(1, 1, 2)), Front},
		{"behind", NewBoundingBox(math3d.V3(-1, -1, -2), math3d.V3(1, 1, -1)), Back},
		{"straddling", NewBoundingBox(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1)), Intersecting},
		{"touching", NewBoundingBox(math3d.V3(-1, -1, 0), math3d.V3(1, 1, 1)), Intersecting},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := plane.IntersectsBox(tc.box); got != tc.want {
				t.Errorf("IntersectsBox(%v) = %v, want %v", tc.box, got, tc.want)
			}
			if got := tc.box.IntersectsPlane(plane); got != tc.want {
				t.Errorf("BoundingBox.IntersectsPlane = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPlaneIntersectsSphere(t *testing.T) {
	plane := NewPlane(math3d.V3(0, 0, 1), 0)

	tests := []struct {
		name   string
		sphere BoundingSphere
		want   PlaneIntersectionType
	}{
		{"in front", NewBoundingSphere(math3d.V3(0, 0, 5), 1), Front},
		{"behind", NewBoundingSphere(math3d.V3(0, 0, -5), 1), Back},
		{"straddling", NewBoundingSphere(math3d.V3(0, 0, 0.5), 1), Intersecting},
		{"tangent front", NewBoundingSphere(math3d.V3(0, 0, 1), 1), Intersecting},
		{"tangent back", NewBoundingSphere(math3d.V3(0, 0, -1), 1), Intersecting},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := plane.IntersectsSphere(tc.sphere); got != tc.want {
				t.Errorf("IntersectsSphere(%v) = %v, want %v", tc.sphere, got, tc.want)
			}
		})
	}
}

func TestPlaneIntersectsPoint(t *testing.T) {
	plane := NewPlane(math3d.V3(0, 1, 0), -1)

	if got := plane.IntersectsPoint(math3d.V3(0, 2, 0)); got != Front {
		t.Errorf("above = %v, want Front", got)
	}
	if got := plane.IntersectsPoint(math3d.V3(0, 0, 0)); got != Back {
		t.Errorf("below = %v, want Back", got)
	}
	if got := plane.IntersectsPoint(math3d.V3(7, 1, -3)); got != Intersecting {
		t.Errorf("on plane = %v, want Intersecting", got)
	}
}

func TestPlaneTransform(t *testing.T) {
	plane := NewPlane(math3d.V3(0, 0, 1), 0)

	moved := plane.Transform(math3d.Translate(math3d.V3(0, 0, 3)))
	if !moved.Normal.NearEqual(math3d.V3(0, 0, 1), tol) || math32.Abs(moved.D+3) > tol {
		t.Errorf("translated plane = %v, want {<0, 0, 1> -3}", moved)
	}

	turned := plane.Transform(math3d.RotateX(math3d.PiOver2))
	if !turned.Normal.NearEqual(math3d.V3(0, -1, 0), tol) {
		t.Errorf("rotated normal = %v, want <0, -1, 0>", turned.Normal)
	}
}

func TestPlaneIntersectsPlane(t *testing.T) {
	a := NewPlane(math3d.V3(0, 0, 1), -2) // z = 2
	b := NewPlane(math3d.V3(1, 0, 0), -1) // x = 1

	line, ok := a.IntersectsPlane(b)
	if !ok {
		t.Fatal("planes reported parallel")
	}
	if !line.Position.NearEqual(math3d.V3(1, 0, 2), tol) {
		t.Errorf("line point = %v, want <1, 0, 2>", line.Position)
	}
	if !line.Direction.NearEqual(math3d.V3(0, 1, 0), tol) {
		t.Errorf("line direction = %v, want <0, 1, 0>", line.Direction)
	}

	if _, ok := a.IntersectsPlane(NewPlane(math3d.V3(0, 0, 1), 5)); ok {
		t.Error("parallel planes intersected")
	}
}

func TestEnumStrings(t *testing.T) {
	if Intersects.String() != "Intersects" || Disjoint.String() != "Disjoint" || Contains.String() != "Contains" {
		t.Error("ContainmentType names")
	}
	if Front.String() != "Front" || Back.String() != "Back" || Intersecting.String() != "Intersecting" {
		t.Error("PlaneIntersectionType names")
	}
}
