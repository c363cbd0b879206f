package models

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/taigrr/geomkit/pkg/bounds"
	"github.com/taigrr/geomkit/pkg/math3d"
)

func TestRaycast(t *testing.T) {
	m := quadMesh(t)

	tests := []struct {
		name     string
		ray      bounds.Ray
		wantOK   bool
		wantFace int
		wantDist float32
		wantN    math3d.Vec3
	}{
		{"front lower", bounds.NewRay(math3d.V3(0.25, 0.25, 5), math3d.V3(0, 0, -1)), true, 0, 5, math3d.V3(0, 0, 1)},
		{"front upper", bounds.NewRay(math3d.V3(0.75, 0.75, 2), math3d.V3(0, 0, -1)), true, 1, 2, math3d.V3(0, 0, 1)},
		{"from behind", bounds.NewRay(math3d.V3(0.25, 0.25, -3), math3d.V3(0, 0, 1)), true, 0, 3, math3d.V3(0, 0, -1)},
		{"beside", bounds.NewRay(math3d.V3(5, 5, 5), math3d.V3(0, 0, -1)), false, 0, 0, math3d.Vec3{}},
		{"pointing away", bounds.NewRay(math3d.V3(0.25, 0.25, 5), math3d.V3(0, 0, 1)), false, 0, 0, math3d.Vec3{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := m.Raycast(tc.ray)
			if ok != tc.wantOK {
				t.Fatalf("hit = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if hit.Face != tc.wantFace {
				t.Errorf("face = %d, want %d", hit.Face, tc.wantFace)
			}
			if math32.Abs(hit.Distance-tc.wantDist) > 1e-5 {
				t.Errorf("distance = %v, want %v", hit.Distance, tc.wantDist)
			}
			if !hit.Normal.NearEqual(tc.wantN, 1e-6) {
				t.Errorf("normal = %v, want %v", hit.Normal, tc.wantN)
			}
			if hit.Point.Z != 0 {
				t.Errorf("point = %v, want on z=0", hit.Point)
			}
		})
	}
}

func TestRaycastNearest(t *testing.T) {
	m := quadMesh(t)
	// A second quad one unit in front of the first.
	for i := range 4 {
		v := m.Vertices[i]
		v.Position.Z = 1
		m.Vertices = append(m.Vertices, v)
	}
	m.Faces = append(m.Faces, Face{V: [3]int{4, 5, 6}, Material: -1})
	if err := m.CalculateBounds(); err != nil {
		t.Fatal(err)
	}

	hit, ok := m.Raycast(bounds.NewRay(math3d.V3(0.2, 0.2, 10), math3d.V3(0, 0, -1)))
	if !ok || hit.Face != 2 || hit.Distance != 9 {
		t.Errorf("hit = %+v, %v; want face 2 at 9", hit, ok)
	}
}

func TestUVAt(t *testing.T) {
	m := quadMesh(t)
	hit, ok := m.Raycast(bounds.NewRay(math3d.V3(0.25, 0.5, 1), math3d.V3(0, 0, -1)))
	if !ok {
		t.Fatal("expected hit")
	}
	if uv := m.UVAt(hit); !uv.NearEqual(math3d.V2(0.25, 0.5), 1e-5) {
		t.Errorf("UVAt = %v", uv)
	}

	u, v, w := m.Barycentric(0, math3d.V3(0, 0, 0))
	if u != 1 || v != 0 || w != 0 {
		t.Errorf("Barycentric at corner = %v %v %v", u, v, w)
	}
}

func TestCull(t *testing.T) {
	m := quadMesh(t)
	view := math3d.LookAt(math3d.V3(0.5, 0.5, 5), math3d.V3(0.5, 0.5, 0), math3d.Up())
	proj := math3d.Perspective(math32.Pi/3, 1, 0.1, 100)
	frustum := bounds.NewBoundingFrustum(proj.Mul(view))

	if got := m.Cull(frustum); got != bounds.Contains {
		t.Errorf("facing quad = %v, want Contains", got)
	}

	m.Transform(math3d.Translate(math3d.V3(0, 0, 20)))
	if got := m.Cull(frustum); got != bounds.Disjoint {
		t.Errorf("quad behind camera = %v, want Disjoint", got)
	}
}
