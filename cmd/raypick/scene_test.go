package main

import (
	"testing"

	"github.com/taigrr/geomkit/pkg/bounds"
	"github.com/taigrr/geomkit/pkg/math3d"
	"github.com/taigrr/geomkit/pkg/models"
)

func TestFitMesh(t *testing.T) {
	m := models.NewMesh("tri")
	m.Vertices = []models.Vertex{
		{Position: math3d.V3(10, 10, 10)},
		{Position: math3d.V3(14, 10, 10)},
		{Position: math3d.V3(10, 12, 10)},
	}
	m.Faces = []models.Face{{V: [3]int{0, 1, 2}}}

	if err := fitMesh(m); err != nil {
		t.Fatal(err)
	}
	if !m.Center().NearEqual(math3d.Zero3(), 1e-5) {
		t.Errorf("center = %v", m.Center())
	}
	if got := m.Size().MaxComponent(); got < 2-1e-5 || got > 2+1e-5 {
		t.Errorf("largest side = %v, want 2", got)
	}

	if err := fitMesh(models.NewMesh("empty")); err == nil {
		t.Error("expected error for empty mesh")
	}
}

func TestDemoScenePick(t *testing.T) {
	s := demoScene()
	home := homeOrbit(s)
	if home.pos.Z <= 0 {
		t.Fatalf("home distance = %v", home.pos.Z)
	}

	// Straight down onto the floor next to everything else.
	p, ok := s.Pick(bounds.NewRay(math3d.V3(3.5, 5, 3.5), math3d.V3(0, -1, 0)))
	if !ok || s.Objects[p.Object].Name != "floor" {
		t.Fatalf("pick = %+v, %v", p, ok)
	}
	if !p.Point.NearEqual(math3d.V3(3.5, -1, 3.5), 1e-4) {
		t.Errorf("point = %v", p.Point)
	}

	p, ok = s.Pick(bounds.NewRay(math3d.V3(-1.5, 0, 10), math3d.V3(0, 0, -1)))
	if !ok || s.Objects[p.Object].Name != "red sphere" {
		t.Errorf("pick = %+v, %v", p, ok)
	}
}
