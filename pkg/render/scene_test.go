package render

import (
	"context"
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/taigrr/geomkit/pkg/bounds"
	"github.com/taigrr/geomkit/pkg/color"
	"github.com/taigrr/geomkit/pkg/math3d"
)

func unitSphere(center math3d.Vec3) Sphere {
	return Sphere{bounds.NewBoundingSphere(center, 1)}
}

func TestShapeIntersect(t *testing.T) {
	cube := Box{bounds.NewBoundingBox(math3d.Splat3(-1), math3d.Splat3(1))}

	tests := []struct {
		name     string
		shape    Shape
		ray      bounds.Ray
		wantOK   bool
		wantDist float32
		wantN    math3d.Vec3
	}{
		{"sphere front", unitSphere(math3d.Zero3()), bounds.NewRay(math3d.V3(0, 0, 5), math3d.V3(0, 0, -1)), true, 4, math3d.V3(0, 0, 1)},
		{"sphere side", unitSphere(math3d.Zero3()), bounds.NewRay(math3d.V3(-5, 0, 0), math3d.V3(1, 0, 0)), true, 4, math3d.V3(-1, 0, 0)},
		{"sphere miss", unitSphere(math3d.Zero3()), bounds.NewRay(math3d.V3(0, 3, 5), math3d.V3(0, 0, -1)), false, 0, math3d.Vec3{}},
		{"box front", cube, bounds.NewRay(math3d.V3(0.2, 0.3, 5), math3d.V3(0, 0, -1)), true, 4, math3d.V3(0, 0, 1)},
		{"box right", cube, bounds.NewRay(math3d.V3(5, 0.5, 0), math3d.V3(-1, 0, 0)), true, 4, math3d.V3(1, 0, 0)},
		{"box below", cube, bounds.NewRay(math3d.V3(0, -5, 0), math3d.V3(0, 1, 0)), true, 4, math3d.V3(0, -1, 0)},
		{"box miss", cube, bounds.NewRay(math3d.V3(5, 5, 5), math3d.V3(0, 0, -1)), false, 0, math3d.Vec3{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			surf, ok := tc.shape.Intersect(tc.ray)
			if ok != tc.wantOK {
				t.Fatalf("hit = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if math32.Abs(surf.Distance-tc.wantDist) > tol {
				t.Errorf("distance = %v, want %v", surf.Distance, tc.wantDist)
			}
			if !surf.Normal.NearEqual(tc.wantN, tol) {
				t.Errorf("normal = %v, want %v", surf.Normal, tc.wantN)
			}
			if surf.UV.X < 0 || surf.UV.X > 1 || surf.UV.Y < 0 || surf.UV.Y > 1 {
				t.Errorf("uv = %v outside [0, 1]", surf.UV)
			}
		})
	}
}

func TestBoxFaceUV(t *testing.T) {
	cube := Box{bounds.NewBoundingBox(math3d.Splat3(-1), math3d.Splat3(1))}
	// Hitting the +Z face at x = 0.5, y = -0.5 maps X to U and Y to V.
	surf, ok := cube.Intersect(bounds.NewRay(math3d.V3(0.5, -0.5, 5), math3d.V3(0, 0, -1)))
	if !ok {
		t.Fatal("expected hit")
	}
	if !surf.UV.NearEqual(math3d.V2(0.75, 0.25), tol) {
		t.Errorf("uv = %v", surf.UV)
	}
}

func TestScenePick(t *testing.T) {
	s := NewScene()
	far := s.Add(Object{Name: "far", Shape: unitSphere(math3d.V3(0, 0, -5)), Color: color.White})
	near := s.Add(Object{Name: "near", Shape: unitSphere(math3d.Zero3()), Color: color.White})
	s.Add(Object{Name: "hidden", Shape: unitSphere(math3d.V3(0, 0, 3)), Hidden: true})

	r := bounds.NewRay(math3d.V3(0, 0, 5), math3d.V3(0, 0, -1))
	p, ok := s.Pick(r)
	if !ok || p.Object != near {
		t.Fatalf("pick = %+v, %v; want object %d", p, ok, near)
	}
	if !p.Point.NearEqual(math3d.V3(0, 0, 1), tol) {
		t.Errorf("point = %v", p.Point)
	}

	s.Objects[near].Hidden = true
	p, ok = s.Pick(r)
	if !ok || p.Object != far {
		t.Errorf("pick = %+v, %v; want object %d", p, ok, far)
	}

	if _, ok := s.Pick(bounds.NewRay(math3d.V3(0, 10, 5), math3d.V3(0, 0, -1))); ok {
		t.Error("expected miss")
	}
}

func TestSceneVisible(t *testing.T) {
	s := NewScene()
	s.Add(Object{Shape: unitSphere(math3d.Zero3())})
	s.Add(Object{Shape: unitSphere(math3d.V3(0, 0, 20))})
	s.Add(Object{Shape: unitSphere(math3d.V3(0.5, 0, 0)), Hidden: true})

	got := s.Visible(createTestCamera(100, 100).Frustum())
	if len(got) != 1 || got[0] != 0 {
		t.Errorf("Visible = %v, want [0]", got)
	}
}

func TestSceneBounds(t *testing.T) {
	s := NewScene()
	if _, ok := s.Bounds(); ok {
		t.Error("empty scene should have no bounds")
	}
	s.Add(Object{Shape: unitSphere(math3d.Zero3())})
	s.Add(Object{Shape: Box{bounds.NewBoundingBox(math3d.V3(2, 2, 2), math3d.V3(3, 3, 3))}})

	box, ok := s.Bounds()
	if !ok || box.Min != math3d.Splat3(-1) || box.Max != math3d.Splat3(3) {
		t.Errorf("Bounds = %v, %v", box, ok)
	}
}

func TestShade(t *testing.T) {
	s := NewScene()
	s.LightDir = math3d.V3(0, 0, 1)
	s.Ambient = 0.25
	s.Add(Object{Shape: unitSphere(math3d.Zero3()), Color: color.NewColor4(1, 0.5, 0, 1)})

	lit := s.Shade(Pick{Object: 0, Surface: Surface{Normal: math3d.V3(0, 0, 1)}})
	if !lit.NearEqual(color.NewColor4(1, 0.5, 0, 1), tol) {
		t.Errorf("lit = %v", lit)
	}

	dark := s.Shade(Pick{Object: 0, Surface: Surface{Normal: math3d.V3(0, 0, -1)}})
	if !dark.NearEqual(color.NewColor4(0.25, 0.125, 0, 1), tol) {
		t.Errorf("unlit = %v", dark)
	}

	s.Objects[0].Texture = NewCheckerTexture(2, 2, 1, color.NewColor4(0, 0, 0, 1), color.White)
	tex := s.Shade(Pick{Object: 0, Surface: Surface{Normal: math3d.V3(0, 0, 1), UV: math3d.V2(0.25, 0.75)}})
	if !tex.NearEqual(color.NewColor4(0, 0, 0, 1), tol) {
		t.Errorf("textured = %v", tex)
	}
}

func TestRender(t *testing.T) {
	const size = 16
	s := NewScene()
	s.Add(Object{Shape: unitSphere(math3d.Zero3()), Color: color.NewColor4(1, 0, 0, 1)})
	s.Add(Object{Shape: unitSphere(math3d.V3(0, 0, 30)), Color: color.White})

	bg := s.Background.Bgra()
	for _, samples := range []int{1, 2} {
		fb := NewFramebuffer(size, size)
		r := NewRenderer(createTestCamera(size, size), s)
		r.TileSize = 5
		r.Workers = 3
		r.Samples = samples
		if err := r.Render(context.Background(), fb); err != nil {
			t.Fatal(err)
		}

		if got := fb.GetPixel(size/2, size/2); got == bg || got.R == 0 {
			t.Errorf("samples=%d: center = %v, want lit red", samples, got)
		}
		if got := fb.GetPixel(0, 0); got != bg {
			t.Errorf("samples=%d: corner = %v, want background %v", samples, got, bg)
		}
	}
}

func TestRenderCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScene()
	err := NewRenderer(createTestCamera(8, 8), s).Render(ctx, NewFramebuffer(8, 8))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
