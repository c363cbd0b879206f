package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/geomkit/pkg/bounds"
	"github.com/taigrr/geomkit/pkg/color"
	"github.com/taigrr/geomkit/pkg/math3d"
	"github.com/taigrr/geomkit/pkg/models"
)

// boxEdges joins corners of BoundingBox.Corners, whose index bits select
// the max coordinate per axis.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along X
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along Y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along Z
}

// frustumEdges joins corners of BoundingFrustum.Corners.
var frustumEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // near
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // far
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Wireframe renders 3D wireframe objects.
type Wireframe struct {
	camera *Camera
	fb     *Framebuffer
}

// NewWireframe creates a new wireframe renderer.
func NewWireframe(camera *Camera, fb *Framebuffer) *Wireframe {
	return &Wireframe{
		camera: camera,
		fb:     fb,
	}
}

// DrawLine3D draws a line in 3D space, clipped to the camera's view.
func (w *Wireframe) DrawLine3D(p1, p2 math3d.Vec3, c color.ColorBgra) {
	a, b, ok := clipLine(w.camera.projectClip(p1), w.camera.projectClip(p2), w.camera.Near)
	if !ok {
		return
	}
	x1, y1 := w.toScreen(a)
	x2, y2 := w.toScreen(b)
	w.fb.DrawLine(int(x1), int(y1), int(x2), int(y2), c)
}

// clipLine clips the clip-space segment a-b to -w <= x, y <= w and
// w >= near (Liang-Barsky). Depth against the far plane is not clipped.
func clipLine(a, b math3d.Vec4, near float32) (math3d.Vec4, math3d.Vec4, bool) {
	d := b.Sub(a)
	f0 := [5]float32{a.W + a.X, a.W - a.X, a.W + a.Y, a.W - a.Y, a.W - near}
	df := [5]float32{d.W + d.X, d.W - d.X, d.W + d.Y, d.W - d.Y, d.W}

	t0, t1 := float32(0), float32(1)
	for i := range f0 {
		if df[i] == 0 {
			if f0[i] < 0 {
				return a, b, false
			}
			continue
		}
		t := -f0[i] / df[i]
		if df[i] > 0 {
			t0 = max(t0, t)
		} else {
			t1 = min(t1, t)
		}
		if t0 > t1 {
			return a, b, false
		}
	}
	return a.Add(d.Scale(t0)), a.Add(d.Scale(t1)), true
}

func (w *Wireframe) toScreen(clip math3d.Vec4) (x, y float32) {
	ndc := clip.PerspectiveDivide()
	x = (ndc.X + 1) * 0.5 * float32(w.fb.Width)
	y = (1 - ndc.Y) * 0.5 * float32(w.fb.Height)
	return x, y
}

// DrawBox draws the twelve edges of a bounding box.
func (w *Wireframe) DrawBox(b bounds.BoundingBox, c color.ColorBgra) {
	corners := b.Corners()
	for _, e := range boxEdges {
		w.DrawLine3D(corners[e[0]], corners[e[1]], c)
	}
}

// DrawTransformedBox draws b after transforming its corners, so rotation
// shows as an oriented box rather than a refitted one.
func (w *Wireframe) DrawTransformedBox(b bounds.BoundingBox, transform math3d.Mat4, c color.ColorBgra) {
	corners := b.Corners()
	for i := range corners {
		corners[i] = transform.MulVec3(corners[i])
	}
	for _, e := range boxEdges {
		w.DrawLine3D(corners[e[0]], corners[e[1]], c)
	}
}

// DrawSphere draws the three axis-aligned great circles of s.
func (w *Wireframe) DrawSphere(s bounds.BoundingSphere, segments int, c color.ColorBgra) {
	segments = max(segments, 3)
	point := func(axis int, angle float32) math3d.Vec3 {
		sin, cos := math32.Sincos(angle)
		var v math3d.Vec3
		switch axis {
		case 0:
			v = math3d.V3(0, cos, sin)
		case 1:
			v = math3d.V3(cos, 0, sin)
		default:
			v = math3d.V3(cos, sin, 0)
		}
		return s.Center.Add(v.Scale(s.Radius))
	}

	step := 2 * math32.Pi / float32(segments)
	for axis := range 3 {
		prev := point(axis, 0)
		for i := 1; i <= segments; i++ {
			next := point(axis, float32(i)*step)
			w.DrawLine3D(prev, next, c)
			prev = next
		}
	}
}

// DrawFrustum draws the edges of a view frustum.
func (w *Wireframe) DrawFrustum(f bounds.BoundingFrustum, c color.ColorBgra) {
	corners := f.Corners()
	for _, e := range frustumEdges {
		w.DrawLine3D(corners[e[0]], corners[e[1]], c)
	}
}

// DrawRay draws r from its origin out to length.
func (w *Wireframe) DrawRay(r bounds.Ray, length float32, c color.ColorBgra) {
	w.DrawLine3D(r.Position, r.At(length), c)
}

// DrawMesh draws every triangle edge of m.
func (w *Wireframe) DrawMesh(m *models.Mesh, c color.ColorBgra) {
	for i := range m.Faces {
		a, b, d := m.Triangle(i)
		w.DrawLine3D(a, b, c)
		w.DrawLine3D(b, d, c)
		w.DrawLine3D(d, a, c)
	}
}

// DrawAxes draws the coordinate axes at the origin.
func (w *Wireframe) DrawAxes(length float32) {
	origin := math3d.Zero3()
	w.DrawLine3D(origin, math3d.V3(length, 0, 0), color.NewColorBgra(255, 0, 0, 255)) // X axis
	w.DrawLine3D(origin, math3d.V3(0, length, 0), color.NewColorBgra(0, 255, 0, 255)) // Y axis
	w.DrawLine3D(origin, math3d.V3(0, 0, length), color.NewColorBgra(0, 0, 255, 255)) // Z axis
}

// DrawGrid draws a grid on the XZ plane at y=0.
func (w *Wireframe) DrawGrid(size, step float32, c color.ColorBgra) {
	if step <= 0 {
		return
	}
	half := size / 2
	for x := -half; x <= half; x += step {
		w.DrawLine3D(math3d.V3(x, 0, -half), math3d.V3(x, 0, half), c)
	}
	for z := -half; z <= half; z += step {
		w.DrawLine3D(math3d.V3(-half, 0, z), math3d.V3(half, 0, z), c)
	}
}

// DrawPoint draws a point as a small cross.
func (w *Wireframe) DrawPoint(pos math3d.Vec3, size float32, c color.ColorBgra) {
	h := size / 2
	w.DrawLine3D(math3d.V3(pos.X-h, pos.Y, pos.Z), math3d.V3(pos.X+h, pos.Y, pos.Z), c)
	w.DrawLine3D(math3d.V3(pos.X, pos.Y-h, pos.Z), math3d.V3(pos.X, pos.Y+h, pos.Z), c)
	w.DrawLine3D(math3d.V3(pos.X, pos.Y, pos.Z-h), math3d.V3(pos.X, pos.Y, pos.Z+h), c)
}
