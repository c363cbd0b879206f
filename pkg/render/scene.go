package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/geomkit/pkg/bounds"
	"github.com/taigrr/geomkit/pkg/color"
	"github.com/taigrr/geomkit/pkg/math3d"
	"github.com/taigrr/geomkit/pkg/models"
)

// Surface is where a ray met a shape.
type Surface struct {
	Distance float32
	Normal   math3d.Vec3 // unit length, facing the ray origin
	UV       math3d.Vec2
}

// Shape is anything a ray can hit.
type Shape interface {
	// Bounds returns a world-space box around the shape.
	Bounds() bounds.BoundingBox
	// Intersect returns the nearest hit in front of the ray origin.
	Intersect(r bounds.Ray) (Surface, bool)
}

// Sphere draws a bounding sphere as a solid.
type Sphere struct{ bounds.BoundingSphere }

// Box draws a bounding box as a solid.
type Box struct{ bounds.BoundingBox }

// Mesh draws a triangle mesh.
type Mesh struct{ *models.Mesh }

var (
	_ Shape = Sphere{}
	_ Shape = Box{}
	_ Shape = Mesh{}
)

func (s Sphere) Bounds() bounds.BoundingBox { return bounds.BoxFromSphere(s.BoundingSphere) }

func (s Sphere) Intersect(r bounds.Ray) (Surface, bool) {
	t, ok := r.IntersectsSphere(s.BoundingSphere)
	if !ok {
		return Surface{}, false
	}
	n := r.At(t).Sub(s.Center).Normalize()
	if n.IsZero() {
		n = r.Direction.Negate()
	}
	uv := math3d.V2(
		0.5+math32.Atan2(n.Z, n.X)/(2*math32.Pi),
		0.5+math32.Asin(math3d.Clamp(n.Y, -1, 1))/math32.Pi,
	)
	return Surface{Distance: t, Normal: faceForward(n, r.Direction), UV: uv}, true
}

func (b Box) Bounds() bounds.BoundingBox { return b.BoundingBox }

func (b Box) Intersect(r bounds.Ray) (Surface, bool) {
	t, ok := r.IntersectsBox(b.BoundingBox)
	if !ok {
		return Surface{}, false
	}

	// The face hit is the axis where the point sits furthest out
	// relative to the half size. Flat axes always win.
	d := r.At(t).Sub(b.Center()).Array()
	ext := b.Extent().Array()
	axis, best := 0, float32(-1)
	for i := range 3 {
		ratio := math32.Inf(1)
		if ext[i] > 0 {
			ratio = math32.Abs(d[i]) / ext[i]
		}
		if ratio > best {
			axis, best = i, ratio
		}
	}

	var n [3]float32
	n[axis] = 1
	if d[axis] < 0 {
		n[axis] = -1
	}

	// UV spans the two remaining axes of the face.
	ua, va := (axis+1)%3, (axis+2)%3
	uv := math3d.V2(faceCoord(d[ua], ext[ua]), faceCoord(d[va], ext[va]))

	normal := math3d.V3(n[0], n[1], n[2])
	return Surface{Distance: t, Normal: faceForward(normal, r.Direction), UV: uv}, true
}

func faceCoord(d, ext float32) float32 {
	if ext == 0 {
		return 0.5
	}
	return math3d.Saturate(0.5 + 0.5*d/ext)
}

func (m Mesh) Bounds() bounds.BoundingBox { return m.Box }

func (m Mesh) Intersect(r bounds.Ray) (Surface, bool) {
	hit, ok := m.Raycast(r)
	if !ok {
		return Surface{}, false
	}
	return Surface{Distance: hit.Distance, Normal: hit.Normal, UV: m.UVAt(hit)}, true
}

// faceForward flips n so it points against dir.
func faceForward(n, dir math3d.Vec3) math3d.Vec3 {
	if n.Dot(dir) > 0 {
		return n.Negate()
	}
	return n
}

// Object is a shape with its appearance.
type Object struct {
	Name    string
	Shape   Shape
	Color   color.Color4
	Texture *Texture // modulates Color when set
	Hidden  bool
}

// Scene is a list of objects lit by one directional light.
type Scene struct {
	Objects    []Object
	Background color.Color4
	Backdrop   *Texture    // stretched over the viewport behind everything
	LightDir   math3d.Vec3 // unit vector pointing toward the light
	Ambient    float32
}

// NewScene creates an empty scene with a dark background and a light
// above and to the right.
func NewScene() *Scene {
	return &Scene{
		Background: color.NewColor4(30.0/255, 30.0/255, 40.0/255, 1),
		LightDir:   math3d.V3(0.5, 1, 0.3).Normalize(),
		Ambient:    0.2,
	}
}

// Add appends an object and returns its index.
func (s *Scene) Add(o Object) int {
	s.Objects = append(s.Objects, o)
	return len(s.Objects) - 1
}

// Bounds returns the box around every visible object. It reports false
// for a scene with nothing to draw.
func (s *Scene) Bounds() (bounds.BoundingBox, bool) {
	var box bounds.BoundingBox
	found := false
	for _, o := range s.Objects {
		if o.Hidden {
			continue
		}
		if !found {
			box, found = o.Shape.Bounds(), true
			continue
		}
		box = bounds.BoxMerged(box, o.Shape.Bounds())
	}
	return box, found
}

// Visible returns the indices of objects whose bounds are at least
// partly inside f.
func (s *Scene) Visible(f bounds.BoundingFrustum) []int {
	var out []int
	for i, o := range s.Objects {
		if o.Hidden || f.ContainsBox(o.Shape.Bounds()) == bounds.Disjoint {
			continue
		}
		out = append(out, i)
	}
	return out
}

// Pick is the nearest object along a ray.
type Pick struct {
	Surface
	Object int
	Point  math3d.Vec3
}

// Pick returns the nearest visible object hit by r.
func (s *Scene) Pick(r bounds.Ray) (Pick, bool) {
	return s.pick(r, nil)
}

// pick tests only the listed objects, or all of them when only is nil.
func (s *Scene) pick(r bounds.Ray, only []int) (Pick, bool) {
	best := Pick{Object: -1}
	try := func(i int) {
		o := s.Objects[i]
		if o.Hidden {
			return
		}
		// Skip shapes whose box is missed or lies beyond the current best.
		t, ok := r.IntersectsBox(o.Shape.Bounds())
		if !ok || (best.Object >= 0 && t > best.Distance) {
			return
		}
		surf, ok := o.Shape.Intersect(r)
		if !ok || (best.Object >= 0 && surf.Distance >= best.Distance) {
			return
		}
		best.Surface, best.Object = surf, i
	}

	if only == nil {
		for i := range s.Objects {
			try(i)
		}
	} else {
		for _, i := range only {
			try(i)
		}
	}

	if best.Object < 0 {
		return Pick{}, false
	}
	best.Point = r.At(best.Distance)
	return best, true
}

// Shade returns the lit color of a pick. Lighting is Lambertian with a
// constant ambient term; alpha comes from the object color.
func (s *Scene) Shade(p Pick) color.Color4 {
	o := s.Objects[p.Object]
	base := o.Color
	if o.Texture != nil {
		base = base.Modulate(o.Texture.Sample(p.UV))
	}
	diffuse := math32.Max(0, p.Normal.Dot(s.LightDir))
	intensity := s.Ambient + (1-s.Ambient)*diffuse
	lit := base.Color3().Scale(intensity).Color4(base.A)
	return lit.Saturate()
}

// backgroundAt returns the backdrop color at normalized screen
// coordinates, top-left origin.
func (s *Scene) backgroundAt(sx, sy float32) color.Color4 {
	if s.Backdrop == nil {
		return s.Background
	}
	return s.Backdrop.Sample(math3d.V2(sx, 1-sy))
}
