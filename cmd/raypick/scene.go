package main

import (
	"fmt"
	"path/filepath"

	"github.com/taigrr/geomkit/pkg/bounds"
	"github.com/taigrr/geomkit/pkg/color"
	"github.com/taigrr/geomkit/pkg/math3d"
	"github.com/taigrr/geomkit/pkg/models"
	"github.com/taigrr/geomkit/pkg/render"
)

// demoScene lays out a few primitives around the origin.
func demoScene() *render.Scene {
	s := render.NewScene()
	checker := render.NewCheckerTexture(64, 64, 8, color.NewColor4(0.8, 0.8, 0.8, 1), color.NewColor4(0.4, 0.4, 0.4, 1))

	s.Add(render.Object{
		Name:    "floor",
		Shape:   render.Box{BoundingBox: bounds.NewBoundingBox(math3d.V3(-4, -1.2, -4), math3d.V3(4, -1, 4))},
		Color:   color.White,
		Texture: checker,
	})
	s.Add(render.Object{
		Name:  "red sphere",
		Shape: render.Sphere{BoundingSphere: bounds.NewBoundingSphere(math3d.V3(-1.5, 0, 0), 1)},
		Color: color.NewColor4(0.9, 0.2, 0.2, 1),
	})
	s.Add(render.Object{
		Name:  "blue cube",
		Shape: render.Box{BoundingBox: bounds.NewBoundingBox(math3d.V3(0.7, -1, -0.8), math3d.V3(2.3, 0.6, 0.8))},
		Color: color.NewColor4(0.2, 0.4, 0.9, 1),
	})
	s.Add(render.Object{
		Name:  "glass sphere",
		Shape: render.Sphere{BoundingSphere: bounds.NewBoundingSphere(math3d.V3(0, -0.5, 2), 0.5)},
		Color: color.NewColor4(0.6, 1, 0.6, 0.5),
	})
	return s
}

// modelScene loads a glTF model, fits it into a 2 unit cube at the origin
// and puts it in a scene of its own.
func modelScene(path string, texture *render.Texture) (*render.Scene, error) {
	mesh, img, err := models.NewLoader().LoadWithTexture(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	if err := fitMesh(mesh); err != nil {
		return nil, err
	}
	if texture == nil && img != nil {
		texture = render.TextureFromImage(img)
		fmt.Printf("Using embedded texture: %dx%d\n", img.Bounds().Dx(), img.Bounds().Dy())
	}
	fmt.Printf("Loaded: %s (%d vertices, %d triangles)\n", filepath.Base(path), mesh.VertexCount(), mesh.TriangleCount())

	s := render.NewScene()
	s.Add(render.Object{
		Name:    filepath.Base(path),
		Shape:   render.Mesh{Mesh: mesh},
		Color:   mesh.FaceMaterial(0).BaseColor,
		Texture: texture,
	})
	return s, nil
}

// fitMesh centers m on the origin and scales its largest side to 2.
func fitMesh(m *models.Mesh) error {
	if err := m.CalculateBounds(); err != nil {
		return err
	}
	maxDim := m.Size().MaxComponent()
	if maxDim <= 0 {
		return nil
	}
	transform := math3d.ScaleUniform(2 / maxDim).Mul(math3d.Translate(m.Center().Negate()))
	m.Transform(transform)
	return m.CalculateBounds()
}

// loadTexture reads an optional texture, warning instead of failing.
func loadTexture(path string) *render.Texture {
	if path == "" {
		return nil
	}
	tex, err := render.LoadTexture(path)
	if err != nil {
		fmt.Printf("Warning: could not load texture: %v\n", err)
		return nil
	}
	return tex
}
