// Package models loads triangle meshes and answers bounding-volume and
// ray-picking queries against them.
package models

import (
	"errors"

	"github.com/taigrr/geomkit/pkg/bounds"
	"github.com/taigrr/geomkit/pkg/color"
	"github.com/taigrr/geomkit/pkg/math3d"
)

// ErrNoGeometry is returned when a model contains no triangles.
var ErrNoGeometry = errors.New("models: no geometry")

// Mesh represents a 3D mesh with vertices, faces, and materials.
type Mesh struct {
	Name      string
	Vertices  []Vertex
	Faces     []Face
	Materials []Material

	// Bounding volumes (calculated on load)
	Box    bounds.BoundingBox
	Sphere bounds.BoundingSphere
}

// Vertex holds all vertex attributes.
type Vertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2
}

// Face represents a triangle face with vertex indices and material reference.
type Face struct {
	V        [3]int // Indices into Mesh.Vertices
	Material int    // Index into Mesh.Materials (-1 for no material)
}

// Material is the metallic-roughness subset of a glTF material.
type Material struct {
	Name      string
	BaseColor color.Color4
	Metallic  float32 // 0 = dielectric, 1 = metal
	Roughness float32 // 0 = smooth, 1 = rough
}

// DefaultMaterial is used for faces without a material.
var DefaultMaterial = Material{
	Name:      "default",
	BaseColor: color.White,
	Metallic:  1,
	Roughness: 1,
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds recomputes the bounding box and bounding sphere. It
// returns ErrNoGeometry for a mesh without vertices.
func (m *Mesh) CalculateBounds() error {
	if len(m.Vertices) == 0 {
		return ErrNoGeometry
	}

	points := make([]math3d.Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		points[i] = v.Position
	}

	box, err := bounds.BoxFromPoints(points)
	if err != nil {
		return err
	}
	sphere, err := bounds.SphereFromPoints(points)
	if err != nil {
		return err
	}

	// Ritter spheres can be loose; the box's circumsphere is sometimes tighter.
	if boxSphere := bounds.SphereFromBox(box); boxSphere.Radius < sphere.Radius {
		sphere = boxSphere
	}

	m.Box, m.Sphere = box, sphere
	return nil
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 { return m.Box.Center() }

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 { return m.Box.Size() }

func (m *Mesh) TriangleCount() int { return len(m.Faces) }

func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// Triangle returns the corner positions of face i.
func (m *Mesh) Triangle(i int) (a, b, c math3d.Vec3) {
	f := m.Faces[i].V
	return m.Vertices[f[0]].Position, m.Vertices[f[1]].Position, m.Vertices[f[2]].Position
}

// CalculateNormals assigns each face's normal to its vertices (flat
// shading). Shared vertices keep the last face written.
func (m *Mesh) CalculateNormals() {
	for i, f := range m.Faces {
		v0, v1, v2 := m.Triangle(i)
		normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
		for _, vi := range f.V {
			m.Vertices[vi].Normal = normal
		}
	}
}

// CalculateSmoothNormals computes area-weighted averaged normals.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}

	for i, f := range m.Faces {
		v0, v1, v2 := m.Triangle(i)
		normal := v1.Sub(v0).Cross(v2.Sub(v0)) // Don't normalize yet
		for _, vi := range f.V {
			m.Vertices[vi].Normal = m.Vertices[vi].Normal.Add(normal)
		}
	}

	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// Transform applies mat to every vertex and refreshes the bounds. Normals
// go through the inverse transpose so non-uniform scale keeps them
// perpendicular to their faces.
func (m *Mesh) Transform(mat math3d.Mat4) {
	normalMat, ok := math3d.Mat3FromMat4(mat).Inverse()
	if ok {
		normalMat = normalMat.Transpose()
	} else {
		normalMat = math3d.Mat3FromMat4(mat)
	}

	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = mat.MulVec3(v.Position)
		if !v.Normal.IsZero() {
			v.Normal = normalMat.MulVec3(v.Normal).Normalize()
		}
	}
	_ = m.CalculateBounds()
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := *m
	clone.Vertices = append([]Vertex(nil), m.Vertices...)
	clone.Faces = append([]Face(nil), m.Faces...)
	clone.Materials = append([]Material(nil), m.Materials...)
	return &clone
}

// FaceMaterial returns the material of face i, or DefaultMaterial.
func (m *Mesh) FaceMaterial(i int) Material {
	mi := m.Faces[i].Material
	if mi < 0 || mi >= len(m.Materials) {
		return DefaultMaterial
	}
	return m.Materials[mi]
}
