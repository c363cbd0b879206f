// Package bounds provides bounding volumes (planes, rays, boxes, spheres and
// view frustums) and the intersection and containment tests between them.
//
// A miss is reported as (zero value, false); none of the queries return errors
// or panic. Planes are expected to have unit normals and rays unit directions,
// but neither is enforced.
package bounds

import (
	"errors"

	"github.com/taigrr/geomkit/pkg/math3d"
)

const (
	// ZeroTolerance is the distance under which a value is treated as zero.
	ZeroTolerance = math3d.ZeroTolerance

	// RayEpsilon is the determinant magnitude below which a ray is treated
	// as parallel to a triangle.
	RayEpsilon = 1e-20
)

// ErrNoPoints is returned when a volume is built from an empty point set.
var ErrNoPoints = errors.New("bounds: no points")

// ContainmentType classifies how one volume relates to another.
type ContainmentType int

const (
	Disjoint ContainmentType = iota
	Contains
	Intersects
)

func (c ContainmentType) String() string {
	switch c {
	case Disjoint:
		return "Disjoint"
	case Contains:
		return "Contains"
	case Intersects:
		return "Intersects"
	}
	return "ContainmentType(?)"
}

// PlaneIntersectionType classifies a volume against a plane.
type PlaneIntersectionType int

const (
	// Back is entirely on the side opposite the normal.
	Back PlaneIntersectionType = iota
	// Front is entirely on the side the normal points to.
	Front
	// Intersecting straddles or touches the plane.
	Intersecting
)

func (p PlaneIntersectionType) String() string {
	switch p {
	case Back:
		return "Back"
	case Front:
		return "Front"
	case Intersecting:
		return "Intersecting"
	}
	return "PlaneIntersectionType(?)"
}

// selectComponent is a branchless conditional selection helper.
func selectComponent(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
