package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/geomkit/pkg/bounds"
	"github.com/taigrr/geomkit/pkg/math3d"
)

// Camera represents a 3D camera with position and orientation.
type Camera struct {
	// Position in world space
	Position math3d.Vec3

	// Orientation (Euler angles in radians)
	Pitch float32 // Rotation around X axis (look up/down)
	Yaw   float32 // Rotation around Y axis (look left/right)
	Roll  float32 // Rotation around Z axis (tilt)

	// Projection parameters
	FOV         float32 // Vertical field of view in radians
	AspectRatio float32 // Width / Height
	Near        float32 // Near clipping plane
	Far         float32 // Far clipping plane

	// Cached matrices (computed on demand)
	viewMatrix     math3d.Mat4
	projMatrix     math3d.Mat4
	viewProjMatrix math3d.Mat4
	invViewProj    math3d.Mat4
	viewDirty      bool
	projDirty      bool
	comboDirty     bool
}

// NewCamera creates a new camera with default settings.
func NewCamera() *Camera {
	return &Camera{
		Position:    math3d.V3(0, 0, 5),
		FOV:         math32.Pi / 3, // 60 degrees
		AspectRatio: 16.0 / 9.0,
		Near:        0.1,
		Far:         1000,
		viewDirty:   true,
		projDirty:   true,
		comboDirty:  true,
	}
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.Position = pos
	c.viewDirty = true
}

// SetRotation sets the camera rotation (pitch, yaw, roll in radians).
func (c *Camera) SetRotation(pitch, yaw, roll float32) {
	c.Pitch = pitch
	c.Yaw = yaw
	c.Roll = roll
	c.viewDirty = true
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float32) {
	c.FOV = fov
	c.projDirty = true
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float32) {
	c.AspectRatio = aspect
	c.projDirty = true
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float32) {
	c.Near = near
	c.Far = far
	c.projDirty = true
}

// Forward returns the forward direction vector.
func (c *Camera) Forward() math3d.Vec3 {
	// Forward is -Z in camera space, rotated by yaw and pitch
	sp, cp := math32.Sincos(c.Pitch)
	sy, cy := math32.Sincos(c.Yaw)
	return math3d.V3(-sy*cp, sp, -cy*cp)
}

// Right returns the right direction vector.
func (c *Camera) Right() math3d.Vec3 {
	sy, cy := math32.Sincos(c.Yaw)
	return math3d.V3(cy, 0, -sy)
}

// Up returns the up direction vector.
func (c *Camera) Up() math3d.Vec3 {
	return c.Right().Cross(c.Forward())
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.computeViewMatrix()
		c.viewDirty = false
		c.comboDirty = true
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
		c.comboDirty = true
	}
	return c.projMatrix
}

// ViewProjectionMatrix returns the combined view-projection matrix.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 {
	view := c.ViewMatrix()
	proj := c.ProjectionMatrix()
	if c.comboDirty {
		c.viewProjMatrix = proj.Mul(view)
		c.invViewProj = c.viewProjMatrix.Inverse()
		c.comboDirty = false
	}
	return c.viewProjMatrix
}

func (c *Camera) computeViewMatrix() {
	// View = Rotation * Translation(-position)
	rot := math3d.RotateZ(-c.Roll).Mul(
		math3d.RotateX(-c.Pitch)).Mul(
		math3d.RotateY(-c.Yaw))
	trans := math3d.Translate(c.Position.Negate())
	c.viewMatrix = rot.Mul(trans)
}

// Frustum returns the world-space view volume.
func (c *Camera) Frustum() bounds.BoundingFrustum {
	return bounds.NewBoundingFrustum(c.ViewProjectionMatrix())
}

// MoveForward moves the camera forward (or backward if negative).
func (c *Camera) MoveForward(distance float32) {
	c.Position = c.Position.Add(c.Forward().Scale(distance))
	c.viewDirty = true
}

// MoveRight moves the camera right (or left if negative).
func (c *Camera) MoveRight(distance float32) {
	c.Position = c.Position.Add(c.Right().Scale(distance))
	c.viewDirty = true
}

// Rotate rotates the camera by the given angles (in radians).
func (c *Camera) Rotate(deltaPitch, deltaYaw, deltaRoll float32) {
	c.Pitch += deltaPitch
	c.Yaw += deltaYaw
	c.Roll += deltaRoll

	// Clamp pitch to avoid gimbal lock issues
	const maxPitch = math32.Pi/2 - 0.01
	c.Pitch = math3d.Clamp(c.Pitch, -maxPitch, maxPitch)

	c.viewDirty = true
}

// LookAt makes the camera look at a target point.
func (c *Camera) LookAt(target math3d.Vec3) {
	dir := target.Sub(c.Position).Normalize()

	c.Pitch = math32.Asin(dir.Y)
	c.Yaw = math32.Atan2(-dir.X, -dir.Z)
	c.Roll = 0

	c.viewDirty = true
}

// Orbit places the camera on a sphere around target. Yaw 0 and pitch 0
// put the camera on the +Z side looking down -Z.
func (c *Camera) Orbit(target math3d.Vec3, distance, pitch, yaw float32) {
	sp, cp := math32.Sincos(pitch)
	sy, cy := math32.Sincos(yaw)
	offset := math3d.V3(sy*cp, sp, cy*cp).Scale(distance)
	c.SetPosition(target.Add(offset))
	c.LookAt(target)
}

// ScreenRay returns the world-space ray through pixel (x, y) of a
// width x height image. Pixel centers sit at half-integer coordinates.
func (c *Camera) ScreenRay(x, y float32, width, height int) bounds.Ray {
	return c.rays(width, height)(x, y)
}

// rays snapshots the camera so the returned generator is safe to call
// from several goroutines while the camera is not modified.
func (c *Camera) rays(width, height int) func(x, y float32) bounds.Ray {
	_ = c.ViewProjectionMatrix()
	inv, eye := c.invViewProj, c.Position
	w, h := float32(width), float32(height)

	return func(x, y float32) bounds.Ray {
		ndcX := x/w*2 - 1
		ndcY := 1 - y/h*2
		near := inv.MulVec4(math3d.V4(ndcX, ndcY, -1, 1)).PerspectiveDivide()
		far := inv.MulVec4(math3d.V4(ndcX, ndcY, 1, 1)).PerspectiveDivide()
		return bounds.NewRay(eye, far.Sub(near).Normalize())
	}
}

// WorldToScreen transforms a world point to screen coordinates.
// Returns (screenX, screenY, depth, visible).
func (c *Camera) WorldToScreen(worldPos math3d.Vec3, screenWidth, screenHeight int) (x, y, depth float32, visible bool) {
	clipPos := c.ViewProjectionMatrix().MulVec4(math3d.V4FromV3(worldPos, 1))

	// Check if behind camera
	if clipPos.W <= 0 {
		return 0, 0, 0, false
	}

	ndc := clipPos.PerspectiveDivide()
	if ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z < -1 || ndc.Z > 1 {
		return 0, 0, 0, false
	}

	x = (ndc.X + 1) * 0.5 * float32(screenWidth)
	y = (1 - ndc.Y) * 0.5 * float32(screenHeight) // Y is flipped
	return x, y, ndc.Z, true
}

// projectClip maps a world point into clip space without rejecting it.
func (c *Camera) projectClip(p math3d.Vec3) math3d.Vec4 {
	return c.ViewProjectionMatrix().MulVec4(math3d.V4FromV3(p, 1))
}
