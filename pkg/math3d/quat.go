package math3d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Quat is a rotation quaternion. W is the real part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{W: 1}
}

// QuatFromAxisAngle returns the rotation of angle radians around axis.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	axis = axis.Normalize()
	s, c := math32.Sincos(angle * 0.5)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, c}
}

// QuatFromYawPitchRoll builds a rotation from yaw (around Y), pitch (around X)
// and roll (around Z). Roll is applied first, then pitch, then yaw.
func QuatFromYawPitchRoll(yaw, pitch, roll float32) Quat {
	sr, cr := math32.Sincos(roll * 0.5)
	sp, cp := math32.Sincos(pitch * 0.5)
	sy, cy := math32.Sincos(yaw * 0.5)

	return Quat{
		X: cy*sp*cr + sy*cp*sr,
		Y: sy*cp*cr - cy*sp*sr,
		Z: cy*cp*sr - sy*sp*cr,
		W: cy*cp*cr + sy*sp*sr,
	}
}

// ToEuler converts the rotation back to Euler angles, returned as
// (X: pitch, Y: yaw, Z: roll) in radians.
func (q Quat) ToEuler() Vec3 {
	yaw := math32.Atan2(2*(q.Y*q.W+q.X*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))
	pitch := math32.Asin(Clamp(2*(q.X*q.W-q.Y*q.Z), -1, 1))
	roll := math32.Atan2(2*(q.X*q.Y+q.Z*q.W), 1-2*(q.X*q.X+q.Z*q.Z))
	return Vec3{pitch, yaw, roll}
}

// Mul returns the Hamilton product q * r, which applies r first and then q.
func (q Quat) Mul(r Quat) Quat {
	return Quat{
		X: q.W*r.X + q.X*r.W + q.Y*r.Z - q.Z*r.Y,
		Y: q.W*r.Y - q.X*r.Z + q.Y*r.W + q.Z*r.X,
		Z: q.W*r.Z + q.X*r.Y - q.Y*r.X + q.Z*r.W,
		W: q.W*r.W - q.X*r.X - q.Y*r.Y - q.Z*r.Z,
	}
}

// Conjugate returns the conjugate, which is the inverse of a unit quaternion.
func (q Quat) Conjugate() Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// Dot returns the four-component dot product.
func (q Quat) Dot(r Quat) float32 {
	return q.X*r.X + q.Y*r.Y + q.Z*r.Z + q.W*r.W
}

// Len returns the quaternion norm.
func (q Quat) Len() float32 {
	return math32.Sqrt(q.Dot(q))
}

// Normalize returns the unit quaternion. A zero quaternion becomes identity.
func (q Quat) Normalize() Quat {
	l := q.Len()
	if l == 0 {
		return QuatIdentity()
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Rotate applies the rotation to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Slerp spherically interpolates from q to r.
func (q Quat) Slerp(r Quat, t float32) Quat {
	cos := q.Dot(r)
	if cos < 0 {
		cos = -cos
		r = Quat{-r.X, -r.Y, -r.Z, -r.W}
	}

	var s0, s1 float32
	if cos > 1-ZeroTolerance {
		// Nearly parallel: fall back to lerp.
		s0, s1 = 1-t, t
	} else {
		omega := math32.Acos(cos)
		inv := 1 / math32.Sin(omega)
		s0 = math32.Sin((1-t)*omega) * inv
		s1 = math32.Sin(t*omega) * inv
	}

	return Quat{
		q.X*s0 + r.X*s1,
		q.Y*s0 + r.Y*s1,
		q.Z*s0 + r.Z*s1,
		q.W*s0 + r.W*s1,
	}.Normalize()
}

// NearEqual reports whether the two quaternions represent the same rotation
// within tol. q and -q are treated as equal.
func (q Quat) NearEqual(r Quat, tol float32) bool {
	return math32.Abs(math32.Abs(q.Dot(r))-1) <= tol
}

func (q Quat) String() string {
	return fmt.Sprintf("<%g, %g, %g, %g>", q.X, q.Y, q.Z, q.W)
}

// quatFromRotation converts a pure rotation given as row/column entries
// r[row][col] into a unit quaternion.
func quatFromRotation(r [3][3]float32) Quat {
	var q Quat
	trace := r[0][0] + r[1][1] + r[2][2]
	switch {
	case trace > 0:
		s := math32.Sqrt(trace+1) * 2
		q.W = 0.25 * s
		q.X = (r[2][1] - r[1][2]) / s
		q.Y = (r[0][2] - r[2][0]) / s
		q.Z = (r[1][0] - r[0][1]) / s
	case r[0][0] > r[1][1] && r[0][0] > r[2][2]:
		s := math32.Sqrt(1+r[0][0]-r[1][1]-r[2][2]) * 2
		q.W = (r[2][1] - r[1][2]) / s
		q.X = 0.25 * s
		q.Y = (r[0][1] + r[1][0]) / s
		q.Z = (r[0][2] + r[2][0]) / s
	case r[1][1] > r[2][2]:
		s := math32.Sqrt(1+r[1][1]-r[0][0]-r[2][2]) * 2
		q.W = (r[0][2] - r[2][0]) / s
		q.X = (r[0][1] + r[1][0]) / s
		q.Y = 0.25 * s
		q.Z = (r[1][2] + r[2][1]) / s
	default:
		s := math32.Sqrt(1+r[2][2]-r[0][0]-r[1][1]) * 2
		q.W = (r[1][0] - r[0][1]) / s
		q.X = (r[0][2] + r[2][0]) / s
		q.Y = (r[1][2] + r[2][1]) / s
		q.Z = 0.25 * s
	}
	return q.Normalize()
}
