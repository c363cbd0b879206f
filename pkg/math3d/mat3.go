package math3d

import "github.com/chewxy/math32"

// Mat3 is a 3x3 matrix stored in column-major order, like Mat4.
//
// | 0 3 6 |
// | 1 4 7 |
// | 2 5 8 |
type Mat3 [9]float32

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Mat3FromCols builds a matrix from three column vectors.
func Mat3FromCols(x, y, z Vec3) Mat3 {
	return Mat3{
		x.X, x.Y, x.Z,
		y.X, y.Y, y.Z,
		z.X, z.Y, z.Z,
	}
}

// Mat3FromMat4 returns the upper-left 3x3 block of m.
func Mat3FromMat4(m Mat4) Mat3 {
	return Mat3FromCols(m.Column(0), m.Column(1), m.Column(2))
}

// Mat3FromQuat returns the rotation matrix for q.
func Mat3FromQuat(q Quat) Mat3 {
	return Mat3FromMat4(Mat4FromQuat(q))
}

// Mat4 embeds the matrix in a 4x4 transform with no translation.
func (m Mat3) Mat4() Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1,
	}
}

// Col returns column i.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}

// Get returns the element at (row, col).
func (m Mat3) Get(row, col int) float32 {
	return m[row+col*3]
}

// Set sets the element at (row, col).
func (m *Mat3) Set(row, col int, val float32) {
	m[row+col*3] = val
}

//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat3) Mul(b Mat3) Mat3 {
	var m Mat3
	for col := range 3 {
		for row := range 3 {
			var sum float32
			for k := range 3 {
				sum += a[row+k*3] * b[k+col*3]
			}
			m[row+col*3] = sum
		}
	}
	return m
}

// MulVec3 returns m * v.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant is the scalar triple product of the columns.
func (m Mat3) Determinant() float32 {
	return m.Col(0).Dot(m.Col(1).Cross(m.Col(2)))
}

// Inverse returns the inverse of m. ok is false for a singular matrix, in
// which case the identity is returned.
func (m Mat3) Inverse() (inv Mat3, ok bool) {
	det := m.Determinant()
	if IsZero(det) {
		return Mat3Identity(), false
	}

	// Rows of the inverse are the cross products of column pairs.
	x, y, z := m.Col(0), m.Col(1), m.Col(2)
	r0 := y.Cross(z).Div(det)
	r1 := z.Cross(x).Div(det)
	r2 := x.Cross(y).Div(det)
	return Mat3FromCols(r0, r1, r2).Transpose(), true
}

// NearEqual reports whether every element differs by at most tol.
func (m Mat3) NearEqual(n Mat3, tol float32) bool {
	for i := range m {
		if math32.Abs(m[i]-n[i]) > tol {
			return false
		}
	}
	return true
}
