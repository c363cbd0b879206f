package math3d

// Mat4x3 is an affine transform with four rows and three columns, stored row
// by row. Rows 0..2 are the images of the X, Y and Z axes and row 3 is the
// translation; points are transformed as row vectors (p' = [p 1] * M).
type Mat4x3 [12]float32

// Mat3x4 is an affine transform with three rows and four columns, stored row
// by row. It is the transpose of Mat4x3: column 3 holds the translation and
// points are transformed as column vectors (p' = M * [p 1]).
type Mat3x4 [12]float32

// Mat4x3FromMat4 drops the projective row of m.
func Mat4x3FromMat4(m Mat4) Mat4x3 {
	return Mat4x3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
		m[12], m[13], m[14],
	}
}

// Mat4 expands the transform back to a 4x4 matrix.
func (m Mat4x3) Mat4() Mat4 {
	return Mat4{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		m[9], m[10], m[11], 1,
	}
}

// Transpose returns the column-vector form of the same transform.
func (m Mat4x3) Transpose() Mat3x4 {
	return Mat3x4{
		m[0], m[3], m[6], m[9],
		m[1], m[4], m[7], m[10],
		m[2], m[5], m[8], m[11],
	}
}

// Row returns row i.
func (m Mat4x3) Row(i int) Vec3 {
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}

// TransformPoint applies rotation, scale and translation to p.
func (m Mat4x3) TransformPoint(p Vec3) Vec3 {
	return m.TransformDir(p).Add(m.Row(3))
}

// TransformDir applies the linear part only.
func (m Mat4x3) TransformDir(d Vec3) Vec3 {
	return m.Row(0).Scale(d.X).Add(m.Row(1).Scale(d.Y)).Add(m.Row(2).Scale(d.Z))
}

// Mul returns the transform that applies m first and then n.
func (m Mat4x3) Mul(n Mat4x3) Mat4x3 {
	return Mat4x3FromMat4(n.Mat4().Mul(m.Mat4()))
}

// Mat3x4FromMat4 keeps the first three rows of m.
func Mat3x4FromMat4(m Mat4) Mat3x4 {
	return Mat4x3FromMat4(m).Transpose()
}

// Mat4 expands the transform back to a 4x4 matrix.
func (m Mat3x4) Mat4() Mat4 {
	return m.Transpose().Mat4()
}

// Transpose returns the row-vector form of the same transform.
func (m Mat3x4) Transpose() Mat4x3 {
	return Mat4x3{
		m[0], m[4], m[8],
		m[1], m[5], m[9],
		m[2], m[6], m[10],
		m[3], m[7], m[11],
	}
}

// Row returns row i as a Vec4.
func (m Mat3x4) Row(i int) Vec4 {
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// TransformPoint applies rotation, scale and translation to p.
func (m Mat3x4) TransformPoint(p Vec3) Vec3 {
	h := V4FromV3(p, 1)
	return Vec3{m.Row(0).Dot(h), m.Row(1).Dot(h), m.Row(2).Dot(h)}
}
