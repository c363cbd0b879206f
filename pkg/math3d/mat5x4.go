package math3d

// Mat5x4 is a color matrix: five rows of four columns, stored row by row.
// A color (r, g, b, a) is transformed as the row vector [r g b a 1] * M, so
// rows 0..3 mix the channels and row 4 is a constant offset.
type Mat5x4 [20]float32

// Mat5x4Identity leaves colors unchanged.
func Mat5x4Identity() Mat5x4 {
	return Mat5x4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
		0, 0, 0, 0,
	}
}

// Mat5x4Scale multiplies each channel by the matching component of s.
func Mat5x4Scale(s Vec4) Mat5x4 {
	return Mat5x4{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, s.W,
		0, 0, 0, 0,
	}
}

// Mat5x4Offset adds o to every color.
func Mat5x4Offset(o Vec4) Mat5x4 {
	m := Mat5x4Identity()
	m.SetRow(4, o)
	return m
}

// Mat5x4Saturation interpolates between grayscale (s = 0) and the original
// color (s = 1) using Rec. 601 luma weights. Alpha is untouched.
func Mat5x4Saturation(s float32) Mat5x4 {
	const lr, lg, lb = 0.299, 0.587, 0.114
	t := 1 - s
	return Mat5x4{
		lr*t + s, lr * t, lr * t, 0,
		lg * t, lg*t + s, lg * t, 0,
		lb * t, lb * t, lb*t + s, 0,
		0, 0, 0, 1,
		0, 0, 0, 0,
	}
}

// Row returns row i.
func (m Mat5x4) Row(i int) Vec4 {
	return Vec4{m[i*4], m[i*4+1], m[i*4+2], m[i*4+3]}
}

// SetRow replaces row i.
func (m *Mat5x4) SetRow(i int, v Vec4) {
	m[i*4], m[i*4+1], m[i*4+2], m[i*4+3] = v.X, v.Y, v.Z, v.W
}

// Transform applies the matrix to v.
func (m Mat5x4) Transform(v Vec4) Vec4 {
	return m.Row(0).Scale(v.X).
		Add(m.Row(1).Scale(v.Y)).
		Add(m.Row(2).Scale(v.Z)).
		Add(m.Row(3).Scale(v.W)).
		Add(m.Row(4))
}

// Mul returns the matrix that applies m first and then n.
func (m Mat5x4) Mul(n Mat5x4) Mat5x4 {
	var out Mat5x4
	for i := range 4 {
		// Linear rows pass through n's linear part only.
		r := m.Row(i)
		out.SetRow(i, n.Row(0).Scale(r.X).
			Add(n.Row(1).Scale(r.Y)).
			Add(n.Row(2).Scale(r.Z)).
			Add(n.Row(3).Scale(r.W)))
	}
	out.SetRow(4, n.Transform(m.Row(4)))
	return out
}
