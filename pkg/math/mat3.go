package math

import "github.com/chewxy/math32"

// Mat3 is a 3x3 column-major matrix, used for normal transforms.
type Mat3 [9]float32

// Identity3 returns the 3x3 identity.
func Identity3() Mat3 {
	return Mat3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Col returns column i.
func (m Mat3) Col(i int) Vec3 {
	return Vec3{m[i*3], m[i*3+1], m[i*3+2]}
}

// At returns the element at row, col.
func (m Mat3) At(row, col int) float32 {
	return m[col*3+row]
}

// Transpose returns the transposed matrix.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Determinant returns the determinant.
func (m Mat3) Determinant() float32 {
	return m.Col(0).Dot(m.Col(1).Cross(m.Col(2)))
}

// Inverse returns the inverse of the matrix.
// Returns identity if the matrix is singular.
func (m Mat3) Inverse() Mat3 {
	a, b, c := m.Col(0), m.Col(1), m.Col(2)
	r0 := b.Cross(c)
	r1 := c.Cross(a)
	r2 := a.Cross(b)

	det := m.Determinant()
	if det == 0 {
		return Identity3()
	}
	inv := 1 / det

	// r0..r2 are the rows of the inverse.
	return Mat3{
		r0.X * inv, r1.X * inv, r2.X * inv,
		r0.Y * inv, r1.Y * inv, r2.Y * inv,
		r0.Z * inv, r1.Z * inv, r2.Z * inv,
	}
}

// MulVec3 multiplies the matrix by a column vector.
func (m Mat3) MulVec3(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat3) Ptr() *float32 {
	return &m[0]
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat3) ApproxEqual(other Mat3, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-other[i]) > eps {
			return false
		}
	}
	return true
}

// NormalMatrix returns transpose(inverse(mat3(model))), the matrix that keeps
// surface normals perpendicular under non-uniform scale.
func NormalMatrix(model Mat4) Mat3 {
	return model.Mat3().Inverse().Transpose()
}
