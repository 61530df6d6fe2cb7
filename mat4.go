package gm

import "fmt"

// Mat4 is a 4x4 homogeneous matrix in row major order, m[row][col].
// Vectors are treated as columns, the translation lives in the last column.
type Mat4[S Float] [4][4]S

var _ Transform[Vec3[float64], Mat4[float64]] = Mat4[float64]{}

func IdentityMat4[S Float]() Mat4[S] {
	return Mat4[S]{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

func TranslationMat4[S Float](offset Vec3[S]) Mat4[S] {
	return Mat4[S]{
		{1, 0, 0, offset.X},
		{0, 1, 0, offset.Y},
		{0, 0, 1, offset.Z},
		{0, 0, 0, 1},
	}
}

func ScaleMat4[S Float](scale Vec3[S]) Mat4[S] {
	return Mat4[S]{
		{scale.X, 0, 0, 0},
		{0, scale.Y, 0, 0},
		{0, 0, scale.Z, 0},
		{0, 0, 0, 1},
	}
}

// Mat4FromMat3 embeds a linear map into a homogeneous matrix
// without any translation.
func Mat4FromMat3[S Float](m Mat3[S]) Mat4[S] {
	return Mat4[S]{
		{m[0][0], m[0][1], m[0][2], 0},
		{m[1][0], m[1][1], m[1][2], 0},
		{m[2][0], m[2][1], m[2][2], 0},
		{0, 0, 0, 1},
	}
}

// Mat4LookAt builds the view matrix for a camera at eye looking at center.
// It uses the same convention as LookAt: center ends up on the positive z axis.
func Mat4LookAt[S Float](eye, center, up Vec3[S]) (Mat4[S], error) {
	rot, err := Mat3LookAt(center.Sub(eye), up)
	if err != nil {
		return Mat4[S]{}, err
	}

	return viewMat4(rot, eye), nil
}

// Mat4LookAtRH builds a right handed view matrix like gluLookAt does.
func Mat4LookAtRH[S Float](eye, center, up Vec3[S]) (Mat4[S], error) {
	rot, err := Mat3LookAtRH(center.Sub(eye), up)
	if err != nil {
		return Mat4[S]{}, err
	}

	return viewMat4(rot, eye), nil
}

func viewMat4[S Float](rot Mat3[S], eye Vec3[S]) Mat4[S] {
	m := Mat4FromMat3(rot)
	m[0][3] = -rot.Row(0).Dot(eye)
	m[1][3] = -rot.Row(1).Dot(eye)
	m[2][3] = -rot.Row(2).Dot(eye)
	return m
}

func (m Mat4[S]) Row(idx int) Vec4[S] {
	return Vec4[S]{X: m[idx][0], Y: m[idx][1], Z: m[idx][2], W: m[idx][3]}
}

func (m Mat4[S]) Col(idx int) Vec4[S] {
	return Vec4[S]{X: m[0][idx], Y: m[1][idx], Z: m[2][idx], W: m[3][idx]}
}

// Mat3 returns the upper left linear part.
func (m Mat4[S]) Mat3() Mat3[S] {
	return Mat3[S]{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// Translation returns the translation column.
func (m Mat4[S]) Translation() Vec3[S] {
	return Vec3[S]{X: m[0][3], Y: m[1][3], Z: m[2][3]}
}

// IsAffine reports whether the last row is (0, 0, 0, 1).
func (m Mat4[S]) IsAffine() bool {
	return m[3] == [4]S{0, 0, 0, 1}
}

func (m Mat4[S]) Mul(n Mat4[S]) Mat4[S] {
	var result Mat4[S]
	for row := range 4 {
		for col := range 4 {
			result[row][col] = m[row][0]*n[0][col] +
				m[row][1]*n[1][col] +
				m[row][2]*n[2][col] +
				m[row][3]*n[3][col]
		}
	}

	return result
}

func (m Mat4[S]) MulVec(v Vec4[S]) Vec4[S] {
	return Vec4[S]{
		X: m.Row(0).Dot(v),
		Y: m.Row(1).Dot(v),
		Z: m.Row(2).Dot(v),
		W: m.Row(3).Dot(v),
	}
}

func (m Mat4[S]) Transpose() Mat4[S] {
	var result Mat4[S]
	for row := range 4 {
		for col := range 4 {
			result[col][row] = m[row][col]
		}
	}

	return result
}

func (m Mat4[S]) Determinant() S {
	c := m.cofactors()
	return m[0][0]*c.c00 + m[0][1]*c.c01 + m[0][2]*c.c02 + m[0][3]*c.c03
}

// Inverse returns the inverse matrix, or ErrNotInvertible if the
// determinant is zero within machine epsilon.
func (m Mat4[S]) Inverse() (Mat4[S], error) {
	c := m.cofactors()

	det := m[0][0]*c.c00 + m[0][1]*c.c01 + m[0][2]*c.c02 + m[0][3]*c.c03
	if nearZero(det) {
		return Mat4[S]{}, fmt.Errorf("mat4 with determinant %v: %w", det, ErrNotInvertible)
	}

	// 2x2 minors of the first two rows
	s0 := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	s1 := m[0][0]*m[1][2] - m[0][2]*m[1][0]
	s2 := m[0][0]*m[1][3] - m[0][3]*m[1][0]
	s3 := m[0][1]*m[1][2] - m[0][2]*m[1][1]
	s4 := m[0][1]*m[1][3] - m[0][3]*m[1][1]
	s5 := m[0][2]*m[1][3] - m[0][3]*m[1][2]

	f := 1 / det

	var inv Mat4[S]
	inv[0][0] = c.c00 * f
	inv[1][0] = c.c01 * f
	inv[2][0] = c.c02 * f
	inv[3][0] = c.c03 * f

	inv[0][1] = (-m[0][1]*c.m22m33 + m[0][2]*c.m21m33 - m[0][3]*c.m21m32) * f
	inv[1][1] = (m[0][0]*c.m22m33 - m[0][2]*c.m20m33 + m[0][3]*c.m20m32) * f
	inv[2][1] = (-m[0][0]*c.m21m33 + m[0][1]*c.m20m33 - m[0][3]*c.m20m31) * f
	inv[3][1] = (m[0][0]*c.m21m32 - m[0][1]*c.m20m32 + m[0][2]*c.m20m31) * f

	inv[0][2] = (m[3][1]*s5 - m[3][2]*s4 + m[3][3]*s3) * f
	inv[1][2] = (-m[3][0]*s5 + m[3][2]*s2 - m[3][3]*s1) * f
	inv[2][2] = (m[3][0]*s4 - m[3][1]*s2 + m[3][3]*s0) * f
	inv[3][2] = (-m[3][0]*s3 + m[3][1]*s1 - m[3][2]*s0) * f

	inv[0][3] = (-m[2][1]*s5 + m[2][2]*s4 - m[2][3]*s3) * f
	inv[1][3] = (m[2][0]*s5 - m[2][2]*s2 + m[2][3]*s1) * f
	inv[2][3] = (-m[2][0]*s4 + m[2][1]*s2 - m[2][3]*s0) * f
	inv[3][3] = (m[2][0]*s3 - m[2][1]*s1 + m[2][2]*s0) * f

	return inv, nil
}

// cofactors4 holds the cofactors of the first row together with the
// 2x2 minors of the last two rows they were computed from.
type cofactors4[S Float] struct {
	c00, c01, c02, c03 S

	m22m33, m21m33, m21m32 S
	m20m33, m20m32, m20m31 S
}

func (m Mat4[S]) cofactors() cofactors4[S] {
	var c cofactors4[S]
	c.m22m33 = m[2][2]*m[3][3] - m[2][3]*m[3][2]
	c.m21m33 = m[2][1]*m[3][3] - m[2][3]*m[3][1]
	c.m21m32 = m[2][1]*m[3][2] - m[2][2]*m[3][1]
	c.m20m33 = m[2][0]*m[3][3] - m[2][3]*m[3][0]
	c.m20m32 = m[2][0]*m[3][2] - m[2][2]*m[3][0]
	c.m20m31 = m[2][0]*m[3][1] - m[2][1]*m[3][0]

	c.c00 = m[1][1]*c.m22m33 - m[1][2]*c.m21m33 + m[1][3]*c.m21m32
	c.c01 = -(m[1][0]*c.m22m33 - m[1][2]*c.m20m33 + m[1][3]*c.m20m32)
	c.c02 = m[1][0]*c.m21m33 - m[1][1]*c.m20m33 + m[1][3]*c.m20m31
	c.c03 = -(m[1][0]*c.m21m32 - m[1][1]*c.m20m32 + m[1][2]*c.m20m31)
	return c
}

// TransformPoint applies the matrix to a point (w = 1) and performs
// the perspective divide.
func (m Mat4[S]) TransformPoint(p Vec3[S]) Vec3[S] {
	h := m.MulVec(p.Extend(1))
	return h.Truncate().Div(h.W)
}

// TransformVector applies the matrix to a direction (w = 0).
func (m Mat4[S]) TransformVector(v Vec3[S]) Vec3[S] {
	return m.MulVec(v.Extend(0)).Truncate()
}

// Concat returns the transform that applies other first and m second.
func (m Mat4[S]) Concat(other Mat4[S]) Mat4[S] {
	return m.Mul(other)
}

func (m Mat4[S]) ApproxEqual(other Mat4[S], tol Tolerance) bool {
	for row := range m {
		for col := range m[row] {
			if !ApproxEqual(m[row][col], other[row][col], tol) {
				return false
			}
		}
	}

	return true
}

func (m Mat4[S]) String() string {
	return fmt.Sprintf("mat4(%v, %v, %v, %v)", m[0], m[1], m[2], m[3])
}
