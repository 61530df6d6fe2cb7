package gm

import "fmt"

// Mat2 describes a 2x2 matrix in row major order, m[row][col].
type Mat2[S Float] [2][2]S

func IdentityMat2[S Float]() Mat2[S] {
	return Mat2[S]{
		{1, 0},
		{0, 1},
	}
}

// ScaleMat2 returns a matrix that scales a Vec2.
func ScaleMat2[S Float](scale Vec2[S]) Mat2[S] {
	return Mat2[S]{
		{scale.X, 0},
		{0, scale.Y},
	}
}

// RotationMat2 returns a rotation matrix that rotates
// a Vec2 counterclockwise by the given angle
func RotationMat2[S Float](angle Angle[S]) Mat2[S] {
	sin, cos := angle.Radians().SinCos()

	return Mat2[S]{
		{cos, -sin},
		{sin, cos},
	}
}

// Mat2FromCols builds a matrix from its two column vectors.
func Mat2FromCols[S Float](x, y Vec2[S]) Mat2[S] {
	return Mat2[S]{
		{x.X, y.X},
		{x.Y, y.Y},
	}
}

func (m Mat2[S]) Col(idx int) Vec2[S] {
	return Vec2[S]{X: m[0][idx], Y: m[1][idx]}
}

func (m Mat2[S]) Transform(vec Vec2[S]) Vec2[S] {
	return Vec2[S]{
		X: m[0][0]*vec.X + m[0][1]*vec.Y,
		Y: m[1][0]*vec.X + m[1][1]*vec.Y,
	}
}

func (m Mat2[S]) Mul(n Mat2[S]) Mat2[S] {
	return Mat2[S]{
		{
			m[0][0]*n[0][0] + m[0][1]*n[1][0],
			m[0][0]*n[0][1] + m[0][1]*n[1][1],
		},
		{
			m[1][0]*n[0][0] + m[1][1]*n[1][0],
			m[1][0]*n[0][1] + m[1][1]*n[1][1],
		},
	}
}

func (m Mat2[S]) Transpose() Mat2[S] {
	return Mat2[S]{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

func (m Mat2[S]) Determinant() S {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Inverse returns the inverse of the matrix, or ErrNotInvertible
// if the determinant is zero.
func (m Mat2[S]) Inverse() (Mat2[S], error) {
	det := m.Determinant()
	if nearZero(det) {
		return Mat2[S]{}, fmt.Errorf("mat2 with determinant %v: %w", det, ErrNotInvertible)
	}

	f := 1 / det
	return Mat2[S]{
		{f * m[1][1], f * -m[0][1]},
		{f * -m[1][0], f * m[0][0]},
	}, nil
}

func (m Mat2[S]) ApproxEqual(other Mat2[S], tol Tolerance) bool {
	for row := range m {
		for col := range m[row] {
			if !ApproxEqual(m[row][col], other[row][col], tol) {
				return false
			}
		}
	}

	return true
}
