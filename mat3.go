package gm

import "fmt"

// Mat3 is a 3x3 matrix in row major order, m[row][col]. Vectors are
// treated as columns and multiplied from the right.
//
// A Mat3 is either a linear map of Vec3 values (see MulVec) or a
// homogeneous two dimensional transform of Vec2 values (see TransformPoint).
type Mat3[S Float] [3][3]S

var _ Transform[Vec2[float64], Mat3[float64]] = Mat3[float64]{}

func IdentityMat3[S Float]() Mat3[S] {
	return Mat3[S]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

func Mat3FromRows[S Float](x, y, z Vec3[S]) Mat3[S] {
	return Mat3[S]{
		{x.X, x.Y, x.Z},
		{y.X, y.Y, y.Z},
		{z.X, z.Y, z.Z},
	}
}

func Mat3FromCols[S Float](x, y, z Vec3[S]) Mat3[S] {
	return Mat3FromRows(x, y, z).Transpose()
}

// Mat3FromMat2 embeds the linear map into the upper left corner.
func Mat3FromMat2[S Float](m Mat2[S]) Mat3[S] {
	return Mat3[S]{
		{m[0][0], m[0][1], 0},
		{m[1][0], m[1][1], 0},
		{0, 0, 1},
	}
}

// TranslationMat3 returns the homogeneous two dimensional translation.
func TranslationMat3[S Float](offset Vec2[S]) Mat3[S] {
	return Mat3[S]{
		{1, 0, offset.X},
		{0, 1, offset.Y},
		{0, 0, 1},
	}
}

func RotationXMat3[S Float](angle Angle[S]) Mat3[S] {
	s, c := angle.Radians().SinCos()
	return Mat3[S]{
		{1, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

func RotationYMat3[S Float](angle Angle[S]) Mat3[S] {
	s, c := angle.Radians().SinCos()
	return Mat3[S]{
		{c, 0, s},
		{0, 1, 0},
		{-s, 0, c},
	}
}

func RotationZMat3[S Float](angle Angle[S]) Mat3[S] {
	s, c := angle.Radians().SinCos()
	return Mat3[S]{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// AxisAngleMat3 returns the rotation around the given axis. The axis
// must be of unit length.
func AxisAngleMat3[S Float](axis Vec3[S], angle Angle[S]) Mat3[S] {
	s, c := angle.Radians().SinCos()
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return Mat3[S]{
		{t*x*x + c, t*x*y - s*z, t*x*z + s*y},
		{t*x*y + s*z, t*y*y + c, t*y*z - s*x},
		{t*x*z - s*y, t*y*z + s*x, t*z*z + c},
	}
}

// Mat3LookAt returns the rotation that maps dir onto the positive z axis
// and up into the y/z plane. The rows of the result are the right, up
// and forward directions of the view.
func Mat3LookAt[S Float](dir, up Vec3[S]) (Mat3[S], error) {
	dir, side, err := lookAtAxes(dir, up)
	if err != nil {
		return Mat3[S]{}, err
	}

	// up x dir points the other way than dir x up
	side = side.Neg()
	up = dir.Cross(side).Normalized()

	return Mat3FromRows(side, up, dir), nil
}

// Mat3LookAtRH is the right handed variant of Mat3LookAt as used by OpenGL:
// the viewing direction is mapped onto the negative z axis.
func Mat3LookAtRH[S Float](dir, up Vec3[S]) (Mat3[S], error) {
	dir, side, err := lookAtAxes(dir, up)
	if err != nil {
		return Mat3[S]{}, err
	}

	up = side.Cross(dir)

	return Mat3FromRows(side, up, dir.Neg()), nil
}

// lookAtAxes returns the normalized direction and the unit vector dir x up,
// orthogonalized against dir. up is rejected if its angle to dir is
// below the square root of machine epsilon, where the cross product is
// dominated by rounding errors.
func lookAtAxes[S Float](dir, up Vec3[S]) (Vec3[S], Vec3[S], error) {
	if nearZero(dir.LengthSqr()) {
		return dir, Vec3[S]{}, fmt.Errorf("look direction %s: %w", dir, ErrDegenerateBasis)
	}

	if nearZero(up.LengthSqr()) {
		return dir, Vec3[S]{}, fmt.Errorf("up %s: %w", up, ErrDegenerateBasis)
	}

	dir = dir.Normalized()

	side := dir.Cross(up.Normalized())
	if side.Length() <= sqrt(Epsilon[S]()) {
		return dir, Vec3[S]{}, fmt.Errorf("up %s parallel to direction %s: %w", up, dir, ErrDegenerateBasis)
	}

	side = side.Sub(dir.Mul(side.Dot(dir))).Normalized()

	return dir, side, nil
}

func (m Mat3[S]) Row(idx int) Vec3[S] {
	return Vec3[S]{X: m[idx][0], Y: m[idx][1], Z: m[idx][2]}
}

func (m Mat3[S]) Col(idx int) Vec3[S] {
	return Vec3[S]{X: m[0][idx], Y: m[1][idx], Z: m[2][idx]}
}

// Mat2 returns the upper left 2x2 block.
func (m Mat3[S]) Mat2() Mat2[S] {
	return Mat2[S]{
		{m[0][0], m[0][1]},
		{m[1][0], m[1][1]},
	}
}

func (m Mat3[S]) Mul(n Mat3[S]) Mat3[S] {
	var result Mat3[S]
	for row := range 3 {
		for col := range 3 {
			result[row][col] = m[row][0]*n[0][col] + m[row][1]*n[1][col] + m[row][2]*n[2][col]
		}
	}

	return result
}

func (m Mat3[S]) MulVec(v Vec3[S]) Vec3[S] {
	return Vec3[S]{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

func (m Mat3[S]) MulScalar(f S) Mat3[S] {
	for row := range 3 {
		for col := range 3 {
			m[row][col] *= f
		}
	}

	return m
}

func (m Mat3[S]) Transpose() Mat3[S] {
	return Mat3[S]{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

func (m Mat3[S]) Trace() S {
	return m[0][0] + m[1][1] + m[2][2]
}

func (m Mat3[S]) Determinant() S {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse matrix, or ErrNotInvertible if the
// determinant is zero within machine epsilon.
func (m Mat3[S]) Inverse() (Mat3[S], error) {
	det := m.Determinant()
	if nearZero(det) {
		return Mat3[S]{}, fmt.Errorf("mat3 with determinant %v: %w", det, ErrNotInvertible)
	}

	f := 1 / det
	return Mat3[S]{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * f,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * f,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * f,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * f,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * f,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * f,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * f,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * f,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * f,
		},
	}, nil
}

// TransformPoint applies the homogeneous transform to a two dimensional
// point, including the perspective divide.
func (m Mat3[S]) TransformPoint(p Vec2[S]) Vec2[S] {
	h := m.MulVec(p.Extend(1))
	return Vec2[S]{X: h.X / h.Z, Y: h.Y / h.Z}
}

// TransformVector applies the homogeneous transform to a two dimensional
// vector. The translation column has no effect on vectors.
func (m Mat3[S]) TransformVector(v Vec2[S]) Vec2[S] {
	return m.MulVec(v.Extend(0)).Truncate()
}

// Concat returns the transform that applies other first and m second.
func (m Mat3[S]) Concat(other Mat3[S]) Mat3[S] {
	return m.Mul(other)
}

func (m Mat3[S]) ApproxEqual(other Mat3[S], tol Tolerance) bool {
	for row := range m {
		for col := range m[row] {
			if !ApproxEqual(m[row][col], other[row][col], tol) {
				return false
			}
		}
	}

	return true
}

func (m Mat3[S]) String() string {
	return fmt.Sprintf("mat3(%v, %v, %v)", m[0], m[1], m[2])
}
