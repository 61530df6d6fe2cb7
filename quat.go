package gm

import "fmt"

// Quat is a quaternion with scalar part W and vector part V.
// Unit quaternions describe rotations in three dimensional space.
type Quat[S Float] struct {
	W S       `json:"w" yaml:"w"`
	V Vec3[S] `json:"v" yaml:"v"`
}

var _ Rotation3[float64, Quat[float64]] = Quat[float64]{}

func QuatOf[S Float](w, x, y, z S) Quat[S] {
	return Quat[S]{W: w, V: Vec3[S]{X: x, Y: y, Z: z}}
}

func IdentityQuat[S Float]() Quat[S] {
	return Quat[S]{W: 1}
}

// QuatFromAxisAngle returns the rotation by angle around axis.
// The axis must be of unit length.
func QuatFromAxisAngle[S Float](axis Vec3[S], angle Angle[S]) Quat[S] {
	s, c := angle.Radians().Div(2).SinCos()
	return Quat[S]{W: c, V: axis.Mul(s)}
}

func QuatFromAngleX[S Float](angle Angle[S]) Quat[S] {
	return QuatFromAxisAngle(UnitX[S](), angle)
}

func QuatFromAngleY[S Float](angle Angle[S]) Quat[S] {
	return QuatFromAxisAngle(UnitY[S](), angle)
}

func QuatFromAngleZ[S Float](angle Angle[S]) Quat[S] {
	return QuatFromAxisAngle(UnitZ[S](), angle)
}

// QuatFromEuler returns the rotation around the z axis, followed by the
// rotation around the y axis, followed by the rotation around the x axis.
func QuatFromEuler[S Float](x, y, z Angle[S]) Quat[S] {
	return QuatFromAngleX(x).Concat(QuatFromAngleY(y)).Concat(QuatFromAngleZ(z))
}

// QuatFromMat3 converts an orthonormal rotation matrix into a unit quaternion.
func QuatFromMat3[S Float](m Mat3[S]) Quat[S] {
	trace := m.Trace()

	switch {
	case trace >= 0:
		s := sqrt(1 + trace)
		w := s / 2
		s = 0.5 / s
		return QuatOf(w, (m[2][1]-m[1][2])*s, (m[0][2]-m[2][0])*s, (m[1][0]-m[0][1])*s)

	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := sqrt(1 + m[0][0] - m[1][1] - m[2][2])
		x := s / 2
		s = 0.5 / s
		return QuatOf((m[2][1]-m[1][2])*s, x, (m[0][1]+m[1][0])*s, (m[0][2]+m[2][0])*s)

	case m[1][1] > m[2][2]:
		s := sqrt(1 + m[1][1] - m[0][0] - m[2][2])
		y := s / 2
		s = 0.5 / s
		return QuatOf((m[0][2]-m[2][0])*s, (m[0][1]+m[1][0])*s, y, (m[1][2]+m[2][1])*s)

	default:
		s := sqrt(1 + m[2][2] - m[0][0] - m[1][1])
		z := s / 2
		s = 0.5 / s
		return QuatOf((m[1][0]-m[0][1])*s, (m[0][2]+m[2][0])*s, (m[1][2]+m[2][1])*s, z)
	}
}

func (q Quat[S]) Identity() Quat[S] {
	return IdentityQuat[S]()
}

func (q Quat[S]) FromMat3(m Mat3[S]) Quat[S] {
	return QuatFromMat3(m)
}

// Mul returns the hamilton product q·other.
func (q Quat[S]) Mul(other Quat[S]) Quat[S] {
	return Quat[S]{
		W: q.W*other.W - q.V.Dot(other.V),
		V: other.V.Mul(q.W).Add(q.V.Mul(other.W)).Add(q.V.Cross(other.V)),
	}
}

// Concat returns the rotation that applies other first and q second.
func (q Quat[S]) Concat(other Quat[S]) Quat[S] {
	return q.Mul(other)
}

func (q Quat[S]) MulScalar(f S) Quat[S] {
	return Quat[S]{W: q.W * f, V: q.V.Mul(f)}
}

func (q Quat[S]) Add(other Quat[S]) Quat[S] {
	return Quat[S]{W: q.W + other.W, V: q.V.Add(other.V)}
}

func (q Quat[S]) Conjugate() Quat[S] {
	return Quat[S]{W: q.W, V: q.V.Neg()}
}

// Invert returns the multiplicative inverse. For unit
// quaternions this is the same as the conjugate.
func (q Quat[S]) Invert() Quat[S] {
	return q.Conjugate().MulScalar(1 / q.MagnitudeSqr())
}

func (q Quat[S]) Dot(other Quat[S]) S {
	return q.W*other.W + q.V.Dot(other.V)
}

func (q Quat[S]) MagnitudeSqr() S {
	return q.Dot(q)
}

func (q Quat[S]) Magnitude() S {
	return sqrt(q.MagnitudeSqr())
}

func (q Quat[S]) Normalized() Quat[S] {
	return q.MulScalar(1 / q.Magnitude())
}

// RotateVector rotates vec by the unit quaternion q.
func (q Quat[S]) RotateVector(vec Vec3[S]) Vec3[S] {
	tmp := q.V.Cross(vec).Add(vec.Mul(q.W))
	return q.V.Cross(tmp).Mul(2).Add(vec)
}

// Mat3 returns the rotation matrix of the unit quaternion q.
func (q Quat[S]) Mat3() Mat3[S] {
	x, y, z, w := q.V.X, q.V.Y, q.V.Z, q.W
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	return Mat3[S]{
		{1 - 2*(yy+zz), 2 * (xy - wz), 2 * (xz + wy)},
		{2 * (xy + wz), 1 - 2*(xx+zz), 2 * (yz - wx)},
		{2 * (xz - wy), 2 * (yz + wx), 1 - 2*(xx+yy)},
	}
}

func (q Quat[S]) ApproxEqual(other Quat[S], tol Tolerance) bool {
	return ApproxEqual(q.W, other.W, tol) && q.V.ApproxEqual(other.V, tol)
}

func (q Quat[S]) String() string {
	return fmt.Sprintf("quat(w=%v, x=%v, y=%v, z=%v)", q.W, q.V.X, q.V.Y, q.V.Z)
}
