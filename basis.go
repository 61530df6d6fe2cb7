package gm

import "fmt"

// Basis3 is a rotation stored as an orthonormal 3x3 matrix. Concatenation
// is a matrix product and the inverse is the transposed matrix.
type Basis3[S Float] struct {
	Mat Mat3[S] `json:"mat" yaml:"mat"`
}

var _ Rotation3[float64, Basis3[float64]] = Basis3[float64]{}

func IdentityBasis3[S Float]() Basis3[S] {
	return Basis3[S]{Mat: IdentityMat3[S]()}
}

// Basis3FromAxisAngle returns the rotation by angle around the unit length axis.
func Basis3FromAxisAngle[S Float](axis Vec3[S], angle Angle[S]) Basis3[S] {
	return Basis3[S]{Mat: AxisAngleMat3(axis, angle)}
}

func Basis3FromAngleX[S Float](angle Angle[S]) Basis3[S] {
	return Basis3[S]{Mat: RotationXMat3(angle)}
}

func Basis3FromAngleY[S Float](angle Angle[S]) Basis3[S] {
	return Basis3[S]{Mat: RotationYMat3(angle)}
}

func Basis3FromAngleZ[S Float](angle Angle[S]) Basis3[S] {
	return Basis3[S]{Mat: RotationZMat3(angle)}
}

func Basis3FromQuat[S Float](q Quat[S]) Basis3[S] {
	return Basis3[S]{Mat: q.Mat3()}
}

func (b Basis3[S]) Identity() Basis3[S] {
	return IdentityBasis3[S]()
}

func (b Basis3[S]) FromMat3(m Mat3[S]) Basis3[S] {
	return Basis3[S]{Mat: m}
}

func (b Basis3[S]) Mat3() Mat3[S] {
	return b.Mat
}

func (b Basis3[S]) Quat() Quat[S] {
	return QuatFromMat3(b.Mat)
}

func (b Basis3[S]) Concat(other Basis3[S]) Basis3[S] {
	return Basis3[S]{Mat: b.Mat.Mul(other.Mat)}
}

func (b Basis3[S]) Invert() Basis3[S] {
	return Basis3[S]{Mat: b.Mat.Transpose()}
}

func (b Basis3[S]) RotateVector(vec Vec3[S]) Vec3[S] {
	return b.Mat.MulVec(vec)
}

func (b Basis3[S]) ApproxEqual(other Basis3[S], tol Tolerance) bool {
	return b.Mat.ApproxEqual(other.Mat, tol)
}

func (b Basis3[S]) String() string {
	return fmt.Sprintf("basis3(%v, %v, %v)", b.Mat[0], b.Mat[1], b.Mat[2])
}

// Basis2 is a rotation in the plane stored as an orthonormal 2x2 matrix.
type Basis2[S Float] struct {
	Mat Mat2[S] `json:"mat" yaml:"mat"`
}

var _ Rotation2[float64, Basis2[float64]] = Basis2[float64]{}

func IdentityBasis2[S Float]() Basis2[S] {
	return Basis2[S]{Mat: IdentityMat2[S]()}
}

// Basis2FromAngle returns the counterclockwise rotation by angle.
func Basis2FromAngle[S Float](angle Angle[S]) Basis2[S] {
	return Basis2[S]{Mat: RotationMat2(angle)}
}

func (b Basis2[S]) Identity() Basis2[S] {
	return IdentityBasis2[S]()
}

func (b Basis2[S]) FromMat2(m Mat2[S]) Basis2[S] {
	return Basis2[S]{Mat: m}
}

func (b Basis2[S]) Mat2() Mat2[S] {
	return b.Mat
}

// Angle returns the rotation angle in the range [-π, π].
func (b Basis2[S]) Angle() Rad[S] {
	return Atan2(b.Mat[1][0], b.Mat[0][0])
}

func (b Basis2[S]) Concat(other Basis2[S]) Basis2[S] {
	return Basis2[S]{Mat: b.Mat.Mul(other.Mat)}
}

func (b Basis2[S]) Invert() Basis2[S] {
	return Basis2[S]{Mat: b.Mat.Transpose()}
}

func (b Basis2[S]) RotateVector(vec Vec2[S]) Vec2[S] {
	return b.Mat.Transform(vec)
}

func (b Basis2[S]) ApproxEqual(other Basis2[S], tol Tolerance) bool {
	return b.Mat.ApproxEqual(other.Mat, tol)
}
