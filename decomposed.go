package gm

import (
	"fmt"
)

// Vector is the contract a vector type must fulfill to be used in a Decomposed transform.
type Vector[S Float, V any] interface {
	Add(other V) V
	Sub(other V) V
	Mul(scalar S) V
	Neg() V
	ApproxEqual(other V, tol Tolerance) bool
}

// Decomposed is an affine transform stored as separate uniform scale,
// rotation and displacement. A point p is mapped to Rot·(Scale·p) + Disp,
// a vector v to Rot·(Scale·v).
//
// Use IdentityDecomposed to build a new identity transformation,
// or LookAt to build a view transform.
type Decomposed[S Float, V Vector[S, V], R Rotation[V, R]] struct {
	Scale S `json:"scale" yaml:"scale"`
	Rot   R `json:"rot" yaml:"rot"`
	Disp  V `json:"disp" yaml:"disp"`
}

var (
	_ Transform[Vec3[float64], Decomposed3[float64, Quat[float64]]]   = Decomposed3[float64, Quat[float64]]{}
	_ Transform[Vec3[float32], Decomposed3[float32, Basis3[float32]]] = Decomposed3[float32, Basis3[float32]]{}
	_ Transform[Vec2[float64], Decomposed2[float64, Basis2[float64]]] = Decomposed2[float64, Basis2[float64]]{}
)

// Decomposed3 is a transform in three dimensional space.
type Decomposed3[S Float, R Rotation3[S, R]] = Decomposed[S, Vec3[S], R]

// Decomposed2 is a transform in the plane.
type Decomposed2[S Float, R Rotation2[S, R]] = Decomposed[S, Vec2[S], R]

// IdentityDecomposed returns the identity transformation.
func IdentityDecomposed[S Float, V Vector[S, V], R Rotation[V, R]]() Decomposed[S, V, R] {
	return Decomposed[S, V, R]{
		Scale: 1,
		Rot:   identityOf[V, R](),
	}
}

func (d Decomposed[S, V, R]) TransformVector(vec V) V {
	return d.Rot.RotateVector(vec).Mul(d.Scale)
}

func (d Decomposed[S, V, R]) TransformPoint(point V) V {
	return d.Rot.RotateVector(point.Mul(d.Scale)).Add(d.Disp)
}

// Concat returns the transform that applies other first and d second.
func (d Decomposed[S, V, R]) Concat(other Decomposed[S, V, R]) Decomposed[S, V, R] {
	return Decomposed[S, V, R]{
		Scale: d.Scale * other.Scale,
		Rot:   d.Rot.Concat(other.Rot),
		Disp:  d.Disp.Add(d.Rot.RotateVector(other.Disp).Mul(d.Scale)),
	}
}

// Inverse returns the inverse transformation. A scale that is zero within
// machine epsilon, or that is not a finite number, can not be inverted.
func (d Decomposed[S, V, R]) Inverse() (Decomposed[S, V, R], error) {
	if nearZero(d.Scale) || !isFinite(d.Scale) {
		return Decomposed[S, V, R]{}, fmt.Errorf("decomposed with scale %v: %w", d.Scale, ErrNotInvertible)
	}

	scale := 1 / d.Scale
	rot := d.Rot.Invert()

	return Decomposed[S, V, R]{
		Scale: scale,
		Rot:   rot,
		Disp:  rot.RotateVector(d.Disp.Neg()).Mul(scale),
	}, nil
}

func (d Decomposed[S, V, R]) ApproxEqual(other Decomposed[S, V, R], tol Tolerance) bool {
	return ApproxEqual(d.Scale, other.Scale, tol) &&
		d.Rot.ApproxEqual(other.Rot, tol) &&
		d.Disp.ApproxEqual(other.Disp, tol)
}

func (d Decomposed[S, V, R]) String() string {
	return fmt.Sprintf("Decomposed(scale=%v, rot=%v, disp=%v)", d.Scale, d.Rot, d.Disp)
}

// Mat4FromDecomposed returns the homogeneous matrix of a three dimensional transform.
func Mat4FromDecomposed[S Float, R Rotation3[S, R]](d Decomposed3[S, R]) Mat4[S] {
	m := Mat4FromMat3(d.Rot.Mat3().MulScalar(d.Scale))
	m[0][3] = d.Disp.X
	m[1][3] = d.Disp.Y
	m[2][3] = d.Disp.Z
	return m
}

// DecomposedFromMat4 splits an affine matrix into scale, rotation and displacement.
//
// The conversion is only exact for matrices that consist of a rotation, a uniform
// scale and a translation. Non-uniform scale and shear can not be represented, the
// scale is then taken from the determinant and the rotation is re-orthonormalized.
func DecomposedFromMat4[S Float, R Rotation3[S, R]](m Mat4[S]) (Decomposed3[S, R], error) {
	if !m.IsAffine() {
		return Decomposed3[S, R]{}, fmt.Errorf("bottom row %v: %w", m[3], ErrNotAffine)
	}

	linear := m.Mat3()

	det := linear.Determinant()
	if nearZero(det) {
		return Decomposed3[S, R]{}, fmt.Errorf("linear part with determinant %v: %w", det, ErrNotInvertible)
	}

	// a negative determinant is a mirror, which is expressed as a negative scale
	scale := cbrt(det)

	basis, err := orthonormalize(linear.MulScalar(1 / scale))
	if err != nil {
		return Decomposed3[S, R]{}, err
	}

	return Decomposed3[S, R]{
		Scale: scale,
		Rot:   rotationFromMat3[S, R](basis),
		Disp:  m.Translation(),
	}, nil
}

// orthonormalize runs gram schmidt on the columns of m.
func orthonormalize[S Float](m Mat3[S]) (Mat3[S], error) {
	x := m.Col(0)
	y := m.Col(1)

	if nearZero(x.LengthSqr()) {
		return Mat3[S]{}, fmt.Errorf("x axis %s: %w", x, ErrDegenerateBasis)
	}

	x = x.Normalized()

	y = y.Sub(x.Mul(x.Dot(y)))
	if nearZero(y.LengthSqr()) {
		return Mat3[S]{}, fmt.Errorf("y axis %s: %w", y, ErrDegenerateBasis)
	}

	y = y.Normalized()

	return Mat3FromCols(x, y, x.Cross(y)), nil
}

// Mat3FromDecomposed2 returns the homogeneous matrix of a two dimensional transform.
func Mat3FromDecomposed2[S Float, R Rotation2[S, R]](d Decomposed2[S, R]) Mat3[S] {
	linear := d.Rot.Mat2()

	return Mat3[S]{
		{linear[0][0] * d.Scale, linear[0][1] * d.Scale, d.Disp.X},
		{linear[1][0] * d.Scale, linear[1][1] * d.Scale, d.Disp.Y},
		{0, 0, 1},
	}
}

// Affine2FromDecomposed converts a two dimensional transform into an Affine2.
func Affine2FromDecomposed[S Float, R Rotation2[S, R]](d Decomposed2[S, R]) Affine2[S] {
	return Affine2[S]{
		Matrix:      d.Rot.Mat2().Mul(ScaleMat2(Vec2Splat(d.Scale))),
		Translation: d.Disp,
	}
}

// Decomposed2FromRotation returns a rigid transform that rotates by angle
// and then moves by translation.
func Decomposed2FromRotation[S Float, R Rotation2[S, R]](angle Angle[S], translation Vec2[S]) Decomposed2[S, R] {
	return Decomposed2[S, R]{
		Scale: 1,
		Rot:   rotationFromMat2[S, R](RotationMat2(angle)),
		Disp:  translation,
	}
}
