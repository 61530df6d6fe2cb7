package gm

import "fmt"

// Affine2 represents a two dimensional affine transformation. It consists of
// a Matrix that describes rotation, scale and shear, as well as a Translation vector.
// Unlike Decomposed, it supports non-uniform scale.
//
// Use IdentityAffine to build a new identity transformation.
type Affine2[S Float] struct {
	Matrix      Mat2[S] `json:"matrix" yaml:"matrix"`
	Translation Vec2[S] `json:"translation" yaml:"translation"`
}

var _ Transform[Vec2[float64], Affine2[float64]] = Affine2[float64]{}

// IdentityAffine returns the identity transformation.
func IdentityAffine[S Float]() Affine2[S] {
	return Affine2[S]{
		Matrix: IdentityMat2[S](),
	}
}

// Affine2FromMat3 extracts the affine part of a homogeneous matrix.
func Affine2FromMat3[S Float](m Mat3[S]) (Affine2[S], error) {
	if m[2] != [3]S{0, 0, 1} {
		return Affine2[S]{}, fmt.Errorf("bottom row %v: %w", m[2], ErrNotAffine)
	}

	return Affine2[S]{
		Matrix:      m.Mat2(),
		Translation: Vec2[S]{X: m[0][2], Y: m[1][2]},
	}, nil
}

// Rotate returns a transform that first rotates by angle and then applies a.
func (a Affine2[S]) Rotate(angle Angle[S]) Affine2[S] {
	rot := Affine2[S]{Matrix: RotationMat2(angle)}
	return a.Concat(rot)
}

func (a Affine2[S]) Scale(scale Vec2[S]) Affine2[S] {
	rot := Affine2[S]{Matrix: ScaleMat2(scale)}
	return a.Concat(rot)
}

func (a Affine2[S]) Translate(translate Vec2[S]) Affine2[S] {
	rot := Affine2[S]{Matrix: IdentityMat2[S](), Translation: translate}
	return a.Concat(rot)
}

// TransformPoint applies the affine transform to the given point and returns
// the transformed point.
func (a Affine2[S]) TransformPoint(point Vec2[S]) Vec2[S] {
	return a.Matrix.Transform(point).Add(a.Translation)
}

// TransformVector applies the transform to a vector. This is different from transforming
// a point in that it will not apply the translation component of the Affine transform.
// The vector will only be rotated and scaled.
func (a Affine2[S]) TransformVector(vec Vec2[S]) Vec2[S] {
	return a.Matrix.Transform(vec)
}

// Concat multiplies the affine transformation with another transformation.
// The effect of the resulting transformation is the same as transforming a
// point first by other and then by a.
func (a Affine2[S]) Concat(other Affine2[S]) Affine2[S] {
	return Affine2[S]{
		Matrix:      a.Matrix.Mul(other.Matrix),
		Translation: a.Matrix.Transform(other.Translation).Add(a.Translation),
	}
}

// Inverse returns the inverse of the Affine transformation, or
// ErrNotInvertible if the matrix is singular.
func (a Affine2[S]) Inverse() (Affine2[S], error) {
	mat, err := a.Matrix.Inverse()
	if err != nil {
		return Affine2[S]{}, err
	}

	translation := mat.Transform(a.Translation).Mul(-1)
	inverse := Affine2[S]{
		Matrix:      mat,
		Translation: translation,
	}

	return inverse, nil
}

// Mat3 returns the homogeneous matrix of the transformation.
func (a Affine2[S]) Mat3() Mat3[S] {
	m := Mat3FromMat2(a.Matrix)
	m[0][2] = a.Translation.X
	m[1][2] = a.Translation.Y
	return m
}

func (a Affine2[S]) ApproxEqual(other Affine2[S], tol Tolerance) bool {
	return a.Matrix.ApproxEqual(other.Matrix, tol) &&
		a.Translation.ApproxEqual(other.Translation, tol)
}
