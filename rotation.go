package gm

// Rotation is the contract shared by all representations of a rotation.
// V is the vector type the rotation acts on, R the implementing type itself.
//
// Implementations are value types. Identity ignores its receiver, so
// it can be called on the zero value of R.
type Rotation[V any, R any] interface {
	// Identity returns the rotation that leaves every vector unchanged.
	Identity() R

	// Concat returns the rotation that applies other first and the receiver second.
	Concat(other R) R

	Invert() R

	RotateVector(vec V) V

	ApproxEqual(other R, tol Tolerance) bool
}

// Rotation3 is a rotation in three dimensional space that converts
// to and from an orthonormal basis.
type Rotation3[S Float, R any] interface {
	Rotation[Vec3[S], R]

	Mat3() Mat3[S]

	// FromMat3 builds a rotation from the orthonormal basis in m.
	// The receiver is ignored.
	FromMat3(m Mat3[S]) R
}

// Rotation2 is a rotation in the plane.
type Rotation2[S Float, R any] interface {
	Rotation[Vec2[S], R]

	Mat2() Mat2[S]

	// FromMat2 builds a rotation from the orthonormal basis in m.
	// The receiver is ignored.
	FromMat2(m Mat2[S]) R
}

func identityOf[V any, R Rotation[V, R]]() R {
	var r R
	return r.Identity()
}

func rotationFromMat3[S Float, R Rotation3[S, R]](m Mat3[S]) R {
	var r R
	return r.FromMat3(m)
}

func rotationFromMat2[S Float, R Rotation2[S, R]](m Mat2[S]) R {
	var r R
	return r.FromMat2(m)
}
