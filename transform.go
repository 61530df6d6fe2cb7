package gm

// Transform is the contract shared by all affine transform representations.
// V is the vector type the transform acts on, T the implementing type itself.
//
// Points are affected by all components of the transform, while vectors
// (directions, offsets) ignore the translation.
type Transform[V any, T any] interface {
	TransformPoint(point V) V
	TransformVector(vec V) V

	// Concat returns the transform that applies other first and
	// the receiver second.
	Concat(other T) T

	// Inverse returns the inverse transform, or an error wrapping
	// ErrNotInvertible if the transform collapses space.
	Inverse() (T, error)
}

// Chain concatenates the given transforms. The last transform is applied
// first, just like it reads in a product of matrices.
func Chain[T interface{ Concat(other T) T }](first T, rest ...T) T {
	result := first
	for _, next := range rest {
		result = result.Concat(next)
	}

	return result
}

// InverseTransformPoint maps a point back through the transform t.
func InverseTransformPoint[V any, T Transform[V, T]](t T, point V) (V, error) {
	inverse, err := t.Inverse()
	if err != nil {
		var zero V
		return zero, err
	}

	return inverse.TransformPoint(point), nil
}

// InverseTransformVector maps a vector back through the transform t.
func InverseTransformVector[V any, T Transform[V, T]](t T, vec V) (V, error) {
	inverse, err := t.Inverse()
	if err != nil {
		var zero V
		return zero, err
	}

	return inverse.TransformVector(vec), nil
}
