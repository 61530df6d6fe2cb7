package gm

import "errors"

// ErrNotInvertible is returned when a transform collapses space and
// therefore has no inverse, e.g. a zero scale or a singular matrix.
var ErrNotInvertible = errors.New("transform is not invertible")

// ErrDegenerateBasis is returned when no orthonormal basis can be derived
// from the given directions, e.g. a look-at whose up vector is parallel
// to the viewing direction.
var ErrDegenerateBasis = errors.New("degenerate basis")

// ErrNotAffine is returned when a homogeneous matrix contains
// a projective component.
var ErrNotAffine = errors.New("matrix is not affine")
