package gm

// LookAt builds the view transform of a camera placed at eye that looks
// towards center. The transform maps eye onto the origin and center onto
// the positive z axis, at a distance of |center - eye|. up selects the
// direction that ends up in the positive y half of the view.
//
// The rotation representation is chosen by the caller:
//
//	view, err := gm.LookAt[float64, gm.Quat[float64]](eye, center, up)
//
// LookAt fails with ErrDegenerateBasis if eye equals center, or if up is
// zero or parallel to the viewing direction. No fallback axis is chosen.
func LookAt[S Float, R Rotation3[S, R]](eye, center, up Vec3[S]) (Decomposed3[S, R], error) {
	basis, err := Mat3LookAt(center.Sub(eye), up)
	if err != nil {
		return Decomposed3[S, R]{}, err
	}

	return lookAtFromBasis[S, R](basis, eye), nil
}

// LookAtRH is the right handed variant of LookAt. center is mapped onto
// the negative z axis, like gluLookAt does.
func LookAtRH[S Float, R Rotation3[S, R]](eye, center, up Vec3[S]) (Decomposed3[S, R], error) {
	basis, err := Mat3LookAtRH(center.Sub(eye), up)
	if err != nil {
		return Decomposed3[S, R]{}, err
	}

	return lookAtFromBasis[S, R](basis, eye), nil
}

func lookAtFromBasis[S Float, R Rotation3[S, R]](basis Mat3[S], eye Vec3[S]) Decomposed3[S, R] {
	rot := rotationFromMat3[S, R](basis)

	return Decomposed3[S, R]{
		Scale: 1,
		Rot:   rot,
		Disp:  rot.RotateVector(eye.Neg()),
	}
}
