// Package gmcp converts between gm values and the types of the
// chipmunk2d physics engine.
package gmcp

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gm"
)

func Vector(v gm.Vec2[float64]) cp.Vector {
	return cp.Vector(v)
}

func Vec2(v cp.Vector) gm.Vec2[float64] {
	return gm.Vec2[float64](v)
}

// Transform converts an affine transform into a cp.Transform.
func Transform(a gm.Affine2[float64]) cp.Transform {
	m := a.Matrix
	return cp.NewTransformTranspose(
		m[0][0], m[0][1], a.Translation.X,
		m[1][0], m[1][1], a.Translation.Y,
	)
}

// Affine2 reads back a cp.Transform. The fields of cp.Transform are not
// exported, the columns are recovered by transforming the unit vectors.
func Affine2(t cp.Transform) gm.Affine2[float64] {
	x := Vec2(t.Vect(cp.Vector{X: 1}))
	y := Vec2(t.Vect(cp.Vector{Y: 1}))

	return gm.Affine2[float64]{
		Matrix:      gm.Mat2FromCols(x, y),
		Translation: Vec2(t.Point(cp.Vector{})),
	}
}

// Pose returns the rigid transform of a body, mapping body local
// coordinates into world space.
func Pose[R gm.Rotation2[float64, R]](body *cp.Body) gm.Decomposed2[float64, R] {
	return gm.Decomposed2FromRotation[float64, R](gm.RadOf(body.Angle()), Vec2(body.Position()))
}

// SetPose moves the body to the given transform. The scale of the
// transform is ignored, bodies are always rigid.
func SetPose[R gm.Rotation2[float64, R]](body *cp.Body, pose gm.Decomposed2[float64, R]) {
	m := pose.Rot.Mat2()

	body.SetAngle(gm.Atan2(m[1][0], m[0][0]).Value())
	body.SetPosition(Vector(pose.Disp))
}
