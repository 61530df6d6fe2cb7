package gm_test

import (
	"testing"

	"github.com/oliverbestmann/gm"
	"github.com/oliverbestmann/gm/internal/assert"
	"github.com/stretchr/testify/require"
)

func TestAffine_Transform(t *testing.T) {
	tr := gm.IdentityAffine[float64]().Translate(gm.Vec2Of(2.0, 1.0))
	require.Equal(t, gm.Vec2Of(12.0, 11.0), tr.TransformPoint(gm.Vec2Of(10.0, 10.0)))

	// translate vector by (10, 0) first, then rotate by 90°
	tr = gm.IdentityAffine[float64]().Translate(gm.Vec2Of(10.0, 0.0)).Rotate(gm.DegToRad(90.0))
	res := tr.TransformPoint(gm.Vec2Of(1.0, 0.0))
	require.InDelta(t, 10.0, res.X, 1e-9)
	require.InDelta(t, 1.0, res.Y, 1e-9)

	// rotate by 90° first, then move by (in local space) (10, 0)
	tr = gm.IdentityAffine[float64]().Rotate(gm.DegToRad(90.0)).Translate(gm.Vec2Of(10.0, 0.0))
	res = tr.TransformPoint(gm.Vec2Of(1.0, 0.0))
	require.InDelta(t, 0.0, res.X, 1e-9)
	require.InDelta(t, 11.0, res.Y, 1e-9)

	// scale by 2 first, then move by local 5 (10 real)
	tr = gm.IdentityAffine[float64]().Scale(gm.Vec2Splat(2.0)).Translate(gm.Vec2Of(5.0, 0.0))
	res = tr.TransformPoint(gm.Vec2Of(10.0, 0.0))
	require.InDelta(t, 30.0, res.X, 1e-9)
}

func TestAffine_Inverse(t *testing.T) {
	tr := gm.IdentityAffine[float64]().
		Translate(gm.Vec2Of(3.0, -1.0)).
		Rotate(gm.DegOf(30.0)).
		Scale(gm.Vec2Of(2.0, 0.5))

	inv, err := tr.Inverse()
	require.NoError(t, err)

	point := gm.Vec2Of(7.0, 11.0)
	assert.ApproxEqual(t, point, inv.TransformPoint(tr.TransformPoint(point)), tol64)
	assert.ApproxEqual(t, gm.IdentityAffine[float64](), tr.Concat(inv), tol64)

	_, err = gm.IdentityAffine[float64]().Scale(gm.Vec2Of(1.0, 0.0)).Inverse()
	require.ErrorIs(t, err, gm.ErrNotInvertible)
}

func TestAffine_Mat3(t *testing.T) {
	tr := gm.IdentityAffine[float64]().
		Translate(gm.Vec2Of(3.0, -1.0)).
		Rotate(gm.DegOf(30.0)).
		Scale(gm.Vec2Of(2.0, 0.5))

	m := tr.Mat3()

	point := gm.Vec2Of(-4.0, 2.0)
	assert.ApproxEqual(t, tr.TransformPoint(point), m.TransformPoint(point), tol64)
	assert.ApproxEqual(t, tr.TransformVector(point), m.TransformVector(point), tol64)

	back, err := gm.Affine2FromMat3(m)
	require.NoError(t, err)
	require.Equal(t, tr, back)

	m[2][0] = 1
	_, err = gm.Affine2FromMat3(m)
	require.ErrorIs(t, err, gm.ErrNotAffine)
}

func TestRect_Transform(t *testing.T) {
	r := gm.RectWithPoints(gm.Vec2Of(1.0, 1.0), gm.Vec2Of(-1.0, -1.0))

	tr := gm.IdentityAffine[float64]().Translate(gm.Vec2Of(10.0, 0.0)).Rotate(gm.DegOf(45.0))
	bounds := gm.TransformRect(tr, r)

	assert.ApproxEqual(t, gm.Vec2Of(10.0, 0.0), bounds.Center(), tol64)
	require.InDelta(t, 2*1.4142135623730951, bounds.Size().X, 1e-9)
	require.True(t, bounds.Contains(gm.Vec2Of(11.0, 1.0)))
	require.False(t, bounds.Contains(gm.Vec2Of(12.0, 0.0)))
}
