package gm_test

import (
	"errors"
	"math"
	"testing"

	"github.com/oliverbestmann/gm"
	"github.com/oliverbestmann/gm/internal/assert"
	"github.com/stretchr/testify/require"
)

var tol64 = gm.Tolerance{Epsilon: 1e-9}

func TestMat2_Inverse(t *testing.T) {
	m := gm.RotationMat2(gm.RadOf(2.0))

	inv, err := m.Inverse()
	require.NoError(t, err)
	require.NotEqual(t, m, inv)

	invInv, err := inv.Inverse()
	require.NoError(t, err)
	assert.ApproxEqual(t, m, invInv, tol64)
}

func TestMat2_InverseIdentity(t *testing.T) {
	m := gm.IdentityMat2[float64]()

	inv, err := m.Inverse()
	require.NoError(t, err)
	require.Equal(t, m, inv)
}

func TestMat2_InverseSingular(t *testing.T) {
	m := gm.ScaleMat2(gm.Vec2Of(2.0, 0.0))

	_, err := m.Inverse()
	require.ErrorIs(t, err, gm.ErrNotInvertible)
}

func TestMat2_Mul(t *testing.T) {
	m := gm.RotationMat2(gm.RadOf(math.Pi)).Mul(gm.RotationMat2(gm.RadOf(math.Pi / 2)))
	assert.ApproxEqual(t, gm.RotationMat2(gm.RadOf(math.Pi*1.5)), m, tol64)
}

func TestMat2_Transform(t *testing.T) {
	t.Run("rotate 180°", func(t *testing.T) {
		m := gm.RotationMat2(gm.DegOf(180.0))

		r := m.Transform(gm.Vec2Of(1.0, 1.0))
		require.InDelta(t, -1, r.X, 1e-6)
		require.InDelta(t, -1, r.Y, 1e-6)

		r = m.Transform(gm.Vec2Of(0.0, 1.0))
		require.InDelta(t, 0, r.X, 1e-6)
		require.InDelta(t, -1, r.Y, 1e-6)
	})

	t.Run("rotate 90°", func(t *testing.T) {
		m := gm.RotationMat2(gm.DegOf(90.0))

		r := m.Transform(gm.Vec2Of(1.0, 1.0))
		require.InDelta(t, -1, r.X, 1e-6)
		require.InDelta(t, 1, r.Y, 1e-6)

		r = m.Transform(gm.Vec2Of(1.0, 0.0))
		require.InDelta(t, 0, r.X, 1e-6)
		require.InDelta(t, 1, r.Y, 1e-6)

		r = m.Transform(gm.Vec2Of(0.0, 1.0))
		require.InDelta(t, -1, r.X, 1e-6)
		require.InDelta(t, 0, r.Y, 1e-6)
	})
}

func TestMat3_Inverse(t *testing.T) {
	m := gm.AxisAngleMat3(gm.Vec3Of(1.0, 2.0, 3.0).Normalized(), gm.DegOf(40.0)).
		Mul(gm.Mat3FromRows(
			gm.Vec3Of(2.0, 0.0, 0.5),
			gm.Vec3Of(0.0, 3.0, 0.0),
			gm.Vec3Of(1.0, 0.0, 1.0),
		))

	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.ApproxEqual(t, gm.IdentityMat3[float64](), m.Mul(inv), tol64)
	assert.ApproxEqual(t, gm.IdentityMat3[float64](), inv.Mul(m), tol64)

	_, err = gm.Mat3FromRows(gm.UnitX[float64](), gm.UnitX[float64](), gm.UnitZ[float64]()).Inverse()
	require.ErrorIs(t, err, gm.ErrNotInvertible)
}

func TestMat3_AxisAngle(t *testing.T) {
	axis := gm.Vec3Of(1.0, 1.0, 1.0).Normalized()

	// a third of a turn around the diagonal cycles the axes
	m := gm.AxisAngleMat3(axis, gm.DegOf(120.0))
	assert.ApproxEqual(t, gm.UnitY[float64](), m.MulVec(gm.UnitX[float64]()), tol64)
	assert.ApproxEqual(t, gm.UnitZ[float64](), m.MulVec(gm.UnitY[float64]()), tol64)

	assert.ApproxEqual(t, gm.RotationZMat3(gm.DegOf(33.0)), gm.AxisAngleMat3(gm.UnitZ[float64](), gm.DegOf(33.0)), tol64)
	assert.ApproxEqual(t, gm.RotationXMat3(gm.DegOf(33.0)), gm.AxisAngleMat3(gm.UnitX[float64](), gm.DegOf(33.0)), tol64)
	assert.ApproxEqual(t, gm.RotationYMat3(gm.DegOf(33.0)), gm.AxisAngleMat3(gm.UnitY[float64](), gm.DegOf(33.0)), tol64)
}

func TestMat3_Homogeneous(t *testing.T) {
	m := gm.TranslationMat3(gm.Vec2Of(3.0, 4.0)).
		Concat(gm.Mat3FromMat2(gm.RotationMat2(gm.DegOf(90.0))))

	assert.ApproxEqual(t, gm.Vec2Of(3.0, 5.0), m.TransformPoint(gm.Vec2Of(1.0, 0.0)), tol64)
	assert.ApproxEqual(t, gm.Vec2Of(0.0, 1.0), m.TransformVector(gm.Vec2Of(1.0, 0.0)), tol64)

	p, err := gm.InverseTransformPoint(m, gm.Vec2Of(3.0, 5.0))
	require.NoError(t, err)
	assert.ApproxEqual(t, gm.Vec2Of(1.0, 0.0), p, tol64)
}

func TestMat4_Inverse(t *testing.T) {
	m := gm.TranslationMat4(gm.Vec3Of(1.0, -2.0, 3.0)).
		Mul(gm.Mat4FromMat3(gm.AxisAngleMat3(gm.Vec3Of(0.0, 0.6, 0.8), gm.DegOf(70.0)))).
		Mul(gm.ScaleMat4(gm.Vec3Of(2.0, 0.5, 4.0)))

	// add some projective component, the inverse is defined for all regular matrices
	m[3][0] = 0.25

	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.ApproxEqual(t, gm.IdentityMat4[float64](), m.Mul(inv), tol64)
	assert.ApproxEqual(t, gm.IdentityMat4[float64](), inv.Mul(m), tol64)
}

func TestMat4_InverseSingular(t *testing.T) {
	m := gm.ScaleMat4(gm.Vec3Of(1.0, 0.0, 1.0))

	_, err := m.Inverse()
	require.True(t, errors.Is(err, gm.ErrNotInvertible))
}

func TestMat4_Determinant(t *testing.T) {
	m := gm.ScaleMat4(gm.Vec3Of(2.0, 3.0, 4.0)).Mul(gm.TranslationMat4(gm.Vec3Of(5.0, 6.0, 7.0)))
	require.InDelta(t, 24, m.Determinant(), 1e-12)
	require.InDelta(t, 24, m.Transpose().Determinant(), 1e-12)
}

func TestMat4_Transform(t *testing.T) {
	m := gm.TranslationMat4(gm.Vec3Of(1.0, 2.0, 3.0)).Mul(gm.ScaleMat4(gm.Vec3Splat(2.0)))

	require.Equal(t, gm.Vec3Of(3.0, 4.0, 5.0), m.TransformPoint(gm.Vec3Of(1.0, 1.0, 1.0)))
	require.Equal(t, gm.Vec3Of(2.0, 2.0, 2.0), m.TransformVector(gm.Vec3Of(1.0, 1.0, 1.0)))

	// points are divided by w
	m[3] = [4]float64{0, 0, 0, 2}
	require.Equal(t, gm.Vec3Of(1.5, 2.0, 2.5), m.TransformPoint(gm.Vec3Of(1.0, 1.0, 1.0)))
}
