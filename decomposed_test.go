package gm_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/oliverbestmann/gm"
	"github.com/oliverbestmann/gm/internal/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type decomposedQuat = gm.Decomposed3[float64, gm.Quat[float64]]
type decomposedBasis = gm.Decomposed3[float64, gm.Basis3[float64]]

func sampleTransform() decomposedQuat {
	return decomposedQuat{
		Scale: 1.5,
		Rot:   gm.QuatOf(0.5, 0.5, 0.5, 0.5),
		Disp:  gm.Vec3Of(6.0, -7.0, 8.0),
	}
}

func TestDecomposed_Inverse(t *testing.T) {
	v := gm.Vec3Of(1.0, 2.0, 3.0)
	tr := sampleTransform()

	ti, err := tr.Inverse()
	require.NoError(t, err)

	vt := tr.TransformVector(v)
	assert.UlpsEqual[float64](t, v, ti.TransformVector(vt))

	pt := tr.TransformPoint(v)
	assert.ApproxEqual(t, v, ti.TransformPoint(pt), tol64)
}

func TestDecomposed_InverseRandom(t *testing.T) {
	for range 1000 {
		tr := gm.RandomDecomposed3[float64](0.1, 10, 100)

		ti, err := tr.Inverse()
		require.NoError(t, err)

		p := gm.RandomUnitVec3[float64]().Mul(50)
		assert.ApproxEqual(t, p, ti.TransformPoint(tr.TransformPoint(p)), gm.Tolerance{Epsilon: 1e-8})
		assert.ApproxEqual(t, p, tr.TransformPoint(ti.TransformPoint(p)), gm.Tolerance{Epsilon: 1e-8})

		assert.ApproxEqual(t, gm.IdentityDecomposed[float64, gm.Vec3[float64], gm.Quat[float64]](), tr.Concat(ti), tol64)
	}
}

func TestDecomposed_InverseZeroScale(t *testing.T) {
	tr := sampleTransform()
	tr.Scale = 0

	_, err := tr.Inverse()
	require.ErrorIs(t, err, gm.ErrNotInvertible)

	tr.Scale = 1e-17
	_, err = tr.Inverse()
	require.ErrorIs(t, err, gm.ErrNotInvertible)

	tr.Scale = math.Inf(1)
	_, err = tr.Inverse()
	require.ErrorIs(t, err, gm.ErrNotInvertible)

	_, err = gm.InverseTransformVector(decomposedBasis{}, gm.UnitX[float64]())
	require.ErrorIs(t, err, gm.ErrNotInvertible)
}

func TestDecomposed_Transform(t *testing.T) {
	tr := decomposedBasis{
		Scale: 2,
		Rot:   gm.Basis3FromAngleZ(gm.DegOf(90.0)),
		Disp:  gm.Vec3Of(1.0, 2.0, 3.0),
	}

	// rotate, then scale, then translate
	assert.ApproxEqual(t, gm.Vec3Of(1.0, 4.0, 3.0), tr.TransformPoint(gm.UnitX[float64]()), tol64)

	// vectors are not translated
	assert.ApproxEqual(t, gm.Vec3Of(0.0, 2.0, 0.0), tr.TransformVector(gm.UnitX[float64]()), tol64)
}

func TestDecomposed_Concat(t *testing.T) {
	a := sampleTransform()
	b := decomposedQuat{
		Scale: 0.5,
		Rot:   gm.QuatFromAngleY(gm.DegOf(45.0)),
		Disp:  gm.Vec3Of(-1.0, 0.0, 2.0),
	}

	p := gm.Vec3Of(3.0, -2.0, 1.0)

	// b is applied first
	assert.ApproxEqual(t, a.TransformPoint(b.TransformPoint(p)), a.Concat(b).TransformPoint(p), tol64)
	assert.ApproxEqual(t, a.TransformVector(b.TransformVector(p)), a.Concat(b).TransformVector(p), tol64)

	// composition is not commutative
	assert.NotApproxEqual(t, a.Concat(b).TransformPoint(p), b.Concat(a).TransformPoint(p), tol64)

	// the operands are not modified
	require.Equal(t, sampleTransform(), a)

	// chain reads like a matrix product
	assert.ApproxEqual(t, a.Concat(b).Concat(a), gm.Chain(a, b, a), tol64)
}

func TestDecomposed_Identity(t *testing.T) {
	identity := gm.IdentityDecomposed[float64, gm.Vec3[float64], gm.Quat[float64]]()
	tr := sampleTransform()

	assert.UlpsEqual[float64](t, tr, tr.Concat(identity))
	assert.UlpsEqual[float64](t, tr, identity.Concat(tr))

	p := gm.Vec3Of(1.0, 2.0, 3.0)
	require.Equal(t, p, identity.TransformPoint(p))

	identity2 := gm.IdentityDecomposed[float32, gm.Vec2[float32], gm.Basis2[float32]]()
	require.Equal(t, gm.Vec2Of[float32](1, 2), identity2.TransformPoint(gm.Vec2Of[float32](1, 2)))
}

func TestDecomposed_Mat4(t *testing.T) {
	tr := sampleTransform()
	m := gm.Mat4FromDecomposed(tr)

	p := gm.Vec3Of(-3.0, 0.5, 2.0)
	assert.ApproxEqual(t, tr.TransformPoint(p), m.TransformPoint(p), tol64)
	assert.ApproxEqual(t, tr.TransformVector(p), m.TransformVector(p), tol64)

	back, err := gm.DecomposedFromMat4[float64, gm.Quat[float64]](m)
	require.NoError(t, err)
	assert.ApproxEqual(t, tr, back, tol64)

	// inverting commutes with the matrix conversion
	ti, err := tr.Inverse()
	require.NoError(t, err)

	mi, err := m.Inverse()
	require.NoError(t, err)

	assert.ApproxEqual(t, gm.Mat4FromDecomposed(ti), mi, tol64)
}

func TestDecomposed_FromMat4Lossy(t *testing.T) {
	t.Run("mirror", func(t *testing.T) {
		m := gm.ScaleMat4(gm.Vec3Splat(-2.0))

		tr, err := gm.DecomposedFromMat4[float64, gm.Basis3[float64]](m)
		require.NoError(t, err)
		require.InDelta(t, -2, tr.Scale, 1e-12)
		assert.ApproxEqual(t, gm.IdentityBasis3[float64](), tr.Rot, tol64)
	})

	t.Run("non uniform", func(t *testing.T) {
		m := gm.ScaleMat4(gm.Vec3Of(1.0, 2.0, 4.0))

		tr, err := gm.DecomposedFromMat4[float64, gm.Basis3[float64]](m)
		require.NoError(t, err)
		require.InDelta(t, 2, tr.Scale, 1e-12)
		assert.ApproxEqual(t, gm.IdentityBasis3[float64](), tr.Rot, tol64)
	})

	t.Run("projective", func(t *testing.T) {
		m := gm.IdentityMat4[float64]()
		m[3][2] = -1

		_, err := gm.DecomposedFromMat4[float64, gm.Quat[float64]](m)
		require.ErrorIs(t, err, gm.ErrNotAffine)
	})

	t.Run("singular", func(t *testing.T) {
		m := gm.ScaleMat4(gm.Vec3Of(1.0, 0.0, 1.0))

		_, err := gm.DecomposedFromMat4[float64, gm.Quat[float64]](m)
		require.ErrorIs(t, err, gm.ErrNotInvertible)
	})
}

func TestDecomposed2(t *testing.T) {
	tr := gm.Decomposed2FromRotation[float64, gm.Basis2[float64]](gm.DegOf(90.0), gm.Vec2Of(5.0, 0.0))
	tr.Scale = 3

	p := gm.Vec2Of(1.0, 1.0)
	assert.ApproxEqual(t, gm.Vec2Of(2.0, 3.0), tr.TransformPoint(p), tol64)

	m := gm.Mat3FromDecomposed2(tr)
	assert.ApproxEqual(t, tr.TransformPoint(p), m.TransformPoint(p), tol64)

	affine := gm.Affine2FromDecomposed(tr)
	assert.ApproxEqual(t, tr.TransformPoint(p), affine.TransformPoint(p), tol64)
	assert.ApproxEqual(t, tr.TransformVector(p), affine.TransformVector(p), tol64)

	ti, err := tr.Inverse()
	require.NoError(t, err)
	assert.ApproxEqual(t, p, ti.TransformPoint(tr.TransformPoint(p)), tol64)
}

func TestDecomposed_Serialize(t *testing.T) {
	tr := sampleTransform()

	t.Run("json", func(t *testing.T) {
		buf, err := json.Marshal(tr)
		require.NoError(t, err)

		var decoded decomposedQuat
		require.NoError(t, json.Unmarshal(buf, &decoded))
		assert.UlpsEqual[float64](t, tr, decoded)
	})

	t.Run("yaml", func(t *testing.T) {
		buf, err := yaml.Marshal(tr)
		require.NoError(t, err)

		var decoded decomposedQuat
		require.NoError(t, yaml.Unmarshal(buf, &decoded))
		assert.UlpsEqual[float64](t, tr, decoded)
	})

	t.Run("json basis", func(t *testing.T) {
		tb := decomposedBasis{
			Scale: 1.5,
			Rot:   gm.Basis3FromQuat(tr.Rot),
			Disp:  tr.Disp,
		}

		buf, err := json.Marshal(tb)
		require.NoError(t, err)

		var decoded decomposedBasis
		require.NoError(t, json.Unmarshal(buf, &decoded))
		assert.UlpsEqual[float64](t, tb, decoded)
	})
}
