package gmconv_test

import (
	"testing"

	"github.com/oliverbestmann/gm"
	"github.com/oliverbestmann/gm/gmconv"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

func TestF32_Mat(t *testing.T) {
	m3 := gm.Mat3FromRows(
		gm.Vec3Of[float32](1, 2, 3),
		gm.Vec3Of[float32](4, 5, 6),
		gm.Vec3Of[float32](7, 8, 9),
	)

	require.Equal(t, f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, gmconv.F32Mat3(m3))
	require.Equal(t, m3, gmconv.Mat3FromF32(gmconv.F32Mat3(m3)))

	m4 := gm.TranslationMat4(gm.Vec3Of[float32](1, 2, 3))
	require.Equal(t, f32.Mat4{1, 0, 0, 1, 0, 1, 0, 2, 0, 0, 1, 3, 0, 0, 0, 1}, gmconv.F32Mat4(m4))
	require.Equal(t, m4, gmconv.Mat4FromF32(gmconv.F32Mat4(m4)))
}

func TestF32_Aff3(t *testing.T) {
	affine := gm.IdentityAffine[float32]().
		Translate(gm.Vec2Of[float32](10, 20)).
		Scale(gm.Vec2Of[float32](2, 4))

	require.Equal(t, f32.Aff3{2, 0, 10, 0, 4, 20}, gmconv.F32Aff3(affine))
	require.Equal(t, affine, gmconv.Affine2FromF32Aff3(gmconv.F32Aff3(affine)))
}

func TestF32_Vec(t *testing.T) {
	require.Equal(t, f32.Vec2{1, 2}, gmconv.F32Vec2(gm.Vec2Of[float32](1, 2)))
	require.Equal(t, gm.Vec3Of[float32](1, 2, 3), gmconv.Vec3FromF32(gmconv.F32Vec3(gm.Vec3Of[float32](1, 2, 3))))
	require.Equal(t, gm.Vec4Of[float32](1, 2, 3, 4), gmconv.Vec4FromF32(gmconv.F32Vec4(gm.Vec4Of[float32](1, 2, 3, 4))))
}
