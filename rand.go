package gm

import (
	"math"
	"math/rand/v2"
)

// RandomIn returns a random value uniformly sampled from the given range, excluding max.
func RandomIn[S Float](min, max S) S {
	return S(rand.Float64()*(float64(max)-float64(min))) + min
}

// RandomAngle returns a random angle uniformly sampled from the full circle
func RandomAngle[S Float]() Rad[S] {
	return RadOf(RandomIn[S](0, 2*math.Pi))
}

// RandomVec2 returns a vector uniformly sampled from within the unit circle.
func RandomVec2[S Float]() Vec2[S] {
	for {
		v := Vec2[S]{
			X: RandomIn[S](-1, 1),
			Y: RandomIn[S](-1, 1),
		}

		if v.LengthSqr() <= 1 {
			return v
		}
	}
}

// RandomUnitVec3 returns a vector uniformly sampled from the surface of the unit sphere.
func RandomUnitVec3[S Float]() Vec3[S] {
	for {
		v := Vec3[S]{
			X: RandomIn[S](-1, 1),
			Y: RandomIn[S](-1, 1),
			Z: RandomIn[S](-1, 1),
		}

		// reject points outside of the ball and too close to the center
		lengthSqr := v.LengthSqr()
		if lengthSqr <= 1 && lengthSqr > 1e-6 {
			return v.Normalized()
		}
	}
}

// RandomQuat returns a unit quaternion uniformly sampled from all rotations.
func RandomQuat[S Float]() Quat[S] {
	u1 := rand.Float64()
	s1, c1 := math.Sincos(2 * math.Pi * rand.Float64())
	s2, c2 := math.Sincos(2 * math.Pi * rand.Float64())

	a := math.Sqrt(1 - u1)
	b := math.Sqrt(u1)

	return QuatOf(S(b*c2), S(a*s1), S(a*c1), S(b*s2))
}

// RandomDecomposed3 returns a transform with a random rotation, a scale from
// within [minScale, maxScale) and a displacement from within the cube of
// the given half extent.
func RandomDecomposed3[S Float](minScale, maxScale, extent S) Decomposed3[S, Quat[S]] {
	return Decomposed3[S, Quat[S]]{
		Scale: RandomIn(minScale, maxScale),
		Rot:   RandomQuat[S](),
		Disp: Vec3[S]{
			X: RandomIn(-extent, extent),
			Y: RandomIn(-extent, extent),
			Z: RandomIn(-extent, extent),
		},
	}
}
