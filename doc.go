// Package gm (stands for geometry math) provides generic computer graphics math.
//
// All types are generic over the scalar type, see Float. There are vectors
// (Vec2, Vec3, Vec4), matrices (Mat2, Mat3, Mat4), quaternions (Quat) and
// orthonormal bases (Basis2, Basis3) to represent rotations.
//
// Angles are either of type Rad or of type Deg. Both types can not be mixed
// without an explicit conversion, and trigonometric functions are only
// available on Rad.
//
// Affine transforms implement the Transform interface: Decomposed stores
// uniform scale, rotation and displacement separately and works with any
// Rotation, Affine2 is a general two dimensional transform and Mat3 and
// Mat4 are homogeneous matrices. LookAt builds a view transform.
//
// All types are immutable values. Operations return new values and are
// safe for concurrent use.
package gm
