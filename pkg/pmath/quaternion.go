package pmath

import "math"

// Quaternion represents a rotation in 3-space, used by Box's rigid-transform
// form (spec §4.3) to orient a box without six separate AARects.
type Quaternion struct {
	X, Y, Z, W Float
}

// Identity is the identity rotation.
var Identity = Quaternion{W: 1}

// NewQuaternionFromAxisAngle builds a rotation of angle radians about axis.
func NewQuaternionFromAxisAngle(axis Vec3, angle Float) Quaternion {
	axis = axis.Normalize()
	s := math.Sin(angle / 2)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: math.Cos(angle / 2),
	}
}

// Multiply returns the composition q*o (apply o first, then q).
func (q Quaternion) Multiply(o Quaternion) Quaternion {
	return Quaternion{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Conjugate returns the conjugate quaternion.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// LengthSquared returns the squared norm of the quaternion.
func (q Quaternion) LengthSquared() Float {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

// Inverse returns the multiplicative inverse; for a unit quaternion this
// equals the conjugate.
func (q Quaternion) Inverse() Quaternion {
	lenSq := q.LengthSquared()
	if lenSq == 0 {
		return Identity
	}
	c := q.Conjugate()
	inv := 1 / lenSq
	return Quaternion{X: c.X * inv, Y: c.Y * inv, Z: c.Z * inv, W: c.W * inv}
}

// Normalize returns a unit quaternion in the same orientation.
func (q Quaternion) Normalize() Quaternion {
	l := math.Sqrt(q.LengthSquared())
	if l == 0 {
		return Identity
	}
	return Quaternion{X: q.X / l, Y: q.Y / l, Z: q.Z / l, W: q.W / l}
}

// RotateVector rotates v by this quaternion (assumed to be unit length).
func (q Quaternion) RotateVector(v Vec3) Vec3 {
	qv := Quaternion{X: v.X, Y: v.Y, Z: v.Z, W: 0}
	r := q.Multiply(qv).Multiply(q.Conjugate())
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}

// ToMat3 converts the quaternion to its equivalent 3x3 rotation matrix.
func (q Quaternion) ToMat3() Mat3 {
	q = q.Normalize()
	x, y, z, w := q.X, q.Y, q.Z, q.W
	return Mat3{
		{1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w)},
		{2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w)},
		{2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y)},
	}
}
