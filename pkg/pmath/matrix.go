package pmath

// Mat3 is a row-major 3x3 matrix, the linear-algebra form of a Quaternion
// rotation (Quaternion.ToMat3), used by AABB.Transform to bound a rotated
// box.
type Mat3 [3]Vec3

// MultiplyVec returns m*v.
func (m Mat3) MultiplyVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0].X*v.X + m[0].Y*v.Y + m[0].Z*v.Z,
		Y: m[1].X*v.X + m[1].Y*v.Y + m[1].Z*v.Z,
		Z: m[2].X*v.X + m[2].Y*v.Y + m[2].Z*v.Z,
	}
}

// Transpose returns the transpose of m.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		{m[0].X, m[1].X, m[2].X},
		{m[0].Y, m[1].Y, m[2].Y},
		{m[0].Z, m[1].Z, m[2].Z},
	}
}

// AbsRowSum returns, for each row, the sum of the absolute values of its
// components: the rotated half-extent of a unit-half-extent box.
// AABB.Transform computes the extent-weighted form of these sums inline.
func (m Mat3) AbsRowSum() Vec3 {
	abs := func(f Float) Float {
		if f < 0 {
			return -f
		}
		return f
	}
	return Vec3{
		X: abs(m[0].X) + abs(m[0].Y) + abs(m[0].Z),
		Y: abs(m[1].X) + abs(m[1].Y) + abs(m[1].Z),
		Z: abs(m[2].X) + abs(m[2].Y) + abs(m[2].Z),
	}
}
