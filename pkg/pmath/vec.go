// Package pmath provides the vector, quaternion, matrix, and RNG
// primitives shared by every other package in the renderer.
package pmath

import (
	"fmt"
	"math"
)

// Float is the scalar width used throughout the renderer.
type Float = float64

// Vec2 is a 2D vector, used for texture coordinates.
type Vec2 struct {
	X, Y Float
}

// NewVec2 creates a new Vec2.
func NewVec2(x, y Float) Vec2 { return Vec2{X: x, Y: y} }

// Add returns the sum of two Vec2 values.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Subtract returns the difference of two Vec2 values.
func (v Vec2) Subtract(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Multiply returns the Vec2 scaled by a scalar.
func (v Vec2) Multiply(s Float) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Vec3 is a 3D vector; also used to represent an RGB color.
type Vec3 struct {
	X, Y, Z Float
}

// NewVec3 creates a new Vec3.
func NewVec3(x, y, z Float) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// Color is an alias for Vec3 used where the value represents linear RGB.
type Color = Vec3

func (v Vec3) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Subtract returns the difference of two vectors.
func (v Vec3) Subtract(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Multiply returns the vector scaled by a scalar.
func (v Vec3) Multiply(s Float) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// MultiplyVec returns the component-wise product of two vectors.
func (v Vec3) MultiplyVec(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Divide returns the vector divided by a scalar.
func (v Vec3) Divide(s Float) Vec3 { return v.Multiply(1 / s) }

// Negate returns the additive inverse of the vector.
func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) Float { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// AbsDot returns the absolute value of the dot product of two vectors.
func (v Vec3) AbsDot(o Vec3) Float { return math.Abs(v.Dot(o)) }

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the magnitude of the vector.
func (v Vec3) Length() Float { return math.Sqrt(v.LengthSquared()) }

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3) LengthSquared() Float { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Normalize returns a unit vector in the same direction, or the zero
// vector if v has zero length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Multiply(1 / l)
}

// IsZero reports whether every component is exactly zero.
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// NearZero reports whether the vector is close to zero in all dimensions,
// used to detect degenerate scatter/reflection directions.
func (v Vec3) NearZero() bool {
	const eps = 1e-8
	return math.Abs(v.X) < eps && math.Abs(v.Y) < eps && math.Abs(v.Z) < eps
}

// Clamp returns a vector with each component clamped to [lo, hi].
func (v Vec3) Clamp(lo, hi Float) Vec3 {
	return Vec3{
		X: clampFloat(v.X, lo, hi),
		Y: clampFloat(v.Y, lo, hi),
		Z: clampFloat(v.Z, lo, hi),
	}
}

func clampFloat(x, lo, hi Float) Float {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func sanitizeFloat(x Float) Float {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// Luminance returns the perceptual luminance of an RGB color using the
// Rec. 709 (sRGB) weighting.
func (v Vec3) Luminance() Float { return 0.2126*v.X + 0.7152*v.Y + 0.0722*v.Z }

// HasNaN reports whether any component is NaN or Inf.
func (v Vec3) HasNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) ||
		math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// Sanitize replaces each NaN/Inf component with zero, per the integrator's
// radiance-sanitation contract (spec §4.7/§7.3).
func (v Vec3) Sanitize() Vec3 {
	if v.HasNaN() {
		return Vec3{X: sanitizeFloat(v.X), Y: sanitizeFloat(v.Y), Z: sanitizeFloat(v.Z)}
	}
	return v
}

// Lerp linearly interpolates between two vectors.
func Lerp(a, b Vec3, t Float) Vec3 {
	return a.Multiply(1 - t).Add(b.Multiply(t))
}

// Min returns the component-wise minimum of two vectors.
func Min(a, b Vec3) Vec3 {
	return Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)}
}

// Max returns the component-wise maximum of two vectors.
func Max(a, b Vec3) Vec3 {
	return Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)}
}

// Reflect returns the reflection of v about a surface with normal n.
// n is assumed to be a unit vector.
func Reflect(v, n Vec3) Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract returns the refraction of unit vector uv through a surface with
// unit normal n, given the ratio of indices of refraction etaiOverEtat.
func Refract(uv, n Vec3, etaiOverEtat Float) Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Schlick computes the Fresnel reflectance approximation of Schlick for a
// dielectric boundary with the given cosine of the incident angle and
// ratio of refractive indices.
func Schlick(cosine, refractionRatio Float) Float {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
