package pmath

import (
	"math"
	"math/rand"
)

// RNG is the sampling source threaded through the renderer. Every worker
// goroutine owns its own *rand.Rand (see pkg/dispatcher), so callers must
// not share one RNG across goroutines without external synchronization
// (spec §5).
type RNG = rand.Rand

// NewRNG creates a new RNG seeded deterministically from seed.
func NewRNG(seed int64) *RNG {
	return rand.New(rand.NewSource(seed))
}

// RandomFloat returns a uniform sample in [0, 1).
func RandomFloat(rng *RNG) Float { return rng.Float64() }

// RandomFloatRange returns a uniform sample in [min, max).
func RandomFloatRange(rng *RNG, min, max Float) Float {
	return min + (max-min)*rng.Float64()
}

// RandomInUnitSphere returns a uniformly distributed point inside the
// unit sphere via rejection sampling.
func RandomInUnitSphere(rng *RNG) Vec3 {
	for {
		p := Vec3{
			X: RandomFloatRange(rng, -1, 1),
			Y: RandomFloatRange(rng, -1, 1),
			Z: RandomFloatRange(rng, -1, 1),
		}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomInUnitDisk returns a uniformly distributed point inside the unit
// disk in the XY plane, used for thin-lens aperture sampling.
func RandomInUnitDisk(rng *RNG) Vec3 {
	for {
		p := Vec3{X: RandomFloatRange(rng, -1, 1), Y: RandomFloatRange(rng, -1, 1)}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniformly distributed unit vector.
func RandomUnitVector(rng *RNG) Vec3 {
	return RandomInUnitSphere(rng).Normalize()
}

// ONB is an orthonormal basis built from a single vector, per spec §4.5.
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis with W aligned to w.
func NewONB(w Vec3) ONB {
	unitW := w.Normalize()
	a := Vec3{X: 1, Y: 0, Z: 0}
	if math.Abs(unitW.X) > 0.9 {
		a = Vec3{X: 0, Y: 1, Z: 0}
	}
	v := unitW.Cross(a).Normalize()
	u := unitW.Cross(v)
	return ONB{U: u, V: v, W: unitW}
}

// Local transforms a vector given in the basis's local coordinates into
// world space.
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}

// RandomCosineDirection returns a cosine-weighted random direction in the
// local +Z hemisphere (spec §4.5).
func RandomCosineDirection(rng *RNG) Vec3 {
	r1 := RandomFloat(rng)
	r2 := RandomFloat(rng)
	z := math.Sqrt(1 - r2)
	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(r2)
	y := math.Sin(phi) * math.Sqrt(r2)
	return Vec3{X: x, Y: y, Z: z}
}

// RandomCosineDirectionAround returns a cosine-weighted direction about
// the hemisphere of the given normal.
func RandomCosineDirectionAround(normal Vec3, rng *RNG) Vec3 {
	return NewONB(normal).Local(RandomCosineDirection(rng))
}

// RandomUniformSphereDirection returns a uniformly distributed direction
// over the full sphere (spec §4.5).
func RandomUniformSphereDirection(rng *RNG) Vec3 {
	r1 := RandomFloat(rng)
	r2 := RandomFloat(rng)
	t := 2 * math.Sqrt(r2*(1-r2))
	x := math.Cos(2*math.Pi*r1) * t
	y := math.Sin(2*math.Pi*r1) * t
	z := 1 - 2*r2
	return Vec3{X: x, Y: y, Z: z}
}

// RandomToSphere samples a direction toward a sphere of the given radius
// at the given squared distance, uniformly over the subtended solid
// angle (spec §4.3 Sphere.sample).
func RandomToSphere(radius, distanceSquared Float, rng *RNG) Vec3 {
	r1 := RandomFloat(rng)
	r2 := RandomFloat(rng)
	z := 1 + r2*(math.Sqrt(1-radius*radius/distanceSquared)-1)
	phi := 2 * math.Pi * r1
	x := math.Cos(phi) * math.Sqrt(1-z*z)
	y := math.Sin(phi) * math.Sqrt(1-z*z)
	return Vec3{X: x, Y: y, Z: z}
}
