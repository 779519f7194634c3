package hittable

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
	"github.com/df07/go-pathtrace/pkg/texture"
)

// ConstantMedium is a homogeneous participating medium bounded by an
// arbitrary Hittable (spec §4.1). A ray entering the boundary scatters
// at a randomly sampled distance governed by the medium's density,
// falling back to a pure pass-through when the sampled distance exceeds
// the boundary's interior span.
type ConstantMedium struct {
	Boundary      Hittable
	NegInvDensity pmath.Float
	PhaseFunction material.Material
}

// NewConstantMedium creates a ConstantMedium with the given boundary,
// density, and a solid-color phase function albedo.
func NewConstantMedium(boundary Hittable, density pmath.Float, albedo pmath.Color) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1 / density,
		PhaseFunction: material.NewIsotropicColor(albedo),
	}
}

// NewConstantMediumTexture creates a ConstantMedium with a textured
// phase function albedo.
func NewConstantMediumTexture(boundary Hittable, density pmath.Float, albedo texture.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// HitMaterial implements materialHolder.
func (c *ConstantMedium) HitMaterial() material.Material { return c.PhaseFunction }

// Hit implements Hittable: find the two boundary crossings, then sample
// an exponentially distributed distance inside them (spec §4.1).
func (c *ConstantMedium) Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool) {
	rec1, ok1 := c.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), rng)
	if !ok1 {
		return material.HitRecord{}, false
	}
	rec2, ok2 := c.Boundary.Hit(ray, rec1.T+0.0001, math.Inf(1), rng)
	if !ok2 {
		return material.HitRecord{}, false
	}

	if rec1.T < tMin {
		rec1.T = tMin
	}
	if rec2.T > tMax {
		rec2.T = tMax
	}
	if rec1.T >= rec2.T {
		return material.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := c.NegInvDensity * math.Log(pmath.RandomFloat(rng))
	if hitDistance > distanceInsideBoundary {
		return material.HitRecord{}, false
	}

	var hit material.HitRecord
	hit.T = rec1.T + hitDistance/rayLength
	hit.P = ray.At(hit.T)
	hit.Normal = pmath.NewVec3(1, 0, 0)
	hit.FrontFace = true
	hit.Material = c.PhaseFunction
	return hit, true
}

// BoundingBox implements Hittable.
func (c *ConstantMedium) BoundingBox() pmath.AABB { return c.Boundary.BoundingBox() }

// PDFValue implements Hittable with the base-case zero density; a
// ConstantMedium is never itself used as a direct-light sampling target.
func (c *ConstantMedium) PDFValue(origin, wi pmath.Vec3) pmath.Float { return 0 }

// SampleDirection implements Hittable with an arbitrary placeholder
// direction, for the same reason as PDFValue.
func (c *ConstantMedium) SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3 {
	return pmath.NewVec3(1, 0, 0)
}
