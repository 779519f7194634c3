// Package pdf implements the sampling distributions the integrator uses
// for multiple importance sampling (spec §4.5/§4.7): cosine-weighted
// hemisphere sampling, uniform-sphere sampling, light-directed sampling
// via an arbitrary hittable primitive, and the fixed 50/50 mixture that
// combines a material's own PDF with a light's.
package pdf

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// DirectionSampler is the minimal capability a primitive exposes to be
// used as a light-sampling target (spec §4.3: Sphere/Mesh/HittableList
// all implement this). Defined here, not in pkg/hittable, so HittablePDF
// can wrap any primitive without pkg/pdf importing pkg/hittable back.
type DirectionSampler interface {
	// PDFValue returns the solid-angle density of sampling direction
	// wi from origin toward this primitive.
	PDFValue(origin, wi pmath.Vec3) pmath.Float

	// SampleDirection returns a direction from origin toward a random
	// point on this primitive.
	SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3
}

// CosinePDF is a cosine-weighted hemisphere distribution about a hit's
// surface normal (spec §4.5).
type CosinePDF struct{}

// Value implements material.PDF.
func (CosinePDF) Value(hit material.HitRecord, wi pmath.Vec3) pmath.Float {
	cosine := wi.Normalize().Dot(hit.Normal)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Sample implements material.PDF.
func (c CosinePDF) Sample(hit material.HitRecord, rng *pmath.RNG) (pmath.Vec3, pmath.Float) {
	wo := pmath.RandomCosineDirectionAround(hit.Normal, rng)
	return wo, c.Value(hit, wo)
}

// UniformSpherePDF samples directions uniformly over the full sphere,
// used by Isotropic's volumetric scatter (spec §4.4/§4.5).
type UniformSpherePDF struct{}

// Value implements material.PDF.
func (UniformSpherePDF) Value(hit material.HitRecord, wi pmath.Vec3) pmath.Float {
	return 1.0 / (4.0 * math.Pi)
}

// Sample implements material.PDF.
func (u UniformSpherePDF) Sample(hit material.HitRecord, rng *pmath.RNG) (pmath.Vec3, pmath.Float) {
	wo := pmath.RandomUniformSphereDirection(rng)
	return wo, u.Value(hit, wo)
}

// HittablePDF directs samples toward a primitive (typically a light),
// so paths are more likely to find small or distant emitters (spec
// §4.5/§4.7). The same HittablePDF can be reused across many hits since
// both methods take the hit's point explicitly.
type HittablePDF struct {
	Target DirectionSampler
}

// NewHittablePDF wraps target for light-directed sampling.
func NewHittablePDF(target DirectionSampler) HittablePDF {
	return HittablePDF{Target: target}
}

// Value implements material.PDF.
func (h HittablePDF) Value(hit material.HitRecord, wi pmath.Vec3) pmath.Float {
	return h.Target.PDFValue(hit.P, wi)
}

// Sample implements material.PDF.
func (h HittablePDF) Sample(hit material.HitRecord, rng *pmath.RNG) (pmath.Vec3, pmath.Float) {
	wo := h.Target.SampleDirection(hit.P, rng)
	return wo, h.Value(hit, wo)
}

// MixturePDF combines two distributions with a fixed 50/50 weight (spec
// §4.5), typically the material's BSDF PDF and a HittablePDF aimed at
// the scene's lights.
type MixturePDF struct {
	P0, P1 material.PDF
}

// NewMixturePDF builds a 50/50 mixture of p0 and p1.
func NewMixturePDF(p0, p1 material.PDF) MixturePDF {
	return MixturePDF{P0: p0, P1: p1}
}

// Value implements material.PDF.
func (m MixturePDF) Value(hit material.HitRecord, wi pmath.Vec3) pmath.Float {
	return 0.5*m.P0.Value(hit, wi) + 0.5*m.P1.Value(hit, wi)
}

// Sample implements material.PDF.
func (m MixturePDF) Sample(hit material.HitRecord, rng *pmath.RNG) (pmath.Vec3, pmath.Float) {
	var wo pmath.Vec3
	if pmath.RandomFloat(rng) < 0.5 {
		wo, _ = m.P0.Sample(hit, rng)
	} else {
		wo, _ = m.P1.Sample(hit, rng)
	}
	return wo, m.Value(hit, wo)
}
