package hittable

import (
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// FlipFace wraps a Hittable and inverts its hit normal and front-face
// flag, used to aim a one-sided light panel (spec §4.1/§8 scenario 4).
type FlipFace struct {
	Inner Hittable
}

// NewFlipFace wraps inner with an inverted face orientation.
func NewFlipFace(inner Hittable) *FlipFace { return &FlipFace{Inner: inner} }

// Hit implements Hittable.
func (f *FlipFace) Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool) {
	hit, ok := f.Inner.Hit(ray, tMin, tMax, rng)
	if !ok {
		return hit, false
	}
	hit.FrontFace = !hit.FrontFace
	hit.Normal = hit.Normal.Negate()
	return hit, true
}

// BoundingBox implements Hittable.
func (f *FlipFace) BoundingBox() pmath.AABB { return f.Inner.BoundingBox() }

// PDFValue implements Hittable by delegating to the wrapped primitive.
func (f *FlipFace) PDFValue(origin, wi pmath.Vec3) pmath.Float {
	return f.Inner.PDFValue(origin, wi)
}

// SampleDirection implements Hittable by delegating to the wrapped primitive.
func (f *FlipFace) SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3 {
	return f.Inner.SampleDirection(origin, rng)
}

// HitMaterial implements materialHolder by delegating to the wrapped
// primitive, so FetchLights sees through the wrapper.
func (f *FlipFace) HitMaterial() material.Material {
	if mh, ok := f.Inner.(materialHolder); ok {
		return mh.HitMaterial()
	}
	return nil
}
