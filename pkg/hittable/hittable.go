// Package hittable implements the scene's primitives (spec §4.1/§4.2/§4.3):
// Sphere, MovingSphere, axis-aligned rects, Box, Triangle, Mesh,
// ConstantMedium, FlipFace, HittableList, and the BvhNode acceleration
// structure, all built on the Hittable intersection contract.
package hittable

import (
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// Hittable is the ray intersection contract every primitive and
// composite satisfies (spec §4.1). Every Hittable also exposes
// PDFValue/SampleDirection so any of them can serve as a light-sampling
// target; primitives with no natural sampling distribution return a
// zero density and an arbitrary direction, matching the base-class
// defaults of the reference (spec §8's HittablePDF contract needs a
// target for any primitive the scene marks as a light).
//
// Hit takes the calling worker's RNG because ConstantMedium's
// free-flight sampling needs a random draw at intersection time; every
// other primitive ignores it.
type Hittable interface {
	Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool)
	BoundingBox() pmath.AABB
	PDFValue(origin, wi pmath.Vec3) pmath.Float
	SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3
}

// lightFetcher is implemented by composites that walk their children to
// collect emissive primitives (spec §4.2).
type lightFetcher interface {
	FetchLights(lights *[]Hittable)
}

// FetchLights walks h (and any composite children) collecting every
// primitive whose material reports IsLight, for the integrator's
// explicit light-sampling set (spec §4.2/§4.7).
func FetchLights(h Hittable) []Hittable {
	var lights []Hittable
	fetchLightsInto(h, &lights)
	return lights
}

func fetchLightsInto(h Hittable, lights *[]Hittable) {
	if composite, ok := h.(lightFetcher); ok {
		composite.FetchLights(lights)
		return
	}
	if mh, ok := h.(materialHolder); ok {
		if m := mh.HitMaterial(); m != nil && m.IsLight() {
			*lights = append(*lights, h)
		}
	}
}

// materialHolder is implemented by leaf primitives that carry a
// material, used by FetchLights to test IsLight without a type switch
// over every concrete primitive.
type materialHolder interface {
	HitMaterial() material.Material
}
