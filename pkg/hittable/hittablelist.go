package hittable

import (
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// HittableList is an unordered collection of primitives (spec §4.2). Its
// Hit delegates to an internal BVH built by Build; PDFValue/Sample treat
// the whole list as a single light by averaging/choosing uniformly
// among its members.
type HittableList struct {
	Objects []Hittable
	box     pmath.AABB
	hasBox  bool
	root    *BvhNode
}

// NewHittableList creates an empty list.
func NewHittableList() *HittableList { return &HittableList{} }

// Add appends an object and extends the list's bounding box.
func (l *HittableList) Add(obj Hittable) {
	l.Objects = append(l.Objects, obj)
	if !l.hasBox {
		l.box = obj.BoundingBox()
		l.hasBox = true
	} else {
		l.box = l.box.Union(obj.BoundingBox())
	}
}

// Len reports the number of objects in the list.
func (l *HittableList) Len() int { return len(l.Objects) }

// Build constructs the internal BVH over the list's current objects
// (spec §4.2). Must be called before Hit once the scene is assembled.
func (l *HittableList) Build(rng *pmath.RNG) {
	if len(l.Objects) == 0 {
		return
	}
	l.root = NewBvhNode(l.Objects, rng)
}

// Hit implements Hittable, delegating to the built BVH.
func (l *HittableList) Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool) {
	if l.root == nil {
		return material.HitRecord{}, false
	}
	return l.root.Hit(ray, tMin, tMax, rng)
}

// BoundingBox implements Hittable.
func (l *HittableList) BoundingBox() pmath.AABB { return l.box }

// PDFValue implements Hittable: the uniform average of every member's
// PDFValue (spec §4.5), matching the HittableList-as-light contract
// used by the integrator's direct-light sampling.
func (l *HittableList) PDFValue(origin, wi pmath.Vec3) pmath.Float {
	if len(l.Objects) == 0 {
		return 0
	}
	weight := 1.0 / pmath.Float(len(l.Objects))
	var sum pmath.Float
	for _, obj := range l.Objects {
		sum += obj.PDFValue(origin, wi)
	}
	return sum * weight
}

// SampleDirection implements Hittable: picks one member uniformly at
// random and samples a direction toward it.
func (l *HittableList) SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3 {
	if len(l.Objects) == 0 {
		return pmath.NewVec3(1, 0, 0)
	}
	idx := rng.Intn(len(l.Objects))
	return l.Objects[idx].SampleDirection(origin, rng)
}

// FetchLights implements lightFetcher.
func (l *HittableList) FetchLights(lights *[]Hittable) {
	for _, obj := range l.Objects {
		fetchLightsInto(obj, lights)
	}
}
