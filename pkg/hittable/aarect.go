package hittable

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// XYRect is a rectangle in the plane Z=K, spanning [X0,X1]x[Y0,Y1] (spec
// §4.1). The three axis-aligned rect variants are monomorphized structs
// rather than one generic type switching on axis, so the hot Hit path
// never branches on which axis is fixed.
type XYRect struct {
	X0, X1, Y0, Y1, K pmath.Float
	Material          material.Material
}

// NewXYRect creates an XYRect.
func NewXYRect(x0, x1, y0, y1, k pmath.Float, mat material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: mat}
}

// HitMaterial implements materialHolder.
func (r *XYRect) HitMaterial() material.Material { return r.Material }

// Hit implements Hittable.
func (r *XYRect) Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool) {
	t := (r.K - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return material.HitRecord{}, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	y := ray.Origin.Y + t*ray.Direction.Y
	if x < r.X0 || x > r.X1 || y < r.Y0 || y > r.Y1 {
		return material.HitRecord{}, false
	}
	var hit material.HitRecord
	hit.U = (x - r.X0) / (r.X1 - r.X0)
	hit.V = (y - r.Y0) / (r.Y1 - r.Y0)
	hit.T = t
	hit.SetFaceNormal(ray.Direction, pmath.NewVec3(0, 0, 1))
	hit.Material = r.Material
	hit.P = ray.At(t)
	return hit, true
}

// BoundingBox implements Hittable, inflated to a non-zero Z extent.
func (r *XYRect) BoundingBox() pmath.AABB {
	return pmath.NewAABB(
		pmath.NewVec3(r.X0, r.Y0, r.K),
		pmath.NewVec3(r.X1, r.Y1, r.K),
	).Inflate()
}

// PDFValue implements Hittable with the base-case zero density; an
// XYRect is never itself used as a direct-light sampling target.
func (r *XYRect) PDFValue(origin, wi pmath.Vec3) pmath.Float { return 0 }

// SampleDirection implements Hittable with an arbitrary placeholder
// direction, for the same reason as PDFValue.
func (r *XYRect) SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3 {
	return pmath.NewVec3(1, 0, 0)
}

// XZRect is a rectangle in the plane Y=K, spanning [X0,X1]x[Z0,Z1].
type XZRect struct {
	X0, X1, Z0, Z1, K pmath.Float
	Material          material.Material
}

// NewXZRect creates an XZRect.
func NewXZRect(x0, x1, z0, z1, k pmath.Float, mat material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// HitMaterial implements materialHolder.
func (r *XZRect) HitMaterial() material.Material { return r.Material }

// Hit implements Hittable.
func (r *XZRect) Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool) {
	t := (r.K - ray.Origin.Y) / ray.Direction.Y
	if t < tMin || t > tMax {
		return material.HitRecord{}, false
	}
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	if x < r.X0 || x > r.X1 || z < r.Z0 || z > r.Z1 {
		return material.HitRecord{}, false
	}
	var hit material.HitRecord
	hit.U = (x - r.X0) / (r.X1 - r.X0)
	hit.V = (z - r.Z0) / (r.Z1 - r.Z0)
	hit.T = t
	hit.SetFaceNormal(ray.Direction, pmath.NewVec3(0, 1, 0))
	hit.Material = r.Material
	hit.P = ray.At(t)
	return hit, true
}

// BoundingBox implements Hittable, inflated to a non-zero Y extent.
func (r *XZRect) BoundingBox() pmath.AABB {
	return pmath.NewAABB(
		pmath.NewVec3(r.X0, r.K, r.Z0),
		pmath.NewVec3(r.X1, r.K, r.Z1),
	).Inflate()
}

// PDFValue implements Hittable (spec §4.3), used for quad light
// panels sampled by direct-light MIS.
func (r *XZRect) PDFValue(origin, wi pmath.Vec3) pmath.Float {
	hit, ok := r.Hit(pmath.NewRay(origin, wi), 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}
	area := (r.X1 - r.X0) * (r.Z1 - r.Z0)
	distSq := hit.T * hit.T * wi.LengthSquared()
	cosine := math.Abs(wi.Normalize().Dot(hit.Normal))
	if cosine < 1e-8 {
		return 0
	}
	return distSq / (cosine * area)
}

// SampleDirection implements Hittable: a uniformly random point on the rect.
func (r *XZRect) SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3 {
	p := pmath.NewVec3(
		pmath.RandomFloatRange(rng, r.X0, r.X1),
		r.K,
		pmath.RandomFloatRange(rng, r.Z0, r.Z1),
	)
	return p.Subtract(origin).Normalize()
}

// YZRect is a rectangle in the plane X=K, spanning [Y0,Y1]x[Z0,Z1].
type YZRect struct {
	Y0, Y1, Z0, Z1, K pmath.Float
	Material          material.Material
}

// NewYZRect creates a YZRect.
func NewYZRect(y0, y1, z0, z1, k pmath.Float, mat material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: mat}
}

// HitMaterial implements materialHolder.
func (r *YZRect) HitMaterial() material.Material { return r.Material }

// Hit implements Hittable.
func (r *YZRect) Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool) {
	t := (r.K - ray.Origin.X) / ray.Direction.X
	if t < tMin || t > tMax {
		return material.HitRecord{}, false
	}
	y := ray.Origin.Y + t*ray.Direction.Y
	z := ray.Origin.Z + t*ray.Direction.Z
	if y < r.Y0 || y > r.Y1 || z < r.Z0 || z > r.Z1 {
		return material.HitRecord{}, false
	}
	var hit material.HitRecord
	hit.U = (y - r.Y0) / (r.Y1 - r.Y0)
	hit.V = (z - r.Z0) / (r.Z1 - r.Z0)
	hit.T = t
	hit.SetFaceNormal(ray.Direction, pmath.NewVec3(1, 0, 0))
	hit.Material = r.Material
	hit.P = ray.At(t)
	return hit, true
}

// BoundingBox implements Hittable, inflated to a non-zero X extent.
func (r *YZRect) BoundingBox() pmath.AABB {
	return pmath.NewAABB(
		pmath.NewVec3(r.K, r.Y0, r.Z0),
		pmath.NewVec3(r.K, r.Y1, r.Z1),
	).Inflate()
}

// PDFValue implements Hittable with the base-case zero density; a
// YZRect is never itself used as a direct-light sampling target.
func (r *YZRect) PDFValue(origin, wi pmath.Vec3) pmath.Float { return 0 }

// SampleDirection implements Hittable with an arbitrary placeholder
// direction, for the same reason as PDFValue.
func (r *YZRect) SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3 {
	return pmath.NewVec3(1, 0, 0)
}
