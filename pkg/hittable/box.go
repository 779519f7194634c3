package hittable

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// Box is a rigid-transform box: position and rotation plus a per-axis
// half-extent, rather than six separately constructed AARects (spec
// §4.1). Rays are transformed into the box's local frame, intersected
// against an axis-aligned slab, and the hit point/normal are transformed
// back out.
type Box struct {
	Position pmath.Vec3
	Rotation pmath.Quaternion
	Extent   pmath.Vec3 // half-extents
	Material material.Material

	localBox pmath.AABB
}

// NewBox creates a Box centered at pos, rotated by rot, with the given
// half-extents.
func NewBox(pos pmath.Vec3, rot pmath.Quaternion, extent pmath.Vec3, mat material.Material) *Box {
	return &Box{
		Position: pos,
		Rotation: rot,
		Extent:   extent,
		Material: mat,
		localBox: pmath.NewAABB(extent.Negate(), extent),
	}
}

// HitMaterial implements materialHolder.
func (b *Box) HitMaterial() material.Material { return b.Material }

// Hit implements Hittable.
func (b *Box) Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool) {
	inv := b.Rotation.Inverse()
	localOrigin := inv.RotateVector(ray.Origin.Subtract(b.Position))
	localDir := inv.RotateVector(ray.Direction)
	localRay := pmath.NewRayAt(localOrigin, localDir, ray.Time)

	t, ok := b.localBox.HitT(localRay, tMin, tMax, true)
	if !ok {
		return material.HitRecord{}, false
	}

	p := localRay.At(t).Add(b.Extent)
	ext := b.Extent

	var normal pmath.Vec3
	var u, v pmath.Float
	switch {
	case almostEqual(p.X, 0):
		normal, u, v = pmath.NewVec3(-1, 0, 0), p.Z/(ext.Z*2), p.Y/(ext.Y*2)
	case almostEqual(p.X, ext.X*2):
		normal, u, v = pmath.NewVec3(1, 0, 0), p.Z/(ext.Z*2), p.Y/(ext.Y*2)
	case almostEqual(p.Y, 0):
		normal, u, v = pmath.NewVec3(0, -1, 0), p.X/(ext.X*2), p.Z/(ext.Z*2)
	case almostEqual(p.Y, ext.Y*2):
		normal, u, v = pmath.NewVec3(0, 1, 0), p.X/(ext.X*2), p.Z/(ext.Z*2)
	case almostEqual(p.Z, 0):
		normal, u, v = pmath.NewVec3(0, 0, -1), p.X/(ext.X*2), p.Y/(ext.Y*2)
	default:
		normal, u, v = pmath.NewVec3(0, 0, 1), p.X/(ext.X*2), p.Y/(ext.Y*2)
	}

	if b.localBox.Contains(localOrigin) {
		normal = normal.Negate()
	}
	normal = b.Rotation.RotateVector(normal)

	var hit material.HitRecord
	hit.SetFaceNormal(ray.Direction, normal)
	hit.T = t
	hit.P = ray.At(t)
	hit.U, hit.V = u, v
	hit.Material = b.Material
	return hit, true
}

// BoundingBox implements Hittable: the conservative world-space bound of
// the rotated box (spec §4.1).
func (b *Box) BoundingBox() pmath.AABB {
	return b.localBox.Transform(b.Position, b.Rotation)
}

func almostEqual(a, b pmath.Float) bool {
	return math.Abs(a-b) < 1e-4
}

// PDFValue implements Hittable with the base-case zero density; a Box is
// never itself used as a direct-light sampling target.
func (b *Box) PDFValue(origin, wi pmath.Vec3) pmath.Float { return 0 }

// SampleDirection implements Hittable with an arbitrary placeholder
// direction, for the same reason as PDFValue.
func (b *Box) SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3 {
	return pmath.NewVec3(1, 0, 0)
}
