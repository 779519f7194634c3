package hittable

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// MovingSphere linearly interpolates its center between Time0 and Time1,
// giving the rendered motion blur (spec §4.1/§8 scenario 6).
type MovingSphere struct {
	Center0, Center1 pmath.Vec3
	Time0, Time1     pmath.Float
	Radius           pmath.Float
	Material         material.Material
}

// NewMovingSphere creates a MovingSphere.
func NewMovingSphere(center0, center1 pmath.Vec3, time0, time1, radius pmath.Float, mat material.Material) *MovingSphere {
	return &MovingSphere{Center0: center0, Center1: center1, Time0: time0, Time1: time1, Radius: radius, Material: mat}
}

// HitMaterial implements materialHolder.
func (s *MovingSphere) HitMaterial() material.Material { return s.Material }

// CenterAt returns the sphere's center at time t.
func (s *MovingSphere) CenterAt(t pmath.Float) pmath.Vec3 {
	frac := (t - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// Hit implements Hittable.
func (s *MovingSphere) Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant <= 0 {
		return material.HitRecord{}, false
	}
	sqrtd := math.Sqrt(discriminant)

	for _, root := range [2]pmath.Float{(-halfB - sqrtd) / a, (-halfB + sqrtd) / a} {
		if root > tMin && root < tMax {
			var hit material.HitRecord
			hit.T = root
			hit.P = ray.At(root)
			outward := hit.P.Subtract(center).Multiply(1.0 / s.Radius)
			hit.SetFaceNormal(ray.Direction, outward)
			hit.Material = s.Material
			return hit, true
		}
	}
	return material.HitRecord{}, false
}

// BoundingBox implements Hittable: the union of the sphere's bounds at
// both endpoint times (spec §8 scenario 6).
func (s *MovingSphere) BoundingBox() pmath.AABB {
	r := pmath.NewVec3(s.Radius, s.Radius, s.Radius)
	box0 := pmath.NewAABB(s.Center0.Subtract(r), s.Center0.Add(r))
	box1 := pmath.NewAABB(s.Center1.Subtract(r), s.Center1.Add(r))
	return box0.Union(box1)
}

// PDFValue implements Hittable with the base-case zero density; a
// MovingSphere is never itself used as a direct-light sampling target.
func (s *MovingSphere) PDFValue(origin, wi pmath.Vec3) pmath.Float { return 0 }

// SampleDirection implements Hittable with an arbitrary placeholder
// direction, for the same reason as PDFValue.
func (s *MovingSphere) SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3 {
	return pmath.NewVec3(1, 0, 0)
}
