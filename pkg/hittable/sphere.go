package hittable

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// Sphere is a static sphere primitive (spec §4.1).
type Sphere struct {
	Center   pmath.Vec3
	Radius   pmath.Float
	Material material.Material
}

// NewSphere creates a Sphere.
func NewSphere(center pmath.Vec3, radius pmath.Float, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// HitMaterial implements materialHolder.
func (s *Sphere) HitMaterial() material.Material { return s.Material }

// sphereUV maps a point on a unit sphere centered at the origin to
// texture coordinates (spec §4.1): u wraps around Y, v runs pole to pole.
func sphereUV(p pmath.Vec3) (u, v pmath.Float) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// Hit implements Hittable.
func (s *Sphere) Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}
	sqrtd := math.Sqrt(discriminant)

	root := (-halfB - sqrtd) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtd) / a
		if root < tMin || root > tMax {
			return material.HitRecord{}, false
		}
	}

	var hit material.HitRecord
	hit.T = root
	hit.P = ray.At(root)
	outward := hit.P.Subtract(s.Center).Multiply(1.0 / s.Radius)
	hit.SetFaceNormal(ray.Direction, outward)
	hit.U, hit.V = sphereUV(outward)
	hit.Material = s.Material
	return hit, true
}

// BoundingBox implements Hittable.
func (s *Sphere) BoundingBox() pmath.AABB {
	r := pmath.NewVec3(s.Radius, s.Radius, s.Radius)
	return pmath.NewAABB(s.Center.Subtract(r), s.Center.Add(r))
}

// PDFValue implements Hittable: the solid angle subtended by the
// sphere as seen from origin toward direction wi (spec §4.3).
func (s *Sphere) PDFValue(origin, wi pmath.Vec3) pmath.Float {
	if _, hit := s.Hit(pmath.NewRay(origin, wi), 0.001, math.Inf(1), nil); !hit {
		return 0
	}
	distSq := s.Center.Subtract(origin).LengthSquared()
	cosThetaMax := math.Sqrt(1 - s.Radius*s.Radius/distSq)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1 / solidAngle
}

// SampleDirection implements Hittable: a direction toward a random point on
// the visible cap of the sphere, uniform over the subtended solid angle.
func (s *Sphere) SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3 {
	direction := s.Center.Subtract(origin)
	distSq := direction.LengthSquared()
	onb := pmath.NewONB(direction)
	return onb.Local(pmath.RandomToSphere(s.Radius, distSq, rng))
}
