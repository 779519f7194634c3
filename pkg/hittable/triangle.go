package hittable

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// Vertex is a single mesh vertex: position, shading normal, tangent
// frame, and texture coordinate (spec §4.1/§6). Tangent and Bitangent
// are precomputed by NewTriangle from uv differentials and orthonormalized
// against Normal; callers building a Vertex directly (e.g. a loader) only
// need to fill Position/Normal/UV.
type Vertex struct {
	Position  pmath.Vec3
	Normal    pmath.Vec3
	Tangent   pmath.Vec3
	Bitangent pmath.Vec3
	UV        pmath.Vec2
}

// Triangle is a single mesh face, intersected with the Moller-Trumbore
// algorithm (spec §4.1). Its normal is interpolated from vertex normals
// unless InterpolateNormal is false, in which case the flat face normal
// is used.
type Triangle struct {
	V0, V1, V2         Vertex
	Material           material.Material
	InterpolateNormal  bool
	faceNormal         pmath.Vec3
	area               pmath.Float
	bounds             pmath.AABB
}

// NewTriangle creates a Triangle, precomputing its flat normal, area,
// tangent frame, and bounding box.
func NewTriangle(a, b, c Vertex, mat material.Material, interpolateNormal bool) *Triangle {
	e1 := b.Position.Subtract(a.Position)
	e2 := c.Position.Subtract(a.Position)
	cross := e1.Cross(e2)
	area := cross.Length() * 0.5
	faceNormal := cross.Normalize()

	a.Tangent, a.Bitangent = orthonormalTangent(a.Normal, e1, e2, a.UV, b.UV, c.UV)
	b.Tangent, b.Bitangent = orthonormalTangent(b.Normal, e1, e2, a.UV, b.UV, c.UV)
	c.Tangent, c.Bitangent = orthonormalTangent(c.Normal, e1, e2, a.UV, b.UV, c.UV)

	bounds := pmath.NewAABBFromPoints(a.Position, b.Position, c.Position).Inflate()

	return &Triangle{
		V0: a, V1: b, V2: c,
		Material:          mat,
		InterpolateNormal: interpolateNormal,
		faceNormal:        faceNormal,
		area:              area,
		bounds:            bounds,
	}
}

// faceTangent computes the face tangent/bitangent from uv differentials
// (spec §4.1, grounded on Vertex::CalcTangent in the original
// implementation's common/vertex.h).
func faceTangent(e1, e2 pmath.Vec3, uv0, uv1, uv2 pmath.Vec2) (tangent, bitangent pmath.Vec3) {
	duv1 := uv1.Subtract(uv0)
	duv2 := uv2.Subtract(uv0)
	denom := duv1.X*duv2.Y - duv2.X*duv1.Y
	if denom == 0 {
		return pmath.Vec3{}, pmath.Vec3{}
	}
	r := 1.0 / denom
	tangent = e1.Multiply(duv2.Y).Subtract(e2.Multiply(duv1.Y)).Multiply(r)
	bitangent = e2.Multiply(duv1.X).Subtract(e1.Multiply(duv2.X)).Multiply(r)
	return tangent, bitangent
}

// orthonormalTangent Gram-Schmidt orthonormalizes the face tangent
// against a vertex's shading normal and flips it so tangent, bitangent,
// and normal keep a consistent handedness (spec §4.1: "orthonormalized
// against the vertex normal").
func orthonormalTangent(normal, e1, e2 pmath.Vec3, uv0, uv1, uv2 pmath.Vec2) (tangent, bitangent pmath.Vec3) {
	faceT, faceB := faceTangent(e1, e2, uv0, uv1, uv2)
	if faceT.LengthSquared() == 0 {
		faceT = e1.Normalize()
	}
	t := faceT.Subtract(normal.Multiply(normal.Dot(faceT))).Normalize()
	if normal.Cross(t).Dot(faceB) < 0 {
		t = t.Multiply(-1)
	}
	return t, normal.Cross(t)
}

// HitMaterial implements materialHolder.
func (t *Triangle) HitMaterial() material.Material { return t.Material }

// BoundingBox implements Hittable.
func (t *Triangle) BoundingBox() pmath.AABB { return t.bounds }

const triangleEpsilon = 1e-8

// intersect implements Moller-Trumbore ray-triangle intersection,
// returning the hit parameter and barycentric (u, v) of V1, V2.
func (t *Triangle) intersect(ray pmath.Ray, tMin, tMax pmath.Float) (hitT, u, v pmath.Float, ok bool) {
	e1 := t.V1.Position.Subtract(t.V0.Position)
	e2 := t.V2.Position.Subtract(t.V0.Position)
	pvec := ray.Direction.Cross(e2)
	det := e1.Dot(pvec)
	if det > -triangleEpsilon && det < triangleEpsilon {
		return 0, 0, 0, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(t.V0.Position)
	u = tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qvec := tvec.Cross(e1)
	v = ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	hitT = e2.Dot(qvec) * invDet
	if hitT < tMin || hitT > tMax {
		return 0, 0, 0, false
	}
	return hitT, u, v, true
}

// Hit implements Hittable.
func (t *Triangle) Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool) {
	hitT, u, v, ok := t.intersect(ray, tMin, tMax)
	if !ok {
		return material.HitRecord{}, false
	}
	w := 1 - u - v

	var hit material.HitRecord
	hit.T = hitT
	hit.P = ray.At(hitT)

	outward := t.faceNormal
	if t.InterpolateNormal {
		outward = t.V0.Normal.Multiply(w).Add(t.V1.Normal.Multiply(u)).Add(t.V2.Normal.Multiply(v)).Normalize()
	}
	hit.SetFaceNormal(ray.Direction, outward)

	uv := t.V0.UV.Multiply(w).Add(t.V1.UV.Multiply(u)).Add(t.V2.UV.Multiply(v))
	hit.U, hit.V = uv.X, uv.Y
	hit.Material = t.Material
	return hit, true
}

// PDFValue implements Hittable (spec §4.3).
func (t *Triangle) PDFValue(origin, wi pmath.Vec3) pmath.Float {
	hit, ok := t.Hit(pmath.NewRay(origin, wi), 0.001, math.Inf(1), nil)
	if !ok {
		return 0
	}
	distSq := hit.P.Subtract(origin).LengthSquared()
	cosine := math.Abs(wi.Normalize().Dot(t.faceNormal))
	if cosine < 1e-8 || t.area <= 0 {
		return 0
	}
	return distSq / (cosine * t.area)
}

// SampleDirection implements Hittable: a uniformly random point on the
// triangle via the square-root barycentric trick (spec §4.3).
func (t *Triangle) SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3 {
	x := math.Sqrt(pmath.RandomFloat(rng))
	y := pmath.RandomFloat(rng)
	point := t.V0.Position.Multiply(1 - x).
		Add(t.V1.Position.Multiply(x * (1 - y))).
		Add(t.V2.Position.Multiply(x * y))
	return point.Subtract(origin).Normalize()
}
