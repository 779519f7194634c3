package hittable

import (
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// Mesh is a collection of triangles sharing a single material, with its
// own internal BVH built eagerly once all triangles are added (spec
// §4.1/§4.2/§6).
type Mesh struct {
	Position          pmath.Vec3
	Rotation          pmath.Quaternion
	Scale             pmath.Float
	Material          material.Material
	InterpolateNormal bool

	vertices  []Vertex
	triangles []Hittable
	root      *BvhNode
	box       pmath.AABB
}

// NewMesh creates an empty Mesh at the given rigid transform and
// uniform scale.
func NewMesh(pos pmath.Vec3, rot pmath.Quaternion, scale pmath.Float, mat material.Material, interpolateNormal bool) *Mesh {
	return &Mesh{
		Position:          pos,
		Rotation:          rot,
		Scale:             scale,
		Material:          mat,
		InterpolateNormal: interpolateNormal,
	}
}

// HitMaterial implements materialHolder.
func (m *Mesh) HitMaterial() material.Material { return m.Material }

// transformVertex maps a local-space vertex into world space using the
// mesh's rigid transform and uniform scale. Tangent/Bitangent are left
// zero here; NewTriangle recomputes them from the transformed
// Position/UV once AddTriangle passes the result through.
func (m *Mesh) transformVertex(v Vertex) Vertex {
	return Vertex{
		Position: m.Rotation.RotateVector(v.Position.Multiply(m.Scale)).Add(m.Position),
		Normal:   m.Rotation.RotateVector(v.Normal).Normalize(),
		UV:       v.UV,
	}
}

// AddTriangle appends a world-space triangle built from three
// local-space vertices.
func (m *Mesh) AddTriangle(a, b, c Vertex) {
	tri := NewTriangle(m.transformVertex(a), m.transformVertex(b), m.transformVertex(c), m.Material, m.InterpolateNormal)
	m.vertices = append(m.vertices, a, b, c)
	m.triangles = append(m.triangles, tri)
	if len(m.triangles) == 1 {
		m.box = tri.BoundingBox()
	} else {
		m.box = m.box.Union(tri.BoundingBox())
	}
}

// Triangles returns the mesh's world-space triangle primitives.
func (m *Mesh) Triangles() []Hittable { return m.triangles }

// Build constructs the mesh's internal BVH over its triangles (spec
// §4.1: "the BVH is built eagerly after all triangles are added").
func (m *Mesh) Build(rng *pmath.RNG) {
	if len(m.triangles) == 0 {
		return
	}
	m.root = NewBvhNode(m.triangles, rng)
}

// Hit implements Hittable, delegating to the internal BVH.
func (m *Mesh) Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool) {
	if m.root == nil {
		return material.HitRecord{}, false
	}
	return m.root.Hit(ray, tMin, tMax, rng)
}

// BoundingBox implements Hittable.
func (m *Mesh) BoundingBox() pmath.AABB { return m.box }

// PDFValue implements Hittable: the uniform average across the mesh's
// triangles, matching HittableList's light-averaging contract.
func (m *Mesh) PDFValue(origin, wi pmath.Vec3) pmath.Float {
	if len(m.triangles) == 0 {
		return 0
	}
	weight := 1.0 / pmath.Float(len(m.triangles))
	var sum pmath.Float
	for _, tri := range m.triangles {
		sum += tri.PDFValue(origin, wi)
	}
	return sum * weight
}

// SampleDirection implements Hittable: picks one triangle uniformly and
// samples a direction toward it.
func (m *Mesh) SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3 {
	if len(m.triangles) == 0 {
		return pmath.NewVec3(1, 0, 0)
	}
	idx := rng.Intn(len(m.triangles))
	return m.triangles[idx].SampleDirection(origin, rng)
}

// FetchLights implements lightFetcher.
func (m *Mesh) FetchLights(lights *[]Hittable) {
	for _, tri := range m.triangles {
		fetchLightsInto(tri, lights)
	}
}
