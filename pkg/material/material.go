// Package material implements the scatter/emit contract of spec §3/§4.4:
// Lambert, Metal, Dielectric, DiffuseLight, and Isotropic, plus the
// ScatterRecord and HitRecord types they operate on.
package material

import "github.com/df07/go-pathtrace/pkg/pmath"

// HitRecord describes a ray-primitive intersection (spec §3). Material is
// a borrowed reference into the scene tree, not an owning pointer, to
// avoid reference-count traffic in the hot loop.
type HitRecord struct {
	P         pmath.Vec3
	Normal    pmath.Vec3 // unit, oriented toward the incoming ray
	T         pmath.Float
	U, V      pmath.Float
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal toward the incoming ray and records which
// side was struck, per spec §3: front_face = dot(ray.dir, outward) < 0.
func (h *HitRecord) SetFaceNormal(rayDir, outwardNormal pmath.Vec3) {
	h.FrontFace = rayDir.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// PDF is the minimal sampling-distribution capability a material's
// non-specular scatter result exposes; pkg/pdf implements this for its
// concrete distributions without pkg/material needing to import pkg/pdf.
// Both methods take the originating hit so a single PDF value (e.g. a
// HittablePDF wrapping a shared light) can be reused across many hits.
type PDF interface {
	Value(hit HitRecord, wi pmath.Vec3) pmath.Float
	Sample(hit HitRecord, rng *pmath.RNG) (pmath.Vec3, pmath.Float)
}

// ScatterRecord is the outcome of Material.Scatter (spec §3): either a
// specular ray with an attenuation, or a non-specular attenuation paired
// with a sampling PDF.
type ScatterRecord struct {
	IsSpecular  bool
	Attenuation pmath.Color
	Specular    pmath.Ray // valid when IsSpecular
	PDF         PDF       // valid when !IsSpecular
}

// Material is the per-primitive interaction contract (spec §4.4).
type Material interface {
	// Scatter returns the outgoing interaction for rayIn striking hit, or
	// ok=false if the material absorbs the ray (e.g. DiffuseLight).
	Scatter(rayIn pmath.Ray, hit HitRecord, rng *pmath.RNG) (ScatterRecord, bool)

	// ScatteringPDF returns the material's own PDF for the given scattered
	// direction, used for the BSDF side of the MIS weight (spec §4.7).
	ScatteringPDF(rayIn pmath.Ray, hit HitRecord, scattered pmath.Ray) pmath.Float

	// Emitted returns the material's emission at the hit, zero for
	// non-emissive materials.
	Emitted(rayIn pmath.Ray, hit HitRecord, u, v pmath.Float, p pmath.Vec3) pmath.Color

	// IsLight reports whether this material emits light, used by the
	// scene's light-extraction walk (spec §4.2).
	IsLight() bool
}
