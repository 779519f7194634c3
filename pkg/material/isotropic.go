package material

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/pmath"
	"github.com/df07/go-pathtrace/pkg/texture"
)

// uniformSpherePDF is the isotropic phase function's sampling
// distribution: a direction uniform over the full sphere (spec §4.4/§4.5).
type uniformSpherePDF struct{}

func (uniformSpherePDF) Value(hit HitRecord, wi pmath.Vec3) pmath.Float {
	return 1.0 / (4.0 * math.Pi)
}

func (uniformSpherePDF) Sample(hit HitRecord, rng *pmath.RNG) (pmath.Vec3, pmath.Float) {
	return pmath.RandomUniformSphereDirection(rng), 1.0 / (4.0 * math.Pi)
}

// Isotropic is the volume phase function used by ConstantMedium (spec §4.4).
type Isotropic struct {
	Albedo texture.Texture
}

// NewIsotropic creates an Isotropic material from a texture.
func NewIsotropic(albedo texture.Texture) *Isotropic { return &Isotropic{Albedo: albedo} }

// NewIsotropicColor creates an Isotropic material from a solid color.
func NewIsotropicColor(c pmath.Color) *Isotropic {
	return &Isotropic{Albedo: texture.NewSolid(c)}
}

// Scatter implements Material: uniform scattering in all directions.
func (i *Isotropic) Scatter(rayIn pmath.Ray, hit HitRecord, rng *pmath.RNG) (ScatterRecord, bool) {
	return ScatterRecord{
		IsSpecular:  false,
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.P),
		PDF:         uniformSpherePDF{},
	}, true
}

// ScatteringPDF implements Material: uniform density over the sphere.
func (i *Isotropic) ScatteringPDF(rayIn pmath.Ray, hit HitRecord, scattered pmath.Ray) pmath.Float {
	return 1.0 / (4.0 * math.Pi)
}

// Emitted implements Material: Isotropic never emits.
func (i *Isotropic) Emitted(rayIn pmath.Ray, hit HitRecord, u, v pmath.Float, p pmath.Vec3) pmath.Color {
	return pmath.Color{}
}

// IsLight implements Material.
func (i *Isotropic) IsLight() bool { return false }
