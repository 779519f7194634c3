package material

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/pmath"
	"github.com/df07/go-pathtrace/pkg/texture"
)

// cosinePDF is the cosine-weighted hemisphere distribution Lambert uses
// for its own scatter, per spec §4.1/§4.5. It is defined here rather than
// in pkg/pdf so Lambert.Scatter can return one without importing pkg/pdf
// (which would otherwise need to import pkg/material back).
type cosinePDF struct{}

func (cosinePDF) Value(hit HitRecord, wi pmath.Vec3) pmath.Float {
	cosTheta := wi.Dot(hit.Normal)
	if cosTheta <= 0 {
		return 0
	}
	return cosTheta / math.Pi
}

func (cosinePDF) Sample(hit HitRecord, rng *pmath.RNG) (pmath.Vec3, pmath.Float) {
	wo := pmath.RandomCosineDirectionAround(hit.Normal, rng)
	return wo, cosinePDF{}.Value(hit, wo)
}

// Lambert is a perfectly diffuse material (spec §4.4): cosine-weighted
// scattering with attenuation drawn from a texture.
type Lambert struct {
	Albedo texture.Texture
}

// NewLambert creates a Lambert material from a texture.
func NewLambert(albedo texture.Texture) *Lambert { return &Lambert{Albedo: albedo} }

// NewLambertColor creates a Lambert material from a solid color.
func NewLambertColor(c pmath.Color) *Lambert { return &Lambert{Albedo: texture.NewSolid(c)} }

// Scatter implements Material.
func (l *Lambert) Scatter(rayIn pmath.Ray, hit HitRecord, rng *pmath.RNG) (ScatterRecord, bool) {
	return ScatterRecord{
		IsSpecular:  false,
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.P),
		PDF:         cosinePDF{},
	}, true
}

// ScatteringPDF implements Material: cos(theta)/pi, per spec §4.4.
func (l *Lambert) ScatteringPDF(rayIn pmath.Ray, hit HitRecord, scattered pmath.Ray) pmath.Float {
	cosTheta := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosTheta < 0 {
		cosTheta = 0
	}
	return cosTheta / math.Pi
}

// Emitted implements Material: Lambert never emits.
func (l *Lambert) Emitted(rayIn pmath.Ray, hit HitRecord, u, v pmath.Float, p pmath.Vec3) pmath.Color {
	return pmath.Color{}
}

// IsLight implements Material.
func (l *Lambert) IsLight() bool { return false }
