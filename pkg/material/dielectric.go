package material

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

// Dielectric is a transparent material (glass, water) that reflects or
// refracts depending on the Fresnel term and the angle of incidence
// (spec §4.4).
type Dielectric struct {
	IOR pmath.Float // index of refraction, e.g. 1.5 for glass
}

// NewDielectric creates a Dielectric material with the given index of
// refraction.
func NewDielectric(ior pmath.Float) *Dielectric { return &Dielectric{IOR: ior} }

// Scatter implements Material: Snell refraction with Schlick reflectance,
// randomly choosing between reflection and refraction (spec §4.4).
func (d *Dielectric) Scatter(rayIn pmath.Ray, hit HitRecord, rng *pmath.RNG) (ScatterRecord, bool) {
	var etaPrime pmath.Float
	if hit.FrontFace {
		etaPrime = 1.0 / d.IOR
	} else {
		etaPrime = d.IOR
	}

	unitDir := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDir.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := etaPrime*sinTheta > 1.0

	var direction pmath.Vec3
	if cannotRefract || pmath.Schlick(cosTheta, etaPrime) > pmath.RandomFloat(rng) {
		direction = pmath.Reflect(unitDir, hit.Normal)
	} else {
		direction = pmath.Refract(unitDir, hit.Normal, etaPrime)
	}

	return ScatterRecord{
		IsSpecular:  true,
		Attenuation: pmath.NewVec3(1, 1, 1),
		Specular:    pmath.NewRayAt(hit.P, direction, rayIn.Time),
	}, true
}

// ScatteringPDF implements Material: Dielectric is specular.
func (d *Dielectric) ScatteringPDF(rayIn pmath.Ray, hit HitRecord, scattered pmath.Ray) pmath.Float {
	return 0
}

// Emitted implements Material: Dielectric never emits.
func (d *Dielectric) Emitted(rayIn pmath.Ray, hit HitRecord, u, v pmath.Float, p pmath.Vec3) pmath.Color {
	return pmath.Color{}
}

// IsLight implements Material.
func (d *Dielectric) IsLight() bool { return false }
