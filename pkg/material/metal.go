package material

import "github.com/df07/go-pathtrace/pkg/pmath"

// Metal is a specular, optionally fuzzed reflective material (spec §4.4).
type Metal struct {
	Albedo pmath.Color
	Fuzz   pmath.Float // clamped to [0, 1]
}

// NewMetal creates a Metal material, clamping fuzz to [0, 1].
func NewMetal(albedo pmath.Color, fuzz pmath.Float) *Metal {
	if fuzz < 0 {
		fuzz = 0
	}
	if fuzz > 1 {
		fuzz = 1
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements Material: reflect the incoming ray about the
// surface normal, then jitter by fuzz within the unit sphere.
func (m *Metal) Scatter(rayIn pmath.Ray, hit HitRecord, rng *pmath.RNG) (ScatterRecord, bool) {
	reflected := pmath.Reflect(rayIn.Direction.Normalize(), hit.Normal)
	if m.Fuzz > 0 {
		reflected = reflected.Add(pmath.RandomInUnitSphere(rng).Multiply(m.Fuzz)).Normalize()
	}
	scattered := pmath.NewRayAt(hit.P, reflected, rayIn.Time)

	if scattered.Direction.Dot(hit.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{
		IsSpecular:  true,
		Attenuation: m.Albedo,
		Specular:    scattered,
	}, true
}

// ScatteringPDF implements Material: Metal is specular, so its own PDF
// plays no role in MIS; the integrator never calls this for a specular
// scatter, but the zero return keeps the contract total.
func (m *Metal) ScatteringPDF(rayIn pmath.Ray, hit HitRecord, scattered pmath.Ray) pmath.Float {
	return 0
}

// Emitted implements Material: Metal never emits.
func (m *Metal) Emitted(rayIn pmath.Ray, hit HitRecord, u, v pmath.Float, p pmath.Vec3) pmath.Color {
	return pmath.Color{}
}

// IsLight implements Material.
func (m *Metal) IsLight() bool { return false }
