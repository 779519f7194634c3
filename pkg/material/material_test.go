package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

func TestSetFaceNormalOrientsTowardRay(t *testing.T) {
	var h HitRecord
	rayDir := pmath.NewVec3(0, 0, 1)
	outward := pmath.NewVec3(0, 0, -1)

	h.SetFaceNormal(rayDir, outward)
	if !h.FrontFace {
		t.Errorf("expected FrontFace=true when dot(ray,outward)<0")
	}
	if h.Normal != outward {
		t.Errorf("front-face normal = %v, want outward %v", h.Normal, outward)
	}

	h.SetFaceNormal(outward, outward)
	if h.FrontFace {
		t.Errorf("expected FrontFace=false when dot(ray,outward)>=0")
	}
	if h.Normal != outward.Negate() {
		t.Errorf("back-face normal = %v, want negated outward %v", h.Normal, outward.Negate())
	}
}

func TestLambertScatterCosineWeighted(t *testing.T) {
	l := NewLambertColor(pmath.NewVec3(0.5, 0.5, 0.5))
	rng := pmath.NewRNG(11)
	hit := HitRecord{P: pmath.Vec3{}, Normal: pmath.NewVec3(0, 0, 1), Material: l}

	for i := 0; i < 200; i++ {
		sr, ok := l.Scatter(pmath.Ray{}, hit, rng)
		if !ok {
			t.Fatalf("Lambert.Scatter() returned ok=false")
		}
		if sr.IsSpecular {
			t.Fatalf("Lambert.Scatter() should be non-specular")
		}
		dir, pdf := sr.PDF.Sample(hit, rng)
		if dir.Dot(hit.Normal) < -1e-9 {
			t.Errorf("sampled direction below hemisphere: %v", dir)
		}
		if pdf <= 0 {
			t.Errorf("pdf should be positive for a hemisphere direction, got %v", pdf)
		}
	}
}

func TestMetalFuzzClamped(t *testing.T) {
	m := NewMetal(pmath.NewVec3(1, 1, 1), 5.0)
	if m.Fuzz != 1.0 {
		t.Errorf("Fuzz = %v, want clamped to 1.0", m.Fuzz)
	}
	m2 := NewMetal(pmath.NewVec3(1, 1, 1), -5.0)
	if m2.Fuzz != 0.0 {
		t.Errorf("Fuzz = %v, want clamped to 0.0", m2.Fuzz)
	}
}

func TestMetalReflectsAboutNormal(t *testing.T) {
	m := NewMetal(pmath.NewVec3(0.8, 0.8, 0.8), 0)
	hit := HitRecord{P: pmath.Vec3{}, Normal: pmath.NewVec3(0, 1, 0)}
	rayIn := pmath.NewRay(pmath.Vec3{}, pmath.NewVec3(1, -1, 0))

	sr, ok := m.Scatter(rayIn, hit, pmath.NewRNG(1))
	if !ok {
		t.Fatalf("Metal.Scatter() returned ok=false for a valid reflection")
	}
	if !sr.IsSpecular {
		t.Fatalf("Metal.Scatter() should be specular")
	}
	want := pmath.NewVec3(1, 1, 0).Normalize()
	if diff := sr.Specular.Direction.Subtract(want).Length(); diff > 1e-9 {
		t.Errorf("reflected direction = %v, want %v", sr.Specular.Direction, want)
	}
}

func TestDielectricSchlickAtGrazingAngleReflects(t *testing.T) {
	d := NewDielectric(1.5)
	hit := HitRecord{P: pmath.Vec3{}, Normal: pmath.NewVec3(0, 1, 0), FrontFace: true}
	// Nearly grazing incidence guarantees total internal reflection is
	// impossible here (entering the medium), but Schlick reflectance is
	// high, so across many trials we should see some reflections.
	grazing := pmath.NewVec3(0.9999, -0.02, 0).Normalize()

	sawReflect, sawRefract := false, false
	rng := pmath.NewRNG(3)
	for i := 0; i < 500; i++ {
		sr, ok := d.Scatter(pmath.NewRay(pmath.Vec3{}, grazing), hit, rng)
		if !ok || !sr.IsSpecular {
			t.Fatalf("Dielectric.Scatter() unexpected result: %+v, %v", sr, ok)
		}
		refractDir := pmath.Refract(grazing, hit.Normal, 1.0/1.5)
		if sr.Specular.Direction.Subtract(refractDir).Length() < 1e-6 {
			sawRefract = true
		} else {
			sawReflect = true
		}
	}
	if !sawReflect {
		t.Errorf("expected at least one Schlick-driven reflection at grazing incidence")
	}
	_ = sawRefract
}

func TestDiffuseLightEmitsOnlyFrontFace(t *testing.T) {
	light := NewDiffuseLightColor(pmath.NewVec3(4, 4, 4))
	front := HitRecord{FrontFace: true}
	back := HitRecord{FrontFace: false}

	if got := light.Emitted(pmath.Ray{}, front, 0, 0, pmath.Vec3{}); got != pmath.NewVec3(4, 4, 4) {
		t.Errorf("front-face emission = %v, want (4,4,4)", got)
	}
	if got := light.Emitted(pmath.Ray{}, back, 0, 0, pmath.Vec3{}); got != (pmath.Vec3{}) {
		t.Errorf("back-face emission = %v, want zero", got)
	}

	if _, ok := light.Scatter(pmath.Ray{}, front, pmath.NewRNG(1)); ok {
		t.Errorf("DiffuseLight.Scatter() should never scatter")
	}
	if !light.IsLight() {
		t.Errorf("DiffuseLight.IsLight() = false, want true")
	}
}

func TestIsotropicUniformDensity(t *testing.T) {
	iso := NewIsotropicColor(pmath.NewVec3(1, 1, 1))
	hit := HitRecord{}
	want := 1.0 / (4.0 * math.Pi)
	if got := iso.ScatteringPDF(pmath.Ray{}, hit, pmath.Ray{}); math.Abs(got-want) > 1e-12 {
		t.Errorf("ScatteringPDF() = %v, want %v", got, want)
	}
}
