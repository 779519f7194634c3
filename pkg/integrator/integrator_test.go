package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

func buildRoot(objects ...hittable.Hittable) hittable.Hittable {
	list := hittable.NewHittableList()
	for _, o := range objects {
		list.Add(o)
	}
	list.Build(pmath.NewRNG(1))
	return list
}

// TestRayColorEmptySceneReturnsFlatBackground is spec §8 scenario 1: an
// empty scene with no hittables returns the flat background color.
func TestRayColorEmptySceneReturnsFlatBackground(t *testing.T) {
	bg := pmath.NewVec3(0.7, 0.8, 1.0)
	scene := &Scene{
		Root:             buildRoot(),
		BackgroundTop:    bg,
		BackgroundBottom: bg,
	}
	in := New(10)
	ray := pmath.NewRay(pmath.NewVec3(0, 0, 0), pmath.NewVec3(0, 0, -1))
	got := in.RayColor(ray, scene, pmath.NewRNG(1))

	if got.Subtract(bg).Length() > 1e-9 {
		t.Errorf("RayColor = %v, want flat background %v", got, bg)
	}
}

// TestRayColorLambertSphereWithLightIsPositive is spec §8 scenario 2: a
// Lambertian sphere lit by an emissive sphere should receive nonzero
// indirect light.
func TestRayColorLambertSphereWithLightIsPositive(t *testing.T) {
	lambert := hittable.NewSphere(pmath.NewVec3(0, 0, -2), 0.5, material.NewLambertColor(pmath.NewVec3(0.7, 0.3, 0.3)))
	light := hittable.NewSphere(pmath.NewVec3(0, 3, -2), 1, material.NewDiffuseLightColor(pmath.NewVec3(4, 4, 4)))

	lights := hittable.NewHittableList()
	lights.Add(light)
	lights.Build(pmath.NewRNG(1))

	scene := &Scene{
		Root:   buildRoot(lambert, light),
		Lights: lights,
	}
	in := New(8)
	ray := pmath.NewRay(pmath.NewVec3(0, 0, 0), pmath.NewVec3(0, 0, -1))

	rng := pmath.NewRNG(7)
	var sum pmath.Color
	const samples = 64
	for i := 0; i < samples; i++ {
		sum = sum.Add(in.RayColor(ray, scene, rng))
	}
	avg := sum.Divide(samples)

	if avg.X <= 0 && avg.Y <= 0 && avg.Z <= 0 {
		t.Errorf("average RayColor = %v, want some positive indirect contribution from the light", avg)
	}
}

// TestRayColorSpecularBounceRecursesWithoutPDF is spec §8 scenario 3: a
// mirror reflecting the sky background should not divide by a PDF (a
// specular scatter has no associated PDF).
func TestRayColorSpecularBounceRecursesWithoutPDF(t *testing.T) {
	mirror := hittable.NewSphere(pmath.NewVec3(0, 0, -2), 0.5, material.NewMetal(pmath.NewVec3(0.9, 0.9, 0.9), 0))
	scene := &Scene{
		Root:             buildRoot(mirror),
		BackgroundTop:    pmath.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom: pmath.NewVec3(1, 1, 1),
	}
	in := New(8)
	ray := pmath.NewRay(pmath.NewVec3(0, 0, 0), pmath.NewVec3(0, 0, -1))

	got := in.RayColor(ray, scene, pmath.NewRNG(1))
	if math.IsNaN(float64(got.X)) || math.IsInf(float64(got.X), 0) {
		t.Errorf("RayColor = %v, want finite", got)
	}
}

// TestRayColorDepthZeroReturnsBlack verifies the depth < 0 base case of
// spec §4.7 terminates recursion without contributing emission twice.
func TestRayColorDepthZeroReturnsBlack(t *testing.T) {
	sphere := hittable.NewSphere(pmath.NewVec3(0, 0, -2), 0.5, material.NewLambertColor(pmath.NewVec3(0.5, 0.5, 0.5)))
	scene := &Scene{Root: buildRoot(sphere)}
	in := New(-1)
	ray := pmath.NewRay(pmath.NewVec3(0, 0, 0), pmath.NewVec3(0, 0, -1))

	got := in.RayColor(ray, scene, pmath.NewRNG(1))
	if got.X != 0 || got.Y != 0 || got.Z != 0 {
		t.Errorf("RayColor at depth -1 = %v, want (0,0,0)", got)
	}
}

// TestRayColorEmissiveMaterialReturnsEmittedWithoutScattering checks a
// light source seen directly returns its own emission.
func TestRayColorEmissiveMaterialReturnsEmittedWithoutScattering(t *testing.T) {
	emit := pmath.NewVec3(4, 4, 4)
	light := hittable.NewSphere(pmath.NewVec3(0, 0, -2), 0.5, material.NewDiffuseLightColor(emit))
	scene := &Scene{Root: buildRoot(light)}
	in := New(8)
	ray := pmath.NewRay(pmath.NewVec3(0, 0, 0), pmath.NewVec3(0, 0, -1))

	got := in.RayColor(ray, scene, pmath.NewRNG(1))
	if got.Subtract(emit).Length() > 1e-9 {
		t.Errorf("RayColor = %v, want emitted color %v", got, emit)
	}
}

// TestSamplingDistributionFallsBackToMaterialPDFWithoutLights checks the
// mixture is skipped entirely when the scene has no lights (spec §4.7
// step 6's else branch).
func TestSamplingDistributionFallsBackToMaterialPDFWithoutLights(t *testing.T) {
	in := New(4)
	materialPDF := fakePDF{}

	scene := &Scene{Lights: hittable.NewHittableList()}
	got := in.samplingDistribution(scene, materialPDF)
	if got != material.PDF(materialPDF) {
		t.Error("expected the material PDF unchanged when the scene has no lights")
	}
}

type fakePDF struct{}

func (fakePDF) Value(hit material.HitRecord, wi pmath.Vec3) pmath.Float           { return 1 }
func (fakePDF) Sample(hit material.HitRecord, rng *pmath.RNG) (pmath.Vec3, pmath.Float) {
	return pmath.NewVec3(0, 0, 1), 1
}
