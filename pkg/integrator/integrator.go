// Package integrator implements the recursive multiple-importance-sampling
// path tracer of spec §4.7: BSDF sampling mixed 50/50 with direct light
// sampling, recursing to a bounded depth.
package integrator

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pdf"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// Scene is everything the integrator needs to trace a ray: the
// intersection root (normally a BVH), the lights collection extracted
// from it, and the background gradient shown when a ray escapes.
type Scene struct {
	Root             hittable.Hittable
	Lights           *hittable.HittableList // nil or empty disables direct light sampling
	BackgroundTop    pmath.Color
	BackgroundBottom pmath.Color
}

// Integrator traces rays through a Scene to a bounded recursion depth.
type Integrator struct {
	MaxDepth int
}

// New creates an Integrator with the given maximum bounce depth.
func New(maxDepth int) *Integrator {
	return &Integrator{MaxDepth: maxDepth}
}

// RayColor computes the radiance arriving along ray (spec §4.7).
func (in *Integrator) RayColor(ray pmath.Ray, scene *Scene, rng *pmath.RNG) pmath.Color {
	return in.trace(ray, scene, in.MaxDepth, rng).Sanitize()
}

func (in *Integrator) trace(ray pmath.Ray, scene *Scene, depth int, rng *pmath.RNG) pmath.Color {
	if depth < 0 {
		return pmath.Color{}
	}

	hit, ok := scene.Root.Hit(ray, 0.001, math.Inf(1), rng)
	if !ok {
		return background(ray, scene)
	}

	emitted := hit.Material.Emitted(ray, hit, hit.U, hit.V, hit.P)

	scatter, didScatter := hit.Material.Scatter(ray, hit, rng)
	if !didScatter {
		return emitted
	}

	if scatter.IsSpecular {
		incoming := in.trace(scatter.Specular, scene, depth-1, rng)
		return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
	}

	q := in.samplingDistribution(scene, scatter.PDF)
	wo, pdfVal := q.Sample(hit, rng)
	if pdfVal <= 0 {
		return emitted
	}

	scattered := pmath.NewRayAt(hit.P, wo, ray.Time)
	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	incoming := in.trace(scattered, scene, depth-1, rng)

	contribution := scatter.Attenuation.
		Multiply(scatteringPDF / pdfVal).
		MultiplyVec(incoming)
	return emitted.Add(contribution)
}

// samplingDistribution builds the direction-sampling PDF for a
// non-specular scatter: a 50/50 mixture of the material's own PDF and a
// light-directed PDF when the scene has lights, or the material's PDF
// alone otherwise (spec §4.7 step 6).
func (in *Integrator) samplingDistribution(scene *Scene, materialPDF material.PDF) material.PDF {
	if scene.Lights == nil || scene.Lights.Len() == 0 {
		return materialPDF
	}
	return pdf.NewMixturePDF(pdf.NewHittablePDF(scene.Lights), materialPDF)
}

// background returns the vertical gradient shown when a ray escapes the
// scene; the flat background of spec §8 scenario 1 is the degenerate
// case where BackgroundTop == BackgroundBottom.
func background(ray pmath.Ray, scene *Scene) pmath.Color {
	unitDir := ray.Direction.Normalize()
	t := 0.5 * (unitDir.Y + 1.0)
	return pmath.Lerp(scene.BackgroundBottom, scene.BackgroundTop, t)
}
