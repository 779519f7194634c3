package scene

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/camera"
	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
	"github.com/df07/go-pathtrace/pkg/texture"
)

// oklchToRGB converts OKLCH color values (lightness, chroma, hue-degrees)
// to linear RGB, used to spread final_scene's random spheres across a
// wide but uniformly-lit color gamut.
func oklchToRGB(l, c, h pmath.Float) pmath.Color {
	hRad := h * math.Pi / 180.0
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b
	l_, m_, s_ = l_*l_*l_, m_*m_*m_, s_*s_*s_

	r := 4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	bl := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	clamp := func(x pmath.Float) pmath.Float { return math.Max(0, math.Min(1, x)) }
	return pmath.NewVec3(clamp(r), clamp(g), clamp(bl))
}

// NewFinalScene builds a large random field of spheres over a checkered
// ground plane plus three book2-style feature spheres (glass, matte,
// metal), the scene used to stress-test the BVH against a linear scan
// (spec §8 scenario 5) at render time.
func NewFinalScene(seed int64) *Scene {
	rng := pmath.NewRNG(seed)

	cam := camera.NewCamera(camera.Config{
		Center:      pmath.NewVec3(13, 2, 3),
		LookAt:      pmath.NewVec3(0, 0, 0),
		Up:          pmath.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.1,
		FocusDist:   10.0,
	})

	checker := texture.NewChecker(10, pmath.NewVec3(0.2, 0.3, 0.1), pmath.NewVec3(0.9, 0.9, 0.9))
	ground := hittable.NewSphere(pmath.NewVec3(0, -1000, 0), 1000, material.NewLambert(checker))

	objects := []hittable.Hittable{ground}

	gridSize := 11
	for i := -gridSize / 2; i < gridSize/2; i++ {
		for j := -gridSize / 2; j < gridSize/2; j++ {
			center := pmath.NewVec3(
				pmath.Float(i)+0.9*pmath.RandomFloat(rng),
				0.2,
				pmath.Float(j)+0.9*pmath.RandomFloat(rng),
			)
			if center.Subtract(pmath.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			chooseMat := pmath.RandomFloat(rng)
			hue := pmath.RandomFloatRange(rng, 0, 360)
			color := oklchToRGB(0.6, 0.15, hue)

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				mat = material.NewLambertColor(color)
			case chooseMat < 0.95:
				mat = material.NewMetal(color, pmath.RandomFloatRange(rng, 0, 0.5))
			default:
				mat = material.NewDielectric(1.5)
			}
			objects = append(objects, hittable.NewSphere(center, 0.2, mat))
		}
	}

	objects = append(objects,
		hittable.NewSphere(pmath.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		hittable.NewSphere(pmath.NewVec3(-4, 1, 0), 1.0, material.NewLambertColor(pmath.NewVec3(0.4, 0.2, 0.1))),
		hittable.NewSphere(pmath.NewVec3(4, 1, 0), 1.0, material.NewMetal(pmath.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	s := New("final_scene", cam, objects)
	s.Config.SamplesPerPixel = 500
	s.Config.MaxDepth = 50
	return s
}
