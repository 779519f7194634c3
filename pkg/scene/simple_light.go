package scene

import (
	"github.com/df07/go-pathtrace/pkg/camera"
	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/texture"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

// NewSimpleLightScene builds a Lambertian sphere and a ground quad lit by
// a rectangular area light, per spec §8 scenario 2's setup.
func NewSimpleLightScene() *Scene {
	cam := camera.NewCamera(camera.Config{
		Center:      pmath.NewVec3(26, 3, 6),
		LookAt:      pmath.NewVec3(0, 2, 0),
		Up:          pmath.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 16.0 / 9.0,
	})

	perlin := texture.NewPerlin(4, pmath.NewVec3(1, 1, 1), pmath.NewRNG(2))
	ground := hittable.NewXZRect(-1000, 1000, -1000, 1000, 0, material.NewLambert(perlin))
	sphere := hittable.NewSphere(pmath.NewVec3(0, 2, 0), 2, material.NewLambert(perlin))

	light := hittable.NewXYRect(3, 5, 1, 3, -2, material.NewDiffuseLightColor(pmath.NewVec3(4, 4, 4)))

	s := New("simple_light", cam, []hittable.Hittable{ground, sphere, light})
	s.Config.SamplesPerPixel = 200
	return s
}
