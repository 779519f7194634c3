package scene

import (
	"github.com/df07/go-pathtrace/pkg/camera"
	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
	"github.com/df07/go-pathtrace/pkg/texture"
)

// NewPerlinSpheresScene places a radius-2 sphere on a large ground
// sphere, both sharing one Perlin marble material at the same scale.
func NewPerlinSpheresScene() *Scene {
	cam := camera.NewCamera(camera.Config{
		Center:      pmath.NewVec3(13, 2, 3),
		LookAt:      pmath.NewVec3(0, 0, 0),
		Up:          pmath.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 16.0 / 9.0,
	})

	noise := texture.NewPerlin(4, pmath.NewVec3(1, 1, 1), pmath.NewRNG(3))
	mat := material.NewLambert(noise)

	ground := hittable.NewSphere(pmath.NewVec3(0, -1000, 0), 1000, mat)
	sphere := hittable.NewSphere(pmath.NewVec3(0, 2, 0), 2, mat)

	s := New("perlin_spheres", cam, []hittable.Hittable{ground, sphere})
	s.Config.SamplesPerPixel = 100
	return s
}
