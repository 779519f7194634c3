package scene

import (
	"github.com/df07/go-pathtrace/pkg/camera"
	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// NewMotionBlurScene drops a MovingSphere over a gray Lambert ground sphere,
// exercising the shutter-time sampling of spec §4.6/§4.9.
func NewMotionBlurScene() *Scene {
	cam := camera.NewCamera(camera.Config{
		Center:      pmath.NewVec3(13, 2, 3),
		LookAt:      pmath.NewVec3(0, 0, 0),
		Up:          pmath.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 16.0 / 9.0,
		Aperture:    0.1,
		Time0:       0.0,
		Time1:       1.0,
	})

	ground := hittable.NewSphere(pmath.NewVec3(0, -1000, 0), 1000, material.NewLambertColor(pmath.NewVec3(0.5, 0.5, 0.5)))

	center0 := pmath.NewVec3(0, 1, 0)
	center1 := center0.Add(pmath.NewVec3(0, 0.5, 0))
	movingSphere := hittable.NewMovingSphere(center0, center1, 0.0, 1.0, 1.0, material.NewLambertColor(pmath.NewVec3(0.7, 0.3, 0.3)))

	s := New("motion_blur", cam, []hittable.Hittable{ground, movingSphere})
	s.Config.SamplesPerPixel = 100
	return s
}
