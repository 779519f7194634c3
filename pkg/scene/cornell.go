package scene

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/camera"
	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

const cornellBoxSize = 555.0

func cornellCamera() *camera.Camera {
	return camera.NewCamera(camera.Config{
		Center:      pmath.NewVec3(278, 278, -800),
		LookAt:      pmath.NewVec3(278, 278, 0),
		Up:          pmath.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
	})
}

// cornellWalls builds the five walls and ceiling light shared by the
// Cornell box variants, matching the classic 555x555x555 dimensions.
func cornellWalls() (walls []hittable.Hittable, light hittable.Hittable) {
	white := material.NewLambertColor(pmath.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertColor(pmath.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertColor(pmath.NewVec3(0.12, 0.45, 0.15))
	s := pmath.Float(cornellBoxSize)

	floor := hittable.NewXZRect(0, s, 0, s, 0, white)
	ceiling := hittable.NewFlipFace(hittable.NewXZRect(0, s, 0, s, s, white))
	backWall := hittable.NewXYRect(0, s, 0, s, s, white)
	rightWall := hittable.NewFlipFace(hittable.NewYZRect(0, s, 0, s, s, green))
	leftWall := hittable.NewYZRect(0, s, 0, s, 0, red)

	lightSize := pmath.Float(130.0)
	offset := (s - lightSize) / 2.0
	lightQuad := hittable.NewFlipFace(hittable.NewXZRect(offset, offset+lightSize, offset, offset+lightSize, s-1, material.NewDiffuseLightColor(pmath.NewVec3(15, 15, 15))))

	return []hittable.Hittable{floor, ceiling, backWall, leftWall, rightWall}, lightQuad
}

// NewCornellBoxScene builds the classic Cornell box with a metal sphere
// and a glass sphere, the baseline for spec §8 scenario 4's MIS check.
func NewCornellBoxScene() *Scene {
	walls, light := cornellWalls()

	leftSphere := hittable.NewSphere(pmath.NewVec3(185, 82.5, 169), 82.5, material.NewMetal(pmath.NewVec3(0.8, 0.8, 0.9), 0.0))
	rightSphere := hittable.NewSphere(pmath.NewVec3(370, 90, 351), 90, material.NewDielectric(1.5))

	objects := append(walls, light, leftSphere, rightSphere)

	s := New("cornell_box", cornellCamera(), objects)
	s.BackgroundTop = pmath.Color{}
	s.BackgroundBottom = pmath.Color{}
	s.Config.Width = 400
	s.Config.Height = 400
	s.Config.SamplesPerPixel = 150
	s.Config.MaxDepth = 40
	return s
}

// NewCornellSmokeScene replaces the two Cornell box spheres with a pair
// of participating-media boxes, per `original_source`'s
// `cornell_smoke.cpp`: black smoke in the tall box and white fog in the
// short box.
func NewCornellSmokeScene() *Scene {
	walls, light := cornellWalls()

	tallBox := hittable.NewBox(
		pmath.NewVec3(265+165/2.0, 0, 295+165/2.0),
		pmath.NewQuaternionFromAxisAngle(pmath.NewVec3(0, 1, 0), 15*math.Pi/180),
		pmath.NewVec3(165, 330, 165),
		nil,
	)
	shortBox := hittable.NewBox(
		pmath.NewVec3(130+165/2.0, 0, 65+165/2.0),
		pmath.NewQuaternionFromAxisAngle(pmath.NewVec3(0, 1, 0), -18*math.Pi/180),
		pmath.NewVec3(165, 165, 165),
		nil,
	)

	smoke := hittable.NewConstantMedium(tallBox, 0.01, pmath.NewVec3(0, 0, 0))
	fog := hittable.NewConstantMedium(shortBox, 0.01, pmath.NewVec3(1, 1, 1))

	objects := append(walls, light, smoke, fog)

	s := New("cornell_smoke", cornellCamera(), objects)
	s.BackgroundTop = pmath.Color{}
	s.BackgroundBottom = pmath.Color{}
	s.Config.Width = 400
	s.Config.Height = 400
	s.Config.SamplesPerPixel = 200
	s.Config.MaxDepth = 50
	return s
}
