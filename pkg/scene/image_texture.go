package scene

import (
	"log/slog"

	"github.com/df07/go-pathtrace/pkg/camera"
	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/loaders"
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
	"github.com/df07/go-pathtrace/pkg/texture"
)

// DefaultImagePath is the asset NewImageTextureScene loads when used as
// a builtin scene with no path override (e.g. via the CLI's -image flag).
const DefaultImagePath = "assets/earthmap.jpg"

// NewImageTextureScene wraps a sphere in an image texture decoded from
// imagePath, exercising loaders.LoadImage end to end (spec §7.1: a
// decode failure here still renders, with the texture substituted by
// debug cyan).
func NewImageTextureScene(imagePath string) *Scene {
	cam := camera.NewCamera(camera.Config{
		Center:      pmath.NewVec3(0, 0, 3),
		LookAt:      pmath.NewVec3(0, 0, 0),
		Up:          pmath.NewVec3(0, 1, 0),
		VFov:        30.0,
		AspectRatio: 16.0 / 9.0,
	})

	mat := material.NewLambert(imageTextureOrDebugCyan(imagePath))
	sphere := hittable.NewSphere(pmath.NewVec3(0, 0, 0), 1.5, mat)
	light := hittable.NewSphere(pmath.NewVec3(0, 5, 5), 1.0, material.NewDiffuseLightColor(pmath.NewVec3(8, 8, 8)))

	s := New("image_texture", cam, []hittable.Hittable{sphere, light})
	s.Config.SamplesPerPixel = 150
	return s
}

// imageTextureOrDebugCyan implements spec §7.1's recovery rule: a failed
// texture decode is logged and replaced with flat debug cyan rather than
// aborting the whole scene.
func imageTextureOrDebugCyan(path string) texture.Texture {
	data, err := loaders.LoadImage(path)
	if err != nil {
		slog.Default().Warn("scene: image texture failed to load, using debug cyan", "path", path, "error", err)
		return texture.DebugCyan
	}
	return texture.NewImage(data.Width, data.Height, data.Pixels)
}
