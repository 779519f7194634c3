// Package scene assembles a Camera and a tree of hittable primitives into
// a renderable Scene: the BVH root, the extracted lights collection, and
// the image/sampling configuration the dispatcher needs (spec §4.2/§5).
package scene

import (
	"github.com/df07/go-pathtrace/pkg/camera"
	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/integrator"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// RenderConfig holds the image and sampling parameters a scene is
// rendered with (spec §5/§4.9), separate from the scene's geometry so a
// manifest or CLI flags can override it independently.
type RenderConfig struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Seed            int64
}

// Scene bundles a camera, the primitives visible to it, and the render
// configuration used to produce an image.
type Scene struct {
	Name    string
	Camera  *camera.Camera
	Config  RenderConfig
	Objects []hittable.Hittable

	BackgroundTop    pmath.Color
	BackgroundBottom pmath.Color
}

// New builds a Scene from its pieces, applying defaults for an
// unpopulated RenderConfig the way the teacher's scene constructors do.
func New(name string, cam *camera.Camera, objects []hittable.Hittable) *Scene {
	return &Scene{
		Name:             name,
		Camera:           cam,
		Objects:          objects,
		Config:           defaultRenderConfig(),
		BackgroundTop:    pmath.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom: pmath.NewVec3(1.0, 1.0, 1.0),
	}
}

func defaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            1,
	}
}

// Build compiles the scene's objects into a BVH and extracts its lights,
// producing the integrator-facing Scene (spec §4.2: "Scene (conceptual):
// root BVH plus a HittableList of light primitives").
func (s *Scene) Build(rng *pmath.RNG) *integrator.Scene {
	root := hittable.NewBvhNode(s.Objects, rng)

	lights := hittable.NewHittableList()
	for _, l := range hittable.FetchLights(root) {
		lights.Add(l)
	}
	lights.Build(rng)

	return &integrator.Scene{
		Root:             root,
		Lights:           lights,
		BackgroundTop:    s.BackgroundTop,
		BackgroundBottom: s.BackgroundBottom,
	}
}
