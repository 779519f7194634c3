package scene

import (
	"testing"

	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

func TestCornellBoxSceneHasOneLight(t *testing.T) {
	s := NewCornellBoxScene()
	root := hittable.NewBvhNode(s.Objects, pmath.NewRNG(1))
	lights := hittable.FetchLights(root)
	if len(lights) != 1 {
		t.Errorf("got %d lights, want 1 ceiling light", len(lights))
	}
}

func TestCornellBoxSceneBuildsAndTracesAHit(t *testing.T) {
	s := NewCornellBoxScene()
	built := s.Build(pmath.NewRNG(1))

	ray := pmath.NewRay(pmath.NewVec3(278, 278, -800), pmath.NewVec3(0, 0, 1))
	if _, ok := built.Root.Hit(ray, 0.001, 1e9, pmath.NewRNG(1)); !ok {
		t.Error("expected a ray toward the box to hit the back wall")
	}
}

func TestCornellSmokeSceneBuilds(t *testing.T) {
	s := NewCornellSmokeScene()
	built := s.Build(pmath.NewRNG(1))
	if built.Root == nil {
		t.Fatal("expected a non-nil BVH root")
	}
}
