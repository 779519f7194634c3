package scene

import "fmt"

// Builtin maps a scene name to its constructor, the set `cmd/pathtrace`
// selects from via its -scene flag.
var Builtin = map[string]func() *Scene{
	"cornell_box":    NewCornellBoxScene,
	"cornell_smoke":  NewCornellSmokeScene,
	"simple_light":   NewSimpleLightScene,
	"motion_blur":    NewMotionBlurScene,
	"perlin_spheres": NewPerlinSpheresScene,
	"final_scene":    func() *Scene { return NewFinalScene(1) },
	"image_texture":  func() *Scene { return NewImageTextureScene(DefaultImagePath) },
	"mesh_scene":     func() *Scene { return NewMeshScene(DefaultMeshPath) },
}

// Lookup returns the named builtin scene, or an error listing the valid
// names if it isn't registered.
func Lookup(name string) (*Scene, error) {
	ctor, ok := Builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (builtins: %v)", name, builtinNames())
	}
	return ctor(), nil
}

func builtinNames() []string {
	names := make([]string, 0, len(Builtin))
	for name := range Builtin {
		names = append(names, name)
	}
	return names
}
