package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/df07/go-pathtrace/pkg/camera"
	"github.com/df07/go-pathtrace/pkg/hittable"
	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// Manifest is a declarative scene description loaded from YAML,
// parallel to the Go scene-constructor functions: every field maps
// directly onto a Scene/Camera/primitive so a scene can be authored
// without writing Go.
type Manifest struct {
	Name   string           `yaml:"name"`
	Camera ManifestCamera    `yaml:"camera"`
	Config RenderConfig     `yaml:"config"`
	Spheres []ManifestSphere `yaml:"spheres"`
}

// ManifestCamera mirrors camera.Config with YAML tags.
type ManifestCamera struct {
	Center      [3]pmath.Float `yaml:"center"`
	LookAt      [3]pmath.Float `yaml:"look_at"`
	Up          [3]pmath.Float `yaml:"up"`
	VFov        pmath.Float    `yaml:"vfov"`
	AspectRatio pmath.Float    `yaml:"aspect_ratio"`
	Aperture    pmath.Float    `yaml:"aperture"`
	FocusDist   pmath.Float    `yaml:"focus_dist"`
}

// ManifestSphere describes one sphere primitive and its material.
type ManifestSphere struct {
	Center   [3]pmath.Float `yaml:"center"`
	Radius   pmath.Float    `yaml:"radius"`
	Material ManifestMaterial `yaml:"material"`
}

// ManifestMaterial picks one of the built-in material kinds by name.
type ManifestMaterial struct {
	Kind  string         `yaml:"kind"` // lambert, metal, dielectric, light
	Color [3]pmath.Float `yaml:"color"`
	Fuzz  pmath.Float    `yaml:"fuzz"`
	IOR   pmath.Float    `yaml:"ior"`
}

func vec3(a [3]pmath.Float) pmath.Vec3 { return pmath.NewVec3(a[0], a[1], a[2]) }

func (m ManifestMaterial) build() (material.Material, error) {
	c := vec3(m.Color)
	switch m.Kind {
	case "", "lambert":
		return material.NewLambertColor(c), nil
	case "metal":
		return material.NewMetal(c, m.Fuzz), nil
	case "dielectric":
		return material.NewDielectric(m.IOR), nil
	case "light":
		return material.NewDiffuseLightColor(c), nil
	default:
		return nil, fmt.Errorf("unknown material kind %q", m.Kind)
	}
}

// LoadManifest reads and parses a YAML scene manifest.
func LoadManifest(filename string) (*Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", filename, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", filename, err)
	}
	return &m, nil
}

// Build converts the manifest into a renderable Scene.
func (m *Manifest) Build() (*Scene, error) {
	cam := camera.NewCamera(camera.Config{
		Center:      vec3(m.Camera.Center),
		LookAt:      vec3(m.Camera.LookAt),
		Up:          vec3(m.Camera.Up),
		VFov:        m.Camera.VFov,
		AspectRatio: m.Camera.AspectRatio,
		Aperture:    m.Camera.Aperture,
		FocusDist:   m.Camera.FocusDist,
	})

	objects := make([]hittable.Hittable, 0, len(m.Spheres))
	for i, s := range m.Spheres {
		mat, err := s.Material.build()
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		objects = append(objects, hittable.NewSphere(vec3(s.Center), s.Radius, mat))
	}

	scn := New(m.Name, cam, objects)
	if (m.Config != RenderConfig{}) {
		scn.Config = m.Config
	}
	return scn, nil
}
