// Package texture implements the Value(u,v,p) -> RGB contract (spec §3)
// consumed by materials: solid colors, a checker pattern, Perlin noise,
// and image-backed textures.
package texture

import "github.com/df07/go-pathtrace/pkg/pmath"

// Texture maps a surface parameterization and world point to a color.
type Texture interface {
	Value(u, v pmath.Float, p pmath.Vec3) pmath.Color
}

// Solid is a constant-color texture.
type Solid struct {
	Color pmath.Color
}

// NewSolid creates a solid-color texture.
func NewSolid(c pmath.Color) *Solid { return &Solid{Color: c} }

// Value returns the constant color, ignoring uv and p.
func (s *Solid) Value(u, v pmath.Float, p pmath.Vec3) pmath.Color { return s.Color }
