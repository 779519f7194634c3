package material

import (
	"github.com/df07/go-pathtrace/pkg/pmath"
	"github.com/df07/go-pathtrace/pkg/texture"
)

// DiffuseLight is an emissive-only material (spec §4.4). It never
// scatters, and emits only on the front face so a one-sided light panel
// (combined with FlipFace) can be aimed into a scene.
type DiffuseLight struct {
	Emit texture.Texture
}

// NewDiffuseLight creates a DiffuseLight material from a texture.
func NewDiffuseLight(emit texture.Texture) *DiffuseLight { return &DiffuseLight{Emit: emit} }

// NewDiffuseLightColor creates a DiffuseLight material from a solid color.
func NewDiffuseLightColor(c pmath.Color) *DiffuseLight {
	return &DiffuseLight{Emit: texture.NewSolid(c)}
}

// Scatter implements Material: a light absorbs every incoming ray.
func (d *DiffuseLight) Scatter(rayIn pmath.Ray, hit HitRecord, rng *pmath.RNG) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// ScatteringPDF implements Material.
func (d *DiffuseLight) ScatteringPDF(rayIn pmath.Ray, hit HitRecord, scattered pmath.Ray) pmath.Float {
	return 0
}

// Emitted implements Material: emission only on the front face (spec §4.4).
func (d *DiffuseLight) Emitted(rayIn pmath.Ray, hit HitRecord, u, v pmath.Float, p pmath.Vec3) pmath.Color {
	if !hit.FrontFace {
		return pmath.Color{}
	}
	return d.Emit.Value(u, v, p)
}

// IsLight implements Material.
func (d *DiffuseLight) IsLight() bool { return true }
