package texture

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

// Checker is a 3D checkerboard pattern alternating between two sub-textures
// every period units along each axis.
type Checker struct {
	InvPeriod pmath.Float
	Even, Odd Texture
}

// NewChecker creates a checker texture with the given spatial period and
// two solid colors.
func NewChecker(period pmath.Float, even, odd pmath.Color) *Checker {
	return &Checker{InvPeriod: 1.0 / period, Even: NewSolid(even), Odd: NewSolid(odd)}
}

// Value returns Even or Odd depending on the parity of the sum of the
// floored, period-scaled world coordinates.
func (c *Checker) Value(u, v pmath.Float, p pmath.Vec3) pmath.Color {
	sum := math.Floor(p.X*c.InvPeriod) + math.Floor(p.Y*c.InvPeriod) + math.Floor(p.Z*c.InvPeriod)
	n := int64(sum) % 2
	if n < 0 {
		n += 2
	}
	if n == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
