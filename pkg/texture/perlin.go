package texture

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

const perlinPointCount = 256

// perlinNoise implements improved Perlin noise with trilinear-interpolated,
// Hermite-smoothed gradient vectors (grounded on
// _examples/original_source/src/perlin.h).
type perlinNoise struct {
	randomVectors [perlinPointCount]pmath.Vec3
	permX, permY, permZ [perlinPointCount]int
}

func newPerlinNoise(rng *pmath.RNG) *perlinNoise {
	p := &perlinNoise{}
	for i := 0; i < perlinPointCount; i++ {
		p.randomVectors[i] = pmath.NewVec3(
			pmath.RandomFloatRange(rng, -1, 1),
			pmath.RandomFloatRange(rng, -1, 1),
			pmath.RandomFloatRange(rng, -1, 1),
		).Normalize()
	}
	generatePermutation(&p.permX, rng)
	generatePermutation(&p.permY, rng)
	generatePermutation(&p.permZ, rng)
	return p
}

func generatePermutation(perm *[perlinPointCount]int, rng *pmath.RNG) {
	for i := range perm {
		perm[i] = i
	}
	for i := perlinPointCount - 1; i > 0; i-- {
		target := rng.Intn(i + 1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns a smoothed, gradient-interpolated noise value in [-1, 1].
func (p *perlinNoise) Noise(pt pmath.Vec3) pmath.Float {
	u := pt.X - math.Floor(pt.X)
	v := pt.Y - math.Floor(pt.Y)
	w := pt.Z - math.Floor(pt.Z)

	i := int(math.Floor(pt.X))
	j := int(math.Floor(pt.Y))
	k := int(math.Floor(pt.Z))

	var c [2][2][2]pmath.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := p.permX[(i+di)&255] ^ p.permY[(j+dj)&255] ^ p.permZ[(k+dk)&255]
				c[di][dj][dk] = p.randomVectors[idx]
			}
		}
	}

	return perlinInterp(c, u, v, w)
}

func perlinInterp(c [2][2][2]pmath.Vec3, u, v, w pmath.Float) pmath.Float {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	var accum pmath.Float
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := pmath.NewVec3(u-pmath.Float(i), v-pmath.Float(j), w-pmath.Float(k))
				fi, fj, fk := pmath.Float(i), pmath.Float(j), pmath.Float(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// Turb returns turbulence (fractal Brownian motion over Noise) with the
// given recursion depth.
func (p *perlinNoise) Turb(pt pmath.Vec3, depth int) pmath.Float {
	var accum pmath.Float
	temp := pt
	weight := pmath.Float(1)
	for i := 0; i < depth; i++ {
		accum += weight * p.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}
	return math.Abs(accum)
}

// Perlin is a marbled, turbulence-modulated procedural texture.
type Perlin struct {
	noise *perlinNoise
	Scale pmath.Float
	Color pmath.Color
}

// NewPerlin creates a Perlin marble texture with the given spatial scale
// and base color, seeded from rng.
func NewPerlin(scale pmath.Float, color pmath.Color, rng *pmath.RNG) *Perlin {
	return &Perlin{noise: newPerlinNoise(rng), Scale: scale, Color: color}
}

// Value returns a marbled color driven by sin(scale*z + 10*turbulence).
func (p *Perlin) Value(u, v pmath.Float, pt pmath.Vec3) pmath.Color {
	marble := 1 + math.Sin(p.Scale*pt.Z+10*p.noise.Turb(pt, 7))
	return p.Color.Multiply(0.5 * marble)
}
