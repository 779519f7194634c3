package texture

import (
	"testing"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

func TestSolidIgnoresUVAndPoint(t *testing.T) {
	c := pmath.NewVec3(0.1, 0.2, 0.3)
	s := NewSolid(c)
	if got := s.Value(0.5, 0.9, pmath.NewVec3(10, -5, 2)); got != c {
		t.Errorf("Value() = %v, want %v", got, c)
	}
}

func TestCheckerAlternates(t *testing.T) {
	even := pmath.NewVec3(0.2, 0.3, 0.1)
	odd := pmath.NewVec3(0.9, 0.9, 0.9)
	c := NewChecker(1.0, even, odd)

	if got := c.Value(0, 0, pmath.NewVec3(0.5, 0.5, 0.5)); got != even {
		t.Errorf("Value(0.5,0.5,0.5) = %v, want even %v", got, even)
	}
	if got := c.Value(0, 0, pmath.NewVec3(1.5, 0.5, 0.5)); got != odd {
		t.Errorf("Value(1.5,0.5,0.5) = %v, want odd %v", got, odd)
	}
	// Negative coordinates must still alternate correctly.
	if got := c.Value(0, 0, pmath.NewVec3(-0.5, 0.5, 0.5)); got != odd {
		t.Errorf("Value(-0.5,0.5,0.5) = %v, want odd %v", got, odd)
	}
}

func TestImageValueClampsAndFlipsV(t *testing.T) {
	// 2x2 image: top-left red, top-right green, bottom-left blue, bottom-right white.
	red := pmath.NewVec3(1, 0, 0)
	green := pmath.NewVec3(0, 1, 0)
	blue := pmath.NewVec3(0, 0, 1)
	white := pmath.NewVec3(1, 1, 1)
	img := NewImage(2, 2, []pmath.Color{red, green, blue, white})

	if got := img.Value(0.1, 0.9, pmath.Vec3{}); got != red {
		t.Errorf("top-left sample = %v, want red", got)
	}
	if got := img.Value(0.9, 0.1, pmath.Vec3{}); got != white {
		t.Errorf("bottom-right sample = %v, want white", got)
	}

	// Out-of-range UVs clamp rather than wrap.
	if got := img.Value(-5, 5, pmath.Vec3{}); got != red {
		t.Errorf("clamped sample = %v, want red", got)
	}
}

func TestPerlinDeterministicForSameSeed(t *testing.T) {
	rng1 := pmath.NewRNG(99)
	rng2 := pmath.NewRNG(99)
	p1 := NewPerlin(4, pmath.NewVec3(1, 1, 1), rng1)
	p2 := NewPerlin(4, pmath.NewVec3(1, 1, 1), rng2)

	pt := pmath.NewVec3(1.3, 2.7, -0.4)
	v1 := p1.Value(0, 0, pt)
	v2 := p2.Value(0, 0, pt)
	if v1 != v2 {
		t.Errorf("same-seed Perlin textures diverged: %v vs %v", v1, v2)
	}
}
