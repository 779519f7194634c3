package hittable

import (
	"math"
	"testing"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

func simpleVertex(p pmath.Vec3, n pmath.Vec3) Vertex {
	return Vertex{Position: p, Normal: n, UV: pmath.Vec2{}}
}

func TestTriangleHitMollerTrumbore(t *testing.T) {
	a := simpleVertex(pmath.NewVec3(-1, -1, 0), pmath.NewVec3(0, 0, 1))
	b := simpleVertex(pmath.NewVec3(1, -1, 0), pmath.NewVec3(0, 0, 1))
	c := simpleVertex(pmath.NewVec3(0, 1, 0), pmath.NewVec3(0, 0, 1))
	tri := NewTriangle(a, b, c, nil, false)

	ray := pmath.NewRay(pmath.NewVec3(0, 0, -5), pmath.NewVec3(0, 0, 1))
	hit, ok := tri.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected hit through triangle interior")
	}
	if math.Abs(hit.T-5) > 1e-9 {
		t.Errorf("T = %v, want 5", hit.T)
	}
}

func TestTriangleHitMissesOutsideEdges(t *testing.T) {
	a := simpleVertex(pmath.NewVec3(-1, -1, 0), pmath.NewVec3(0, 0, 1))
	b := simpleVertex(pmath.NewVec3(1, -1, 0), pmath.NewVec3(0, 0, 1))
	c := simpleVertex(pmath.NewVec3(0, 1, 0), pmath.NewVec3(0, 0, 1))
	tri := NewTriangle(a, b, c, nil, false)

	ray := pmath.NewRay(pmath.NewVec3(5, 5, -5), pmath.NewVec3(0, 0, 1))
	if _, ok := tri.Hit(ray, 0.001, math.Inf(1), nil); ok {
		t.Error("expected miss outside triangle bounds")
	}
}

func TestTriangleFlatNormalWhenNotInterpolated(t *testing.T) {
	a := simpleVertex(pmath.NewVec3(-1, -1, 0), pmath.NewVec3(1, 0, 0))
	b := simpleVertex(pmath.NewVec3(1, -1, 0), pmath.NewVec3(0, 1, 0))
	c := simpleVertex(pmath.NewVec3(0, 1, 0), pmath.NewVec3(0, 0, 1))
	tri := NewTriangle(a, b, c, nil, false)

	ray := pmath.NewRay(pmath.NewVec3(0, -0.5, -5), pmath.NewVec3(0, 0, 1))
	hit, ok := tri.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected hit")
	}
	want := pmath.NewVec3(0, 0, -1)
	if math.Abs(hit.Normal.X-want.X) > 1e-9 || math.Abs(hit.Normal.Y-want.Y) > 1e-9 || math.Abs(hit.Normal.Z-want.Z) > 1e-9 {
		t.Errorf("Normal = %v, want flat face normal %v", hit.Normal, want)
	}
}

func TestTriangleInterpolatedNormalDiffersFromFlat(t *testing.T) {
	a := simpleVertex(pmath.NewVec3(-1, -1, 0), pmath.NewVec3(-1, -1, 1).Normalize())
	b := simpleVertex(pmath.NewVec3(1, -1, 0), pmath.NewVec3(1, -1, 1).Normalize())
	c := simpleVertex(pmath.NewVec3(0, 1, 0), pmath.NewVec3(0, 1, 1).Normalize())
	tri := NewTriangle(a, b, c, nil, true)

	ray := pmath.NewRay(pmath.NewVec3(-0.9, -0.9, -5), pmath.NewVec3(0, 0, 1))
	hit, ok := tri.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected hit near vertex a")
	}
	if math.Abs(hit.Normal.X) < 1e-6 {
		t.Errorf("interpolated normal %v should lean toward vertex a's skewed normal", hit.Normal)
	}
}

func TestTriangleTangentIsOrthonormalToNormal(t *testing.T) {
	a := Vertex{Position: pmath.NewVec3(-1, -1, 0), Normal: pmath.NewVec3(0, 0, 1), UV: pmath.Vec2{X: 0, Y: 0}}
	b := Vertex{Position: pmath.NewVec3(1, -1, 0), Normal: pmath.NewVec3(0, 0, 1), UV: pmath.Vec2{X: 1, Y: 0}}
	c := Vertex{Position: pmath.NewVec3(0, 1, 0), Normal: pmath.NewVec3(0, 0, 1), UV: pmath.Vec2{X: 0, Y: 1}}
	tri := NewTriangle(a, b, c, nil, false)

	for _, v := range []Vertex{tri.V0, tri.V1, tri.V2} {
		if math.Abs(v.Tangent.Length()-1) > 1e-9 {
			t.Errorf("Tangent %v not unit length", v.Tangent)
		}
		if math.Abs(v.Tangent.Dot(v.Normal)) > 1e-9 {
			t.Errorf("Tangent %v not orthogonal to Normal %v", v.Tangent, v.Normal)
		}
		if math.Abs(v.Bitangent.Dot(v.Normal)) > 1e-9 {
			t.Errorf("Bitangent %v not orthogonal to Normal %v", v.Bitangent, v.Normal)
		}
		if math.Abs(v.Bitangent.Dot(v.Tangent)) > 1e-9 {
			t.Errorf("Bitangent %v not orthogonal to Tangent %v", v.Bitangent, v.Tangent)
		}
	}
}

func TestTriangleSampleDirectionHitsTriangle(t *testing.T) {
	a := simpleVertex(pmath.NewVec3(-1, -1, -5), pmath.NewVec3(0, 0, 1))
	b := simpleVertex(pmath.NewVec3(1, -1, -5), pmath.NewVec3(0, 0, 1))
	c := simpleVertex(pmath.NewVec3(0, 1, -5), pmath.NewVec3(0, 0, 1))
	tri := NewTriangle(a, b, c, nil, false)

	origin := pmath.NewVec3(0, 0, 0)
	rng := pmath.NewRNG(5)
	for i := 0; i < 50; i++ {
		dir := tri.SampleDirection(origin, rng)
		if _, ok := tri.Hit(pmath.NewRay(origin, dir), 0.001, math.Inf(1), nil); !ok {
			t.Fatalf("sampled direction %v missed the triangle", dir)
		}
	}
}
