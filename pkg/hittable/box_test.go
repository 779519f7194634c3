package hittable

import (
	"math"
	"testing"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

func TestBoxHitAxisAlignedFace(t *testing.T) {
	b := NewBox(pmath.NewVec3(0, 0, 0), pmath.Identity, pmath.NewVec3(1, 1, 1), nil)
	ray := pmath.NewRay(pmath.NewVec3(0, 0, -5), pmath.NewVec3(0, 0, 1))

	hit, ok := b.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected hit against box front face")
	}
	if math.Abs(hit.T-4) > 1e-6 {
		t.Errorf("T = %v, want 4", hit.T)
	}
	want := pmath.NewVec3(0, 0, -1)
	if math.Abs(hit.Normal.X-want.X) > 1e-6 || math.Abs(hit.Normal.Y-want.Y) > 1e-6 || math.Abs(hit.Normal.Z-want.Z) > 1e-6 {
		t.Errorf("Normal = %v, want %v", hit.Normal, want)
	}
}

func TestBoxHitRotated(t *testing.T) {
	rot := pmath.NewQuaternionFromAxisAngle(pmath.NewVec3(0, 1, 0), math.Pi/4)
	b := NewBox(pmath.NewVec3(0, 0, 0), rot, pmath.NewVec3(1, 1, 1), nil)
	ray := pmath.NewRay(pmath.NewVec3(0, 0, -10), pmath.NewVec3(0, 0, 1))

	if _, ok := b.Hit(ray, 0.001, math.Inf(1), nil); !ok {
		t.Fatal("expected hit against rotated box")
	}
}

func TestBoxBoundingBoxCoversRotation(t *testing.T) {
	rot := pmath.NewQuaternionFromAxisAngle(pmath.NewVec3(0, 0, 1), math.Pi/4)
	b := NewBox(pmath.NewVec3(0, 0, 0), rot, pmath.NewVec3(1, 1, 1), nil)
	box := b.BoundingBox()

	halfDiag := math.Sqrt2
	if box.Max.X < halfDiag-1e-6 {
		t.Errorf("rotated box bounding extent X = %v, want >= %v", box.Max.X, halfDiag)
	}
}

func TestBoxHitNormalIsUnitAndFacesRay(t *testing.T) {
	b := NewBox(pmath.NewVec3(0, 0, 0), pmath.Identity, pmath.NewVec3(1, 1, 1), nil)
	ray := pmath.NewRay(pmath.NewVec3(3, 0.2, 0.3), pmath.NewVec3(-1, 0, 0))

	hit, ok := b.Hit(ray, 0.001, math.Inf(1), nil)
	if !ok {
		t.Fatal("expected hit against box side face")
	}
	if l := hit.Normal.Length(); math.Abs(l-1) > 1e-6 {
		t.Errorf("normal length = %v, want 1", l)
	}
	if ray.Direction.Dot(hit.Normal) > 0 {
		t.Errorf("normal %v not oriented toward incoming ray %v", hit.Normal, ray.Direction)
	}
}
