package hittable

import (
	"math"
	"testing"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

func TestHittableListBoundingBoxUnionsMembers(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(pmath.NewVec3(-5, 0, 0), 1, nil))
	list.Add(NewSphere(pmath.NewVec3(5, 0, 0), 1, nil))

	box := list.BoundingBox()
	if box.Min.X > -6+1e-9 || box.Max.X < 6-1e-9 {
		t.Errorf("BoundingBox = %v, want to span both members", box)
	}
}

func TestHittableListHitRequiresBuild(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(pmath.NewVec3(0, 0, -5), 1, nil))

	ray := pmath.NewRay(pmath.NewVec3(0, 0, 0), pmath.NewVec3(0, 0, -1))
	if _, ok := list.Hit(ray, 0.001, math.Inf(1), nil); ok {
		t.Error("expected miss before Build is called")
	}

	list.Build(pmath.NewRNG(1))
	if _, ok := list.Hit(ray, 0.001, math.Inf(1), nil); !ok {
		t.Error("expected hit after Build")
	}
}

func TestHittableListPDFValueAveragesMembers(t *testing.T) {
	list := NewHittableList()
	a := NewSphere(pmath.NewVec3(0, 0, -5), 1, nil)
	b := NewSphere(pmath.NewVec3(100, 100, 100), 1, nil)
	list.Add(a)
	list.Add(b)

	origin := pmath.NewVec3(0, 0, 0)
	dir := pmath.NewVec3(0, 0, -1)

	want := (a.PDFValue(origin, dir) + b.PDFValue(origin, dir)) / 2
	got := list.PDFValue(origin, dir)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("PDFValue = %v, want average %v", got, want)
	}
}

func TestHittableListEmptyPDFValueIsZero(t *testing.T) {
	list := NewHittableList()
	if pdf := list.PDFValue(pmath.NewVec3(0, 0, 0), pmath.NewVec3(0, 0, -1)); pdf != 0 {
		t.Errorf("PDFValue of empty list = %v, want 0", pdf)
	}
}

func TestHittableListSampleDirectionChoosesAMember(t *testing.T) {
	list := NewHittableList()
	a := NewSphere(pmath.NewVec3(-10, 0, 0), 1, nil)
	b := NewSphere(pmath.NewVec3(10, 0, 0), 1, nil)
	list.Add(a)
	list.Add(b)

	origin := pmath.NewVec3(0, 0, 0)
	rng := pmath.NewRNG(11)

	hitA, hitB := false, false
	for i := 0; i < 200; i++ {
		dir := list.SampleDirection(origin, rng)
		if dir.X < 0 {
			hitA = true
		} else {
			hitB = true
		}
	}
	if !hitA || !hitB {
		t.Error("expected SampleDirection to draw from both members over many trials")
	}
}
