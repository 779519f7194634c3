package hittable

import (
	"sort"

	"github.com/df07/go-pathtrace/pkg/material"
	"github.com/df07/go-pathtrace/pkg/pmath"
)

// BvhNode is a binary bounding volume hierarchy node (spec §4.2). Each
// build picks a random split axis and sorts the span of objects along
// it, recursing until one or two objects remain.
type BvhNode struct {
	left, right Hittable
	box         pmath.AABB
}

// NewBvhNode builds a BVH over objects[start:end], consuming (and
// reordering) a private copy of the slice.
func NewBvhNode(objects []Hittable, rng *pmath.RNG) *BvhNode {
	src := make([]Hittable, len(objects))
	copy(src, objects)
	return buildBvhNode(src, 0, len(src), rng)
}

func buildBvhNode(objects []Hittable, start, end int, rng *pmath.RNG) *BvhNode {
	axis := rng.Intn(3)
	span := end - start

	node := &BvhNode{}

	switch {
	case span == 1:
		node.left = objects[start]
	case span == 2:
		if boxCompare(objects[start], objects[start+1], axis) {
			node.left, node.right = objects[start], objects[start+1]
		} else {
			node.left, node.right = objects[start+1], objects[start]
		}
	default:
		sub := objects[start:end]
		sort.Slice(sub, func(i, j int) bool { return boxCompare(sub[i], sub[j], axis) })
		mid := start + span/2
		node.left = buildBvhNode(objects, start, mid, rng)
		node.right = buildBvhNode(objects, mid, end, rng)
	}

	if node.right != nil {
		node.box = node.left.BoundingBox().Union(node.right.BoundingBox())
	} else {
		node.box = node.left.BoundingBox()
	}
	return node
}

func boxCompare(a, b Hittable, axis int) bool {
	return a.BoundingBox().AxisMin(axis) < b.BoundingBox().AxisMin(axis)
}

// Hit implements Hittable.
func (n *BvhNode) Hit(ray pmath.Ray, tMin, tMax pmath.Float, rng *pmath.RNG) (material.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return material.HitRecord{}, false
	}

	hitLeft, okLeft := n.left.Hit(ray, tMin, tMax, rng)
	closest := tMax
	if okLeft {
		closest = hitLeft.T
	}

	if n.right != nil {
		if hitRight, okRight := n.right.Hit(ray, tMin, closest, rng); okRight {
			return hitRight, true
		}
	}
	return hitLeft, okLeft
}

// BoundingBox implements Hittable.
func (n *BvhNode) BoundingBox() pmath.AABB { return n.box }

// PDFValue implements Hittable. BvhNode is never itself used as a
// light-sampling target (only the scene's light list is), so it keeps
// the base-case zero density rather than descending into children.
func (n *BvhNode) PDFValue(origin, wi pmath.Vec3) pmath.Float { return 0 }

// SampleDirection implements Hittable with an arbitrary placeholder
// direction, for the same reason as PDFValue.
func (n *BvhNode) SampleDirection(origin pmath.Vec3, rng *pmath.RNG) pmath.Vec3 {
	return pmath.NewVec3(1, 0, 0)
}

// FetchLights implements lightFetcher.
func (n *BvhNode) FetchLights(lights *[]Hittable) {
	fetchLightsInto(n.left, lights)
	if n.right != nil {
		fetchLightsInto(n.right, lights)
	}
}
