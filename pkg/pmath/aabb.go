package pmath

import "math"

// flatEpsilon inflates a degenerate (zero-extent) axis so slab tests
// never see a zero-volume box (spec §3, §4.3).
const flatEpsilon = 1e-4

// AABB is an axis-aligned bounding box with Min <= Max componentwise.
type AABB struct {
	Min, Max Vec3
}

// NewAABB creates an AABB from explicit corners.
func NewAABB(min, max Vec3) AABB { return AABB{Min: min, Max: max} }

// NewAABBFromPoints returns the smallest AABB enclosing all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Min(min, p)
		max = Max(max, p)
	}
	return AABB{Min: min, Max: max}
}

// Inflate expands any axis with zero extent by flatEpsilon on each side,
// so primitives that lie flat in one dimension (an AARect, a Triangle in
// its own plane) still produce a non-degenerate bounding box.
func (a AABB) Inflate() AABB {
	min, max := a.Min, a.Max
	if max.X-min.X < flatEpsilon {
		min.X -= flatEpsilon
		max.X += flatEpsilon
	}
	if max.Y-min.Y < flatEpsilon {
		min.Y -= flatEpsilon
		max.Y += flatEpsilon
	}
	if max.Z-min.Z < flatEpsilon {
		min.Z -= flatEpsilon
		max.Z += flatEpsilon
	}
	return AABB{Min: min, Max: max}
}

// Hit reports whether the ray's parameter interval [tMin, tMax] intersects
// this box, using the branchless slab test: compute t0/t1 per axis from
// the inverse direction and swap them when invD is negative, rather than
// branching on the sign of the direction.
func (a AABB) Hit(ray Ray, tMin, tMax Float) bool {
	_, ok := a.HitT(ray, tMin, tMax, false)
	return ok
}

// HitT performs the slab test and additionally returns the hit parameter.
// When wantEntry is true the entry parameter (the largest of the three
// per-axis near values) is returned if it lies within [tMin, tMax], and
// the exit parameter otherwise (a ray starting inside the box); when
// wantEntry is false the exit parameter is returned. Box uses
// wantEntry=true to find the surface point of its local-space slab hit
// (spec §4.1).
func (a AABB) HitT(ray Ray, tMin, tMax Float, wantEntry bool) (Float, bool) {
	origin := [3]Float{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dir := [3]Float{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	boxMin := [3]Float{a.Min.X, a.Min.Y, a.Min.Z}
	boxMax := [3]Float{a.Max.X, a.Max.Y, a.Max.Z}

	enter, exit := tMin, tMax
	near := math.Inf(-1)
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / dir[axis]
		t0 := (boxMin[axis] - origin[axis]) * invD
		t1 := (boxMax[axis] - origin[axis]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > near {
			near = t0
		}
		if t0 > enter {
			enter = t0
		}
		if t1 < exit {
			exit = t1
		}
		if exit <= enter {
			return 0, false
		}
	}

	if wantEntry && near >= tMin {
		return enter, true
	}
	return exit, true
}

// Union returns the smallest AABB enclosing both a and b.
func (a AABB) Union(b AABB) AABB {
	return AABB{Min: Min(a.Min, b.Min), Max: Max(a.Max, b.Max)}
}

// Contains reports whether p lies within the box, boundary inclusive.
func (a AABB) Contains(p Vec3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

// Center returns the center point of the box.
func (a AABB) Center() Vec3 { return a.Min.Add(a.Max).Multiply(0.5) }

// Size returns the extent of the box along each axis.
func (a AABB) Size() Vec3 { return a.Max.Subtract(a.Min) }

// AxisMin returns the box's minimum along the given axis (0=X, 1=Y, 2=Z).
func (a AABB) AxisMin(axis int) Float {
	switch axis {
	case 0:
		return a.Min.X
	case 1:
		return a.Min.Y
	default:
		return a.Min.Z
	}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent.
func (a AABB) LongestAxis() int {
	size := a.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// BoundingSphere returns a sphere (center, radius) enclosing the box: the
// box center and the distance from it to a corner.
func (a AABB) BoundingSphere() (Vec3, Float) {
	center := a.Center()
	radius := a.Max.Subtract(center).Length()
	return center, radius
}

// IsValid reports whether Min <= Max on every axis.
func (a AABB) IsValid() bool {
	return a.Min.X <= a.Max.X && a.Min.Y <= a.Max.Y && a.Min.Z <= a.Max.Z
}

// Transform returns the AABB enclosing this box after it is rotated by q
// and translated by pos — the conservative bound used by Box's
// rigid-transform construction (spec §4.3).
func (a AABB) Transform(pos Vec3, q Quaternion) AABB {
	center := a.Center()
	extent := a.Size().Multiply(0.5)
	axis := q.ToMat3()
	rotatedExtent := Vec3{
		X: math.Abs(axis[0].X)*extent.X + math.Abs(axis[0].Y)*extent.Y + math.Abs(axis[0].Z)*extent.Z,
		Y: math.Abs(axis[1].X)*extent.X + math.Abs(axis[1].Y)*extent.Y + math.Abs(axis[1].Z)*extent.Z,
		Z: math.Abs(axis[2].X)*extent.X + math.Abs(axis[2].Y)*extent.Y + math.Abs(axis[2].Z)*extent.Z,
	}
	newCenter := q.RotateVector(center).Add(pos)
	return AABB{Min: newCenter.Subtract(rotatedExtent), Max: newCenter.Add(rotatedExtent)}
}
