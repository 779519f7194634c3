package pmath

// Ray is a parameterized line with a time stamp for motion blur (spec §3).
// Direction need not be unit length except where a primitive's contract
// says otherwise.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      Float
}

// NewRay creates a ray with time 0.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// NewRayAt creates a ray stamped with the given time.
func NewRayAt(origin, direction Vec3, time Float) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t Float) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
