// Package camera implements the thin-lens camera of spec §4.6: mapping a
// screen coordinate (s, t) in [0,1]² to a world-space ray through an
// aperture, with a shutter interval for motion blur.
package camera

import (
	"math"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

// Config describes a camera's placement and lens parameters, following the
// renderer's CameraConfig naming.
type Config struct {
	Center      pmath.Vec3 // lookfrom
	LookAt      pmath.Vec3
	Up          pmath.Vec3
	VFov        pmath.Float // vertical field of view, in degrees
	AspectRatio pmath.Float
	Aperture    pmath.Float // lens diameter; 0 disables depth of field
	FocusDist   pmath.Float // 0 autocalculates as ||LookAt-Center||
	Time0       pmath.Float
	Time1       pmath.Float
}

// Camera casts rays for a pinhole/thin-lens projection. Fields are
// precomputed once from Config so GetRay is a handful of vector ops.
type Camera struct {
	origin          pmath.Vec3
	lowerLeftCorner pmath.Vec3
	horizontal      pmath.Vec3
	vertical        pmath.Vec3
	u, v, w         pmath.Vec3
	lensRadius      pmath.Float
	time0, time1    pmath.Float
}

// NewCamera builds a Camera from cfg. The basis is right-handed
// (u × v = w): w points from the look-at target back toward the camera,
// u = Up × w, and v = w × u is up (spec §4.6).
func NewCamera(cfg Config) *Camera {
	theta := cfg.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := cfg.AspectRatio * halfHeight

	focusDist := cfg.FocusDist
	if focusDist <= 0 {
		focusDist = cfg.LookAt.Subtract(cfg.Center).Length()
		if focusDist == 0 {
			focusDist = 1
		}
	}

	w := cfg.Center.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.Center
	horizontal := u.Multiply(2 * halfWidth * focusDist)
	vertical := v.Multiply(2 * halfHeight * focusDist)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      cfg.Aperture / 2,
		time0:           cfg.Time0,
		time1:           cfg.Time1,
	}
}

// GetRay casts a ray through screen coordinates (s, t) ∈ [0,1]², sampling
// a lens offset when the aperture is non-zero and a shutter time uniform
// in [time0, time1] (spec §4.6).
func (c *Camera) GetRay(s, t pmath.Float, rng *pmath.RNG) pmath.Ray {
	rd := pmath.RandomInUnitDisk(rng).Multiply(c.lensRadius)
	offset := c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	target := c.lowerLeftCorner.Add(c.horizontal.Multiply(s)).Add(c.vertical.Multiply(t))
	direction := target.Subtract(origin)

	time := c.time0
	if c.time1 > c.time0 {
		time = pmath.RandomFloatRange(rng, c.time0, c.time1)
	}
	return pmath.NewRayAt(origin, direction, time)
}

// GetCameraForward returns the camera's forward (viewing) direction.
func (c *Camera) GetCameraForward() pmath.Vec3 { return c.w.Negate() }
