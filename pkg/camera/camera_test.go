package camera

import (
	"math"
	"testing"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

func TestCameraForwardPointsAtLookAt(t *testing.T) {
	cfg := Config{
		Center:      pmath.NewVec3(0, 0, 0),
		LookAt:      pmath.NewVec3(0, 0, -1),
		Up:          pmath.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        45.0,
	}
	cam := NewCamera(cfg)

	forward := cam.GetCameraForward()
	expected := pmath.NewVec3(0, 0, -1)
	if math.Abs(forward.X-expected.X) > 1e-9 ||
		math.Abs(forward.Y-expected.Y) > 1e-9 ||
		math.Abs(forward.Z-expected.Z) > 1e-9 {
		t.Errorf("expected forward %v, got %v", expected, forward)
	}
}

// TestCameraRoundTrip checks spec §8's camera round-trip property: with a
// closed aperture, rays at the four corners and center of the screen all
// originate at lookfrom and point into the expected frustum quadrant.
func TestCameraRoundTrip(t *testing.T) {
	cfg := Config{
		Center:      pmath.NewVec3(0, 0, 3),
		LookAt:      pmath.NewVec3(0, 0, 0),
		Up:          pmath.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        90.0,
		Aperture:    0,
	}
	cam := NewCamera(cfg)
	rng := pmath.NewRNG(1)

	corners := []struct {
		s, t              pmath.Float
		wantNegX, wantPosY bool
	}{
		{0, 0, true, false},
		{1, 0, false, false},
		{0, 1, true, true},
		{1, 1, false, true},
	}

	for _, c := range corners {
		ray := cam.GetRay(c.s, c.t, rng)
		if ray.Origin != cfg.Center {
			t.Errorf("s=%v t=%v: origin = %v, want %v (aperture 0 must not jitter origin)", c.s, c.t, ray.Origin, cfg.Center)
		}
		if negX := ray.Direction.X < 0; negX != c.wantNegX {
			t.Errorf("s=%v t=%v: direction.X = %v, wantNegX=%v", c.s, c.t, ray.Direction.X, c.wantNegX)
		}
		if posY := ray.Direction.Y > 0; posY != c.wantPosY {
			t.Errorf("s=%v t=%v: direction.Y = %v, wantPosY=%v", c.s, c.t, ray.Direction.Y, c.wantPosY)
		}
	}

	center := cam.GetRay(0.5, 0.5, rng)
	if math.Abs(center.Direction.X) > 1e-9 || math.Abs(center.Direction.Y) > 1e-9 {
		t.Errorf("center ray direction = %v, want aligned with forward axis", center.Direction)
	}
	if center.Direction.Z >= 0 {
		t.Errorf("center ray direction.Z = %v, want negative (toward lookat)", center.Direction.Z)
	}
}

func TestCameraShutterTimeWithinInterval(t *testing.T) {
	cfg := Config{
		Center:      pmath.NewVec3(0, 0, 0),
		LookAt:      pmath.NewVec3(0, 0, -1),
		Up:          pmath.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        45.0,
		Time0:       0.2,
		Time1:       0.8,
	}
	cam := NewCamera(cfg)
	rng := pmath.NewRNG(7)

	for i := 0; i < 200; i++ {
		ray := cam.GetRay(0.5, 0.5, rng)
		if ray.Time < cfg.Time0 || ray.Time > cfg.Time1 {
			t.Fatalf("ray.Time = %v outside [%v, %v]", ray.Time, cfg.Time0, cfg.Time1)
		}
	}
}

func TestCameraApertureJitterStaysWithinLensRadius(t *testing.T) {
	cfg := Config{
		Center:      pmath.NewVec3(0, 0, 0),
		LookAt:      pmath.NewVec3(0, 0, -1),
		Up:          pmath.NewVec3(0, 1, 0),
		AspectRatio: 1.0,
		VFov:        45.0,
		Aperture:    2.0,
		FocusDist:   1.0,
	}
	cam := NewCamera(cfg)
	rng := pmath.NewRNG(3)

	for i := 0; i < 200; i++ {
		ray := cam.GetRay(0.5, 0.5, rng)
		offset := ray.Origin.Subtract(cfg.Center)
		if offset.Length() > cfg.Aperture/2+1e-9 {
			t.Fatalf("lens offset %v exceeds lens radius %v", offset.Length(), cfg.Aperture/2)
		}
	}
}
