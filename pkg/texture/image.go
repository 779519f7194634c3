package texture

import "github.com/df07/go-pathtrace/pkg/pmath"

// Image is a texture backed by a decoded raster image (spec §6): pixel
// lookups clamp u,v to [0,1] and flip v so v=0 is the bottom row of the
// logical image while row 0 of Pixels is the top row as decoded.
type Image struct {
	Width, Height int
	Pixels        []pmath.Color // row-major, Pixels[y*Width+x]
}

// NewImage creates an image texture from decoded row-major pixel data.
func NewImage(width, height int, pixels []pmath.Color) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels}
}

// DebugCyan is the placeholder texture substituted when a texture file
// fails to load (spec §7.1).
var DebugCyan = NewSolid(pmath.NewVec3(0, 1, 1))

// Value samples the nearest texel to (u, v), clamping to [0, 1] rather
// than wrapping.
func (img *Image) Value(u, v pmath.Float, p pmath.Vec3) pmath.Color {
	if len(img.Pixels) == 0 {
		return pmath.Vec3{}
	}
	u = clamp01(u)
	v = clamp01(v)

	x := int(u * pmath.Float(img.Width))
	y := int((1 - v) * pmath.Float(img.Height))
	if x >= img.Width {
		x = img.Width - 1
	}
	if y >= img.Height {
		y = img.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return img.Pixels[y*img.Width+x]
}

func clamp01(x pmath.Float) pmath.Float {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// SampleBilinear performs clamp-to-edge bilinear sampling of the image.
// Value uses nearest-texel lookup and does not call it.
func (img *Image) SampleBilinear(u, v pmath.Float) pmath.Color {
	if len(img.Pixels) == 0 {
		return pmath.Vec3{}
	}
	u = clamp01(u)
	v = clamp01(v)

	fx := u*pmath.Float(img.Width) - 0.5
	fy := (1-v)*pmath.Float(img.Height) - 0.5

	x0 := clampInt(int(floor(fx)), 0, img.Width-1)
	x1 := clampInt(x0+1, 0, img.Width-1)
	y0 := clampInt(int(floor(fy)), 0, img.Height-1)
	y1 := clampInt(y0+1, 0, img.Height-1)

	tx := fx - floor(fx)
	ty := fy - floor(fy)
	if tx < 0 {
		tx = 0
	}
	if ty < 0 {
		ty = 0
	}

	c00 := img.Pixels[y0*img.Width+x0]
	c10 := img.Pixels[y0*img.Width+x1]
	c01 := img.Pixels[y1*img.Width+x0]
	c11 := img.Pixels[y1*img.Width+x1]

	top := pmath.Lerp(c00, c10, tx)
	bottom := pmath.Lerp(c01, c11, tx)
	return pmath.Lerp(top, bottom, ty)
}

func floor(x pmath.Float) pmath.Float {
	i := pmath.Float(int(x))
	if x < 0 && i != x {
		return i - 1
	}
	return i
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
