// Package framebuffer implements the typed 2D image buffer of spec §4.10:
// row-major storage with bilinear sampling and a gamma-corrected 8-bit
// writeback to a stdlib image.RGBA.
package framebuffer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

// Buffer is a row-major 2D array of linear-color pixels. The render loop
// in cmd/pathtrace writes it with Set and encodes it through ToRGBA;
// Sample is a standalone bilinear lookup.
type Buffer struct {
	Width, Height int
	pixels        []pmath.Color
}

// New creates a zero-filled Buffer of the given dimensions.
func New(width, height int) *Buffer {
	return &Buffer{Width: width, Height: height, pixels: make([]pmath.Color, width*height)}
}

func (b *Buffer) index(x, y int) int { return y*b.Width + x }

// Get returns the pixel at (x, y).
func (b *Buffer) Get(x, y int) pmath.Color { return b.pixels[b.index(x, y)] }

// Set stores the pixel at (x, y). The dispatcher guarantees disjoint spans
// never write the same (x, y), so Set needs no synchronization (spec §5).
func (b *Buffer) Set(x, y int, c pmath.Color) { b.pixels[b.index(x, y)] = c }

// Fill overwrites every pixel with c.
func (b *Buffer) Fill(c pmath.Color) {
	for i := range b.pixels {
		b.pixels[i] = c
	}
}

// Sample bilinearly samples the buffer at normalized coordinates (u, v),
// clamping to the edge outside [0,1].
func (b *Buffer) Sample(u, v pmath.Float) pmath.Color {
	x := u*pmath.Float(b.Width) - 0.5
	y := v*pmath.Float(b.Height) - 0.5

	x0 := int(math.Floor(x))
	y0 := int(math.Floor(y))
	fx := x - pmath.Float(x0)
	fy := y - pmath.Float(y0)

	clampX := func(v int) int {
		if v < 0 {
			return 0
		}
		if v >= b.Width {
			return b.Width - 1
		}
		return v
	}
	clampY := func(v int) int {
		if v < 0 {
			return 0
		}
		if v >= b.Height {
			return b.Height - 1
		}
		return v
	}

	c00 := b.Get(clampX(x0), clampY(y0))
	c10 := b.Get(clampX(x0+1), clampY(y0))
	c01 := b.Get(clampX(x0), clampY(y0+1))
	c11 := b.Get(clampX(x0+1), clampY(y0+1))

	top := pmath.Lerp(c00, c10, fx)
	bottom := pmath.Lerp(c01, c11, fx)
	return pmath.Lerp(top, bottom, fy)
}

// linearToSRGB applies the linear→sRGB approximation of spec §4.8.
func linearToSRGB(l pmath.Float) pmath.Float {
	if l <= 0 {
		return 0
	}
	return l * (1.055*math.Pow(l, 1.0/2.4) - 0.055)
}

// quantize clamps an sRGB-encoded value to [0, 0.999] and converts it to
// an 8-bit channel as floor(256*x) (spec §4.8).
func quantize(x pmath.Float) uint8 {
	if x < 0 {
		x = 0
	}
	if x > 0.999 {
		x = 0.999
	}
	return uint8(256 * x)
}

// ToRGBA renders the buffer into a top-left-origin *image.RGBA, sanitizing
// NaN/Inf components to zero, gamma-encoding, and quantizing each channel
// (spec §4.8, §6). Output row y is stored row y: the buffer is addressed
// with y=0 at the top of the image, so callers that walk camera rows
// upward store row j at (height-1)-j, as cmd/pathtrace does.
func (b *Buffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.Get(x, y).Sanitize()
			img.SetRGBA(x, y, color.RGBA{
				R: quantize(linearToSRGB(c.X)),
				G: quantize(linearToSRGB(c.Y)),
				B: quantize(linearToSRGB(c.Z)),
				A: 255,
			})
		}
	}
	return img
}
