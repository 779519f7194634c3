package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/df07/go-pathtrace/pkg/pmath"
)

// ImageData is a decoded image as a row-major Vec3 color array, the
// shape texture.NewImage consumes (spec §4's image texture).
type ImageData struct {
	Width  int
	Height int
	Pixels []pmath.Color
}

// LoadImage decodes a PNG, JPEG, BMP, or TIFF file into an ImageData.
// PNG/JPEG use the stdlib image registry; BMP/TIFF are registered by
// golang.org/x/image so the same image.Decode call covers all four.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageNotFound, filename, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageDecode, filename, err)
	}

	return toImageData(img), nil
}

// LoadImageResampled decodes filename and bilinearly resamples it to the
// given dimensions via golang.org/x/image/draw, for textures authored at a
// different resolution than the scene requests.
func LoadImageResampled(filename string, width, height int) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageNotFound, filename, err)
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrImageDecode, filename, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	return toImageData(dst), nil
}

func toImageData(img image.Image) *ImageData {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]pmath.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = pmath.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}
}

// EncodeBMP writes img as a BMP, exercising golang.org/x/image's encode
// side alongside its decode-side registration above.
func EncodeBMP(w *os.File, img image.Image) error {
	return bmp.Encode(w, img)
}
