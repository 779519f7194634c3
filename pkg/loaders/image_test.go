package loaders

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-pathtrace/pkg/pmath"
)

func writeTestPNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode PNG: %v", err)
	}
}

func TestLoadImageDecodesPNGPixels(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.png")
	writeTestPNG(t, testFile)

	data, err := LoadImage(testFile)
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if data.Width != 2 || data.Height != 2 {
		t.Errorf("got %dx%d, want 2x2", data.Width, data.Height)
	}
	if len(data.Pixels) != 4 {
		t.Errorf("got %d pixels, want 4", len(data.Pixels))
	}

	check := func(name string, got, want pmath.Color) {
		const tol = 0.01
		if math.Abs(got.X-want.X) > tol || math.Abs(got.Y-want.Y) > tol || math.Abs(got.Z-want.Z) > tol {
			t.Errorf("%s: got %v, want %v", name, got, want)
		}
	}
	check("top-left", data.Pixels[0], pmath.NewVec3(1, 1, 1))
	check("top-right", data.Pixels[1], pmath.NewVec3(1, 0, 0))
	check("bottom-left", data.Pixels[2], pmath.NewVec3(0, 1, 0))
	check("bottom-right", data.Pixels[3], pmath.NewVec3(0, 0, 1))
}

func TestLoadImageMissingFileWrapsSentinel(t *testing.T) {
	_, err := LoadImage("nonexistent.png")
	if !errors.Is(err, ErrImageNotFound) {
		t.Errorf("got %v, want wrapped ErrImageNotFound", err)
	}
}

func TestLoadImageResampledChangesDimensions(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.png")
	writeTestPNG(t, testFile)

	data, err := LoadImageResampled(testFile, 8, 8)
	if err != nil {
		t.Fatalf("LoadImageResampled failed: %v", err)
	}
	if data.Width != 8 || data.Height != 8 {
		t.Errorf("got %dx%d, want 8x8", data.Width, data.Height)
	}
	if len(data.Pixels) != 64 {
		t.Errorf("got %d pixels, want 64", len(data.Pixels))
	}
}
