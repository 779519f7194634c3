// Command pathtrace renders a built-in or YAML-described scene to a PNG
// file using the offline Monte Carlo path tracer.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"time"

	"github.com/df07/go-pathtrace/pkg/dispatcher"
	"github.com/df07/go-pathtrace/pkg/framebuffer"
	"github.com/df07/go-pathtrace/pkg/integrator"
	"github.com/df07/go-pathtrace/pkg/pmath"
	"github.com/df07/go-pathtrace/pkg/scene"
)

// Config holds the command-line configuration for a single render.
type Config struct {
	SceneName       string
	Manifest        string
	ImagePath       string
	MeshPath        string
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	Workers         int
	Seed            int64
	Output          string
}

func parseFlags() Config {
	cfg := Config{}
	flag.StringVar(&cfg.SceneName, "scene", "cornell_box", "built-in scene name")
	flag.StringVar(&cfg.Manifest, "manifest", "", "path to a YAML scene manifest (overrides -scene)")
	flag.StringVar(&cfg.ImagePath, "image", "", "image file for -scene=image_texture (overrides the scene default)")
	flag.StringVar(&cfg.MeshPath, "mesh", "", "OBJ/glTF file for -scene=mesh_scene (overrides the scene default)")
	flag.IntVar(&cfg.Width, "width", 0, "image width (0 = scene default)")
	flag.IntVar(&cfg.Height, "height", 0, "image height (0 = scene default)")
	flag.IntVar(&cfg.SamplesPerPixel, "spp", 0, "samples per pixel (0 = scene default)")
	flag.IntVar(&cfg.MaxDepth, "max-depth", 0, "maximum bounce depth (0 = scene default)")
	flag.IntVar(&cfg.Workers, "workers", 0, "worker count (0 = NumCPU)")
	flag.Int64Var(&cfg.Seed, "seed", 1, "master RNG seed")
	flag.StringVar(&cfg.Output, "out", "render.png", "output PNG path")
	flag.Parse()
	return cfg
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)
	cfg := parseFlags()

	sc, err := loadScene(cfg)
	if err != nil {
		logger.Error("failed to create scene", "error", err)
		os.Exit(1)
	}
	applyOverrides(sc, cfg)

	logger.Info("rendering", "scene", sc.Name, "width", sc.Config.Width, "height", sc.Config.Height,
		"spp", sc.Config.SamplesPerPixel, "maxDepth", sc.Config.MaxDepth)

	start := time.Now()
	img := render(sc, cfg.Workers, logger)
	logger.Info("render complete", "elapsed", time.Since(start))

	if err := writePNG(cfg.Output, img); err != nil {
		logger.Error("failed to write output", "error", err)
		os.Exit(1)
	}
	logger.Info("wrote output", "path", cfg.Output)
}

func loadScene(cfg Config) (*scene.Scene, error) {
	if cfg.Manifest != "" {
		m, err := scene.LoadManifest(cfg.Manifest)
		if err != nil {
			return nil, fmt.Errorf("loading manifest: %w", err)
		}
		return m.Build()
	}
	switch cfg.SceneName {
	case "image_texture":
		if cfg.ImagePath != "" {
			return scene.NewImageTextureScene(cfg.ImagePath), nil
		}
	case "mesh_scene":
		if cfg.MeshPath != "" {
			return scene.NewMeshScene(cfg.MeshPath), nil
		}
	}
	return scene.Lookup(cfg.SceneName)
}

func applyOverrides(sc *scene.Scene, cfg Config) {
	if cfg.Width > 0 {
		sc.Config.Width = cfg.Width
	}
	if cfg.Height > 0 {
		sc.Config.Height = cfg.Height
	}
	if cfg.SamplesPerPixel > 0 {
		sc.Config.SamplesPerPixel = cfg.SamplesPerPixel
	}
	if cfg.MaxDepth > 0 {
		sc.Config.MaxDepth = cfg.MaxDepth
	}
	sc.Config.Seed = cfg.Seed
}

// render splits the image into spans of dispatcher.DefaultSpanSize pixels
// that the worker pool drains; each pixel averages spp camera rays into
// the framebuffer (spec §4.9/§5).
func render(sc *scene.Scene, workers int, logger *slog.Logger) *framebuffer.Buffer {
	width, height := sc.Config.Width, sc.Config.Height
	fb := framebuffer.New(width, height)

	built := sc.Build(pmath.NewRNG(sc.Config.Seed))
	in := integrator.New(sc.Config.MaxDepth)
	spp := sc.Config.SamplesPerPixel

	dispatcher.Run(width, height, dispatcher.DefaultSpanSize, workers, sc.Config.Seed, func(span dispatcher.Span, rng *pmath.RNG) {
		for idx := span.Start; idx < span.End; idx++ {
			x, y := idx%width, idx/width
			var sum pmath.Color
			for s := 0; s < spp; s++ {
				u := (pmath.Float(x) + pmath.RandomFloat(rng)) / pmath.Float(width-1)
				v := (pmath.Float(y) + pmath.RandomFloat(rng)) / pmath.Float(height-1)
				ray := sc.Camera.GetRay(u, v, rng)
				sum = sum.Add(in.RayColor(ray, built, rng))
			}
			fb.Set(x, height-1-y, sum.Divide(pmath.Float(spp)))
		}
	})

	logger.Debug("dispatch complete")
	return fb
}

func writePNG(path string, fb *framebuffer.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, fb.ToRGBA()); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
