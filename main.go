package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/output"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// errHelp reports that usage was printed and nothing should be rendered
var errHelp = errors.New("help requested")

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stdout)
	if errors.Is(err, errHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs builds the render configuration from an optional TOML file
// and the command line. Flags given explicitly override the file.
func parseArgs(args []string, stdout io.Writer) (config.RenderConfig, error) {
	defaults := config.Default()

	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(stdout)

	configPath := fs.String("config", "", "TOML render configuration file")
	sceneName := fs.String("scene", defaults.Scene, "Scene preset: "+strings.Join(scene.Names(), ", "))
	width := fs.Int("width", 0, "Image width in pixels (0 = scene recommendation)")
	samples := fs.Int("samples", 0, "Samples per pixel (0 = scene recommendation)")
	depth := fs.Int("depth", 0, "Maximum ray bounce depth (0 = scene recommendation)")
	workers := fs.Int("workers", 0, "Rows rendered concurrently (0 = one per CPU)")
	seed := fs.Int64("seed", defaults.Seed, "Base random seed")
	out := fs.String("out", defaults.Output, "Output file; the extension picks the format")
	supersample := fs.Int("supersample", defaults.Supersample, "Render k times larger and downsample (1-8)")
	texture := fs.String("texture", defaults.Texture, "Image file for the earth texture")
	printConfig := fs.Bool("print-config", false, "Print the resolved configuration as TOML and exit")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return config.RenderConfig{}, errHelp
		}
		return config.RenderConfig{}, err
	}

	if *help {
		printUsage(fs, stdout)
		return config.RenderConfig{}, errHelp
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.RenderConfig{}, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneName
		case "width":
			cfg.Width = *width
		case "samples":
			cfg.Samples = *samples
		case "depth":
			cfg.Depth = *depth
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		case "out":
			cfg.Output = *out
		case "supersample":
			cfg.Supersample = *supersample
		case "texture":
			cfg.Texture = *texture
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.RenderConfig{}, err
	}
	if _, err := output.FormatFor(cfg.Output); err != nil {
		return config.RenderConfig{}, err
	}

	if *printConfig {
		if err := cfg.Encode(stdout); err != nil {
			return config.RenderConfig{}, err
		}
		return config.RenderConfig{}, errHelp
	}
	return cfg, nil
}

func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Path Tracer")
	fmt.Fprintln(w, "Usage: pathtracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, name := range scene.Names() {
		desc, _ := scene.Describe(name)
		fmt.Fprintf(w, "  %-19s %s\n", name, desc)
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, "Config file:")
	fmt.Fprint(w, config.ConfigHelp+"\n")
}

// resolveSampling fills zero fields of cfg from the scene's recommendations
func resolveSampling(cfg config.RenderConfig, s *scene.Scene) (width, height int, sampling renderer.SamplingConfig) {
	width = cfg.Width
	if width == 0 {
		width = s.Width
	}

	sampling = s.SamplingConfig
	if cfg.Samples > 0 {
		sampling.SamplesPerPixel = cfg.Samples
	}
	if cfg.Depth > 0 {
		sampling.MaxDepth = cfg.Depth
	}
	sampling.NumWorkers = cfg.Workers
	sampling.Seed = cfg.Seed

	return width, s.HeightFor(width), sampling
}

// run builds the scene, renders it and writes the image
func run(ctx context.Context, cfg config.RenderConfig, logger core.Logger) error {
	s, err := scene.New(cfg.Scene, scene.Options{Seed: cfg.Seed, TexturePath: cfg.Texture})
	if err != nil {
		return err
	}

	width, height, sampling := resolveSampling(cfg, s)
	k := cfg.Supersample

	logger.Printf("Rendering %s at %dx%d (%d spp, depth %d", s.Name, width, height, sampling.SamplesPerPixel, sampling.MaxDepth)
	if k > 1 {
		logger.Printf(", %dx supersampled", k)
	}
	logger.Printf(")\n")

	raytracer := renderer.NewRaytracer(s, width*k, height*k)
	raytracer.SetSamplingConfig(sampling)
	raytracer.SetLogger(logger)

	startTime := time.Now()
	rendered, stats, err := raytracer.Render(ctx)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	renderTime := time.Since(startTime)

	var img image.Image = rendered
	if k > 1 {
		img = output.Downsample(rendered, width, height)
	}

	if err := output.Save(cfg.Output, img); err != nil {
		return err
	}

	logger.Printf("Render completed in %v (%d samples)\n", renderTime.Round(time.Millisecond), stats.TotalSamples)
	logger.Printf("Average luminance: %.3f\n", renderer.CalculateAverageLuminance(rendered))
	logger.Printf("Render saved as %s\n", cfg.Output)
	return nil
}
