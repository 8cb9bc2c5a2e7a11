package renderer

import (
	"context"
	"image"
	"image/color"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Rows rendered concurrently, 0 = runtime.NumCPU()
	Seed            int64 // Base seed for the per-row samplers
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() core.Shape
	GetBackground() core.Color
}

// Raytracer turns a scene into a grid of pixels
type Raytracer struct {
	scene      Scene
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:      scene,
		width:      width,
		height:     height,
		config:     DefaultSamplingConfig(),
		integrator: integrator.NewPathTracingIntegrator(),
		logger:     nopLogger{},
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// SetLogger routes progress output to logger; nil silences it
func (rt *Raytracer) SetLogger(logger core.Logger) {
	if logger == nil {
		logger = nopLogger{}
	}
	rt.logger = logger
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integrator integrator.Integrator) {
	rt.integrator = integrator
}

// Render produces the full image. Rows are rendered in parallel, each with its
// own sampler seeded from (Seed, row), so the output does not depend on scheduling.
// Cancelling ctx aborts the render and returns ctx's error with no image.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	workers := rt.config.NumWorkers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var rowsDone atomic.Int64
	progressStep := int64(max(1, rt.height/10))

	// j counts rows from the bottom of the image
	for j := rt.height - 1; j >= 0; j-- {
		j := j // per-iteration copy (go directive is below 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rt.renderRow(j, img)

			if done := rowsDone.Add(1); done%progressStep == 0 || done == int64(rt.height) {
				rt.logger.Printf("Rendered %d/%d rows (%.0f%%)\n", done, rt.height, 100*float64(done)/float64(rt.height))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return nil, RenderStats{}, err
	}

	totalPixels := rt.width * rt.height
	stats := RenderStats{
		Rows:         rt.height,
		TotalPixels:  totalPixels,
		TotalSamples: totalPixels * rt.config.SamplesPerPixel,
		Elapsed:      time.Since(start),
	}
	if totalPixels > 0 {
		stats.AverageSamples = float64(stats.TotalSamples) / float64(totalPixels)
	}
	return img, stats, nil
}

// renderRow renders image row j (counted from the bottom) into img row height-1-j
func (rt *Raytracer) renderRow(j int, img *image.RGBA) {
	sampler := core.NewSeededSampler(rowSeed(rt.config.Seed, j))
	camera := rt.scene.GetCamera()
	world := rt.scene.GetWorld()
	background := rt.scene.GetBackground()

	// A single column or row maps to s = i + U rather than dividing by zero
	sDenom := float64(max(1, rt.width-1))
	tDenom := float64(max(1, rt.height-1))

	y := rt.height - 1 - j
	for i := 0; i < rt.width; i++ {
		var pixel PixelStats
		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			s := (float64(i) + sampler.Get1D()) / sDenom
			t := (float64(j) + sampler.Get1D()) / tDenom

			ray := camera.GetRay(s, t, sampler)
			pixel.AddSample(rt.integrator.RayColor(ray, world, background, rt.config.MaxDepth, sampler))
		}
		img.SetRGBA(i, y, ColorToRGBA(pixel.GetColor()))
	}
}

// rowSeed mixes the base seed with the row index
func rowSeed(seed int64, row int) int64 {
	return seed*1_000_003 + int64(row)
}

// ToByte gamma-corrects (gamma 2) a linear channel value and quantises it to 0..255
func ToByte(c float64) uint8 {
	// NaN fails both comparisons and is mapped to zero
	if !(c > 0) {
		return 0
	}
	c = math.Min(c, 0.999)
	return uint8(255.99 * math.Sqrt(c))
}

// ColorToRGBA converts an averaged linear color to an opaque RGBA pixel
func ColorToRGBA(c core.Color) color.RGBA {
	return color.RGBA{
		R: ToByte(c.X),
		G: ToByte(c.Y),
		B: ToByte(c.Z),
		A: 255,
	}
}
