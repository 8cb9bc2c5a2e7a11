package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// MockScene implements Scene for testing
type MockScene struct {
	camera     *Camera
	world      core.Shape
	background core.Color
}

func (m MockScene) GetCamera() *Camera        { return m.camera }
func (m MockScene) GetWorld() core.Shape      { return m.world }
func (m MockScene) GetBackground() core.Color { return m.background }

// recordingLogger captures log lines
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

func lookAtCamera(from, at core.Vec3, vfov, aspect float64) *Camera {
	return NewCamera(CameraConfig{
		LookFrom:    from,
		LookAt:      at,
		Up:          core.NewVec3(0, 1, 0),
		VFov:        vfov,
		AspectRatio: aspect,
	})
}

// diffuseTestScene is a small lit scene with enough randomness to catch sampler sharing
func diffuseTestScene() MockScene {
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(2, 1, 0), 1, material.NewDielectric(1.5)),
	)
	return MockScene{
		camera:     lookAtCamera(core.NewVec3(0, 2, 8), core.NewVec3(0, 1, 0), 40, 4.0/3.0),
		world:      world,
		background: core.NewVec3(0.7, 0.8, 1.0),
	}
}

func TestRaytracer_HugeLambertianSphere(t *testing.T) {
	// Every primary ray hits the sphere once and escapes on the second bounce,
	// so each pixel is exactly albedo times the white background
	albedo := core.NewVec3(0.5, 0.25, 0.75)
	scene := MockScene{
		camera:     lookAtCamera(core.NewVec3(0, 0, 2000), core.NewVec3(0, 0, 0), 10, 1.5),
		world:      geometry.NewSphere(core.Vec3{}, 1000, material.NewLambertian(albedo)),
		background: core.NewVec3(1, 1, 1),
	}

	rt := NewRaytracer(scene, 12, 8)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 4, MaxDepth: 2, NumWorkers: 3, Seed: 7})

	img, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := ColorToRGBA(albedo)
	if expected.R != uint8(255.99*math.Sqrt(0.5)) || expected.G != 127 || expected.B != uint8(255.99*math.Sqrt(0.75)) {
		t.Fatalf("Unexpected quantisation of albedo: %v", expected)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 12; x++ {
			if got := img.RGBAAt(x, y); got != expected {
				t.Fatalf("Pixel (%d,%d): expected %v, got %v", x, y, expected, got)
			}
		}
	}

	if stats.Rows != 8 || stats.TotalPixels != 96 || stats.TotalSamples != 384 || stats.AverageSamples != 4 {
		t.Errorf("Unexpected stats %+v", stats)
	}
}

func TestRaytracer_ImageOrientation(t *testing.T) {
	// A glowing floor fills the lower half of the view; the sky is black
	floor := geometry.NewXZRect(-1000, 1000, -1000, 1000, -1, material.NewDiffuseLight(core.NewVec3(1, 1, 1)))
	scene := MockScene{
		camera: lookAtCamera(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 90, 1),
		world:  floor,
	}

	rt := NewRaytracer(scene, 10, 10)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 2, MaxDepth: 1, Seed: 1})
	img, _, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	for x := 0; x < 10; x++ {
		if top := img.RGBAAt(x, 0); top.R != 0 {
			t.Errorf("Top row pixel %d should be sky, got %v", x, top)
		}
		if bottom := img.RGBAAt(x, 9); bottom.R != 255 {
			t.Errorf("Bottom row pixel %d should be floor, got %v", x, bottom)
		}
	}
}

func TestRaytracer_Reproducible(t *testing.T) {
	render := func(workers int, seed int64) *image.RGBA {
		rt := NewRaytracer(diffuseTestScene(), 16, 12)
		rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 4, MaxDepth: 8, NumWorkers: workers, Seed: seed})
		img, _, err := rt.Render(context.Background())
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		return img
	}

	serial := render(1, 42)
	parallel := render(8, 42)
	if string(serial.Pix) != string(parallel.Pix) {
		t.Error("Expected identical output regardless of worker count")
	}

	if other := render(4, 43); string(other.Pix) == string(serial.Pix) {
		t.Error("Expected a different seed to change the noise")
	}
}

func TestRaytracer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rt := NewRaytracer(diffuseTestScene(), 32, 24)
	img, _, err := rt.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if img != nil {
		t.Error("Expected no image from a cancelled render")
	}
}

func TestRaytracer_ProgressLogging(t *testing.T) {
	logger := &recordingLogger{}
	rt := NewRaytracer(diffuseTestScene(), 4, 20)
	rt.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 1, MaxDepth: 2, NumWorkers: 1})
	rt.SetLogger(logger)

	if _, _, err := rt.Render(context.Background()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if len(logger.lines) != 10 {
		t.Fatalf("Expected 10 progress lines, got %d: %v", len(logger.lines), logger.lines)
	}
	if last := logger.lines[len(logger.lines)-1]; !strings.Contains(last, "20/20") {
		t.Errorf("Expected final progress line to report 20/20, got %q", last)
	}

	// A nil logger is silent rather than a panic
	rt.SetLogger(nil)
	if _, _, err := rt.Render(context.Background()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
}

func TestToByte(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected uint8
	}{
		{"zero", 0, 0},
		{"negative clamps to zero", -0.5, 0},
		{"NaN maps to zero", math.NaN(), 0},
		{"quarter is gamma corrected", 0.25, 127},
		{"one clamps below 256", 1, 255},
		{"overexposed clamps", 12.5, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToByte(tt.input); got != tt.expected {
				t.Errorf("ToByte(%f) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}
