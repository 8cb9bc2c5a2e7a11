package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/noise"
)

// TestSolidColor tests that a solid color ignores UV and position
func TestSolidColor(t *testing.T) {
	color := core.NewVec3(0.7, 0.3, 0.1)
	solid := NewSolidColor(color)

	testCases := []struct {
		uv    core.Vec2
		point core.Vec3
	}{
		{core.NewVec2(0, 0), core.NewVec3(0, 0, 0)},
		{core.NewVec2(1, 1), core.NewVec3(5, 3, -2)},
		{core.NewVec2(0.5, 0.5), core.NewVec3(-1, -1, -1)},
	}

	for _, tc := range testCases {
		if result := solid.Evaluate(tc.uv, tc.point); result != color {
			t.Errorf("SolidColor at UV%v, Point%v: expected %v, got %v", tc.uv, tc.point, color, result)
		}
	}
}

func TestCheckerTexture(t *testing.T) {
	odd := core.NewVec3(1, 0, 0)
	even := core.NewVec3(0, 0, 1)
	checker := NewCheckerColors(odd, even)

	tests := []struct {
		name     string
		point    core.Vec3
		expected core.Color
	}{
		{"all positive sines", core.NewVec3(0.1, 0.1, 0.1), even},
		{"one negative sine", core.NewVec3(-0.1, 0.1, 0.1), odd},
		{"two negative sines", core.NewVec3(-0.1, -0.1, 0.1), even},
		{"second stripe in x", core.NewVec3(0.4, 0.1, 0.1), odd},
		{"zero product", core.NewVec3(0, 0.1, 0.1), even},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// UV is ignored by the spatial checker
			if got := checker.Evaluate(core.NewVec2(0.3, 0.7), tt.point); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNoiseTexture(t *testing.T) {
	perlin := noise.NewPerlin(core.NewSeededSampler(42))
	texture := NewNoiseTexture(perlin, 4)
	sampler := core.NewSeededSampler(5)

	for i := 0; i < 200; i++ {
		p := core.RandomVec3Range(sampler, -5, 5)
		c := texture.Evaluate(core.Vec2{}, p)

		if c.X != c.Y || c.Y != c.Z {
			t.Fatalf("Noise texture should be grey, got %v", c)
		}
		if c.X < 0 || c.X > 1 {
			t.Fatalf("Noise value %f outside [0, 1]", c.X)
		}

		expected := 0.5 * (1 + math.Sin(4*p.Z+10*perlin.Turbulence(p, noise.DefaultTurbulenceDepth)))
		if math.Abs(c.X-expected) > 1e-12 {
			t.Fatalf("Expected %f, got %f", expected, c.X)
		}
	}
}

func TestDiffuseLight(t *testing.T) {
	emission := core.NewVec3(4, 4, 4)
	light := NewDiffuseLight(emission)

	if _, scatters := light.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), &core.HitRecord{}, core.NewSeededSampler(1)); scatters {
		t.Error("Diffuse light should never scatter")
	}

	if got := core.Emitted(light, core.NewVec2(0.5, 0.5), core.Vec3{}); got != emission {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}

	// Non-emitters contribute black
	if got := core.Emitted(NewLambertian(core.NewVec3(1, 1, 1)), core.Vec2{}, core.Vec3{}); got != (core.Vec3{}) {
		t.Errorf("Expected black emission from lambertian, got %v", got)
	}
}

func TestIsotropic(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.6)
	isotropic := NewIsotropic(NewSolidColor(albedo))
	sampler := core.NewSeededSampler(9)

	hit := &core.HitRecord{Point: core.NewVec3(1, 2, 3)}
	ray := core.NewRayAtTime(core.Vec3{}, core.NewVec3(1, 0, 0), 0.75)

	for i := 0; i < 100; i++ {
		scatter, ok := isotropic.Scatter(ray, hit, sampler)
		if !ok {
			t.Fatal("Isotropic should always scatter")
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if l := scatter.Scattered.Direction.LengthSquared(); l >= 1 || l == 0 {
			t.Fatalf("Direction %v should lie strictly inside the unit sphere", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Origin != hit.Point || scatter.Scattered.Time != 0.75 {
			t.Fatalf("Unexpected scattered ray %+v", scatter.Scattered)
		}
	}
}
