package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	// 45-degree angle onto a horizontal surface
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, -1, 0).Normalize())
	hit := &core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	result, scattered := glass.Scatter(ray, hit, core.NewSeededSampler(42))
	if !scattered {
		t.Error("Dielectric should always scatter")
	}

	expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
	if result.Attenuation != expectedAttenuation {
		t.Errorf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
	}

	// Air to glass at 45° reflects ~5% of the time
	reflections := 0
	refractions := 0
	sampler := core.NewSeededSampler(7)
	for i := 0; i < 2000; i++ {
		result, _ := glass.Scatter(ray, hit, sampler)
		if result.Scattered.Direction.Y > 0 {
			reflections++
		} else {
			refractions++
		}
	}

	if refractions == 0 || reflections == 0 {
		t.Fatalf("Expected both reflection and refraction, got %d/%d", reflections, refractions)
	}
	fraction := float64(reflections) / 2000
	if fraction > 0.15 {
		t.Errorf("Reflection fraction %.3f is too high for 45° air to glass", fraction)
	}
}

func TestDielectricRefractionFollowsSnell(t *testing.T) {
	glass := NewDielectric(1.5)
	direction := core.NewVec3(1, -1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(-1, 1, 0), direction)
	hit := &core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	sampler := core.NewSeededSampler(3)
	for i := 0; i < 200; i++ {
		result, _ := glass.Scatter(ray, hit, sampler)
		out := result.Scattered.Direction.Normalize()
		if out.Y > 0 {
			continue // reflection
		}
		sinIn := math.Abs(direction.X)
		sinOut := math.Abs(out.X)
		if math.Abs(sinOut-sinIn/1.5) > 1e-9 {
			t.Fatalf("Snell's law violated: sin_out=%f, expected %f", sinOut, sinIn/1.5)
		}
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Shallow ray exiting the glass
	rayDirection := core.NewVec3(1, -0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)
	hit := &core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: false,
		Material:  glass,
	}

	cosTheta := -rayDirection.Dot(hit.Normal)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	if 1.5*sinTheta <= 1.0 {
		t.Fatalf("Test setup error: this angle should cause total internal reflection")
	}

	for i := 0; i < 10; i++ {
		result, scattered := glass.Scatter(ray, hit, core.NewSeededSampler(int64(i)))
		if !scattered {
			t.Error("Dielectric should always scatter")
		}

		if result.Scattered.Direction.Y <= 0 {
			t.Errorf("Expected total internal reflection (ray going up), got %+v", result.Scattered.Direction)
		}
		if math.Abs(result.Scattered.Direction.X-rayDirection.X) > 1e-10 {
			t.Errorf("Expected X component %.6f, got %.6f", rayDirection.X, result.Scattered.Direction.X)
		}
	}
}

func TestReflectanceFunction(t *testing.T) {
	// Normal incidence (0°) - should be low for air->glass
	r0 := Reflectance(1.0, 1.0/1.5)
	if r0 < 0.03 || r0 > 0.06 {
		t.Errorf("Normal incidence reflectance = %.3f, expected ~0.04", r0)
	}

	// Grazing incidence (90°) - should be close to 1
	r90 := Reflectance(0.0, 1.0/1.5)
	if r90 < 0.95 {
		t.Errorf("Grazing incidence reflectance = %.3f, expected close to 1.0", r90)
	}

	r45 := Reflectance(0.707, 1.0/1.5)
	if r45 <= r0 || r90 <= r45 {
		t.Errorf("Reflectance should increase with angle: R(0°)=%.3f, R(45°)=%.3f, R(90°)=%.3f", r0, r45, r90)
	}
}
