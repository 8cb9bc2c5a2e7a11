package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DummyMaterial never scatters; geometry tests only care about identity
type DummyMaterial struct{}

func (DummyMaterial) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "front face hit",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "back face hit",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, -1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection), 0.001, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if !vecNear(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != (DummyMaterial{}) {
				t.Errorf("Expected the sphere's material on the hit record")
			}
		})
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, DummyMaterial{})
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0.001, 0.5); isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}
	if hit, isHit := sphere.Hit(ray, 3.5, 1000.0); isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Near root excluded: fall back to the far root
	hit, isHit := sphere.Hit(ray, 1.5, 1000.0)
	if !isHit || math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root at t=3, got %v %v", hit, isHit)
	}
}

func TestSphere_UV(t *testing.T) {
	tests := []struct {
		name   string
		normal core.Vec3
		uv     core.Vec2
	}{
		{"+x", core.NewVec3(1, 0, 0), core.NewVec2(0.5, 0.5)},
		{"+y", core.NewVec3(0, 1, 0), core.NewVec2(0.5, 1.0)},
		{"-y", core.NewVec3(0, -1, 0), core.NewVec2(0.5, 0.0)},
		{"+z", core.NewVec3(0, 0, 1), core.NewVec2(0.25, 0.5)},
		{"-z", core.NewVec3(0, 0, -1), core.NewVec2(0.75, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uv := SphereUV(tt.normal)
			if math.Abs(uv.X-tt.uv.X) > 1e-9 || math.Abs(uv.Y-tt.uv.Y) > 1e-9 {
				t.Errorf("Expected UV %v, got %v", tt.uv, uv)
			}
		})
	}

	// The hit record carries the UV of the outward normal
	sphere := NewSphere(core.NewVec3(5, 0, 0), 2.0, DummyMaterial{})
	hit, _ := sphere.Hit(core.NewRay(core.NewVec3(5, 0, 10), core.NewVec3(0, 0, -1)), 0.001, math.Inf(1))
	if math.Abs(hit.UV.X-0.25) > 1e-9 || math.Abs(hit.UV.Y-0.5) > 1e-9 {
		t.Errorf("Expected hit UV (0.25, 0.5), got %v", hit.UV)
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 0.5, DummyMaterial{})
	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Sphere should be bounded")
	}
	expected := core.NewAABB(core.NewVec3(0.5, 1.5, 2.5), core.NewVec3(1.5, 2.5, 3.5))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), 0, 1, 0.5, DummyMaterial{})

	if c := sphere.Center(0.5); !vecNear(c, core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected center (0,1,0) at t=0.5, got %v", c)
	}

	// A horizontal ray at y=2 hits only at the end of the shutter
	origin := core.NewVec3(-5, 2, 0)
	dir := core.NewVec3(1, 0, 0)
	if _, isHit := sphere.Hit(core.NewRayAtTime(origin, dir, 0), 0.001, math.Inf(1)); isHit {
		t.Error("Expected miss at time 0")
	}
	hit, isHit := sphere.Hit(core.NewRayAtTime(origin, dir, 1), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit at time 1")
	}
	if math.Abs(hit.T-4.5) > 1e-9 {
		t.Errorf("Expected t=4.5, got %f", hit.T)
	}

	box, _ := sphere.BoundingBox(0, 1)
	expected := core.NewAABB(core.NewVec3(-0.5, -0.5, -0.5), core.NewVec3(0.5, 2.5, 0.5))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}
}
