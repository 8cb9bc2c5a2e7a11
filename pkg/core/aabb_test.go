package core

import (
	"math"
	"testing"
)

// referenceSlabHit is the textbook slab test using explicit min/max per axis
func referenceSlabHit(box AABB, ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		t0 := (box.Min.Index(axis) - ray.Origin.Index(axis)) / ray.Direction.Index(axis)
		t1 := (box.Max.Index(axis) - ray.Origin.Index(axis)) / ray.Direction.Index(axis)
		tMin = math.Max(math.Min(t0, t1), tMin)
		tMax = math.Min(math.Max(t0, t1), tMax)
		if tMax <= tMin {
			return false
		}
	}
	return true
}

func TestAABB_HitMatchesReferenceForAllDirectionSigns(t *testing.T) {
	box := NewAABB(NewVec3(-1, -2, -3), NewVec3(2, 1, 0.5))
	sampler := NewSeededSampler(42)

	for signs := 0; signs < 8; signs++ {
		for i := 0; i < 200; i++ {
			dir := RandomVec3Range(sampler, 0.05, 1)
			if signs&1 != 0 {
				dir.X = -dir.X
			}
			if signs&2 != 0 {
				dir.Y = -dir.Y
			}
			if signs&4 != 0 {
				dir.Z = -dir.Z
			}
			ray := NewRay(RandomVec3Range(sampler, -5, 5), dir)

			got := box.Hit(ray, 0.001, math.Inf(1))
			expected := referenceSlabHit(box, ray, 0.001, math.Inf(1))
			if got != expected {
				t.Fatalf("signs=%03b ray=%v: expected %v, got %v", signs, ray, expected, got)
			}
		}
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		ray      Ray
		tMax     float64
		expected bool
	}{
		{"straight through", NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0)), math.Inf(1), true},
		{"reverse direction", NewRay(NewVec3(2, 0.5, 0.5), NewVec3(-1, 0, 0)), math.Inf(1), true},
		{"pointing away", NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(-1, 0, 0)), math.Inf(1), false},
		{"parallel outside", NewRay(NewVec3(-1, 2, 0.5), NewVec3(1, 0, 0)), math.Inf(1), false},
		{"interval ends before box", NewRay(NewVec3(-1, 0.5, 0.5), NewVec3(1, 0, 0)), 0.5, false},
		{"origin inside", NewRay(NewVec3(0.5, 0.5, 0.5), NewVec3(0, 0, 1)), math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0.001, tt.tMax); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSurroundingBox(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-2, 0.5, 0.2), NewVec3(0.5, 3, 0.4))
	c := NewAABB(NewVec3(4, -1, -1), NewVec3(5, 0, 0))

	ab := SurroundingBox(a, b)
	if ab != SurroundingBox(b, a) {
		t.Error("SurroundingBox should be commutative")
	}
	if SurroundingBox(ab, c) != SurroundingBox(a, SurroundingBox(b, c)) {
		t.Error("SurroundingBox should be associative")
	}
	if !ab.Contains(a) || !ab.Contains(b) {
		t.Errorf("Surrounding box %v should contain both inputs", ab)
	}

	expected := NewAABB(NewVec3(-2, 0, 0), NewVec3(1, 3, 1))
	if ab != expected {
		t.Errorf("Expected %v, got %v", expected, ab)
	}
}

func TestAABB_Helpers(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, 5, -1), NewVec3(-1, 2, 3), NewVec3(0, 0, 0))
	expected := NewAABB(NewVec3(-1, 0, -1), NewVec3(1, 5, 3))
	if box != expected {
		t.Errorf("Expected %v, got %v", expected, box)
	}

	if got := box.Center(); !vecClose(got, NewVec3(0, 2.5, 1), 1e-12) {
		t.Errorf("Expected center (0,2.5,1), got %v", got)
	}
	if got := box.Size(); !vecClose(got, NewVec3(2, 5, 4), 1e-12) {
		t.Errorf("Expected size (2,5,4), got %v", got)
	}
	if !box.IsValid() {
		t.Error("Expected valid box")
	}

	shifted := box.Translate(NewVec3(1, 1, 1))
	if shifted.Min != NewVec3(0, 1, 0) || shifted.Max != NewVec3(2, 6, 4) {
		t.Errorf("Unexpected translated box %v", shifted)
	}

	corners := box.Corners()
	if NewAABBFromPoints(corners[:]...) != box {
		t.Error("Corners should span the original box")
	}
}
