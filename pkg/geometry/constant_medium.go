package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// mediumExitOffset skips past the entry crossing when searching for the exit
const mediumExitOffset = 0.0001

// ConstantMedium is a volume of uniform density bounded by a closed shape.
// Rays passing through it scatter at an exponentially distributed depth.
type ConstantMedium struct {
	Boundary      core.Shape
	Density       float64
	PhaseFunction core.Material

	// Base2FreeFlight samples free-flight distances with log2 instead of ln,
	// which thins the medium by a factor of ln 2
	Base2FreeFlight bool

	negInvDensity float64
	salt          uint64 // Decorrelates media crossed by the same ray
}

// NewConstantMedium creates a medium filling boundary, scattering isotropically with the given albedo.
// The medium's free-flight stream is seeded from sampler, so media built from one
// sampler scatter independently even where they overlap.
func NewConstantMedium(boundary core.Shape, density float64, albedo material.Texture, sampler core.Sampler) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewIsotropic(albedo),
		negInvDensity: -1 / density,
		salt:          splitmix64(math.Float64bits(sampler.Get1D())),
	}
}

// Hit finds where the ray enters and leaves the boundary and samples a
// scattering distance in between
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+mediumExitOffset, math.Inf(1))
	if !ok {
		return nil, false
	}

	t1 := math.Max(entry.T, tMin)
	t2 := math.Min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength

	var hitDistance float64
	if m.Base2FreeFlight {
		hitDistance = m.negInvDensity * math.Log2(rayUniform(ray, m.salt))
	} else {
		hitDistance = m.negInvDensity * math.Log(rayUniform(ray, m.salt))
	}
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &core.HitRecord{
		T:         t,
		UV:        exit.UV,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}

// rayUniform derives a uniform value in (0, 1] from the ray's bits and a per-medium salt.
// Shape queries carry no sampler, so the draw is a pure function of its inputs.
func rayUniform(ray core.Ray, salt uint64) float64 {
	h := salt
	for _, f := range [...]float64{
		ray.Origin.X, ray.Origin.Y, ray.Origin.Z,
		ray.Direction.X, ray.Direction.Y, ray.Direction.Z,
		ray.Time,
	} {
		h = splitmix64(h ^ math.Float64bits(f))
	}
	return float64(h>>11+1) / (1 << 53)
}

func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
