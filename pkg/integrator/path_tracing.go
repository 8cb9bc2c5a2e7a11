package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DefaultTMin offsets secondary rays off the surface they left to avoid self-intersection
const DefaultTMin = 0.001

// PathTracingIntegrator implements unidirectional path tracing with no light sampling:
// every bounce follows the material's scattered ray
type PathTracingIntegrator struct {
	TMin float64
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator() *PathTracingIntegrator {
	return &PathTracingIntegrator{TMin: DefaultTMin}
}

// RayColor computes the color for a single ray using unidirectional path tracing
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Shape, background core.Color, depth int, sampler core.Sampler) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Color{}
	}

	hit, isHit := world.Hit(ray, pt.TMin, math.Inf(1))
	if !isHit {
		return background
	}

	colorEmitted := core.Emitted(hit.Material, hit.UV, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		// Absorbed: only emitted light remains
		return colorEmitted
	}

	incoming := pt.RayColor(scatter.Scattered, world, background, depth-1, sampler)
	return colorEmitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}
