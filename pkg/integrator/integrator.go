package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from world.
	// Rays that escape return background; depth bounds the number of bounces.
	RayColor(ray core.Ray, world core.Shape, background core.Color, depth int, sampler core.Sampler) core.Color
}
