package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/noise"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Color
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	return s.Color
}

// CheckerTexture alternates between two textures in a 3D pattern
// driven by the sign of sin(10x)·sin(10y)·sin(10z)
type CheckerTexture struct {
	Odd  Texture
	Even Texture
}

// NewCheckerTexture creates a checker of two textures
func NewCheckerTexture(odd, even Texture) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even}
}

// NewCheckerColors creates a checker of two solid colors
func NewCheckerColors(odd, even core.Color) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(odd), NewSolidColor(even))
}

// Evaluate picks the odd texture where the sine product is negative
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}

// NoiseTexture is a grey marble pattern built from Perlin turbulence
type NoiseTexture struct {
	Perlin *noise.Perlin
	Scale  float64
}

// NewNoiseTexture creates a marble texture; scale sets the stripe frequency along z
func NewNoiseTexture(perlin *noise.Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Perlin: perlin, Scale: scale}
}

// Evaluate returns 0.5·(1 + sin(scale·z + 10·turbulence(p))) in every channel
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Color {
	turbulence := n.Perlin.Turbulence(point, noise.DefaultTurbulenceDepth)
	value := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*turbulence))
	return core.NewVec3(value, value, value)
}
