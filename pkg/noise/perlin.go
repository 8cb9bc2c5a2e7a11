// Package noise implements Perlin gradient noise for procedural textures.
package noise

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const pointCount = 256

// DefaultTurbulenceDepth is the number of octaves summed by Turbulence in textures
const DefaultTurbulenceDepth = 7

// Perlin holds the permutation tables and lattice gradients of one noise field.
// It is immutable after construction and safe for concurrent use.
type Perlin struct {
	gradients [pointCount]core.Vec3
	permX     [pointCount]int
	permY     [pointCount]int
	permZ     [pointCount]int
}

// NewPerlin builds a noise field, drawing its tables from sampler
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.gradients {
		p.gradients[i] = core.RandomUnitVector(sampler)
	}
	generatePermutation(&p.permX, sampler)
	generatePermutation(&p.permY, sampler)
	generatePermutation(&p.permZ, sampler)
	return p
}

// generatePermutation fills perm with a Fisher-Yates shuffle of 0..n-1
func generatePermutation(perm *[pointCount]int, sampler core.Sampler) {
	for i := range perm {
		perm[i] = i
	}
	for i := pointCount - 1; i > 0; i-- {
		target := core.RandomInt(sampler, i+1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

// Noise returns gradient noise at p, roughly in [-1, 1]
func (p *Perlin) Noise(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	i, j, k := int(fx), int(fy), int(fz)

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.gradients[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return interpolate(&c, u, v, w)
}

// interpolate blends the corner gradient contributions with Hermite-smoothed weights
func interpolate(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accumulator := 0.0
	for i := 0; i < 2; i++ {
		fi := float64(i)
		for j := 0; j < 2; j++ {
			fj := float64(j)
			for k := 0; k < 2; k++ {
				fk := float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accumulator += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accumulator
}

// Turbulence sums depth octaves of noise, doubling frequency and halving
// amplitude each time, and returns the absolute value
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accumulator := 0.0
	weight := 1.0
	for i := 0; i < depth; i++ {
		accumulator += weight * p.Noise(point)
		weight *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accumulator)
}
