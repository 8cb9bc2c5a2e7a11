package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/noise"
)

// NewRandomSpheresScene creates the classic cover scene: a checkered ground,
// a 22x22 grid of small jittered spheres and three large feature spheres.
// Diffuse spheres bounce upward during the shutter interval.
func NewRandomSpheresScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)

	checker := material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	shapes := []core.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	keepClear := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)
			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// diffuse
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				shapes = append(shapes, geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				// metal
				albedo := core.RandomVec3Range(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				shapes = append(shapes, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				// glass
				shapes = append(shapes, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 1.0)),
	)

	world, err := buildBVH(shapes, sampler)
	if err != nil {
		return nil, err
	}
	return newScene("random-spheres", wideCamera(0.1), world, skyBlue), nil
}

// NewTwoSpheresScene creates two large checkered spheres stacked on the origin
func NewTwoSpheresScene(opts Options) (*Scene, error) {
	green := material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	yellow := material.NewCheckerColors(core.NewVec3(0.6, 0.5, 0.1), core.NewVec3(0.9, 0.9, 0.9))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewTexturedLambertian(green)),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewTexturedLambertian(yellow)),
	)
	return newScene("two-spheres", wideCamera(0), world, skyBlue), nil
}

// perlinSpheres returns a marble ground and a marble sphere sharing one noise field
func perlinSpheres(seed int64) []core.Shape {
	marble := material.NewTexturedLambertian(
		material.NewNoiseTexture(noise.NewPerlin(core.NewSeededSampler(seed)), 4),
	)
	return []core.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}
}

// NewTwoPerlinSpheresScene creates a marble ground and sphere
func NewTwoPerlinSpheresScene(opts Options) (*Scene, error) {
	world := geometry.NewHittableList(perlinSpheres(opts.Seed)...)
	return newScene("two-perlin-spheres", wideCamera(0), world, skyBlue), nil
}

// NewEarthScene creates a single globe textured with the image at opts.TexturePath
func NewEarthScene(opts Options) (*Scene, error) {
	texture, err := loaders.LoadImageTexture(opts.TexturePath)
	if err != nil {
		return nil, err
	}

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
	)
	return newScene("earth", wideCamera(0), world, skyBlue), nil
}

// NewSimpleLightScene lights the marble spheres with a single rectangle in the dark
func NewSimpleLightScene(opts Options) (*Scene, error) {
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(perlinSpheres(opts.Seed)...)
	world.Add(geometry.NewXYRect(3, 5, 1, 3, -2, light))

	config := wideCamera(0)
	config.LookFrom = core.NewVec3(26, 3, 6)
	config.LookAt = core.NewVec3(0, 2, 0)

	s := newScene("simple-light", config, world, core.NewVec3(0, 0, 0))
	s.SamplingConfig.SamplesPerPixel = 400
	return s, nil
}
