package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellWalls returns the five walls of the box plus a ceiling light covering [x0,x1]x[z0,z1]
func cornellWalls(white core.Material, light core.Material, x0, x1, z0, z1 float64) *geometry.HittableList {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return geometry.NewHittableList(
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // left wall, seen from the camera
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),
		geometry.NewXZRect(x0, x1, z0, z1, boxSize-1, light), // just below the ceiling
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // back wall
	)
}

// cornellBlocks returns the tall and short boxes, rotated and moved into place
func cornellBlocks(white core.Material) (tall, short core.Shape) {
	tall = geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295))

	short = geometry.NewCuboid(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))
	return tall, short
}

// NewCornellBoxScene creates a classic Cornell box with two rotated blocks
func NewCornellBoxScene(opts Options) (*Scene, error) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(20, 20, 20))

	world := cornellWalls(white, light, 213, 343, 227, 332)
	tall, short := cornellBlocks(white)
	world.Add(tall, short)

	s := newScene("cornell-box", boxCamera(core.NewVec3(278, 278, -800)), world, core.NewVec3(0, 0, 0))
	s.Width = 600
	s.SamplingConfig.SamplesPerPixel = 200
	return s, nil
}

// NewCornellSmokeScene fills the Cornell blocks with dark smoke and white fog under a wider, dimmer light
func NewCornellSmokeScene(opts Options) (*Scene, error) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	sampler := core.NewSeededSampler(opts.Seed)
	world := cornellWalls(white, light, 113, 443, 127, 432)
	tall, short := cornellBlocks(white)
	world.Add(
		geometry.NewConstantMedium(tall, 0.01, material.NewSolidColor(core.NewVec3(0, 0, 0)), sampler),
		geometry.NewConstantMedium(short, 0.01, material.NewSolidColor(core.NewVec3(1, 1, 1)), sampler),
	)

	s := newScene("cornell-smoke", boxCamera(core.NewVec3(278, 278, -800)), world, core.NewVec3(0, 0, 0))
	s.Width = 600
	s.SamplingConfig.SamplesPerPixel = 200
	return s, nil
}
