package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/noise"
)

const (
	boxesPerSide   = 20
	sphereClusterN = 1000
)

// NewFinalScene puts every primitive, material and texture in one Cornell-lit room
func NewFinalScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)

	globe, err := loaders.LoadImageTexture(opts.TexturePath)
	if err != nil {
		return nil, err
	}

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := make([]core.Shape, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			const w = 100.0
			x0 := -1000 + float64(i)*w
			z0 := -1000 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes = append(boxes, geometry.NewCuboid(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	groundBoxes, err := buildBVH(boxes, sampler)
	if err != nil {
		return nil, err
	}

	world := geometry.NewHittableList(groundBoxes)

	world.Add(geometry.NewXZRect(123, 423, 147, 412, 554, material.NewDiffuseLight(core.NewVec3(7, 7, 7))))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Blue medium inside a glass shell
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary, geometry.NewConstantMedium(boundary, 0.2, material.NewSolidColor(core.NewVec3(0.2, 0.4, 0.9)), sampler))

	// Thin fog over everything
	fog := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMedium(fog, 0.0001, material.NewSolidColor(core.NewVec3(1, 1, 1)), sampler))

	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(globe)))

	marble := material.NewNoiseTexture(noise.NewPerlin(sampler), 0.1)
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(marble)))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := make([]core.Shape, sphereClusterN)
	for i := range cluster {
		cluster[i] = geometry.NewSphere(core.RandomVec3Range(sampler, 0, 165), 10, white)
	}
	clusterBVH, err := buildBVH(cluster, sampler)
	if err != nil {
		return nil, err
	}
	world.Add(geometry.NewTranslate(geometry.NewRotateY(clusterBVH, 15), core.NewVec3(-100, 270, 395)))

	s := newScene("final", boxCamera(core.NewVec3(478, 278, -600)), world, core.NewVec3(0, 0, 0))
	s.Width = 800
	s.SamplingConfig.SamplesPerPixel = 1000
	return s, nil
}
