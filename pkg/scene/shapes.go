package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewShapesScene shows the flat primitives on an infinite checkered plane
func NewShapesScene(opts Options) (*Scene, error) {
	sampler := core.NewSeededSampler(opts.Seed)

	checker := material.NewCheckerColors(core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	ground := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), material.NewTexturedLambertian(checker))

	objects := []core.Shape{
		geometry.NewPyramid(-3, -1, -1, 1, 0, core.NewVec3(-2, 2, 0), material.NewLambertian(core.NewVec3(0.8, 0.6, 0.2))),
		geometry.NewTriangle(
			core.NewVec3(0.5, 0, -1.5),
			core.NewVec3(2.5, 0, -1.5),
			core.NewVec3(1.5, 2, -1),
			material.NewMetal(core.NewVec3(0.7, 0.7, 0.8), 0.05),
		),
		geometry.NewSphere(core.NewVec3(0, 0.6, 1), 0.6, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(2, 0.4, 1.2), 0.4, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))),
	}

	// The plane has no bounding box, so it stays outside the BVH
	bvh, err := buildBVH(objects, sampler)
	if err != nil {
		return nil, err
	}
	world := geometry.NewHittableList(ground, bvh)

	config := wideCamera(0)
	config.LookFrom = core.NewVec3(0, 3, 9)
	config.LookAt = core.NewVec3(0, 0.7, 0)
	config.VFov = 30

	return newScene("shapes", config, world, skyBlue), nil
}
