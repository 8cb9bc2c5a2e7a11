package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Pyramid is a rectangular-based pyramid: four triangles from the apex to
// each edge of a horizontal base rect, plus the base itself
type Pyramid struct {
	Base  *Rect
	Apex  core.Vec3
	faces *HittableList
}

// NewPyramid builds a pyramid over the base [x0,x1]×[z0,z1] at y = k
func NewPyramid(x0, x1, z0, z1, k float64, apex core.Vec3, material core.Material) *Pyramid {
	base := NewXZRect(x0, x1, z0, z1, k, material)

	c00 := core.NewVec3(x0, k, z0)
	c01 := core.NewVec3(x0, k, z1)
	c10 := core.NewVec3(x1, k, z0)
	c11 := core.NewVec3(x1, k, z1)

	faces := NewHittableList(
		NewTriangle(apex, c00, c01, material),
		NewTriangle(apex, c00, c10, material),
		NewTriangle(apex, c10, c11, material),
		NewTriangle(apex, c01, c11, material),
		base,
	)

	return &Pyramid{Base: base, Apex: apex, faces: faces}
}

// Hit tests the ray against every face
func (p *Pyramid) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return p.faces.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box around all faces
func (p *Pyramid) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return p.faces.BoundingBox(time0, time1)
}
