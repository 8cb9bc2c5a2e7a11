package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Cuboid represents an axis-aligned box made up of 6 rects
type Cuboid struct {
	Min, Max core.Vec3 // Opposite corners
	sides    *HittableList
}

// NewCuboid creates the box spanning the corners p0 (minimum) and p1 (maximum)
func NewCuboid(p0, p1 core.Vec3, material core.Material) *Cuboid {
	sides := NewHittableList(
		// Front and back (Z)
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p1.Z, material),
		NewXYRect(p0.X, p1.X, p0.Y, p1.Y, p0.Z, material),
		// Top and bottom (Y)
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p1.Y, material),
		NewXZRect(p0.X, p1.X, p0.Z, p1.Z, p0.Y, material),
		// Right and left (X)
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p1.X, material),
		NewYZRect(p0.Y, p1.Y, p0.Z, p1.Z, p0.X, material),
	)

	return &Cuboid{Min: p0, Max: p1, sides: sides}
}

// Hit tests if a ray intersects with any face of the box
func (c *Cuboid) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return c.sides.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box of the six faces
func (c *Cuboid) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return c.sides.BoundingBox(time0, time1)
}
