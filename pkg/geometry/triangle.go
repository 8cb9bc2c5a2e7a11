package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// triangleEpsilon guards the determinant and the minimum hit distance
const triangleEpsilon = 2.220446049250313e-16

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3     // The three vertices
	Material   core.Material // Material of the triangle
	normal     core.Vec3     // Cached normal vector
	bbox       core.AABB     // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices.
// The outward normal follows (V1-V0)×(V2-V0).
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material,
	}

	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.bbox = core.NewAABBFromPoints(v0, v1, v2)

	return t
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// The hit UV holds the barycentric weights of V0 and V1, so V2 maps to (0,0).
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in (or nearly in) the plane of the triangle
	if a > -triangleEpsilon && a < triangleEpsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam <= triangleEpsilon || tParam <= tMin || tParam >= tMax {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        tParam,
		UV:       core.NewVec2(1-u-v, u),
		Point:    ray.At(tParam),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return t.bbox, true
}

// Normal returns the triangle's outward normal vector
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
