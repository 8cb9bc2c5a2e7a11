package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// planeEpsilon is the minimum |normal·direction| for a ray to count as facing the plane
const planeEpsilon = 2.220446049250313e-16

// Plane represents an infinite one-sided plane defined by a point and normal.
// Only rays travelling against the normal hit it.
type Plane struct {
	Point    core.Vec3     // A point on the plane
	Normal   core.Vec3     // Normal vector
	Material core.Material // Material of the plane
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal,
		Material: material,
	}
}

// Hit tests if a ray intersects with the front of the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Parallel rays and rays approaching from behind miss
	if denominator >= -planeEpsilon {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t >= tMax {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}

// BoundingBox reports that a plane is unbounded
func (p *Plane) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}
