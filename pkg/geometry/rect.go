package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// rectThickness pads the constant axis so flat rects have a non-degenerate box
const rectThickness = 0.0001

// Rect is an axis-aligned rectangle lying in the plane Axis = K.
// A0..A1 and B0..B1 bound the two remaining axes in X, Y, Z order.
type Rect struct {
	Axis     int // constant axis: 0 = X (YZ rect), 1 = Y (XZ rect), 2 = Z (XY rect)
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material core.Material

	a, b   int       // indices of the two in-plane axes
	normal core.Vec3 // unit normal along +Axis
}

func newRect(axis int, a0, a1, b0, b1, k float64, material core.Material) *Rect {
	r := &Rect{Axis: axis, A0: a0, A1: a1, B0: b0, B1: b1, K: k, Material: material}
	switch axis {
	case 0:
		r.a, r.b = 1, 2
	case 1:
		r.a, r.b = 0, 2
	default:
		r.a, r.b = 0, 1
	}
	r.normal = core.Vec3{}.WithIndex(axis, 1)
	return r
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material core.Material) *Rect {
	return newRect(2, x0, x1, y0, y1, k, material)
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material core.Material) *Rect {
	return newRect(1, x0, x1, z0, z1, k, material)
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material core.Material) *Rect {
	return newRect(0, y0, y1, z0, z1, k, material)
}

// Hit solves the single-axis plane equation and checks the in-plane extents
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	t := (r.K - ray.Origin.Index(r.Axis)) / ray.Direction.Index(r.Axis)
	// NaN for an in-plane parallel ray fails both comparisons
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	a := ray.Origin.Index(r.a) + t*ray.Direction.Index(r.a)
	b := ray.Origin.Index(r.b) + t*ray.Direction.Index(r.b)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		UV:       core.NewVec2((a-r.A0)/(r.A1-r.A0), (b-r.B0)/(r.B1-r.B0)),
		Point:    ray.At(t),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, r.normal)

	return hitRecord, true
}

// BoundingBox returns the rect's extents padded along the constant axis
func (r *Rect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	var min, max core.Vec3
	min = min.WithIndex(r.a, r.A0).WithIndex(r.b, r.B0).WithIndex(r.Axis, r.K-rectThickness)
	max = max.WithIndex(r.a, r.A1).WithIndex(r.b, r.B1).WithIndex(r.Axis, r.K+rectThickness)
	return core.NewAABB(min, max), true
}
