package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Shape interface for anything a ray can intersect: primitives, aggregates,
// acceleration nodes, instance transforms and volumes
type Shape interface {
	// Hit returns the closest intersection with t in [tMin, tMax]
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns a box valid over the shutter interval [time0, time1].
	// The second result is false for unbounded shapes such as infinite planes.
	BoundingBox(time0, time1 float64) (AABB, bool)
}

// Material interface for surfaces that can scatter rays
type Material interface {
	Scatter(rayIn Ray, hit *HitRecord, sampler Sampler) (ScatterResult, bool)
}

// Emitter interface for materials that emit light
type Emitter interface {
	Emitted(uv Vec2, point Vec3) Color
}

// Emitted returns the light emitted by a material, black for non-emitters
func Emitted(material Material, uv Vec2, point Vec3) Color {
	if emitter, ok := material.(Emitter); ok {
		return emitter.Emitted(uv, point)
	}
	return Color{}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   Ray   // The scattered ray
	Attenuation Color // Color attenuation
}

// HitRecord contains information about a ray-object intersection.
// It is only meaningful for the query interval that produced it.
type HitRecord struct {
	T         float64  // Parameter t along the ray
	UV        Vec2     // Surface coordinates
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal, always facing against the incoming ray
	FrontFace bool     // Whether ray hit the outward-facing side
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
