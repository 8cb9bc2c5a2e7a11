package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// ErrUnknownScene is returned by New for names not listed by Names
var ErrUnknownScene = errors.New("unknown scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	World          core.Shape // Root of the hittable hierarchy
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	Background     core.Color // Returned for rays that escape the world
	Width          int        // Recommended image width
	SamplingConfig renderer.SamplingConfig
}

// Options are the inputs a preset may need beyond its own constants
type Options struct {
	Seed        int64  // Seeds random placement and noise tables
	TexturePath string // Image used by the earth texture
}

// DefaultOptions returns the options used when none are given
func DefaultOptions() Options {
	return Options{Seed: 42, TexturePath: "earthmap.jpg"}
}

type preset struct {
	name        string
	description string
	build       func(opts Options) (*Scene, error)
}

var presets = []preset{
	{"random-spheres", "Field of small random spheres with motion blur and three large spheres", NewRandomSpheresScene},
	{"two-spheres", "Two checkered spheres touching at the origin", NewTwoSpheresScene},
	{"two-perlin-spheres", "Marble Perlin noise on the ground and a sphere", NewTwoPerlinSpheresScene},
	{"earth", "A globe with an image texture", NewEarthScene},
	{"simple-light", "Perlin spheres lit by a rectangular area light", NewSimpleLightScene},
	{"cornell-box", "Cornell box with two rotated boxes", NewCornellBoxScene},
	{"cornell-smoke", "Cornell box with the boxes replaced by smoke and fog", NewCornellSmokeScene},
	{"final", "Every feature at once: boxes, media, motion blur, textures, instances", NewFinalScene},
	{"shapes", "Plane, triangle and pyramid primitives", NewShapesScene},
}

// Names lists the preset names accepted by New
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}

// Describe returns a one-line description of the named preset
func Describe(name string) (string, bool) {
	for _, p := range presets {
		if p.name == name {
			return p.description, true
		}
	}
	return "", false
}

// New builds the named preset
func New(name string, opts Options) (*Scene, error) {
	for _, p := range presets {
		if p.name == name {
			s, err := p.build(opts)
			if err != nil {
				return nil, fmt.Errorf("failed to build scene %q: %w", name, err)
			}
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() core.Shape {
	return s.World
}

// GetBackground implements renderer.Scene
func (s *Scene) GetBackground() core.Color {
	return s.Background
}

// AspectRatio returns width / height of the camera's view
func (s *Scene) AspectRatio() float64 {
	return s.CameraConfig.AspectRatio
}

// HeightFor returns the image height that keeps the camera's aspect ratio at the given width
func (s *Scene) HeightFor(width int) int {
	height := int(float64(width) / s.CameraConfig.AspectRatio)
	if height < 1 {
		height = 1
	}
	return height
}

// newScene fills in the camera and defaults shared by every preset
func newScene(name string, config renderer.CameraConfig, world core.Shape, background core.Color) *Scene {
	return &Scene{
		Name:           name,
		World:          world,
		Camera:         renderer.NewCamera(config),
		CameraConfig:   config,
		Background:     background,
		Width:          400,
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// wideCamera is the 16:9 view from (13,2,3) toward the origin used by the sphere scenes
func wideCamera(aperture float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      aperture,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

// boxCamera is the square 40 degree view used by the Cornell scenes
func boxCamera(lookFrom core.Vec3) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1.0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

// skyBlue is the background of the daylight scenes
var skyBlue = core.NewVec3(0.7, 0.8, 1.0)

// buildBVH wraps shapes in a BVH over the shutter interval [0, 1]
func buildBVH(shapes []core.Shape, sampler core.Sampler) (*core.BVH, error) {
	bvh, err := core.NewBVH(shapes, 0, 1, sampler)
	if err != nil {
		return nil, fmt.Errorf("failed to build BVH: %w", err)
	}
	return bvh, nil
}
