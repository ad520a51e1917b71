package renderer

import (
	"math"

	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
	"github.com/constancadcunha/GPU-PathTracer/pkg/geometry"
	"github.com/constancadcunha/GPU-PathTracer/pkg/material"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCameraConfig() CameraConfig
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetShapes() []geometry.Shape
}

// Raytracer evaluates pixel samples against a scene
type Raytracer struct {
	scene  Scene
	camera *Camera
	width  int
	height int
	config SamplingConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer for the given scene and image size
func NewRaytracer(scene Scene, width, height int, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NewStdLogger()
	}
	cameraConfig := scene.GetCameraConfig()
	cameraConfig.WidthPixels = width
	cameraConfig.AspectRatio = float64(width) / float64(height)

	return &Raytracer{
		scene:  scene,
		camera: NewCamera(cameraConfig),
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
		logger: logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// Camera returns the camera constructed for this render
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// hitWorld finds the closest intersection along the ray. Intersection is a
// linear per-primitive test: no acceleration structure.
func (rt *Raytracer) hitWorld(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, shape := range rt.scene.GetShapes() {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// backgroundGradient returns the environment color for a ray that missed
// every primitive
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// RayColor traces a single ray through the scene: intersect all primitives,
// scatter at the closest hit, accumulate attenuation multiplicatively, and
// terminate on a miss or the bounce limit. Each scatter event already
// carries its full sample weight, so no PDF division happens here.
func (rt *Raytracer) RayColor(ray core.Ray, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; depth < rt.config.MaxDepth; depth++ {
		hit, isHit := rt.hitWorld(ray, 0.001, math.MaxFloat64)
		if !isHit {
			return throughput.MultiplyVec(rt.backgroundGradient(ray))
		}

		scatter := material.Scatter(ray, *hit, sampler)
		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce limit reached: no more light is gathered
	return core.NewVec3(0, 0, 0)
}

// seedLimit bounds derived stream seeds. A RandomStream advances its
// float32 seed by 0.1 per step; above roughly 2^21 that increment rounds
// away and the stream stops moving, so seeds must stay well below it.
const seedLimit = 1 << 20

// pixelSeed derives a RandomStream seed from pixel coordinates and sample
// index. The raw linear index grows past seedLimit on large frames, so the
// indices are mixed through an integer hash and folded below the limit:
// the low bits become the integer part and the high bits a fractional
// offset, keeping streams of distinct pixel samples decorrelated.
func (rt *Raytracer) pixelSeed(x, y, sample int) float32 {
	h := uint32(y*rt.width+x)*2654435761 + uint32(sample)*2246822519
	return float32(h&(seedLimit-1)) + float32(h>>20)*(1.0/4096.0)
}

// SamplePixel evaluates one jittered sample of the given pixel
func (rt *Raytracer) SamplePixel(x, y, sample int) core.Vec3 {
	stream := core.NewRandomStream(rt.pixelSeed(x, y, sample))

	px := (float64(x) + stream.Get1D()) / float64(rt.width)
	py := (float64(y) + stream.Get1D()) / float64(rt.height)

	ray := rt.camera.GenerateRay(px, py, stream)
	return rt.RayColor(ray, stream)
}
