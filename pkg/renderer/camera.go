package renderer

import (
	"math"

	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
)

// CameraConfig holds camera construction parameters. Angles are in
// degrees at this boundary; the camera works in radians internally.
type CameraConfig struct {
	Eye          core.Vec3
	LookAt       core.Vec3
	Up           core.Vec3
	VFov         float64 // Vertical field of view in degrees
	AspectRatio  float64 // Viewport width / height
	Aperture     float64 // Lens diameter in multiples of one pixel's image-plane footprint
	FocusDist    float64 // Focus distance as a ratio of the image-plane distance
	ShutterOpen  float64 // Shutter interval for motion blur
	ShutterClose float64
	WidthPixels  int // Horizontal resolution, used to convert Aperture to world units
}

// Camera maps normalized pixel coordinates to world-space rays through a
// thin lens with a shutter interval. Constructed once per frame and
// immutable thereafter.
type Camera struct {
	eye          core.Vec3
	u, v, n      core.Vec3 // Right-handed orthonormal basis; n points from LookAt toward Eye
	width        float64   // Viewport extents in world units
	height       float64
	planeDist    float64 // Distance from the eye to the image plane
	lensRadius   float64 // Zero degenerates to a pinhole camera
	focusDist    float64
	shutterOpen  float64
	shutterClose float64
}

// NewCamera creates a camera from frame parameters. An aperture of zero
// produces a pinhole camera: the focus distance is forced to 1 so the
// focal plane coincides with the image plane.
func NewCamera(config CameraConfig) *Camera {
	planeDist := config.Eye.Subtract(config.LookAt).Length()
	theta := config.VFov * math.Pi / 180
	height := 2 * planeDist * math.Tan(theta/2)
	width := config.AspectRatio * height

	n := config.Eye.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(n).Normalize()
	v := n.Cross(u)

	// Aperture is specified in pixel footprints on the image plane
	lensRadius := 0.0
	focusDist := config.FocusDist
	if config.Aperture > 0 {
		lensRadius = config.Aperture / 2 * width / float64(config.WidthPixels)
	} else {
		focusDist = 1.0
	}

	return &Camera{
		eye:          config.Eye,
		u:            u,
		v:            v,
		n:            n,
		width:        width,
		height:       height,
		planeDist:    planeDist,
		lensRadius:   lensRadius,
		focusDist:    focusDist,
		shutterOpen:  config.ShutterOpen,
		shutterClose: config.ShutterClose,
	}
}

// GenerateRay maps a pixel sample in [0,1]² to a world-space ray with a
// shutter time drawn uniformly from the camera's interval. The returned
// direction is unit length.
func (c *Camera) GenerateRay(px, py float64, sampler core.Sampler) core.Ray {
	time := c.shutterOpen + sampler.Get1D()*(c.shutterClose-c.shutterOpen)

	// Image-plane point in camera space, centered on the viewport
	plane := core.NewVec3(c.width*(px-0.5), c.height*(py-0.5), -c.planeDist)

	if c.lensRadius == 0 {
		// Pinhole path: no lens sample, no division by the lens radius
		dir := c.toWorld(plane).Normalize()
		return core.Ray{Origin: c.eye, Direction: dir, Time: time}
	}

	lens := core.SampleUnitDisk(sampler.Get2D())

	// Working in units of lensRadius projects the image-plane point onto
	// the focal plane while the lens sample stays unscaled
	focal := plane.Multiply(c.focusDist / c.lensRadius)
	local := focal.Subtract(core.NewVec3(lens.X, lens.Y, 0)).Normalize()

	origin := c.eye.
		Add(c.u.Multiply(lens.X * c.lensRadius)).
		Add(c.v.Multiply(lens.Y * c.lensRadius))

	return core.Ray{Origin: origin, Direction: c.toWorld(local), Time: time}
}

// toWorld transforms a camera-space vector into world space. The basis is
// orthonormal, so unit vectors stay unit length.
func (c *Camera) toWorld(p core.Vec3) core.Vec3 {
	return c.u.Multiply(p.X).Add(c.v.Multiply(p.Y)).Add(c.n.Multiply(p.Z))
}

// Basis returns the camera's orthonormal basis vectors (right, up, back)
func (c *Camera) Basis() (u, v, n core.Vec3) {
	return c.u, c.v, c.n
}

// LensRadius returns the world-space lens radius; zero means pinhole
func (c *Camera) LensRadius() float64 {
	return c.lensRadius
}
