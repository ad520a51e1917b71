package geometry

import (
	"math"

	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
	"github.com/constancadcunha/GPU-PathTracer/pkg/material"
)

// Sphere represents a sphere shape. A negative radius is a valid sentinel
// meaning "invert normal": the surface faces inward, which models hollow
// glass shells.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Hit tests if a ray intersects with the sphere. The ray parameter is
// measured along the normalized direction, so t is a world-space distance.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	dir := ray.Direction.Normalize()
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic coefficients for |oc + t*dir|² = r² with unit dir (a = 1)
	c := oc.Dot(oc) - s.Radius*s.Radius
	b := 2.0 * dir.Dot(oc)

	// Origin outside the sphere and moving away from it
	if c > 0 && b > 0 {
		return nil, false
	}

	discriminant := b*b - 4*c
	if discriminant < 0 {
		return nil, false
	}

	// Only the smaller root is considered
	t := (-b - math.Sqrt(discriminant)) / 2
	if t <= tMin || t >= tMax {
		return nil, false
	}

	point := ray.Origin.Add(dir.Multiply(t))

	// Dividing by the signed radius inverts the normal for negative radii
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return &material.HitRecord{
		Point:    point,
		Normal:   normal,
		T:        t,
		Material: s.Material,
	}, true
}
