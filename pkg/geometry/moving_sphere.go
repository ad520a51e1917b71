package geometry

import (
	"math"

	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
	"github.com/constancadcunha/GPU-PathTracer/pkg/material"
)

// MovingSphere is a sphere whose center moves linearly from Center0 at
// Time0 to Center1 at Time1. The position tested against a ray is
// interpolated from the ray's carried shutter time. Time0 and Time1 must
// be distinct; the interpolation is undefined otherwise.
type MovingSphere struct {
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         material.Material
}

// NewMovingSphere creates a new moving sphere
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, mat material.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: mat,
	}
}

// CenterAt returns the interpolated center at the given shutter time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// Hit tests if a ray intersects with the sphere at the ray's shutter time.
// The test is identical to Sphere.Hit against the interpolated center.
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	center := s.CenterAt(ray.Time)
	dir := ray.Direction.Normalize()
	oc := ray.Origin.Subtract(center)

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

	t := (-b - math.Sqrt(discriminant)) / 2
	if t <= tMin || t >= tMax {
		return nil, false
	}

	point := ray.Origin.Add(dir.Multiply(t))
	normal := point.Subtract(center).Multiply(1.0 / s.Radius)

	return &material.HitRecord{
		Point:    point,
		Normal:   normal,
		T:        t,
		Material: s.Material,
	}, true
}
