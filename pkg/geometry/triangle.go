package geometry

import (
	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
	"github.com/constancadcunha/GPU-PathTracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices.
// Winding order determines the outward normal via the right-hand rule
// on (V1-V0) × (V2-V0).
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   material.Material
	normal     core.Vec3 // Cached normal vector
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
	}
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	t.normal = edge1.Cross(edge2).Normalize()
	return t
}

// Normal returns the triangle's cached winding normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Hit tests if a ray intersects with the triangle using the
// Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	const epsilon = 1e-8

	dir := ray.Direction.Normalize()
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := dir.Cross(edge2)
	det := edge1.Dot(h)

	// Ray lies in or parallel to the plane of the triangle
	if det > -epsilon && det < epsilon {
		return nil, false
	}

	f := 1.0 / det
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * dir.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam <= tMin || tParam >= tMax {
		return nil, false
	}

	return &material.HitRecord{
		Point:    ray.Origin.Add(dir.Multiply(tParam)),
		Normal:   t.normal,
		T:        tParam,
		Material: t.Material,
	}, true
}
