package geometry

import (
	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
	"github.com/constancadcunha/GPU-PathTracer/pkg/material"
)

// Shape interface for objects that can be hit by rays.
// Hit reports an intersection only when the ray parameter lies strictly
// inside (tMin, tMax); callers use the bounds for nearest-hit selection
// and to avoid self-intersection.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
