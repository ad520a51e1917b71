package geometry

import (
	"math"
	"testing"

	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
)

func TestTriangle_WindingNormal(t *testing.T) {
	// Counter-clockwise when viewed from +z: normal must be (0, 0, 1)
	ccw := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 1, 0),
		testMaterial())
	if ccw.Normal() != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected CCW normal (0,0,1), got %v", ccw.Normal())
	}

	// Swapping two vertices flips the winding and the normal
	cw := NewTriangle(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 0, 0),
		testMaterial())
	if cw.Normal() != core.NewVec3(0, 0, -1) {
		t.Errorf("Expected CW normal (0,0,-1), got %v", cw.Normal())
	}
}

func TestTriangle_Hit_InsideAndOutside(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		testMaterial())

	tests := []struct {
		name      string
		origin    core.Vec3
		expectHit bool
		expectedT float64
	}{
		{"through centroid", core.NewVec3(0, -1.0/3.0, 2), true, 2.0},
		{"near a vertex inside", core.NewVec3(0, 0.9, 2), true, 2.0},
		{"outside the edge", core.NewVec3(1, 1, 2), false, 0},
		{"beyond a vertex", core.NewVec3(0, 1.1, 2), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, core.NewVec3(0, 0, -1))
			hit, isHit := triangle.Hit(ray, 0.001, 1000.0)

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !tt.expectHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.Normal != triangle.Normal() {
				t.Errorf("Expected winding normal %v, got %v", triangle.Normal(), hit.Normal)
			}
		})
	}
}

func TestTriangle_Hit_ParallelRay(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		testMaterial())

	// Ray lying in the triangle's plane: rejected by the determinant guard
	ray := core.NewRay(core.NewVec3(-2, 0, 0), core.NewVec3(1, 0, 0))
	if hit, isHit := triangle.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected miss for in-plane ray, but got hit at t=%f", hit.T)
	}
}

func TestTriangle_Hit_BehindOrigin(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(-1, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0, 1, 0),
		testMaterial())

	// Triangle behind the ray origin: t would be negative
	ray := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, -1))
	if hit, isHit := triangle.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected miss for triangle behind origin, but got hit at t=%f", hit.T)
	}
}

func TestTriangle_Hit_Idempotent(t *testing.T) {
	triangle := NewTriangle(
		core.NewVec3(-1, -1, -2),
		core.NewVec3(1, -1, -2),
		core.NewVec3(0, 1, -2),
		testMaterial())
	ray := core.NewRay(core.NewVec3(0.1, -0.2, 0), core.NewVec3(-0.05, 0.03, -1).Normalize())

	first, okFirst := triangle.Hit(ray, 0.001, 1000.0)
	second, okSecond := triangle.Hit(ray, 0.001, 1000.0)

	if okFirst != okSecond {
		t.Fatalf("Hit flags differ between identical calls: %t vs %t", okFirst, okSecond)
	}
	if okFirst && *first != *second {
		t.Errorf("Intersecting twice gave different records: %+v vs %+v", first, second)
	}
}
