package geometry

import (
	"math"
	"testing"

	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
)

func TestMovingSphere_CenterInterpolation(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, 0),
		core.NewVec3(2, 0, 0),
		0, 1, 0.5, testMaterial())

	tests := []struct {
		name     string
		time     float64
		expected core.Vec3
	}{
		{"at time0", 0, core.NewVec3(0, 0, 0)},
		{"midway", 0.5, core.NewVec3(1, 0, 0)},
		{"at time1", 1, core.NewVec3(2, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			center := sphere.CenterAt(tt.time)
			if center != tt.expected {
				t.Errorf("Expected center %v at time %f, got %v", tt.expected, tt.time, center)
			}
		})
	}
}

func TestMovingSphere_Hit_UsesRayTime(t *testing.T) {
	// The sphere moves two units along +x over the shutter interval; a ray
	// aimed at the time-0 position only connects at shutter open
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, -2),
		core.NewVec3(2, 0, -2),
		0, 1, 0.5, testMaterial())

	atOpen := core.Ray{Origin: core.NewVec3(0, 0, 0), Direction: core.NewVec3(0, 0, -1), Time: 0}
	hit, isHit := sphere.Hit(atOpen, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit at shutter open, but got miss")
	}
	if math.Abs(hit.T-1.5) > 1e-9 {
		t.Errorf("Expected t=1.5, got t=%f", hit.T)
	}

	atClose := core.Ray{Origin: core.NewVec3(0, 0, 0), Direction: core.NewVec3(0, 0, -1), Time: 1}
	if hit, isHit := sphere.Hit(atClose, 0.001, 1000.0); isHit {
		t.Errorf("Expected miss at shutter close, but got hit at t=%f", hit.T)
	}

	// At shutter close the sphere sits at (2, 0, -2)
	aimedAtClose := core.Ray{Origin: core.NewVec3(2, 0, 0), Direction: core.NewVec3(0, 0, -1), Time: 1}
	if _, isHit := sphere.Hit(aimedAtClose, 0.001, 1000.0); !isHit {
		t.Error("Expected hit at the interpolated close position, but got miss")
	}
}

func TestMovingSphere_Hit_Idempotent(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(-0.5, 0.1, -3),
		core.NewVec3(0.5, 0.4, -3),
		0, 1, 0.8, testMaterial())
	ray := core.Ray{
		Origin:    core.NewVec3(0, 0, 0),
		Direction: core.NewVec3(0, 0.05, -1).Normalize(),
		Time:      0.37,
	}

	first, okFirst := sphere.Hit(ray, 0.001, 1000.0)
	second, okSecond := sphere.Hit(ray, 0.001, 1000.0)

	if okFirst != okSecond {
		t.Fatalf("Hit flags differ between identical calls: %t vs %t", okFirst, okSecond)
	}
	if okFirst && *first != *second {
		t.Errorf("Intersecting twice gave different records: %+v vs %+v", first, second)
	}
}
