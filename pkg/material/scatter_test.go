package material

import (
	"math"
	"testing"

	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
)

func TestScatterDiffuseWeighting(t *testing.T) {
	white := NewDiffuse(core.NewVec3(1, 1, 1))
	hit := HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		T:        1.0,
		Material: white,
	}
	ray := core.Ray{Origin: core.NewVec3(0, 1, 0), Direction: core.NewVec3(0, -1, 0)}

	stream := core.NewRandomStream(42)
	var cosineSum float64
	const n = 20000

	for i := 0; i < n; i++ {
		result := Scatter(ray, hit, stream)

		cosine := result.Scattered.Direction.Dot(hit.Normal)
		if cosine < 0 {
			t.Fatalf("Scattered direction below surface: %v", result.Scattered.Direction)
		}
		cosineSum += cosine

		// The attenuation bakes the cos/π weight of the Lambertian BRDF.
		// Dividing it back out must recover the albedo exactly: the
		// cosine-weighted sampling cancels the factor in expectation.
		if cosine > 1e-9 {
			weighted := result.Attenuation.X / (cosine / math.Pi)
			if math.Abs(weighted-1.0) > 1e-9 {
				t.Fatalf("Weighted attenuation %f, expected albedo 1", weighted)
			}
		}
	}

	// Cosine-weighted hemisphere directions have E[cos θ] = 2/3
	meanCosine := cosineSum / n
	if math.Abs(meanCosine-2.0/3.0) > 0.02 {
		t.Errorf("Mean cosine %f, expected 2/3 for cosine-weighted directions", meanCosine)
	}
}

func TestScatterDiffuseOriginOffset(t *testing.T) {
	hit := HitRecord{
		Point:    core.NewVec3(1, 2, 3),
		Normal:   core.NewVec3(0, 0, 1),
		T:        2.0,
		Material: NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)),
	}
	ray := core.Ray{Origin: core.NewVec3(1, 2, 5), Direction: core.NewVec3(0, 0, -1)}

	result := Scatter(ray, hit, core.NewRandomStream(1))

	expected := hit.Point.Add(hit.Normal.Multiply(Epsilon))
	if result.Scattered.Origin != expected {
		t.Errorf("Expected origin %v offset along the normal, got %v", expected, result.Scattered.Origin)
	}
}

func TestScatterMetalMirror(t *testing.T) {
	tint := core.NewVec3(0.8, 0.6, 0.2)
	hit := HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		T:        1.0,
		Material: NewMetal(tint, 0),
	}
	incoming := core.NewVec3(1, -1, 0).Normalize()
	ray := core.Ray{Origin: core.NewVec3(-1, 1, 0), Direction: incoming, Time: 0.25}

	result := Scatter(ray, hit, core.NewRandomStream(1))

	expected := core.NewVec3(1, 1, 0).Normalize()
	tolerance := 1e-12
	if math.Abs(result.Scattered.Direction.X-expected.X) > tolerance ||
		math.Abs(result.Scattered.Direction.Y-expected.Y) > tolerance ||
		math.Abs(result.Scattered.Direction.Z-expected.Z) > tolerance {
		t.Errorf("Expected mirror reflection %v, got %v", expected, result.Scattered.Direction)
	}

	if result.Attenuation != tint {
		t.Errorf("Expected specular tint %v unconditionally, got %v", tint, result.Attenuation)
	}

	if result.Scattered.Time != ray.Time {
		t.Errorf("Expected shutter time %f carried through, got %f", ray.Time, result.Scattered.Time)
	}
}

func TestScatterDielectricFromOutside(t *testing.T) {
	glass := NewDielectric(core.NewVec3(0.2, 0.2, 0.2), 1.5, 0)
	hit := HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		T:        3.0,
		Material: glass,
	}
	// dot(direction, normal) < 0: hitting the surface from outside
	ray := core.Ray{Origin: core.NewVec3(0, 1, 0), Direction: core.NewVec3(0, -1, 0)}

	result := Scatter(ray, hit, core.NewRandomStream(9))

	// No absorption on the outside branch
	if result.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected attenuation (1,1,1) from outside, got %v", result.Attenuation)
	}
}

func TestScatterDielectricBeersLaw(t *testing.T) {
	refractColor := core.NewVec3(0.5, 0.25, 0.1)
	glass := NewDielectric(refractColor, 1.5, 0)
	hit := HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		T:        2.0,
		Material: glass,
	}
	// dot(direction, normal) > 0: the ray traveled T units inside the medium
	ray := core.Ray{Origin: core.NewVec3(0, -2, 0), Direction: core.NewVec3(0, 1, 0)}

	result := Scatter(ray, hit, core.NewRandomStream(9))

	expected := refractColor.Multiply(-hit.T).Exp()
	tolerance := 1e-12
	if math.Abs(result.Attenuation.X-expected.X) > tolerance ||
		math.Abs(result.Attenuation.Y-expected.Y) > tolerance ||
		math.Abs(result.Attenuation.Z-expected.Z) > tolerance {
		t.Errorf("Expected Beer's-law attenuation %v over distance %f, got %v",
			expected, hit.T, result.Attenuation)
	}
}

func TestScatterDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(core.NewVec3(0, 0, 0), 1.5, 0)
	hit := HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		T:        0.5,
		Material: glass,
	}
	// From inside at sin θ = 0.8 > 1/1.5: refraction is impossible
	incoming := core.NewVec3(0.8, 0.6, 0)
	ray := core.Ray{Origin: core.NewVec3(-0.8, -0.6, 0), Direction: incoming}

	expected := core.NewVec3(0.8, -0.6, 0)
	stream := core.NewRandomStream(21)
	for i := 0; i < 200; i++ {
		result := Scatter(ray, hit, stream)

		d := result.Scattered.Direction
		tolerance := 1e-12
		if math.Abs(d.X-expected.X) > tolerance ||
			math.Abs(d.Y-expected.Y) > tolerance ||
			math.Abs(d.Z-expected.Z) > tolerance {
			t.Fatalf("Draw %d: expected forced reflection %v, got %v", i, expected, d)
		}
		if d.Dot(hit.Normal) >= 0 {
			t.Fatalf("Draw %d: reflected ray left the medium: %v", i, d)
		}
	}
}

func TestSchlick(t *testing.T) {
	tests := []struct {
		name   string
		refIdx float64
	}{
		{"glass", 1.5},
		{"water", 1.33},
		{"diamond", 2.42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// At normal incidence Schlick must return the base reflectance r0
			r0 := (1 - tt.refIdx) / (1 + tt.refIdx)
			r0 = r0 * r0
			if got := Schlick(1.0, tt.refIdx); math.Abs(got-r0) > 1e-12 {
				t.Errorf("Schlick(1, %f) = %f, expected r0 = %f", tt.refIdx, got, r0)
			}

			// Reflectance must not decrease as the angle gets more grazing
			prev := Schlick(1.0, tt.refIdx)
			for cosine := 0.99; cosine >= 0; cosine -= 0.01 {
				cur := Schlick(cosine, tt.refIdx)
				if cur < prev-1e-12 {
					t.Fatalf("Schlick decreased at cosine %f: %f < %f", cosine, cur, prev)
				}
				prev = cur
			}
		})
	}
}

func TestScatterUnknownKindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for unknown material kind")
		}
	}()

	hit := HitRecord{
		Normal:   core.NewVec3(0, 1, 0),
		Material: Material{Kind: Kind(99)},
	}
	Scatter(core.Ray{Direction: core.NewVec3(0, -1, 0)}, hit, core.NewRandomStream(1))
}
