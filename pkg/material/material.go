package material

import (
	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
)

// Kind identifies one of the closed set of material variants.
// Scatter dispatches on it with an exhaustive switch, so an out-of-range
// value can only come from malformed scene data.
type Kind int

const (
	// Diffuse is a Lambertian surface tinted by Albedo
	Diffuse Kind = iota
	// Metal is a mirror reflector tinted by Albedo
	Metal
	// Dielectric is a transparent medium with Beer's-law absorption
	Dielectric
)

// Material is a flat value record attached to a primitive at scene build
// time. Fields a Kind does not use stay zero. Roughness is carried on
// metals and dielectrics for interface parity but is not consumed by
// Scatter.
type Material struct {
	Kind         Kind
	Albedo       core.Vec3 // diffuse albedo or metal specular tint
	Roughness    float64
	RefractColor core.Vec3 // absorption per unit distance traveled inside a dielectric
	RefIdx       float64   // index of refraction, typically > 1
}

// NewDiffuse creates a Lambertian material with the given albedo
func NewDiffuse(albedo core.Vec3) Material {
	return Material{Kind: Diffuse, Albedo: albedo}
}

// NewMetal creates a mirror material with the given specular tint.
// Roughness 0 is a perfect mirror.
func NewMetal(tint core.Vec3, roughness float64) Material {
	return Material{Kind: Metal, Albedo: tint, Roughness: roughness}
}

// NewDielectric creates a transparent material. refractColor is the
// Beer's-law absorption applied when a ray travels through the interior.
func NewDielectric(refractColor core.Vec3, refIdx, roughness float64) Material {
	return Material{Kind: Dielectric, RefractColor: refractColor, RefIdx: refIdx, Roughness: roughness}
}

// HitRecord contains information about a ray-object intersection.
// The normal always faces outward from the primitive; dielectric
// scattering decides inside/outside from the sign of its dot product
// with the incoming direction. It is a plain value record, produced by
// intersection routines and consumed by Scatter.
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward-facing unit normal
	T        float64   // Parameter t along the ray
	Material Material  // Material of the hit object
}
