package material

import (
	"fmt"
	"math"

	"github.com/constancadcunha/GPU-PathTracer/pkg/core"
)

// Epsilon offsets scattered ray origins along the surface normal to avoid
// self-intersection with the surface that produced the hit.
const Epsilon = 1e-3

// ScatterResult contains the result of a scattering event
type ScatterResult struct {
	Scattered   core.Ray  // The outgoing ray
	Attenuation core.Vec3 // Multiplicative color factor for the path
}

// Scatter produces the outgoing ray and attenuation for a hit. Scattering
// never fails for a well-formed HitRecord; an unrecognized Kind means the
// scene data is malformed and is a fatal configuration error.
func Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult {
	switch hit.Material.Kind {
	case Diffuse:
		return scatterDiffuse(rayIn, hit, sampler)
	case Metal:
		return scatterMetal(rayIn, hit)
	case Dielectric:
		return scatterDielectric(rayIn, hit, sampler)
	default:
		panic(fmt.Sprintf("material: unknown kind %d", hit.Material.Kind))
	}
}

// scatterDiffuse perturbs the surface normal by a random unit vector,
// which distributes the outgoing direction proportionally to cos(θ).
func scatterDiffuse(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult {
	direction := hit.Normal.Add(core.SampleUnitVector(sampler.Get3D())).Normalize()
	origin := hit.Point.Add(hit.Normal.Multiply(Epsilon))

	// The Lambertian cosine term and 1/π normalization are baked into the
	// attenuation. This is a fully weighted single-sample estimate: callers
	// must not re-apply a cosine factor or divide by a PDF.
	cosine := math.Max(direction.Dot(hit.Normal), 0)
	attenuation := hit.Material.Albedo.Multiply(cosine / math.Pi)

	return ScatterResult{
		Scattered:   core.Ray{Origin: origin, Direction: direction, Time: rayIn.Time},
		Attenuation: attenuation,
	}
}

// scatterMetal mirrors the incoming direction about the normal. Roughness
// is carried on the material record but no fuzzing is applied here.
func scatterMetal(rayIn core.Ray, hit HitRecord) ScatterResult {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)
	origin := hit.Point.Add(hit.Normal.Multiply(Epsilon))

	return ScatterResult{
		Scattered:   core.Ray{Origin: origin, Direction: reflected, Time: rayIn.Time},
		Attenuation: hit.Material.Albedo,
	}
}

// scatterDielectric chooses stochastically between reflection and
// refraction using Schlick's approximation, forcing reflection on total
// internal reflection. Rays hitting from inside pick up Beer's-law
// absorption over the distance traveled through the medium.
func scatterDielectric(rayIn core.Ray, hit HitRecord, sampler core.Sampler) ScatterResult {
	attenuation := core.NewVec3(1, 1, 1)
	unitDir := rayIn.Direction.Normalize()

	outwardNormal := hit.Normal
	niOverNt := 1.0 / hit.Material.RefIdx
	cosine := -unitDir.Dot(hit.Normal)
	reflectProb := Schlick(cosine, hit.Material.RefIdx)

	if unitDir.Dot(hit.Normal) > 0 {
		// Hit from inside: the ray traveled hit.T units through the medium.
		outwardNormal = hit.Normal.Negate()
		niOverNt = hit.Material.RefIdx
		cosine = unitDir.Dot(hit.Normal)
		attenuation = hit.Material.RefractColor.Multiply(-hit.T).Exp()

		// Going from the denser medium: check for total internal reflection.
		sinT2 := niOverNt * niOverNt * (1 - cosine*cosine)
		if sinT2 > 1 {
			reflectProb = 1
		} else {
			reflectProb = Schlick(cosine, hit.Material.RefIdx)
		}
	}

	var direction, origin core.Vec3
	if sampler.Get1D() < reflectProb {
		direction = Reflect(unitDir, outwardNormal)
		origin = hit.Point.Add(outwardNormal.Multiply(Epsilon))
	} else {
		direction = Refract(unitDir, outwardNormal, niOverNt)
		// Push the origin across the surface in the transmission direction.
		origin = hit.Point.Subtract(outwardNormal.Multiply(Epsilon))
	}

	return ScatterResult{
		Scattered:   core.Ray{Origin: origin, Direction: direction, Time: rayIn.Time},
		Attenuation: attenuation,
	}
}

// Reflect mirrors a vector v about a surface normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract computes the transmitted direction through a surface with normal n
// using the vector form of Snell's law. uv must be unit length and the
// caller must have ruled out total internal reflection.
func Refract(uv, n core.Vec3, niOverNt float64) core.Vec3 {
	dt := uv.Dot(n)
	discriminant := 1.0 - niOverNt*niOverNt*(1.0-dt*dt)
	return uv.Subtract(n.Multiply(dt)).Multiply(niOverNt).
		Subtract(n.Multiply(math.Sqrt(discriminant)))
}

// Schlick approximates the Fresnel reflectance at a dielectric interface.
// At cosine = 1 (normal incidence) it returns the base reflectance r0.
func Schlick(cosine, refIdx float64) float64 {
	r0 := (1 - refIdx) / (1 + refIdx)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
