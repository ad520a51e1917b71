package core

import "math"

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomStream is a deterministic, seed-evolving random number generator.
// Every draw advances the seed by two fixed increments and hashes the bit
// patterns of the two advanced values, so the sequence of draws is a strict
// total order: the same starting seed always reproduces the same stream.
//
// A stream is not safe for concurrent use. Parallel rendering must give
// every pixel sample its own stream, seeded uniquely from pixel coordinates
// and sample index.
//
// Seeds must stay well below 2^21 in magnitude: above that, float32 rounds
// the 0.1 increments away and the stream stops advancing. Callers deriving
// seeds from large indices must fold them into that range first.
type RandomStream struct {
	seed float32
}

// NewRandomStream creates a stream starting at the given seed
func NewRandomStream(seed float32) *RandomStream {
	return &RandomStream{seed: seed}
}

// baseHash mixes two 32-bit patterns into one. The 1103515245 multiplier is
// borrowed from the minimal-standard LCG family; it is used here purely as a
// bit spreader, not as an LCG recurrence.
func baseHash(px, py uint32) uint32 {
	qx := 1103515245 * ((px >> 1) ^ py)
	qy := 1103515245 * ((py >> 1) ^ px)
	h := 1103515245 * (qx ^ (qy >> 3))
	return h ^ (h >> 16)
}

// advance steps the seed twice and hashes the two advanced values.
// The seed is float32 because the hash is defined over 32-bit IEEE-754
// bit patterns.
func (r *RandomStream) advance() uint32 {
	r.seed += 0.1
	a := math.Float32bits(r.seed)
	r.seed += 0.1
	b := math.Float32bits(r.seed)
	return baseHash(a, b)
}

const inv31 = 1.0 / float64(1<<31)

// Get1D returns one uniform variate in [0, 1). The hash output is masked to
// 31 bits and normalized by 2^31, so the largest possible draw is 1 - 2^-31.
// Uniformity is validated empirically, not by a formal statistical
// guarantee.
func (r *RandomStream) Get1D() float64 {
	return float64(r.advance()&0x7fffffff) * inv31
}

// Get2D returns two uniform variates from a single hash, spread by the
// 48271 multiplier
func (r *RandomStream) Get2D() Vec2 {
	n := r.advance()
	return NewVec2(
		float64(n&0x7fffffff)*inv31,
		float64((n*48271)&0x7fffffff)*inv31,
	)
}

// Get3D returns three uniform variates from a single hash, spread by the
// 16807 and 48271 multipliers
func (r *RandomStream) Get3D() Vec3 {
	n := r.advance()
	return NewVec3(
		float64(n&0x7fffffff)*inv31,
		float64((n*16807)&0x7fffffff)*inv31,
		float64((n*48271)&0x7fffffff)*inv31,
	)
}

// SampleUnitDisk maps a 2D sample to a point in the unit disk using polar
// sampling: radius = sqrt(u1), angle = 2π*u2. Used for lens sampling.
func SampleUnitDisk(sample Vec2) Vec2 {
	radius := math.Sqrt(sample.X)
	theta := 2 * math.Pi * sample.Y
	return NewVec2(radius*math.Sin(theta), radius*math.Cos(theta))
}

// SampleUnitSphere maps a 3D sample to a point inside the unit ball:
// z uniform in [-1,1], azimuth uniform in [0,2π), radius = cbrt(u3) to
// account for volume scaling.
func SampleUnitSphere(sample Vec3) Vec3 {
	z := 2*sample.X - 1
	phi := 2 * math.Pi * sample.Y
	radius := math.Cbrt(sample.Z)
	ring := math.Sqrt(math.Max(0, 1-z*z))
	return NewVec3(
		radius*ring*math.Sin(phi),
		radius*ring*math.Cos(phi),
		radius*z,
	)
}

// SampleUnitVector returns a uniformly distributed unit vector. Adding it to
// a surface normal yields a cosine-weighted hemisphere direction.
func SampleUnitVector(sample Vec3) Vec3 {
	return SampleUnitSphere(sample).Normalize()
}
