package stdmwatermark

import (
	"math"
	"math/rand"
)

// NewRNG returns a seedable PRNG for the noise channel. §5 requires the
// generator be a seedable component passed explicitly rather than a
// package-level global; callers own the returned *rand.Rand for the
// life of one encode-or-decode pass.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// AddNoise perturbs every spatial-domain sample of f in place with
// independent AWGN of standard deviation sigma, using the Box-Muller
// transform (§4.6) rather than a library-supplied Gaussian sampler, so
// that a given seed reproduces the same draws on every run: two
// uniform(0,1) variates per sample, consumed in block-major,
// row-major, column-major order.
func AddNoise(f SpatialTensor, sigma float64, rng *rand.Rand) {
	for b := range f {
		for j := 0; j < blockSize; j++ {
			for k := 0; k < blockSize; k++ {
				u1, u2 := rng.Float64(), rng.Float64()
				noise := math.Sqrt(-2*math.Log(1-u1)) * math.Sin(2*math.Pi*u2) * sigma
				f[b][j][k] += noise
			}
		}
	}
}
