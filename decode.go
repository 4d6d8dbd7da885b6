package stdmwatermark

import "math"

// DecodedBits holds the raw per-position soft decisions, one per
// anti-diagonal stream position expanded across all N repetitions of
// every mark bit: length Hm*Wm*N (§3).
type DecodedBits []int

// Decode re-derives each mark bit's decision using the reference rule
// of §4.5: it compares the raw coefficient at each stream position
// against the original mark bit's quantization threshold. This makes
// Decode a bit-error meter for a known-mark, noise-only channel — it
// is not a standalone blind decoder (§9 "Blind decoding caveat"); use
// DecodeBlind for that. d should be the result of re-running Forward
// on the (possibly noisy) watermarked image.
func Decode(d CoefTensor, mark Mark, p Params) (DecodedBits, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.L() > p.M {
		return nil, ParameterInfeasibleError("mark bit count L must not exceed payload block count M")
	}
	proj := Projection(d, p)
	stream := antiDiagonalStream(p.M)
	n := p.N()
	bits := make(DecodedBits, p.L()*n)
	for i := 0; i < p.L(); i++ {
		bRef := mark.flatBit(i)
		threshold := quantize(proj[i], bRef, p.Delta) - proj[i]
		for j := 0; j < n; j++ {
			s := d.get(stream[i*n+j])
			bit := 0
			if s < threshold {
				bit = 1
			}
			bits[i*n+j] = bit
		}
	}
	return bits, nil
}

// DecodeBlind recovers each mark bit without access to the original
// mark: for mark position i it picks whichever lattice polarity b puts
// Q_b(x_projection[i]) nearest to x_projection[i], the argmin_b rule
// that reduces to a sign test under AWGN. It returns one bit per mark
// position (length L).
func DecodeBlind(d CoefTensor, p Params) ([]int, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.L() > p.M {
		return nil, ParameterInfeasibleError("mark bit count L must not exceed payload block count M")
	}
	proj := Projection(d, p)
	bits := make([]int, p.L())
	for i := 0; i < p.L(); i++ {
		best, bestDist := 0, math.Inf(1)
		for b := 0; b <= 1; b++ {
			if dist := math.Abs(proj[i] - quantize(proj[i], b, p.Delta)); dist < bestDist {
				best, bestDist = b, dist
			}
		}
		bits[i] = best
	}
	return bits, nil
}

// BitErrorRate counts mark positions whose first repetition (j=0)
// matches the original mark bit and returns 1 - matches/L (§4.5).
func BitErrorRate(bits DecodedBits, mark Mark, p Params) float64 {
	n := p.N()
	matches := 0
	for i := 0; i < p.L(); i++ {
		if bits[i*n] == mark.flatBit(i) {
			matches++
		}
	}
	return 1 - float64(matches)/float64(p.L())
}
