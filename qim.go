package stdmwatermark

import "math"

// Projection computes x_projection[m] for every payload block m in
// [0, p.M) (§4.4): the N-normalized, W-signed sum of the block's
// anti-diagonal coefficients.
func Projection(d CoefTensor, p Params) []float64 {
	n := float64(p.N())
	proj := make([]float64, p.M)
	for m := 0; m < p.M; m++ {
		var sum float64
		for k := 0; k < antiDiagLength; k++ {
			sum += d[m][antiDiagLength-1-k][k] * W(k)
		}
		proj[m] = sum / n
	}
	return proj
}

// quantize is Q_b(x): snaps x to the b-dithered lattice with step
// delta (§4.4). b must be 0 or 1.
func quantize(x float64, b int, delta float64) float64 {
	dither := -delta / 4
	if b == 1 {
		dither = delta / 4
	}
	return delta*math.Round((x-dither)/delta) + dither
}

// Embed mutates d in place so that the N consecutive anti-diagonal
// stream positions belonging to each mark bit sum coherently to that
// bit's quantization lattice point (§4.4). It requires p.Validate() to
// hold and p.L() <= p.M, since each mark bit i references the
// projection of payload block i directly (the original source's
// x_projection[i] indexing, preserved here rather than "corrected",
// since it is the documented embedding rule, not a bug to fix).
func Embed(d CoefTensor, mark Mark, p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.L() > p.M {
		return ParameterInfeasibleError("mark bit count L must not exceed payload block count M")
	}
	proj := Projection(d, p)
	stream := antiDiagonalStream(p.M)
	n := p.N()
	for i := 0; i < p.L(); i++ {
		b := mark.flatBit(i)
		delta := quantize(proj[i], b, p.Delta) - proj[i]
		for j := 0; j < n; j++ {
			d.add(stream[i*n+j], delta*W(j))
		}
	}
	return nil
}
