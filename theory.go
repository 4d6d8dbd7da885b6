package stdmwatermark

import "math"

// theorySumBound truncates the infinite sum in TheoreticalBitErrorRate symmetrically at
// +-100, which the spec notes gives double-precision convergence for
// all sigma, delta > 0 of interest (§4.7).
const theorySumBound = 100

// theoryN is the repetition factor the closed-form curve is evaluated
// at (§4.7); it is fixed at the anti-diagonal length K, independent of
// the M/L configuration used for a given empirical run.
const theoryN = antiDiagLength

// Q is the Gaussian tail probability, 0.5*erfc(x/sqrt(2)).
func Q(x float64) float64 {
	return 0.5 * math.Erfc(x/math.Sqrt2)
}

// TheoreticalBitErrorRate computes the closed-form symbol-error
// probability p_e(sigma, delta) for N=8 (§4.7), to be compared against
// the empirical rate from BitErrorRate.
func TheoreticalBitErrorRate(sigma, delta float64) float64 {
	sqrtN := math.Sqrt(theoryN)
	var pe float64
	for m := -theorySumBound; m <= theorySumBound; m++ {
		lo := sqrtN * (float64(m)*delta + delta/4) / sigma
		hi := sqrtN * (float64(m)*delta + 3*delta/4) / sigma
		pe += Q(lo) - Q(hi)
	}
	return pe
}
