package stdmwatermark

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQ_AtZero(t *testing.T) {
	assert.InDelta(t, 0.5, Q(0), 1e-12)
}

func TestTheoreticalBitErrorRate_ReferencePoint(t *testing.T) {
	pe := TheoreticalBitErrorRate(1.5, 4.0)
	// §8 scenario 3: theory_p_e is on the order of 1e-6 for
	// delta=4, sigma=1.5, N=8.
	assert.Greater(t, pe, 0.0)
	assert.Less(t, pe, 1e-4)
}

func TestTheoreticalBitErrorRate_MonotonicInDeltaOverSigma(t *testing.T) {
	sigma := 1.0
	peLow := TheoreticalBitErrorRate(sigma, 1.0)
	peHigh := TheoreticalBitErrorRate(sigma, 4.0)
	assert.Less(t, peHigh, peLow)
}
