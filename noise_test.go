package stdmwatermark

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNoise_DeterministicForSameSeed(t *testing.T) {
	f1 := NewSpatialTensor(4)
	f2 := NewSpatialTensor(4)
	for b := range f1 {
		for i := 0; i < blockSize; i++ {
			for j := 0; j < blockSize; j++ {
				f1[b][i][j] = 128
				f2[b][i][j] = 128
			}
		}
	}

	AddNoise(f1, 1.5, NewRNG(7))
	AddNoise(f2, 1.5, NewRNG(7))

	require.Equal(t, f1, f2)
}

func TestAddNoise_DifferentSeedsDiverge(t *testing.T) {
	f1 := NewSpatialTensor(1)
	f2 := NewSpatialTensor(1)

	AddNoise(f1, 1.5, NewRNG(1))
	AddNoise(f2, 1.5, NewRNG(2))

	assert.NotEqual(t, f1, f2)
}

func TestEmbed_MeanAbsoluteDeviationBoundedByDelta(t *testing.T) {
	p := referenceParams(4.0)
	cover := constantCover(512, 512, 128)
	mark := checkerboardMark(64, 64)

	d := Forward(cover, p.BlockRows, p.BlockCols)
	require.NoError(t, Embed(d, mark, p))
	f := Inverse(d)

	var total float64
	var n int
	for b := range f {
		for i := 0; i < blockSize; i++ {
			for j := 0; j < blockSize; j++ {
				total += absFloat(f[b][i][j] - 128)
				n++
			}
		}
	}
	meanDeviation := total / float64(n)

	// §8 "Embedding preserves mean brightness": the mean absolute
	// pixel deviation is O(delta), bounded by a constant multiple of
	// delta independent of sigma.
	assert.Less(t, meanDeviation, 4*p.Delta)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
