package stdmwatermark

import "fmt"

// antiDiagLength is K, the number of coefficients on a block's
// anti-diagonal (§3, §4.4).
const antiDiagLength = blockSize

// CoefTensor holds the 8x8 DCT coefficients for every block of a cover
// image, block-major in raster order (§3). It is produced by Forward,
// mutated in place by Embed, and read by Decode/DecodeBlind.
type CoefTensor [][blockSize][blockSize]float64

// SpatialTensor holds the 8x8 spatial-domain pixel values for every
// block, produced by Inverse and optionally perturbed in place by
// AddNoise. Values are clamped to [0, 255].
type SpatialTensor [][blockSize][blockSize]float64

// NewCoefTensor allocates a zeroed coefficient tensor for b blocks.
func NewCoefTensor(b int) CoefTensor { return make(CoefTensor, b) }

// NewSpatialTensor allocates a zeroed spatial tensor for b blocks.
func NewSpatialTensor(b int) SpatialTensor { return make(SpatialTensor, b) }

// BlockIndex maps a block's raster coordinates to its index in a
// tensor, bx + by*blockCols (§9 "Block index/layout convention" — the
// source's pixel.size()/width expression is only correct for square
// images; this is the unambiguous replacement).
func BlockIndex(bx, by, blockCols int) int {
	return bx + by*blockCols
}

// Params is the process-wide configuration for one encode-or-decode
// pass: the cover's block grid, the payload block count M, the
// quantization step Delta, the noise standard deviation Sigma, and the
// mark's dimensions (from which the repetition factor N is derived).
type Params struct {
	BlockRows, BlockCols int // H/8, W/8
	M                    int // payload block count, M <= BlockRows*BlockCols
	Delta                float64
	Sigma                float64
	MarkHeight, MarkWidth int
}

// BlockCount returns B, the total number of 8x8 blocks in the cover.
func (p Params) BlockCount() int { return p.BlockRows * p.BlockCols }

// L returns the number of mark bits, Hm*Wm.
func (p Params) L() int { return p.MarkHeight * p.MarkWidth }

// N returns the repetition factor, M*K/L (§3 invariant).
func (p Params) N() int {
	return p.M * antiDiagLength / p.L()
}

// Validate checks the §3/§7 feasibility invariants: B >= M, M*K is an
// exact multiple of L, N >= 1, and Delta > 0. It returns
// ParameterInfeasibleError on violation, rejecting the configuration
// before any transform runs.
func (p Params) Validate() error {
	if p.Delta <= 0 {
		return ParameterInfeasibleError(fmt.Sprintf("delta must be positive, got %v", p.Delta))
	}
	if p.L() <= 0 {
		return ParameterInfeasibleError("mark must have at least one bit")
	}
	if p.M <= 0 || p.M > p.BlockCount() {
		return ParameterInfeasibleError(fmt.Sprintf("M=%d must be in (0, %d]", p.M, p.BlockCount()))
	}
	if (p.M*antiDiagLength)%p.L() != 0 {
		return ParameterInfeasibleError(fmt.Sprintf("M*K=%d is not a multiple of L=%d", p.M*antiDiagLength, p.L()))
	}
	if p.N() < 1 {
		return ParameterInfeasibleError(fmt.Sprintf("N=%d must be >= 1", p.N()))
	}
	return nil
}

// coord is an ordered (block, u, v) coefficient coordinate. The embedder
// and decoder both walk the payload anti-diagonal as a flat slice of
// coords rather than the raw double* handle table the original source
// used (§9 "Dynamic allocation of pointer arrays").
type coord struct {
	block, u, v int
}

// antiDiagonalStream returns the K*M coordinates of the payload
// anti-diagonal in stream order: for block m = 0..M-1 and k = 0..K-1,
// position 8m+k addresses D[m][7-k][k] (§4.4).
func antiDiagonalStream(m int) []coord {
	out := make([]coord, 0, m*antiDiagLength)
	for block := 0; block < m; block++ {
		for k := 0; k < antiDiagLength; k++ {
			out = append(out, coord{block: block, u: antiDiagLength - 1 - k, v: k})
		}
	}
	return out
}

// get reads the tensor value at a coordinate.
func (d CoefTensor) get(cd coord) float64 { return d[cd.block][cd.u][cd.v] }

// add mutates the tensor value at a coordinate in place.
func (d CoefTensor) add(cd coord, delta float64) { d[cd.block][cd.u][cd.v] += delta }
