// Package sweep runs the encode -> noise -> decode -> score pipeline
// once per (Delta, Sigma) grid cell and writes the §6.4 result
// streams. The original source's sweep loops exist but are disabled
// (single-point ranges); §9's Open Question resolves this by making
// the grid a first-class parameter, []Point, rather than a dead loop
// bound.
package sweep

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"

	watermark "github.com/tianyili/stdm-watermark"
	"github.com/tianyili/stdm-watermark/internal/bitmap"
)

// Point is one (Delta, Sigma) cell of the sweep grid.
type Point struct {
	Delta float64
	Sigma float64
}

// Result holds one point's empirical and theoretical figures.
type Result struct {
	Point
	Empirical   float64
	Theoretical float64
}

// Config bundles the inputs one sweep run needs.
type Config struct {
	Cover *bitmap.Cover
	Mark  watermark.Mark
	M     int
	Seed  int64
	// WorkDir is where the intermediate watermarked BMP is staged per
	// point; decoding always re-reads it from disk (§9's resolution of
	// the ambiguous second copy_bmp_pixel() call), never from the
	// in-memory spatial tensor that produced it.
	WorkDir string
}

// Run executes one pipeline pass per grid point and appends a
// "Delta empirical" line to result1 and a "Delta theoretical" line to
// result2 for each, both at 6-digit precision (§6.4). The returned
// slice mirrors the streams for callers that also want the figures
// in-process (e.g. a CLI that prints a summary table).
func Run(log zerolog.Logger, cfg Config, points []Point, result1, result2 io.Writer, bar *progressbar.ProgressBar) ([]Result, error) {
	blockRows := cfg.Cover.Height / 8
	blockCols := cfg.Cover.Width / 8

	results := make([]Result, 0, len(points))
	for idx, pt := range points {
		params := watermark.Params{
			BlockRows:  blockRows,
			BlockCols:  blockCols,
			M:          cfg.M,
			Delta:      pt.Delta,
			Sigma:      pt.Sigma,
			MarkHeight: cfg.Mark.Height(),
			MarkWidth:  cfg.Mark.Width(),
		}
		if err := params.Validate(); err != nil {
			return nil, err
		}

		d := watermark.Forward(cfg.Cover.Pixels, blockRows, blockCols)
		if err := watermark.Embed(d, cfg.Mark, params); err != nil {
			return nil, err
		}
		f := watermark.Inverse(d)

		rng := watermark.NewRNG(cfg.Seed + int64(idx))
		watermark.AddNoise(f, pt.Sigma, rng)

		stagedPath := filepath.Join(cfg.WorkDir, fmt.Sprintf("watermarked-%04d.bmp", idx))
		if err := bitmap.WriteWatermarked(stagedPath, cfg.Cover, f, blockCols); err != nil {
			return nil, err
		}

		watermarked, err := bitmap.ReadCover(stagedPath)
		if err != nil {
			return nil, err
		}
		d2 := watermark.Forward(watermarked.Pixels, blockRows, blockCols)
		bits, err := watermark.Decode(d2, cfg.Mark, params)
		if err != nil {
			return nil, err
		}
		empirical := watermark.BitErrorRate(bits, cfg.Mark, params)
		theoretical := watermark.TheoreticalBitErrorRate(pt.Sigma, pt.Delta)

		log.Info().
			Float64("delta", pt.Delta).
			Float64("sigma", pt.Sigma).
			Float64("empirical_ber", empirical).
			Float64("theoretical_pe", theoretical).
			Msg("sweep cell complete")

		if _, err := fmt.Fprintf(result1, "%v %.6f\n", pt.Delta, empirical); err != nil {
			return nil, watermark.IOFailureError(err.Error())
		}
		if _, err := fmt.Fprintf(result2, "%v %.6f\n", pt.Delta, theoretical); err != nil {
			return nil, watermark.IOFailureError(err.Error())
		}

		results = append(results, Result{Point: pt, Empirical: empirical, Theoretical: theoretical})
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return results, nil
}
