package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	watermark "github.com/tianyili/stdm-watermark"
	"github.com/tianyili/stdm-watermark/internal/bitmap"
	"github.com/tianyili/stdm-watermark/internal/canvas"
)

// clampByte rounds and saturates a spatial-domain sample to a valid
// 8-bit gray level, mirroring the saturation the BMP writer applies.
func clampByte(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func newEmbedCommand() *cobra.Command {
	var (
		coverPath string
		markPath  string
		outPath   string
		delta     float64
		sigma     float64
		m         int
		seed      int64
		preview   bool
	)
	cmd := &cobra.Command{
		Use:   "embed",
		Short: "Embed a 1-bit mark into an 8-bit cover BMP and write the watermarked BMP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cover, err := bitmap.ReadCover(coverPath)
			if err != nil {
				return err
			}
			mark, err := bitmap.ReadMark(markPath)
			if err != nil {
				return err
			}

			blockRows, blockCols := cover.Height/8, cover.Width/8
			params := watermark.Params{
				BlockRows:  blockRows,
				BlockCols:  blockCols,
				M:          m,
				Delta:      delta,
				Sigma:      sigma,
				MarkHeight: mark.Height(),
				MarkWidth:  mark.Width(),
			}
			if err := params.Validate(); err != nil {
				return err
			}

			d := watermark.Forward(cover.Pixels, blockRows, blockCols)
			if err := watermark.Embed(d, mark, params); err != nil {
				return err
			}
			f := watermark.Inverse(d)

			if sigma > 0 {
				rng := watermark.NewRNG(seed)
				watermark.AddNoise(f, sigma, rng)
			}

			if err := bitmap.WriteWatermarked(outPath, cover, f, blockCols); err != nil {
				return err
			}

			// The preview sink plays no role in correctness; it exists
			// only so a caller wiring in a real display can watch the
			// watermarked image take shape.
			sink := canvas.Sink(canvas.Discard{})
			if preview {
				for y := 0; y < cover.Height; y++ {
					for x := 0; x < cover.Width; x++ {
						block := (y/8)*blockCols + x/8
						sink.Point(x, y, clampByte(f[block][x%8][y%8]))
					}
				}
				sink.Flush()
			}

			log.Info().Str("out", outPath).Int("blocks", params.M).Float64("delta", delta).Msg("embed complete")
			fmt.Printf("watermarked image written to %s (N=%d)\n", outPath, params.N())
			return nil
		},
	}
	cmd.Flags().StringVar(&coverPath, "cover", "", "cover BMP path (8-bit indexed, dims multiples of 8)")
	cmd.Flags().StringVar(&markPath, "mark", "", "mark BMP path (1-bit)")
	cmd.Flags().StringVar(&outPath, "out", "watermarked.bmp", "output watermarked BMP path")
	cmd.Flags().Float64Var(&delta, "delta", 4.0, "quantization step")
	cmd.Flags().Float64Var(&sigma, "sigma", 0, "AWGN standard deviation applied before writing (0 disables noise)")
	cmd.Flags().IntVar(&m, "m", 4096, "payload block count M")
	cmd.Flags().Int64Var(&seed, "seed", 1, "noise PRNG seed")
	cmd.Flags().BoolVar(&preview, "preview", false, "drive a preview sink over the watermarked image as it's written (discarded by default)")
	cmd.MarkFlagRequired("cover")
	cmd.MarkFlagRequired("mark")
	return cmd
}
