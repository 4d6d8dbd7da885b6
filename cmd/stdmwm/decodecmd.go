package main

import (
	"fmt"

	"github.com/spf13/cobra"

	watermark "github.com/tianyili/stdm-watermark"
	"github.com/tianyili/stdm-watermark/internal/bitmap"
)

func newDecodeCommand() *cobra.Command {
	var (
		watermarkedPath string
		markPath        string
		delta           float64
		m               int
		blind           bool
	)
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a watermark from a watermarked BMP, re-reading it fresh from disk",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Per §9's resolution of the original's ambiguous second
			// copy_bmp_pixel() call, decoding always re-reads the
			// watermarked BMP from disk rather than reusing any
			// in-memory state from an embed step.
			watermarked, err := bitmap.ReadCover(watermarkedPath)
			if err != nil {
				return err
			}
			mark, err := bitmap.ReadMark(markPath)
			if err != nil {
				return err
			}

			blockRows, blockCols := watermarked.Height/8, watermarked.Width/8
			params := watermark.Params{
				BlockRows:  blockRows,
				BlockCols:  blockCols,
				M:          m,
				Delta:      delta,
				MarkHeight: mark.Height(),
				MarkWidth:  mark.Width(),
			}
			if err := params.Validate(); err != nil {
				return err
			}

			d := watermark.Forward(watermarked.Pixels, blockRows, blockCols)

			if blind {
				bits, err := watermark.DecodeBlind(d, params)
				if err != nil {
					return err
				}
				matches := 0
				for i, b := range bits {
					if b == mark.Bit(i/mark.Width(), i%mark.Width()) {
						matches++
					}
				}
				ber := 1 - float64(matches)/float64(params.L())
				log.Info().Float64("bit_error_rate", ber).Msg("blind decode complete")
				fmt.Printf("blind decode bit-error rate: %.6f\n", ber)
				return nil
			}

			bits, err := watermark.Decode(d, mark, params)
			if err != nil {
				return err
			}
			ber := watermark.BitErrorRate(bits, mark, params)
			log.Info().Float64("bit_error_rate", ber).Msg("decode complete")
			fmt.Printf("bit-error rate: %.6f\n", ber)
			return nil
		},
	}
	cmd.Flags().StringVar(&watermarkedPath, "in", "", "watermarked BMP path")
	cmd.Flags().StringVar(&markPath, "mark", "", "original mark BMP path (reference grid for the known-mark decision rule)")
	cmd.Flags().Float64Var(&delta, "delta", 4.0, "quantization step used at embed time")
	cmd.Flags().IntVar(&m, "m", 4096, "payload block count M used at embed time")
	cmd.Flags().BoolVar(&blind, "blind", false, "use the operational argmin_b blind decision rule instead of the known-mark reference rule")
	cmd.MarkFlagRequired("in")
	cmd.MarkFlagRequired("mark")
	return cmd
}
