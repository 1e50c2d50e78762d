package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdftool/pkg/types"
)

var watermarkCmd = &cobra.Command{
	Use:   "watermark <file> -w <text>",
	Short: "Stamp semi-transparent text on every page",
	Long: `Watermark overlays the given text diagonally across the centre of every
page. Font, size, opacity, and angle come from the watermark section of the
config file. The default output is watermarked_<file> next to the input.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatermark,
}

func init() {
	watermarkCmd.Flags().StringP("watermark", "w", "", "watermark text")
	watermarkCmd.Flags().StringP("output", "o", "", "output file (default: watermarked_<file>)")
	watermarkCmd.MarkFlagRequired("watermark")

	rootCmd.AddCommand(watermarkCmd)
}

func runWatermark(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("watermark")
	output, _ := cmd.Flags().GetString("output")
	return dispatch(cmd, types.Request{
		Op:        types.OpWatermark,
		Watermark: &types.WatermarkRequest{Input: args[0], Text: text, Output: output},
	})
}
