package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdftool/internal/ops"
	"github.com/pdiddy/pdftool/pkg/types"
)

var rotateCmd = &cobra.Command{
	Use:   "rotate <file>",
	Short: "Rotate every page clockwise",
	Long: `Rotate turns all pages clockwise by the given angle. The angle must be a
multiple of 90; values outside 0-270 are normalised (450 is 90, -90 is 270).
The default output is rotated_<file> next to the input.`,
	Args: cobra.ExactArgs(1),
	RunE: runRotate,
}

func init() {
	rotateCmd.Flags().IntP("angle", "a", ops.DefaultAngle, "rotation angle in degrees, clockwise")
	rotateCmd.Flags().StringP("output", "o", "", "output file (default: rotated_<file>)")

	rootCmd.AddCommand(rotateCmd)
}

func runRotate(cmd *cobra.Command, args []string) error {
	angle, _ := cmd.Flags().GetInt("angle")
	output, _ := cmd.Flags().GetString("output")
	return dispatch(cmd, types.Request{
		Op:     types.OpRotate,
		Rotate: &types.RotateRequest{Input: args[0], Angle: angle, Output: output},
	})
}
