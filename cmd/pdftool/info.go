package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdftool/internal/ops"
	"github.com/pdiddy/pdftool/pkg/types"
)

var infoCmd = &cobra.Command{
	Use:   "info <files...>",
	Short: "Show page count, metadata, and size of PDF files",
	Long: `Info reports the page count, file size, PDF version, metadata, first page
dimensions, and page rotations of each file without modifying it. When
several files are given, a failing file is reported and the rest are still
inspected; the exit status reflects the first failure.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().String("format", ops.FormatText, "output format: text, yaml, or json")

	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	return dispatch(cmd, types.Request{
		Op:   types.OpInfo,
		Info: &types.InfoRequest{Inputs: args, Format: format},
	})
}
