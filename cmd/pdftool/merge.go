package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdftool/internal/ops"
	"github.com/pdiddy/pdftool/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <files...>",
	Short: "Merge PDF files into one document",
	Long: `Merge appends every page of each input, in the order given, into a single
output document. All inputs are required: a missing or unreadable file aborts
the merge and no output is written.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringP("output", "o", ops.DefaultMergeOutput, "output file")

	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	return dispatch(cmd, types.Request{
		Op:    types.OpMerge,
		Merge: &types.MergeRequest{Inputs: args, Output: output},
	})
}
