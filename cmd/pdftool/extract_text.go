package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdftool/pkg/types"
)

var extractTextCmd = &cobra.Command{
	Use:   "extract-text <file>",
	Short: "Extract the text of every page",
	Long: `Extract-text prints the text of each page under a "=== Page <n> ===" header,
or writes it to a file with -o. Pages without extractable text (scanned
images) appear with an empty body.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtractText,
}

func init() {
	extractTextCmd.Flags().StringP("output", "o", "", "output text file (default: stdout)")

	rootCmd.AddCommand(extractTextCmd)
}

func runExtractText(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	return dispatch(cmd, types.Request{
		Op:          types.OpExtractText,
		ExtractText: &types.ExtractTextRequest{Input: args[0], Output: output},
	})
}
