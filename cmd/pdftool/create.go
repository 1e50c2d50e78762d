package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pdftool/internal/ops"
	"github.com/pdiddy/pdftool/pkg/types"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Generate a sample PDF",
	Long: `Create writes a new PDF with a heading and the given content, one line per
line of content, continuing onto new pages as needed. A literal \n in the
content is treated as a line break.`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func init() {
	createCmd.Flags().StringP("output", "o", ops.DefaultCreateOutput, "output file")
	createCmd.Flags().StringP("content", "c", ops.DefaultContent, "document content")

	rootCmd.AddCommand(createCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	content, _ := cmd.Flags().GetString("content")
	return dispatch(cmd, types.Request{
		Op:     types.OpCreate,
		Create: &types.CreateRequest{Output: output, Content: strings.ReplaceAll(content, `\n`, "\n")},
	})
}
