package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/pdftool/internal/ops"
	"github.com/pdiddy/pdftool/pkg/types"
)

var splitCmd = &cobra.Command{
	Use:   "split <file>",
	Short: "Split a PDF into files of N pages each",
	Long: `Split writes consecutive runs of pages to separate files in the output
directory, which is created if needed. Files are named <name>_page_<n>.pdf
for single pages and <name>_pages_<first>-<last>.pdf otherwise. The last file
may hold fewer pages.`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().StringP("output", "o", ops.DefaultSplitDir, "output directory")
	splitCmd.Flags().IntP("pages", "p", ops.DefaultPagesPerFile, "pages per output file")

	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	outDir, _ := cmd.Flags().GetString("output")
	pages, _ := cmd.Flags().GetInt("pages")
	return dispatch(cmd, types.Request{
		Op:    types.OpSplit,
		Split: &types.SplitRequest{Input: args[0], OutDir: outDir, PagesPerFile: pages},
	})
}
