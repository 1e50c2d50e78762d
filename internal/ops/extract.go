// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/pdftool/internal/logging"
	"github.com/pdiddy/pdftool/pkg/types"
)

// FormatPages joins page texts into the extract-text output format. Each
// page is rendered as "=== Page <n> ===\n<text>\n" and pages are separated
// by a single "\n". Pages without text keep their header.
func FormatPages(pages []string) string {
	parts := make([]string, len(pages))
	for i, text := range pages {
		parts[i] = fmt.Sprintf("=== Page %d ===\n%s\n", i+1, text)
	}
	return strings.Join(parts, "\n")
}

// ExtractTextExecutor pulls text out of every page, to a file or to Out.
type ExtractTextExecutor struct {
	env Env
}

// Execute runs an extract-text request.
func (x *ExtractTextExecutor) Execute(ctx context.Context, req types.Request) (*Result, error) {
	r := req.ExtractText

	d, err := openInput(r.Input)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	pages, err := x.env.Engine.PageTexts(d, d.size)
	if err != nil {
		return nil, newError(KindCorruptInput, r.Input, err)
	}
	logging.Info().Add(logging.Path(r.Input)).Add(logging.Pages(len(pages))).Msg("extracted text")

	text := FormatPages(pages)
	if r.Output == "" {
		fmt.Fprintln(x.env.Out, text)
		return &Result{}, nil
	}

	if err := writeOutput(r.Output, []byte(text)); err != nil {
		return nil, err
	}
	fmt.Fprintf(x.env.Status, "text saved to: %s\n", r.Output)
	return &Result{Outputs: []string{r.Output}}, nil
}
