// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"context"
	"fmt"
	"io"
)

// BatchResult holds the outcome of a run over independent inputs.
type BatchResult struct {
	Succeeded int
	Failed    int
}

// Total returns the number of inputs processed.
func (r BatchResult) Total() int {
	return r.Succeeded + r.Failed
}

// HasFailures reports whether any input failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// batch runs fn over inputs in order, reporting each failure to w and
// continuing with the next input. It returns the summary and the first
// failure, if any. Cancelling ctx stops the run before the next input.
func batch(ctx context.Context, inputs []string, w io.Writer, fn func(path string) error) (BatchResult, error) {
	var (
		result BatchResult
		first  error
	)
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if err := fn(in); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", in, err)
			result.Failed++
			if first == nil {
				first = err
			}
			continue
		}
		result.Succeeded++
	}
	if len(inputs) > 1 {
		fmt.Fprintf(w, "\nBatch summary: %d succeeded, %d failed (total: %d)\n",
			result.Succeeded, result.Failed, result.Total())
	}
	return result, first
}
