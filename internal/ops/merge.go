// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/pdftool/internal/logging"
	"github.com/pdiddy/pdftool/pkg/types"
)

// MergeExecutor concatenates documents. Every input is required: the first
// missing or unreadable one aborts the merge and nothing is written.
type MergeExecutor struct {
	env Env
}

// Execute runs a merge request.
func (m *MergeExecutor) Execute(ctx context.Context, req types.Request) (*Result, error) {
	r := req.Merge
	if len(r.Inputs) == 0 {
		return nil, newError(KindUsage, "", fmt.Errorf("merge needs at least one input file"))
	}
	out := r.Output
	if out == "" {
		out = DefaultMergeOutput
	}

	docs := make([]*document, 0, len(r.Inputs))
	defer func() {
		for _, d := range docs {
			d.Close()
		}
	}()

	readers := make([]io.ReadSeeker, 0, len(r.Inputs))
	total := 0
	for _, in := range r.Inputs {
		d, err := openInput(in)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)

		n, err := m.env.Engine.PageCount(d)
		if err != nil {
			return nil, newError(KindCorruptInput, in, err)
		}
		if err := d.rewind(); err != nil {
			return nil, err
		}
		logging.Debug().Add(logging.Path(in)).Add(logging.Pages(n)).Msg("adding to merge")
		total += n
		readers = append(readers, d)
	}

	var buf bytes.Buffer
	if err := m.env.Engine.Merge(readers, &buf); err != nil {
		// Every input already parsed above, so this is not attributable
		// to a single file.
		return nil, newError(KindInternal, "", fmt.Errorf("merging %d documents: %w", len(readers), err))
	}
	if err := writeOutput(out, buf.Bytes()); err != nil {
		return nil, err
	}

	fmt.Fprintf(m.env.Status, "merged: %d file(s), %d page(s) into %s\n", len(r.Inputs), total, out)
	return &Result{Outputs: []string{out}}, nil
}
