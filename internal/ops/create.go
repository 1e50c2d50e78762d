// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdiddy/pdftool/internal/logging"
	"github.com/pdiddy/pdftool/pkg/types"
)

// CreateExecutor renders a new document from a content string.
type CreateExecutor struct {
	env Env
}

// Execute runs a create request.
func (c *CreateExecutor) Execute(ctx context.Context, req types.Request) (*Result, error) {
	r := req.Create
	out := r.Output
	if out == "" {
		out = DefaultCreateOutput
	}
	content := r.Content
	if content == "" {
		content = DefaultContent
	}

	var buf bytes.Buffer
	if err := c.env.Engine.Create(&buf, content); err != nil {
		return nil, newError(KindInternal, out, err)
	}
	if err := writeOutput(out, buf.Bytes()); err != nil {
		return nil, err
	}

	logging.Info().Add(logging.Output(out)).Add(logging.Bytes(int64(buf.Len()))).Msg("created")
	fmt.Fprintf(c.env.Status, "sample PDF created: %s\n", out)
	return &Result{Outputs: []string{out}}, nil
}
