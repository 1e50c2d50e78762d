// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/pdftool/internal/logging"
	"github.com/pdiddy/pdftool/pkg/types"
)

// WatermarkExecutor stamps text onto every page.
type WatermarkExecutor struct {
	env Env
}

// Execute runs a watermark request. Blank text is rejected before the input
// is opened.
func (w *WatermarkExecutor) Execute(ctx context.Context, req types.Request) (*Result, error) {
	r := req.Watermark
	if strings.TrimSpace(r.Text) == "" {
		return nil, newError(KindEmptyWatermarkText, "", fmt.Errorf("watermark text is empty"))
	}
	out := r.Output
	if out == "" {
		out = DefaultWatermarkOutput(r.Input)
	}

	d, err := openInput(r.Input)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	var buf bytes.Buffer
	if err := w.env.Engine.Watermark(d, &buf, r.Text); err != nil {
		return nil, newError(KindCorruptInput, r.Input, err)
	}
	if err := writeOutput(out, buf.Bytes()); err != nil {
		return nil, err
	}

	logging.Info().Add(logging.Path(r.Input)).Add(logging.Output(out)).Msg("watermarked")
	fmt.Fprintf(w.env.Status, "watermarked PDF saved as: %s\n", out)
	return &Result{Outputs: []string{out}}, nil
}
