// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdiddy/pdftool/internal/engine"
	"github.com/pdiddy/pdftool/internal/logging"
	"github.com/pdiddy/pdftool/pkg/types"
)

// RotateExecutor turns every page by the same clockwise angle.
type RotateExecutor struct {
	env Env
}

// Execute runs a rotate request. Angles that are not multiples of 90 are
// rejected before the input is opened. Other angles are normalised into
// {0, 90, 180, 270}.
func (r *RotateExecutor) Execute(ctx context.Context, req types.Request) (*Result, error) {
	rq := req.Rotate
	if rq.Angle%90 != 0 {
		return nil, newError(KindInvalidAngle, "", fmt.Errorf("angle %d is not a multiple of 90", rq.Angle))
	}
	angle := engine.NormalizeAngle(rq.Angle)
	out := rq.Output
	if out == "" {
		out = DefaultRotateOutput(rq.Input)
	}

	d, err := openInput(rq.Input)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	var buf bytes.Buffer
	if err := r.env.Engine.Rotate(d, &buf, angle); err != nil {
		return nil, newError(KindCorruptInput, rq.Input, err)
	}
	if err := writeOutput(out, buf.Bytes()); err != nil {
		return nil, err
	}

	logging.Info().Add(logging.Path(rq.Input)).Add(logging.Angle(angle)).Add(logging.Output(out)).Msg("rotated")
	fmt.Fprintf(r.env.Status, "rotated PDF saved as: %s\n", out)
	return &Result{Outputs: []string{out}}, nil
}
