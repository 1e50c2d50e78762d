// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdftool/internal/logging"
	"github.com/pdiddy/pdftool/pkg/types"
)

// Info report encodings.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// InfoExecutor reports on one or more documents without modifying them.
// Inputs are independent: a failing file is reported and the rest are still
// inspected.
type InfoExecutor struct {
	env Env
}

// Execute runs an info request. The reports for every readable input are
// written to Out; the first failure, if any, is returned after all inputs
// have been tried.
func (x *InfoExecutor) Execute(ctx context.Context, req types.Request) (*Result, error) {
	r := req.Info
	if len(r.Inputs) == 0 {
		return nil, newError(KindUsage, "", fmt.Errorf("info needs at least one input file"))
	}
	format := r.Format
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatYAML && format != FormatJSON {
		return nil, newError(KindUsage, "", fmt.Errorf("unknown format %q (want text, yaml, or json)", format))
	}

	res := &Result{}
	summary, firstErr := batch(ctx, r.Inputs, x.env.Status, func(path string) error {
		info, err := x.inspect(path)
		if err != nil {
			return err
		}
		res.Reports = append(res.Reports, info)
		return nil
	})
	res.Batch = summary
	if summary.HasFailures() {
		logging.Warn().Add(logging.Count(summary.Failed)).Msg("some inputs could not be inspected")
	}

	if len(res.Reports) > 0 {
		if err := WriteReports(x.env.Out, res.Reports, format); err != nil {
			return res, newError(KindOutputWriteFailure, "", err)
		}
	}
	return res, firstErr
}

func (x *InfoExecutor) inspect(path string) (*types.DocumentInfo, error) {
	d, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	info, err := x.env.Engine.Inspect(d)
	if err != nil {
		return nil, newError(KindCorruptInput, path, err)
	}
	if err := d.rewind(); err != nil {
		return nil, err
	}
	rot, err := x.env.Engine.Rotations(d, d.size)
	if err != nil {
		return nil, newError(KindCorruptInput, path, err)
	}

	info.Path = path
	info.FileSize = d.size
	info.Rotations = rot
	logging.Debug().Add(logging.Path(path)).Add(logging.Pages(info.PageCount)).Add(logging.Bytes(d.size)).Msg("inspected")
	return info, nil
}

// WriteReports encodes reports to w in the given format.
func WriteReports(w io.Writer, reports []*types.DocumentInfo, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	default:
		for _, info := range reports {
			if _, err := io.WriteString(w, renderText(info)); err != nil {
				return err
			}
		}
		return nil
	}
}

// renderText renders a human-readable report. Absent metadata entries are
// omitted.
func renderText(info *types.DocumentInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n=== PDF Information: %s ===\n", info.Path)
	fmt.Fprintf(&b, "Number of pages: %d\n", info.PageCount)
	fmt.Fprintf(&b, "File size: %d bytes\n", info.FileSize)
	if info.Version != "" {
		fmt.Fprintf(&b, "PDF version: %s\n", info.Version)
	}

	if !info.Metadata.Empty() {
		b.WriteString("\nMetadata:\n")
		for _, e := range info.Metadata.Entries() {
			fmt.Fprintf(&b, "  %s: %s\n", e[0], e[1])
		}
	}

	if info.FirstPage != nil {
		b.WriteString("\nFirst page dimensions:\n")
		fmt.Fprintf(&b, "  Width: %s points\n", strconv.FormatFloat(info.FirstPage.Width, 'f', -1, 64))
		fmt.Fprintf(&b, "  Height: %s points\n", strconv.FormatFloat(info.FirstPage.Height, 'f', -1, 64))
	}

	if len(info.Rotations) > 0 {
		rot := make([]string, len(info.Rotations))
		for i, r := range info.Rotations {
			rot[i] = strconv.Itoa(r)
		}
		fmt.Fprintf(&b, "\nPage rotations: %s\n", strings.Join(rot, " "))
	}
	return b.String()
}
