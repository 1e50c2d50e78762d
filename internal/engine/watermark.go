// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// watermarkDesc renders the pdfcpu watermark description for the configured
// font, size, rotation and opacity. Position is the page centre.
func (p *PDF) watermarkDesc() string {
	return fmt.Sprintf("font:%s, points:%d, rot:%g, op:%g, pos:c, scale:1 abs",
		p.watermark.Font, p.watermark.FontSize, p.watermark.Rotation, p.watermark.Opacity)
}

// Watermark stamps text on top of every page of rs and writes the result to w.
// Placement is identical on every page.
func (p *PDF) Watermark(rs io.ReadSeeker, w io.Writer, text string) (err error) {
	defer recoverPanic("stamping watermark", &err)

	wm, err := api.TextWatermark(text, p.watermarkDesc(), true, false, types.POINTS)
	if err != nil {
		return fmt.Errorf("building watermark: %w", err)
	}
	if err := api.AddWatermarks(rs, w, nil, wm, newConf()); err != nil {
		return fmt.Errorf("stamping watermark: %w", err)
	}
	return nil
}
