// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package engine adapts the third-party PDF libraries to the capability set
// pdftool needs: page counting, merging, page extraction, rotation, text
// watermarks, metadata, text extraction, and document creation.
//
// pdfcpu handles structural edits and metadata, ledongthuc/pdf handles text
// and page attribute reads, and fpdf writes new documents. The engine works on
// io.ReadSeeker / io.Writer values only; opening and closing files is the
// caller's job.
package engine

import (
	"fmt"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/pdftool/pkg/types"
)

var initOnce sync.Once

// PDF is the production engine.
type PDF struct {
	watermark types.WatermarkConfig
	create    types.CreateConfig
}

// New returns an engine using the watermark and create settings from cfg.
// An unset watermark section takes the defaults of types.DefaultConfig as a
// whole. Otherwise an empty font, size or opacity falls back to its default
// and a zero rotation means horizontal text.
func New(cfg types.Config) *PDF {
	def := types.DefaultConfig()

	wm := cfg.Watermark
	if wm == (types.WatermarkConfig{}) {
		wm = def.Watermark
	}
	if wm.Font == "" {
		wm.Font = def.Watermark.Font
	}
	if wm.FontSize <= 0 {
		wm.FontSize = def.Watermark.FontSize
	}
	if wm.Opacity <= 0 || wm.Opacity > 1 {
		wm.Opacity = def.Watermark.Opacity
	}

	cr := cfg.Create
	if cr.PageSize == "" {
		cr.PageSize = def.Create.PageSize
	}
	if cr.Title == "" {
		cr.Title = def.Create.Title
	}

	return &PDF{watermark: wm, create: cr}
}

// newConf returns a fresh pdfcpu configuration. pdfcpu keeps a config
// directory under the user's home by default; it is switched off once per
// process so the tool never writes outside its requested outputs.
func newConf() *model.Configuration {
	initOnce.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// recoverPanic converts a panic raised while reading a damaged document into
// an error on *err. pdfcpu and ledongthuc/pdf index past the end of some
// truncated files instead of reporting them.
func recoverPanic(what string, err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: malformed document: %v", what, r)
	}
}
