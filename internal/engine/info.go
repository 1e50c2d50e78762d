// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdiddy/pdftool/pkg/types"
)

// Inspect reads the document from rs and reports version, page count,
// information dictionary entries, and the first page size. Path and FileSize
// are left for the caller. Missing metadata is reported as empty strings.
func (p *PDF) Inspect(rs io.ReadSeeker) (info *types.DocumentInfo, err error) {
	defer recoverPanic("reading document", &err)

	ctx, err := api.ReadValidateAndOptimize(rs, newConf())
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	info = &types.DocumentInfo{
		Version:   ctx.XRefTable.Version().String(),
		PageCount: ctx.PageCount,
		Metadata: types.Metadata{
			Title:        ctx.Title,
			Author:       ctx.Author,
			Subject:      ctx.Subject,
			Keywords:     ctx.Keywords,
			Creator:      ctx.Creator,
			Producer:     ctx.Producer,
			CreationDate: ctx.XRefTable.CreationDate,
			ModDate:      ctx.ModDate,
		},
	}

	if ctx.PageCount > 0 {
		dims, err := ctx.PageDims()
		if err != nil {
			return nil, fmt.Errorf("reading page dimensions: %w", err)
		}
		if len(dims) > 0 {
			info.FirstPage = &types.PageSize{Width: dims[0].Width, Height: dims[0].Height}
		}
	}

	return info, nil
}

// Rotations returns the effective /Rotate of each page in page order,
// normalised into [0, 360). A page without its own entry inherits the value
// of the nearest ancestor in the page tree, and 0 when none sets it.
func (p *PDF) Rotations(r io.ReaderAt, size int64) (rot []int, err error) {
	defer recoverPanic("reading page rotations", &err)

	rd, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	n := rd.NumPage()
	out := make([]int, n)
	for i := 1; i <= n; i++ {
		page := rd.Page(i)
		if page.V.IsNull() {
			continue
		}
		out[i-1] = NormalizeAngle(inheritedRotate(page.V))
	}
	return out, nil
}

// maxTreeDepth bounds the walk up the page tree so a /Parent cycle in a
// damaged file cannot loop forever.
const maxTreeDepth = 64

// inheritedRotate returns /Rotate from v or the closest ancestor node that
// has it.
func inheritedRotate(v pdf.Value) int {
	for depth := 0; depth < maxTreeDepth && !v.IsNull(); depth++ {
		if r := v.Key("Rotate"); r.Kind() != pdf.Null {
			return int(r.Int64())
		}
		v = v.Key("Parent")
	}
	return 0
}

// NormalizeAngle maps any multiple of 90 into {0, 90, 180, 270}.
func NormalizeAngle(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}
