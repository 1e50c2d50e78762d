// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageCount returns the number of pages in the document read from rs.
func (p *PDF) PageCount(rs io.ReadSeeker) (n int, err error) {
	defer recoverPanic("counting pages", &err)

	n, err = api.PageCount(rs, newConf())
	if err != nil {
		return 0, fmt.Errorf("counting pages: %w", err)
	}
	return n, nil
}

// Merge appends every page of each input, in order, into one document
// written to w.
func (p *PDF) Merge(inputs []io.ReadSeeker, w io.Writer) (err error) {
	defer recoverPanic("merging", &err)

	if len(inputs) == 0 {
		return fmt.Errorf("merge: no inputs")
	}
	if err := api.MergeRaw(inputs, w, false, newConf()); err != nil {
		return fmt.Errorf("merging: %w", err)
	}
	return nil
}

// ExtractPages writes a document holding pages first..last (1-based,
// inclusive) of rs to w.
func (p *PDF) ExtractPages(rs io.ReadSeeker, w io.Writer, first, last int) (err error) {
	defer recoverPanic("extracting pages", &err)

	if first < 1 || last < first {
		return fmt.Errorf("invalid page range %d-%d", first, last)
	}
	sel := strconv.Itoa(first)
	if last > first {
		sel = fmt.Sprintf("%d-%d", first, last)
	}
	if err := api.Trim(rs, w, []string{sel}, newConf()); err != nil {
		return fmt.Errorf("extracting pages %s: %w", sel, err)
	}
	return nil
}

// Rotate rotates every page of rs clockwise by angle degrees and writes the
// result to w. angle must be a multiple of 90.
func (p *PDF) Rotate(rs io.ReadSeeker, w io.Writer, angle int) (err error) {
	defer recoverPanic("rotating", &err)

	if angle%90 != 0 {
		return fmt.Errorf("rotation %d is not a multiple of 90", angle)
	}
	if err := api.Rotate(rs, w, angle, nil, newConf()); err != nil {
		return fmt.Errorf("rotating by %d: %w", angle, err)
	}
	return nil
}
