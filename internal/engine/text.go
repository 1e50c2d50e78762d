// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"
)

// PageTexts returns the plain text of every page, in page order. A page with
// no decodable text yields "" rather than an error: scanned pages and
// unsupported font encodings are a limitation of the extractor, not a fault
// in the document.
func (p *PDF) PageTexts(r io.ReaderAt, size int64) (texts []string, err error) {
	defer recoverPanic("opening pdf", &err)

	rd, err := pdf.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}

	n := rd.NumPage()
	texts = make([]string, n)
	for i := 1; i <= n; i++ {
		texts[i-1] = pageText(rd.Page(i))
	}
	return texts, nil
}

// pageText extracts one page. The extractor panics on some malformed content
// streams; those pages count as empty.
func pageText(page pdf.Page) (text string) {
	if page.V.IsNull() {
		return ""
	}
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	s, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return s
}
