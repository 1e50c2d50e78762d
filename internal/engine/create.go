// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Layout of generated documents, in points from the top-left corner.
const (
	marginLeft     = 100.0
	headingTop     = 100.0
	bodyTop        = 150.0
	continuedTop   = 50.0
	bottomLimit    = 50.0
	lineHeight     = 20.0
	footerInset    = 100.0
	footerFromBase = 30.0
	creator        = "pdftool"
)

// Create writes a new document to w: a bold heading followed by content, one
// line of text per "\n"-separated line. A new page starts whenever the next
// line would fall inside the bottom margin. Every page carries a
// "Page <n>" footer.
func (p *PDF) Create(w io.Writer, content string) error {
	doc := fpdf.New("P", "pt", p.create.PageSize, "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle(p.create.Title, true)
	doc.SetCreator(creator, true)

	tr := doc.UnicodeTranslatorFromDescriptor("")
	width, height := doc.GetPageSize()

	doc.SetFooterFunc(func() {
		doc.SetFont("Helvetica", "", 10)
		doc.Text(width-footerInset, height-footerFromBase, fmt.Sprintf("Page %d", doc.PageNo()))
	})

	doc.AddPage()
	doc.SetFont("Helvetica", "B", 24)
	doc.Text(marginLeft, headingTop, tr(p.create.Title))

	doc.SetFont("Helvetica", "", 12)
	y := bodyTop
	for _, line := range strings.Split(content, "\n") {
		if y > height-bottomLimit {
			doc.AddPage()
			doc.SetFont("Helvetica", "", 12)
			y = continuedTop
		}
		doc.Text(marginLeft, y, tr(line))
		y += lineHeight
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("rendering document: %w", err)
	}
	return nil
}
