// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pdftool/pkg/types"
)

// linesForPages returns the number of body lines that fill exactly n pages
// with the default Letter layout: 30 lines on the first page, 35 after.
func linesForPages(n int) int {
	return 30 + 35*(n-1)
}

// makeDoc renders a document of n pages and returns its bytes.
func makeDoc(t *testing.T, e *PDF, n int) []byte {
	t.Helper()
	lines := make([]string, linesForPages(n))
	for i := range lines {
		lines[i] = "line"
	}
	var buf bytes.Buffer
	require.NoError(t, e.Create(&buf, strings.Join(lines, "\n")))
	return buf.Bytes()
}

func pageCount(t *testing.T, e *PDF, doc []byte) int {
	t.Helper()
	n, err := e.PageCount(bytes.NewReader(doc))
	require.NoError(t, err)
	return n
}

func texts(t *testing.T, e *PDF, doc []byte) []string {
	t.Helper()
	out, err := e.PageTexts(bytes.NewReader(doc), int64(len(doc)))
	require.NoError(t, err)
	return out
}

func TestCreate_ExtractsContent(t *testing.T) {
	e := New(types.DefaultConfig())
	var buf bytes.Buffer
	require.NoError(t, e.Create(&buf, "Hello World"))

	pages := texts(t, e, buf.Bytes())
	require.Len(t, pages, 1)
	assert.Contains(t, pages[0], "Hello World")
	assert.Contains(t, pages[0], "Sample PDF Document")
}

func TestCreate_LineOrder(t *testing.T) {
	e := New(types.DefaultConfig())
	var buf bytes.Buffer
	require.NoError(t, e.Create(&buf, "Line1\nLine2"))

	text := strings.Join(texts(t, e, buf.Bytes()), "\n")
	i1 := strings.Index(text, "Line1")
	i2 := strings.Index(text, "Line2")
	require.GreaterOrEqual(t, i1, 0)
	require.GreaterOrEqual(t, i2, 0)
	assert.Less(t, i1, i2)
}

func TestCreate_Paginates(t *testing.T) {
	e := New(types.DefaultConfig())
	tests := []struct {
		name  string
		lines int
		want  int
	}{
		{"one line", 1, 1},
		{"exactly one page", linesForPages(1), 1},
		{"one line over", linesForPages(1) + 1, 2},
		{"three pages", linesForPages(3), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, e.Create(&buf, strings.Repeat("x\n", tt.lines-1)+"x"))
			assert.Equal(t, tt.want, pageCount(t, e, buf.Bytes()))
		})
	}
}

func TestCreate_BadPageSize(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.Create.PageSize = "Napkin"
	e := New(cfg)
	err := e.Create(io.Discard, "x")
	assert.Error(t, err)
}

func TestMergeThenSplit(t *testing.T) {
	e := New(types.DefaultConfig())
	a := makeDoc(t, e, 2)
	b := makeDoc(t, e, 3)

	var merged bytes.Buffer
	require.NoError(t, e.Merge([]io.ReadSeeker{bytes.NewReader(a), bytes.NewReader(b)}, &merged))
	require.Equal(t, 5, pageCount(t, e, merged.Bytes()))

	var first, second bytes.Buffer
	require.NoError(t, e.ExtractPages(bytes.NewReader(merged.Bytes()), &first, 1, 2))
	require.NoError(t, e.ExtractPages(bytes.NewReader(merged.Bytes()), &second, 3, 5))
	assert.Equal(t, 2, pageCount(t, e, first.Bytes()))
	assert.Equal(t, 3, pageCount(t, e, second.Bytes()))
}

func TestMerge_NoInputs(t *testing.T) {
	e := New(types.DefaultConfig())
	assert.Error(t, e.Merge(nil, io.Discard))
}

func TestExtractPages_InvalidRange(t *testing.T) {
	e := New(types.DefaultConfig())
	doc := makeDoc(t, e, 1)
	assert.Error(t, e.ExtractPages(bytes.NewReader(doc), io.Discard, 0, 1))
	assert.Error(t, e.ExtractPages(bytes.NewReader(doc), io.Discard, 3, 2))
}

func TestRotate_RoundTrip(t *testing.T) {
	e := New(types.DefaultConfig())
	doc := makeDoc(t, e, 2)

	var turned bytes.Buffer
	require.NoError(t, e.Rotate(bytes.NewReader(doc), &turned, 90))
	rot, err := e.Rotations(bytes.NewReader(turned.Bytes()), int64(turned.Len()))
	require.NoError(t, err)
	assert.Equal(t, []int{90, 90}, rot)

	var back bytes.Buffer
	require.NoError(t, e.Rotate(bytes.NewReader(turned.Bytes()), &back, 270))
	rot, err = e.Rotations(bytes.NewReader(back.Bytes()), int64(back.Len()))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, rot)
}

func TestRotate_RejectsOddAngle(t *testing.T) {
	e := New(types.DefaultConfig())
	doc := makeDoc(t, e, 1)
	assert.Error(t, e.Rotate(bytes.NewReader(doc), io.Discard, 45))
}

func TestWatermark_KeepsPages(t *testing.T) {
	e := New(types.DefaultConfig())
	doc := makeDoc(t, e, 3)

	var out bytes.Buffer
	require.NoError(t, e.Watermark(bytes.NewReader(doc), &out, "CONFIDENTIAL"))
	assert.Equal(t, 3, pageCount(t, e, out.Bytes()))
	assert.NotEqual(t, doc, out.Bytes())
}

func TestWatermarkDesc(t *testing.T) {
	e := New(types.Config{})
	assert.Equal(t, "font:Helvetica, points:48, rot:45, op:0.3, pos:c, scale:1 abs", e.watermarkDesc())
}

func TestWatermarkDesc_PartialConfig(t *testing.T) {
	e := New(types.Config{Watermark: types.WatermarkConfig{Font: "Courier", Opacity: 0.5}})
	assert.Equal(t, "font:Courier, points:48, rot:0, op:0.5, pos:c, scale:1 abs", e.watermarkDesc())
}

func TestInspect(t *testing.T) {
	e := New(types.DefaultConfig())
	doc := makeDoc(t, e, 2)

	info, err := e.Inspect(bytes.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, info.PageCount)
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Metadata.CreationDate)
	assert.Equal(t, "Sample PDF Document", info.Metadata.Title)
	assert.Empty(t, info.Metadata.Author)
	require.NotNil(t, info.FirstPage)
	assert.InDelta(t, 612, info.FirstPage.Width, 0.5)
	assert.InDelta(t, 792, info.FirstPage.Height, 0.5)
}

func TestCorruptInput(t *testing.T) {
	e := New(types.DefaultConfig())
	junk := []byte("this is not a pdf")

	_, err := e.PageCount(bytes.NewReader(junk))
	assert.Error(t, err)
	_, err = e.PageTexts(bytes.NewReader(junk), int64(len(junk)))
	assert.Error(t, err)
	_, err = e.Inspect(bytes.NewReader(junk))
	assert.Error(t, err)
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 0}, {90, 90}, {180, 180}, {270, 270}, {360, 0},
		{450, 90}, {-90, 270}, {-360, 0}, {-450, 270},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeAngle(tt.in), "NormalizeAngle(%d)", tt.in)
	}
}

func TestTruncatedInput(t *testing.T) {
	e := New(types.DefaultConfig())
	doc := makeDoc(t, e, 1)
	cut := doc[:len(doc)/2]
	open := func() *bytes.Reader { return bytes.NewReader(cut) }

	tests := []struct {
		name string
		call func() error
	}{
		{"page count", func() error { _, err := e.PageCount(open()); return err }},
		{"merge", func() error { return e.Merge([]io.ReadSeeker{open()}, io.Discard) }},
		{"extract pages", func() error { return e.ExtractPages(open(), io.Discard, 1, 1) }},
		{"rotate", func() error { return e.Rotate(open(), io.Discard, 90) }},
		{"watermark", func() error { return e.Watermark(open(), io.Discard, "DRAFT") }},
		{"inspect", func() error { _, err := e.Inspect(open()); return err }},
		{"rotations", func() error { _, err := e.Rotations(open(), int64(len(cut))); return err }},
		{"page texts", func() error { _, err := e.PageTexts(open(), int64(len(cut))); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.call())
		})
	}
}

// pageTreePDF assembles a minimal uncompressed PDF from numbered object
// bodies. Object 1 must be the catalog.
func pageTreePDF(objects ...string) []byte {
	var b bytes.Buffer
	b.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = b.Len()
		fmt.Fprintf(&b, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}
	xref := b.Len()
	fmt.Fprintf(&b, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&b, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&b, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return b.Bytes()
}

func TestRotations_Inherited(t *testing.T) {
	doc := pageTreePDF(
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R 6 0 R] /Count 3 /Rotate 90 /MediaBox [0 0 612 792] >>",
		"<< /Type /Pages /Parent 2 0 R /Kids [4 0 R 5 0 R] /Count 2 >>",
		"<< /Type /Page /Parent 3 0 R >>",
		"<< /Type /Page /Parent 3 0 R /Rotate 180 >>",
		"<< /Type /Page /Parent 2 0 R /Rotate -90 >>",
	)

	e := New(types.DefaultConfig())
	rot, err := e.Rotations(bytes.NewReader(doc), int64(len(doc)))
	require.NoError(t, err)
	assert.Equal(t, []int{90, 180, 270}, rot)
}
