// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/pdiddy/pdftool/internal/logging"
	"github.com/pdiddy/pdftool/pkg/types"
)

// Chunk is a contiguous 1-based page range, First through Last inclusive.
type Chunk struct {
	First int
	Last  int
}

// Pages returns the number of pages in the chunk.
func (c Chunk) Pages() int {
	return c.Last - c.First + 1
}

// Plan divides pageCount pages into ceil(pageCount/perFile) chunks in page
// order. Only the last chunk may be shorter than perFile.
func Plan(pageCount, perFile int) []Chunk {
	if pageCount <= 0 || perFile < 1 {
		return nil
	}
	chunks := make([]Chunk, 0, (pageCount+perFile-1)/perFile)
	for first := 1; first <= pageCount; first += perFile {
		last := min(first+perFile-1, pageCount)
		chunks = append(chunks, Chunk{First: first, Last: last})
	}
	return chunks
}

// ChunkName returns the file name for c: "<stem>_page_<n>.pdf" for single
// page chunks, "<stem>_pages_<first>-<last>.pdf" otherwise. The name depends
// on perFile rather than the chunk length so a short last chunk keeps the
// naming scheme of its siblings.
func ChunkName(stem string, perFile int, c Chunk) string {
	if perFile == 1 {
		return fmt.Sprintf("%s_page_%d.pdf", stem, c.First)
	}
	return fmt.Sprintf("%s_pages_%d-%d.pdf", stem, c.First, c.Last)
}

// SplitExecutor writes each chunk of a document to its own file. Chunks are
// written in page order; a failure leaves earlier chunks on disk.
type SplitExecutor struct {
	env Env
}

// Execute runs a split request.
func (s *SplitExecutor) Execute(ctx context.Context, req types.Request) (*Result, error) {
	r := req.Split
	if r.PagesPerFile < 1 {
		return nil, newError(KindInvalidChunkSize, "", fmt.Errorf("pages per file must be at least 1, got %d", r.PagesPerFile))
	}
	outDir := r.OutDir
	if outDir == "" {
		outDir = DefaultSplitDir
	}

	d, err := openInput(r.Input)
	if err != nil {
		return nil, err
	}
	defer d.Close()

	n, err := s.env.Engine.PageCount(d)
	if err != nil {
		return nil, newError(KindCorruptInput, r.Input, err)
	}
	if err := ensureDir(outDir); err != nil {
		return nil, err
	}

	logging.Info().Add(logging.Path(r.Input)).Add(logging.Pages(n)).Add(logging.Output(outDir)).Msg("splitting")

	res := &Result{}
	base := stem(r.Input)
	for _, c := range Plan(n, r.PagesPerFile) {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := d.rewind(); err != nil {
			return res, err
		}

		var buf bytes.Buffer
		if err := s.env.Engine.ExtractPages(d, &buf, c.First, c.Last); err != nil {
			return res, newError(KindCorruptInput, r.Input, err)
		}
		name := ChunkName(base, r.PagesPerFile, c)
		path := filepath.Join(outDir, name)
		if err := writeOutput(path, buf.Bytes()); err != nil {
			return res, err
		}
		res.Outputs = append(res.Outputs, path)
		fmt.Fprintf(s.env.Status, "created: %s\n", name)
	}

	fmt.Fprintf(s.env.Status, "split %s into %d file(s) in %s\n", r.Input, len(res.Outputs), outDir)
	return res, nil
}
