// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// document is an input PDF opened read-only. It satisfies both the
// io.ReadSeeker and io.ReaderAt views the engine needs.
type document struct {
	*os.File
	path string
	size int64
}

// openInput opens path for reading. Directories count as corrupt input.
// The caller must Close the returned document.
func openInput(path string) (*document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, classifyInput(path, err)
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, classifyInput(path, err)
	}
	if st.IsDir() {
		f.Close()
		return nil, newError(KindCorruptInput, path, fmt.Errorf("is a directory"))
	}
	return &document{File: f, path: path, size: st.Size()}, nil
}

// rewind seeks back to the start so the next engine call sees the whole file.
func (d *document) rewind() error {
	if _, err := d.Seek(0, io.SeekStart); err != nil {
		return newError(KindInternal, d.path, fmt.Errorf("seeking: %w", err))
	}
	return nil
}

// writeOutput writes data to path, replacing any existing file. Documents
// are rendered into memory first so a failed engine call never leaves a
// partial file behind.
func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return classifyOutput(path, err)
	}
	return nil
}

// ensureDir creates dir and its parents. An existing directory is not an error.
func ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return classifyOutput(dir, err)
	}
	return nil
}

// stem returns the file name of path without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// prefixed returns prefix+basename(path), placed in path's directory.
func prefixed(prefix, path string) string {
	return filepath.Join(filepath.Dir(path), prefix+filepath.Base(path))
}

// Default output locations.
const (
	DefaultMergeOutput  = "merged.pdf"
	DefaultSplitDir     = "split_output"
	DefaultCreateOutput = "sample.pdf"
	DefaultContent      = "Sample PDF Content"
	DefaultAngle        = 90
	DefaultPagesPerFile = 1
)

// DefaultRotateOutput is the output path used when rotate gets no -o.
func DefaultRotateOutput(input string) string { return prefixed("rotated_", input) }

// DefaultWatermarkOutput is the output path used when watermark gets no -o.
func DefaultWatermarkOutput(input string) string { return prefixed("watermarked_", input) }
