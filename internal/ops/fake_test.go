// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/pdiddy/pdftool/pkg/types"
)

// fakeEngine implements Engine over a line-based stand-in format:
//
//	FAKEPDF <id> <pages> [tag...]
//
// Anything else is treated as corrupt. It records the arguments it was
// called with so tests can check what the executors asked for.
type fakeEngine struct {
	mergedIDs []string
	angles    []int
	ranges    []Chunk
	texts     map[int]string // page number -> text; missing pages are ""
	createErr error
	mergeErr  error
}

type fakeDoc struct {
	id    string
	pages int
	tags  []string
}

func fakePDF(id string, pages int, tags ...string) []byte {
	return []byte(strings.TrimSpace(fmt.Sprintf("FAKEPDF %s %d %s", id, pages, strings.Join(tags, " "))))
}

func parseFake(r io.Reader) (fakeDoc, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return fakeDoc{}, err
	}
	f := strings.Fields(string(data))
	if len(f) < 3 || f[0] != "FAKEPDF" {
		return fakeDoc{}, errors.New("not a fake pdf")
	}
	n, err := strconv.Atoi(f[2])
	if err != nil {
		return fakeDoc{}, err
	}
	return fakeDoc{id: f[1], pages: n, tags: f[3:]}, nil
}

func (e *fakeEngine) PageCount(rs io.ReadSeeker) (int, error) {
	d, err := parseFake(rs)
	return d.pages, err
}

func (e *fakeEngine) Merge(inputs []io.ReadSeeker, w io.Writer) error {
	if e.mergeErr != nil {
		return e.mergeErr
	}
	total := 0
	for _, in := range inputs {
		d, err := parseFake(in)
		if err != nil {
			return err
		}
		e.mergedIDs = append(e.mergedIDs, d.id)
		total += d.pages
	}
	_, err := w.Write(fakePDF("merged", total))
	return err
}

func (e *fakeEngine) ExtractPages(rs io.ReadSeeker, w io.Writer, first, last int) error {
	d, err := parseFake(rs)
	if err != nil {
		return err
	}
	if last > d.pages {
		return fmt.Errorf("page %d out of range", last)
	}
	e.ranges = append(e.ranges, Chunk{First: first, Last: last})
	_, err = w.Write(fakePDF(d.id, last-first+1))
	return err
}

func (e *fakeEngine) Rotate(rs io.ReadSeeker, w io.Writer, angle int) error {
	d, err := parseFake(rs)
	if err != nil {
		return err
	}
	e.angles = append(e.angles, angle)
	_, err = w.Write(fakePDF(d.id, d.pages, "rotate="+strconv.Itoa(angle)))
	return err
}

func (e *fakeEngine) Watermark(rs io.ReadSeeker, w io.Writer, text string) error {
	d, err := parseFake(rs)
	if err != nil {
		return err
	}
	_, err = w.Write(fakePDF(d.id, d.pages, "wm="+strings.ReplaceAll(text, " ", "_")))
	return err
}

func (e *fakeEngine) Inspect(rs io.ReadSeeker) (*types.DocumentInfo, error) {
	d, err := parseFake(rs)
	if err != nil {
		return nil, err
	}
	return &types.DocumentInfo{
		Version:   "1.7",
		PageCount: d.pages,
		Metadata:  types.Metadata{Title: d.id},
		FirstPage: &types.PageSize{Width: 612, Height: 792},
	}, nil
}

func (e *fakeEngine) Rotations(r io.ReaderAt, size int64) ([]int, error) {
	d, err := parseFake(io.NewSectionReader(r, 0, size))
	if err != nil {
		return nil, err
	}
	return make([]int, d.pages), nil
}

func (e *fakeEngine) PageTexts(r io.ReaderAt, size int64) ([]string, error) {
	d, err := parseFake(io.NewSectionReader(r, 0, size))
	if err != nil {
		return nil, err
	}
	out := make([]string, d.pages)
	for i := range out {
		out[i] = e.texts[i+1]
	}
	return out, nil
}

func (e *fakeEngine) Create(w io.Writer, content string) error {
	if e.createErr != nil {
		return e.createErr
	}
	_, err := w.Write(fakePDF("created", 1, strings.Fields(content)...))
	return err
}

// testEnv returns a dispatcher wired to a fake engine plus its output buffers.
func testEnv(t *testing.T) (*Dispatcher, *fakeEngine, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	eng := &fakeEngine{}
	var out, status bytes.Buffer
	return NewDispatcher(Env{Engine: eng, Out: &out, Status: &status}), eng, &out, &status
}

// writeFake writes a fake document into dir and returns its path.
func writeFake(t *testing.T, dir, name string, pages int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, fakePDF(strings.TrimSuffix(name, ".pdf"), pages), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// readFake parses a fake document written by an executor.
func readFake(t *testing.T, path string) fakeDoc {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening %s: %v", path, err)
	}
	defer f.Close()
	d, err := parseFake(f)
	if err != nil {
		t.Fatalf("parsing %s: %v", path, err)
	}
	return d
}
