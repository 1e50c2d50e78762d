// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ops implements the pdftool operations and the dispatcher that
// routes a request to them. Each operation is an Executor that opens its
// inputs, drives the PDF engine, and writes its artifact. Failures come back
// as *Error values classified by Kind.
package ops

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/pdftool/internal/logging"
	"github.com/pdiddy/pdftool/pkg/types"
)

// Engine is the PDF capability set the executors rely on. Page numbers are
// 1-based.
type Engine interface {
	// PageCount returns the number of pages in the document.
	PageCount(rs io.ReadSeeker) (int, error)

	// Merge appends all pages of inputs, in order, into one document.
	Merge(inputs []io.ReadSeeker, w io.Writer) error

	// ExtractPages writes a document holding pages first..last inclusive.
	ExtractPages(rs io.ReadSeeker, w io.Writer, first, last int) error

	// Rotate rotates every page clockwise by angle, a multiple of 90.
	Rotate(rs io.ReadSeeker, w io.Writer, angle int) error

	// Watermark stamps text onto every page.
	Watermark(rs io.ReadSeeker, w io.Writer, text string) error

	// Inspect reports page count, version, metadata and first page size.
	Inspect(rs io.ReadSeeker) (*types.DocumentInfo, error)

	// Rotations returns each page's rotation in degrees.
	Rotations(r io.ReaderAt, size int64) ([]int, error)

	// PageTexts returns the plain text of each page.
	PageTexts(r io.ReaderAt, size int64) ([]string, error)

	// Create renders a new document holding content.
	Create(w io.Writer, content string) error
}

// Env is what every executor shares: the engine, a writer for console
// artifacts (extracted text, info reports), and a writer for per-item
// status lines.
type Env struct {
	Engine Engine
	Out    io.Writer
	Status io.Writer
}

// Result describes what an operation produced.
type Result struct {
	Op types.Operation

	// Outputs lists files written, in the order they were written.
	Outputs []string

	// Reports holds info results, one per successfully inspected input.
	Reports []*types.DocumentInfo

	// Batch summarises multi-input operations that continue past failures.
	Batch BatchResult
}

// Executor runs one kind of operation.
type Executor interface {
	Execute(ctx context.Context, req types.Request) (*Result, error)
}

// Dispatcher routes requests to the executor registered for their operation.
type Dispatcher struct {
	executors map[types.Operation]Executor
}

// NewDispatcher returns a dispatcher with all seven operations registered
// against env.
func NewDispatcher(env Env) *Dispatcher {
	if env.Out == nil {
		env.Out = io.Discard
	}
	if env.Status == nil {
		env.Status = io.Discard
	}
	d := &Dispatcher{executors: make(map[types.Operation]Executor)}
	d.Register(types.OpMerge, &MergeExecutor{env: env})
	d.Register(types.OpSplit, &SplitExecutor{env: env})
	d.Register(types.OpExtractText, &ExtractTextExecutor{env: env})
	d.Register(types.OpRotate, &RotateExecutor{env: env})
	d.Register(types.OpWatermark, &WatermarkExecutor{env: env})
	d.Register(types.OpInfo, &InfoExecutor{env: env})
	d.Register(types.OpCreate, &CreateExecutor{env: env})
	return d
}

// Register installs ex for op, replacing any previous executor. Only the
// operations in types.Operations are ever dispatched.
func (d *Dispatcher) Register(op types.Operation, ex Executor) {
	d.executors[op] = ex
}

// Dispatch runs req through its executor. Every failure is returned as an
// *Error and logged with its kind and offending path.
func (d *Dispatcher) Dispatch(ctx context.Context, req types.Request) (*Result, error) {
	ex, ok := d.executors[req.Op]
	if !ok || !req.Op.Valid() {
		err := newError(KindUnsupported, "", fmt.Errorf("unknown operation %q", req.Op))
		logFailure(req.Op, err)
		return nil, err
	}
	if err := checkVariant(req); err != nil {
		logFailure(req.Op, err)
		return nil, err
	}

	logging.Debug().Add(logging.Op(string(req.Op))).Msg("dispatching")
	res, err := ex.Execute(ctx, req)
	if err != nil {
		e := asError(err)
		logFailure(req.Op, e)
		return res, e
	}
	if res == nil {
		res = &Result{}
	}
	res.Op = req.Op
	logging.Info().Add(logging.Op(string(req.Op))).Add(logging.Count(len(res.Outputs))).Msg("operation complete")
	return res, nil
}

// checkVariant rejects a request whose parameter set does not match its Op.
func checkVariant(req types.Request) *Error {
	var set bool
	switch req.Op {
	case types.OpMerge:
		set = req.Merge != nil
	case types.OpSplit:
		set = req.Split != nil
	case types.OpExtractText:
		set = req.ExtractText != nil
	case types.OpRotate:
		set = req.Rotate != nil
	case types.OpWatermark:
		set = req.Watermark != nil
	case types.OpInfo:
		set = req.Info != nil
	case types.OpCreate:
		set = req.Create != nil
	}
	if !set {
		return newError(KindUsage, "", fmt.Errorf("%s request has no parameters", req.Op))
	}
	return nil
}

func logFailure(op types.Operation, e *Error) {
	ev := logging.Error().Add(logging.Op(string(op))).Add(logging.Kind(e.Kind.String()))
	if e.Path != "" {
		ev.Add(logging.Path(e.Path))
	}
	ev.Add(logging.Err(e.Err)).Msg("operation failed")
}
