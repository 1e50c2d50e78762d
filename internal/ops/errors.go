// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ops

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies an operation failure. Each kind maps to its own exit code.
type Kind int

const (
	KindInternal Kind = iota
	KindUsage
	KindUnsupported
	KindInputNotFound
	KindCorruptInput
	KindInvalidAngle
	KindInvalidChunkSize
	KindEmptyWatermarkText
	KindPermissionDenied
	KindOutputWriteFailure
)

var kindNames = map[Kind]string{
	KindInternal:           "Internal",
	KindUsage:              "Usage",
	KindUnsupported:        "Unsupported",
	KindInputNotFound:      "InputNotFound",
	KindCorruptInput:       "CorruptInput",
	KindInvalidAngle:       "InvalidAngle",
	KindInvalidChunkSize:   "InvalidChunkSize",
	KindEmptyWatermarkText: "EmptyWatermarkText",
	KindPermissionDenied:   "PermissionDenied",
	KindOutputWriteFailure: "OutputWriteFailure",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ExitCode returns the process exit status for k.
//
//	1 usage, unsupported, or internal
//	2 InputNotFound        6 EmptyWatermarkText
//	3 CorruptInput         7 PermissionDenied
//	4 InvalidAngle         8 OutputWriteFailure
//	5 InvalidChunkSize
func (k Kind) ExitCode() int {
	switch k {
	case KindInputNotFound:
		return 2
	case KindCorruptInput:
		return 3
	case KindInvalidAngle:
		return 4
	case KindInvalidChunkSize:
		return 5
	case KindEmptyWatermarkText:
		return 6
	case KindPermissionDenied:
		return 7
	case KindOutputWriteFailure:
		return 8
	default:
		return 1
	}
}

// Error is a classified operation failure. Path names the offending file
// when there is one; argument errors leave it empty and describe the
// argument in Err.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Path != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of the first *Error in err's chain, KindInternal
// for any other non-nil error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ExitCode maps err to a process exit status; nil is 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return KindOf(err).ExitCode()
}

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// classifyInput turns a failure to open path for reading into an *Error.
func classifyInput(path string, err error) *Error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return newError(KindInputNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return newError(KindPermissionDenied, path, err)
	default:
		return newError(KindCorruptInput, path, err)
	}
}

// classifyOutput turns a failure to create or write path into an *Error.
func classifyOutput(path string, err error) *Error {
	if errors.Is(err, fs.ErrPermission) {
		return newError(KindPermissionDenied, path, err)
	}
	return newError(KindOutputWriteFailure, path, err)
}

// asError returns err as an *Error, wrapping unclassified errors as Internal.
func asError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return newError(KindInternal, "", err)
}
