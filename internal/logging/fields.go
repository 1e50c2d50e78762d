// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"github.com/felixgeelhaar/bolt/v3"
)

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// RunID adds the invocation id.
func RunID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("run_id", id)
	}
}

// Op adds the operation name.
func Op(op string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("op", op)
	}
}

// Path adds a file path.
func Path(p string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("path", p)
	}
}

// Output adds an output file or directory path.
func Output(p string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("output", p)
	}
}

// Pages adds a page count.
func Pages(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("pages", n)
	}
}

// Count adds a generic item count.
func Count(n int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("count", n)
	}
}

// Angle adds a rotation angle in degrees.
func Angle(deg int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("angle", deg)
	}
}

// Kind adds an error kind.
func Kind(k string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("kind", k)
	}
}

// Bytes adds a size in bytes.
func Bytes(n int64) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("bytes", n)
	}
}

// Err adds an error field. Nil errors are skipped.
func Err(err error) Field {
	return func(e *bolt.Event) *bolt.Event {
		if err == nil {
			return e
		}
		return e.Err(err)
	}
}
