// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging provides structured logging for pdftool using bolt.
// Logs go to stderr by default so that stdout carries only command output
// (extracted text, info reports).
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/google/uuid"
)

var (
	mu            sync.Mutex
	once          sync.Once
	defaultLogger *bolt.Logger
	runID         string
)

// Config configures the logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string

	// Format is the output format (json or console).
	Format string

	// Output is the log destination; nil means stderr.
	Output io.Writer
}

// DefaultConfig returns console logging at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

// parseLevel converts a string level to bolt.Level.
func parseLevel(s string) bolt.Level {
	switch s {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "info":
		return bolt.INFO
	case "warn":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

// New builds a logger from config without touching the process default.
func New(config Config) *bolt.Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	var handler bolt.Handler
	if config.Format == "json" {
		handler = bolt.NewJSONHandler(output)
	} else {
		handler = bolt.NewConsoleHandler(output)
	}
	return bolt.New(handler).SetLevel(parseLevel(config.Level))
}

// Init initializes the process logger once and assigns the invocation a run id.
// Later calls are no-ops.
func Init(config Config) {
	once.Do(func() {
		Set(New(config))
		mu.Lock()
		runID = uuid.NewString()
		mu.Unlock()
	})
}

// Set replaces the process logger. Tests use it to capture output.
func Set(l *bolt.Logger) {
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
}

// Get returns the process logger, initializing it with DefaultConfig if needed.
func Get() *bolt.Logger {
	mu.Lock()
	l := defaultLogger
	mu.Unlock()
	if l == nil {
		Init(DefaultConfig())
		mu.Lock()
		l = defaultLogger
		mu.Unlock()
	}
	return l
}

// RunIDValue returns the id attached to every log line of this invocation,
// or "" before Init.
func RunIDValue() string {
	mu.Lock()
	defer mu.Unlock()
	return runID
}

// SetLevel changes the log level of the process logger.
func SetLevel(level string) {
	Get().SetLevel(parseLevel(level))
}

// LogEvent wraps a bolt.Event so Fields can be chained onto it.
type LogEvent struct {
	event *bolt.Event
}

func newEvent(e *bolt.Event) *LogEvent {
	l := &LogEvent{event: e}
	if id := RunIDValue(); id != "" {
		l.Add(RunID(id))
	}
	return l
}

// Add applies a field to the event and returns the wrapper for chaining.
func (l *LogEvent) Add(f Field) *LogEvent {
	l.event = f(l.event)
	return l
}

// Msg sends the log event with a message.
func (l *LogEvent) Msg(msg string) {
	l.event.Msg(msg)
}

// Debug starts a debug level event.
func Debug() *LogEvent { return newEvent(Get().Debug()) }

// Info starts an info level event.
func Info() *LogEvent { return newEvent(Get().Info()) }

// Warn starts a warn level event.
func Warn() *LogEvent { return newEvent(Get().Warn()) }

// Error starts an error level event.
func Error() *LogEvent { return newEvent(Get().Error()) }
