// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger together with
// the logging capability contract ([Sink]) accepted by option normalisation.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Code that only needs the three-method capability (info, warn, error with an
// unstructured argument list) should depend on [Sink] instead and obtain one
// via [Logger.Sink].
package logger

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs the default console-backed *Logger for the given
// origin label (e.g. "todo", "worker").
//
// The logger is configured with:
//   - global log level set to Debug (all levels are emitted);
//   - a "role" field set to origin, useful for filtering logs from different
//     processes sharing one destination;
//   - a "time" timestamp field added to every log entry;
//   - caller fields named "func" holding the fully-qualified function name
//     (instead of the default file:line format), added per event by [Sink].
//
// Output is written to os.Stdout in JSON format.
func NewLogger(origin string) *Logger {
	return newLogger(os.Stdout, origin)
}

func newLogger(w io.Writer, origin string) *Logger {
	configureGlobals()

	logger := zerolog.New(w).With().
		Str("role", origin).
		Timestamp().
		Logger()

	return &Logger{logger}
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and for silenced processes.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// WithTraceID returns a child logger whose entries carry a "trace_id" field.
// An empty traceID leaves the logger unchanged.
func (l *Logger) WithTraceID(traceID string) *Logger {
	child := l.GetChildLogger()
	if traceID == "" {
		return child
	}

	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	return child
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its global logger,
// so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
