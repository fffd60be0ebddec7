package logger

import (
	"io"
	"os"

	"github.com/google/uuid"
)

const (
	// DefaultOrigin labels entries written by the default logger.
	// TODO: set your log origin here
	DefaultOrigin = "TODO: set your log origin here"

	// DefaultSyslogTitle is the tag syslog entries are sent under.
	// TODO: set your log title
	DefaultSyslogTitle = "TODO: set your log title"
)

// Factory builds the sinks a normalised set of options can log to. Every
// logger it builds shares one trace_id, identifying the current process run.
type Factory struct {
	origin  string
	title   string
	out     io.Writer
	traceID string

	dialSyslog func(facility, title string) (*Logger, error)
}

// NewFactory returns a Factory writing default logs to os.Stdout under
// [DefaultOrigin] and syslog entries under [DefaultSyslogTitle].
func NewFactory() *Factory {
	return &Factory{
		origin:     DefaultOrigin,
		title:      DefaultSyslogTitle,
		out:        os.Stdout,
		traceID:    NewTraceID(),
		dialSyslog: NewSyslogLogger,
	}
}

// Default returns the console-backed sink.
func (f *Factory) Default() Sink {
	return newLogger(f.out, f.origin).WithTraceID(f.traceID).Sink()
}

// Syslog returns a sink bound to the given syslog facility.
func (f *Factory) Syslog(facility string) (Sink, error) {
	l, err := f.dialSyslog(facility, f.title)
	if err != nil {
		return nil, err
	}

	return l.WithTraceID(f.traceID).Sink(), nil
}

// TraceID returns the run identifier attached to every logger f builds.
func (f *Factory) TraceID() string {
	return f.traceID
}

// NewTraceID returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if the v7 generator fails.
func NewTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
