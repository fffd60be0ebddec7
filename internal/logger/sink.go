package logger

//go:generate mockgen -source=sink.go -destination=../mock/sink_mock.go -package=mock

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Sink is the logging capability a process hands to the rest of the
// program. Arguments are unstructured and joined with spaces, the way a
// console printer would render them.
type Sink interface {
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

// sink adapts a zerolog.Logger to Sink. Every entry records the function
// that called Info/Warn/Error in the "func" field.
type sink struct {
	l zerolog.Logger
}

// Sink returns the receiver as a Sink.
func (l *Logger) Sink() Sink {
	return &sink{l: l.Logger}
}

// NopSink returns a Sink that discards everything.
func NopSink() Sink {
	return Nop().Sink()
}

func (s *sink) Info(args ...any) {
	s.l.Info().Caller(1).Msg(join(args))
}

func (s *sink) Warn(args ...any) {
	s.l.Warn().Caller(1).Msg(join(args))
}

func (s *sink) Error(args ...any) {
	s.l.Error().Caller(1).Msg(join(args))
}

func join(args []any) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}
