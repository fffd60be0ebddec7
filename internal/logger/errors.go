package logger

import "errors"

var (
	// ErrUnknownFacility is returned when a syslog facility name is not one
	// of the standard facilities (kern, user, ..., local0-local7).
	ErrUnknownFacility = errors.New("unknown syslog facility")

	// ErrSyslogUnsupported is returned on platforms without a syslog daemon.
	ErrSyslogUnsupported = errors.New("syslog is not supported on this platform")
)
