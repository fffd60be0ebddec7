package config

import "errors"

// Errors returned by [Resolver.Normalise]. Callers should match them with
// [errors.Is]; file and backend failures are wrapped around the cause.
var (
	// ErrInvalidOptions is returned when no options are supplied at all.
	ErrInvalidOptions = errors.New("invalid options: options must be a non-nil mapping")

	// ErrInvalidLogger is returned when the "log" option does not implement
	// the Info, Warn and Error operations of logger.Sink.
	ErrInvalidLogger = errors.New("invalid log option: must implement Info, Warn and Error")

	// ErrMalformedConfig is returned when the config file is not a JSON object.
	ErrMalformedConfig = errors.New("malformed config file")

	// ErrInvalidConfig is returned when the config file does not satisfy the
	// resolver's JSON schema.
	ErrInvalidConfig = errors.New("config file does not match schema")

	// ErrSyslogUnavailable is returned when a syslog facility was requested
	// but the syslog backend could not be constructed. Processes are expected
	// to treat it as fatal, see [IsFatal].
	ErrSyslogUnavailable = errors.New("failed to initialise syslog")
)

// IsFatal reports whether err means logging infrastructure is unavailable
// and the process should not carry on.
func IsFatal(err error) bool {
	return errors.Is(err, ErrSyslogUnavailable)
}
