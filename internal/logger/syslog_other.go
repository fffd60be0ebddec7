//go:build windows || plan9

package logger

// NewSyslogLogger always fails on platforms without syslog.
func NewSyslogLogger(facility, title string) (*Logger, error) {
	return nil, ErrSyslogUnsupported
}
