package config

//go:generate mockgen -source=interfaces.go -destination=../mock/config_mock.go -package=mock

import (
	"io/fs"

	"github.com/MKhiriev/go-options/internal/logger"
)

// FileSystem is the part of the file system the resolver touches: a stat to
// decide whether the config file is a regular file and a read of its bytes.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// LogFactory constructs the logging backends [Resolver.Normalise] can
// select. *logger.Factory is the production implementation.
type LogFactory interface {
	// Default returns the console-backed sink used when nothing else was
	// requested.
	Default() logger.Sink

	// Syslog returns a sink bound to the named syslog facility, or an error
	// if the syslog backend cannot be constructed.
	Syslog(facility string) (logger.Sink, error)
}
