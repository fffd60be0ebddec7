package config

import "github.com/MKhiriev/go-options/internal/logger"

// DefaultConfigFile is read from the working directory when no config path
// is given.
// TODO: name your default config file here
const DefaultConfigFile = ".TODOrc"

// DefaultTODO is the default of the placeholder option.
// TODO: add your default option values here
const DefaultTODO = "TODO: add your default option values here"

// Defaults returns the compiled-in option values, applied last and only to
// keys nothing else has set. Only the keys listed here are ever defaulted.
func Defaults() Options {
	return Options{
		KeyTODO:   DefaultTODO,
		KeySilent: false,
		KeyLog:    logger.NopSink(),
	}
}
