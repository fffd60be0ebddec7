package config

// Source is one typed layer of raw options, filled either from command-line
// flags or from environment variables.
//
// Struct tags:
//   - env: environment variable name, prefixed with [EnvPrefix] (caarlos0/env).
type Source struct {
	// TODO is the placeholder option.
	// Env: TODO_TODO
	TODO string `env:"TODO"`

	// Silent disables logging. nil means unset, so an explicit false still
	// overrides a config file.
	// Env: TODO_SILENT
	Silent *bool `env:"SILENT"`

	// Syslog is the facility logs are sent to.
	// Env: TODO_SYSLOG
	Syslog string `env:"SYSLOG"`

	// Config is the path of the JSON config file.
	// Env: TODO_CONFIG
	Config string `env:"CONFIG"`
}

// options converts s into raw options holding only the fields that are set.
func (s *Source) options() Options {
	o := Options{}
	if s.TODO != "" {
		o[KeyTODO] = s.TODO
	}
	if s.Silent != nil {
		o[KeySilent] = *s.Silent
	}
	if s.Syslog != "" {
		o[KeySyslog] = s.Syslog
	}
	if s.Config != "" {
		o[KeyConfig] = s.Config
	}

	return o
}
