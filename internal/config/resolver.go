// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/go-options/internal/logger"
	"github.com/xeipuuv/gojsonschema"
)

// Resolver turns raw options into resolved options: it fills in values from
// the JSON config file and the compiled-in defaults and selects exactly one
// logging sink. Collaborators touching the outside world (file system,
// logging backends) are injected so the resolver holds no hidden global
// state.
type Resolver struct {
	fs          FileSystem
	logs        LogFactory
	defaultFile string
	workDir     string
	schema      *gojsonschema.Schema
}

// ResolverOption configures a [Resolver].
type ResolverOption func(*Resolver) error

// WithFileSystem replaces the OS file system used to load the config file.
func WithFileSystem(fs FileSystem) ResolverOption {
	return func(r *Resolver) error {
		r.fs = fs
		return nil
	}
}

// WithLogFactory replaces the factory building default and syslog sinks.
func WithLogFactory(f LogFactory) ResolverOption {
	return func(r *Resolver) error {
		r.logs = f
		return nil
	}
}

// WithDefaultFile sets the config file name used when the options carry no
// "config" path. Defaults to [DefaultConfigFile].
func WithDefaultFile(name string) ResolverOption {
	return func(r *Resolver) error {
		if name == "" {
			return fmt.Errorf("default config file name must not be empty")
		}
		r.defaultFile = name
		return nil
	}
}

// WithWorkDir sets the directory relative config paths are resolved
// against. Defaults to the process working directory at call time.
func WithWorkDir(dir string) ResolverOption {
	return func(r *Resolver) error {
		r.workDir = dir
		return nil
	}
}

// WithSchema makes the resolver validate the config file against a JSON
// schema document before using it.
func WithSchema(schema string) ResolverOption {
	return func(r *Resolver) error {
		s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
		if err != nil {
			return fmt.Errorf("error compiling config schema: %w", err)
		}
		r.schema = s
		return nil
	}
}

// New returns a Resolver reading [DefaultConfigFile] from the OS file system
// and building sinks with [logger.NewFactory], adjusted by opts.
func New(opts ...ResolverOption) (*Resolver, error) {
	r := &Resolver{
		fs:          osFileSystem{},
		logs:        logger.NewFactory(),
		defaultFile: DefaultConfigFile,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("error configuring resolver: %w", err)
		}
	}

	return r, nil
}

// Normalise resolves options into a new, complete set of options.
//
// Precedence, highest first: the keys of options, the keys of the JSON config
// file, then [Defaults]. The config file is options["config"] when that is a
// non-empty string and [DefaultConfigFile] otherwise; a missing file counts as
// empty. The result carries a resolved "log" sink and "normalised" = true.
//
// options is never modified. Already normalised options are returned as-is
// without touching the file system or building a logger.
//
// Errors: [ErrInvalidOptions] for nil options, [ErrInvalidLogger] for a "log"
// value that is not a [logger.Sink], [ErrMalformedConfig] and
// [ErrInvalidConfig] for a bad config file, and [ErrSyslogUnavailable] when
// the requested syslog backend cannot be built.
func (r *Resolver) Normalise(options Options) (Options, error) {
	if options == nil {
		return nil, ErrInvalidOptions
	}
	if options.Normalised() {
		return options, nil
	}
	if err := validateLog(options); err != nil {
		return nil, err
	}

	path, err := r.configPath(options.String(KeyConfig))
	if err != nil {
		return nil, err
	}

	fileOptions, err := r.parseJSON(path)
	if err != nil {
		return nil, err
	}

	resolved := options.Clone()
	resolved.fillMissing(fileOptions)

	sink, err := r.resolveLog(resolved)
	if err != nil {
		return nil, err
	}
	if sink != nil {
		resolved[KeyLog] = sink
	} else {
		delete(resolved, KeyLog)
	}

	resolved.fillMissing(Defaults())
	resolved[KeyNormalised] = true

	return resolved, nil
}

// resolveLog picks the sink in priority order silent, syslog, supplied log,
// default. A nil sink means logging is disabled.
func (r *Resolver) resolveLog(options Options) (logger.Sink, error) {
	if options.Bool(KeySilent) {
		return nil, nil
	}

	if facility := options.String(KeySyslog); facility != "" {
		sink, err := r.logs.Syslog(facility)
		if err != nil {
			return nil, fmt.Errorf("%w: facility %q: %w", ErrSyslogUnavailable, facility, err)
		}
		return sink, nil
	}

	if options.Has(KeyLog) {
		if err := validateLog(options); err != nil {
			return nil, err
		}
		return options.Log(), nil
	}

	return r.logs.Default(), nil
}

func validateLog(options Options) error {
	if !options.Has(KeyLog) {
		return nil
	}
	if _, ok := options[KeyLog].(logger.Sink); !ok {
		return fmt.Errorf("%w: got %T", ErrInvalidLogger, options[KeyLog])
	}

	return nil
}
