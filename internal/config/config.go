// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"maps"
	"strconv"

	"github.com/MKhiriev/go-options/internal/logger"
)

// Well-known option keys. Any other key is carried through untouched.
const (
	// KeyTODO is the placeholder option.
	// TODO: replace with your own option keys
	KeyTODO = "TODO"

	// KeySilent disables logging when truthy.
	KeySilent = "silent"

	// KeySyslog names the syslog facility logs are routed to.
	KeySyslog = "syslog"

	// KeyConfig is the path of the JSON configuration file.
	KeyConfig = "config"

	// KeyLog holds the resolved [logger.Sink].
	KeyLog = "log"

	// KeyNormalised marks options that went through [Resolver.Normalise].
	KeyNormalised = "normalised"
)

// Options is an open-ended set of named option values. The same type carries
// the raw options a caller supplies and the resolved options
// [Resolver.Normalise] returns.
type Options map[string]any

// Has reports whether key holds a non-nil value.
func (o Options) Has(key string) bool {
	v, ok := o[key]
	return ok && v != nil
}

// String returns the value under key if it is a string, "" otherwise.
func (o Options) String(key string) string {
	s, _ := o[key].(string)
	return s
}

// Bool reports whether the value under key is true. Strings are accepted in
// any form strconv.ParseBool understands.
func (o Options) Bool(key string) bool {
	switch v := o[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	default:
		return false
	}
}

// Log returns the sink stored under [KeyLog], or nil if there is none.
func (o Options) Log() logger.Sink {
	s, _ := o[KeyLog].(logger.Sink)
	return s
}

// Normalised reports whether o is the result of [Resolver.Normalise].
func (o Options) Normalised() bool {
	return o.Bool(KeyNormalised)
}

// Clone returns a shallow copy of o.
func (o Options) Clone() Options {
	if o == nil {
		return Options{}
	}
	return maps.Clone(o)
}

// fillMissing copies every entry of src whose key o does not already hold.
// Values already present in o always win, even zero values such as "" or
// false; only absent or nil entries are filled.
func (o Options) fillMissing(src map[string]any) {
	for key, value := range src {
		if !o.Has(key) {
			o[key] = value
		}
	}
}

// Settings is a typed view of the well-known keys of resolved options.
type Settings struct {
	TODO   string
	Silent bool
	Syslog string
	Config string
	Log    logger.Sink
}

// Settings extracts the well-known keys of o. Log is never nil: options
// without a sink get one that discards everything.
func (o Options) Settings() Settings {
	s := Settings{
		TODO:   o.String(KeyTODO),
		Silent: o.Bool(KeySilent),
		Syslog: o.String(KeySyslog),
		Config: o.String(KeyConfig),
		Log:    o.Log(),
	}
	if s.Log == nil {
		s.Log = logger.NopSink()
	}

	return s
}
