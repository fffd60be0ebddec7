package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

type sourceBuilder struct {
	sources []*Source
	err     error
}

func newSourceBuilder() *sourceBuilder {
	return &sourceBuilder{
		sources: make([]*Source, 0, 2),
	}
}

// build merges the collected sources, earliest first: a field set by an
// earlier source is never replaced by a later one.
func (b *sourceBuilder) build() (Options, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building raw options: %w", b.err)
	}

	merged := new(Source)
	for _, src := range b.sources {
		if err := mergo.Merge(merged, src); err != nil {
			return nil, fmt.Errorf("error merging option sources: %w", err)
		}
	}

	return merged.options(), nil
}

// withFlags adds the flags the user actually passed on fs; values of flags
// left at their defaults are ignored.
func (b *sourceBuilder) withFlags(fs *pflag.FlagSet, parsed *Source) *sourceBuilder {
	if fs == nil || parsed == nil {
		return b
	}

	src := &Source{}
	if fs.Changed(FlagTODO) {
		src.TODO = parsed.TODO
	}
	if fs.Changed(FlagSilent) && parsed.Silent != nil {
		silent := *parsed.Silent
		src.Silent = &silent
	}
	if fs.Changed(FlagSyslog) {
		src.Syslog = parsed.Syslog
	}
	if fs.Changed(FlagConfig) {
		src.Config = parsed.Config
	}

	b.sources = append(b.sources, src)
	return b
}

func (b *sourceBuilder) withEnv() *sourceBuilder {
	envSrc := &Source{}
	if err := parseEnv(envSrc); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.sources = append(b.sources, envSrc)
	return b
}

// RawOptions collects the raw options of a process: flags changed on fs
// (parsed into flags by [RegisterFlags]) take precedence over the TODO_*
// environment variables. The result is ready for [Resolver.Normalise].
func RawOptions(fs *pflag.FlagSet, flags *Source) (Options, error) {
	return newSourceBuilder().
		withFlags(fs, flags).
		withEnv().
		build()
}
