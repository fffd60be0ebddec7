// Package config normalises the options of a process into one resolved
// configuration.
//
// Options are assembled from the following sources, highest priority first:
//  1. Command-line flags (see [Flags] and [RegisterFlags])
//  2. Environment variables (TODO_TODO, TODO_SILENT, TODO_SYSLOG, TODO_CONFIG)
//  3. The JSON config file, [DefaultConfigFile] unless --config says otherwise
//  4. Compiled-in [Defaults]
//
// Sources 1 and 2 are collected by [RawOptions]; [Resolver.Normalise] adds 3
// and 4 and resolves the logging sink, choosing in order: none when silent,
// syslog when a facility is given, the caller's own [logger.Sink], and the
// default console logger.
//
// The values in this package are placeholders ("TODO") to be replaced by
// the program embedding it.
package config
