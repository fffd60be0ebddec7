package config

import (
	"strings"

	"github.com/spf13/pflag"
)

// Long flag names.
const (
	FlagTODO   = "TODO"
	FlagSilent = "silent"
	FlagSyslog = "syslog"
	FlagConfig = "config"
)

// Flag describes one command-line option accepted by processes built on this
// package.
type Flag struct {
	Short       string
	Long        string
	Arg         string
	Description string
}

// Format renders f the way usage text shows it, e.g. "-f, --config <path>".
func (f Flag) Format() string {
	var b strings.Builder
	b.WriteString("-" + f.Short + ", --" + f.Long)
	if f.Arg != "" {
		b.WriteString(" <" + f.Arg + ">")
	}

	return b.String()
}

// usage is Description without backquotes, which pflag would otherwise take
// for the argument name.
func (f Flag) usage() string {
	return strings.ReplaceAll(f.Description, "`", "'")
}

// Flags lists the options registered by [RegisterFlags].
var Flags = []Flag{
	{
		Short:       "t",
		Long:        FlagTODO,
		Arg:         "TODO",
		Description: "TODO: add your command-line options here, default is `" + DefaultTODO + "`",
	},
	{
		Short:       "s",
		Long:        FlagSilent,
		Description: "disable logging",
	},
	{
		Short:       "y",
		Long:        FlagSyslog,
		Arg:         "facility",
		Description: "send logs to syslog, with the specified facility level",
	},
	{
		Short:       "f",
		Long:        FlagConfig,
		Arg:         "path",
		Description: "read configuration options from a file, default is `" + DefaultConfigFile + "`",
	},
}

// RegisterFlags declares [Flags] on fs and returns the Source they are
// parsed into.
func RegisterFlags(fs *pflag.FlagSet) *Source {
	src := &Source{}
	for _, f := range Flags {
		switch f.Long {
		case FlagTODO:
			fs.StringVarP(&src.TODO, f.Long, f.Short, "", f.usage())
		case FlagSilent:
			src.Silent = fs.BoolP(f.Long, f.Short, false, f.usage())
		case FlagSyslog:
			fs.StringVarP(&src.Syslog, f.Long, f.Short, "", f.usage())
		case FlagConfig:
			fs.StringVarP(&src.Config, f.Long, f.Short, "", f.usage())
		}
	}

	return src
}
