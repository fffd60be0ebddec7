// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build !windows && !plan9

package logger

import (
	"fmt"
	"io"
	"log/syslog"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var facilities = map[string]syslog.Priority{
	"kern":     syslog.LOG_KERN,
	"user":     syslog.LOG_USER,
	"mail":     syslog.LOG_MAIL,
	"daemon":   syslog.LOG_DAEMON,
	"auth":     syslog.LOG_AUTH,
	"syslog":   syslog.LOG_SYSLOG,
	"lpr":      syslog.LOG_LPR,
	"news":     syslog.LOG_NEWS,
	"uucp":     syslog.LOG_UUCP,
	"cron":     syslog.LOG_CRON,
	"authpriv": syslog.LOG_AUTHPRIV,
	"ftp":      syslog.LOG_FTP,
	"local0":   syslog.LOG_LOCAL0,
	"local1":   syslog.LOG_LOCAL1,
	"local2":   syslog.LOG_LOCAL2,
	"local3":   syslog.LOG_LOCAL3,
	"local4":   syslog.LOG_LOCAL4,
	"local5":   syslog.LOG_LOCAL5,
	"local6":   syslog.LOG_LOCAL6,
	"local7":   syslog.LOG_LOCAL7,
}

// ParseFacility maps a facility name such as "local0" to its syslog
// priority bits. Matching is case-insensitive.
func ParseFacility(name string) (syslog.Priority, error) {
	facility, ok := facilities[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFacility, name)
	}

	return facility, nil
}

// NewSyslogLogger connects to the local syslog daemon and returns a *Logger
// that sends every entry to the given facility, tagged with title. Entries
// are mirrored to os.Stdout.
//
// Returns an error if the facility is unknown or the daemon cannot be
// reached.
func NewSyslogLogger(facility, title string) (*Logger, error) {
	priority, err := ParseFacility(facility)
	if err != nil {
		return nil, err
	}

	w, err := syslog.New(priority|syslog.LOG_INFO, title)
	if err != nil {
		return nil, fmt.Errorf("error connecting to syslog: %w", err)
	}

	return newSyslogLogger(w, os.Stdout, title), nil
}

func newSyslogLogger(w zerolog.SyslogWriter, mirror io.Writer, title string) *Logger {
	configureGlobals()

	logger := zerolog.New(zerolog.MultiLevelWriter(zerolog.SyslogLevelWriter(w), mirror)).With().
		Str("role", title).
		Timestamp().
		Logger()

	return &Logger{logger}
}
