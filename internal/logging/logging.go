// Package logging builds the diagnostics logger of the cash command.
// Results go to standard output; the logger writes to standard error.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Fields maps logrus fields
type Fields = logrus.Fields

const timestampFormat = "2006-01-02T15:04:05.000000Z07:00"

// Options describe how the logger is built.
type Options struct {
	Level   string // panic, fatal, error, warn, info, debug or trace
	Format  string // text or json
	Verbose bool   // forces the debug level
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(w)

	switch strings.ToLower(opts.Format) {
	case "", "text":
		l.Formatter = &logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: timestampFormat,
		}
	case "json":
		l.Formatter = &logrus.JSONFormatter{TimestampFormat: timestampFormat}
	default:
		return nil, fmt.Errorf("unknown log format %q", opts.Format)
	}

	level := logrus.InfoLevel
	if opts.Level != "" {
		var err error
		if level, err = logrus.ParseLevel(opts.Level); err != nil {
			return nil, err
		}
	}
	if opts.Verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	l.SetLevel(level)
	return l, nil
}

// Discard returns a logger that drops every entry.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}
