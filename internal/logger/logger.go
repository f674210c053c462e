package logger

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type contextKey struct{}

// Options configures the base logger
type Options struct {
	Level string
	JSON  bool
	Out   io.Writer
}

// New constructs the process logger with the desired level and format
func New(opts Options) *logrus.Logger {
	log := logrus.New()
	if opts.Out != nil {
		log.SetOutput(opts.Out)
	} else {
		log.SetOutput(os.Stdout)
	}

	if opts.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	log.SetLevel(ParseLevel(opts.Level))
	return log
}

// ParseLevel maps a level name to a logrus level, defaulting to info
func ParseLevel(raw string) logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(raw)))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// ForInvocation derives a logger scoped to a single request. When debug is
// set the derived logger emits debug entries regardless of the base level;
// the base logger is left untouched.
func ForInvocation(base *logrus.Logger, debug bool, fields logrus.Fields) *logrus.Entry {
	level := base.GetLevel()
	if debug && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}

	scoped := &logrus.Logger{
		Out:          base.Out,
		Formatter:    base.Formatter,
		Hooks:        base.Hooks,
		ReportCaller: base.ReportCaller,
		ExitFunc:     base.ExitFunc,
		Level:        level,
	}
	return scoped.WithFields(fields)
}

// WithContext stores a logger in ctx
func WithContext(ctx context.Context, entry *logrus.Entry) context.Context {
	return context.WithValue(ctx, contextKey{}, entry)
}

// FromContext returns the logger stored in ctx, or one on the standard logger
func FromContext(ctx context.Context) *logrus.Entry {
	if ctx != nil {
		if entry, ok := ctx.Value(contextKey{}).(*logrus.Entry); ok && entry != nil {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
