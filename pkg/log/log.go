// Package log provides the logging interface used throughout the emulator
// core, with a logrus-backed default implementation.
package log

import "github.com/sirupsen/logrus"

// Logger is the logging interface the emulator core logs through. A fault
// raised anywhere in a frame is logged once, by internal/gameboy's frame
// recovery, before it is returned or re-panicked.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	entry *logrus.Logger
}

// New returns a Logger backed by logrus, configured for terminal output
// during development: no timestamps, no color, stable field order.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
	}
	return &logger{entry: l}
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}
