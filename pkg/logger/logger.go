package logger

import "github.com/sirupsen/logrus"

// Interface is the logging surface consumed across the codebase. It is the
// subset of *logrus.Logger we actually use, so a logrus logger satisfies it
// out of the box and tests can plug in anything else.
type Interface interface {
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns the default logger.
func New() Interface {
	return logrus.New()
}
