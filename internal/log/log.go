// Package log implements structured logging on logrus.
package log

import "sync"

// Logger is the logging facade used across the codebase; the concrete
// backend is a logrus adapter configured by Init.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	WithField(field string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger

	IsDebugEnabled() bool
}

var (
	mu     sync.Mutex
	logger Logger
)

// GetLogger returns the configured logger, or a text stderr logger at info
// level when Init has not run yet (tests, early startup).
func GetLogger() Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = newFallbackAdapter()
	}
	return logger
}
