// Copyright 2026 The Transiteer Contributors
// All rights reserved.

package transiteer

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// newNopLogger creates a logger that discards everything. Its level is set below debug so that
// entries are dropped before formatting.
func newNopLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by the package. By default nothing is logged.
// Pass nil to restore the silent default.
//
// Rendering logs at debug level only:
//
//	l := logrus.New()
//	l.SetLevel(logrus.DebugLevel)
//	transiteer.SetLogger(l)
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}
