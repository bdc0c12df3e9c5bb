// Package log provides leveled logging with caller file/line information,
// backed by logrus. The *Skip variants attribute an entry to a frame higher
// up the stack, which library code uses to point warnings at its caller.
package log

import (
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Logger is the logrus instance behind the package functions. It writes
// text-formatted entries to stderr; embedders may reconfigure or replace
// it wholesale.
var Logger = newLogger()

// DebugMode gates the Debug functions. Off by default.
var DebugMode = false

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})

	return logger
}

// entry tags a logrus entry with the file:line of the frame skip levels up
// the stack.
func entry(skip int) *logrus.Entry {
	_, filePath, line, ok := runtime.Caller(skip)
	if !ok {
		return Logger.WithField("caller", "???")
	}

	return Logger.WithField("caller", filepath.Base(filePath)+":"+strconv.Itoa(line))
}

// Info logs at info level, tagged with the caller's file:line.
func Info(args ...any) {
	entry(2).Info(args...)
}

// InfoSkip logs at info level, attributing the entry to the frame skip
// levels above the caller.
func InfoSkip(skip int, args ...any) {
	entry(skip + 2).Info(args...)
}

// Error logs at error level, tagged with the caller's file:line.
func Error(args ...any) {
	entry(2).Error(args...)
}

// ErrorSkip logs at error level, attributing the entry to the frame skip
// levels above the caller.
func ErrorSkip(skip int, args ...any) {
	entry(skip + 2).Error(args...)
}

// Warn logs at warning level, tagged with the caller's file:line.
func Warn(args ...any) {
	entry(2).Warn(args...)
}

// WarnSkip logs at warning level, attributing the entry to the frame skip
// levels above the caller.
func WarnSkip(skip int, args ...any) {
	entry(skip + 2).Warn(args...)
}

// Debug logs at debug level when DebugMode is enabled.
func Debug(args ...any) {
	if DebugMode {
		entry(2).Debug(args...)
	}
}

// DebugSkip logs at debug level when DebugMode is enabled, attributing the
// entry to the frame skip levels above the caller.
func DebugSkip(skip int, args ...any) {
	if DebugMode {
		entry(skip + 2).Debug(args...)
	}
}
