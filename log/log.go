/*
Package log provides colored console logging with file/line information.

It keeps a small leveled API (Info, Warn, Error, Debug and their Skip
variants for helpers that log on behalf of their caller) on top of a
zerolog console logger. Logger exposes the underlying zerolog.Logger for
structured fields.
*/
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// DebugMode enables Debug and DebugSkip output.
var DebugMode atomic.Bool

var logger atomic.Pointer[zerolog.Logger]

func init() {
	SetOutput(os.Stdout)
}

// SetOutput sends log lines to w. Colors are only used for os.Stdout and
// os.Stderr.
func SetOutput(w io.Writer) {
	noColor := w != os.Stdout && w != os.Stderr
	cw := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    noColor,
		TimeFormat: time.TimeOnly,
	}

	l := zerolog.New(cw).With().Timestamp().Logger()
	logger.Store(&l)
}

// Logger returns the current logger. Debug events are dropped unless
// DebugMode is set.
func Logger() *zerolog.Logger {
	level := zerolog.InfoLevel
	if DebugMode.Load() {
		level = zerolog.DebugLevel
	}

	l := logger.Load().Level(level)
	return &l
}

// emit reports the caller of the exported function, moved up skip frames.
func emit(e *zerolog.Event, skip int, args ...any) {
	e.Caller(skip + 2).Msg(sprint(args...))
}

// sprint joins args with single spaces.
func sprint(args ...any) string {
	var buf strings.Builder
	for i, arg := range args {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprint(&buf, arg)
	}

	return buf.String()
}

func Info(args ...any) {
	emit(Logger().Info(), 0, args...)
}

func InfoSkip(skip int, args ...any) {
	emit(Logger().Info(), skip, args...)
}

func Warn(args ...any) {
	emit(Logger().Warn(), 0, args...)
}

func WarnSkip(skip int, args ...any) {
	emit(Logger().Warn(), skip, args...)
}

func Error(args ...any) {
	emit(Logger().Error(), 0, args...)
}

func ErrorSkip(skip int, args ...any) {
	emit(Logger().Error(), skip, args...)
}

func Debug(args ...any) {
	if DebugMode.Load() {
		emit(Logger().Debug(), 0, args...)
	}
}

func DebugSkip(skip int, args ...any) {
	if DebugMode.Load() {
		emit(Logger().Debug(), skip, args...)
	}
}
