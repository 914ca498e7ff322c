package log

import (
	"log/slog"
	"sync/atomic"
)

var root atomic.Value

func init() {
	root.Store(NewLogger(DiscardHandler()))
}

// SetDefault replaces the root logger and, for loggers built by NewLogger,
// the slog default as well.
// SetDefault 设置默认的全局日志记录器
func SetDefault(l Logger) {
	root.Store(l)
	if lg, ok := l.(*logger); ok {
		slog.SetDefault(lg.inner)
	}
}

// Root returns the root logger. It discards everything until SetDefault.
func Root() Logger {
	return root.Load().(Logger)
}

// The package level helpers call Write directly so that the caller frame
// skipped by logger.Write is the same as for the methods.

func Trace(msg string, ctx ...interface{}) { Root().Write(LevelTrace, msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { Root().Write(LevelDebug, msg, ctx...) }
func Info(msg string, ctx ...interface{}) { Root().Write(LevelInfo, msg, ctx...) }
func Warn(msg string, ctx ...interface{}) { Root().Write(LevelWarn, msg, ctx...) }
