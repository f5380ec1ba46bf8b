package core

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

const defaultPrefix = "trimesh 🔺 "

// Logger is the diagnostics sink handed to every component that reports.
// There is no package-level instance: callers build one and pass it down.
// A nil *Logger is valid and discards everything.
type Logger struct {
	l *log.Logger
}

// NewLogger builds a Logger writing to w. An unknown level falls back to info.
func NewLogger(w io.Writer, cfg LogConfig) *Logger {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Caller,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	l.SetLevel(level)
	return &Logger{l: l}
}

// NewStderrLogger is NewLogger on os.Stderr.
func NewStderrLogger(cfg LogConfig) *Logger {
	return NewLogger(os.Stderr, cfg)
}

// NopLogger returns a logger that drops every record.
func NopLogger() *Logger {
	return NewLogger(io.Discard, LogConfig{Level: "error"})
}

// WithPrefix returns a child logger whose records carry prefix.
func (lg *Logger) WithPrefix(prefix string) *Logger {
	if lg == nil {
		return nil
	}
	return &Logger{l: lg.l.WithPrefix(prefix)}
}

func (lg *Logger) LogDebug(msg string, args ...interface{}) {
	if lg == nil {
		return
	}
	lg.l.Debugf(msg, args...)
}

func (lg *Logger) LogInfo(msg string, args ...interface{}) {
	if lg == nil {
		return
	}
	lg.l.Infof(msg, args...)
}

func (lg *Logger) LogWarn(msg string, args ...interface{}) {
	if lg == nil {
		return
	}
	lg.l.Warnf(msg, args...)
}

func (lg *Logger) LogError(msg string, args ...interface{}) {
	if lg == nil {
		return
	}
	lg.l.Errorf(msg, args...)
}
