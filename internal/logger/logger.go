// Package logger wraps charm/log with the messages the CLI emits.
package logger

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging.
type Logger struct {
	*log.Logger
}

// New creates a logger writing to w at info level.
func New(w io.Writer) *Logger {
	return NewWithLevel(w, log.InfoLevel)
}

// NewWithLevel creates a logger with a specific level.
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "wiki2md",
	})
	return &Logger{Logger: l}
}

// LevelFor maps the CLI verbosity flags to a level. quiet wins over verbose.
func LevelFor(quiet, verbose bool) log.Level {
	switch {
	case quiet:
		return log.ErrorLevel
	case verbose:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

// Discard returns a logger that discards all output.
func Discard() *Logger {
	return New(io.Discard)
}

// Printf logs at debug level. It satisfies the printf-style logger hooks of
// libraries such as automaxprocs.
func (l *Logger) Printf(format string, args ...any) {
	l.Debugf(format, args...)
}

// ConfigLoaded logs successful config loading.
func (l *Logger) ConfigLoaded(path string) {
	l.Debug("config loaded", "path", path)
}

// BatchStarted logs the start of a batch conversion.
func (l *Logger) BatchStarted(files, workers int) {
	l.Debug("batch started",
		"files", files,
		"workers", workers)
}

// FileConverted logs a successful conversion.
func (l *Logger) FileConverted(source, dest string, duration time.Duration) {
	l.Debug("file converted",
		"source", source,
		"dest", dest,
		"duration", duration.Round(time.Microsecond))
}

// FileRouted logs the classification bucket of a page.
func (l *Logger) FileRouted(source, bucket string) {
	l.Debug("page routed",
		"source", source,
		"bucket", bucket)
}

// Skipped logs when a file is skipped.
func (l *Logger) Skipped(file, reason string) {
	l.Info("file skipped",
		"file", file,
		"reason", reason)
}

// BatchCompleted logs the outcome of a batch conversion.
func (l *Logger) BatchCompleted(succeeded, failed, skipped int, duration time.Duration) {
	l.Info("batch completed",
		"converted", succeeded,
		"failed", failed,
		"skipped", skipped,
		"duration", duration.Round(time.Millisecond))
}
