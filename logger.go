package marmoset

import (
	"fmt"
	"os"
)

// LogLevel represents the severity of a log message (higher value = higher severity)
type LogLevel int

const (
	LevelDebug LogLevel = iota // Development debugging (requires enabled)
	LevelWarn                  // Warnings (always shown)
	LevelError                 // Runtime errors (always shown)
)

// LogCategory represents the subsystem generating the message
type LogCategory string

const (
	CatNone    LogCategory = ""        // Uncategorized
	CatKey     LogCategory = "key"     // Input translation
	CatSession LogCategory = "session" // Session state machine
	CatEval    LogCategory = "eval"    // Interpreter adapter
	CatRender  LogCategory = "render"  // Output rendering
)

// Logger handles logging for the REPL bridge. Output goes through an
// injected sink so the wasm host can route it to console.log and tests can
// capture it; the default sink writes to stderr.
type Logger struct {
	enabled           bool
	enabledCategories map[LogCategory]bool
	sink              func(string)
}

// NewLogger creates a new logger. When enabled is false, debug messages
// are dropped; warnings and errors always pass through.
func NewLogger(enabled bool) *Logger {
	return &Logger{
		enabled:           enabled,
		enabledCategories: make(map[LogCategory]bool),
		sink: func(msg string) {
			fmt.Fprintln(os.Stderr, msg)
		},
	}
}

// SetSink replaces the output destination for all log messages.
func (l *Logger) SetSink(sink func(string)) {
	if sink != nil {
		l.sink = sink
	}
}

// EnableCategory restricts debug output to the given categories. With no
// categories enabled, all categories pass when debugging is on.
func (l *Logger) EnableCategory(cat LogCategory) {
	l.enabledCategories[cat] = true
}

func (l *Logger) categoryEnabled(cat LogCategory) bool {
	if len(l.enabledCategories) == 0 {
		return true
	}
	return l.enabledCategories[cat]
}

// Debug logs a development message, gated on enabled state and category.
func (l *Logger) Debug(cat LogCategory, format string, args ...interface{}) {
	if !l.enabled || !l.categoryEnabled(cat) {
		return
	}
	l.emit(LevelDebug, cat, fmt.Sprintf(format, args...))
}

// Warn logs a warning; always shown.
func (l *Logger) Warn(cat LogCategory, format string, args ...interface{}) {
	l.emit(LevelWarn, cat, fmt.Sprintf(format, args...))
}

// Error logs an error; always shown.
func (l *Logger) Error(cat LogCategory, format string, args ...interface{}) {
	l.emit(LevelError, cat, fmt.Sprintf(format, args...))
}

func (l *Logger) emit(level LogLevel, cat LogCategory, message string) {
	prefix := "DEBUG"
	switch level {
	case LevelWarn:
		prefix = "WARN"
	case LevelError:
		prefix = "ERROR"
	}
	if cat != CatNone {
		l.sink(fmt.Sprintf("[%s %s] %s", prefix, cat, message))
		return
	}
	l.sink(fmt.Sprintf("[%s] %s", prefix, message))
}
