package logger

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

type requestIDKey struct{}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	level  string
}

// New creates a Logger writing to stdout.
func New(level string) Logger {
	return NewWithWriter(os.Stdout, level)
}

// NewWithWriter creates a Logger writing to w.
func NewWithWriter(w io.Writer, level string) Logger {
	if w == nil {
		w = io.Discard
	}
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  strings.ToLower(strings.TrimSpace(level)),
	}
}

// Discard returns a Logger that drops everything. Handy in tests.
func Discard() Logger {
	return NewWithWriter(io.Discard, "error")
}

// WithRequestID tags ctx so every line logged with it carries the request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request ID stored on ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// ValidLevel reports whether level is one the logger understands.
func ValidLevel(level string) bool {
	_, ok := levels[strings.ToLower(strings.TrimSpace(level))]
	return ok
}

func (l *implLogger) shouldLog(level string) bool {
	currentLevel, ok := levels[l.level]
	if !ok {
		currentLevel = 1 // default to info
	}

	targetLevel, ok := levels[level]
	if !ok {
		return true
	}

	return targetLevel >= currentLevel
}

func (l *implLogger) write(ctx context.Context, tag, msg string, args ...interface{}) {
	prefix := "[" + tag + "] "
	if id := RequestID(ctx); id != "" {
		prefix += "req=" + id + " "
	}
	l.logger.Printf(prefix+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.write(ctx, "DEBUG", msg, args...)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.write(ctx, "INFO", msg, args...)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.write(ctx, "WARN", msg, args...)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.write(ctx, "ERROR", msg, args...)
	}
}

// FormatError renders err for log lines, empty for nil.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%v", err)
}
