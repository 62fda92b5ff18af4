package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// LogLevel is the severity of a log line
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

var levelNames = map[LogLevel]string{
	LogLevelDebug: "DEBUG",
	LogLevelInfo:  "INFO",
	LogLevelWarn:  "WARN",
	LogLevelError: "ERROR",
}

// String returns the line prefix of the level
func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// logSink is the level and writer shared by a logger and its named children
type logSink struct {
	mu       sync.RWMutex
	minLevel LogLevel
	output   io.Writer
}

// Logger writes level-filtered lines to stderr (or any writer).
// Named children share the parent's level and output.
type Logger struct {
	sink *logSink
	name string
}

// NewLogger creates a logger with the specified minimum level
func NewLogger(minLevel LogLevel, output io.Writer) *Logger {
	return &Logger{sink: &logSink{minLevel: minLevel, output: output}}
}

// Named returns a child logger that tags its lines with a component name
func (l *Logger) Named(name string) *Logger {
	if l.name != "" {
		name = l.name + "." + name
	}
	return &Logger{sink: l.sink, name: name}
}

// SetLevel changes the minimum log level
func (l *Logger) SetLevel(level LogLevel) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.minLevel = level
}

// GetLevel returns the current minimum log level
func (l *Logger) GetLevel() LogLevel {
	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()
	return l.sink.minLevel
}

// SetOutput changes the output writer
func (l *Logger) SetOutput(output io.Writer) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	l.sink.output = output
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.log(LogLevelDebug, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.log(LogLevelInfo, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.log(LogLevelWarn, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.log(LogLevelError, format, args...)
}

// log writes one line when level meets the minimum. The sink lock is held
// while writing so lines from concurrent requests never interleave.
func (l *Logger) log(level LogLevel, format string, args ...interface{}) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	if level < l.sink.minLevel {
		return
	}

	prefix := level.String()
	if l.name != "" {
		prefix += " [" + l.name + "]"
	}
	fmt.Fprintf(l.sink.output, "%s: %s\n", prefix, fmt.Sprintf(format, args...))
}

// LogLevelFromString parses a settings level name, defaulting to WARN
func LogLevelFromString(level string) LogLevel {
	level = strings.ToUpper(strings.TrimSpace(level))
	if level == "WARNING" {
		return LogLevelWarn
	}
	for l, name := range levelNames {
		if name == level {
			return l
		}
	}
	return LogLevelWarn
}

var globalLogger *Logger

// InitGlobalLogger replaces the global logger; it writes to stderr until
// SetOutput is called
func InitGlobalLogger(level string) {
	globalLogger = NewLogger(LogLevelFromString(level), os.Stderr)
}

// GetLogger returns the global logger, creating a WARN logger on first use
func GetLogger() *Logger {
	if globalLogger == nil {
		InitGlobalLogger("")
	}
	return globalLogger
}

func Debug(format string, args ...interface{}) {
	GetLogger().Debug(format, args...)
}

func Info(format string, args ...interface{}) {
	GetLogger().Info(format, args...)
}

func Warn(format string, args ...interface{}) {
	GetLogger().Warn(format, args...)
}
