package cli

import (
	"github.com/YoshitsuguKoike/propbrief/internal/app"
)

// loggerBridge adapts the CLI logger to the app.Logger interface
type loggerBridge struct {
	cliLogger *Logger
}

func (b *loggerBridge) Debug(format string, args ...interface{}) {
	b.cliLogger.Debug(format, args...)
}

func (b *loggerBridge) Info(format string, args ...interface{}) {
	b.cliLogger.Info(format, args...)
}

func (b *loggerBridge) Warn(format string, args ...interface{}) {
	b.cliLogger.Warn(format, args...)
}

func (b *loggerBridge) Error(format string, args ...interface{}) {
	b.cliLogger.Error(format, args...)
}

// InitializeLoggers routes the app layer through the CLI logger and returns
// the bridged logger for constructors that take one
func InitializeLoggers(logger *Logger) app.Logger {
	appLogger := &loggerBridge{cliLogger: logger}
	app.SetLogger(appLogger)
	return appLogger
}

// componentLogger bridges a named child of the global CLI logger
func componentLogger(name string) app.Logger {
	return &loggerBridge{cliLogger: GetLogger().Named(name)}
}
