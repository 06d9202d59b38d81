// Package lumber is the logging layer of the coverage reporter. Failures are
// surfaced as errors to the command, so the contract has no fatal or panic levels.
package lumber

import (
	"github.com/LambdaTest/coveralls-reporter/pkg/errs"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggingConfig configures the console and file sinks. Back ends with a single
// level across sinks use ConsoleLevel, falling back to FileLevel.
type LoggingConfig struct {
	EnableConsole     bool
	ConsoleJSONFormat bool
	ConsoleLevel      string
	EnableFile        bool
	FileJSONFormat    bool
	FileLevel         string
	FileLocation      string
}

// Fields are attached to every entry of a logger returned by WithFields.
type Fields map[string]interface{}

// Log levels accepted in LoggingConfig.
const (
	Debug = "debug"
	Info  = "info"
	Warn  = "warn"
	Error = "error"
)

// Supported back ends.
const (
	InstanceZapLogger int = iota
	InstanceLogrusLogger
)

// rotation limits of the log file
const (
	maxFileSizeMB = 100
	maxFileAgeDay = 28
)

// Logger is the logging contract shared by every package.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	// WithFields returns a logger that adds fields to each entry it writes.
	WithFields(keyValues Fields) Logger
}

// NewLogger builds a logger on the selected back end. verbose forces the debug level.
func NewLogger(config LoggingConfig, verbose bool, loggerInstance int) (Logger, error) {
	switch loggerInstance {
	case InstanceZapLogger:
		return newZapLogger(config, verbose), nil
	case InstanceLogrusLogger:
		return newLogrusLogger(config, verbose)
	default:
		return nil, errs.ErrInvalidLoggerInstance
	}
}

func rotatingFile(config LoggingConfig) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename: config.FileLocation,
		MaxSize:  maxFileSizeMB,
		MaxAge:   maxFileAgeDay,
		Compress: true,
	}
}
