// Package logging provides the zap-based structured logger used by the
// transform engine, with file rotation and key redaction.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Log level aliases for callers that do not import zapcore.
const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

// ParseLogLevel reads a level from the named environment variable,
// returning defaultLevel when it is unset or unrecognised.
//
//	level := ParseLogLevel("PIXELCIPHER_LOG_LEVEL", zapcore.InfoLevel)
func ParseLogLevel(envVarName string, defaultLevel zapcore.Level) zapcore.Level {
	value := os.Getenv(envVarName)
	if value == "" {
		return defaultLevel
	}
	return ParseLogLevelString(value, defaultLevel)
}

// ParseLogLevelString parses debug, info, warn/warning or error, ignoring
// case and surrounding whitespace.
func ParseLogLevelString(levelStr string, defaultLevel zapcore.Level) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return defaultLevel
	}
}

// IsValidLogLevel reports whether ParseLogLevelString recognises levelStr.
func IsValidLogLevel(levelStr string) bool {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
