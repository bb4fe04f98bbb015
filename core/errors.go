package core

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigError represents a configuration-related error with actionable instructions.
type ConfigError struct {
	Code    string // Error code for programmatic handling
	Message string // Human-readable error message
	Action  string // Actionable instruction for resolution
	Err     error  // Underlying cause, if any
}

func (e *ConfigError) Error() string {
	if e.Action != "" {
		return fmt.Sprintf("%s. %s", e.Message, e.Action)
	}
	return e.Message
}

// Unwrap returns the underlying cause so errors.Is can see through a ConfigError.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Error codes for configuration errors
const (
	ErrCodeEnvFileMissing    = "ENV_FILE_MISSING"
	ErrCodeConfigFileMissing = "CONFIG_FILE_MISSING"
	ErrCodeConfigParse       = "CONFIG_PARSE"
	ErrCodeInvalidAlgorithm  = "INVALID_ALGORITHM"
	ErrCodeInvalidOperation  = "INVALID_OPERATION"
	ErrCodeInvalidStrength   = "INVALID_STRENGTH"
	ErrCodeInvalidLogLevel   = "INVALID_LOG_LEVEL"
	ErrCodeInvalidValue      = "INVALID_VALUE"
)

// ErrEnvFileMissing returns an error for an explicitly requested .env file that does not exist.
func ErrEnvFileMissing(path string, cause error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeEnvFileMissing,
		Message: fmt.Sprintf("Environment file not found: %s", path),
		Action:  "Create the file or omit the path to use process environment variables only",
		Err:     cause,
	}
}

// ErrConfigFileMissing returns an error for a missing YAML config file.
func ErrConfigFileMissing(path string, cause error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeConfigFileMissing,
		Message: fmt.Sprintf("Configuration file not found: %s", path),
		Action:  "Check the path passed to LoadConfigFile",
		Err:     cause,
	}
}

// ErrConfigParse returns an error for a config or .env file that cannot be parsed.
func ErrConfigParse(path string, cause error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeConfigParse,
		Message: fmt.Sprintf("Cannot parse %s: %v", path, cause),
		Action:  "Fix the syntax error and try again",
		Err:     cause,
	}
}

// ErrInvalidAlgorithm returns an error for an unknown default algorithm.
func ErrInvalidAlgorithm(name string, valid []string, cause error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidAlgorithm,
		Message: fmt.Sprintf("Invalid %s '%s'", EnvAlgorithm, name),
		Action:  fmt.Sprintf("Set %s to one of: %s", EnvAlgorithm, strings.Join(valid, ", ")),
		Err:     cause,
	}
}

// ErrInvalidOperation returns an error for an unknown default operation.
func ErrInvalidOperation(name string, cause error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidOperation,
		Message: fmt.Sprintf("Invalid %s '%s'", EnvOperation, name),
		Action:  fmt.Sprintf("Set %s to encrypt or decrypt", EnvOperation),
		Err:     cause,
	}
}

// ErrInvalidStrength returns an error for a default strength outside the supported range.
func ErrInvalidStrength(strength, lowest, highest int, cause error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidStrength,
		Message: fmt.Sprintf("Invalid %s %d", EnvStrength, strength),
		Action:  fmt.Sprintf("Set %s between %d and %d", EnvStrength, lowest, highest),
		Err:     cause,
	}
}

// ErrInvalidLogLevel returns an error for an unrecognised log level.
func ErrInvalidLogLevel(level string) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidLogLevel,
		Message: fmt.Sprintf("Invalid %s '%s'", EnvLogLevel, level),
		Action:  fmt.Sprintf("Set %s to debug, info, warn or error", EnvLogLevel),
	}
}

// ErrInvalidValue returns an error for a numeric setting that must be positive.
func ErrInvalidValue(varName string, value int64) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeInvalidValue,
		Message: fmt.Sprintf("Invalid %s %d", varName, value),
		Action:  fmt.Sprintf("Set %s to a positive number", varName),
	}
}

// IsConfigError checks if an error is or wraps a ConfigError and returns it if so.
func IsConfigError(err error) (*ConfigError, bool) {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr, true
	}
	return nil, false
}

// GetErrorCode extracts the error code from an error if it's a ConfigError.
func GetErrorCode(err error) string {
	if configErr, ok := IsConfigError(err); ok {
		return configErr.Code
	}
	return ""
}
