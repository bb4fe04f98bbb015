package core

import (
	"os"
	"strconv"
	"strings"
)

// envOverrides reads typed values from the environment. Each method
// returns current unchanged when the variable is unset, empty or unparsable,
// so layered sources (defaults, YAML, env) compose by calling it last.
type envOverrides struct {
	lookup func(string) (string, bool)
}

func newEnvOverrides() envOverrides {
	return envOverrides{lookup: os.LookupEnv}
}

func (e envOverrides) raw(key string) (string, bool) {
	value, ok := e.lookup(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func (e envOverrides) String(key, current string) string {
	if value, ok := e.raw(key); ok {
		return value
	}
	return current
}

func (e envOverrides) Int(key string, current int) int {
	if value, ok := e.raw(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return current
}

func (e envOverrides) Int64(key string, current int64) int64 {
	if value, ok := e.raw(key); ok {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return current
}

// Bool accepts true/1/yes/on and false/0/no/off, ignoring case.
func (e envOverrides) Bool(key string, current bool) bool {
	value, ok := e.raw(key)
	if !ok {
		return current
	}
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return current
	}
}

// GetEnvOrDefault returns the value of an environment variable or a default value.
func GetEnvOrDefault(key, defaultValue string) string {
	return newEnvOverrides().String(key, defaultValue)
}

// ParseIntEnv parses an environment variable as an integer.
// Returns the default value if the variable is not set or cannot be parsed.
func ParseIntEnv(key string, defaultValue int) int {
	return newEnvOverrides().Int(key, defaultValue)
}

// ParseBoolEnv parses an environment variable as a boolean.
// Returns the default value if the variable is not set or cannot be parsed.
func ParseBoolEnv(key string, defaultValue bool) bool {
	return newEnvOverrides().Bool(key, defaultValue)
}
