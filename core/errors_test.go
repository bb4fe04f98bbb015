package core

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"pixelcipher/transform"
)

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		contains []string
	}{
		{
			name: "error with action",
			err: &ConfigError{
				Code:    "TEST_CODE",
				Message: "Test message",
				Action:  "Take this action",
			},
			contains: []string{"Test message", "Take this action"},
		},
		{
			name: "error without action",
			err: &ConfigError{
				Code:    "TEST_CODE",
				Message: "Test message only",
			},
			contains: []string{"Test message only"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errStr := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(errStr, s) {
					t.Errorf("ConfigError.Error() = %q, expected to contain %q", errStr, s)
				}
			}
		})
	}
}

func TestConfigError_Constructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigError
		code     string
		contains []string
	}{
		{
			name:     "env file missing",
			err:      ErrEnvFileMissing("custom.env", fs.ErrNotExist),
			code:     ErrCodeEnvFileMissing,
			contains: []string{"custom.env"},
		},
		{
			name:     "config file missing",
			err:      ErrConfigFileMissing("pixelcipher.yaml", fs.ErrNotExist),
			code:     ErrCodeConfigFileMissing,
			contains: []string{"pixelcipher.yaml", "LoadConfigFile"},
		},
		{
			name:     "parse",
			err:      ErrConfigParse("bad.yaml", errors.New("line 3: mapping values are not allowed")),
			code:     ErrCodeConfigParse,
			contains: []string{"bad.yaml", "line 3"},
		},
		{
			name:     "algorithm",
			err:      ErrInvalidAlgorithm("rot13", []string{"xor", "shuffle"}, transform.ErrUnknownAlgorithm),
			code:     ErrCodeInvalidAlgorithm,
			contains: []string{EnvAlgorithm, "rot13", "xor, shuffle"},
		},
		{
			name:     "operation",
			err:      ErrInvalidOperation("scramble", transform.ErrUnknownOperation),
			code:     ErrCodeInvalidOperation,
			contains: []string{EnvOperation, "scramble", "encrypt or decrypt"},
		},
		{
			name:     "strength",
			err:      ErrInvalidStrength(9, 1, 5, transform.ErrInvalidStrength),
			code:     ErrCodeInvalidStrength,
			contains: []string{EnvStrength, "9", "between 1 and 5"},
		},
		{
			name:     "log level",
			err:      ErrInvalidLogLevel("loud"),
			code:     ErrCodeInvalidLogLevel,
			contains: []string{EnvLogLevel, "loud"},
		},
		{
			name:     "value",
			err:      ErrInvalidValue(EnvHistoryCapacity, -3),
			code:     ErrCodeInvalidValue,
			contains: []string{EnvHistoryCapacity, "-3", "positive"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.code)
			}
			if tt.err.Action == "" {
				t.Error("Action should not be empty")
			}
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("Error() = %q, expected to contain %q", msg, s)
				}
			}
		})
	}
}

func TestConfigError_Unwrap(t *testing.T) {
	err := ErrInvalidStrength(0, transform.MinStrength, transform.MaxStrength, transform.ErrInvalidStrength)
	if !errors.Is(err, transform.ErrInvalidStrength) {
		t.Error("errors.Is should see the wrapped transform error")
	}

	missing := ErrEnvFileMissing(".env.local", fs.ErrNotExist)
	if !errors.Is(missing, fs.ErrNotExist) {
		t.Error("errors.Is should see fs.ErrNotExist")
	}

	if ErrInvalidLogLevel("x").Unwrap() != nil {
		t.Error("ErrInvalidLogLevel should have no cause")
	}
}

func TestIsConfigError(t *testing.T) {
	t.Run("returns true for ConfigError", func(t *testing.T) {
		configErr := ErrInvalidLogLevel("loud")
		got, ok := IsConfigError(configErr)
		if !ok || got != configErr {
			t.Errorf("IsConfigError() = %v, %v", got, ok)
		}
	})

	t.Run("sees through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("startup: %w", ErrInvalidLogLevel("loud"))
		got, ok := IsConfigError(wrapped)
		if !ok || got.Code != ErrCodeInvalidLogLevel {
			t.Errorf("IsConfigError() = %v, %v", got, ok)
		}
	})

	t.Run("returns false for other errors", func(t *testing.T) {
		if got, ok := IsConfigError(errors.New("plain")); ok || got != nil {
			t.Errorf("IsConfigError() = %v, %v", got, ok)
		}
	})
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config error", ErrInvalidValue(EnvMaxImageBytes, 0), ErrCodeInvalidValue},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetErrorCode(tt.err); got != tt.want {
				t.Errorf("GetErrorCode() = %q, want %q", got, tt.want)
			}
		})
	}
}
