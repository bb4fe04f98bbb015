package core

import (
	"pixelcipher/logging"
	"pixelcipher/transform"
)

// ValidationResult represents the result of a single configuration check.
type ValidationResult struct {
	Name  string
	Valid bool
	Error *ConfigError
}

// ConfigValidator runs every configuration check and collects the results.
type ConfigValidator struct {
	cfg *Config
}

// NewConfigValidator creates a validator for cfg.
func NewConfigValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// CheckAll runs every check in a fixed order.
func (v *ConfigValidator) CheckAll() []ValidationResult {
	return []ValidationResult{
		v.result("algorithm", v.CheckAlgorithm()),
		v.result("operation", v.CheckOperation()),
		v.result("strength", v.CheckStrength()),
		v.result("history capacity", v.checkPositive(EnvHistoryCapacity, int64(v.cfg.HistoryCapacity))),
		v.result("max image size", v.checkPositive(EnvMaxImageBytes, v.cfg.MaxImageBytes)),
		v.result("display size", v.checkPositive(EnvDisplayMaxSize, int64(v.cfg.DisplayMaxSize))),
		v.result("log level", v.CheckLogLevel()),
	}
}

func (v *ConfigValidator) result(name string, err *ConfigError) ValidationResult {
	return ValidationResult{Name: name, Valid: err == nil, Error: err}
}

// CheckAlgorithm validates the default algorithm name.
func (v *ConfigValidator) CheckAlgorithm() *ConfigError {
	if _, err := transform.ParseAlgorithm(string(v.cfg.DefaultAlgorithm)); err != nil {
		names := make([]string, 0, len(transform.Algorithms()))
		for _, a := range transform.Algorithms() {
			names = append(names, string(a))
		}
		return ErrInvalidAlgorithm(string(v.cfg.DefaultAlgorithm), names, err)
	}
	return nil
}

// CheckOperation validates the default operation.
func (v *ConfigValidator) CheckOperation() *ConfigError {
	if _, err := transform.ParseOperation(string(v.cfg.DefaultOperation)); err != nil {
		return ErrInvalidOperation(string(v.cfg.DefaultOperation), err)
	}
	return nil
}

// CheckStrength validates the default strength.
func (v *ConfigValidator) CheckStrength() *ConfigError {
	if err := transform.ValidateStrength(v.cfg.DefaultStrength); err != nil {
		return ErrInvalidStrength(v.cfg.DefaultStrength, transform.MinStrength, transform.MaxStrength, err)
	}
	return nil
}

// CheckLogLevel validates the log level name.
func (v *ConfigValidator) CheckLogLevel() *ConfigError {
	if !logging.IsValidLogLevel(v.cfg.LogLevel) {
		return ErrInvalidLogLevel(v.cfg.LogLevel)
	}
	return nil
}

func (v *ConfigValidator) checkPositive(varName string, value int64) *ConfigError {
	if value <= 0 {
		return ErrInvalidValue(varName, value)
	}
	return nil
}

// ValidateConfig returns the first failing check as a *ConfigError, or nil.
// ProgressInterval is not checked; zero or negative disables reporting.
func ValidateConfig(cfg *Config) error {
	for _, r := range NewConfigValidator(cfg).CheckAll() {
		if !r.Valid {
			return r.Error
		}
	}
	return nil
}
