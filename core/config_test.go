package core

import (
	"os"
	"path/filepath"
	"testing"

	"pixelcipher/imageio"
	"pixelcipher/metrics"
	"pixelcipher/transform"
)

// unsetAfter removes variables that godotenv.Load sets directly in the process.
func unsetAfter(t *testing.T, keys ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, k := range keys {
			os.Unsetenv(k)
		}
	})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DefaultAlgorithm != transform.AlgorithmXOR {
		t.Errorf("DefaultAlgorithm = %q, want xor", cfg.DefaultAlgorithm)
	}
	if cfg.DefaultOperation != transform.OperationEncrypt {
		t.Errorf("DefaultOperation = %q, want encrypt", cfg.DefaultOperation)
	}
	if cfg.DefaultStrength != transform.DefaultStrength {
		t.Errorf("DefaultStrength = %d", cfg.DefaultStrength)
	}
	if cfg.HistoryCapacity != metrics.DefaultHistoryCapacity {
		t.Errorf("HistoryCapacity = %d", cfg.HistoryCapacity)
	}
	if cfg.MaxImageBytes != imageio.DefaultMaxBytes {
		t.Errorf("MaxImageBytes = %d", cfg.MaxImageBytes)
	}
	if cfg.DisplayMaxSize != imageio.DisplayMaxSize {
		t.Errorf("DisplayMaxSize = %d", cfg.DisplayMaxSize)
	}
	if err := ValidateConfig(cfg); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv(EnvAlgorithm, " Shuffle ")
	t.Setenv(EnvOperation, "DECRYPT")
	t.Setenv(EnvStrength, "5")
	t.Setenv(EnvProgressInterval, "0")
	t.Setenv(EnvHistoryCapacity, "25")
	t.Setenv(EnvMaxImageBytes, "2048")
	t.Setenv(EnvDisplayMaxSize, "200")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogFile, "/tmp/pixelcipher.log")
	t.Setenv(EnvDevMode, "yes")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.DefaultAlgorithm != transform.AlgorithmShuffle {
		t.Errorf("DefaultAlgorithm = %q, want shuffle", cfg.DefaultAlgorithm)
	}
	if cfg.DefaultOperation != transform.OperationDecrypt {
		t.Errorf("DefaultOperation = %q, want decrypt", cfg.DefaultOperation)
	}
	if cfg.DefaultStrength != 5 || cfg.ProgressInterval != 0 || cfg.HistoryCapacity != 25 {
		t.Errorf("numeric overrides not applied: %+v", cfg)
	}
	if cfg.MaxImageBytes != 2048 || cfg.DisplayMaxSize != 200 {
		t.Errorf("image overrides not applied: %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.LogFile != "/tmp/pixelcipher.log" || !cfg.DevMode {
		t.Errorf("logging overrides not applied: %+v", cfg)
	}
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := writeFile(t, "settings.env", "PIXELCIPHER_ALGORITHM=rgb-rotation\nPIXELCIPHER_STRENGTH=4\n")
	unsetAfter(t, EnvAlgorithm, EnvStrength)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DefaultAlgorithm != transform.AlgorithmRGBRotation || cfg.DefaultStrength != 4 {
		t.Errorf("env file not applied: algorithm=%q strength=%d", cfg.DefaultAlgorithm, cfg.DefaultStrength)
	}
}

func TestLoadConfig_ProcessEnvBeatsFile(t *testing.T) {
	path := writeFile(t, "settings.env", "PIXELCIPHER_STRENGTH=4\n")
	t.Setenv(EnvStrength, "2")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DefaultStrength != 2 {
		t.Errorf("DefaultStrength = %d, want 2 from the process", cfg.DefaultStrength)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		envFile  string
		wantCode string
	}{
		{"missing explicit env file", nil, filepath.Join(os.TempDir(), "does-not-exist.env"), ErrCodeEnvFileMissing},
		{"unknown algorithm", map[string]string{EnvAlgorithm: "rot13"}, "", ErrCodeInvalidAlgorithm},
		{"unknown operation", map[string]string{EnvOperation: "scramble"}, "", ErrCodeInvalidOperation},
		{"strength too high", map[string]string{EnvStrength: "6"}, "", ErrCodeInvalidStrength},
		{"strength zero", map[string]string{EnvStrength: "0"}, "", ErrCodeInvalidStrength},
		{"bad log level", map[string]string{EnvLogLevel: "verbose"}, "", ErrCodeInvalidLogLevel},
		{"zero history", map[string]string{EnvHistoryCapacity: "0"}, "", ErrCodeInvalidValue},
		{"negative max bytes", map[string]string{EnvMaxImageBytes: "-1"}, "", ErrCodeInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg, err := LoadConfig(tt.envFile)
			if err == nil {
				t.Fatalf("LoadConfig() = %+v, want error", cfg)
			}
			if got := GetErrorCode(err); got != tt.wantCode {
				t.Errorf("error code = %q, want %q (%v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := writeFile(t, "pixelcipher.yaml", `
algorithm: Mathematical
operation: decrypt
strength: 3
history_capacity: 10
log_level: warn
`)

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.DefaultAlgorithm != transform.AlgorithmMathematical {
		t.Errorf("DefaultAlgorithm = %q, want mathematical", cfg.DefaultAlgorithm)
	}
	if cfg.DefaultOperation != transform.OperationDecrypt || cfg.DefaultStrength != 3 {
		t.Errorf("transform settings not read: %+v", cfg)
	}
	if cfg.HistoryCapacity != 10 || cfg.LogLevel != "warn" {
		t.Errorf("settings not read: %+v", cfg)
	}
	if cfg.MaxImageBytes != imageio.DefaultMaxBytes {
		t.Errorf("missing field lost its default: MaxImageBytes = %d", cfg.MaxImageBytes)
	}
}

func TestLoadConfigFile_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "pixelcipher.yaml", "strength: 3\n")
	t.Setenv(EnvStrength, "1")

	cfg, err := LoadConfigFile(path)
	if err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}
	if cfg.DefaultStrength != 1 {
		t.Errorf("DefaultStrength = %d, want 1", cfg.DefaultStrength)
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantCode string
	}{
		{
			name:     "missing",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
			wantCode: ErrCodeConfigFileMissing,
		},
		{
			name:     "malformed",
			path:     func(t *testing.T) string { return writeFile(t, "bad.yaml", "strength: [1, 2\n") },
			wantCode: ErrCodeConfigParse,
		},
		{
			name:     "wrong type",
			path:     func(t *testing.T) string { return writeFile(t, "bad.yaml", "strength: high\n") },
			wantCode: ErrCodeConfigParse,
		},
		{
			name:     "invalid value",
			path:     func(t *testing.T) string { return writeFile(t, "bad.yaml", "algorithm: caesar\n") },
			wantCode: ErrCodeInvalidAlgorithm,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfigFile(tt.path(t))
			if got := GetErrorCode(err); got != tt.wantCode {
				t.Errorf("error code = %q, want %q (%v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestConfigParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultAlgorithm = transform.AlgorithmBitManipulation
	cfg.DefaultStrength = 2

	p := cfg.Params("secret")
	if p.Algorithm != transform.AlgorithmBitManipulation || p.Operation != transform.OperationEncrypt {
		t.Errorf("Params() = %+v", p)
	}
	if p.Key != "secret" || p.Strength != 2 {
		t.Errorf("Params() = %+v", p)
	}
	if err := transform.ValidateParams(p); err != nil {
		t.Errorf("Params() not valid: %v", err)
	}
}

func TestConfigValidator_CheckAll(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DefaultStrength = 42
	cfg.LogLevel = "loud"

	results := NewConfigValidator(cfg).CheckAll()
	failed := map[string]string{}
	for _, r := range results {
		if !r.Valid {
			failed[r.Name] = r.Error.Code
		}
	}

	want := map[string]string{
		"strength":  ErrCodeInvalidStrength,
		"log level": ErrCodeInvalidLogLevel,
	}
	if len(failed) != len(want) {
		t.Fatalf("failed checks = %v, want %v", failed, want)
	}
	for name, code := range want {
		if failed[name] != code {
			t.Errorf("check %q code = %q, want %q", name, failed[name], code)
		}
	}
}
