package core

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"pixelcipher/imageio"
	"pixelcipher/metrics"
	"pixelcipher/transform"
)

// Environment variable names
const (
	EnvAlgorithm        = "PIXELCIPHER_ALGORITHM"
	EnvOperation        = "PIXELCIPHER_OPERATION"
	EnvStrength         = "PIXELCIPHER_STRENGTH"
	EnvProgressInterval = "PIXELCIPHER_PROGRESS_INTERVAL"
	EnvHistoryCapacity  = "PIXELCIPHER_HISTORY_CAPACITY"
	EnvMaxImageBytes    = "PIXELCIPHER_MAX_IMAGE_BYTES"
	EnvDisplayMaxSize   = "PIXELCIPHER_DISPLAY_MAX_SIZE"
	EnvLogLevel         = "PIXELCIPHER_LOG_LEVEL"
	EnvLogFile          = "PIXELCIPHER_LOG_FILE"
	EnvDevMode          = "PIXELCIPHER_DEV_MODE"
)

// DefaultEnvFile is read by LoadConfig when no path is given. Its absence is not an error.
const DefaultEnvFile = ".env"

// Config holds all configuration values
type Config struct {
	// Transform defaults
	DefaultAlgorithm transform.Algorithm `yaml:"algorithm"`
	DefaultOperation transform.Operation `yaml:"operation"`
	DefaultStrength  int                 `yaml:"strength"`
	ProgressInterval int                 `yaml:"progress_interval"` // loop indices between progress reports; 0 disables

	// Performance history
	HistoryCapacity int `yaml:"history_capacity"`

	// Image input
	MaxImageBytes  int64 `yaml:"max_image_bytes"`
	DisplayMaxSize int   `yaml:"display_max_size"`

	// Logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"` // empty disables file logging
	DevMode  bool   `yaml:"dev_mode"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultAlgorithm: transform.AlgorithmXOR,
		DefaultOperation: transform.OperationEncrypt,
		DefaultStrength:  transform.DefaultStrength,
		ProgressInterval: transform.DefaultProgressInterval,
		HistoryCapacity:  metrics.DefaultHistoryCapacity,
		MaxImageBytes:    imageio.DefaultMaxBytes,
		DisplayMaxSize:   imageio.DisplayMaxSize,
		LogLevel:         "info",
	}
}

// LoadConfig builds a Config from defaults, an optional .env file and the
// process environment, then validates it.
//
// An empty envFile reads DefaultEnvFile if present. A non-empty envFile
// must exist. Variables already set in the process take precedence over
// the file.
func LoadConfig(envFile string) (*Config, error) {
	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	cfg.applyEnv(newEnvOverrides())

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

// LoadConfigFile reads a YAML config file. Fields missing from the file
// keep their defaults, and environment variables override the file.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrConfigFileMissing(path, err)
		}
		return nil, ErrConfigParse(path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, ErrConfigParse(path, err)
	}
	cfg.applyEnv(newEnvOverrides())

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	err := godotenv.Load(path)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		if explicit {
			return ErrEnvFileMissing(path, err)
		}
		return nil
	default:
		return ErrConfigParse(path, err)
	}
}

func (c *Config) applyEnv(env envOverrides) {
	c.DefaultAlgorithm = transform.Algorithm(env.String(EnvAlgorithm, string(c.DefaultAlgorithm)))
	c.DefaultOperation = transform.Operation(env.String(EnvOperation, string(c.DefaultOperation)))
	c.DefaultStrength = env.Int(EnvStrength, c.DefaultStrength)
	c.ProgressInterval = env.Int(EnvProgressInterval, c.ProgressInterval)
	c.HistoryCapacity = env.Int(EnvHistoryCapacity, c.HistoryCapacity)
	c.MaxImageBytes = env.Int64(EnvMaxImageBytes, c.MaxImageBytes)
	c.DisplayMaxSize = env.Int(EnvDisplayMaxSize, c.DisplayMaxSize)
	c.LogLevel = env.String(EnvLogLevel, c.LogLevel)
	c.LogFile = env.String(EnvLogFile, c.LogFile)
	c.DevMode = env.Bool(EnvDevMode, c.DevMode)
}

// normalize canonicalises names that validation already accepted.
func (c *Config) normalize() {
	if a, err := transform.ParseAlgorithm(string(c.DefaultAlgorithm)); err == nil {
		c.DefaultAlgorithm = a
	}
	if op, err := transform.ParseOperation(string(c.DefaultOperation)); err == nil {
		c.DefaultOperation = op
	}
}

// Params returns transform parameters built from the configured defaults.
func (c *Config) Params(key string) transform.Params {
	return transform.Params{
		Algorithm: c.DefaultAlgorithm,
		Operation: c.DefaultOperation,
		Key:       key,
		Strength:  c.DefaultStrength,
	}
}
