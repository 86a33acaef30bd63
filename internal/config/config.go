package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"opsdash/internal/app/errors"
	"opsdash/internal/app/stream"
)

// Config represents the application configuration
type Config struct {
	Logging   Logging   `yaml:"logging" mapstructure:"logging"`
	Stream    Stream    `yaml:"stream" mapstructure:"stream"`
	Catalog   Catalog   `yaml:"catalog" mapstructure:"catalog"`
	Telemetry Telemetry `yaml:"telemetry" mapstructure:"telemetry"`
}

// Logging represents application logging settings
type Logging struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Stream represents the simulated log stream settings
type Stream struct {
	Interval  time.Duration `yaml:"interval" mapstructure:"interval"`
	Capacity  int           `yaml:"capacity" mapstructure:"capacity"`
	Seed      bool          `yaml:"seed" mapstructure:"seed"`
	Paused    bool          `yaml:"paused" mapstructure:"paused"`
	Level     string        `yaml:"level" mapstructure:"level"`
	Query     string        `yaml:"query" mapstructure:"query"`
	BusBuffer int           `yaml:"bus_buffer" mapstructure:"bus_buffer"`
}

// Catalog represents where message templates come from
type Catalog struct {
	Paths    []string      `yaml:"paths" mapstructure:"paths"`
	Watch    bool          `yaml:"watch" mapstructure:"watch"`
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// Telemetry represents optional error reporting settings
type Telemetry struct {
	SentryDSN   string `yaml:"sentry_dsn" mapstructure:"sentry_dsn"`
	Environment string `yaml:"environment" mapstructure:"environment"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Logging.Level = DefaultLogLevel
	cfg.Logging.Format = DefaultLogFormat

	cfg.Stream.Interval = DefaultTickInterval
	cfg.Stream.Capacity = DefaultBufferCapacity
	cfg.Stream.Seed = true
	cfg.Stream.Level = DefaultLevelFilter
	cfg.Stream.BusBuffer = DefaultBusBuffer

	cfg.Catalog.Paths = []string{}
	cfg.Catalog.Debounce = DefaultCatalogDebounce

	return cfg
}

// Load loads the configuration from opsdash.yaml, .env and OPSDASH_* variables
func Load() (*Config, error) {
	return LoadFile(FileName)
}

// LoadFile loads the configuration from the given file, falling back to defaults when it does not exist
func LoadFile(path string) (*Config, error) {
	if err := loadEnv(EnvFileName); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, cfg)

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToParseConfig
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// loadEnv loads variables from a .env file, ignoring a missing file
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("%w: %w", errors.ErrFailedToLoadEnv, err)
	}

	return nil
}

// setDefaults registers every key so environment overrides are picked up by Unmarshal
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)

	v.SetDefault("stream.interval", cfg.Stream.Interval)
	v.SetDefault("stream.capacity", cfg.Stream.Capacity)
	v.SetDefault("stream.seed", cfg.Stream.Seed)
	v.SetDefault("stream.paused", cfg.Stream.Paused)
	v.SetDefault("stream.level", cfg.Stream.Level)
	v.SetDefault("stream.query", cfg.Stream.Query)
	v.SetDefault("stream.bus_buffer", cfg.Stream.BusBuffer)

	v.SetDefault("catalog.paths", cfg.Catalog.Paths)
	v.SetDefault("catalog.watch", cfg.Catalog.Watch)
	v.SetDefault("catalog.debounce", cfg.Catalog.Debounce)

	v.SetDefault("telemetry.sentry_dsn", cfg.Telemetry.SentryDSN)
	v.SetDefault("telemetry.environment", cfg.Telemetry.Environment)
}

// normalize trims and canonicalizes free-form values
func (c *Config) normalize() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Stream.Level = strings.ToUpper(strings.TrimSpace(c.Stream.Level))

	if c.Stream.Level == "" {
		c.Stream.Level = DefaultLevelFilter
	}

	paths := make([]string, 0, len(c.Catalog.Paths))
	for _, p := range c.Catalog.Paths {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}

	c.Catalog.Paths = paths
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateStream(); err != nil {
		return err
	}

	return c.validateCatalog()
}

// validateStream validates stream settings
func (c *Config) validateStream() error {
	if c.Stream.Capacity <= 0 {
		return errors.ErrInvalidCapacity
	}

	if c.Stream.Interval <= 0 {
		return errors.ErrInvalidInterval
	}

	if c.Stream.BusBuffer <= 0 {
		return errors.ErrInvalidBusBuffer
	}

	if _, err := stream.ParseLevelFilter(c.Stream.Level); err != nil {
		return err
	}

	return nil
}

// validateCatalog validates catalog settings
func (c *Config) validateCatalog() error {
	if c.Catalog.Debounce < 0 {
		return errors.ErrInvalidDebounce
	}

	return nil
}
