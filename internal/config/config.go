// Package config loads countrylist configuration from a YAML file, the
// environment, and optional overlay files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/countrylist/internal/country"
)

// Output formats for the list command.
const (
	OutputTable  = "table"
	OutputJSON   = "json"
	OutputNDJSON = "ndjson"
)

// Defaults.
const (
	DefaultTimeoutSeconds = 15
	DefaultAddr           = ":8080"
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
	configFileName        = "config.yaml"
)

// Environment variable names.
const (
	EnvHome      = "COUNTRYLIST_HOME"
	EnvEndpoint  = "COUNTRYLIST_ENDPOINT"
	EnvTimeout   = "COUNTRYLIST_TIMEOUT"
	EnvLogLevel  = "COUNTRYLIST_LOG_LEVEL"
	EnvLogFormat = "COUNTRYLIST_LOG_FORMAT"
	EnvLogFile   = "COUNTRYLIST_LOG_FILE"
	EnvAddr      = "COUNTRYLIST_ADDR"
	EnvOutput    = "COUNTRYLIST_OUTPUT"
)

//nolint:gochecknoglobals // Fixed lookup table.
var validOutputFormats = []string{OutputTable, OutputJSON, OutputNDJSON}

// Validation errors.
var (
	ErrEmptyEndpoint       = errors.New("source.endpoint must not be empty")
	ErrInvalidTimeout      = errors.New("source.timeout_seconds must be > 0")
	ErrInvalidOutputFormat = errors.New("output.default_format must be one of table, json, ndjson")
)

// Config is the full countrylist configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`

	configPath string
}

// SourceConfig configures the country data endpoint.
type SourceConfig struct {
	Endpoint       string `yaml:"endpoint"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// OutputConfig configures the list command.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig configures zerolog.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration without reading files or env.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Endpoint:       country.DefaultEndpoint,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Output:  OutputConfig{DefaultFormat: OutputTable},
		Logging: LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Server:  ServerConfig{Addr: DefaultAddr},
	}
}

// New returns the defaults, overlaid with the global config file if present,
// then with environment overrides. A config file that cannot be parsed or
// holds invalid values is logged and skipped, so the result always validates.
func New() *Config {
	cfg := Default()

	if path, err := GlobalConfigPath(); err == nil {
		cfg.configPath = path
		if loadErr := cfg.loadFile(cfg.configPath); loadErr != nil {
			cfg = defaultsAfterBadFile(cfg.configPath, loadErr, "ignoring unreadable config file, using defaults")
		} else if validErr := cfg.Validate(); validErr != nil {
			cfg = defaultsAfterBadFile(cfg.configPath, validErr, "ignoring invalid config file, using defaults")
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// defaultsAfterBadFile logs why path was skipped and returns the defaults,
// still pointing at path so Save can repair it.
func defaultsAfterBadFile(path string, cause error, msg string) *Config {
	logger := GetLogger()
	logger.Warn().
		Str("component", "config").
		Err(cause).
		Str("path", path).
		Msg(msg)
	cfg := Default()
	cfg.configPath = path
	return cfg
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvEndpoint); v != "" {
		c.Source.Endpoint = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			c.Source.TimeoutSeconds = secs
		}
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.Logging.File = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvOutput); IsValidOutputFormat(v) {
		c.Output.DefaultFormat = v
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Source.Endpoint == "" {
		return ErrEmptyEndpoint
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTimeout, c.Source.TimeoutSeconds)
	}
	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	return nil
}

// Timeout returns the source timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}

// ConfigPath returns the file the configuration is saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath overrides the file Save writes to.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no config path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", c.configPath, err)
	}
	return nil
}

// IsValidOutputFormat reports whether format is a supported list output.
func IsValidOutputFormat(format string) bool {
	return slices.Contains(validOutputFormats, format)
}
