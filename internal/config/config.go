package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"membuf/pkg/errors"
)

const (
	// DefaultCapacity is the slot count used when none is configured.
	DefaultCapacity = 50

	DefaultFilterBitsPerKey = 10
	DefaultListenAddr       = ":8080"
	DefaultLogLevel         = "info"
)

// Config aggregates every tunable of the module: the table itself,
// the optional negative-lookup filter, and the demo HTTP surface.
type Config struct {
	// Capacity is the fixed slot count of the table.
	Capacity int `yaml:"capacity"`

	// Filter settings
	FilterEnabled    bool `yaml:"filter_enabled"`
	FilterBitsPerKey int  `yaml:"filter_bits_per_key"`

	// HTTP demo service
	ListenAddr string `yaml:"listen_addr"`

	// Logging
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// NewConfig builds a config from defaults plus options.
func NewConfig(opts ...ConfigOption) (*Config, error) {
	c := Config{
		FilterEnabled: true,
	}

	for _, opt := range opts {
		opt(&c)
	}

	repair(&c)

	return &c, c.check()
}

// FromFile loads a YAML config file, filling unset fields with
// defaults.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := Config{
		FilterEnabled: true,
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, err
	}

	repair(&c)

	if err := c.check(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) check() error {
	if c.Capacity <= 0 {
		return errors.ErrInvalidCapacity
	}
	if c.FilterEnabled && c.FilterBitsPerKey <= 0 {
		return errors.ErrInvalidFilterBits
	}
	return nil
}

// ConfigOption overrides one field of a default config.
type ConfigOption func(*Config)

// WithCapacity sets the fixed slot count of the table.
func WithCapacity(capacity int) ConfigOption {
	return func(c *Config) {
		c.Capacity = capacity
	}
}

// WithFilter enables or disables the negative-lookup bloom filter.
func WithFilter(enabled bool) ConfigOption {
	return func(c *Config) {
		c.FilterEnabled = enabled
	}
}

// WithFilterBitsPerKey sets the bloom filter density.
func WithFilterBitsPerKey(bits int) ConfigOption {
	return func(c *Config) {
		c.FilterBitsPerKey = bits
	}
}

// WithListenAddr sets the HTTP demo service listen address.
func WithListenAddr(addr string) ConfigOption {
	return func(c *Config) {
		c.ListenAddr = addr
	}
}

// WithLog sets the log level and optional log file destination.
func WithLog(level, file string) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
		c.LogFile = file
	}
}

func repair(c *Config) {
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.FilterBitsPerKey == 0 {
		c.FilterBitsPerKey = DefaultFilterBitsPerKey
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}
