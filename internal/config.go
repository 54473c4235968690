package internal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config is the driver configuration, usually read from a YAML file
type Config struct {
	// LogLevel is any level logrus.ParseLevel accepts
	LogLevel string `yaml:"log_level"`
	// Color enables coloured diagnostics on terminals
	Color bool `yaml:"color"`
	// MaxStore caps the store size in slots, 0 means unlimited
	MaxStore int `yaml:"max_store"`
	// Separator is written after every printi
	Separator string `yaml:"separator"`
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "warning",
		Color:     true,
		Separator: " ",
	}
}

// LoadConfig reads and validates the YAML configuration at path
func LoadConfig(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("config: resolve %s: %w", path, err)
	}
	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("config: open %s: %w", absPath, err)
	}
	defer file.Close()

	cfg, err := ParseConfig(file)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", absPath, err)
	}
	return cfg, nil
}

// ParseConfig decodes a YAML configuration. Missing keys keep their defaults
// and unknown keys are rejected.
func ParseConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	if c.MaxStore < 0 {
		return fmt.Errorf("max_store: must not be negative, got %d", c.MaxStore)
	}
	return nil
}

// NewLogger builds the logger described by c, writing to w
func (c *Config) NewLogger(w io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.Out = w
	logger.Level = level
	logger.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    !c.Color,
	}
	return logger, nil
}

// Options returns run options for c, sending program output to out and
// traces to the logger
func (c *Config) Options(out io.Writer, logger *logrus.Logger) Options {
	return Options{
		Out:       out,
		Logger:    logger,
		MaxStore:  c.MaxStore,
		Separator: &c.Separator,
	}
}
