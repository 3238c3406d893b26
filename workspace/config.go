// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package workspace

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Config holds the engine and driver settings.
//
type Config struct {
	// MaxIterations caps relaxation passes on cyclic circuits.
	MaxIterations int `yaml:"max_iterations"`
	// ClockPeriod is the delay between two clock ticks in RunClock. If zero,
	// the period is derived from the fastest CLOCK gate in the circuit.
	ClockPeriod time.Duration `yaml:"clock_period"`
	// LogLevel is a logrus level name. Empty leaves the level unchanged.
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the default configuration.
//
func DefaultConfig() Config {
	return Config{
		MaxIterations: logicsim.DefaultMaxIterations,
		LogLevel:      "info",
	}
}

// LoadConfig reads a YAML configuration file. Fields missing from the file
// keep their default value. Unknown fields are an error.
//
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks that all values are in range.
//
func (c *Config) Validate() error {
	if c.MaxIterations < 0 {
		return errors.Errorf("max_iterations must be >= 0, got %d", c.MaxIterations)
	}
	if c.ClockPeriod < 0 {
		return errors.Errorf("clock_period must be >= 0, got %v", c.ClockPeriod)
	}
	if c.LogLevel != "" {
		if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
			return errors.Wrap(err, "log_level")
		}
	}
	return nil
}

// ApplyLogLevel sets the logrus standard logger level from LogLevel.
//
func (c *Config) ApplyLogLevel() error {
	if c.LogLevel == "" {
		return nil
	}
	l, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log_level")
	}
	logrus.SetLevel(l)
	return nil
}
