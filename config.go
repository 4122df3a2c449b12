// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2025-present Datadog, Inc.

package profiler

import (
	"os"
	"strings"

	"github.com/DataDog/go-runtimeprofiler/profilererrors"
	"github.com/DataDog/go-runtimeprofiler/timer"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultSeparator joins location names into a full path.
	DefaultSeparator = "/"
	// DefaultTimeUnit is the precision used when none is configured.
	DefaultTimeUnit = timer.Nanoseconds
	// DefaultMaxDepth is the maximum number of open frames, root included.
	DefaultMaxDepth = 100

	// RootLocation is the name of the frame pushed by Start and popped by Stop.
	RootLocation = "root"
)

// Config is the configuration of a Profiler. It can be created through the use of options
type Config struct {
	// Separator joins location names into full paths. Location names cannot contain it.
	Separator string
	// TimeUnit is the precision at which elapsed times are recorded
	TimeUnit timer.Unit
	// MaxDepth is the maximum number of simultaneously open frames, root included
	MaxDepth int
	// Clock is the monotonic source every stopwatch of the profiler reads
	Clock timer.Clock
}

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() Config {
	return Config{
		Separator: DefaultSeparator,
		TimeUnit:  DefaultTimeUnit,
		MaxDepth:  DefaultMaxDepth,
	}
}

func newConfig(options ...Option) Config {
	config := DefaultConfig()
	for _, option := range options {
		option(&config)
	}
	if config.Clock == nil {
		config.Clock = timer.NewClock()
	}
	return config
}

func (config Config) validate() error {
	if config.Separator == "" {
		return errors.Wrap(profilererrors.ErrInvalidConfig, "empty path separator")
	}
	if strings.Contains(RootLocation, config.Separator) {
		return errors.Wrapf(profilererrors.ErrInvalidConfig, "path separator %q collides with the %q location", config.Separator, RootLocation)
	}
	if !config.TimeUnit.Valid() {
		return errors.Wrapf(profilererrors.ErrInvalidConfig, "time unit: %v", config.TimeUnit)
	}
	if config.MaxDepth <= 0 {
		return errors.Wrapf(profilererrors.ErrInvalidConfig, "max depth must be positive, got %d", config.MaxDepth)
	}
	return nil
}

// Option are the configuration options of a Profiler
type Option func(*Config)

// WithSeparator is an Option that sets the Separator value
func WithSeparator(separator string) Option {
	return func(c *Config) {
		c.Separator = separator
	}
}

// WithTimeUnit is an Option that sets the TimeUnit value
func WithTimeUnit(unit timer.Unit) Option {
	return func(c *Config) {
		c.TimeUnit = unit
	}
}

// WithMaxDepth is an Option that sets the MaxDepth value
func WithMaxDepth(depth int) Option {
	return func(c *Config) {
		c.MaxDepth = depth
	}
}

// WithClock is an Option that sets the Clock value
func WithClock(clock timer.Clock) Option {
	return func(c *Config) {
		c.Clock = clock
	}
}

// WithConfig is an Option that replaces the whole configuration, typically with one
// obtained from LoadConfig. A nil Clock in config keeps the current one.
func WithConfig(config Config) Option {
	return func(c *Config) {
		clock := c.Clock
		*c = config
		if c.Clock == nil {
			c.Clock = clock
		}
	}
}

type fileConfig struct {
	Separator string `yaml:"separator"`
	TimeUnit  string `yaml:"time_unit"`
	MaxDepth  int    `yaml:"max_depth"`
}

// ParseConfig reads a YAML configuration document. Keys that are not present keep
// their default value.
func ParseConfig(data []byte) (Config, error) {
	file := fileConfig{
		Separator: DefaultSeparator,
		TimeUnit:  DefaultTimeUnit.String(),
		MaxDepth:  DefaultMaxDepth,
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Config{}, errors.Wrap(profilererrors.ErrInvalidConfig, err.Error())
	}

	unit, err := timer.UnitNamed(file.TimeUnit)
	if err != nil {
		return Config{}, errors.Wrap(profilererrors.ErrInvalidConfig, err.Error())
	}

	config := Config{
		Separator: file.Separator,
		TimeUnit:  unit,
		MaxDepth:  file.MaxDepth,
	}
	if err := config.validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// LoadConfig reads the YAML configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading profiler configuration %s", path)
	}
	config, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.WithMessage(err, path)
	}
	return config, nil
}
