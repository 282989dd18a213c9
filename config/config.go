package config

import (
	"time"

	"github.com/kbukum/lazycollect/logger"
	"github.com/kbukum/lazycollect/pipeline"
	"github.com/kbukum/lazycollect/telemetry"
	"github.com/kbukum/lazycollect/version"
)

// Config is the root configuration.
type Config struct {
	Name        string          `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string          `yaml:"environment" mapstructure:"environment" validate:"oneof=development staging production"`
	Version     string          `yaml:"version" mapstructure:"version"`
	Logging     logger.Config   `yaml:"logging" mapstructure:"logging"`
	Engine      EngineConfig    `yaml:"engine" mapstructure:"engine"`
	Telemetry   TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// EngineConfig tunes how pipelines run callbacks.
type EngineConfig struct {
	// Concurrency bounds parallel callbacks per operation. 0 is unbounded.
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency" validate:"gte=0"`
	// SearchBatch is how many items short-circuiting searches check at once.
	SearchBatch int `yaml:"search_batch" mapstructure:"search_batch" validate:"gte=1"`
}

// TelemetryConfig configures OTLP export of drain spans and metrics.
type TelemetryConfig struct {
	Enabled        bool          `yaml:"enabled" mapstructure:"enabled"`
	Endpoint       string        `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true"`
	Insecure       bool          `yaml:"insecure" mapstructure:"insecure"`
	SampleRate     float64       `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	MetricInterval time.Duration `yaml:"metric_interval" mapstructure:"metric_interval" validate:"gte=0"`
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "lazycollect"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Version == "" {
		c.Version = version.Short()
	}
	c.Logging.ApplyDefaults()
	if c.Engine.SearchBatch == 0 {
		c.Engine.SearchBatch = 1
	}
	if c.Telemetry.Endpoint == "" {
		c.Telemetry.Endpoint = "localhost:4318"
	}
	if c.Telemetry.MetricInterval == 0 {
		c.Telemetry.MetricInterval = 15 * time.Second
	}
}

// Validate checks struct constraints and the logging section.
func (c *Config) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return invalid("logging", err.Error())
	}
	return nil
}

// PipelineOptions returns the pipeline options the engine section describes.
func (c *Config) PipelineOptions() []pipeline.Option {
	return []pipeline.Option{
		pipeline.WithConcurrency(c.Engine.Concurrency),
		pipeline.WithSearchBatch(c.Engine.SearchBatch),
	}
}

// TracerConfig returns the tracer settings for this configuration.
func (c *Config) TracerConfig() telemetry.TracerConfig {
	return telemetry.TracerConfig{
		ServiceName:    c.Name,
		ServiceVersion: c.Version,
		Environment:    c.Environment,
		Endpoint:       c.Telemetry.Endpoint,
		Insecure:       c.Telemetry.Insecure,
		SampleRate:     c.Telemetry.SampleRate,
	}
}

// MeterConfig returns the meter settings for this configuration.
func (c *Config) MeterConfig() telemetry.MeterConfig {
	return telemetry.MeterConfig{
		ServiceName:    c.Name,
		ServiceVersion: c.Version,
		Environment:    c.Environment,
		Endpoint:       c.Telemetry.Endpoint,
		Insecure:       c.Telemetry.Insecure,
		Interval:       c.Telemetry.MetricInterval,
	}
}
