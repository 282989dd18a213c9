// Package config loads and validates lazycollect configuration.
//
// Load reads a YAML, JSON or TOML file, an optional .env file and
// LAZYCOLLECT_-prefixed environment variables into a Config using Viper.
// Environment variables override file values, with underscores mapping to
// nested keys (LAZYCOLLECT_ENGINE_CONCURRENCY sets engine.concurrency).
//
// # Usage
//
//	var cfg config.Config
//	if err := config.Load("lazycollect", &cfg); err != nil {
//	    return err
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//	p := pipeline.From(items, cfg.PipelineOptions()...)
package config
