package collect

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/kbukum/lazycollect/config"
	"github.com/kbukum/lazycollect/logger"
	"github.com/kbukum/lazycollect/pipeline"
	"github.com/kbukum/lazycollect/telemetry"
)

// ShutdownFunc flushes and stops whatever Setup started.
type ShutdownFunc func(ctx context.Context) error

// Setup applies defaults to cfg, validates it and builds the pipeline
// options it describes: engine limits, a logger and, when telemetry is
// enabled, OTLP tracing and metrics. Pass the options to From.
//
// The returned ShutdownFunc is never nil.
//
//	var cfg config.Config
//	if err := config.Load("reports", &cfg); err != nil { ... }
//	opts, shutdown, err := collect.Setup(ctx, &cfg)
//	if err != nil { ... }
//	defer shutdown(context.Background())
//	c := collect.From(rows, opts...)
func Setup(ctx context.Context, cfg *config.Config) ([]pipeline.Option, ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, noop, err
	}

	log := logger.New(cfg.Logging).WithFields(logger.Fields("service", cfg.Name))
	opts := append(cfg.PipelineOptions(), pipeline.WithLogger(log))
	if !cfg.Telemetry.Enabled {
		return opts, noop, nil
	}

	tp, err := telemetry.InitTracer(ctx, cfg.TracerConfig(), log)
	if err != nil {
		return nil, noop, fmt.Errorf("tracer: %w", err)
	}
	metrics, err := telemetry.InitMeter(ctx, cfg.MeterConfig(), log)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, noop, fmt.Errorf("meter: %w", err)
	}
	shutdown := func(ctx context.Context) error {
		err := stderrors.Join(tp.Shutdown(ctx), metrics.Shutdown(ctx))
		if err != nil {
			log.Error("telemetry shutdown failed", logger.Fields("error", err.Error()))
		}
		return err
	}

	log.Info("telemetry enabled", logger.Fields("endpoint", cfg.Telemetry.Endpoint))
	return append(opts, pipeline.WithInstruments(metrics.Instruments)), shutdown, nil
}
