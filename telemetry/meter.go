package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/lazycollect/logger"
	"github.com/kbukum/lazycollect/version"
)

// DefaultDurationBuckets are the pipeline.drain.duration bucket bounds in
// seconds. Drains over in-memory slices are usually sub-millisecond.
var DefaultDurationBuckets = []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}

// MeterConfig configures the pipeline meter provider.
type MeterConfig struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
	// DurationBuckets overrides DefaultDurationBuckets when non-empty.
	DurationBuckets []float64
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:     serviceName,
		ServiceVersion:  version.Short(),
		Environment:     "development",
		Endpoint:        "localhost:4318",
		Insecure:        true,
		Interval:        15 * time.Second,
		DurationBuckets: DefaultDurationBuckets,
	}
}

// Metrics is a meter provider together with the pipeline instruments
// registered on it.
type Metrics struct {
	Provider    *sdkmetric.MeterProvider
	Instruments *Instruments
}

// Shutdown flushes and stops the provider.
func (m *Metrics) Shutdown(ctx context.Context) error {
	if m == nil || m.Provider == nil {
		return nil
	}
	return m.Provider.Shutdown(ctx)
}

// NewMetrics builds a meter provider that exports through reader and
// registers the pipeline instruments on it. Spans go to the global tracer.
// The provider is not installed globally.
func NewMetrics(reader sdkmetric.Reader, config MeterConfig) (*Metrics, error) {
	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	buckets := config.DurationBuckets
	if len(buckets) == 0 {
		buckets = DefaultDurationBuckets
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(reader),
		sdkmetric.WithResource(res),
		sdkmetric.WithView(sdkmetric.NewView(
			sdkmetric.Instrument{Name: MetricDrainDuration},
			sdkmetric.Stream{Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: buckets}},
		)),
	)

	inst, err := NewInstruments(Tracer(), mp.Meter(ScopeName, metric.WithInstrumentationVersion(version.Short())))
	if err != nil {
		_ = mp.Shutdown(context.Background())
		return nil, err
	}
	return &Metrics{Provider: mp, Instruments: inst}, nil
}

// InitMeter builds Metrics on a periodic OTLP/HTTP reader and installs the
// provider globally. Shut it down on application exit.
func InitMeter(ctx context.Context, config MeterConfig, log *logger.Logger) (*Metrics, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	var readerOpts []sdkmetric.PeriodicReaderOption
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	m, err := NewMetrics(sdkmetric.NewPeriodicReader(exporter, readerOpts...), config)
	if err != nil {
		return nil, err
	}
	otel.SetMeterProvider(m.Provider)

	log.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))
	return m, nil
}

// Meter returns the lazycollect meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(ScopeName, metric.WithInstrumentationVersion(version.Short()))
}
