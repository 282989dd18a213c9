package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Metric names recorded by Instruments.
const (
	MetricDrainTotal    = "pipeline.drain.total"
	MetricDrainDuration = "pipeline.drain.duration"
	MetricDrainErrors   = "pipeline.drain.errors"
	MetricStepTotal     = "pipeline.step.total"
)

// Instruments records spans and metrics for pipeline drains. A nil
// *Instruments is valid and records nothing.
type Instruments struct {
	tracer        trace.Tracer
	drainTotal    metric.Int64Counter
	drainDuration metric.Float64Histogram
	drainErrors   metric.Int64Counter
	stepTotal     metric.Int64Counter
}

// NewInstruments creates the pipeline instruments on the given tracer and meter.
func NewInstruments(tracer trace.Tracer, meter metric.Meter) (*Instruments, error) {
	drainTotal, err := meter.Int64Counter(MetricDrainTotal,
		metric.WithDescription("Total number of pipeline drains"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricDrainTotal, err)
	}

	drainDuration, err := meter.Float64Histogram(MetricDrainDuration,
		metric.WithDescription("Duration of pipeline drains in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricDrainDuration, err)
	}

	drainErrors, err := meter.Int64Counter(MetricDrainErrors,
		metric.WithDescription("Pipeline drains that failed, by operation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricDrainErrors, err)
	}

	stepTotal, err := meter.Int64Counter(MetricStepTotal,
		metric.WithDescription("Descriptors applied, by operation"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricStepTotal, err)
	}

	return &Instruments{
		tracer:        tracer,
		drainTotal:    drainTotal,
		drainDuration: drainDuration,
		drainErrors:   drainErrors,
		stepTotal:     stepTotal,
	}, nil
}

// StartDrain opens the span covering one pipeline drain.
func (i *Instruments) StartDrain(ctx context.Context, pipelineID, parentID string, queued, items int) (context.Context, trace.Span) {
	if i == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return i.tracer.Start(ctx, SpanDrain, trace.WithAttributes(
		attribute.String(AttrPipelineID, pipelineID),
		attribute.String(AttrParentID, parentID),
		attribute.Int(AttrQueueDepth, queued),
		attribute.Int(AttrItems, items),
	))
}

// StartStep opens the child span for one applied descriptor.
func (i *Instruments) StartStep(ctx context.Context, operation string, step int) (context.Context, trace.Span) {
	if i == nil {
		return ctx, trace.SpanFromContext(ctx)
	}
	return i.tracer.Start(ctx, SpanStep+"."+operation, trace.WithAttributes(
		attribute.String(AttrOperation, operation),
		attribute.Int(AttrStep, step),
	))
}

// RecordStep counts one applied descriptor.
func (i *Instruments) RecordStep(ctx context.Context, operation string) {
	if i == nil {
		return
	}
	i.stepTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrOperation, operation)))
}

// RecordDrain records a finished drain. failedOp names the operation whose
// step failed and is ignored when err is nil.
func (i *Instruments) RecordDrain(ctx context.Context, duration time.Duration, failedOp string, err error) {
	if i == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
		i.drainErrors.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrOperation, failedOp)))
	}
	i.drainTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(AttrStatus, status)))
	i.drainDuration.Record(ctx, duration.Seconds())
}
