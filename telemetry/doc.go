// Package telemetry wires OpenTelemetry tracing and metrics for pipeline
// drains.
//
// InitTracer and InitMeter install OTLP/HTTP exporters as the global
// providers. InitMeter returns Metrics, which carries the Instruments a
// pipeline records into; NewMetrics does the same on any reader. A nil
// *Instruments records nothing.
//
// Metrics:
//
//   - pipeline.drain.total     drains started, by status
//   - pipeline.drain.duration  drain duration in seconds, DurationBuckets bounds
//   - pipeline.drain.errors    failed drains, by operation
//   - pipeline.step.total      descriptors applied, by operation
package telemetry
