// Package otel provides OpenTelemetry metric exporter bindings for
// ScoreMatch counters.
//
// [NewOTelExporter] registers an Int64ObservableCounter instrument for
// each ScoreMatch metric. A single callback reads
// [scorematch.Engine.MetricsSnapshot] on each collection cycle.
//
// # What this package must NOT do
//
//   - Own the OTel MeterProvider. Callers supply the Meter.
//   - Mutate engine state.
package otel
