// Package prometheus provides Prometheus collectors for ScoreMatch metrics.
//
// [NewPrometheusExporter] accepts a [scorematch.Engine] and exposes an
// [net/http.Handler] that renders all ScoreMatch counters in Prometheus
// text exposition format. Counter names are prefixed scorematch_*_total.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry. Callers mount the Handler.
//   - Mutate engine state.
package prometheus
