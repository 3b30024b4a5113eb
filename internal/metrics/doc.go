// Package metrics owns the service's Prometheus registry.
//
// A [Registry] is built once at startup and handed to every component that
// reads or writes metrics. It holds named gauges (the resource sampler writes
// memory usage, startup code writes the start time), HTTP request counters and
// latency histograms, and exposes everything through [Registry.Handler] in the
// Prometheus text exposition format.
package metrics
