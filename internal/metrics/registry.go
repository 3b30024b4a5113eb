// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Names of the gauges every Registry registers on construction. The exported
// series carry the registry namespace as a prefix (e.g. app_memory_usage_bytes).
const (
	MemoryUsageBytes = "memory_usage_bytes"
	StartTimeSeconds = "start_time_seconds"
)

// Registry is the process-wide metrics state.
//
// Gauge set and read operations are atomic, so the single sampler writer and
// any number of concurrent scrapes may interleave freely. The gauge map is
// only mutated by NewGauge, which is called during startup.
type Registry struct {
	namespace string
	registry  *prometheus.Registry

	mu     sync.RWMutex
	gauges map[string]prometheus.Gauge

	startOnce sync.Once

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewRegistry creates a Registry whose series are prefixed with namespace.
//
// Besides the memory and start-time gauges it registers the Go runtime and
// process collectors and the HTTP request metrics. Any registration failure
// is returned and must abort startup.
func NewRegistry(namespace string) (*Registry, error) {
	r := &Registry{
		namespace: namespace,
		registry:  prometheus.NewRegistry(),
		gauges:    make(map[string]prometheus.Gauge),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Histogram of HTTP request durations in seconds.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	err := errors.Join(
		r.registry.Register(collectors.NewGoCollector()),
		r.registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})),
		r.registry.Register(r.requestsTotal),
		r.registry.Register(r.requestDuration),
		r.NewGauge(MemoryUsageBytes, "Resident memory size in bytes."),
		r.NewGauge(StartTimeSeconds, "App start time in seconds since Unix epoch."),
	)
	if err != nil {
		return nil, fmt.Errorf("error registering metrics: %w", err)
	}

	return r, nil
}

// NewGauge registers a gauge identified by name. Registering the same name
// twice returns [ErrDuplicateGauge].
func (r *Registry) NewGauge(name, help string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.gauges[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateGauge, name)
	}

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: r.namespace,
		Name:      name,
		Help:      help,
	})
	if err := r.registry.Register(gauge); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return fmt.Errorf("%w: %s", ErrDuplicateGauge, name)
		}
		return fmt.Errorf("register gauge %s: %w", name, err)
	}

	r.gauges[name] = gauge
	return nil
}

// SetGauge overwrites the value of the named gauge.
func (r *Registry) SetGauge(name string, value float64) error {
	gauge, err := r.gauge(name)
	if err != nil {
		return err
	}

	gauge.Set(value)
	return nil
}

// GaugeValue returns the current value of the named gauge.
func (r *Registry) GaugeValue(name string) (float64, error) {
	gauge, err := r.gauge(name)
	if err != nil {
		return 0, err
	}

	var m dto.Metric
	if err = gauge.Write(&m); err != nil {
		return 0, fmt.Errorf("read gauge %s: %w", name, err)
	}

	return m.GetGauge().GetValue(), nil
}

// SetMemoryUsage writes the memory usage gauge.
func (r *Registry) SetMemoryUsage(bytes uint64) {
	// both gauges are registered in NewRegistry
	_ = r.SetGauge(MemoryUsageBytes, float64(bytes))
}

// MemoryUsage returns the last value written by SetMemoryUsage.
func (r *Registry) MemoryUsage() uint64 {
	v, _ := r.GaugeValue(MemoryUsageBytes)
	return uint64(v)
}

// MarkStartTime records t as the process start time. Only the first call has
// an effect; it reports whether this call was the one that wrote the value.
func (r *Registry) MarkStartTime(t time.Time) bool {
	marked := false
	r.startOnce.Do(func() {
		_ = r.SetGauge(StartTimeSeconds, float64(t.UnixNano())/float64(time.Second))
		marked = true
	})
	return marked
}

// StartTime returns the recorded start time, or the zero time if
// MarkStartTime has not been called.
func (r *Registry) StartTime() time.Time {
	v, _ := r.GaugeValue(StartTimeSeconds)
	if v == 0 {
		return time.Time{}
	}

	sec, frac := math.Modf(v)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// ObserveRequest records one finished HTTP request.
func (r *Registry) ObserveRequest(method, route string, status int, duration time.Duration) {
	code := strconv.Itoa(status)
	r.requestsTotal.WithLabelValues(method, route, code).Inc()
	r.requestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
}

// Gatherer exposes the underlying registry for scrape-format tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// Handler serves the registry in the Prometheus text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Registry) gauge(name string) (prometheus.Gauge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	gauge, ok := r.gauges[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGauge, name)
	}
	return gauge, nil
}
