// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry("app")
	require.NoError(t, err)
	return r
}

// ── NewRegistry ──────────────────────────────────────────────────────────────

func TestNewRegistry_RegistersDefaultGauges(t *testing.T) {
	r := newTestRegistry(t)

	for _, name := range []string{MemoryUsageBytes, StartTimeSeconds} {
		v, err := r.GaugeValue(name)
		require.NoError(t, err, name)
		assert.Zero(t, v, name)
	}
}

func TestNewRegistry_IndependentInstances(t *testing.T) {
	r1 := newTestRegistry(t)
	r2 := newTestRegistry(t)

	r1.SetMemoryUsage(100)

	assert.Equal(t, uint64(100), r1.MemoryUsage())
	assert.Zero(t, r2.MemoryUsage())
}

// ── NewGauge ─────────────────────────────────────────────────────────────────

func TestNewGauge_Duplicate(t *testing.T) {
	r := newTestRegistry(t)

	err := r.NewGauge(MemoryUsageBytes, "again")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateGauge)

	require.NoError(t, r.NewGauge("open_connections", "Open connections."))
	assert.ErrorIs(t, r.NewGauge("open_connections", "Open connections."), ErrDuplicateGauge)
}

func TestNewGauge_CollidesWithExistingCollector(t *testing.T) {
	r := newTestRegistry(t)

	// app_http_requests_total is already taken by the request counter
	err := r.NewGauge("http_requests_total", "clash")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownGauge)
}

// ── SetGauge / GaugeValue ────────────────────────────────────────────────────

func TestSetGauge_Unknown(t *testing.T) {
	r := newTestRegistry(t)

	assert.ErrorIs(t, r.SetGauge("missing", 1), ErrUnknownGauge)

	_, err := r.GaugeValue("missing")
	assert.ErrorIs(t, err, ErrUnknownGauge)
}

func TestSetGauge_LastWriteWins(t *testing.T) {
	r := newTestRegistry(t)

	require.NoError(t, r.SetGauge(MemoryUsageBytes, 10))
	require.NoError(t, r.SetGauge(MemoryUsageBytes, 20))

	v, err := r.GaugeValue(MemoryUsageBytes)
	require.NoError(t, err)
	assert.Equal(t, float64(20), v)
}

func TestMemoryUsage_ConcurrentReadWrite(t *testing.T) {
	r := newTestRegistry(t)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := uint64(1); i <= 1000; i++ {
			r.SetMemoryUsage(i * 1024)
		}
	}()

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				v := r.MemoryUsage()
				assert.Zero(t, v%1024, "observed a torn value %d", v)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(1000*1024), r.MemoryUsage())
}

// ── MarkStartTime ────────────────────────────────────────────────────────────

func TestMarkStartTime_OnlyFirstCallWrites(t *testing.T) {
	r := newTestRegistry(t)
	first := time.Unix(1700000000, 500_000_000)

	assert.True(t, r.MarkStartTime(first))
	assert.False(t, r.MarkStartTime(first.Add(time.Hour)))

	v, err := r.GaugeValue(StartTimeSeconds)
	require.NoError(t, err)
	assert.InDelta(t, 1700000000.5, v, 1e-3)
}

func TestStartTime_Stable(t *testing.T) {
	r := newTestRegistry(t)
	assert.True(t, r.StartTime().IsZero())

	now := time.Now()
	r.MarkStartTime(now)

	a := r.StartTime()
	r.MarkStartTime(now.Add(time.Minute))
	b := r.StartTime()

	assert.Equal(t, a, b)
	assert.WithinDuration(t, now, a, time.Millisecond)
}

// ── ObserveRequest ───────────────────────────────────────────────────────────

func TestObserveRequest(t *testing.T) {
	r := newTestRegistry(t)

	r.ObserveRequest(http.MethodPost, "/encrypt", http.StatusOK, 5*time.Millisecond)
	r.ObserveRequest(http.MethodPost, "/encrypt", http.StatusOK, 7*time.Millisecond)
	r.ObserveRequest(http.MethodPost, "/encrypt", http.StatusBadRequest, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(r.requestsTotal.WithLabelValues("POST", "/encrypt", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.requestsTotal.WithLabelValues("POST", "/encrypt", "400")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.requestDuration))
}

// ── Exposition ───────────────────────────────────────────────────────────────

func TestGatherer_MemoryGaugeExposition(t *testing.T) {
	r := newTestRegistry(t)
	r.SetMemoryUsage(4096)

	expected := `
# HELP app_memory_usage_bytes Resident memory size in bytes.
# TYPE app_memory_usage_bytes gauge
app_memory_usage_bytes 4096
`
	err := testutil.GatherAndCompare(r.Gatherer(), strings.NewReader(expected), "app_memory_usage_bytes")
	assert.NoError(t, err)
}

func TestHandler_ServesTextFormat(t *testing.T) {
	r := newTestRegistry(t)
	r.SetMemoryUsage(2048)
	r.MarkStartTime(time.Unix(1700000000, 0))

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")
	assert.Contains(t, string(body), "app_memory_usage_bytes 2048")
	assert.Contains(t, string(body), "app_start_time_seconds 1.7e+09")
	assert.Contains(t, string(body), "go_goroutines")
}
