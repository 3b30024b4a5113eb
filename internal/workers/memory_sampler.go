// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"github.com/StyNW7/WhatsVUpp-V99/internal/memstat"
	"github.com/benbjohnson/clock"
)

// DefaultMemorySampleInterval is used when the configured interval is not
// positive.
const DefaultMemorySampleInterval = 10 * time.Second

// MemoryGauge is the part of the metrics registry the sampler writes to.
type MemoryGauge interface {
	SetMemoryUsage(bytes uint64)
}

// MemorySampler periodically reads memory usage and publishes it to the
// registry. It is the only writer of the memory usage gauge.
type MemorySampler struct {
	reader   memstat.Reader
	gauge    MemoryGauge
	interval time.Duration
	clock    clock.Clock

	samples  atomic.Int64
	failures atomic.Int64

	logger *logger.Logger
}

// NewMemorySampler creates a sampler that reads from reader every interval.
// A nil clk means the wall clock.
func NewMemorySampler(reader memstat.Reader, gauge MemoryGauge, interval time.Duration, clk clock.Clock, logger *logger.Logger) *MemorySampler {
	if interval <= 0 {
		interval = DefaultMemorySampleInterval
	}
	if clk == nil {
		clk = clock.New()
	}

	return &MemorySampler{
		reader:   reader,
		gauge:    gauge,
		interval: interval,
		clock:    clk,
		logger:   logger,
	}
}

func (s *MemorySampler) Name() string {
	return "memory-sampler"
}

// Run implements [Worker]. It takes a sample right away and then one per
// tick until ctx is cancelled. A failed read is logged and skipped; the gauge
// keeps its previous value and the schedule is unaffected.
func (s *MemorySampler) Run(ctx context.Context) error {
	// the ticker must exist before the first sample so that a tick is never
	// missed between the two
	ticker := s.clock.Ticker(s.interval)
	defer ticker.Stop()

	s.logger.Info().
		Str("source", s.reader.Source()).
		Dur("interval", s.interval).
		Msg("memory sampler started")

	for {
		s.sample(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Samples returns the number of successful gauge writes.
func (s *MemorySampler) Samples() int64 {
	return s.samples.Load()
}

// Failures returns the number of skipped iterations.
func (s *MemorySampler) Failures() int64 {
	return s.failures.Load()
}

func (s *MemorySampler) sample(ctx context.Context) {
	kb, err := s.reader.ReadKilobytes(ctx)
	if err != nil {
		s.failures.Add(1)
		if ctx.Err() == nil {
			s.logger.Warn().Err(err).Str("source", s.reader.Source()).Msg("skipping memory sample")
		}
		return
	}

	bytes := kb * 1024
	s.gauge.SetMemoryUsage(bytes)
	s.samples.Add(1)

	s.logger.Debug().Uint64("memory_usage_bytes", bytes).Msg("memory sampled")
}
