package workers

import (
	"context"
	"fmt"

	"github.com/StyNW7/WhatsVUpp-V99/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Workers runs a fixed set of workers concurrently. If one worker fails, the
// context passed to the others is cancelled.
type Workers struct {
	workers []Worker
	group   *errgroup.Group

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{
		workers: workers,
		logger:  logger,
	}
}

// Start launches every worker in its own goroutine and returns immediately.
func (w *Workers) Start(ctx context.Context) {
	group, groupCtx := errgroup.WithContext(ctx)
	w.group = group

	for _, worker := range w.workers {
		w.logger.Info().Str("worker", worker.Name()).Msg("starting worker")

		group.Go(func() error {
			if err := worker.Run(groupCtx); err != nil {
				return fmt.Errorf("worker %s: %w", worker.Name(), err)
			}
			w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")
			return nil
		})
	}
}

// Wait blocks until all started workers have returned and reports the first
// failure. It returns nil if Start was never called.
func (w *Workers) Wait() error {
	if w.group == nil {
		return nil
	}
	return w.group.Wait()
}
