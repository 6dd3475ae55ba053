package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"sndconvert/internal/encoding"
	"sndconvert/internal/logging"
	"sndconvert/internal/queue"
	"sndconvert/internal/services"
)

// Run drains q with the worker pool and blocks until every item has been
// acknowledged and every worker has exited.
func (m *Manager) Run(ctx context.Context, q *queue.Queue) Summary {
	started := time.Now()
	recorder := newRecorder()
	logger := logging.WithContext(ctx, m.logger)

	stats := q.Stats()
	logger.Info("conversion started",
		logging.String(logging.FieldEventType, "run_start"),
		logging.Int("files", stats.Pending),
		logging.Int("workers", m.workers),
	)

	var wg sync.WaitGroup
	wg.Add(m.workers)
	for i := 1; i <= m.workers; i++ {
		go m.runWorker(ctx, fmt.Sprintf("converter-%d", i), q, recorder, &wg)
	}

	q.Join()
	wg.Wait()

	summary := recorder.summary(time.Since(started), m.workers)
	logger.Info("conversion finished",
		logging.String(logging.FieldEventType, "run_complete"),
		logging.Int("files", summary.Total()),
		logging.Int("failed", summary.Count(encoding.OutcomeFailed)),
		logging.Duration("elapsed", summary.Elapsed),
	)
	return summary
}

func (m *Manager) runWorker(ctx context.Context, name string, q *queue.Queue, recorder *recorder, wg *sync.WaitGroup) {
	defer wg.Done()
	ctx = services.WithWorker(ctx, name)
	logger := logging.WithContext(ctx, m.logger)
	logger.Debug("worker started", logging.String(logging.FieldEventType, "worker_start"))

	processed := 0
	for {
		if ctx.Err() != nil {
			if dropped := q.Discard(); dropped > 0 {
				logger.Warn("run interrupted; discarded pending files",
					logging.String(logging.FieldEventType, "queue_discarded"),
					logging.Int("discarded", dropped),
				)
			}
			break
		}

		path, err := q.Get()
		if errors.Is(err, queue.ErrEmpty) {
			break
		}
		if err != nil {
			logger.Error("failed to fetch next queue item",
				logging.Error(err),
				logging.String(logging.FieldEventType, "queue_fetch_failed"),
				logging.String(logging.FieldErrorHint, "item skipped; rerun to retry"),
			)
			m.acknowledge(logger, q)
			continue
		}

		fileCtx := services.WithFile(ctx, path)
		result := m.converter.Run(fileCtx, path)
		m.report(logging.WithContext(fileCtx, m.logger), result)
		recorder.record(result)
		m.acknowledge(logger, q)
		processed++
	}

	logger.Debug("worker stopped",
		logging.String(logging.FieldEventType, "worker_stop"),
		logging.Int("processed", processed),
	)
}

func (m *Manager) acknowledge(logger *slog.Logger, q *queue.Queue) {
	if err := q.Done(); err != nil {
		logger.Error("failed to acknowledge queue item", logging.Error(err))
	}
}

func (m *Manager) report(logger *slog.Logger, result encoding.Result) {
	attrs := []logging.Attr{
		logging.String(logging.FieldEventType, "file_complete"),
		logging.String(logging.FieldOutcome, string(result.Outcome)),
	}
	if result.Reason != "" {
		attrs = append(attrs, logging.String("reason", result.Reason))
	}
	if result.Destination != "" {
		attrs = append(attrs, logging.String("destination", result.Destination))
	}

	switch result.Outcome {
	case encoding.OutcomeConverted:
		attrs = append(attrs, logging.Duration("duration", result.Duration))
		logger.Info("file converted", logging.Args(attrs...)...)
	case encoding.OutcomeSkippedSameFormat, encoding.OutcomeSkippedDestinationExists:
		logger.Info("file skipped", logging.Args(attrs...)...)
	case encoding.OutcomeSourceUnsupported:
		logger.Warn("file not supported", logging.Args(attrs...)...)
	default:
		attrs = append(attrs,
			logging.Error(result.Err),
			logging.String(logging.FieldErrorHint, "check the tool output above; the file can be retried on the next run"),
		)
		logger.Error("file conversion failed", logging.Args(attrs...)...)
	}
}
