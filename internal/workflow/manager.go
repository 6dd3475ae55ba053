package workflow

import (
	"context"
	"log/slog"

	"sndconvert/internal/config"
	"sndconvert/internal/encoding"
	"sndconvert/internal/logging"
)

// Converter processes a single work item.
type Converter interface {
	Run(ctx context.Context, path string) encoding.Result
}

// Manager runs a fixed pool of conversion workers against a queue.
type Manager struct {
	workers   int
	converter Converter
	logger    *slog.Logger
}

// NewManager constructs a workflow manager sized from cfg.
func NewManager(cfg *config.Config, converter Converter, logger *slog.Logger) *Manager {
	workers := 1
	if cfg != nil && cfg.Conversion.Workers > 0 {
		workers = cfg.Conversion.Workers
	}
	return &Manager{
		workers:   workers,
		converter: converter,
		logger:    logging.NewComponentLogger(logger, "workflow"),
	}
}

// Workers reports the pool size.
func (m *Manager) Workers() int {
	return m.workers
}
