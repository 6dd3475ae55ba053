package batchrun

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"sndconvert/internal/codec"
	"sndconvert/internal/config"
	"sndconvert/internal/encoding"
	"sndconvert/internal/logging"
	"sndconvert/internal/queue"
	"sndconvert/internal/scan"
	"sndconvert/internal/services"
	"sndconvert/internal/workflow"
)

// Report describes a finished run.
type Report struct {
	RunID     string
	Directory string
	Target    codec.Codec
	ToolDir   string
	Files     int
	Summary   workflow.Summary
}

// Run converts every audio file directly inside dir to the configured target
// codec.
func Run(ctx context.Context, cfg *config.Config, dir string, logger *slog.Logger) (Report, error) {
	if cfg == nil {
		return Report{}, fmt.Errorf("config is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	report := Report{RunID: uuid.NewString()}
	ctx = services.WithRunID(ctx, report.RunID)
	runLogger := logging.WithContext(ctx, logging.NewComponentLogger(logger, "batchrun"))

	target, ok := codec.Parse(cfg.Conversion.TargetCodec)
	if !ok {
		return report, services.Wrap(services.ErrConfiguration, "batchrun", "target codec",
			fmt.Sprintf("unsupported target codec %q", cfg.Conversion.TargetCodec), nil)
	}
	report.Target = target

	toolDir, platform, err := ToolDir(cfg)
	if err != nil {
		return report, err
	}
	report.ToolDir = toolDir

	abs, err := filepath.Abs(dir)
	if err != nil {
		return report, services.Wrap(services.ErrDirectoryNotFound, "batchrun", "resolve directory", dir, err)
	}
	report.Directory = abs

	files, err := scan.Discover(abs)
	if err != nil {
		return report, err
	}
	report.Files = len(files)

	lock, err := acquireLock(cfg.Paths.LockDir, abs)
	if err != nil {
		return report, err
	}
	if lock != nil {
		defer func() {
			if err := lock.Unlock(); err != nil {
				runLogger.Warn("failed to release run lock", logging.Error(err))
			}
		}()
	}

	sources := scan.Codecs(files)
	registry, err := codec.NewRegistry(toolDir, target, sources)
	if err != nil {
		return report, err
	}

	runLogger.Info("run configured",
		logging.String(logging.FieldEventType, "run_configured"),
		logging.String("directory", abs),
		logging.String("target", string(target)),
		logging.String("platform", platform),
		logging.String("tool_dir", toolDir),
		logging.Int("files", len(files)),
		logging.Bool("strict_decode", cfg.Conversion.StrictDecode),
	)

	q := queue.New()
	q.Put(files...)
	job := encoding.NewJob(registry, cfg.Conversion.StrictDecode, logger)
	manager := workflow.NewManager(cfg, job, logger)
	report.Summary = manager.Run(ctx, q)
	return report, nil
}
