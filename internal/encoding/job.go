package encoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"sndconvert/internal/codec"
	"sndconvert/internal/logging"
	"sndconvert/internal/services"
)

// Result reports what happened to one work item.
type Result struct {
	Path        string
	Outcome     Outcome
	Reason      string
	Destination string
	Err         error
	Duration    time.Duration
}

// Job converts single files for one run.
type Job struct {
	planner      *Planner
	runner       PipeRunner
	strictDecode bool
	logger       *slog.Logger
}

// NewJob returns a job converting to the registry's target codec. With
// strictDecode set, a decoder exiting nonzero fails the conversion even when
// the encoder succeeded.
func NewJob(registry *codec.Registry, strictDecode bool, logger *slog.Logger) *Job {
	return &Job{
		planner:      NewPlanner(registry, logger),
		strictDecode: strictDecode,
		logger:       logging.NewComponentLogger(logger, "encoding"),
	}
}

// Run plans and, if needed, converts path.
func (j *Job) Run(ctx context.Context, path string) Result {
	started := time.Now()
	plan := j.planner.Plan(ctx, path)
	result := Result{
		Path:        path,
		Outcome:     plan.Outcome,
		Reason:      plan.Reason,
		Destination: plan.Destination(),
	}
	if !plan.Ready() {
		switch plan.Outcome {
		case OutcomeSourceUnsupported:
			result.Err = services.Wrap(services.ErrSourceUnsupported, "encoding", "plan", plan.Reason, nil)
		case OutcomeFailed:
			result.Err = services.Wrap(services.ErrConversionFailed, "encoding", "plan", plan.Reason, nil)
		}
		result.Duration = time.Since(started)
		return result
	}

	defer j.planner.Release(plan)

	logger := logging.WithContext(ctx, j.logger)
	logger.Info("encoding started",
		logging.String(logging.FieldEventType, "encode_start"),
		logging.String("destination", plan.Destination()),
	)

	pipe, err := j.runner.Run(ctx, plan.Decode.Invocation, plan.Encode)
	result.Err = j.evaluate(ctx, logger, plan, pipe, err)
	result.Duration = time.Since(started)
	if result.Err != nil {
		result.Outcome = OutcomeFailed
		result.Reason = failureReason(result.Err)
		j.removePartial(logger, plan.claim)
		return result
	}
	result.Outcome = OutcomeConverted
	return result
}

func (j *Job) evaluate(ctx context.Context, logger *slog.Logger, plan Plan, pipe PipeResult, runErr error) error {
	if runErr != nil {
		return runErr
	}
	if err := ctx.Err(); err != nil {
		return services.Wrap(services.ErrConversionFailed, "encoding", "pipe", "interrupted", err)
	}
	if pipe.EncodeExit != 0 {
		return services.Wrap(services.ErrConversionFailed, "encoding", "encode",
			exitMessage("encoder", pipe.EncodeExit, pipe.EncodeStderr), nil)
	}
	if pipe.DecodeExit != 0 {
		message := exitMessage("decoder", pipe.DecodeExit, pipe.DecodeStderr)
		if j.strictDecode {
			return services.Wrap(services.ErrConversionFailed, "encoding", "decode", message, nil)
		}
		attrs := append(logging.Decision("decode_status", "accepted", "strict_decode_disabled"),
			logging.Int("decode_exit", pipe.DecodeExit),
			logging.String("destination", plan.Destination()),
		)
		logger.Warn("decoder failed but encoder succeeded; keeping output", logging.Args(attrs...)...)
	}
	return nil
}

// removePartial deletes the output of a failed conversion. Only the holder
// of the destination claim may call it.
func (j *Job) removePartial(logger *slog.Logger, path string) {
	if path == "" {
		return
	}
	err := os.Remove(path)
	switch {
	case err == nil:
		logger.Info("removed partial output", logging.String("destination", path))
	case !errors.Is(err, os.ErrNotExist):
		logger.Warn("failed to remove partial output", logging.String("destination", path), logging.Error(err))
	}
}

func exitMessage(role string, code int, stderr string) string {
	message := fmt.Sprintf("%s exited with status %d", role, code)
	if code < 0 {
		message = role + " terminated by signal"
	}
	if stderr != "" {
		message += ": " + stderr
	}
	return message
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "interrupted"
	case errors.Is(err, services.ErrExternalTool):
		return "tool_error"
	default:
		return "exit_status"
	}
}
