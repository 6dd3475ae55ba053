package encoding

import (
	"context"
	"fmt"
	"log/slog"

	"sndconvert/internal/codec"
	"sndconvert/internal/logging"
)

// Plan is the decision for one source path. A plan without an Outcome is
// ready to run through the pipe.
type Plan struct {
	Source      string
	SourceCodec codec.Codec
	Outcome     Outcome
	Reason      string
	Decode      codec.DecodeResult
	Encode      codec.Invocation
	// claim is the destination reserved for this plan until Release.
	claim string
}

// Ready reports whether the plan still needs a conversion.
func (p Plan) Ready() bool {
	return p.Outcome == ""
}

// Destination is the file the encoder writes.
func (p Plan) Destination() string {
	return p.Encode.Output
}

// Planner builds conversion plans against one run's codec registry. A ready
// plan holds its destination until it is released, so a planner must be
// shared by every worker of a run.
type Planner struct {
	registry *codec.Registry
	claims   *destinationClaims
	logger   *slog.Logger
}

// NewPlanner returns a planner for registry.
func NewPlanner(registry *codec.Registry, logger *slog.Logger) *Planner {
	return &Planner{
		registry: registry,
		claims:   newDestinationClaims(),
		logger:   logging.NewComponentLogger(logger, "planner"),
	}
}

// Release gives up the destination held by plan. It is a no-op for plans
// that hold nothing.
func (p *Planner) Release(plan Plan) {
	if plan.claim != "" {
		p.claims.release(plan.claim)
	}
}

// Plan decides how to handle path. Skip decisions are made before any
// external tool runs.
func (p *Planner) Plan(ctx context.Context, path string) Plan {
	logger := logging.WithContext(ctx, p.logger)
	plan := Plan{Source: path}
	target := p.registry.Target()

	source, ok := codec.FromPath(path)
	if !ok {
		return p.decide(logger, plan, OutcomeSourceUnsupported, "unknown_extension")
	}
	plan.SourceCodec = source
	desc, ok := p.registry.Lookup(source)
	if !ok {
		return p.decide(logger, plan, OutcomeSourceUnsupported, "codec_not_registered")
	}

	if source == target.Codec() {
		return p.decide(logger, plan, OutcomeSkippedSameFormat, "source_is_target")
	}
	// Claim before the existence check: a claim can only be won after the
	// previous holder's output is complete or removed.
	destination := codec.DestinationPath(path, target.Codec())
	if !p.claims.claim(destination) {
		plan.Encode.Output = destination
		return p.decide(logger, plan, OutcomeSkippedDestinationExists, "destination_claimed")
	}
	plan.claim = destination

	plan = p.prepare(ctx, logger, plan, desc, target)
	if !plan.Ready() {
		p.Release(plan)
		plan.claim = ""
	}
	return plan
}

func (p *Planner) prepare(ctx context.Context, logger *slog.Logger, plan Plan, desc, target codec.Descriptor) Plan {
	path, source := plan.Source, plan.SourceCodec
	if target.IsFile(path) {
		plan.Encode.Output = plan.claim
		return p.decide(logger, plan, OutcomeSkippedDestinationExists, "destination_exists")
	}

	decoded, ok := desc.Decode(ctx, path)
	if !ok {
		return p.decide(logger, plan, OutcomeSourceUnsupported, "no_decode_capability")
	}
	plan.Decode = decoded
	if decoded.TagErr != nil {
		attrs := append(logging.Decision("tag_source", decoded.TagSource, decoded.TagErr.Error()),
			logging.String("decision_options", "analyzer, native, none"))
		logger.Warn("tag analyzer unavailable, using fallback", logging.Args(attrs...)...)
	}

	encode, ok := target.Encode(path, decoded.Meta)
	if !ok {
		return p.decide(logger, plan, OutcomeFailed, "target_cannot_encode")
	}
	plan.Encode = encode

	attrs := append(logging.Decision("conversion_plan", "convert", fmt.Sprintf("%s_to_%s", source, target.Codec())),
		logging.String(logging.FieldCodec, string(source)),
		logging.String("destination", encode.Output),
		logging.String("tag_source", decoded.TagSource),
		logging.String("decode_command", decoded.Invocation.String()),
		logging.String("encode_command", encode.String()),
	)
	logger.Info("conversion planned", logging.Args(attrs...)...)
	return plan
}

func (p *Planner) decide(logger *slog.Logger, plan Plan, outcome Outcome, reason string) Plan {
	plan.Outcome = outcome
	plan.Reason = reason
	attrs := logging.Decision("conversion_plan", string(outcome), reason)
	if plan.SourceCodec != "" {
		attrs = append(attrs, logging.String(logging.FieldCodec, string(plan.SourceCodec)))
	}
	if outcome.Skipped() {
		logger.Info("conversion skipped", logging.Args(attrs...)...)
	} else {
		logger.Warn("conversion not possible", logging.Args(attrs...)...)
	}
	return plan
}
