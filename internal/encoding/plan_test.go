package encoding_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"sndconvert/internal/codec"
	"sndconvert/internal/encoding"
	"sndconvert/internal/logging"
	"sndconvert/internal/testsupport"
)

func TestPlanSameFormatSpawnsNothing(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir())
	planner := encoding.NewPlanner(newRegistry(t, tools, codec.MP3, codec.MP3), logging.NewNop())

	music := musicDir(t)
	source := filepath.Join(music, "b.mp3")
	writeAudio(t, source, "mp3")

	plan := planner.Plan(context.Background(), source)
	if plan.Outcome != encoding.OutcomeSkippedSameFormat {
		t.Fatalf("outcome = %q, want %q", plan.Outcome, encoding.OutcomeSkippedSameFormat)
	}
	if plan.Ready() {
		t.Fatal("skipped plan must not be ready")
	}
	if calls := testsupport.CallCount(t, tools); calls != 0 {
		t.Fatalf("expected no subprocess, got %d calls", calls)
	}
}

func TestPlanUppercaseExtensionSameFormat(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir())
	planner := encoding.NewPlanner(newRegistry(t, tools, codec.MP3, codec.MP3), logging.NewNop())

	plan := planner.Plan(context.Background(), "/music/LOUD.MP3")
	if plan.Outcome != encoding.OutcomeSkippedSameFormat {
		t.Fatalf("outcome = %q", plan.Outcome)
	}
}

func TestPlanDestinationExistsSpawnsNothing(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir())
	planner := encoding.NewPlanner(newRegistry(t, tools, codec.MP3, codec.FLAC), logging.NewNop())

	music := musicDir(t)
	source := filepath.Join(music, "a.flac")
	writeAudio(t, source, "flac")
	writeAudio(t, filepath.Join(music, "a.mp3"), "done")

	plan := planner.Plan(context.Background(), source)
	if plan.Outcome != encoding.OutcomeSkippedDestinationExists {
		t.Fatalf("outcome = %q, want %q", plan.Outcome, encoding.OutcomeSkippedDestinationExists)
	}
	if plan.Destination() != filepath.Join(music, "a.mp3") {
		t.Fatalf("destination = %q", plan.Destination())
	}
	if calls := testsupport.CallCount(t, tools); calls != 0 {
		t.Fatalf("expected no subprocess, got %d calls", calls)
	}
}

func TestPlanUnsupportedSources(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir())
	planner := encoding.NewPlanner(newRegistry(t, tools, codec.MP3, codec.FLAC), logging.NewNop())

	cases := map[string]string{
		"/music/a.wav": "unknown_extension",
		"/music/a.ogg": "codec_not_registered",
	}
	for path, reason := range cases {
		plan := planner.Plan(context.Background(), path)
		if plan.Outcome != encoding.OutcomeSourceUnsupported || plan.Reason != reason {
			t.Errorf("Plan(%s) = %q/%q, want %q/%q", path, plan.Outcome, plan.Reason, encoding.OutcomeSourceUnsupported, reason)
		}
	}
}

func TestPlanNoDecodeCapability(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir())
	target, err := codec.New(codec.MP3, tools, codec.CapEncode)
	if err != nil {
		t.Fatalf("New mp3: %v", err)
	}
	flac, err := codec.New(codec.FLAC, tools, codec.CapEncode)
	if err != nil {
		t.Fatalf("New flac: %v", err)
	}
	planner := encoding.NewPlanner(codec.NewRegistryFrom(target, flac), logging.NewNop())

	plan := planner.Plan(context.Background(), filepath.Join(musicDir(t), "a.flac"))
	if plan.Outcome != encoding.OutcomeSourceUnsupported || plan.Reason != "no_decode_capability" {
		t.Fatalf("plan = %q/%q", plan.Outcome, plan.Reason)
	}
}

func TestPlanMapsTagsToEncoderFlags(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir(),
		testsupport.WithAnalyzerOutput("metaflac", "  comments: 2\n    comment[0]: ARTIST=X\n    comment[1]: TITLE=Y\n"))
	planner := encoding.NewPlanner(newRegistry(t, tools, codec.MP3, codec.FLAC), logging.NewNop())

	music := musicDir(t)
	source := filepath.Join(music, "a.flac")
	writeAudio(t, source, "flac")

	plan := planner.Plan(context.Background(), source)
	if !plan.Ready() {
		t.Fatalf("expected ready plan, got %q (%s)", plan.Outcome, plan.Reason)
	}
	if !strings.Contains(plan.Encode.String(), `--ta "X" --tt "Y"`) {
		t.Fatalf("encode invocation missing tag flags: %s", plan.Encode)
	}
	if strings.Contains(plan.Encode.String(), "--tl") {
		t.Fatalf("absent tags must be omitted: %s", plan.Encode)
	}
	if plan.Destination() != filepath.Join(music, "a.mp3") {
		t.Fatalf("destination = %q", plan.Destination())
	}
	if plan.Decode.TagSource != codec.TagSourceAnalyzer {
		t.Fatalf("tag source = %q", plan.Decode.TagSource)
	}
}

func TestPlanSharedDestinationIsClaimedOnce(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir())
	planner := encoding.NewPlanner(newRegistry(t, tools, codec.MP3, codec.FLAC, codec.OGG), logging.NewNop())

	music := musicDir(t)
	flac := filepath.Join(music, "a.flac")
	ogg := filepath.Join(music, "a.ogg")
	writeAudio(t, flac, "flac")
	writeAudio(t, ogg, "ogg")

	first := planner.Plan(context.Background(), flac)
	if !first.Ready() {
		t.Fatalf("first plan = %q (%s), want ready", first.Outcome, first.Reason)
	}

	second := planner.Plan(context.Background(), ogg)
	if second.Outcome != encoding.OutcomeSkippedDestinationExists || second.Reason != "destination_claimed" {
		t.Fatalf("second plan = %q (%s), want destination_claimed skip", second.Outcome, second.Reason)
	}
	if second.Destination() != filepath.Join(music, "a.mp3") {
		t.Fatalf("destination = %q", second.Destination())
	}

	planner.Release(first)
	if third := planner.Plan(context.Background(), ogg); !third.Ready() {
		t.Fatalf("plan after release = %q (%s), want ready", third.Outcome, third.Reason)
	}
}

func TestPlanSkipReleasesClaim(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir())
	planner := encoding.NewPlanner(newRegistry(t, tools, codec.MP3, codec.FLAC, codec.OGG), logging.NewNop())

	music := musicDir(t)
	flac := filepath.Join(music, "a.flac")
	ogg := filepath.Join(music, "a.ogg")
	writeAudio(t, flac, "flac")
	writeAudio(t, ogg, "ogg")
	writeAudio(t, filepath.Join(music, "a.mp3"), "done")

	if plan := planner.Plan(context.Background(), flac); plan.Reason != "destination_exists" {
		t.Fatalf("first reason = %q, want destination_exists", plan.Reason)
	}
	if plan := planner.Plan(context.Background(), ogg); plan.Reason != "destination_exists" {
		t.Fatalf("second reason = %q, want destination_exists", plan.Reason)
	}
}
