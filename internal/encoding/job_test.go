package encoding_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"sndconvert/internal/encoding"
	"sndconvert/internal/services"
	"sndconvert/internal/testsupport"
)

func TestJobConvertsFlacAndSkipsMP3(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir(),
		testsupport.WithAnalyzerOutput("metaflac", "    comment[0]: ARTIST=X\n    comment[1]: TITLE=Y\n"))
	job := newJob(t, tools, true)

	music := musicDir(t)
	flac := filepath.Join(music, "a.flac")
	mp3 := filepath.Join(music, "b.mp3")
	writeAudio(t, flac, "flac-pcm-payload")
	writeAudio(t, mp3, "already-mp3")

	result := job.Run(context.Background(), flac)
	if result.Outcome != encoding.OutcomeConverted || result.Err != nil {
		t.Fatalf("a.flac = %q (%v), want converted", result.Outcome, result.Err)
	}
	if got := readFile(t, filepath.Join(music, "a.mp3")); got != "flac-pcm-payload" {
		t.Fatalf("destination content = %q", got)
	}

	calls := testsupport.Calls(t, tools, "lame")
	want := "-h -V 0 --ta X --tt Y - " + filepath.Join(music, "a.mp3")
	if len(calls) != 1 || calls[0] != want {
		t.Fatalf("lame calls = %v, want [%s]", calls, want)
	}

	result = job.Run(context.Background(), mp3)
	if result.Outcome != encoding.OutcomeSkippedSameFormat {
		t.Fatalf("b.mp3 = %q, want skipped_same_format", result.Outcome)
	}
	if got := readFile(t, mp3); got != "already-mp3" {
		t.Fatalf("b.mp3 was modified: %q", got)
	}
}

func TestJobSecondRunSkipsEverything(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir())
	job := newJob(t, tools, true)

	music := musicDir(t)
	sources := []string{filepath.Join(music, "one.flac"), filepath.Join(music, "two.ogg")}
	for _, source := range sources {
		writeAudio(t, source, "payload of "+filepath.Base(source))
	}

	for _, source := range sources {
		if result := job.Run(context.Background(), source); result.Outcome != encoding.OutcomeConverted {
			t.Fatalf("first run %s = %q (%v)", source, result.Outcome, result.Err)
		}
	}
	encodes := len(testsupport.Calls(t, tools, "lame"))
	first := readFile(t, filepath.Join(music, "one.mp3"))

	for _, source := range sources {
		if result := job.Run(context.Background(), source); result.Outcome != encoding.OutcomeSkippedDestinationExists {
			t.Fatalf("second run %s = %q", source, result.Outcome)
		}
	}
	if got := len(testsupport.Calls(t, tools, "lame")); got != encodes {
		t.Fatalf("second run re-encoded: %d calls, want %d", got, encodes)
	}
	if got := readFile(t, filepath.Join(music, "one.mp3")); got != first {
		t.Fatalf("second run changed output: %q", got)
	}
}

func TestJobEncoderFailureRemovesPartialOutput(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir(), testsupport.WithEncodeExit("lame", 3))
	job := newJob(t, tools, true)

	music := musicDir(t)
	source := filepath.Join(music, "a.ogg")
	writeAudio(t, source, "ogg")

	result := job.Run(context.Background(), source)
	if result.Outcome != encoding.OutcomeFailed {
		t.Fatalf("outcome = %q, want failed", result.Outcome)
	}
	if !errors.Is(result.Err, services.ErrConversionFailed) {
		t.Fatalf("expected ErrConversionFailed, got %v", result.Err)
	}
	if !strings.Contains(result.Err.Error(), "status 3") {
		t.Fatalf("expected exit status in %q", result.Err)
	}
	if exists(filepath.Join(music, "a.mp3")) {
		t.Fatal("partial destination was left behind")
	}
}

func TestJobStrictDecode(t *testing.T) {
	music := musicDir(t)
	source := filepath.Join(music, "a.flac")
	writeAudio(t, source, "flac")

	strictTools := testsupport.WriteAudioTools(t, t.TempDir(), testsupport.WithDecodeExit("flac", 2))
	result := newJob(t, strictTools, true).Run(context.Background(), source)
	if result.Outcome != encoding.OutcomeFailed || !errors.Is(result.Err, services.ErrConversionFailed) {
		t.Fatalf("strict decode = %q (%v), want failed", result.Outcome, result.Err)
	}
	if !strings.Contains(result.Err.Error(), "decoder exited with status 2") {
		t.Fatalf("unexpected error %q", result.Err)
	}
	if exists(filepath.Join(music, "a.mp3")) {
		t.Fatal("strict decode failure left output behind")
	}

	lenientTools := testsupport.WriteAudioTools(t, t.TempDir(), testsupport.WithDecodeExit("flac", 2))
	result = newJob(t, lenientTools, false).Run(context.Background(), source)
	if result.Outcome != encoding.OutcomeConverted {
		t.Fatalf("lenient decode = %q (%v), want converted", result.Outcome, result.Err)
	}
	if !exists(filepath.Join(music, "a.mp3")) {
		t.Fatal("lenient decode should keep the encoder output")
	}
}

func TestJobUnsupportedSource(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir())
	result := newJob(t, tools, true).Run(context.Background(), "/music/a.wav")
	if result.Outcome != encoding.OutcomeSourceUnsupported {
		t.Fatalf("outcome = %q", result.Outcome)
	}
	if !errors.Is(result.Err, services.ErrSourceUnsupported) {
		t.Fatalf("expected ErrSourceUnsupported, got %v", result.Err)
	}
}

func TestJobCancelledContext(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir())
	job := newJob(t, tools, true)

	music := musicDir(t)
	source := filepath.Join(music, "a.flac")
	writeAudio(t, source, "flac")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := job.Run(ctx, source)
	if result.Outcome != encoding.OutcomeFailed || result.Reason != "interrupted" {
		t.Fatalf("result = %q/%q (%v)", result.Outcome, result.Reason, result.Err)
	}
	if exists(filepath.Join(music, "a.mp3")) {
		t.Fatal("interrupted conversion left output behind")
	}
}
