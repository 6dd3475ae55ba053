package encoding_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"sndconvert/internal/codec"
	"sndconvert/internal/encoding"
	"sndconvert/internal/services"
	"sndconvert/internal/tags"
	"sndconvert/internal/testsupport"
)

func pipeInvocations(t *testing.T, tools, source string) (codec.Invocation, codec.Invocation) {
	t.Helper()
	flac, err := codec.New(codec.FLAC, tools, codec.CapDecode)
	if err != nil {
		t.Fatalf("New flac: %v", err)
	}
	mp3, err := codec.New(codec.MP3, tools, codec.CapEncode)
	if err != nil {
		t.Fatalf("New mp3: %v", err)
	}
	decoded, _ := flac.Decode(context.Background(), source)
	encode, _ := mp3.Encode(source, tags.Map{})
	return decoded.Invocation, encode
}

func TestPipeRunnerStreamsLargePayload(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir())
	music := musicDir(t)
	source := filepath.Join(music, "big.flac")
	payload := bytes.Repeat([]byte("0123456789abcdef"), 256*1024)
	if err := os.WriteFile(source, payload, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	decode, encode := pipeInvocations(t, tools, source)
	result, err := encoding.PipeRunner{}.Run(context.Background(), decode, encode)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.EncodeExit != 0 || result.DecodeExit != 0 {
		t.Fatalf("unexpected exit statuses %+v", result)
	}
	got, err := os.ReadFile(filepath.Join(music, "big.mp3"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("output differs from input: %d bytes vs %d", len(got), len(payload))
	}
}

func TestPipeRunnerReportsBothExitStatuses(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir(),
		testsupport.WithDecodeExit("flac", 4),
		testsupport.WithEncodeExit("lame", 5))
	source := filepath.Join(musicDir(t), "a.flac")
	writeAudio(t, source, "flac")

	decode, encode := pipeInvocations(t, tools, source)
	result, err := encoding.PipeRunner{}.Run(context.Background(), decode, encode)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.DecodeExit != 4 || result.EncodeExit != 5 {
		t.Fatalf("unexpected exit statuses %+v", result)
	}
}

func TestPipeRunnerMissingEncoder(t *testing.T) {
	tools := testsupport.WriteAudioTools(t, t.TempDir())
	source := filepath.Join(musicDir(t), "a.flac")
	writeAudio(t, source, "flac")

	decode, encode := pipeInvocations(t, tools, source)
	encode.Binary = filepath.Join(t.TempDir(), "gone")

	_, err := encoding.PipeRunner{}.Run(context.Background(), decode, encode)
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
}
