package encoding_test

import (
	"os"
	"testing"

	"sndconvert/internal/codec"
	"sndconvert/internal/encoding"
	"sndconvert/internal/logging"
)

func newRegistry(t *testing.T, toolDir string, target codec.Codec, sources ...codec.Codec) *codec.Registry {
	t.Helper()
	reg, err := codec.NewRegistry(toolDir, target, sources)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func newJob(t *testing.T, toolDir string, strict bool) *encoding.Job {
	t.Helper()
	reg := newRegistry(t, toolDir, codec.MP3, codec.FLAC, codec.OGG, codec.MP3)
	return encoding.NewJob(reg, strict, logging.NewNop())
}

func writeAudio(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func musicDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}
