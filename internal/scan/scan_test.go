package scan_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sndconvert/internal/codec"
	"sndconvert/internal/scan"
	"sndconvert/internal/services"
	"sndconvert/internal/testsupport"
)

func TestDiscoverListsAudioFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp3", "a.FLAC", "c.ogg", "notes.txt", "d.wav"} {
		testsupport.WriteAudio(t, filepath.Join(dir, name), 8)
	}
	testsupport.WriteAudio(t, filepath.Join(dir, "nested", "e.flac"), 8)
	if err := os.Mkdir(filepath.Join(dir, "album.mp3"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	files, err := scan.Discover(dir)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{
		filepath.Join(dir, "a.FLAC"),
		filepath.Join(dir, "b.mp3"),
		filepath.Join(dir, "c.ogg"),
	}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("files[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestDiscoverMissingDirectory(t *testing.T) {
	_, err := scan.Discover(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, services.ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}
}

func TestDiscoverRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.mp3")
	testsupport.WriteAudio(t, path, 8)
	if _, err := scan.Discover(path); !errors.Is(err, services.ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}
}

func TestDiscoverPathThroughFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	testsupport.WriteAudio(t, file, 8)

	_, err := scan.Discover(filepath.Join(file, "sub"))
	if !errors.Is(err, services.ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}
	if strings.Count(err.Error(), "plain/sub") != 1 {
		t.Fatalf("expected the path once in %q", err)
	}
}

func TestDiscoverUnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	dir := filepath.Join(t.TempDir(), "locked")
	if err := os.Mkdir(dir, 0o000); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	if _, err := scan.Discover(dir); !errors.Is(err, services.ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}
}

func TestCodecs(t *testing.T) {
	got := scan.Codecs([]string{"/m/x.ogg", "/m/y.MP3", "/m/z.ogg"})
	if len(got) != 2 || got[0] != codec.MP3 || got[1] != codec.OGG {
		t.Fatalf("Codecs = %v", got)
	}
}
