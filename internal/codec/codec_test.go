package codec_test

import (
	"testing"

	"sndconvert/internal/codec"
)

func TestFromPath(t *testing.T) {
	cases := []struct {
		path string
		want codec.Codec
		ok   bool
	}{
		{"/music/a.flac", codec.FLAC, true},
		{"/music/B.MP3", codec.MP3, true},
		{"/music/c.Ogg", codec.OGG, true},
		{"/music/d.wav", "", false},
		{"/music/readme", "", false},
	}
	for _, tc := range cases {
		got, ok := codec.FromPath(tc.path)
		if got != tc.want || ok != tc.ok {
			t.Errorf("FromPath(%q) = %q, %v; want %q, %v", tc.path, got, ok, tc.want, tc.ok)
		}
	}
}

func TestParse(t *testing.T) {
	if c, ok := codec.Parse(" .FLAC "); !ok || c != codec.FLAC {
		t.Fatalf("Parse(.FLAC) = %q, %v", c, ok)
	}
	if _, ok := codec.Parse("aac"); ok {
		t.Fatal("expected aac to be unknown")
	}
}

func TestDestinationPath(t *testing.T) {
	cases := []struct {
		path   string
		target codec.Codec
		want   string
	}{
		{"/music/a.flac", codec.MP3, "/music/a.mp3"},
		{"/music/a.FLAC", codec.MP3, "/music/a.mp3"},
		{"/music/b.wav", codec.OGG, "/music/b.ogg"},
		{"/music/c.mp3", codec.FLAC, "/music/c.flac"},
		{"/music/flac.d/c.ogg", codec.MP3, "/music/flac.d/c.mp3"},
		{"/music/notes.txt", codec.MP3, "/music/notes.txt"},
	}
	for _, tc := range cases {
		if got := codec.DestinationPath(tc.path, tc.target); got != tc.want {
			t.Errorf("DestinationPath(%q, %s) = %q, want %q", tc.path, tc.target, got, tc.want)
		}
	}
}
