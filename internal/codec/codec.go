package codec

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Codec identifies an audio format by its canonical file extension.
type Codec string

const (
	MP3  Codec = "mp3"
	FLAC Codec = "flac"
	OGG  Codec = "ogg"
)

// All lists the supported codecs in a stable order.
var All = []Codec{MP3, FLAC, OGG}

// Parse maps a configured codec name onto a known Codec.
func Parse(name string) (Codec, bool) {
	name = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".")
	for _, c := range All {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// FromPath infers the codec from the file extension, case-insensitively.
func FromPath(path string) (Codec, bool) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", false
	}
	return Parse(ext)
}

// Extension returns the file extension including the leading dot.
func (c Codec) Extension() string {
	return "." + string(c)
}

func (c Codec) String() string {
	return string(c)
}

var sourceExtension = regexp.MustCompile(`(?i)\.(wav|flac|ogg|mp3)$`)

// DestinationPath replaces a known audio extension at the end of path with
// the extension of target. Paths without a known extension are returned
// unchanged.
func DestinationPath(path string, target Codec) string {
	return sourceExtension.ReplaceAllLiteralString(path, target.Extension())
}
