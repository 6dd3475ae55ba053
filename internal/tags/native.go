package tags

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dhowden/tag"
)

// ReadNative reads tags embedded in the file without an external analyzer.
// It understands ID3 (mp3), FLAC, and Ogg Vorbis comments.
func ReadNative(path string) (Map, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	meta, err := tag.ReadFrom(file)
	if err != nil {
		return nil, fmt.Errorf("read tags from %s: %w", path, err)
	}

	result := make(Map)
	result.Set("artist", meta.Artist())
	result.Set("album", meta.Album())
	result.Set("title", meta.Title())
	if year := meta.Year(); year > 0 {
		result.Set("year", strconv.Itoa(year))
	}
	if track, _ := meta.Track(); track > 0 {
		result.Set("track", strconv.Itoa(track))
	}
	return result, nil
}
