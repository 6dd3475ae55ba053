// Package scan lists the audio files a run should consider.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"sndconvert/internal/codec"
	"sndconvert/internal/services"
)

// Discover returns the regular files directly inside dir whose extension
// names a known codec, case-insensitively, sorted lexicographically.
// Subdirectories are not descended into. Any failure to stat or list dir is
// reported as services.ErrDirectoryNotFound.
func Discover(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrDirectoryNotFound, "scan", "stat directory", "", err)
	}
	if !info.IsDir() {
		return nil, services.Wrap(services.ErrDirectoryNotFound, "scan", "stat directory",
			fmt.Sprintf("%s is not a directory", dir), nil)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrDirectoryNotFound, "scan", "read directory", "", err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if _, ok := codec.FromPath(entry.Name()); ok {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Codecs returns the distinct codecs of paths in codec.All order.
func Codecs(paths []string) []codec.Codec {
	present := make(map[codec.Codec]bool)
	for _, path := range paths {
		if c, ok := codec.FromPath(path); ok {
			present[c] = true
		}
	}
	var result []codec.Codec
	for _, c := range codec.All {
		if present[c] {
			result = append(result, c)
		}
	}
	return result
}
