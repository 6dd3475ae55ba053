package tags

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// LineRule recognizes tag lines in an analyzer listing.
type LineRule struct {
	Name   string
	match  *regexp.Regexp
	prefix *regexp.Regexp
}

var (
	// VorbisCommentLines matches indented key=value lines as printed by
	// ogginfo (and by mp3info with the format string the mp3 codec passes).
	VorbisCommentLines = LineRule{
		Name:   "vorbis-comment",
		match:  regexp.MustCompile(`^\s+\w+=`),
		prefix: regexp.MustCompile(`^\s+`),
	}
	// MetaflacCommentLines matches "    comment[3]: KEY=value" lines from
	// metaflac --list --block-type=VORBIS_COMMENT.
	MetaflacCommentLines = LineRule{
		Name:   "metaflac-comment",
		match:  regexp.MustCompile(`^\s+comment\[\d+\]:`),
		prefix: regexp.MustCompile(`^\s+comment\[\d+\]:\s?`),
	}
)

// Parse scans an analyzer listing line by line. Matching lines are stripped
// of the rule prefix and split once on "="; other lines are ignored. A
// listing without tag lines yields an empty Map. A line longer than 1 MiB
// stops the scan; the tags read before it are returned with the error.
func Parse(output []byte, rule LineRule) (Map, error) {
	result := make(Map)
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if !rule.match.MatchString(line) {
			continue
		}
		record := rule.prefix.ReplaceAllString(line, "")
		key, value, ok := strings.Cut(record, "=")
		if !ok {
			continue
		}
		result.Set(key, value)
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("scan %s listing: %w", rule.Name, err)
	}
	return result, nil
}

// Analyze runs the analyzer binary with args and parses its standard output.
// A nonzero exit is reported as an error together with whatever tags were
// printed before the failure.
func Analyze(ctx context.Context, binary string, args []string, rule LineRule) (Map, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	result, parseErr := Parse(stdout.Bytes(), rule)
	if err == nil && parseErr != nil {
		return result, fmt.Errorf("analyze with %s: %w", binary, parseErr)
	}
	if err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return result, fmt.Errorf("analyze with %s: %w: %s", binary, err, detail)
		}
		return result, fmt.Errorf("analyze with %s: %w", binary, err)
	}
	return result, nil
}
