package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ToolOption customizes the stub audio tools written by WriteAudioTools.
type ToolOption func(*stubBehavior)

type stubBehavior struct {
	decodeExit map[string]int
	encodeExit map[string]int
	output     map[string]string
	skip       map[string]bool
}

// WithDecodeExit makes the decoding mode of tool exit with code after
// streaming its input.
func WithDecodeExit(tool string, code int) ToolOption {
	return func(s *stubBehavior) { s.decodeExit[tool] = code }
}

// WithEncodeExit makes the encoding mode of tool exit with code after writing
// its output file.
func WithEncodeExit(tool string, code int) ToolOption {
	return func(s *stubBehavior) { s.encodeExit[tool] = code }
}

// WithAnalyzerOutput sets the listing an analyzer stub prints.
func WithAnalyzerOutput(tool, output string) ToolOption {
	return func(s *stubBehavior) { s.output[tool] = output }
}

// WithAnalyzerExit makes an analyzer stub exit with code.
func WithAnalyzerExit(tool string, code int) ToolOption {
	return func(s *stubBehavior) { s.decodeExit[tool] = code }
}

// WithoutTool leaves name out of the stub directory.
func WithoutTool(name string) ToolOption {
	return func(s *stubBehavior) { s.skip[name] = true }
}

// WriteAudioTools writes shell stubs for lame, flac, metaflac, oggdec, oggenc,
// ogginfo, and mp3info into dir and returns dir. Decoders copy the input file
// to stdout, encoders copy stdin to the output path, analyzers print their
// configured listing. Every invocation is appended to <dir>/<tool>.calls.
func WriteAudioTools(t testing.TB, dir string, opts ...ToolOption) string {
	t.Helper()

	behavior := &stubBehavior{
		decodeExit: map[string]int{},
		encodeExit: map[string]int{},
		output:     map[string]string{},
		skip:       map[string]bool{},
	}
	for _, opt := range opts {
		opt(behavior)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir tool dir: %v", err)
	}

	scripts := map[string]string{
		"lame": fmt.Sprintf(`if [ "$1" = "--decode" ]; then
  cat "$3"
  exit %d
fi
eval "out=\${$#}"
cat > "$out"
exit %d
`, behavior.decodeExit["lame"], behavior.encodeExit["lame"]),
		"flac": fmt.Sprintf(`if [ "$1" = "-dc" ]; then
  cat "$2"
  exit %d
fi
out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "-o" ]; then out="$2"; shift; fi
  shift
done
cat > "$out"
exit %d
`, behavior.decodeExit["flac"], behavior.encodeExit["flac"]),
		"oggdec": fmt.Sprintf(`eval "in=\${$#}"
cat "$in"
exit %d
`, behavior.decodeExit["oggdec"]),
		"oggenc": fmt.Sprintf(`out=""
while [ $# -gt 0 ]; do
  if [ "$1" = "-o" ]; then out="$2"; shift; fi
  shift
done
cat > "$out"
exit %d
`, behavior.encodeExit["oggenc"]),
	}
	for _, analyzer := range []string{"ogginfo", "metaflac", "mp3info"} {
		scripts[analyzer] = fmt.Sprintf("cat <<'SNDCONVERT_EOF'\n%s\nSNDCONVERT_EOF\nexit %d\n",
			strings.TrimRight(behavior.output[analyzer], "\n"), behavior.decodeExit[analyzer])
	}

	for name, body := range scripts {
		if behavior.skip[name] {
			continue
		}
		target := filepath.Join(dir, name)
		script := "#!/bin/sh\nprintf '%s\\n' \"$*\" >> \"$0.calls\"\n" + body
		if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}
	return dir
}

// Calls returns the argument lines recorded by a stub tool, one per
// invocation. A tool that never ran yields nil.
func Calls(t testing.TB, dir, tool string) []string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, tool+".calls"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("read %s calls: %v", tool, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// CallCount sums the recorded invocations of every tool in dir.
func CallCount(t testing.TB, dir string) int {
	t.Helper()

	total := 0
	for _, tool := range []string{"lame", "flac", "metaflac", "oggdec", "oggenc", "ogginfo", "mp3info"} {
		total += len(Calls(t, dir, tool))
	}
	return total
}
