package encoding

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"sndconvert/internal/codec"
	"sndconvert/internal/services"
)

const stderrTailBytes = 4 * 1024

// PipeResult holds the exit statuses of both sides of a pipe. An exit code of
// -1 means the process was terminated by a signal.
type PipeResult struct {
	EncodeExit   int
	DecodeExit   int
	EncodeStderr string
	DecodeStderr string
	Duration     time.Duration
}

// PipeRunner streams a decoder into an encoder.
type PipeRunner struct{}

// Run starts decode and encode with decode's standard output connected to
// encode's standard input, then waits for the encoder followed by the
// decoder. The error is reserved for processes that could not be started or
// waited on; exit statuses are reported in the result. Cancelling ctx kills
// both processes.
func (PipeRunner) Run(ctx context.Context, decode, encode codec.Invocation) (PipeResult, error) {
	reader, writer, err := os.Pipe()
	if err != nil {
		return PipeResult{}, services.Wrap(services.ErrExternalTool, "encoding", "create pipe", "", err)
	}

	decodeStderr := newTailBuffer(stderrTailBytes)
	encodeStderr := newTailBuffer(stderrTailBytes)

	decodeCmd := exec.CommandContext(ctx, decode.Binary, decode.Args...)
	decodeCmd.Stdout = writer
	decodeCmd.Stderr = decodeStderr

	encodeCmd := exec.CommandContext(ctx, encode.Binary, encode.Args...)
	encodeCmd.Stdin = reader
	encodeCmd.Stdout = encodeStderr
	encodeCmd.Stderr = encodeStderr

	started := time.Now()
	if err := decodeCmd.Start(); err != nil {
		reader.Close()
		writer.Close()
		return PipeResult{}, services.Wrap(services.ErrExternalTool, "encoding", "start decoder", decode.Binary, err)
	}
	if err := encodeCmd.Start(); err != nil {
		reader.Close()
		writer.Close()
		_ = decodeCmd.Process.Kill()
		_ = decodeCmd.Wait()
		return PipeResult{}, services.Wrap(services.ErrExternalTool, "encoding", "start encoder", encode.Binary, err)
	}
	// The children hold their own copies; keeping ours open would stop the
	// encoder from ever seeing EOF.
	reader.Close()
	writer.Close()

	encodeErr := encodeCmd.Wait()
	decodeErr := decodeCmd.Wait()

	result := PipeResult{
		EncodeStderr: encodeStderr.String(),
		DecodeStderr: decodeStderr.String(),
		Duration:     time.Since(started),
	}
	if result.EncodeExit, err = exitStatus(encodeErr); err != nil {
		return result, services.Wrap(services.ErrExternalTool, "encoding", "wait for encoder", encode.Binary, err)
	}
	if result.DecodeExit, err = exitStatus(decodeErr); err != nil {
		return result, services.Wrap(services.ErrExternalTool, "encoding", "wait for decoder", decode.Binary, err)
	}
	return result, nil
}

func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	mu    sync.Mutex
	limit int
	buf   []byte
}

func newTailBuffer(limit int) *tailBuffer {
	return &tailBuffer{limit: limit}
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf = append(t.buf, p...)
	if over := len(t.buf) - t.limit; over > 0 {
		t.buf = append(t.buf[:0], t.buf[over:]...)
	}
	return len(p), nil
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.TrimSpace(string(t.buf))
}
