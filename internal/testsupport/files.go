package testsupport

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// WriteAudio creates path, and any missing parent directories, holding size
// bytes of a repeating sample ramp. The stub decoders stream it verbatim, so
// tests can compare the encoded destination with the source byte for byte.
// A size <= 0 writes a single byte.
func WriteAudio(t testing.TB, path string, size int64) {
	t.Helper()

	if size <= 0 {
		size = 1
	}
	payload := make([]byte, size)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	writeFixture(t, path, payload)
}

// ID3Frame is one text frame of an ID3v2.3 tag, such as TPE1 (artist) or
// TRCK (track).
type ID3Frame struct {
	ID   string
	Text string
}

// WriteID3 creates an mp3 fixture whose ID3v2.3 tag holds frames in order,
// followed by padding standing in for audio.
func WriteID3(t testing.TB, path string, frames ...ID3Frame) {
	t.Helper()

	var body bytes.Buffer
	for _, frame := range frames {
		body.WriteString(frame.ID)
		_ = binary.Write(&body, binary.BigEndian, uint32(len(frame.Text)+1))
		body.Write([]byte{0, 0})
		body.WriteByte(0) // ISO-8859-1
		body.WriteString(frame.Text)
	}

	size := body.Len()
	var data bytes.Buffer
	data.Write([]byte{'I', 'D', '3', 3, 0, 0})
	data.Write([]byte{byte(size >> 21 & 0x7f), byte(size >> 14 & 0x7f), byte(size >> 7 & 0x7f), byte(size & 0x7f)})
	data.Write(body.Bytes())
	data.Write(make([]byte, 128))
	writeFixture(t, path, data.Bytes())
}

func writeFixture(t testing.TB, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", path, err)
	}
}
