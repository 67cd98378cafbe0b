package reader

import (
	"fmt"
	"io"
)

// Stream acquisition parameters: fixed-size chunk reads into a growable
// heap buffer, shrunk to exact content length once the stream ends.
const (
	readChunkSize   = 1 << 20 // 1 MiB per read
	initialCapacity = 4 << 20 // 4 MiB before the first growth
)

// buffer owns an immutable byte region for the lifetime of a document.
// Release is idempotent; after release the region reads as empty.
type buffer interface {
	bytes() []byte
	release() error
}

// heapBuffer holds document bytes on the Go heap. It backs both the
// stream acquisition path and caller-supplied byte slices.
type heapBuffer struct {
	data []byte
}

func (b *heapBuffer) bytes() []byte { return b.data }

func (b *heapBuffer) release() error {
	b.data = nil
	return nil
}

// readStream drains r into a heap buffer. A zero-length read without an
// error also ends the stream, matching readers that signal end-of-input
// that way.
func readStream(r io.Reader) (*heapBuffer, error) {
	buf := make([]byte, 0, initialCapacity)
	chunk := make([]byte, readChunkSize)

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			buf = append(buf, chunk[:n]...)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read stream: %w", err)
		}
		if n == 0 {
			break
		}
	}

	if len(buf) == 0 {
		return &heapBuffer{}, nil
	}

	// Shrink to exact content length.
	if cap(buf) > len(buf) {
		exact := make([]byte, len(buf))
		copy(exact, buf)
		buf = exact
	}

	return &heapBuffer{data: buf}, nil
}
