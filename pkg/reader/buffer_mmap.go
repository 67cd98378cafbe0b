//go:build linux || darwin

package reader

import (
	"fmt"
	"os"
	"syscall"
)

// mappedBuffer is a read-only memory mapping of a whole file. The zero
// value (no mapping) is a valid empty buffer, used for zero-length files.
type mappedBuffer struct {
	data []byte
}

func (b *mappedBuffer) bytes() []byte { return b.data }

func (b *mappedBuffer) release() error {
	if b.data == nil {
		return nil
	}
	data := b.data
	b.data = nil
	if err := syscall.Munmap(data); err != nil {
		return fmt.Errorf("munmap: %w", err)
	}
	return nil
}

// openMapped maps path read-only with a sequential-access hint. Open,
// stat, and map failures surface synchronously with the path attached.
func openMapped(path string) (buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if st.Size() == 0 {
		return &mappedBuffer{}, nil
	}

	data, err := syscall.Mmap(int(f.Fd()), 0, int(st.Size()),
		syscall.PROT_READ, syscall.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}

	// The whole document is scanned front to back exactly once.
	_ = syscall.Madvise(data, syscall.MADV_SEQUENTIAL)

	return &mappedBuffer{data: data}, nil
}
