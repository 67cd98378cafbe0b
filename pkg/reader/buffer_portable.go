//go:build !linux && !darwin

package reader

import (
	"fmt"
	"os"
)

// openMapped reads the whole file onto the heap on platforms without a
// usable mmap. The node sequence is identical to the mapped path.
func openMapped(path string) (buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &heapBuffer{data: data}, nil
}
