package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/fastxml/pkg/reader"
)

// Run discovers files under opts.Paths and scans them concurrently, one
// independent reader per file. It returns a deterministic collection of
// FileOutcome values and aggregate stats.
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Files: make([]FileOutcome, 0, len(files)),
		Stats: newStats(),
	}
	result.Stats.FilesDiscovered = len(files)

	if len(files) == 0 {
		return result, nil
	}

	// Determine job count.
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup

	// Start workers.
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(ctx, workCh, outCh)
		}()
	}

	// Feed work in a separate goroutine.
	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	// Close outCh when all workers are done.
	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Collect, then rebuild in deterministic order since workers finish
	// out of order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}

	return result, nil
}

// worker scans files from workCh and sends outcomes to outCh.
func worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := FileOutcome{Path: path}

		stats, err := ScanFile(path)
		if err != nil {
			outcome.Error = err
		} else {
			outcome.Stats = stats
		}

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// ScanFile drives one reader over one file and collects statistics.
func ScanFile(path string) (*FileStats, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	r, err := reader.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	stats := &FileStats{Bytes: info.Size()}
	names := make(map[string]struct{})

	for r.Read() {
		stats.Nodes++
		switch r.Kind() {
		case reader.KindElement:
			stats.Elements++
			stats.Attributes += r.AttrCount()
			if r.SelfClosing() {
				stats.SelfClosing++
			}
			names[r.Name()] = struct{}{}
		case reader.KindText:
			stats.TextNodes++
		case reader.KindEndElement:
			stats.EndElements++
		}
		if r.Depth() > stats.MaxDepth {
			stats.MaxDepth = r.Depth()
		}
	}
	stats.DistinctNames = len(names)

	return stats, nil
}
