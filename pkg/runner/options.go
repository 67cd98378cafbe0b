// Package runner provides multi-file scan orchestration. Each file is
// scanned by its own independent reader; the readers share nothing, so
// files can be processed concurrently without synchronization.
package runner

import "github.com/yaklabco/fastxml/pkg/config"

// Options controls multi-file scan behavior.
type Options struct {
	// Paths are the user-specified paths (files or directories) to scan.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered XML. Defaults to config.DefaultExtensions().
	Extensions []string

	// Sniff enables content-based detection for files whose extension
	// does not match: the first bytes are classified and files detected
	// as XML are included.
	Sniff bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (one per CPU).
	Jobs int
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
