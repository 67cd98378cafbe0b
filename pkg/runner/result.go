package runner

// FileStats captures what one reader observed over one document.
type FileStats struct {
	// Bytes is the document size.
	Bytes int64

	// Nodes is the total number of node events.
	Nodes int

	// Elements, TextNodes, and EndElements break Nodes down by kind.
	Elements    int
	TextNodes   int
	EndElements int

	// SelfClosing counts elements with no separate close event, whether
	// written <x/> or collapsed from <x></x>.
	SelfClosing int

	// Attributes is the total attribute count across all elements.
	Attributes int

	// MaxDepth is the deepest reported nesting level.
	MaxDepth int

	// DistinctNames is the number of unique element names seen.
	DistinctNames int
}

// FileOutcome is the result of scanning a single file.
type FileOutcome struct {
	// Path is the file that was scanned.
	Path string

	// Stats holds the scan statistics. Nil if the file errored.
	Stats *FileStats

	// Error is set if the file could not be scanned.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files successfully scanned.
	FilesProcessed int

	// FilesErrored is the number of files that encountered errors.
	FilesErrored int

	// NodesByKind maps node kind names to counts across all files.
	NodesByKind map[string]int

	// NodesTotal is the total number of node events across all files.
	NodesTotal int

	// BytesTotal is the total number of document bytes scanned.
	BytesTotal int64

	// MaxDepth is the deepest nesting level seen in any file.
	MaxDepth int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each processed file, ordered
	// deterministically by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasFailures reports whether any file failed to scan.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// newStats creates a new Stats with initialized maps.
func newStats() Stats {
	return Stats{
		NodesByKind: make(map[string]int),
	}
}

// accumulate folds a file outcome into the aggregate statistics.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	s := outcome.Stats
	r.Stats.FilesProcessed++
	r.Stats.NodesTotal += s.Nodes
	r.Stats.BytesTotal += s.Bytes
	r.Stats.NodesByKind["element"] += s.Elements
	r.Stats.NodesByKind["text"] += s.TextNodes
	r.Stats.NodesByKind["end-element"] += s.EndElements
	if s.MaxDepth > r.Stats.MaxDepth {
		r.Stats.MaxDepth = s.MaxDepth
	}
}
