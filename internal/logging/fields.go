// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldFormat     = "format"
	FieldWorkingDir = "working_dir"

	// Scan fields.
	FieldNodes       = "nodes"
	FieldElements    = "elements"
	FieldTextNodes   = "text_nodes"
	FieldMaxDepth    = "max_depth"
	FieldBytes       = "bytes"
	FieldJobs        = "jobs"
	FieldSniff       = "sniff"
	FieldExtensions  = "extensions"
	FieldDuration    = "duration"
	FieldFilesFailed = "files_failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
