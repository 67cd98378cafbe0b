// Package reporter renders scan output: per-node event streams for the
// scan command and aggregate results for the stats command, in plain
// text, styled, or machine-readable JSON form.
package reporter

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/yaklabco/fastxml/pkg/config"
	"github.com/yaklabco/fastxml/pkg/reader"
	"github.com/yaklabco/fastxml/pkg/runner"
)

// bufWriterSize is the buffer size for output writers.
const bufWriterSize = 64 * 1024

// Options controls reporter construction.
type Options struct {
	// Format selects the output format.
	Format config.OutputFormat

	// Writer receives the output. Defaults to stdout.
	Writer io.Writer

	// Color is the color mode ("auto", "always", "never") for styled
	// formats.
	Color string

	// PerFile includes a per-file breakdown in stats output.
	PerFile bool
}

func (o Options) withDefaults() Options {
	if o.Writer == nil {
		o.Writer = os.Stdout
	}
	if o.Format == "" {
		o.Format = config.FormatText
	}
	if o.Color == "" {
		o.Color = string(config.ColorAuto)
	}
	return o
}

// Reporter formats and writes an aggregate scan result.
type Reporter interface {
	// Report writes formatted output for the given result.
	Report(ctx context.Context, result *runner.Result) error
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	opts = opts.withDefaults()

	switch opts.Format {
	case config.FormatText, config.FormatPretty:
		return newTextReporter(opts), nil
	case config.FormatJSON:
		return newJSONReporter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// NodeWriter receives a stream of node events during a scan.
type NodeWriter interface {
	// BeginFile starts the stream for one file.
	BeginFile(path string) error

	// Node writes one node event. The view is only valid for the
	// duration of the call.
	Node(n *reader.Node) error

	// Close flushes any buffered output.
	Close() error
}

// NewNodeWriter creates a NodeWriter for the specified options.
func NewNodeWriter(opts Options) (NodeWriter, error) {
	opts = opts.withDefaults()

	switch opts.Format {
	case config.FormatText, config.FormatPretty:
		return newTextNodeWriter(opts), nil
	case config.FormatJSON:
		return newJSONNodeWriter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", opts.Format)
	}
}
