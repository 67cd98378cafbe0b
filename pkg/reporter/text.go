package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/fastxml/internal/ui/pretty"
	"github.com/yaklabco/fastxml/pkg/config"
	"github.com/yaklabco/fastxml/pkg/reader"
	"github.com/yaklabco/fastxml/pkg/runner"
)

// newStyles resolves the style set for a text-family format: the plain
// "text" format always renders uncolored, "pretty" follows the color
// mode.
func newStyles(opts Options) *pretty.Styles {
	if opts.Format == config.FormatText {
		return pretty.NewStyles(false)
	}
	return pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer))
}

// TextReporter formats aggregate results as terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

func newTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: newStyles(opts),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || result.Stats.FilesDiscovered == 0 {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("No files to scan."))
		return nil
	}

	if r.opts.PerFile {
		fmt.Fprint(r.bw, r.styles.FormatSummaryTable(result))
		return nil
	}

	fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	return nil
}

// textNodeWriter streams node events as depth-indented lines.
type textNodeWriter struct {
	styles    *pretty.Styles
	bw        *bufio.Writer
	firstFile bool
}

func newTextNodeWriter(opts Options) *textNodeWriter {
	return &textNodeWriter{
		styles:    newStyles(opts),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
		firstFile: true,
	}
}

func (w *textNodeWriter) BeginFile(path string) error {
	if !w.firstFile {
		fmt.Fprintln(w.bw)
	}
	w.firstFile = false
	_, err := fmt.Fprintln(w.bw, w.styles.FormatFileHeader(path))
	return err
}

func (w *textNodeWriter) Node(n *reader.Node) error {
	_, err := fmt.Fprintln(w.bw, w.styles.FormatNode(n))
	return err
}

func (w *textNodeWriter) Close() error {
	return w.bw.Flush()
}
