package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/fastxml/pkg/reader"
	"github.com/yaklabco/fastxml/pkg/runner"
)

// jsonSchemaVersion identifies the JSON output schema for CI consumers.
const jsonSchemaVersion = "1"

// JSONOutput is the top-level JSON structure for stats output.
type JSONOutput struct {
	Version string          `json:"version"`
	Files   []JSONFileStats `json:"files"`
	Summary JSONSummary     `json:"summary"`
}

// JSONFileStats represents a single file's scan statistics.
type JSONFileStats struct {
	Path          string `json:"path"`
	Bytes         int64  `json:"bytes"`
	Nodes         int    `json:"nodes"`
	Elements      int    `json:"elements"`
	TextNodes     int    `json:"textNodes"`
	EndElements   int    `json:"endElements"`
	SelfClosing   int    `json:"selfClosing"`
	Attributes    int    `json:"attributes"`
	MaxDepth      int    `json:"maxDepth"`
	DistinctNames int    `json:"distinctNames"`
	Error         string `json:"error,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int            `json:"filesDiscovered"`
	FilesProcessed  int            `json:"filesProcessed"`
	FilesErrored    int            `json:"filesErrored"`
	NodesTotal      int            `json:"nodesTotal"`
	NodesByKind     map[string]int `json:"nodesByKind"`
	BytesTotal      int64          `json:"bytesTotal"`
	MaxDepth        int            `json:"maxDepth"`
}

// JSONReporter renders aggregate results as a single JSON document.
type JSONReporter struct {
	opts Options
}

func newJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{opts: opts}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) error {
	out := JSONOutput{
		Version: jsonSchemaVersion,
		Files:   make([]JSONFileStats, 0, len(result.Files)),
	}

	for _, outcome := range result.Files {
		fs := JSONFileStats{Path: outcome.Path}
		if outcome.Error != nil {
			fs.Error = outcome.Error.Error()
		} else if outcome.Stats != nil {
			s := outcome.Stats
			fs.Bytes = s.Bytes
			fs.Nodes = s.Nodes
			fs.Elements = s.Elements
			fs.TextNodes = s.TextNodes
			fs.EndElements = s.EndElements
			fs.SelfClosing = s.SelfClosing
			fs.Attributes = s.Attributes
			fs.MaxDepth = s.MaxDepth
			fs.DistinctNames = s.DistinctNames
		}
		out.Files = append(out.Files, fs)
	}

	out.Summary = JSONSummary{
		FilesDiscovered: result.Stats.FilesDiscovered,
		FilesProcessed:  result.Stats.FilesProcessed,
		FilesErrored:    result.Stats.FilesErrored,
		NodesTotal:      result.Stats.NodesTotal,
		NodesByKind:     result.Stats.NodesByKind,
		BytesTotal:      result.Stats.BytesTotal,
		MaxDepth:        result.Stats.MaxDepth,
	}

	enc := json.NewEncoder(r.opts.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// JSONNode is one node event in JSON Lines scan output.
type JSONNode struct {
	Kind        string `json:"kind"`
	Name        string `json:"name,omitempty"`
	Depth       int    `json:"depth"`
	Value       string `json:"value,omitempty"`
	SelfClosing bool   `json:"selfClosing,omitempty"`
}

// jsonFileMarker starts a file's event stream in JSON Lines output.
type jsonFileMarker struct {
	File string `json:"file"`
}

// jsonNodeWriter streams node events as JSON Lines: one {"file": ...}
// marker per file followed by one object per node.
type jsonNodeWriter struct {
	bw  *bufio.Writer
	enc *json.Encoder
}

func newJSONNodeWriter(opts Options) *jsonNodeWriter {
	bw := bufio.NewWriterSize(opts.Writer, bufWriterSize)
	return &jsonNodeWriter{
		bw:  bw,
		enc: json.NewEncoder(bw),
	}
}

func (w *jsonNodeWriter) BeginFile(path string) error {
	return w.enc.Encode(jsonFileMarker{File: path})
}

func (w *jsonNodeWriter) Node(n *reader.Node) error {
	return w.enc.Encode(JSONNode{
		Kind:        n.Kind().String(),
		Name:        n.Name(),
		Depth:       n.Depth(),
		Value:       n.Value(),
		SelfClosing: n.SelfClosing(),
	})
}

func (w *jsonNodeWriter) Close() error {
	return w.bw.Flush()
}
