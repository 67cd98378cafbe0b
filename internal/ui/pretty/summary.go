package pretty

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/yaklabco/fastxml/pkg/runner"
)

const (
	summaryDividerWidth = 40
	summaryMaxWidth     = 100

	wordFile  = "file"
	wordFiles = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "1,204 nodes in 3 files (2.1 MB), max depth 7".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	fileWord := wordFiles
	if stats.FilesProcessed == 1 {
		fileWord = wordFile
	}

	msg := s.Bold.Render(fmt.Sprintf("%s nodes", humanize.Comma(int64(stats.NodesTotal)))) +
		fmt.Sprintf(" in %d %s ", stats.FilesProcessed, fileWord) +
		s.Dim.Render("("+humanize.Bytes(uint64(stats.BytesTotal))+")") +
		fmt.Sprintf(", max depth %d", stats.MaxDepth)

	if stats.FilesErrored > 0 {
		msg += ", " + s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored))
	}

	return msg + "\n"
}

// FormatSummaryTable formats run statistics as a per-file table followed
// by aggregate totals, sized to the terminal when one is attached.
func (s *Styles) FormatSummaryTable(result *runner.Result) string {
	var sb strings.Builder

	width := terminalWidth()

	sb.WriteString(s.SummaryTitle.Render("Scan summary") + "\n")
	sb.WriteString(s.Dim.Render(strings.Repeat("-", min(summaryDividerWidth, width))) + "\n")

	for _, outcome := range result.Files {
		if outcome.Error != nil {
			sb.WriteString(fmt.Sprintf("%s  %s\n",
				truncatePath(outcome.Path, width-20),
				s.Failure.Render(outcome.Error.Error())))
			continue
		}
		st := outcome.Stats
		sb.WriteString(fmt.Sprintf("%s  %s\n",
			truncatePath(outcome.Path, width-40),
			s.SummaryValue.Render(fmt.Sprintf("%d nodes, depth %d, %s",
				st.Nodes, st.MaxDepth, humanize.Bytes(uint64(st.Bytes))))))
	}

	sb.WriteString(s.Dim.Render(strings.Repeat("-", min(summaryDividerWidth, width))) + "\n")
	sb.WriteString(s.FormatSummaryOneLine(result.Stats))

	return sb.String()
}

// terminalWidth returns the stdout terminal width, clamped to a sane
// range, or the maximum when stdout is not a terminal.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return summaryMaxWidth
	}
	return min(width, summaryMaxWidth)
}

// truncatePath shortens long paths from the left, keeping the suffix.
func truncatePath(path string, limit int) string {
	if limit < 8 {
		limit = 8
	}
	if len(path) <= limit {
		return path
	}
	return "..." + path[len(path)-limit+3:]
}
