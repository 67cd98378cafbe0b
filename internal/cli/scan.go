package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/fastxml/internal/logging"
	"github.com/yaklabco/fastxml/pkg/config"
	"github.com/yaklabco/fastxml/pkg/reader"
	"github.com/yaklabco/fastxml/pkg/reporter"
)

// ErrScanFailed is returned when one or more files could not be scanned.
var ErrScanFailed = errors.New("scan failed")

type scanFlags struct {
	format string
	limit  int
}

func newScanCommand() *cobra.Command {
	flags := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan FILE...",
		Short: "Stream node events from XML files",
		Long: `Read XML files in a single pass and print every node event as it is
produced: elements with their depth, text content with entities decoded,
and end tags. Comments, processing instructions, CDATA sections, and
DOCTYPE declarations are skipped.

Examples:
  fastxml scan feed.xml               # Print all node events
  fastxml scan --limit 20 big.xml     # Stop after 20 events per file
  fastxml scan --format json doc.xml  # JSON Lines output for tooling`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, pretty")
	cmd.Flags().IntVar(&flags.limit, "limit", 0, "maximum node events per file (0 = unlimited)")

	return cmd
}

func runScan(cmd *cobra.Command, args []string, flags *scanFlags) error {
	logger := logging.Default()

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	nw, err := reporter.NewNodeWriter(reporter.Options{
		Writer: cmd.OutOrStdout(),
		Format: config.OutputFormat(flags.format),
		Color:  colorMode,
	})
	if err != nil {
		return fmt.Errorf("create node writer: %w", err)
	}

	var failed int
	for _, path := range args {
		if err := scanOne(nw, path, flags.limit); err != nil {
			logger.Error("scan failed", logging.FieldPath, path, logging.FieldError, err)
			failed++
		}
	}

	if err := nw.Close(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrScanFailed, failed, len(args))
	}
	return nil
}

// scanOne streams one file's node events into the writer, stopping after
// limit events when limit is positive.
func scanOne(nw reporter.NodeWriter, path string, limit int) error {
	r, err := reader.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := nw.BeginFile(path); err != nil {
		return err
	}

	var emitted int
	for r.Read() {
		if err := nw.Node(r.Current()); err != nil {
			return err
		}
		emitted++
		if limit > 0 && emitted >= limit {
			break
		}
	}
	return nil
}
