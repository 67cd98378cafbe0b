// Package cli provides the Cobra command structure for fastxml.
package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/fastxml/internal/configloader"
	"github.com/yaklabco/fastxml/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root fastxml command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "fastxml",
		Short: "A single-pass, zero-copy XML scanner",
		Long: `fastxml scans XML documents in a single forward pass without building
a document tree. It reports elements, text, and end tags as a flat event
stream, tolerates malformed markup, and memory-maps files where the
platform allows.

` + envHelp(),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newStatsCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// envHelp renders the supported environment variables for the root help
// text.
func envHelp() string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("Environment variables:\n")
	for _, name := range names {
		sb.WriteString("  ")
		sb.WriteString(name)
		sb.WriteString("\n        ")
		sb.WriteString(vars[name])
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
