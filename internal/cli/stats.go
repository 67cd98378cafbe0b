package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/fastxml/internal/configloader"
	"github.com/yaklabco/fastxml/internal/logging"
	"github.com/yaklabco/fastxml/pkg/config"
	"github.com/yaklabco/fastxml/pkg/reporter"
	"github.com/yaklabco/fastxml/pkg/runner"
)

type statsFlags struct {
	format  string
	jobs    int
	perFile bool
	sniff   bool
	ext     []string
}

func newStatsCommand() *cobra.Command {
	flags := &statsFlags{}

	cmd := &cobra.Command{
		Use:   "stats [paths...]",
		Short: "Scan files concurrently and report statistics",
		Long: `Discover XML files under the given paths, scan them concurrently, and
report node counts, byte totals, and nesting depth.

By default, scans all XML files in the current directory and
subdirectories. Specify paths to scan specific files or directories.

Examples:
  fastxml stats                   # Scan current directory
  fastxml stats data/             # Scan data directory
  fastxml stats --per-file        # Include a per-file breakdown
  fastxml stats --format json     # Output as JSON for CI
  fastxml stats --sniff exports/  # Detect XML in extensionless files`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json, pretty")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.perFile, "per-file", false, "include a per-file breakdown")
	cmd.Flags().BoolVar(&flags.sniff, "sniff", false, "detect XML content in extensionless files")
	cmd.Flags().StringSliceVar(&flags.ext, "ext", nil, "file extensions to scan (default .xml,.xsd,.xsl,.svg,.rss,.atom)")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, flags *statsFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Only flags the user actually set participate in the merge.
	cliCfg := &config.Config{}
	cliCfg.Format = config.OutputFormat(flags.format)
	cliCfg.Jobs = flags.jobs
	cliCfg.Extensions = flags.ext
	if cmd.Flags().Changed("sniff") {
		cliCfg.Sniff = flags.sniff
	}
	if colorMode, err := cmd.Flags().GetString("color"); err == nil && cmd.Flags().Changed("color") {
		cliCfg.Color = config.ColorMode(colorMode)
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config
	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	// --debug wins over the configured log level.
	if debug, err := cmd.Flags().GetBool("debug"); err == nil && !debug {
		logging.SetLevel(cfg.LogLevel)
	}

	runOpts := runner.Options{
		Paths:      args,
		WorkingDir: workDir,
		Extensions: cfg.Extensions,
		Sniff:      cfg.Sniff,
		Jobs:       cfg.Jobs,
	}

	logger.Debug("starting scan run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, cfg.EffectiveJobs(),
		logging.FieldSniff, runOpts.Sniff,
	)

	start := time.Now()
	result, err := runner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("scan run failed"), err)
	}

	logger.Debug("scan run finished",
		logging.FieldFiles, result.Stats.FilesProcessed,
		logging.FieldNodes, result.Stats.NodesTotal,
		logging.FieldBytes, result.Stats.BytesTotal,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldDuration, time.Since(start),
	)

	rep, err := reporter.New(reporter.Options{
		Writer:  cmd.OutOrStdout(),
		Format:  cfg.Format,
		Color:   string(cfg.Color),
		PerFile: flags.perFile,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return fmt.Errorf("%w: %d files could not be scanned",
			ErrScanFailed, result.Stats.FilesErrored)
	}
	return nil
}
