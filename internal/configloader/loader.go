// Package configloader resolves the effective configuration by merging
// defaults, discovered config files, environment variables, and CLI
// flags.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/fastxml/pkg/config"
	"github.com/yaklabco/fastxml/pkg/fsutil"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreProjectConfig skips the upward project config search.
	IgnoreProjectConfig bool

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the config files that were actually loaded,
	// in merge order.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (FASTXML_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.fastxml.yml upward search)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{}

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	cfg := config.NewConfig()

	if opts.ExplicitPath != "" {
		explicitCfg, err := loadConfigFile(ctx, opts.ExplicitPath)
		if err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		cfg.Merge(explicitCfg)
		result.LoadedFrom = append(result.LoadedFrom, opts.ExplicitPath)
	} else if !opts.IgnoreProjectConfig {
		projectPath, err := FindProjectConfig(ctx, workDir)
		if err != nil {
			return nil, err
		}
		if projectPath != "" {
			projectCfg, err := loadConfigFile(ctx, projectPath)
			if err != nil {
				return nil, fmt.Errorf("load project config: %w", err)
			}
			cfg.Merge(projectCfg)
			result.LoadedFrom = append(result.LoadedFrom, projectPath)
		}
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if opts.CLIConfig != nil {
		cfg.Merge(opts.CLIConfig)
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	result.Config = cfg
	return result, nil
}

// loadConfigFile loads a configuration from a YAML file.
func loadConfigFile(ctx context.Context, path string) (*config.Config, error) {
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	cfg, err := config.ParseYAML(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}
