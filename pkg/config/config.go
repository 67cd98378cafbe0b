// Package config defines core configuration types for fastxml.
// These are pure data structures with no dependency on the loader.
package config

import "runtime"

// OutputFormat specifies the output format for scan and stats results.
type OutputFormat string

const (
	FormatText   OutputFormat = "text"
	FormatJSON   OutputFormat = "json"
	FormatPretty OutputFormat = "pretty"
)

// IsValid returns true if the output format is known.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatPretty:
		return true
	default:
		return false
	}
}

// ColorMode controls when output is colorized.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (c ColorMode) IsValid() bool {
	switch c {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// Config is the root configuration structure for fastxml.
type Config struct {
	// Format selects the output format ("text", "json", or "pretty").
	Format OutputFormat `yaml:"format"`

	// Color controls output colorization ("auto", "always", "never").
	Color ColorMode `yaml:"color"`

	// Jobs is the maximum number of concurrent scan workers.
	// 0 or negative means "auto" (one per CPU).
	Jobs int `yaml:"jobs"`

	// Extensions is the set of file extensions (lowercase, with leading
	// dot) considered XML during directory discovery.
	Extensions []string `yaml:"extensions"`

	// Sniff enables content detection for extensionless files during
	// discovery.
	Sniff bool `yaml:"sniff"`

	// LogLevel sets the logger verbosity ("debug", "info", "warn", "error").
	LogLevel string `yaml:"log_level"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Format:     FormatText,
		Color:      ColorAuto,
		Jobs:       0,
		Extensions: DefaultExtensions(),
		Sniff:      false,
		LogLevel:   "info",
	}
}

// DefaultExtensions returns the default set of XML file extensions.
func DefaultExtensions() []string {
	return []string{".xml", ".xsd", ".xsl", ".svg", ".rss", ".atom"}
}

// EffectiveJobs resolves the worker count, defaulting to one per CPU.
func (c *Config) EffectiveJobs() int {
	if c.Jobs <= 0 {
		return runtime.NumCPU()
	}
	return c.Jobs
}
