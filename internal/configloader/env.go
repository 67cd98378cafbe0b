package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/fastxml/pkg/config"
)

// envVarPrefix is the prefix for all fastxml environment variables.
const envVarPrefix = "FASTXML_"

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with FASTXML_
// (e.g., FASTXML_FORMAT).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "FORMAT"); v != "" {
		cfg.Format = config.OutputFormat(v)
	}
	if v := os.Getenv(envVarPrefix + "COLOR"); v != "" {
		cfg.Color = config.ColorMode(v)
	}
	if v := os.Getenv(envVarPrefix + "JOBS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid integer for %sJOBS: %q", envVarPrefix, v)
		}
		cfg.Jobs = n
	}
	if v := os.Getenv(envVarPrefix + "SNIFF"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sSNIFF: %q (expected true/false/1/0)", envVarPrefix, v)
		}
		cfg.Sniff = b
	}
	if v := os.Getenv(envVarPrefix + "EXTENSIONS"); v != "" {
		cfg.Extensions = parseSliceValue(v)
	}
	if v := os.Getenv(envVarPrefix + "LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return nil
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ListEnvVars returns all supported environment variables with their
// descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"FASTXML_FORMAT":     "Output format: text, json, or pretty",
		"FASTXML_COLOR":      "Color mode: auto, always, or never",
		"FASTXML_JOBS":       "Number of parallel workers (0 = auto)",
		"FASTXML_SNIFF":      "Content detection for extensionless files: true or false",
		"FASTXML_EXTENSIONS": "Comma-separated list of XML file extensions",
		"FASTXML_LOG_LEVEL":  "Log level: debug, info, warn, or error",
	}
}
