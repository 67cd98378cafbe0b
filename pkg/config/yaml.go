package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML parses YAML bytes into a Config. Unknown fields are rejected
// so typos in config files surface instead of being silently ignored.
func ParseYAML(data []byte) (*Config, error) {
	cfg := &Config{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	return cfg, nil
}

// MarshalYAML serializes a Config to YAML bytes.
func MarshalYAML(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return data, nil
}

// Merge overlays non-zero fields of other onto c, returning c.
// Slice fields replace rather than append.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.Color != "" {
		c.Color = other.Color
	}
	if other.Jobs != 0 {
		c.Jobs = other.Jobs
	}
	if len(other.Extensions) > 0 {
		c.Extensions = other.Extensions
	}
	if other.Sniff {
		c.Sniff = true
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	return c
}
