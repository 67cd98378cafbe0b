package configloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/fastxml/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: tmpDir,
		IgnoreEnv:  true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.Format != config.FormatText {
		t.Errorf("expected format %q, got %q", config.FormatText, result.Config.Format)
	}
	if result.Config.Color != config.ColorAuto {
		t.Errorf("expected color %q, got %q", config.ColorAuto, result.Config.Color)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	configContent := `
format: json
jobs: 4
sniff: true
`
	configPath := filepath.Join(tmpDir, ".fastxml.yml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: tmpDir,
		IgnoreEnv:  true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format json, got %q", result.Config.Format)
	}
	if result.Config.Jobs != 4 {
		t.Errorf("expected jobs 4, got %d", result.Config.Jobs)
	}
	if !result.Config.Sniff {
		t.Error("expected sniff enabled")
	}
	if len(result.LoadedFrom) != 1 || result.LoadedFrom[0] != configPath {
		t.Errorf("expected LoadedFrom [%s], got %v", configPath, result.LoadedFrom)
	}
}

func TestLoad_ProjectConfigUpwardSearch(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	configPath := filepath.Join(tmpDir, ".fastxml.yml")
	if err := os.WriteFile(configPath, []byte("format: pretty\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: nested,
		IgnoreEnv:  true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatPretty {
		t.Errorf("expected format pretty, got %q", result.Config.Format)
	}
}

func TestLoad_UpwardSearchStopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Config above the VCS root must not be found.
	if err := os.WriteFile(filepath.Join(tmpDir, ".fastxml.yml"), []byte("format: json\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	repo := filepath.Join(tmpDir, "repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: repo,
		IgnoreEnv:  true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatText {
		t.Errorf("expected default format, got %q", result.Config.Format)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	// Project config should be ignored when an explicit path is given.
	if err := os.WriteFile(filepath.Join(tmpDir, ".fastxml.yml"), []byte("format: text\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	customPath := filepath.Join(tmpDir, "custom.yml")
	if err := os.WriteFile(customPath, []byte("format: json\ncolor: never\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir:   tmpDir,
		ExplicitPath: customPath,
		IgnoreEnv:    true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format json, got %q", result.Config.Format)
	}
	if result.Config.Color != config.ColorNever {
		t.Errorf("expected color never, got %q", result.Config.Color)
	}
	if len(result.LoadedFrom) != 1 || result.LoadedFrom[0] != customPath {
		t.Errorf("expected LoadedFrom [%s], got %v", customPath, result.LoadedFrom)
	}
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir:   t.TempDir(),
		ExplicitPath: filepath.Join(t.TempDir(), "does-not-exist.yml"),
		IgnoreEnv:    true,
	})
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, ".fastxml.yml")
	if err := os.WriteFile(configPath, []byte("formt: json\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir: tmpDir,
		IgnoreEnv:  true,
	})
	if err == nil {
		t.Fatal("expected error for unknown config field")
	}
}

func TestLoad_EnvOverridesProjectConfig(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, ".fastxml.yml"), []byte("format: text\njobs: 2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("FASTXML_FORMAT", "json")
	t.Setenv("FASTXML_JOBS", "8")

	result, err := Load(context.Background(), LoadOptions{WorkingDir: tmpDir})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected env format to win, got %q", result.Config.Format)
	}
	if result.Config.Jobs != 8 {
		t.Errorf("expected env jobs to win, got %d", result.Config.Jobs)
	}
}

func TestLoad_CLIOverridesEnv(t *testing.T) {
	t.Setenv("FASTXML_FORMAT", "json")

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: t.TempDir(),
		CLIConfig:  &config.Config{Format: config.FormatPretty},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Format != config.FormatPretty {
		t.Errorf("expected CLI format to win, got %q", result.Config.Format)
	}
}

func TestLoad_InvalidEnvValue(t *testing.T) {
	t.Setenv("FASTXML_JOBS", "many")

	_, err := Load(context.Background(), LoadOptions{WorkingDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error for non-integer FASTXML_JOBS")
	}
	if !strings.Contains(err.Error(), "FASTXML_JOBS") {
		t.Errorf("error should name the variable, got: %v", err)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), LoadOptions{
		WorkingDir: t.TempDir(),
		IgnoreEnv:  true,
		CLIConfig:  &config.Config{Format: "csv"},
	})
	if err == nil {
		t.Fatal("expected validation error for unknown format")
	}
	if !strings.Contains(err.Error(), "format") {
		t.Errorf("error should name the field, got: %v", err)
	}
}

func TestLoad_ValidationWarnings(t *testing.T) {
	t.Parallel()

	result, err := Load(context.Background(), LoadOptions{
		WorkingDir: t.TempDir(),
		IgnoreEnv:  true,
		CLIConfig:  &config.Config{Extensions: []string{"xml"}, LogLevel: "loud"},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", result.Warnings)
	}
}

func TestValidate_Nil(t *testing.T) {
	t.Parallel()

	result := Validate(nil)
	if !result.Valid() {
		t.Error("nil config should validate")
	}
	if result.HasWarnings() {
		t.Error("nil config should have no warnings")
	}
}

func TestValidate_NegativeJobs(t *testing.T) {
	t.Parallel()

	result := Validate(&config.Config{Jobs: -1})
	if result.Valid() {
		t.Error("expected error for negative jobs")
	}
}

func TestParseSliceValue(t *testing.T) {
	t.Parallel()

	got := parseSliceValue(" .xml, .svg ,, .rss ")
	want := []string{".xml", ".svg", ".rss"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
