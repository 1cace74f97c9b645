package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/go-homedir"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.Find.Dir != "./.agent/docs/" {
		t.Errorf("Find.Dir = %q, want %q", cfg.Find.Dir, "./.agent/docs/")
	}
	if cfg.Find.Marker != "#notebooklm" {
		t.Errorf("Find.Marker = %q, want %q", cfg.Find.Marker, "#notebooklm")
	}
	if cfg.Merge.SourceDir != "" {
		t.Errorf("Merge.SourceDir = %q, want empty", cfg.Merge.SourceDir)
	}
	if cfg.Merge.Title != "VerseRidge Obsidian Export" {
		t.Errorf("Merge.Title = %q", cfg.Merge.Title)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	configContent := `log_level: debug
find:
  marker: "#brief"
merge:
  source_dir: /vault/notes
  output_file: /tmp/export.md
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Find.Marker != "#brief" {
		t.Errorf("Find.Marker = %q, want #brief", cfg.Find.Marker)
	}
	// Absent keys keep defaults.
	if cfg.Find.Dir != DefaultFindDir {
		t.Errorf("Find.Dir = %q, want default", cfg.Find.Dir)
	}
	if cfg.Merge.Title != DefaultExportTitle {
		t.Errorf("Merge.Title = %q, want default", cfg.Merge.Title)
	}
	if cfg.Merge.SourceDir != "/vault/notes" {
		t.Errorf("Merge.SourceDir = %q", cfg.Merge.SourceDir)
	}
	if cfg.Merge.OutputFile != "/tmp/export.md" {
		t.Errorf("Merge.OutputFile = %q", cfg.Merge.OutputFile)
	}
}

// TestLoadConfigMissingFile returns defaults without error
func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Find.Marker != DefaultMarker {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

// TestLoadConfigMalformed reports parse errors
func TestLoadConfigMalformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("find: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfigFromDirHonorsHomeEnv(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("log_level: warn\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(HomeEnv, home)

	cfg, err := LoadConfigFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
}

func TestConfigPathDefault(t *testing.T) {
	t.Setenv(HomeEnv, "")
	if got, want := ConfigPath("/work"), filepath.Join("/work", ".notectx", "config.yaml"); got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	marker := "#other"
	source := "/notes"

	cfg.MergeWithFlags(nil, nil, &marker, &source, nil, nil)

	if cfg.Find.Marker != "#other" {
		t.Errorf("Find.Marker = %q", cfg.Find.Marker)
	}
	if cfg.Merge.SourceDir != "/notes" {
		t.Errorf("Merge.SourceDir = %q", cfg.Merge.SourceDir)
	}
	if cfg.Merge.OutputFile != DefaultOutputFile {
		t.Errorf("nil flag overrode OutputFile: %q", cfg.Merge.OutputFile)
	}
}

func TestExpandPaths(t *testing.T) {
	home, err := homedir.Dir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Merge.SourceDir = "~/vault"
	if err := cfg.ExpandPaths(); err != nil {
		t.Fatalf("ExpandPaths() error = %v", err)
	}
	if want := filepath.Join(home, "vault"); cfg.Merge.SourceDir != want {
		t.Errorf("SourceDir = %q, want %q", cfg.Merge.SourceDir, want)
	}
	if cfg.Find.Dir != DefaultFindDir {
		t.Errorf("relative path changed: %q", cfg.Find.Dir)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "verbose" }, wantErr: "invalid log_level"},
		{name: "empty marker", mutate: func(c *Config) { c.Find.Marker = "  " }, wantErr: "find.marker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMerge(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.ValidateMerge(); err == nil {
		t.Error("expected error without source_dir")
	}

	cfg.Merge.SourceDir = "/notes"
	if err := cfg.ValidateMerge(); err != nil {
		t.Errorf("ValidateMerge() error = %v", err)
	}

	cfg.Merge.OutputFile = ""
	if err := cfg.ValidateMerge(); err == nil {
		t.Error("expected error for empty output_file")
	}
}

func TestValidateNormalizesLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = " DEBUG "
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}
