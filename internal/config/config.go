package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"

	"github.com/harrison/notectx/internal/logger"
)

// Defaults used when the config file leaves a key unset.
const (
	DefaultFindDir     = "./.agent/docs/"
	DefaultMarker      = "#notebooklm"
	DefaultOutputFile  = "./.agent/docs/VerseRidge_Obsidian_Export.md"
	DefaultExportTitle = "VerseRidge Obsidian Export"
)

// FindConfig configures the brief scan.
type FindConfig struct {
	// Dir is the directory scanned when no positional argument is given
	Dir string `yaml:"dir"`

	// Marker is the substring searched for, case-insensitively
	Marker string `yaml:"marker"`
}

// MergeConfig configures the export merge.
type MergeConfig struct {
	// SourceDir holds the markdown notes to concatenate
	SourceDir string `yaml:"source_dir"`

	// OutputFile is the aggregated export written by merge
	OutputFile string `yaml:"output_file"`

	// Title is written as the export's top-level heading
	Title string `yaml:"title"`
}

// Config represents notectx configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	Find  FindConfig  `yaml:"find"`
	Merge MergeConfig `yaml:"merge"`
}

// DefaultConfig returns a Config with the built-in defaults.
// Merge.SourceDir has no default: the note vault location is machine specific.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Find: FindConfig{
			Dir:    DefaultFindDir,
			Marker: DefaultMarker,
		},
		Merge: MergeConfig{
			SourceDir:  "",
			OutputFile: DefaultOutputFile,
			Title:      DefaultExportTitle,
		},
	}
}

// LoadConfig loads configuration from path.
// A missing file yields the defaults; a malformed file is an error.
// Keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .notectx/config.yaml under dir,
// or from $NOTECTX_HOME/config.yaml when that variable is set.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(ConfigPath(dir))
}

// MergeWithFlags applies CLI flag values on top of the configuration.
// Nil pointers leave the configured value untouched.
func (c *Config) MergeWithFlags(logLevel, findDir, marker, sourceDir, outputFile, title *string) {
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
	if findDir != nil {
		c.Find.Dir = *findDir
	}
	if marker != nil {
		c.Find.Marker = *marker
	}
	if sourceDir != nil {
		c.Merge.SourceDir = *sourceDir
	}
	if outputFile != nil {
		c.Merge.OutputFile = *outputFile
	}
	if title != nil {
		c.Merge.Title = *title
	}
}

// ExpandPaths replaces a leading "~" in every configured path with the
// user's home directory.
func (c *Config) ExpandPaths() error {
	paths := []*string{&c.Find.Dir, &c.Merge.SourceDir, &c.Merge.OutputFile}
	for _, p := range paths {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expand path %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// Validate checks the settings every command relies on. The log level is
// normalized to lowercase.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if !logger.IsValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: %s", c.LogLevel, strings.Join(logger.ValidLevels, ", "))
	}
	if strings.TrimSpace(c.Find.Marker) == "" {
		return fmt.Errorf("find.marker cannot be empty")
	}
	return nil
}

// ValidateMerge checks the settings the merge command needs.
func (c *Config) ValidateMerge() error {
	if c.Merge.SourceDir == "" {
		return fmt.Errorf("merge.source_dir is not set (use --source or the config file)")
	}
	if c.Merge.OutputFile == "" {
		return fmt.Errorf("merge.output_file cannot be empty")
	}
	return nil
}
