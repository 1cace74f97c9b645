package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/notectx/internal/config"
	"github.com/harrison/notectx/internal/logger"
)

// loadConfig reads the config file selected by --config (or the default
// location), applies the persistent and command-specific flag overrides, then
// expands and validates it.
func loadConfig(cmd *cobra.Command, apply func(cfg *config.Config)) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to read --config flag: %w", err)
	}

	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg.MergeWithFlags(changedString(cmd, "log-level"), nil, nil, nil, nil, nil)
	if apply != nil {
		apply(cfg)
	}

	if err := cfg.ExpandPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// changedString returns the flag's value only when it was set on the command line.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &value
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *logger.ConsoleLogger {
	return logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
}
