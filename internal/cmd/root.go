package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for notectx
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notectx",
		Short: "Gather notebook context from markdown notes",
		Long: `notectx prepares markdown notes for NotebookLM.

It finds briefs tagged with the #notebooklm marker and merges a directory
of notes into a single export file with one "# Source:" block per note.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default: .notectx/config.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log verbosity: trace, debug, info, warn, error")

	cmd.AddCommand(NewFindCommand())
	cmd.AddCommand(NewMergeCommand())

	return cmd
}
