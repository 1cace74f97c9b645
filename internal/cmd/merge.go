package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/notectx/internal/config"
	"github.com/harrison/notectx/internal/display"
	"github.com/harrison/notectx/internal/export"
)

// NewMergeCommand creates the merge subcommand
func NewMergeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge",
		Short: "Concatenate a directory of markdown notes into one export file",
		Long: `Merge every markdown file of the source directory into a single export.

The export starts with "# <title>" and each note follows under a
"# Source: <filename>" header, in filename order. A note that cannot be read
is replaced by an error placeholder and the merge continues.

Paths come from the config file (merge.source_dir, merge.output_file) and
can be overridden with --source and --output. A leading ~ is expanded.`,
		Args: cobra.NoArgs,
		RunE: runMerge,
	}

	cmd.Flags().String("source", "", "Directory of markdown notes to merge")
	cmd.Flags().String("output", "", "Export file to write")
	cmd.Flags().String("title", "", "Export heading (default \"VerseRidge Obsidian Export\")")

	return cmd
}

func runMerge(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		cfg.MergeWithFlags(nil, nil, nil,
			changedString(cmd, "source"),
			changedString(cmd, "output"),
			changedString(cmd, "title"))
	})
	if err != nil {
		return err
	}
	if err := cfg.ValidateMerge(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := newLogger(cmd, cfg)
	merger := export.NewMerger(cfg.Merge.SourceDir, cfg.Merge.OutputFile, cfg.Merge.Title, log)

	result, err := merger.Merge()
	if err != nil {
		return err
	}

	log.Debugf("merged %d files from %s", len(result.Sources), cfg.Merge.SourceDir)
	if failed := result.Failed(); len(failed) > 0 {
		warnUnreadable(cmd, failed, len(result.Sources))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, display.NewPalette(out).Success.Sprintf("Successfully merged files into %s", result.OutputFile))
	return nil
}

func warnUnreadable(cmd *cobra.Command, failed []export.Source, total int) {
	files := make([]string, 0, len(failed))
	for _, s := range failed {
		files = append(files, fmt.Sprintf("%s: %v", s.Name, s.Err))
	}

	display.Warning{
		Title:      fmt.Sprintf("%d of %d %s could not be read", len(failed), total, display.Plural(total, "file", "files")),
		Message:    "Each one was replaced by an error placeholder in the export",
		Files:      files,
		Suggestion: "Fix the listed notes (permissions, UTF-8 encoding) and run merge again",
	}.Display(cmd.ErrOrStderr())
}
