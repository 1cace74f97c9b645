package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/notectx/internal/brief"
	"github.com/harrison/notectx/internal/config"
	"github.com/harrison/notectx/internal/display"
)

// NewFindCommand creates the find subcommand
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find [directory]",
		Short: "List markdown briefs tagged with the NotebookLM marker",
		Long: `Scan the markdown files of a directory and list the ones whose text
contains the marker (default "#notebooklm"), ignoring case.

The directory defaults to ./.agent/docs/ (config: find.dir). Subdirectories
are not scanned. A missing directory is reported and yields no briefs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runFind,
	}

	cmd.Flags().String("marker", "", "Marker substring to search for (default \"#notebooklm\")")
	cmd.Flags().Bool("titles", false, "Show the first heading of each brief")

	return cmd
}

func runFind(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, func(cfg *config.Config) {
		var dir *string
		if len(args) == 1 {
			dir = &args[0]
		}
		cfg.MergeWithFlags(nil, dir, changedString(cmd, "marker"), nil, nil, nil)
	})
	if err != nil {
		return err
	}
	showTitles, err := cmd.Flags().GetBool("titles")
	if err != nil {
		return fmt.Errorf("failed to read --titles flag: %w", err)
	}

	log := newLogger(cmd, cfg)
	out := cmd.OutOrStdout()

	finder := brief.NewFinder(cfg.Find.Marker, log)
	log.Debugf("scanning %s for %q", cfg.Find.Dir, finder.Marker())

	briefs, err := finder.Find(cfg.Find.Dir)
	if err != nil {
		if !errors.Is(err, brief.ErrDirNotFound) {
			return err
		}
		fmt.Fprintf(out, "Directory %s not found.\n", cfg.Find.Dir)
	}

	printBriefs(out, briefs, showTitles)
	return nil
}

// printBriefs writes the report:
//
//	Found NotebookLM Briefs:
//	- a.md
func printBriefs(out io.Writer, briefs []brief.Brief, showTitles bool) {
	palette := display.NewPalette(out)

	fmt.Fprintln(out, palette.Heading.Sprint("Found NotebookLM Briefs:"))
	for _, b := range briefs {
		line := "- " + palette.Name.Sprint(b.Name)
		if showTitles && b.Title != "" {
			line += " " + palette.Detail.Sprintf("(%s)", b.Title)
		}
		fmt.Fprintln(out, line)
	}
}
