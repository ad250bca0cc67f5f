// Package cli wires the scan core to flags, config, report writers and
// the terminal.
package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute builds the root command and runs it against os.Args.
func (c CLI) Execute() error {
	return c.Command().Execute()
}

// Command builds the root cobra command.
func (c CLI) Command() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "treetop [flags] [path]",
		Short: "Report the largest files or directories under a path",
		Long: heredoc.Doc(`
			treetop scans a directory tree and reports the largest files or the
			largest directories beneath it, optionally restricted to entries not
			modified after a cutoff.

			Directory results are non-overlapping: a directory and one of its
			subdirectories never both appear, since the parent's size already
			counts everything below it.

			Results are written to a CSV (or JSON) report; paths that could not
			be accessed are listed in a companion .log file next to it.

			Defaults can be persisted in ~/.config/treetop/config.yaml or set
			via TREETOP_* environment variables; flags always win.
		`),
		Version:      c.version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				flags.root = args[0]
			}

			return run(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.SortFlags = false

	f.BoolVar(&flags.dirs, "dirs", false, "Report directories instead of individual files")
	f.IntVarP(&flags.top, "top", "t", 0, "Number of results to report")
	f.StringVar(&flags.olderThan, "older-than", "", "Age cutoff: a date (2006-01-02), days (30d) or a duration (72h)")
	f.StringVar(&flags.minSize, "min-size", "", "Minimum file size (e.g. 1MB); file mode only")
	f.StringVarP(&flags.output, "output", "o", "", "Report file path (default: auto-named in the output directory)")
	f.StringVar(&flags.format, "format", "csv", "Report format: csv or json")
	f.BoolVar(&flags.parallel, "parallel", false, "Walk the tree with parallel workers")
	f.BoolVar(&flags.open, "open", false, "Reveal the report in the file manager afterwards")
	f.BoolVarP(&flags.interactive, "interactive", "i", false, "Prompt for scan parameters in a loop")
	f.BoolVar(&flags.debug, "debug", false, "Enable debug logging")
	f.StringVar(&flags.configFile, "config", "", "Config file (default: ./config.yaml, then ~/.config/treetop/config.yaml)")

	return cmd
}
