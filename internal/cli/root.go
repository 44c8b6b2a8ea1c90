// Package cli implements the treedepth command-line interface: a single
// "compute" command that reads a graph file, runs the engine per connected
// component, and writes the treedepth/parent-array result.
//
// Logging uses charmbracelet/log at info level by default, debug level
// under --verbose; flags double as environment variables so the engine can
// be tuned in scripted/CI contexts without editing a command line.
package cli

import (
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// NewRootCommand builds the treedepth root command and its compute
// subcommand.
func NewRootCommand() *cobra.Command {
	var verbose bool
	logger := charmlog.NewWithOptions(nil, charmlog.Options{ReportTimestamp: true})

	root := &cobra.Command{
		Use:          "treedepth",
		Short:        "Compute the exact treedepth of a graph",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetOutput(cmd.ErrOrStderr())
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
			} else {
				logger.SetLevel(charmlog.InfoLevel)
			}
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.AddCommand(newComputeCommand(logger))
	return root
}
