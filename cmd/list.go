package cmd

import (
	"github.com/spf13/cobra"

	"tgrep.dev/pkg/tgrep/internal/controller"
)

var listPatternFlag string
var summaryFlag bool

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [flags] PATTERN [PATH...]",
		Short: "Print all matches once and exit",
		Long:  listLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, paths := parseArgs(listPatternFlag, cmd.Flags().Changed(patternFlagName), args)

			var options []controller.StartOption
			if summaryFlag {
				options = append(options, controller.WithSummary())
			}

			return runSearch(cmd, pattern, paths, false, options...)
		},
	}

	cmd.Flags().StringVarP(&listPatternFlag, patternFlagName, "p", "", "pattern to search for; all positional arguments become paths")
	cmd.Flags().BoolVar(&summaryFlag, summaryFlagName, false, "print a per-file match table after the matches")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
