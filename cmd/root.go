// Package cmd provides the root command and CLI setup for tgrep.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tgrep.dev/pkg/tgrep/internal/adapter"
	"tgrep.dev/pkg/tgrep/internal/controller"
	"tgrep.dev/pkg/tgrep/internal/domain"
	m "tgrep.dev/pkg/tgrep/internal/model"
)

var fsAdapter adapter.SourceFSAdapter

var patternFlag string
var parallelFlag int
var debounceFlag int
var maxFileSizeFlag int64
var excludePatterns []string
var hiddenFlag bool
var logFileFlag string
var verboseFlag bool

// errMissingPattern is returned when a non-interactive search has nothing to look for.
var errMissingPattern = errors.New("a pattern is required when output is not a terminal")

func init() {
	configureRootFlags(rootCmd)

	fsAdapter = adapter.NewLocalSourceFSAdapter()
}

const argsHelp = `PATTERN is a Go regular expression (RE2 syntax). When it is given with
-p/--pattern, every positional argument is a path. Without paths the current
directory is searched. Directories are walked recursively; hidden entries and
VCS directories are skipped unless --hidden is set (VCS directories are always
skipped).`

const rootLongDescription = `tgrep searches files for lines matching a regular expression and shows
the matches live while you edit the pattern.

Keys: type to edit the pattern, ctrl+c clears it, esc quits,
up/down and pgup/pgdown scroll the results.

When standard output is not a terminal tgrep behaves like "tgrep list".

` + argsHelp

const listLongDescription = `Search once and print every match as path:line:text, in a deterministic
order, then exit. Exits with status 1 when no search path can be used.

` + argsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "tgrep [flags] [PATTERN] [PATH...]",
		Short:        "Interactive live regex file search",
		Long:         rootLongDescription,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, paths := parseArgs(patternFlag, cmd.Flags().Changed(patternFlagName), args)
			interactive := controller.IsTTY(cmd.OutOrStdout())

			return runSearch(cmd, pattern, paths, interactive)
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&patternFlag, patternFlagName, "p", "", "pattern to search for; all positional arguments become paths")

	cmd.PersistentFlags().IntVarP(&parallelFlag, parallelFlagName, "j", viper.GetInt(searchParallelKey), "number of files scanned concurrently")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), searchParallelKey)

	cmd.PersistentFlags().IntVar(&debounceFlag, debounceFlagName, viper.GetInt(searchDebounceKey), "milliseconds to wait for further edits before searching (0 disables)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(debounceFlagName), searchDebounceKey)

	cmd.PersistentFlags().Int64Var(&maxFileSizeFlag, maxFileSizeFlagName, viper.GetInt64(searchMaxFileSizeKey), "skip files larger than this many bytes (0 disables)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(maxFileSizeFlagName), searchMaxFileSizeKey)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(searchExcludeKey), "skip paths matching glob (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), searchExcludeKey)

	cmd.PersistentFlags().BoolVar(&hiddenFlag, hiddenFlagName, viper.GetBool(searchHiddenKey), "search hidden files and directories")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(hiddenFlagName), searchHiddenKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parseArgs splits positional arguments into the pattern and the search
// paths. A pattern given by flag turns every argument into a path.
func parseArgs(flagPattern string, flagSet bool, args []string) (string, []m.Path) {
	pattern := flagPattern
	rest := args

	if !flagSet && len(args) > 0 {
		pattern, rest = args[0], args[1:]
	}

	paths := parsePaths(rest)
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	return pattern, paths
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// newSearchEngine builds a coordinator from the effective configuration.
// Non-interactive searches start immediately, so debounce only applies to the TUI.
func newSearchEngine(interactive bool) (domain.FileEnumerator, domain.Coordinator, error) {
	enumerator, err := domain.NewFileEnumerator(fsAdapter, domain.EnumerateOptions{
		Exclude: viper.GetStringSlice(searchExcludeKey),
		Hidden:  viper.GetBool(searchHiddenKey),
	})
	if err != nil {
		return nil, nil, err
	}

	debounce := time.Duration(viper.GetInt(searchDebounceKey)) * time.Millisecond
	if !interactive {
		debounce = 0
	}

	coordinator := domain.NewCoordinator(
		enumerator,
		domain.NewLineScanner(fsAdapter, viper.GetInt64(searchMaxFileSizeKey)),
		adapter.NewResultStore(),
		domain.Options{
			Parallel: viper.GetInt(searchParallelKey),
			Debounce: debounce,
		},
	)

	return enumerator, coordinator, nil
}

func runSearch(cmd *cobra.Command, pattern string, paths []m.Path, interactive bool, options ...controller.StartOption) error {
	configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

	if !interactive && pattern == "" {
		return errMissingPattern
	}

	enumerator, coordinator, err := newSearchEngine(interactive)
	if err != nil {
		return err
	}
	defer coordinator.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Refuse to start when none of the paths exists; the walk itself is lazy.
	if _, err := enumerator.Enumerate(ctx, paths); err != nil {
		return err
	}

	ui := controller.NewUI(cmd, coordinator, interactive)

	return ui.Start(ctx, paths, append([]controller.StartOption{controller.WithPattern(pattern)}, options...)...)
}
