package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// errReported is returned by commands that have already told the user what
// went wrong, so Execute only has to set the exit code.
var errReported = errors.New("error already reported")

type rootOptions struct {
	info  bool
	debug bool
}

// NewRootCommand builds the markers command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "markers",
		Short: "Parse and evaluate boolean formulas",
		Long: `markers parses boolean formulas made of variables, true, false, not, and,
or and parentheses, and evaluates them for a given set of true and false
variables.

Examples:
  markers parse --pretty "A and (not B or C)"
  markers eval "A and (not B or C)" -t A -t B -f C`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(opts)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.info, "info", false, "log informational messages")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log debug messages")

	cmd.AddCommand(newParseCommand())
	cmd.AddCommand(newEvalCommand())
	return cmd
}

// Execute runs the command line and returns an error if the process should
// exit with a non-zero status.
func Execute() error {
	cmd := NewRootCommand()
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		// flag and argument errors
		fmt.Fprintln(os.Stderr, styleDiagnostic("Error: "+err.Error(), useColor(os.Stderr)))
		fmt.Fprintln(os.Stderr, "Run 'markers --help' for usage.")
	}
	return err
}

func configureLogging(opts *rootOptions) {
	level := slog.LevelWarn
	if opts.info {
		level = slog.LevelInfo
	}
	if opts.debug {
		level = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(level)
}
