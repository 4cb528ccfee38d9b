package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/eriklarko/markers/src/config"
	"github.com/eriklarko/markers/src/environment"
	"github.com/eriklarko/markers/src/resolver"
	"github.com/eriklarko/markers/src/tui"
	"github.com/spf13/cobra"
)

type evalOptions struct {
	trueVars  []string
	falseVars []string
	varsFile  string
	ask       bool
}

func newEvalCommand() *cobra.Command {
	opts := &evalOptions{}

	cmd := &cobra.Command{
		Use:   "eval PROGRAM",
		Short: "Evaluate a formula and print true or false",
		Long: `Evaluate a formula and print true or false.

Every variable in the formula must be declared true (-t) or false (-f), either
on the command line or in a vars file. With --ask, undeclared variables are
asked for when running in a terminal, and the answers are saved to the vars
file if one is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program := args[0]

			cfg, err := loadVarsFile(opts)
			if err != nil {
				return reportError(cmd, program, err)
			}

			var prompter resolver.Prompter
			if opts.ask {
				if environment.IsInteractive() {
					prompter = tui.NewWithIO(cmd.InOrStdin(), cmd.OutOrStdout())
				} else {
					slog.Warn("Not asking for unknown variables, not running in a terminal")
				}
			}

			r := resolver.New(cfg, opts.trueVars, opts.falseVars, prompter)
			result, err := r.Evaluate(program)
			if err != nil {
				return reportError(cmd, program, err)
			}

			if report := r.Report(); report.HasDecisions() {
				slog.Info("Resolved unknown variables", "true", report.True, "false", report.False)
			}

			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(result))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&opts.trueVars, "true-vars", "t", nil, "variable that is true, can be repeated")
	cmd.Flags().StringArrayVarP(&opts.falseVars, "false-vars", "f", nil, "variable that is false, can be repeated")
	cmd.Flags().StringVar(&opts.varsFile, "vars-file", "", "YAML, TOML or CSV file declaring true and false variables")
	cmd.Flags().BoolVar(&opts.ask, "ask", false, "ask for the value of unknown variables")
	return cmd
}

func loadVarsFile(opts *evalOptions) (*config.Config, error) {
	if opts.varsFile == "" {
		return nil, nil
	}

	cfg, err := config.LoadConfig(opts.varsFile)
	if os.IsNotExist(err) && opts.ask {
		// created when the first answer is saved
		slog.Info("Vars file does not exist yet", "path", opts.varsFile)
		return &config.Config{Path: opts.varsFile}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load vars file: %w", err)
	}
	return cfg, nil
}
