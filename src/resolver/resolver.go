package resolver

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/eriklarko/markers/src/boolexpr"
	"github.com/eriklarko/markers/src/config"
	"github.com/samber/lo"
)

// Prompter asks the user for the value of a variable, see tui.TUI.
type Prompter interface {
	AskVariable(name string) (bool, error)
}

// Resolver evaluates formulas against the variables from a config file and
// from the command line. When running interactively, variables nobody has
// declared are asked for and the answers are saved to the config file.
type Resolver struct {
	config *config.Config // may have no Path, then answers are not saved

	// declared on the command line, never saved
	trueVars  []string
	falseVars []string

	prompter Prompter // nil when not interactive

	report Report
}

// New creates a Resolver. Pass a nil prompter to never ask for variables.
func New(cfg *config.Config, trueVars, falseVars []string, prompter Prompter) *Resolver {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Resolver{
		config:    cfg,
		trueVars:  trueVars,
		falseVars: falseVars,
		prompter:  prompter,
	}
}

// NewFromLists creates a non-interactive Resolver that only knows the given
// variables.
func NewFromLists(trueVars, falseVars []string) *Resolver {
	return New(nil, trueVars, falseVars, nil)
}

// Evaluate parses and evaluates formula. The variables are validated before
// the formula is parsed, so conflicting declarations are reported first.
//
// Without a prompter, an unknown variable fails with the *boolexpr.EvaluateError
// as is. With one, the user is asked for its value and evaluation starts over.
func (r *Resolver) Evaluate(formula string) (bool, error) {
	env, err := r.environment()
	if err != nil {
		return false, err
	}

	expr, err := boolexpr.New(formula)
	if err != nil {
		return false, err
	}

	for {
		result, err := boolexpr.Evaluate(expr, env)

		var errUnknownVar *boolexpr.EvaluateError
		if !errors.As(err, &errUnknownVar) {
			return result, err
		}

		if r.prompter == nil {
			slog.Warn("Unknown variable detected. Declare it on the command line or in a vars file, or run again with --ask in a terminal.",
				"variable", errUnknownVar.VariableName,
				"hint", fmt.Sprintf("For example, add `-t %s` or `-f %s`.", errUnknownVar.VariableName, errUnknownVar.VariableName),
			)
			return false, err
		}

		if err := r.resolve(errUnknownVar.VariableName); err != nil {
			return false, err
		}

		env, err = r.environment()
		if err != nil {
			return false, err
		}
	}
}

// Report lists the variables the user was asked for so far.
func (r *Resolver) Report() *Report {
	return &r.report
}

func (r *Resolver) resolve(name string) error {
	value, err := r.prompter.AskVariable(name)
	if err != nil {
		return fmt.Errorf("failed to ask for the value of '%s': %w", name, err)
	}

	r.config.Set(name, value)
	r.report.RecordDecision(name, value)
	slog.Debug("variable resolved interactively", "variable", name, "value", value)

	if r.config.Path == "" {
		return nil
	}
	if err := r.config.Write(); err != nil {
		return fmt.Errorf("failed to save the value of '%s': %w", name, err)
	}
	slog.Info("Saved variable", "variable", name, "value", value, "path", r.config.Path)
	return nil
}

func (r *Resolver) environment() (*boolexpr.Environment, error) {
	return boolexpr.NewEnvironment(
		lo.Union(r.config.TrueVars, r.trueVars),
		lo.Union(r.config.FalseVars, r.falseVars),
	)
}
