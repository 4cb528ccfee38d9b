package cli

import (
	"errors"
	"fmt"

	"github.com/eriklarko/markers/src/boolexpr"
	"github.com/spf13/cobra"
)

// reportError prints err to the command's stderr, underlining the offending
// part of program if the error has a position.
func reportError(cmd *cobra.Command, program string, err error) error {
	out := cmd.ErrOrStderr()
	fmt.Fprintln(out, styleDiagnostic(describeError(err, program), useColor(out)))
	return errReported
}

func describeError(err error, program string) string {
	var (
		userErr     boolexpr.UserError
		conflictErr *boolexpr.ConflictingVariablesError
	)
	switch {
	case errors.As(err, &userErr):
		return boolexpr.Render(userErr, program)
	case errors.As(err, &conflictErr):
		return "ConfigurationError: " + conflictErr.Error()
	default:
		return "Error: " + err.Error()
	}
}
