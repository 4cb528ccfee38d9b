package cli

import (
	"fmt"
	"reflect"

	"github.com/eriklarko/markers/src/boolexpr"
	"github.com/kylelemons/godebug/pretty"
	"github.com/spf13/cobra"
)

// treeDumper prints syntax trees field by field, with operators spelled out.
var treeDumper = &pretty.Config{
	Diffable: true,
	Formatter: map[reflect.Type]interface{}{
		reflect.TypeOf(boolexpr.AND): func(op boolexpr.Operator) string {
			return op.String()
		},
	},
}

func newParseCommand() *cobra.Command {
	var prettyPrint bool

	cmd := &cobra.Command{
		Use:   "parse PROGRAM",
		Short: "Parse a formula and print its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program := args[0]

			expr, err := boolexpr.New(program)
			if err != nil {
				return reportError(cmd, program, err)
			}

			if prettyPrint {
				fmt.Fprintln(cmd.OutOrStdout(), expr.String())
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), treeDumper.Sprint(expr))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&prettyPrint, "pretty", false, "print the formula fully parenthesized instead of the tree")
	return cmd
}
