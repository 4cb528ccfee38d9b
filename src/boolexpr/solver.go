package boolexpr

import (
	"log/slog"
	"slices"

	"github.com/samber/lo"
)

// Environment assigns values to variables. Every variable is either known to
// be true, known to be false, or unknown; evaluating an unknown variable is
// an error. The zero value and nil both know no variables.
type Environment struct {
	values map[string]bool
}

// NewEnvironment creates an environment where the names in trueVars are true
// and the names in falseVars are false. It fails with a
// *ConflictingVariablesError if a name appears in both lists.
func NewEnvironment(trueVars, falseVars []string) (*Environment, error) {
	conflicts := lo.Uniq(lo.Intersect(trueVars, falseVars))
	if len(conflicts) > 0 {
		slices.Sort(conflicts)
		return nil, NewConflictingVariablesError(conflicts)
	}

	values := make(map[string]bool, len(trueVars)+len(falseVars))
	for _, name := range trueVars {
		values[name] = true
	}
	for _, name := range falseVars {
		values[name] = false
	}
	return &Environment{values: values}, nil
}

// Lookup returns the value of the variable and whether it is known at all.
func (env *Environment) Lookup(name string) (value bool, known bool) {
	if env == nil {
		return false, false
	}
	value, known = env.values[name]
	return value, known
}

// Evaluate computes the value of expr under env.
//
// "and" and "or" short-circuit from left to right: the right operand is not
// evaluated when the left one decides the result, so "false and X" is false
// even if X is unknown.
//
// Referencing an unknown variable fails with an *EvaluateError pointing at
// the variable.
func Evaluate(expr Expression, env *Environment) (bool, error) {
	switch e := expr.(type) {
	case *Literal:
		return e.Value, nil

	case *Variable:
		value, known := env.Lookup(e.Name)
		if !known {
			slog.Debug("unknown variable", "name", e.Name, "line", e.Position.Line, "column", e.Position.Column)
			return false, NewEvaluateError(e)
		}
		return value, nil

	case *Not:
		result, err := Evaluate(e.Operand, env)
		if err != nil {
			return false, err
		}
		return !result, nil

	case *BinaryOp:
		left, err := Evaluate(e.Left, env)
		if err != nil {
			return false, err
		}

		switch e.Operator {
		case AND:
			if !left {
				return false, nil
			}
		case OR:
			if left {
				return true, nil
			}
		default:
			return false, NewInternalError("unknown operator: %v", e.Operator)
		}
		return Evaluate(e.Right, env)
	}

	return false, NewInternalError("cannot evaluate expression of type %T", expr)
}
