package boolexpr

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/samber/lo"
)

type Operator int

const (
	AND Operator = iota
	OR
)

func (o Operator) String() string {
	switch o {
	case AND:
		return "and"
	case OR:
		return "or"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Expression is a node in the syntax tree produced by Parse. The set of
// implementations is closed: *Literal, *Variable, *Not and *BinaryOp.
type Expression interface {
	// Pos is where the node came from. Operator nodes report the position of
	// their operator token, not the span of their operands.
	Pos() Position
	String() string

	expression()
}

type Literal struct {
	Value    bool
	Position Position
}

type Variable struct {
	Name     string
	Position Position
}

type Not struct {
	Operand  Expression
	Position Position
}

type BinaryOp struct {
	Operator Operator
	Left     Expression
	Right    Expression
	Position Position
}

func (e *Literal) Pos() Position  { return e.Position }
func (e *Variable) Pos() Position { return e.Position }
func (e *Not) Pos() Position      { return e.Position }
func (e *BinaryOp) Pos() Position { return e.Position }

func (*Literal) expression()  {}
func (*Variable) expression() {}
func (*Not) expression()      {}
func (*BinaryOp) expression() {}

func (e *Literal) String() string {
	return strconv.FormatBool(e.Value)
}

func (e *Variable) String() string {
	return e.Name
}

func (e *Not) String() string {
	return "(not " + e.Operand.String() + ")"
}

func (e *BinaryOp) String() string {
	return "(" + e.Left.String() + " " + e.Operator.String() + " " + e.Right.String() + ")"
}

// New parses the given formula into a syntax tree.
// Example usage:
//
//	tree, err := boolexpr.New("A and (not B or C)")
//	if err != nil {
//		log.Fatalf("failed to parse formula: %v", err)
//	}
//	fmt.Println(tree) // Output: (A and ((not B) or C))
//
// The returned error is a *ParseError.
func New(formula string) (Expression, error) {
	root, err := Parse(Tokenize(formula))
	if err != nil {
		return nil, err
	}
	slog.Debug("parsed formula", "formula", formula, "tree", root.String())
	return root, nil
}

// EvaluateFormula parses formula and evaluates it with the variables in
// trueVars set to true and the ones in falseVars set to false. The variable
// lists are validated before the formula is parsed, so a name listed as both
// true and false is reported even if the formula is malformed.
func EvaluateFormula(formula string, trueVars, falseVars []string) (bool, error) {
	env, err := NewEnvironment(trueVars, falseVars)
	if err != nil {
		return false, err
	}

	root, err := New(formula)
	if err != nil {
		return false, err
	}

	return Evaluate(root, env)
}

// Variables returns the distinct names of all variables referenced in expr,
// sorted.
func Variables(expr Expression) []string {
	var names []string
	walk(expr, func(e Expression) {
		if v, ok := e.(*Variable); ok {
			names = append(names, v.Name)
		}
	})

	names = lo.Uniq(names)
	slices.Sort(names)
	return names
}

// walk calls visit for expr and every node below it, parents first.
func walk(expr Expression, visit func(Expression)) {
	visit(expr)
	switch e := expr.(type) {
	case *Not:
		walk(e.Operand, visit)
	case *BinaryOp:
		walk(e.Left, visit)
		walk(e.Right, visit)
	}
}
