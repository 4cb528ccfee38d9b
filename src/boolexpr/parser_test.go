package boolexpr_test

import (
	"strings"
	"testing"

	"github.com/eriklarko/markers/src/boolexpr"
	"github.com/kylelemons/godebug/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tokens without positions, the way a test would write them by hand
var (
	lparen = boolexpr.Token{Kind: boolexpr.TokenLeftParen}
	rparen = boolexpr.Token{Kind: boolexpr.TokenRightParen}
	and    = boolexpr.Token{Kind: boolexpr.TokenAnd}
	or     = boolexpr.Token{Kind: boolexpr.TokenOr}
	not    = boolexpr.Token{Kind: boolexpr.TokenNot}
)

func name(text string) boolexpr.Token {
	return boolexpr.Token{Kind: boolexpr.TokenName, Text: text}
}

func lit(value bool) boolexpr.Token {
	return boolexpr.Token{Kind: boolexpr.TokenBoolLiteral, Value: value}
}

func at(token boolexpr.Token, line, column, length int) boolexpr.Token {
	token.Pos = boolexpr.Position{Line: line, Column: column, Length: length}
	return token
}

func v(name string) *boolexpr.Variable {
	return &boolexpr.Variable{Name: name}
}

func binary(op boolexpr.Operator, left, right boolexpr.Expression) *boolexpr.BinaryOp {
	return &boolexpr.BinaryOp{Operator: op, Left: left, Right: right}
}

func assertTree(t *testing.T, expected, actual boolexpr.Expression) {
	t.Helper()

	if diff := pretty.Compare(expected, actual); diff != "" {
		t.Errorf("unexpected tree (-want +got):\n%s", diff)
	}
}

func TestParse(t *testing.T) {
	testCases := map[string]struct {
		tokens   []boolexpr.Token
		expected boolexpr.Expression
	}{
		"var": {
			tokens:   []boolexpr.Token{name("A")},
			expected: v("A"),
		},
		"true": {
			tokens:   []boolexpr.Token{lit(true)},
			expected: &boolexpr.Literal{Value: true},
		},
		"false": {
			tokens:   []boolexpr.Token{lit(false)},
			expected: &boolexpr.Literal{Value: false},
		},
		"not": {
			tokens:   []boolexpr.Token{not, name("A")},
			expected: &boolexpr.Not{Operand: v("A")},
		},
		"and": {
			tokens:   []boolexpr.Token{name("A"), and, name("B")},
			expected: binary(boolexpr.AND, v("A"), v("B")),
		},
		"or": {
			tokens:   []boolexpr.Token{name("A"), or, name("B")},
			expected: binary(boolexpr.OR, v("A"), v("B")),
		},
		"parentheses": {
			tokens:   []boolexpr.Token{name("A"), and, lparen, name("B"), or, name("C"), rparen},
			expected: binary(boolexpr.AND, v("A"), binary(boolexpr.OR, v("B"), v("C"))),
		},
		"and binds tighter than or": {
			tokens:   []boolexpr.Token{name("A"), and, name("B"), or, name("C")},
			expected: binary(boolexpr.OR, binary(boolexpr.AND, v("A"), v("B")), v("C")),
		},
		"and binds tighter than or on the right": {
			tokens:   []boolexpr.Token{name("A"), or, name("B"), and, name("C")},
			expected: binary(boolexpr.OR, v("A"), binary(boolexpr.AND, v("B"), v("C"))),
		},
		"double negation": {
			tokens:   []boolexpr.Token{not, not, name("A")},
			expected: &boolexpr.Not{Operand: &boolexpr.Not{Operand: v("A")}},
		},
		"negation of parentheses": {
			tokens:   []boolexpr.Token{not, lparen, name("A"), or, name("B"), rparen},
			expected: &boolexpr.Not{Operand: binary(boolexpr.OR, v("A"), v("B"))},
		},
		"not binds tighter than and": {
			tokens:   []boolexpr.Token{not, name("A"), and, name("B")},
			expected: binary(boolexpr.AND, &boolexpr.Not{Operand: v("A")}, v("B")),
		},
		"repeated and is left associative": {
			tokens:   []boolexpr.Token{name("A"), and, name("B"), and, name("C")},
			expected: binary(boolexpr.AND, binary(boolexpr.AND, v("A"), v("B")), v("C")),
		},
		"repeated or is left associative": {
			tokens:   []boolexpr.Token{name("A"), or, name("B"), or, name("C")},
			expected: binary(boolexpr.OR, binary(boolexpr.OR, v("A"), v("B")), v("C")),
		},
		"expression after right paren": {
			tokens:   []boolexpr.Token{lparen, name("A"), rparen, or, name("B")},
			expected: binary(boolexpr.OR, v("A"), v("B")),
		},
		"unicode identifier": {
			tokens:   []boolexpr.Token{name("größe_2")},
			expected: v("größe_2"),
		},
		"underscore identifier": {
			tokens:   []boolexpr.Token{name("_x")},
			expected: v("_x"),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			expr, err := boolexpr.Parse(tc.tokens)
			require.NoError(t, err)

			assertTree(t, tc.expected, expr)
		})
	}
}

func TestParseRetainsPositions(t *testing.T) {
	// A and (B or C)
	tokens := []boolexpr.Token{
		at(name("A"), 1, 1, 1),
		at(and, 1, 3, 3),
		at(lparen, 1, 7, 1),
		at(name("B"), 1, 8, 1),
		at(or, 1, 10, 2),
		at(name("C"), 1, 13, 1),
		at(rparen, 1, 14, 1),
	}

	expr, err := boolexpr.Parse(tokens)
	require.NoError(t, err)

	expected := &boolexpr.BinaryOp{
		Operator: boolexpr.AND,
		Left:     &boolexpr.Variable{Name: "A", Position: boolexpr.Position{Line: 1, Column: 1, Length: 1}},
		Right: &boolexpr.BinaryOp{
			Operator: boolexpr.OR,
			Left:     &boolexpr.Variable{Name: "B", Position: boolexpr.Position{Line: 1, Column: 8, Length: 1}},
			Right:    &boolexpr.Variable{Name: "C", Position: boolexpr.Position{Line: 1, Column: 13, Length: 1}},
			Position: boolexpr.Position{Line: 1, Column: 10, Length: 2},
		},
		Position: boolexpr.Position{Line: 1, Column: 3, Length: 3},
	}
	assertTree(t, expected, expr)
}

func TestParseTokenizedFormula(t *testing.T) {
	expr, err := boolexpr.New("not A and\n  (B or true)")
	require.NoError(t, err)

	op, ok := expr.(*boolexpr.BinaryOp)
	require.True(t, ok, "expected a binary op, got %T", expr)
	assert.Equal(t, boolexpr.AND, op.Operator)
	assert.Equal(t, boolexpr.Position{Line: 1, Column: 7, Length: 3}, op.Pos())

	negation, ok := op.Left.(*boolexpr.Not)
	require.True(t, ok, "expected a negation, got %T", op.Left)
	assert.Equal(t, boolexpr.Position{Line: 1, Column: 1, Length: 3}, negation.Pos())

	inner, ok := op.Right.(*boolexpr.BinaryOp)
	require.True(t, ok, "expected a binary op, got %T", op.Right)
	assert.Equal(t, boolexpr.Position{Line: 2, Column: 6, Length: 2}, inner.Pos())
	assert.Equal(t, boolexpr.Position{Line: 2, Column: 9, Length: 4}, inner.Right.Pos())
}

func TestParseErrors(t *testing.T) {
	testCases := map[string]struct {
		formula  string
		message  string
		position boolexpr.Position
	}{
		"empty input": {
			formula:  "",
			message:  "unexpected end of input",
			position: boolexpr.Position{Line: 1, Column: 1, Length: 0},
		},
		"incomplete and": {
			formula:  "A and",
			message:  "unexpected end of input",
			position: boolexpr.Position{Line: 1, Column: 6, Length: 0},
		},
		"missing right paren": {
			formula:  "(A or B",
			message:  "expected closing paren matching opening",
			position: boolexpr.Position{Line: 1, Column: 1, Length: 1},
		},
		"missing right paren after not": {
			formula:  "not (A",
			message:  "expected closing paren matching opening",
			position: boolexpr.Position{Line: 1, Column: 5, Length: 1},
		},
		"wrong token instead of right paren": {
			formula:  "(A B)",
			message:  "expected closing paren matching opening",
			position: boolexpr.Position{Line: 1, Column: 1, Length: 1},
		},
		"missing left paren": {
			formula:  "A or B)",
			message:  `unexpected token ")"`,
			position: boolexpr.Position{Line: 1, Column: 7, Length: 1},
		},
		"right paren instead of operand": {
			formula:  "A and )",
			message:  `unexpected token ")"`,
			position: boolexpr.Position{Line: 1, Column: 7, Length: 1},
		},
		"invalid variable": {
			formula:  "A or 0_invalid",
			message:  `unexpected token "0_invalid"`,
			position: boolexpr.Position{Line: 1, Column: 6, Length: 9},
		},
		"trailing tokens": {
			formula:  "A B",
			message:  `unexpected token "B"`,
			position: boolexpr.Position{Line: 1, Column: 3, Length: 1},
		},
		"operator instead of operand": {
			formula:  "and A",
			message:  `unexpected token "and"`,
			position: boolexpr.Position{Line: 1, Column: 1, Length: 3},
		},
		"empty parentheses": {
			formula:  "()",
			message:  `unexpected token ")"`,
			position: boolexpr.Position{Line: 1, Column: 2, Length: 1},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := boolexpr.Parse(boolexpr.Tokenize(tc.formula))

			var parseErr *boolexpr.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tc.message, parseErr.Message())
			assert.Equal(t, tc.position, parseErr.Pos())
			assert.Equal(t, "ParseError", parseErr.Kind())
		})
	}
}

func TestParseMissingRightParenWithoutPositions(t *testing.T) {
	_, err := boolexpr.Parse([]boolexpr.Token{lparen, name("A"), or, name("B")})

	var parseErr *boolexpr.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Contains(t, parseErr.Error(), "expected closing paren")
	assert.Equal(t, boolexpr.Position{}, parseErr.Pos())
}

func TestParseEmptyTokenSlice(t *testing.T) {
	_, err := boolexpr.Parse(nil)

	var parseErr *boolexpr.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "unexpected end of input", parseErr.Message())
}

func TestParseDeepNesting(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		depth := boolexpr.MaxDepth
		formula := strings.Repeat("(", depth) + "A" + strings.Repeat(")", depth)

		expr, err := boolexpr.New(formula)
		require.NoError(t, err)
		assert.Equal(t, "A", expr.String())
	})

	t.Run("parentheses beyond limit", func(t *testing.T) {
		depth := boolexpr.MaxDepth + 1
		formula := strings.Repeat("(", depth) + "A" + strings.Repeat(")", depth)

		_, err := boolexpr.New(formula)

		var parseErr *boolexpr.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Message(), "nested deeper than")
		assert.Equal(t, boolexpr.Position{Line: 1, Column: depth, Length: 1}, parseErr.Pos())
	})

	t.Run("negations beyond limit", func(t *testing.T) {
		formula := strings.Repeat("not ", 10*boolexpr.MaxDepth) + "A"

		_, err := boolexpr.New(formula)

		var parseErr *boolexpr.ParseError
		require.ErrorAs(t, err, &parseErr)
		assert.Contains(t, parseErr.Message(), "nested deeper than")
	})
}

func TestParseDoesNotFailOnCompleteInput(t *testing.T) {
	formulas := []string{
		"A and (not B or C)",
		"true",
		"not not not false",
		"((A))",
		"a_1 or b_2 and not (c or d)",
	}

	for _, formula := range formulas {
		t.Run(formula, func(t *testing.T) {
			_, err := boolexpr.New(formula)
			assert.NoError(t, err)
		})
	}
}
