package boolexpr

import (
	"fmt"
	"strconv"
)

// Position identifies a contiguous span of the source text. Line and Column
// are 1-based, Length is the number of characters spanned. End-of-input
// positions have a Length of 0.
type Position struct {
	Line   int
	Column int
	Length int
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Column)
}

type TokenKind int

const (
	TokenLeftParen TokenKind = iota
	TokenRightParen
	TokenAnd
	TokenOr
	TokenNot
	TokenBoolLiteral
	TokenName
	TokenEndOfInput
)

func (k TokenKind) String() string {
	switch k {
	case TokenLeftParen:
		return "LeftParen"
	case TokenRightParen:
		return "RightParen"
	case TokenAnd:
		return "And"
	case TokenOr:
		return "Or"
	case TokenNot:
		return "Not"
	case TokenBoolLiteral:
		return "BoolLiteral"
	case TokenName:
		return "Name"
	case TokenEndOfInput:
		return "EndOfInput"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a single lexical unit. Value is only meaningful for
// TokenBoolLiteral and Text only for TokenName.
type Token struct {
	Kind  TokenKind
	Value bool
	Text  string
	Pos   Position
}

// String returns the token the way it was spelled in the source.
func (t Token) String() string {
	switch t.Kind {
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenAnd:
		return "and"
	case TokenOr:
		return "or"
	case TokenNot:
		return "not"
	case TokenBoolLiteral:
		return strconv.FormatBool(t.Value)
	case TokenName:
		return t.Text
	case TokenEndOfInput:
		return "EOF"
	}
	return t.Kind.String()
}
