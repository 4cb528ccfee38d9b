package boolexpr

import (
	"unicode"
)

// MaxDepth is how deeply parentheses and negations may be nested before Parse
// gives up. It keeps pathological input from exhausting the stack.
const MaxDepth = 1000

// parser is the cursor over the token slice for one call to Parse.
type parser struct {
	tokens []Token
	idx    int

	// current nesting of parens and nots
	depth int
}

// Parse builds a syntax tree from tokens, as returned by Tokenize. The
// grammar, from lowest to highest precedence:
//
//	or      := and ( "or" and )*
//	and     := not ( "and" not )*
//	not     := "not" not | paren
//	paren   := "(" or ")" | literal
//	literal := "true" | "false" | <identifier>
//
// All errors returned are *ParseError.
func Parse(tokens []Token) (Expression, error) {
	p := &parser{tokens: tokens}

	root, err := p.or()
	if err != nil {
		return nil, err
	}

	if token := p.peek(); token.Kind != TokenEndOfInput {
		return nil, unexpected(token)
	}
	return root, nil
}

func (p *parser) or() (Expression, error) {
	left, err := p.and()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.match(TokenOr)
		if !ok {
			return left, nil
		}
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Operator: OR, Left: left, Right: right, Position: op.Pos}
	}
}

func (p *parser) and() (Expression, error) {
	left, err := p.not()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.match(TokenAnd)
		if !ok {
			return left, nil
		}
		right, err := p.not()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{Operator: AND, Left: left, Right: right, Position: op.Pos}
	}
}

func (p *parser) not() (Expression, error) {
	op, ok := p.match(TokenNot)
	if !ok {
		return p.paren()
	}

	if err := p.enter(op); err != nil {
		return nil, err
	}
	operand, err := p.not()
	p.leave()
	if err != nil {
		return nil, err
	}

	return &Not{Operand: operand, Position: op.Pos}, nil
}

func (p *parser) paren() (Expression, error) {
	open, ok := p.match(TokenLeftParen)
	if !ok {
		return p.literal()
	}

	if err := p.enter(open); err != nil {
		return nil, err
	}
	inner, err := p.or()
	p.leave()
	if err != nil {
		return nil, err
	}

	if _, ok := p.match(TokenRightParen); !ok {
		return nil, NewParseError(open.Pos, "expected closing paren matching opening")
	}
	return inner, nil
}

func (p *parser) literal() (Expression, error) {
	token := p.peek()
	switch token.Kind {
	case TokenBoolLiteral:
		p.advance()
		return &Literal{Value: token.Value, Position: token.Pos}, nil
	case TokenName:
		if !isIdentifier(token.Text) {
			return nil, unexpected(token)
		}
		p.advance()
		return &Variable{Name: token.Text, Position: token.Pos}, nil
	case TokenEndOfInput:
		return nil, NewParseError(token.Pos, "unexpected end of input")
	default:
		return nil, unexpected(token)
	}
}

// peek returns the current token without consuming it. Running off the end of
// a token slice that lacks a TokenEndOfInput yields a synthetic one.
func (p *parser) peek() Token {
	if p.idx < len(p.tokens) {
		return p.tokens[p.idx]
	}
	return Token{Kind: TokenEndOfInput}
}

func (p *parser) advance() {
	if p.idx < len(p.tokens) {
		p.idx++
	}
}

// match consumes the current token if it is of the given kind.
func (p *parser) match(kind TokenKind) (Token, bool) {
	token := p.peek()
	if token.Kind != kind {
		return token, false
	}
	p.advance()
	return token, true
}

func (p *parser) enter(at Token) error {
	p.depth++
	if p.depth > MaxDepth {
		return NewParseError(at.Pos, "expression nested deeper than %d levels", MaxDepth)
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func unexpected(token Token) error {
	return NewParseError(token.Pos, "unexpected token \"%s\"", token.String())
}

// isIdentifier reports whether name starts with a letter or underscore and
// continues with letters, digits or underscores.
func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_' || unicode.IsLetter(c):
		case i > 0 && unicode.IsDigit(c):
		default:
			return false
		}
	}
	return true
}
