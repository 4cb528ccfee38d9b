package boolexpr

import (
	"log/slog"
)

var keywords = map[string]Token{
	"true":  {Kind: TokenBoolLiteral, Value: true},
	"false": {Kind: TokenBoolLiteral, Value: false},
	"and":   {Kind: TokenAnd},
	"or":    {Kind: TokenOr},
	"not":   {Kind: TokenNot},
}

// lexer holds the scanning state for a single call to Tokenize and is never
// shared.
type lexer struct {
	tokens []Token

	// characters of the word currently being read
	buffer []rune

	line   int
	column int
}

// Tokenize splits source into tokens. It never fails; text that isn't a
// keyword or a paren becomes a TokenName even if it isn't a valid identifier,
// the parser decides what to do with it. The returned slice always ends with
// a TokenEndOfInput.
//
// Example:
//
//	tokens := boolexpr.Tokenize("(A)and not B")
//	// ( A ) and not B EOF
func Tokenize(source string) []Token {
	l := &lexer{line: 1, column: 1}

	for _, c := range source {
		switch c {
		case '(':
			l.flush()
			l.emit(Token{Kind: TokenLeftParen, Pos: Position{Line: l.line, Column: l.column, Length: 1}})
		case ')':
			l.flush()
			l.emit(Token{Kind: TokenRightParen, Pos: Position{Line: l.line, Column: l.column, Length: 1}})
		case ' ', '\t', '\r':
			l.flush()
		case '\n':
			l.flush()
			l.line++
			// incremented back to 1 below
			l.column = 0
		default:
			l.buffer = append(l.buffer, c)
		}
		l.column++
	}
	l.flush()
	l.emit(Token{Kind: TokenEndOfInput, Pos: Position{Line: l.line, Column: l.column, Length: 0}})

	slog.Debug("tokenized formula", "tokens", len(l.tokens))
	return l.tokens
}

// flush turns the buffered word, if any, into a token. It must be called
// before the column counter moves past the character that ended the word.
func (l *lexer) flush() {
	if len(l.buffer) == 0 {
		return
	}

	length := len(l.buffer)
	pos := Position{Line: l.line, Column: l.column - length, Length: length}
	text := string(l.buffer)
	l.buffer = l.buffer[:0]

	if keyword, ok := keywords[text]; ok {
		keyword.Pos = pos
		l.emit(keyword)
		return
	}
	l.emit(Token{Kind: TokenName, Text: text, Pos: pos})
}

func (l *lexer) emit(token Token) {
	l.tokens = append(l.tokens, token)
}
