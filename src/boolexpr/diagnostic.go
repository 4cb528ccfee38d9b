package boolexpr

import (
	"fmt"
	"strings"
)

// Render formats err for humans, underlining the offending part of source:
//
//	EvaluateError: unknown variable "chris"
//	line 1, col 19
//
//	alice and bob and chris
//	------------------^^^^^
//
// source must be the text the error was produced from. Positions outside of
// it render an empty source line.
func Render(err UserError, source string) string {
	pos := err.Pos()

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", err.Kind(), err.Message())
	fmt.Fprintf(&b, "line %d, col %d\n", pos.Line, pos.Column)
	b.WriteString("\n")
	b.WriteString(sourceLine(source, pos.Line))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", max(pos.Column-1, 0)))
	b.WriteString(strings.Repeat("^", max(pos.Length, 0)))
	return b.String()
}

// sourceLine returns the 1-based line of source, or "" if there is no such
// line.
func sourceLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[line-1], "\r")
}
