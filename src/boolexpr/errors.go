package boolexpr

import (
	"fmt"
	"strings"
)

// UserError is implemented by errors caused by the formula the user wrote, as
// opposed to bugs. They know where in the formula things went wrong, see
// Render.
type UserError interface {
	error
	// Kind names the error class, e.g. "ParseError".
	Kind() string
	// Message is the error message without position information.
	Message() string
	Pos() Position
}

// ParseError is returned when the tokens don't form a valid formula.
type ParseError struct {
	Msg      string
	Position Position
}

// NewParseError creates a new ParseError at the given position.
func NewParseError(pos Position, format string, a ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, a...), Position: pos}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Msg, e.Position)
}

func (e *ParseError) Kind() string    { return "ParseError" }
func (e *ParseError) Message() string { return e.Msg }
func (e *ParseError) Pos() Position   { return e.Position }

// EvaluateError is returned when a variable is neither known to be true nor
// known to be false.
type EvaluateError struct {
	VariableName string
	Position     Position
}

// NewEvaluateError creates a new EvaluateError for the variable reference v.
func NewEvaluateError(v *Variable) error {
	return &EvaluateError{VariableName: v.Name, Position: v.Position}
}

func (e *EvaluateError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message(), e.Position)
}

func (e *EvaluateError) Kind() string    { return "EvaluateError" }
func (e *EvaluateError) Message() string { return fmt.Sprintf("unknown variable %q", e.VariableName) }
func (e *EvaluateError) Pos() Position   { return e.Position }

// ConflictingVariablesError is returned when an environment is created with
// variables that are declared both true and false.
type ConflictingVariablesError struct {
	Names []string
}

func NewConflictingVariablesError(names []string) error {
	return &ConflictingVariablesError{Names: names}
}

func (e *ConflictingVariablesError) Error() string {
	return fmt.Sprintf("variables declared both true and false: %s", strings.Join(e.Names, ", "))
}

// InternalError means something in this package is broken. It is never caused
// by user input.
type InternalError struct {
	Msg string
}

func NewInternalError(format string, a ...any) error {
	return &InternalError{Msg: fmt.Sprintf(format, a...)}
}

func (e *InternalError) Error() string {
	return "internal error: " + e.Msg
}
