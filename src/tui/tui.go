package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// VariableQuestions are the questions AskVariable rotates through. The first
// one is always asked first.
var VariableQuestions = []string{
	"Variable %q is unknown. Should it be true? [y/N]: ",
	"Should %q be true? [y/N]: ",
	"And %q, true? [y/N]: ",
	"Is %q true? [y/N]: ",
}

type TUI struct {
	input  *bufio.Reader
	output io.Writer

	questions *Rotation
}

// New creates a TUI reading answers from stdin and asking on stdout.
func New() *TUI {
	return NewWithIO(os.Stdin, os.Stdout)
}

func NewWithIO(input io.Reader, output io.Writer) *TUI {
	return &TUI{
		input:     bufio.NewReader(input),
		output:    output,
		questions: NewRotation(VariableQuestions),
	}
}

// AskVariable asks the user whether the named variable should be true.
func (t *TUI) AskVariable(name string) (bool, error) {
	return t.AskForever(t.questions.Next(), name)
}

// AskForever asks the question until it gets a yes or a no. An empty answer
// counts as no. It fails only if the input can't be read, e.g. when it has
// been closed.
func (t *TUI) AskForever(question string, a ...any) (bool, error) {
	for {
		fmt.Fprintf(t.output, question, a...)

		response, err := t.input.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && response != "") {
			slog.Error("failed to read user input", "error", err)
			return false, fmt.Errorf("failed to read user input: %w", err)
		}

		switch strings.ToLower(strings.TrimSpace(response)) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}
	}
}
