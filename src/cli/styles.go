package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/eriklarko/markers/src/environment"
)

var (
	ColorError = lipgloss.Color("#EF4444") // Red
	ColorMuted = lipgloss.Color("#6B7280") // Gray

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	LocationStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	CaretStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// useColor reports whether w is a terminal that should get styled output.
func useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && environment.UseColor(f)
}

// styleDiagnostic colors the output of describeError: the first line is the
// header, the second the location and the last one the caret underline.
func styleDiagnostic(text string, color bool) string {
	if !color {
		return text
	}

	lines := strings.Split(text, "\n")
	lines[0] = HeaderStyle.Render(lines[0])
	if len(lines) >= 5 {
		lines[1] = LocationStyle.Render(lines[1])
		lines[len(lines)-1] = CaretStyle.Render(lines[len(lines)-1])
	}
	return strings.Join(lines, "\n")
}
