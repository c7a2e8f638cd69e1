package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
func NewRenderer() func(string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
	)

	return func(markdown string) (string, error) {
		if err != nil {
			return markdown, err
		}
		return r.Render(markdown)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PrintResult writes an action result. Plain text results are rendered as
// markdown when pretty is set; everything else is printed as indented JSON.
func PrintResult(w io.Writer, result any, pretty bool) error {
	if text, ok := result.(string); ok {
		if pretty {
			out, err := NewRenderer()(text)
			if err == nil {
				_, err = fmt.Fprint(w, out)
				return err
			}
		}
		_, err := fmt.Fprintln(w, text)
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
