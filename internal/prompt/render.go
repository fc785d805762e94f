package prompt

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// NoColor wraps w so descriptions written to it are never styled, whatever
// lipgloss would detect for the underlying writer.
func NoColor(w io.Writer) io.Writer {
	if w == nil {
		return nil
	}
	return noColorWriter{w}
}

type noColorWriter struct{ io.Writer }

func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if _, ok := w.(noColorWriter); ok {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// render writes a single prompt line to w. Writers that are not terminals,
// or are wrapped with NoColor, receive plain text.
func render(w io.Writer, description, hint string) {
	if w == nil {
		return
	}

	r := newRenderer(w)
	label := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8E4EC6"))
	faint := r.NewStyle().Foreground(lipgloss.Color("245"))

	line := label.Render(description)
	if hint != "" {
		line += " " + faint.Render(hint)
	}
	fmt.Fprintln(w, line+":")
}
