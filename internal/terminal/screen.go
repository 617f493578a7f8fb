package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"consoletea/internal/element"
	"consoletea/internal/layout"
)

// lineEnd returns the cursor to column 0 as well, since raw mode disables
// the terminal's own newline translation.
const lineEnd = "\r\n"

// Screen writes frames of colored lines to a terminal.
type Screen struct {
	w        io.Writer
	out      *termenv.Output
	renderer *lipgloss.Renderer
}

// NewScreen returns a Screen writing to w. opts select the color profile;
// by default it is detected from w.
func NewScreen(w io.Writer, opts ...termenv.OutputOption) *Screen {
	return &Screen{
		w:        w,
		out:      termenv.NewOutput(w, opts...),
		renderer: lipgloss.NewRenderer(w, opts...),
	}
}

// Draw clears the screen and writes lines from the top-left corner.
// The foreground color changes only where a run's color differs from the
// previous run's.
func (s *Screen) Draw(lines []layout.Line) error {
	var b strings.Builder
	for _, line := range lines {
		for _, run := range coalesce(line) {
			b.WriteString(s.paint(run))
		}
		b.WriteString(lineEnd)
	}
	return s.frame(b.String())
}

// DrawText clears the screen and writes text verbatim, one terminal line per
// text line.
func (s *Screen) DrawText(text string) error {
	return s.frame(strings.ReplaceAll(text, "\n", lineEnd) + lineEnd)
}

func (s *Screen) frame(content string) error {
	s.out.ClearScreen()
	if _, err := io.WriteString(s.w, content); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Reset restores default colors and shows the cursor
func (s *Screen) Reset() {
	s.out.Reset()
	s.out.ShowCursor()
}

func (s *Screen) HideCursor() {
	s.out.HideCursor()
}

func (s *Screen) paint(run element.ColoredText) string {
	if run.Color == nil {
		return run.Text
	}
	return s.renderer.NewStyle().Foreground(run.Color).Render(run.Text)
}

// coalesce joins adjacent same-colored runs
func coalesce(line layout.Line) layout.Line {
	var out layout.Line
	for _, run := range line {
		if n := len(out); n > 0 && element.SameColor(out[n-1].Color, run.Color) {
			out[n-1].Text += run.Text
			continue
		}
		out = append(out, run)
	}
	return out
}
