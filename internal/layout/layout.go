// Package layout renders element trees into width-bounded lines of colored text.
//
// All functions are pure: they take an element and a Context and return lines
// or an error, and they fail before producing any output when the available
// width cannot hold the requested borders.
package layout

import (
	"errors"
	"strings"

	"consoletea/internal/element"
	"consoletea/internal/textutil"
)

// ErrInsufficientWidth is returned when the available width cannot hold the
// border, padding or column reservation of an element.
var ErrInsufficientWidth = errors.New("insufficient width")

// Line is one terminal line made of colored runs.
type Line []element.ColoredText

// Width returns the number of terminal cells the line occupies.
func (l Line) Width() int {
	w := 0
	for _, t := range l {
		w += textutil.VisualWidth(t.Text)
	}
	return w
}

// String returns the line's text without color.
func (l Line) String() string {
	var b strings.Builder
	for _, t := range l {
		b.WriteString(t.Text)
	}
	return b.String()
}

// MaxWidth returns the width of the widest line, or 0 for no lines.
func MaxWidth(lines []Line) int {
	w := 0
	for _, l := range lines {
		w = max(w, l.Width())
	}
	return w
}

// Strings returns the uncolored text of every line.
func Strings(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.String()
	}
	return out
}

type rendered struct {
	lines []Line
	err   error
}

// Render lays out e within ctx.
func Render(e element.Element, ctx element.Context) ([]Line, error) {
	res := element.Match(e,
		func(r element.Row) rendered {
			lines, err := RenderRow(r, ctx)
			return rendered{lines, err}
		},
		func(p element.Paragraph) rendered {
			lines, err := RenderParagraph(p, ctx)
			return rendered{lines, err}
		})
	return res.lines, res.err
}
