package layout

import (
	"fmt"
	"slices"
	"strings"

	"consoletea/internal/element"
	"consoletea/internal/textutil"
)

// glyph is one character together with the color of the run it came from.
type glyph struct {
	r     rune
	color element.Color
}

// wrapper is the greedy word-wrap state machine behind Reflow.
type wrapper struct {
	width int

	out       [][]glyph
	line      []glyph
	word      []glyph
	lineWidth int
	wordWidth int
}

func (w *wrapper) feed(r rune, color element.Color) {
	switch r {
	case '\n':
		w.breakLine()
		return
	case '\t':
		r = ' '
	}

	w.word = append(w.word, glyph{r: r, color: color})
	w.wordWidth += textutil.RuneWidth(r)

	if r == ' ' {
		w.endWord()
		return
	}
	if w.wordWidth >= w.width {
		w.breakLine()
	}
}

// endWord places the word just terminated by a space.
func (w *wrapper) endWord() {
	lone := len(w.word) == 1
	if w.lineWidth+w.wordWidth > w.width {
		w.out = append(w.out, w.line)
		w.line, w.lineWidth = nil, 0
	}
	if !lone {
		w.line = append(w.line, w.word...)
		w.lineWidth += w.wordWidth
	}
	w.word, w.wordWidth = nil, 0
}

// breakLine ends the current line unconditionally. A pending line that cannot
// hold the pending word is emitted on its own first.
func (w *wrapper) breakLine() {
	if len(w.line) > 0 && w.lineWidth+w.wordWidth > w.width {
		w.out = append(w.out, w.line, w.word)
	} else {
		w.out = append(w.out, append(w.line, w.word...))
	}
	w.line, w.lineWidth = nil, 0
	w.word, w.wordWidth = nil, 0
}

func (w *wrapper) finish() [][]glyph {
	if len(w.line) > 0 || len(w.word) > 0 {
		w.out = append(w.out, append(w.line, w.word...))
	}
	return w.out
}

// Reflow word-wraps runs to ctx.AvailableWidth while keeping every character's
// color. Tabs become spaces, newlines force breaks, and a word wider than the
// available width is split at the width.
//
// Empty input yields exactly one line holding the input. Whitespace goes
// through the wrap like any other text, so blanks-only input collapses to one
// empty line and each newline still starts a line.
func Reflow(runs []element.ColoredText, ctx element.Context) ([]Line, error) {
	if isEmpty(runs) {
		return []Line{Line(slices.Clone(runs))}, nil
	}
	if ctx.AvailableWidth == 0 {
		return nil, fmt.Errorf("%w: reflow needs at least 1 column", ErrInsufficientWidth)
	}

	w := &wrapper{width: int(ctx.AvailableWidth)}
	for _, run := range runs {
		for _, r := range run.Text {
			w.feed(r, run.Color)
		}
	}
	// Trailing separator flushes the last word; trimSeparator removes it again.
	w.feed(' ', nil)

	raw := w.finish()
	lines := make([]Line, len(raw))
	for i, l := range raw {
		lines[i] = mergeColors(l)
	}
	return trimSeparator(lines), nil
}

func isEmpty(runs []element.ColoredText) bool {
	for _, r := range runs {
		if r.Text != "" {
			return false
		}
	}
	return true
}

// mergeColors joins maximal spans of same-colored glyphs into runs.
func mergeColors(glyphs []glyph) Line {
	var (
		line  Line
		b     strings.Builder
		color element.Color
	)
	for i, g := range glyphs {
		if i > 0 && !element.SameColor(g.color, color) {
			line = append(line, element.ColoredText{Text: b.String(), Color: color})
			b.Reset()
		}
		color = g.color
		b.WriteRune(g.r)
	}
	if b.Len() > 0 {
		line = append(line, element.ColoredText{Text: b.String(), Color: color})
	}
	return line
}

// trimSeparator removes the space left at the end of the last line by the
// trailing separator fed in Reflow.
func trimSeparator(lines []Line) []Line {
	if len(lines) == 0 {
		return []Line{{}}
	}
	last := lines[len(lines)-1]
	if len(last) == 0 {
		return lines
	}
	seg := last[len(last)-1]
	switch {
	case seg.Text == " ":
		if len(last) == 1 {
			lines = lines[:len(lines)-1]
			if len(lines) == 0 {
				return []Line{{}}
			}
			return lines
		}
		lines[len(lines)-1] = last[:len(last)-1]
	case strings.HasSuffix(seg.Text, " "):
		seg.Text = seg.Text[:len(seg.Text)-1]
		trimmed := slices.Clone(last)
		trimmed[len(trimmed)-1] = seg
		lines[len(lines)-1] = trimmed
	}
	return lines
}
