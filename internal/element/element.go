// Package element defines the immutable UI tree rendered by the layout engine.
//
// A tree is built from two node kinds:
//   - Paragraph: a sequence of colored text runs with a border and text alignment
//   - Row: a sequence of child elements laid out side by side in equal-width columns
//
// Values are never mutated after construction. The With* methods return
// modified copies and constructors copy their slice arguments, so a tree held
// by one model snapshot is independent of every other snapshot.
package element

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color is a terminal foreground color. A nil Color inherits the terminal default.
type Color = lipgloss.TerminalColor

// ColoredText is a run of text drawn in a single color.
type ColoredText struct {
	Text  string
	Color Color
}

// Text returns an uncolored run.
func Text(s string) ColoredText {
	return ColoredText{Text: s}
}

// Colored returns a run drawn in c.
func Colored(s string, c Color) ColoredText {
	return ColoredText{Text: s, Color: c}
}

// WithColor returns a copy of t drawn in c.
func (t ColoredText) WithColor(c Color) ColoredText {
	t.Color = c
	return t
}

// SameColor reports whether two colors are the same for the purpose of
// merging adjacent runs. Colors are compared with ==, so a Color's dynamic
// type must be comparable. All lipgloss color types are.
func SameColor(a, b Color) bool {
	return a == b
}

// Element is a node of the UI tree. The set of implementations is closed:
// Row and Paragraph.
type Element interface {
	element()
}

// Match calls the function matching e's concrete kind and returns its result.
// It panics on an unknown kind, which can only happen if a new node kind is
// added without updating Match.
func Match[T any](e Element, whenRow func(Row) T, whenParagraph func(Paragraph) T) T {
	switch e := e.(type) {
	case Row:
		return whenRow(e)
	case Paragraph:
		return whenParagraph(e)
	default:
		panic(fmt.Sprintf("element: unknown element kind %T", e))
	}
}

// Context carries layout constraints top-down through the tree.
type Context struct {
	AvailableWidth uint
}

// WithAvailableWidth returns a copy of c with a different width.
func (c Context) WithAvailableWidth(w uint) Context {
	c.AvailableWidth = w
	return c
}
