package element

import "slices"

// ParagraphAttributes configures how a paragraph is drawn.
// BackgroundColor is carried for applications; the layout engine does not paint it.
type ParagraphAttributes struct {
	BackgroundColor Color
	Border          Border
	TextAlign       TextAlignment
}

// Paragraph is a block of text runs reflowed to the available width.
type Paragraph struct {
	Attributes ParagraphAttributes
	Elements   []ColoredText
}

func (Paragraph) element() {}

// NewParagraph returns a paragraph holding a copy of runs.
func NewParagraph(attrs ParagraphAttributes, runs ...ColoredText) Paragraph {
	return Paragraph{Attributes: attrs, Elements: slices.Clone(runs)}
}

// WithBorder returns a copy of p with border b.
func (p Paragraph) WithBorder(b Border) Paragraph {
	p.Attributes.Border = b
	p.Elements = slices.Clone(p.Elements)
	return p
}

// WithTextAlign returns a copy of p with alignment a.
func (p Paragraph) WithTextAlign(a TextAlignment) Paragraph {
	p.Attributes.TextAlign = a
	p.Elements = slices.Clone(p.Elements)
	return p
}

// WithBackground returns a copy of p with background color c.
func (p Paragraph) WithBackground(c Color) Paragraph {
	p.Attributes.BackgroundColor = c
	p.Elements = slices.Clone(p.Elements)
	return p
}

// Append returns a copy of p with runs added at the end.
func (p Paragraph) Append(runs ...ColoredText) Paragraph {
	p.Elements = append(slices.Clone(p.Elements), runs...)
	return p
}
