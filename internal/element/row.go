package element

import "slices"

// RowAttributes configures how a row is drawn.
type RowAttributes struct {
	Border Border
}

// RowElement is one column of a row.
type RowElement struct {
	HorizontalAlignment HorizontalAlignment
	Element             Element
}

// Cell returns a left-aligned column holding e.
func Cell(e Element) RowElement {
	return RowElement{Element: e}
}

// AlignedCell returns a column holding e positioned by a.
func AlignedCell(a HorizontalAlignment, e Element) RowElement {
	return RowElement{HorizontalAlignment: a, Element: e}
}

// Row lays its children out side by side.
type Row struct {
	Attributes RowAttributes
	Elements   []RowElement
}

func (Row) element() {}

// NewRow returns a row holding a copy of cells.
func NewRow(attrs RowAttributes, cells ...RowElement) Row {
	return Row{Attributes: attrs, Elements: slices.Clone(cells)}
}

// WithBorder returns a copy of r with border b.
func (r Row) WithBorder(b Border) Row {
	r.Attributes.Border = b
	r.Elements = slices.Clone(r.Elements)
	return r
}

// Append returns a copy of r with cells added at the end.
func (r Row) Append(cells ...RowElement) Row {
	r.Elements = append(slices.Clone(r.Elements), cells...)
	return r
}
