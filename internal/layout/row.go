package layout

import (
	"fmt"
	"strings"

	"consoletea/internal/element"
	"consoletea/internal/textutil"
)

// RenderRow lays r's children out side by side. Every child gets the same
// share of the width left after border reservation. A column is as wide as
// its share or its widest rendered line, whichever is larger, and narrower
// child lines are positioned inside it by the cell's HorizontalAlignment.
func RenderRow(r element.Row, ctx element.Context) ([]Line, error) {
	n := len(r.Elements)
	if n == 0 {
		return nil, nil
	}

	border := r.Attributes.Border
	avail := int(ctx.AvailableWidth)
	if !border.IsNone() {
		reserve := n + 1
		if avail < reserve {
			return nil, fmt.Errorf("%w: bordered row of %d columns needs %d columns for borders, have %d",
				ErrInsufficientWidth, n, reserve, avail)
		}
		avail -= reserve
	}
	share := avail / n
	if share == 0 {
		return nil, fmt.Errorf("%w: %d columns cannot share %d cells", ErrInsufficientWidth, n, avail)
	}

	columns := make([][]Line, n)
	widths := make([]int, n)
	height := 0
	for i, cell := range r.Elements {
		lines, err := Render(cell.Element, ctx.WithAvailableWidth(uint(share)))
		if err != nil {
			return nil, fmt.Errorf("row column %d: %w", i, err)
		}
		widths[i] = max(share, MaxWidth(lines))
		columns[i] = alignSlot(lines, widths[i], cell.HorizontalAlignment)
		height = max(height, len(lines))
	}

	var sep *element.ColoredText
	if !border.IsNone() {
		s := element.Colored(string(border.Glyphs().Vertical), border.Color)
		sep = &s
	}

	out := make([]Line, 0, height+2)
	if sep != nil {
		g := border.Glyphs()
		out = append(out, ruleLine(widths, g.TopLeft, g.Horizontal, g.TopTee, g.TopRight, border.Color))
	}
	for y := range height {
		var line Line
		for i, col := range columns {
			if sep != nil {
				line = append(line, *sep)
			}
			if y < len(col) {
				line = append(line, col[y]...)
			} else {
				line = append(line, element.Text(textutil.Spaces(widths[i])))
			}
		}
		if sep != nil {
			line = append(line, *sep)
		}
		out = append(out, line)
	}
	if sep != nil {
		g := border.Glyphs()
		out = append(out, ruleLine(widths, g.BottomLeft, g.Horizontal, g.BottomTee, g.BottomRight, border.Color))
	}
	return out, nil
}

func ruleLine(widths []int, left, fill, tee, right rune, color element.Color) Line {
	var b strings.Builder
	b.WriteRune(left)
	for i, w := range widths {
		if i > 0 {
			b.WriteRune(tee)
		}
		b.WriteString(textutil.Repeat(fill, w))
	}
	b.WriteRune(right)
	return Line{element.Colored(b.String(), color)}
}
