package layout

import (
	"fmt"
	"slices"

	"consoletea/internal/element"
	"consoletea/internal/textutil"
)

// pads splits gap into left and right padding for alignment a.
// Centering favors the left side on odd gaps.
func pads(gap int, a element.TextAlignment) (left, right int) {
	if gap <= 0 {
		return 0, 0
	}
	switch a {
	case element.TextAlignLeft:
		return 0, gap
	case element.TextAlignCenter:
		return gap/2 + gap%2, gap / 2
	case element.TextAlignRight:
		return gap, 0
	default:
		panic(fmt.Sprintf("layout: unknown text alignment %v", a))
	}
}

// AlignLine pads line with blanks to exactly width cells according to a.
// Lines already at least width wide are returned unchanged.
func AlignLine(line Line, width int, a element.TextAlignment) Line {
	left, right := pads(width-line.Width(), a)
	out := make(Line, 0, len(line)+2)
	if left > 0 {
		out = append(out, element.Text(textutil.Spaces(left)))
	}
	out = append(out, line...)
	if right > 0 {
		out = append(out, element.Text(textutil.Spaces(right)))
	}
	return out
}

// Align pads every line to the widest line's width.
func Align(lines []Line, a element.TextAlignment) []Line {
	widest := MaxWidth(lines)
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = AlignLine(l, widest, a)
	}
	return out
}

// slotAlignment maps a column alignment onto the equivalent text alignment.
func slotAlignment(a element.HorizontalAlignment) element.TextAlignment {
	switch a {
	case element.AlignLeft:
		return element.TextAlignLeft
	case element.AlignCenter:
		return element.TextAlignCenter
	case element.AlignRight:
		return element.TextAlignRight
	default:
		panic(fmt.Sprintf("layout: unknown horizontal alignment %v", a))
	}
}

// alignSlot positions every line inside a column width cells wide.
func alignSlot(lines []Line, width int, a element.HorizontalAlignment) []Line {
	ta := slotAlignment(a)
	out := slices.Clone(lines)
	for i, l := range out {
		out[i] = AlignLine(l, width, ta)
	}
	return out
}
