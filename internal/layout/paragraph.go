package layout

import (
	"fmt"

	"consoletea/internal/element"
	"consoletea/internal/textutil"
)

// paragraphBorderReserve is the width a bordered paragraph spends on two
// border glyphs and two padding blanks.
const paragraphBorderReserve = 4

// RenderParagraph reflows, aligns and optionally borders p.
func RenderParagraph(p element.Paragraph, ctx element.Context) ([]Line, error) {
	border := p.Attributes.Border
	if !border.IsNone() {
		if ctx.AvailableWidth <= paragraphBorderReserve {
			return nil, fmt.Errorf("%w: bordered paragraph needs more than %d columns, have %d",
				ErrInsufficientWidth, paragraphBorderReserve, ctx.AvailableWidth)
		}
		ctx = ctx.WithAvailableWidth(ctx.AvailableWidth - paragraphBorderReserve)
	}

	reflown, err := Reflow(p.Elements, ctx)
	if err != nil {
		return nil, err
	}
	widest := MaxWidth(reflown)
	aligned := make([]Line, len(reflown))
	for i, l := range reflown {
		aligned[i] = AlignLine(l, widest, p.Attributes.TextAlign)
	}
	if border.IsNone() {
		return aligned, nil
	}

	g := border.Glyphs()
	rule := func(left, right rune) Line {
		return Line{element.Colored(string(left)+textutil.Repeat(g.Horizontal, widest+2)+string(right), border.Color)}
	}

	out := make([]Line, 0, len(aligned)+2)
	out = append(out, rule(g.TopLeft, g.TopRight))
	for _, l := range aligned {
		content := make(Line, 0, len(l)+2)
		content = append(content, element.Colored(string(g.Vertical)+" ", border.Color))
		content = append(content, l...)
		content = append(content, element.Colored(" "+string(g.Vertical), border.Color))
		out = append(out, content)
	}
	out = append(out, rule(g.BottomLeft, g.BottomRight))
	return out, nil
}
