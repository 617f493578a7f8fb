package element

import "fmt"

// TextAlignment positions reflown lines inside a paragraph.
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

func (a TextAlignment) String() string {
	switch a {
	case TextAlignLeft:
		return "left"
	case TextAlignCenter:
		return "center"
	case TextAlignRight:
		return "right"
	default:
		return fmt.Sprintf("TextAlignment(%d)", int(a))
	}
}

// HorizontalAlignment positions a child inside its row column.
type HorizontalAlignment int

const (
	AlignLeft HorizontalAlignment = iota
	AlignCenter
	AlignRight
)

func (a HorizontalAlignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return fmt.Sprintf("HorizontalAlignment(%d)", int(a))
	}
}
