package element

import "fmt"

// BorderKind enumerates the border styles.
type BorderKind int

const (
	BorderNone BorderKind = iota
	BorderThin
	BorderDouble
)

func (k BorderKind) String() string {
	switch k {
	case BorderNone:
		return "none"
	case BorderThin:
		return "thin"
	case BorderDouble:
		return "double"
	default:
		return fmt.Sprintf("BorderKind(%d)", int(k))
	}
}

// Border is a border kind with an optional color. The zero value is no border.
type Border struct {
	Kind  BorderKind
	Color Color
}

// NoBorder returns the absent border.
func NoBorder() Border { return Border{} }

// ThinBorder returns a single-line border. color may be nil.
func ThinBorder(color Color) Border { return Border{Kind: BorderThin, Color: color} }

// DoubleBorder returns a double-line border. color may be nil.
func DoubleBorder(color Color) Border { return Border{Kind: BorderDouble, Color: color} }

// IsNone reports whether b draws nothing.
func (b Border) IsNone() bool { return b.Kind == BorderNone }

// Glyphs holds the box-drawing characters for one border kind.
// Cross pieces (TopTee, BottomTee) separate row columns.
type Glyphs struct {
	TopLeft     rune
	Horizontal  rune
	TopRight    rune
	Vertical    rune
	BottomLeft  rune
	BottomRight rune
	TopTee      rune
	BottomTee   rune
}

// Glyphs returns the drawing characters for b. It panics for BorderNone and
// unknown kinds; callers check IsNone first.
func (b Border) Glyphs() Glyphs {
	switch b.Kind {
	case BorderThin:
		return Glyphs{
			TopLeft:     '┌',
			Horizontal:  '─',
			TopRight:    '┐',
			Vertical:    '│',
			BottomLeft:  '└',
			BottomRight: '┘',
			TopTee:      '┬',
			BottomTee:   '┴',
		}
	case BorderDouble:
		return Glyphs{
			TopLeft:     '╔',
			Horizontal:  '═',
			TopRight:    '╗',
			Vertical:    '║',
			BottomLeft:  '╚',
			BottomRight: '╝',
			TopTee:      '╦',
			BottomTee:   '╩',
		}
	default:
		panic(fmt.Sprintf("element: no glyphs for border kind %v", b.Kind))
	}
}
