// Package view draws view results produced by a program onto a device.
package view

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"consoletea/internal/app"
	"consoletea/internal/element"
	"consoletea/internal/layout"
	"consoletea/internal/textutil"
)

// ErrUnsupportedView is returned when a view result has a type the renderer
// cannot draw.
var ErrUnsupportedView = errors.New("unsupported view result")

// DefaultFallbackWidth is the layout width used when the device size is unknown.
const DefaultFallbackWidth = 80

// diagnosticColor paints the one-line message shown in place of a failed frame.
var diagnosticColor = lipgloss.Color("1")

// Device is an output surface measured in cells
type Device interface {
	Size() (app.Size, error)
	Draw(lines []layout.Line) error
	DrawText(text string) error
}

// Renderer lays out view results at the device width and draws them.
// It accepts element.Element, []layout.Line, string and nil results.
type Renderer struct {
	device   Device
	fallback int
}

var _ app.Renderer = (*Renderer)(nil)

type Option func(*Renderer)

// WithFallbackWidth sets the width used when the device cannot report its size.
func WithFallbackWidth(w int) Option {
	return func(r *Renderer) {
		if w > 0 {
			r.fallback = w
		}
	}
}

// NewRenderer returns a Renderer drawing to d
func NewRenderer(d Device, opts ...Option) *Renderer {
	r := &Renderer{device: d, fallback: DefaultFallbackWidth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render draws v. A layout failure or an unsupported result replaces the
// frame with a diagnostic line and is returned.
func (r *Renderer) Render(_ context.Context, v any) error {
	switch v := v.(type) {
	case nil:
		return nil
	case element.Element:
		lines, err := layout.Render(v, element.Context{AvailableWidth: uint(r.width())})
		if err != nil {
			err = fmt.Errorf("layout: %w", err)
			return errors.Join(err, r.diagnose(err.Error()))
		}
		return r.device.Draw(lines)
	case []layout.Line:
		return r.device.Draw(v)
	case string:
		return r.device.DrawText(v)
	default:
		err := fmt.Errorf("%w: %T", ErrUnsupportedView, v)
		return errors.Join(err, r.diagnose(err.Error()))
	}
}

func (r *Renderer) width() int {
	size, err := r.device.Size()
	if err != nil || size.Width <= 0 {
		return r.fallback
	}
	return size.Width
}

func (r *Renderer) diagnose(msg string) error {
	line := layout.Line{element.Colored(textutil.Truncate(msg, r.width()), diagnosticColor)}
	return r.device.Draw([]layout.Line{line})
}

// Of lifts a function from model to element tree into a Program View.
func Of[Model, Msg any](fn func(Model) element.Element) func(Model, app.Dispatch[Msg]) any {
	return func(m Model, _ app.Dispatch[Msg]) any {
		return fn(m)
	}
}
