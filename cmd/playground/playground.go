package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"consoletea/internal/app"
	"consoletea/internal/element"
	"consoletea/internal/layout"
)

const (
	filler = "Palavras Palavras Palavras Palavras Palavras Palavras Palavras Palavras Palavras "
	digits = "1234567890123456789012345678901234567890123456789012345678901234567890123456789012345678901234567890"
)

var spin = spinner.Line

// flags is the state the program starts from.
type flags struct {
	size    app.Size
	refresh time.Duration
}

type msg interface{ isMsg() }

type resized struct{ size app.Size }

type spun struct{}

type clockTicked struct{ at time.Time }

type sessionStarted struct{ id uuid.UUID }

type keyPressed struct{ key tea.KeyMsg }

func (resized) isMsg()        {}
func (spun) isMsg()           {}
func (clockTicked) isMsg()    {}
func (sessionStarted) isMsg() {}
func (keyPressed) isMsg()     {}

type model struct {
	size     app.Size
	refresh  time.Duration
	frame    int
	now      time.Time
	session  uuid.UUID
	bordered bool
}

func initPlayground(f flags) (model, app.Command[msg]) {
	return model{size: f.size, refresh: f.refresh, bordered: true},
		app.NewID(func(id uuid.UUID) msg { return sessionStarted{id} })
}

// tick asks Bubble Tea's timer for the next whole second.
func tick() app.Command[msg] {
	return app.FromTea(
		tea.Every(time.Second, func(t time.Time) tea.Msg { return t }),
		func(m tea.Msg) (msg, bool) {
			t, ok := m.(time.Time)
			return clockTicked{t}, ok
		})
}

func update(m msg, mod model) (model, app.Command[msg]) {
	switch m := m.(type) {
	case sessionStarted:
		mod.session = m.id
		return mod, tick()
	case clockTicked:
		mod.now = m.at
		return mod, tick()
	case resized:
		mod.size = m.size
	case spun:
		mod.frame = (mod.frame + 1) % len(spin.Frames)
	case keyPressed:
		switch m.key.String() {
		case "q", "ctrl+c", "esc":
			return mod, app.StopApp[msg](0)
		case "b":
			mod.bordered = !mod.bordered
		}
	}
	return mod, app.None[msg]()
}

func subscriptions(term interface {
	app.SizeSource
	app.KeySource
}) func(model) app.Subscriptions[msg] {
	return func(mod model) app.Subscriptions[msg] {
		return app.NoSubscriptions[msg]().
			With("terminal-size", app.TerminalSize(term, mod.refresh, func(s app.Size) msg { return resized{s} })).
			With("keypress", app.KeyPress(term, func(k tea.KeyMsg) msg { return keyPressed{k} })).
			With("spinner", app.Every(spin.FPS, func() msg { return spun{} }))
	}
}

var (
	headerColor = lipgloss.Color("4")
	borderColor = lipgloss.Color("6")
	dimColor    = lipgloss.Color("8")
)

// render lays the playground out at the model's width. Frames that cannot
// fit come back as a plain message instead.
func render(mod model, _ app.Dispatch[msg]) any {
	ctx := element.Context{AvailableWidth: uint(max(mod.size.Width, 0))}

	header, err := layout.Render(headerOf(mod), ctx)
	if err != nil {
		return fmt.Sprintf("terminal too narrow (%d columns): %v", mod.size.Width, err)
	}
	body, err := layout.Render(bodyOf(mod), ctx)
	if err != nil {
		return fmt.Sprintf("terminal too narrow (%d columns): %v", mod.size.Width, err)
	}
	return append(header, body...)
}

func headerOf(mod model) element.Element {
	clock := "--:--:--"
	if !mod.now.IsZero() {
		clock = mod.now.Format(time.TimeOnly)
	}
	session := "starting"
	if mod.session != uuid.Nil {
		session = mod.session.String()[:8]
	}
	return element.NewParagraph(element.ParagraphAttributes{},
		element.Colored(spin.Frames[mod.frame]+" Layout playground", headerColor),
		element.Colored(fmt.Sprintf("  %dx%d  %s  session %s  [b] border  [q] quit",
			mod.size.Width, mod.size.Height, clock, session), dimColor),
	)
}

func bodyOf(mod model) element.Element {
	border := element.NoBorder()
	if mod.bordered {
		border = element.DoubleBorder(borderColor)
	}
	return element.NewRow(element.RowAttributes{Border: border},
		element.AlignedCell(element.AlignCenter,
			element.NewParagraph(element.ParagraphAttributes{TextAlign: element.TextAlignCenter}, element.Text(filler))),
		element.Cell(
			element.NewParagraph(element.ParagraphAttributes{TextAlign: element.TextAlignLeft}, element.Text(digits))),
		element.AlignedCell(element.AlignRight,
			element.NewParagraph(element.ParagraphAttributes{TextAlign: element.TextAlignRight}, element.Text(digits))),
	)
}
