package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"consoletea/internal/app"
	"consoletea/internal/element"
)

// celebration is how long the win screen stays up before the game exits.
const celebration = 2 * time.Second

// noSecret marks a model whose secret number has not been picked yet.
const noSecret = -1

type msg interface{ isMsg() }

type secretPicked struct{ n int }

type keyPressed struct{ key tea.KeyMsg }

type celebrationOver struct{}

func (secretPicked) isMsg()    {}
func (keyPressed) isMsg()      {}
func (celebrationOver) isMsg() {}

type model struct {
	secret  int
	guess   int
	guessed bool
}

func (mod model) solved() bool {
	return mod.guessed && mod.guess == mod.secret
}

type keyMap struct {
	Guess key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Guess, k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var keys = keyMap{
	Guess: key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("0-9", "guess"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func initGame() (model, app.Command[msg]) {
	return model{secret: noSecret}, app.RandomInt(0, 10, func(n int) msg { return secretPicked{n} })
}

func update(m msg, mod model) (model, app.Command[msg]) {
	switch m := m.(type) {
	case secretPicked:
		mod.secret = m.n
		return mod, app.None[msg]()
	case keyPressed:
		return mod.onKey(m.key)
	case celebrationOver:
		return mod, app.StopApp[msg](0)
	}
	return mod, app.None[msg]()
}

func (mod model) onKey(k tea.KeyMsg) (model, app.Command[msg]) {
	switch {
	case key.Matches(k, keys.Quit):
		return mod, app.StopApp[msg](0)
	case key.Matches(k, keys.Guess):
		return mod.withGuess(int(k.Runes[0] - '0'))
	}
	return mod, app.None[msg]()
}

// withGuess records a guess. Once the secret is found further guesses are
// ignored.
func (mod model) withGuess(n int) (model, app.Command[msg]) {
	if mod.solved() {
		return mod, app.None[msg]()
	}
	mod.guess, mod.guessed = n, true
	if !mod.solved() {
		return mod, app.None[msg]()
	}
	return mod, app.After(celebration, func() msg { return celebrationOver{} })
}

func subscriptions(src app.KeySource) func(model) app.Subscriptions[msg] {
	return func(model) app.Subscriptions[msg] {
		return app.NoSubscriptions[msg]().With("keypress",
			app.KeyPress(src, func(k tea.KeyMsg) msg { return keyPressed{k} }))
	}
}

var (
	titleColor = lipgloss.Color("6")
	lowColor   = lipgloss.Color("3")
	highColor  = lipgloss.Color("5")
	winColor   = lipgloss.Color("2")
	helpColor  = lipgloss.Color("8")
)

func render(mod model) element.Element {
	h := help.New()
	h.Styles = help.Styles{}

	runs := []element.ColoredText{
		element.Colored("Guessing game", titleColor),
		element.Text("\n\nPlease choose a number between 0 and 9 or press [q] to Quit\n"),
	}
	if mod.guessed {
		quality, c := guessQuality(mod)
		runs = append(runs,
			element.Text(fmt.Sprintf("\nYou guessed [%d]. Your guess is ", mod.guess)),
			element.Colored(quality, c),
			element.Text("\n"),
		)
	}
	runs = append(runs, element.Colored("\n"+h.ShortHelpView(keys.ShortHelp()), helpColor))

	return element.NewParagraph(element.ParagraphAttributes{}, runs...).
		WithBorder(element.DoubleBorder(titleColor))
}

func guessQuality(mod model) (string, element.Color) {
	switch {
	case mod.guess < mod.secret:
		return "too low.", lowColor
	case mod.guess > mod.secret:
		return "too high.", highColor
	default:
		return "perfect! Congratulations! (★‿★)", winColor
	}
}
