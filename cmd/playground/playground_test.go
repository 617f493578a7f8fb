package main

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consoletea/internal/app"
	"consoletea/internal/layout"
)

func TestInit(t *testing.T) {
	mod, cmd := initPlayground(flags{size: app.Size{Width: 90, Height: 20}, refresh: time.Second})
	assert.Equal(t, app.Size{Width: 90, Height: 20}, mod.size)
	assert.True(t, mod.bordered)
	assert.Equal(t, "new-id", cmd.Name())

	m, ok := cmd.Execute(context.Background())
	require.True(t, ok)
	started, isStarted := m.(sessionStarted)
	require.True(t, isStarted)
	assert.NotEqual(t, uuid.Nil, started.id)
}

func TestUpdate(t *testing.T) {
	mod, _ := initPlayground(flags{size: app.Size{Width: 90, Height: 20}})

	id := uuid.New()
	mod, cmd := update(sessionStarted{id}, mod)
	assert.Equal(t, id, mod.session)
	assert.True(t, cmd.IsRunnable(), "clock starts ticking")

	at := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	mod, cmd = update(clockTicked{at}, mod)
	assert.Equal(t, at, mod.now)
	assert.True(t, cmd.IsRunnable(), "clock keeps ticking")

	mod, cmd = update(resized{app.Size{Width: 40, Height: 10}}, mod)
	assert.Equal(t, app.Size{Width: 40, Height: 10}, mod.size)
	assert.True(t, cmd.IsNone())

	for range len(spin.Frames) {
		mod, _ = update(spun{}, mod)
	}
	assert.Equal(t, 0, mod.frame, "spinner wraps around")

	mod, _ = update(keyPressed{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("b")}}, mod)
	assert.False(t, mod.bordered)

	_, cmd = update(keyPressed{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}}, mod)
	code, ok := cmd.ExitCode()
	assert.True(t, ok)
	assert.Equal(t, 0, code)
}

func TestRender(t *testing.T) {
	mod := model{size: app.Size{Width: 61, Height: 20}, bordered: true}

	v := render(mod, nil)
	lines, ok := v.([]layout.Line)
	require.True(t, ok, "got %T", v)

	got := layout.Strings(lines)
	assert.Contains(t, got[0], "Layout playground")
	assert.Contains(t, got[0], "61x20")

	var top string
	for _, l := range got {
		if strings.HasPrefix(l, "╔") {
			top = l
			break
		}
	}
	require.NotEmpty(t, top, "row border drawn")
	assert.Equal(t, 2, strings.Count(top, "╦"))
	for _, l := range got {
		assert.LessOrEqual(t, layout.Line{{Text: l}}.Width(), 61, l)
	}
}

func TestRender_TooNarrow(t *testing.T) {
	v := render(model{size: app.Size{Width: 3}, bordered: true}, nil)
	s, ok := v.(string)
	require.True(t, ok, "got %T", v)
	assert.Contains(t, s, "terminal too narrow")
}

func TestTick(t *testing.T) {
	if testing.Short() {
		t.Skip("waits for the next whole second")
	}
	m, ok := tick().Execute(context.Background())
	require.True(t, ok)
	_, isTick := m.(clockTicked)
	assert.True(t, isTick)
}
