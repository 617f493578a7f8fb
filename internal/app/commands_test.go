package app

import (
	"context"
	"math"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandKinds(t *testing.T) {
	none := None[string]()
	assert.True(t, none.IsNone())
	_, ok := none.ExitCode()
	assert.False(t, ok)

	var zero Command[string]
	assert.True(t, zero.IsNone(), "zero value is None")

	stop := StopApp[string](7)
	code, ok := stop.ExitCode()
	assert.True(t, ok)
	assert.Equal(t, 7, code)
	_, produced := stop.Execute(context.Background())
	assert.False(t, produced)

	run := Perform("greet", func(context.Context) (string, bool) { return "hi", true })
	assert.True(t, run.IsRunnable())
	assert.Equal(t, "greet", run.Name())
	msg, produced := run.Execute(context.Background())
	assert.True(t, produced)
	assert.Equal(t, "hi", msg)

	assert.True(t, Perform[string]("nil", nil).IsNone())
}

func TestRandomInt(t *testing.T) {
	ctx := context.Background()
	seen := make(map[int]bool)
	for range 500 {
		n, ok := RandomInt(3, 7, func(n int) int { return n }).Execute(ctx)
		require.True(t, ok)
		if n < 3 || n >= 7 {
			t.Fatalf("RandomInt(3, 7) = %d, out of range", n)
		}
		seen[n] = true
	}
	assert.Len(t, seen, 4, "every value in [3, 7) should appear")

	for _, to := range []int{5, 4, -10} {
		n, ok := RandomInt(5, to, func(n int) int { return n }).Execute(ctx)
		require.True(t, ok)
		assert.Equal(t, 5, n, "RandomInt(5, %d)", to)
	}
}

func TestRandomInt_WideRanges(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		from, to int
	}{
		{math.MinInt, math.MaxInt},
		{math.MinInt, 0},
		{-1, math.MaxInt},
		{math.MaxInt - 1, math.MaxInt},
	}
	for _, tt := range tests {
		for range 50 {
			n, ok := RandomInt(tt.from, tt.to, func(n int) int { return n }).Execute(ctx)
			require.True(t, ok)
			assert.GreaterOrEqual(t, n, tt.from)
			assert.Less(t, n, tt.to)
		}
	}
}

func TestNewID(t *testing.T) {
	ctx := context.Background()
	a, _ := NewID(func(id uuid.UUID) uuid.UUID { return id }).Execute(ctx)
	b, _ := NewID(func(id uuid.UUID) uuid.UUID { return id }).Execute(ctx)
	assert.NotEqual(t, uuid.Nil, a)
	assert.NotEqual(t, a, b)
	assert.Equal(t, uuid.Version(4), a.Version())
}

func TestAfter(t *testing.T) {
	ctx := context.Background()

	start := time.Now()
	msg, ok := After(30*time.Millisecond, func() string { return "done" }).Execute(ctx)
	require.True(t, ok)
	assert.Equal(t, "done", msg)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)

	start = time.Now()
	_, ok = After(-time.Second, func() string { return "now" }).Execute(ctx)
	require.True(t, ok)
	assert.Less(t, time.Since(start), time.Second)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, ok = After(time.Hour, func() string { return "never" }).Execute(cancelled)
	assert.False(t, ok)
}

type teaTick struct{}

func TestFromTea(t *testing.T) {
	ctx := context.Background()
	convert := func(m tea.Msg) (string, bool) {
		if _, ok := m.(teaTick); ok {
			return "tick", true
		}
		return "", false
	}

	assert.True(t, FromTea[string](nil, convert).IsNone())

	msg, ok := FromTea(func() tea.Msg { return teaTick{} }, convert).Execute(ctx)
	assert.True(t, ok)
	assert.Equal(t, "tick", msg)

	_, ok = FromTea(func() tea.Msg { return nil }, convert).Execute(ctx)
	assert.False(t, ok)

	_, ok = FromTea(func() tea.Msg { return tea.WindowSizeMsg{} }, convert).Execute(ctx)
	assert.False(t, ok, "convert may drop messages")
}
