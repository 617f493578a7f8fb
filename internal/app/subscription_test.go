package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingSub counts starts and reports its key on cancellation.
type blockingSub struct {
	key       string
	starts    *atomic.Int32
	cancelled chan string
}

func (b blockingSub) Subscribe(ctx context.Context, _ Dispatch[string]) error {
	b.starts.Add(1)
	<-ctx.Done()
	b.cancelled <- b.key
	return ctx.Err()
}

func TestReconcile(t *testing.T) {
	rt := newRuntime[string](newOptions(nil))
	defer rt.live.stopAll()
	ctx := context.Background()

	var starts atomic.Int32
	cancelled := make(chan string, 10)
	sub := func(key string) Subscription[string] {
		return blockingSub{key: key, starts: &starts, cancelled: cancelled}
	}

	first := Subscriptions[string]{"keys": sub("keys"), "size": sub("size")}
	rt.reconcile(ctx, first)
	assert.Equal(t, []string{"keys", "size"}, rt.live.Keys())
	require.Eventually(t, func() bool { return starts.Load() == 2 }, time.Second, 5*time.Millisecond)

	// Same mapping again: nothing starts, nothing stops.
	rt.reconcile(ctx, first)
	rt.reconcile(ctx, Subscriptions[string]{"keys": sub("keys"), "size": sub("size")})
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(2), starts.Load())
	assert.Empty(t, cancelled)

	// Dropping a key cancels only that subscription.
	rt.reconcile(ctx, Subscriptions[string]{"keys": sub("keys")})
	select {
	case key := <-cancelled:
		assert.Equal(t, "size", key)
	case <-time.After(time.Second):
		t.Fatal("size subscription was not cancelled")
	}
	assert.Equal(t, []string{"keys"}, rt.live.Keys())

	// A new key starts; the nil entry is ignored.
	rt.reconcile(ctx, Subscriptions[string]{"keys": sub("keys"), "tick": sub("tick"), "gone": nil})
	require.Eventually(t, func() bool { return starts.Load() == 3 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"keys", "tick"}, rt.live.Keys())

	rt.reconcile(ctx, nil)
	got := map[string]bool{}
	for range 2 {
		select {
		case key := <-cancelled:
			got[key] = true
		case <-time.After(time.Second):
			t.Fatal("subscriptions were not cancelled")
		}
	}
	assert.Equal(t, map[string]bool{"keys": true, "tick": true}, got)
	assert.Empty(t, rt.live.Keys())
}

func TestDiff(t *testing.T) {
	noop := SubscriptionFunc[int](func(context.Context, Dispatch[int]) error { return nil })
	live := map[string]context.CancelFunc{"a": func() {}, "b": func() {}}
	start, stop := diff(live, Subscriptions[int]{"b": noop, "d": noop, "c": noop})
	assert.Equal(t, []string{"c", "d"}, start)
	assert.Equal(t, []string{"a"}, stop)
}

func TestSubscriptionsWith(t *testing.T) {
	noop := SubscriptionFunc[int](func(context.Context, Dispatch[int]) error { return nil })
	base := NoSubscriptions[int]()
	one := base.With("a", noop)
	two := one.With("b", noop)
	assert.Len(t, base, 0)
	assert.Len(t, one, 1)
	assert.Len(t, two, 2)
}

// collector is a Dispatch target safe for concurrent use.
type collector[M any] struct {
	mu   sync.Mutex
	msgs []M
}

func (c *collector[M]) dispatch(m M) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, m)
}

func (c *collector[M]) snapshot() []M {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]M(nil), c.msgs...)
}

type scriptedSize struct {
	mu    sync.Mutex
	sizes []Size
	reads int
}

func (s *scriptedSize) Size() (Size, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := min(s.reads, len(s.sizes)-1)
	s.reads++
	return s.sizes[i], nil
}

func TestTerminalSize_DispatchesOnChange(t *testing.T) {
	src := &scriptedSize{sizes: []Size{
		{80, 24}, {80, 24}, {100, 30}, {100, 30}, {90, 30},
	}}
	var got collector[Size]
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- TerminalSize(src, 0, func(s Size) Size { return s }).Subscribe(ctx, got.dispatch)
	}()

	require.Eventually(t, func() bool { return len(got.snapshot()) == 2 }, 2*time.Second, 10*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, []Size{{100, 30}, {90, 30}}, got.snapshot())
}

func TestTerminalSize_ReadError(t *testing.T) {
	boom := errors.New("no tty")
	src := sizeFunc(func() (Size, error) { return Size{}, boom })
	err := TerminalSize(src, time.Millisecond, func(s Size) Size { return s }).Subscribe(context.Background(), func(Size) {})
	assert.ErrorIs(t, err, boom)
}

type sizeFunc func() (Size, error)

func (f sizeFunc) Size() (Size, error) { return f() }

type chanKeys chan tea.Key

func (c chanKeys) ReadKey(ctx context.Context) (tea.Key, error) {
	select {
	case k := <-c:
		return k, nil
	case <-ctx.Done():
		return tea.Key{}, ctx.Err()
	}
}

func TestKeyPress(t *testing.T) {
	keys := make(chanKeys, 3)
	keys <- tea.Key{Type: tea.KeyRunes, Runes: []rune("q")}
	keys <- tea.Key{Type: tea.KeyEnter}
	keys <- tea.Key{Type: tea.KeyCtrlC}

	var got collector[string]
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- KeyPress(keys, func(k tea.KeyMsg) string { return k.String() }).Subscribe(ctx, got.dispatch)
	}()

	require.Eventually(t, func() bool { return len(got.snapshot()) == 3 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	assert.Equal(t, []string{"q", "enter", "ctrl+c"}, got.snapshot())
}

func TestEvery(t *testing.T) {
	var ticks atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Every(5*time.Millisecond, func() struct{} { return struct{}{} }).Subscribe(ctx, func(struct{}) { ticks.Add(1) })
	}()
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	err := Every(0, func() struct{} { return struct{}{} }).Subscribe(context.Background(), func(struct{}) {})
	assert.ErrorIs(t, err, ErrNonPositiveInterval)
}
