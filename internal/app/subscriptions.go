package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MinSizeRefresh is the shortest interval at which TerminalSize polls.
const MinSizeRefresh = 50 * time.Millisecond

// Size is a terminal size in cells.
type Size struct {
	Width  int
	Height int
}

// SizeSource reads the current terminal size.
type SizeSource interface {
	Size() (Size, error)
}

// KeySource blocks until one keystroke is read or ctx is cancelled.
type KeySource interface {
	ReadKey(ctx context.Context) (tea.Key, error)
}

// TerminalSize polls src every refresh (at least MinSizeRefresh) and
// dispatches onChange whenever the size differs from the last one observed.
func TerminalSize[M any](src SizeSource, refresh time.Duration, onChange func(Size) M) Subscription[M] {
	refresh = max(refresh, MinSizeRefresh)
	return SubscriptionFunc[M](func(ctx context.Context, dispatch Dispatch[M]) error {
		prev, err := src.Size()
		if err != nil {
			return fmt.Errorf("read terminal size: %w", err)
		}

		ticker := time.NewTicker(refresh)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}

			cur, err := src.Size()
			if err != nil {
				return fmt.Errorf("read terminal size: %w", err)
			}
			if cur != prev {
				prev = cur
				dispatch(onChange(cur))
			}
		}
	})
}

// KeyPress dispatches onKey for every keystroke read from src until cancelled.
func KeyPress[M any](src KeySource, onKey func(tea.KeyMsg) M) Subscription[M] {
	return SubscriptionFunc[M](func(ctx context.Context, dispatch Dispatch[M]) error {
		for ctx.Err() == nil {
			key, err := src.ReadKey(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return fmt.Errorf("read key: %w", err)
			}
			dispatch(onKey(tea.KeyMsg(key)))
		}
		return ctx.Err()
	})
}

// ErrNonPositiveInterval is returned by Every when the interval is not positive.
var ErrNonPositiveInterval = errors.New("interval must be positive")

// Every dispatches onTick once per interval until cancelled.
func Every[M any](interval time.Duration, onTick func() M) Subscription[M] {
	return SubscriptionFunc[M](func(ctx context.Context, dispatch Dispatch[M]) error {
		if interval <= 0 {
			return fmt.Errorf("every %v: %w", interval, ErrNonPositiveInterval)
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				dispatch(onTick())
			}
		}
	})
}
