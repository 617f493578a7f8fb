package app

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// RandomInt returns a command producing a cryptographically random integer
// in [from, to). When to <= from the result is from.
func RandomInt[M any](from, to int, onGenerated func(int) M) Command[M] {
	return Perform("random-int", func(context.Context) (M, bool) {
		if to <= from {
			return onGenerated(from), true
		}
		// The span of [from, to) can exceed the int range.
		lo := big.NewInt(int64(from))
		span := new(big.Int).Sub(big.NewInt(int64(to)), lo)
		v, err := rand.Int(rand.Reader, span)
		if err != nil {
			panic(fmt.Errorf("random int in [%d, %d): %w", from, to, err))
		}
		return onGenerated(int(v.Add(v, lo).Int64())), true
	})
}

// NewID returns a command producing a random (version 4) UUID.
func NewID[M any](onGenerated func(uuid.UUID) M) Command[M] {
	return Perform("new-id", func(context.Context) (M, bool) {
		return onGenerated(uuid.New()), true
	})
}

// After returns a command producing onElapsed() once d has passed.
// A non-positive d fires immediately.
func After[M any](d time.Duration, onElapsed func() M) Command[M] {
	d = max(d, 0)
	return Perform("after", func(ctx context.Context) (M, bool) {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-timer.C:
			return onElapsed(), true
		case <-ctx.Done():
			var zero M
			return zero, false
		}
	})
}

// FromTea adapts a Bubble Tea command. convert maps the tea.Msg it produces
// onto the program's message type and may drop it by returning false.
// A nil cmd yields None.
func FromTea[M any](cmd tea.Cmd, convert func(tea.Msg) (M, bool)) Command[M] {
	if cmd == nil {
		return None[M]()
	}
	return Perform("tea", func(context.Context) (M, bool) {
		msg := cmd()
		if msg == nil {
			var zero M
			return zero, false
		}
		return convert(msg)
	})
}
