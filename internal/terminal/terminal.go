// Package terminal implements the device capabilities the runtime consumes:
// raw keystroke input, terminal size and colored output.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/creack/pty"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"

	"consoletea/internal/app"
)

// Terminal is an interactive terminal attached to a pair of files, usually
// os.Stdin and os.Stdout.
type Terminal struct {
	*Screen

	in    *os.File
	out   *os.File
	state *term.State

	mu      sync.Mutex
	reader  cancelreader.CancelReader
	pending []tea.Key
}

// Ensure Terminal provides the runtime's device interfaces
var (
	_ app.SizeSource = (*Terminal)(nil)
	_ app.KeySource  = (*Terminal)(nil)
)

// Open puts in into raw mode when it is a terminal and hides the cursor on out.
// Close restores both.
func Open(in, out *os.File) (*Terminal, error) {
	t := &Terminal{Screen: NewScreen(out), in: in, out: out}
	if term.IsTerminal(int(in.Fd())) {
		state, err := term.MakeRaw(int(in.Fd()))
		if err != nil {
			return nil, fmt.Errorf("enter raw mode: %w", err)
		}
		t.state = state
	}
	t.HideCursor()
	return t, nil
}

// Close releases the key reader and restores the terminal state.
func (t *Terminal) Close() error {
	t.mu.Lock()
	if t.reader != nil {
		t.reader.Cancel()
		_ = t.reader.Close()
		t.reader = nil
	}
	t.mu.Unlock()

	t.Reset()
	if t.state != nil {
		if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
	}
	return nil
}

// Size returns the output terminal size in cells
func (t *Terminal) Size() (app.Size, error) {
	ws, err := pty.GetsizeFull(t.out)
	if err != nil {
		return app.Size{}, fmt.Errorf("get terminal size: %w", err)
	}
	return app.Size{Width: int(ws.Cols), Height: int(ws.Rows)}, nil
}

// ReadKey blocks until a keystroke arrives or ctx is cancelled. Input that
// holds several keys at once (paste, escape sequences) is returned one key
// per call.
func (t *Terminal) ReadKey(ctx context.Context) (tea.Key, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	buf := make([]byte, 256)
	for len(t.pending) == 0 {
		if err := ctx.Err(); err != nil {
			return tea.Key{}, err
		}
		if t.reader == nil {
			r, err := cancelreader.NewReader(t.in)
			if err != nil {
				return tea.Key{}, fmt.Errorf("open key reader: %w", err)
			}
			t.reader = r
		}

		r := t.reader
		stop := context.AfterFunc(ctx, func() { r.Cancel() })
		n, err := r.Read(buf)
		stop()
		if err != nil {
			if errors.Is(err, cancelreader.ErrCanceled) {
				// A cancelled reader cannot be reused.
				_ = r.Close()
				t.reader = nil
				if ctx.Err() != nil {
					return tea.Key{}, ctx.Err()
				}
			}
			return tea.Key{}, fmt.Errorf("read input: %w", err)
		}
		t.pending = append(t.pending, decodeKeys(buf[:n])...)
	}

	k := t.pending[0]
	t.pending = t.pending[1:]
	return k, nil
}
