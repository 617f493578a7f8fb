package app

import (
	"context"
	"fmt"
)

type commandKind int

const (
	commandNone commandKind = iota
	commandRunnable
	commandStop
)

func (k commandKind) String() string {
	switch k {
	case commandNone:
		return "none"
	case commandRunnable:
		return "runnable"
	case commandStop:
		return "stop"
	default:
		return fmt.Sprintf("commandKind(%d)", int(k))
	}
}

// Command describes a one-shot side effect returned from Init or Update.
// A command is None, Runnable (asynchronous work yielding at most one
// message) or StopApp (terminate Run with an exit code). The zero value is None.
type Command[M any] struct {
	kind     commandKind
	name     string
	run      func(ctx context.Context) (M, bool)
	exitCode int
}

// None returns the command that does nothing.
func None[M any]() Command[M] {
	return Command[M]{}
}

// Perform returns a Runnable command. run executes on its own goroutine; if
// it reports ok its message is dispatched to the program. name labels the
// command in logs and traces.
func Perform[M any](name string, run func(ctx context.Context) (msg M, ok bool)) Command[M] {
	if run == nil {
		return None[M]()
	}
	return Command[M]{kind: commandRunnable, name: name, run: run}
}

// StopApp returns the command that ends Run with exitCode.
func StopApp[M any](exitCode int) Command[M] {
	return Command[M]{kind: commandStop, exitCode: exitCode}
}

// IsNone reports whether c has no effect.
func (c Command[M]) IsNone() bool { return c.kind == commandNone }

// IsRunnable reports whether c carries asynchronous work.
func (c Command[M]) IsRunnable() bool { return c.kind == commandRunnable }

// ExitCode returns the exit code of a StopApp command.
func (c Command[M]) ExitCode() (int, bool) {
	return c.exitCode, c.kind == commandStop
}

// Name returns the label given to Perform, or the command kind.
func (c Command[M]) Name() string {
	if c.name != "" {
		return c.name
	}
	return c.kind.String()
}

// Execute runs a Runnable command synchronously and returns its message.
// Other kinds return the zero message and false. The runtime uses it on a
// background goroutine; tests use it to inspect commands returned by Update.
func (c Command[M]) Execute(ctx context.Context) (M, bool) {
	switch c.kind {
	case commandRunnable:
		return c.run(ctx)
	case commandNone, commandStop:
		var zero M
		return zero, false
	default:
		panic(fmt.Sprintf("app: unknown command kind %v", c.kind))
	}
}
