// Package app runs programs built on the Model-Update-View loop.
//
// A Program supplies four functions:
//   - Init builds the first model and an initial Command
//   - Update folds one message into the model and returns the next Command
//   - View turns a model into something a Renderer can draw
//   - Subscriptions names the long-lived event sources the model wants active
//
// Run owns a mailbox that commands, subscriptions and View callbacks post
// messages to. The loop takes one message at a time, so Update, View and
// subscription reconciliation never run concurrently with each other.
// Commands and subscriptions run on their own goroutines; a panic or error in
// one of them is logged and never reaches the loop.
//
// # Basic Usage
//
//	code, err := app.Run(ctx, app.Program[Model, Msg]{
//	    Init:          initModel,
//	    Update:        update,
//	    View:          view,
//	    Subscriptions: subscriptions,
//	}, app.WithRenderer(renderer))
//
// Run returns when Init or Update produces StopApp, or when ctx is cancelled.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Dispatch posts a message to the running program. It never blocks and is
// safe to call from any goroutine.
type Dispatch[M any] func(M)

// Program is the set of functions that define an application.
// Init and Update are required; View and Subscriptions may be nil.
type Program[Model, Msg any] struct {
	Init          func() (Model, Command[Msg])
	Update        func(Msg, Model) (Model, Command[Msg])
	View          func(Model, Dispatch[Msg]) any
	Subscriptions func(Model) Subscriptions[Msg]
}

// ErrInvalidProgram is returned by Run when a required function is missing.
var ErrInvalidProgram = errors.New("invalid program")

// ExitInterrupted is the exit code Run returns when ctx ends before StopApp.
const ExitInterrupted = 1

const tracerName = "consoletea/app"

// runtime is the state of one Run invocation.
type runtime[M any] struct {
	mailbox  *mailbox[M]
	live     *liveSubscriptions
	renderer Renderer
	logger   *log.Logger
	tracer   trace.Tracer
	onFail   func(TaskFailure)
}

func newRuntime[M any](o options) *runtime[M] {
	return &runtime[M]{
		mailbox:  newMailbox[M](),
		live:     newLiveSubscriptions(),
		renderer: o.renderer,
		logger:   o.logger,
		tracer:   o.tracer.Tracer(tracerName),
		onFail:   o.onFailure,
	}
}

func (rt *runtime[M]) dispatch(msg M) {
	rt.mailbox.Post(msg)
}

// Run executes p until it stops. It returns the StopApp exit code, or
// ExitInterrupted and ctx's error if ctx ends first. Live subscriptions are
// cancelled before Run returns; in-flight commands are left to finish.
func Run[Model, Msg any](ctx context.Context, p Program[Model, Msg], opts ...Option) (int, error) {
	if p.Init == nil || p.Update == nil {
		return ExitInterrupted, fmt.Errorf("%w: Init and Update are required", ErrInvalidProgram)
	}

	rt := newRuntime[Msg](newOptions(opts))
	defer rt.live.stopAll()

	model, cmd := p.Init()
	rt.reconcile(ctx, desired(p, model))

	for cycle := 0; ; cycle++ {
		if code, ok := cmd.ExitCode(); ok {
			rt.logger.Info("program stopped", "exit_code", code, "cycles", cycle)
			return code, nil
		}
		rt.execute(ctx, cmd)
		if p.View != nil {
			rt.render(ctx, p.View(model, rt.dispatch))
		}

		msg, err := rt.mailbox.Receive(ctx)
		if err != nil {
			rt.logger.Warn("program interrupted", "err", err, "cycles", cycle)
			return ExitInterrupted, err
		}

		_, span := rt.tracer.Start(ctx, "app.update",
			trace.WithAttributes(
				attribute.String("message.type", fmt.Sprintf("%T", msg)),
				attribute.Int("cycle", cycle),
			))
		model, cmd = p.Update(msg, model)
		rt.reconcile(ctx, desired(p, model))
		span.SetAttributes(attribute.String("command", cmd.Name()))
		span.End()
	}
}

// RunWithFlags runs p with an Init that receives flags. p.Init is ignored.
func RunWithFlags[Flags, Model, Msg any](
	ctx context.Context,
	flags Flags,
	init func(Flags) (Model, Command[Msg]),
	p Program[Model, Msg],
	opts ...Option,
) (int, error) {
	if init == nil {
		return ExitInterrupted, fmt.Errorf("%w: init is required", ErrInvalidProgram)
	}
	p.Init = func() (Model, Command[Msg]) { return init(flags) }
	return Run(ctx, p, opts...)
}

func desired[Model, Msg any](p Program[Model, Msg], model Model) Subscriptions[Msg] {
	if p.Subscriptions == nil {
		return nil
	}
	return p.Subscriptions(model)
}

// render hands a view result to the renderer. Failures are logged and the
// loop continues with whatever is on screen.
func (rt *runtime[M]) render(ctx context.Context, view any) {
	ctx, span := rt.tracer.Start(ctx, "app.render",
		trace.WithAttributes(attribute.String("view.type", fmt.Sprintf("%T", view))))
	defer span.End()

	if err := rt.renderer.Render(ctx, view); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		rt.logger.Warn("render failed", "view_type", fmt.Sprintf("%T", view), "err", err)
	}
}

// execute launches a Runnable command on its own goroutine. The command's
// context is detached from ctx's cancellation: commands always run to completion.
func (rt *runtime[M]) execute(ctx context.Context, cmd Command[M]) {
	if !cmd.IsRunnable() {
		return
	}
	name := cmd.Name()
	cmdCtx, span := rt.tracer.Start(context.WithoutCancel(ctx), "app.command",
		trace.WithAttributes(attribute.String("command", name)))

	rt.spawn(span, TaskCommand, name, func() error {
		msg, ok := cmd.Execute(cmdCtx)
		span.SetAttributes(attribute.Bool("message", ok))
		if ok {
			rt.dispatch(msg)
		}
		return nil
	})
}

// reconcile starts desired subscriptions that are not live and cancels live
// ones that are no longer desired. Keys present in both are left alone.
func (rt *runtime[M]) reconcile(ctx context.Context, want Subscriptions[M]) {
	start, stop := diff(rt.live.cancels, want)

	for _, key := range stop {
		rt.live.cancels[key]()
		delete(rt.live.cancels, key)
		rt.logger.Debug("subscription stopped", "key", key)
	}

	for _, key := range start {
		sub := want[key]
		subCtx, cancel := context.WithCancel(ctx)
		subCtx, span := rt.tracer.Start(subCtx, "app.subscription",
			trace.WithAttributes(attribute.String("subscription", key)))
		rt.live.cancels[key] = cancel
		rt.logger.Debug("subscription started", "key", key)

		rt.spawn(span, TaskSubscription, key, func() error {
			return sub.Subscribe(subCtx, rt.dispatch)
		})
	}
}

// spawn runs fn on a new goroutine and isolates its failures: panics are
// recovered, and errors other than cancellation are reported. span ends when
// fn returns.
func (rt *runtime[M]) spawn(span trace.Span, kind TaskKind, name string, fn func() error) {
	go func() {
		defer span.End()
		defer func() {
			if r := recover(); r != nil {
				rt.fail(span, TaskFailure{Kind: kind, Name: name, Err: fmt.Errorf("panic: %v", r)})
			}
		}()

		if err := fn(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			rt.fail(span, TaskFailure{Kind: kind, Name: name, Err: err})
		}
	}()
}

func (rt *runtime[M]) fail(span trace.Span, f TaskFailure) {
	span.RecordError(f.Err)
	span.SetStatus(codes.Error, f.Err.Error())
	rt.logger.Error("background task failed", "kind", f.Kind, "name", f.Name, "err", f.Err)
	if rt.onFail != nil {
		rt.onFail(f)
	}
}
