package app

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Renderer draws a view result. Returning an error does not stop the
// program; the runtime logs it and keeps going.
type Renderer interface {
	Render(ctx context.Context, view any) error
}

// RendererFunc adapts a function to Renderer
type RendererFunc func(ctx context.Context, view any) error

func (f RendererFunc) Render(ctx context.Context, view any) error {
	return f(ctx, view)
}

// TaskKind identifies the kind of background task that failed
type TaskKind string

const (
	TaskCommand      TaskKind = "command"
	TaskSubscription TaskKind = "subscription"
)

// TaskFailure describes a background task that panicked or returned an error.
type TaskFailure struct {
	Kind TaskKind
	Name string
	Err  error
}

type options struct {
	renderer  Renderer
	logger    *log.Logger
	tracer    trace.TracerProvider
	onFailure func(TaskFailure)
}

// Option configures Run.
type Option func(*options)

// WithRenderer sets the renderer that receives every view result.
func WithRenderer(r Renderer) Option {
	return func(o *options) { o.renderer = r }
}

// WithLogger sets the logger for runtime events
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTracerProvider enables tracing of update cycles, commands and subscriptions.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracer = tp }
}

// WithFailureHook registers fn to be called, from the failing task's
// goroutine, whenever a background task panics or returns an error.
func WithFailureHook(fn func(TaskFailure)) Option {
	return func(o *options) { o.onFailure = fn }
}

func newOptions(opts []Option) options {
	o := options{
		renderer: RendererFunc(func(context.Context, any) error { return nil }),
		logger:   log.New(io.Discard),
		tracer:   noop.NewTracerProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
