// Package cli holds the setup shared by the example binaries: flag parsing
// on top of environment config, and wiring a terminal, logger and tracer into
// runtime options.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"consoletea/internal/app"
	"consoletea/internal/config"
	"consoletea/internal/logging"
	"consoletea/internal/terminal"
	"consoletea/internal/trace"
	"consoletea/internal/view"
)

// ParseFlags parses args on top of cfg. Flags override the environment.
func ParseFlags(name, about string, cfg config.Config, args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "append logs to this file (default: discard)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.IntVar(&cfg.FallbackWidth, "fallback-width", cfg.FallbackWidth, "layout width when the terminal size is unknown")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags]\n\n", name)
		fmt.Fprintf(stderr, "%s\n\n", about)
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Session is an opened terminal plus the logger and tracer a program runs with.
type Session struct {
	Terminal *terminal.Terminal
	Logger   *log.Logger
	Config   config.Config

	tracer   *sdktrace.TracerProvider
	closeLog func() error
}

// Replaced in tests.
var (
	newTracerProvider = trace.NewProvider
	openTerminal      = func() (*terminal.Terminal, error) { return terminal.Open(os.Stdin, os.Stdout) }
)

// Open starts logging and tracing and takes over the terminal on stdin/stdout.
// Close must be called to give the terminal back.
func Open(ctx context.Context, cfg config.Config) (*Session, error) {
	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, err
	}

	tp, err := newTracerProvider(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	term, err := openTerminal()
	if err != nil {
		_ = shutdownTracer(tp)
		_ = closeLog()
		return nil, err
	}

	return &Session{
		Terminal: term,
		Logger:   logger,
		Config:   cfg,
		tracer:   tp,
		closeLog: closeLog,
	}, nil
}

// Options returns the runtime options for a program drawing to the session.
func (s *Session) Options() []app.Option {
	opts := []app.Option{
		app.WithLogger(s.Logger),
		app.WithRenderer(view.NewRenderer(s.Terminal, view.WithFallbackWidth(s.Config.FallbackWidth))),
	}
	if s.tracer != nil {
		opts = append(opts, app.WithTracerProvider(s.tracer))
	}
	return opts
}

// Close restores the terminal, flushes spans and closes the log file.
func (s *Session) Close() error {
	return errors.Join(
		s.Terminal.Close(),
		shutdownTracer(s.tracer),
		s.closeLog(),
	)
}

// shutdownTracer flushes pending spans; nil means tracing is off
func shutdownTracer(tp *sdktrace.TracerProvider) error {
	if tp == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return tp.Shutdown(ctx)
}
