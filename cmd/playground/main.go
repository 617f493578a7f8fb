// Command playground shows a bordered row of paragraphs that reflows as the
// terminal is resized.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"consoletea/internal/app"
	"consoletea/internal/cli"
	"consoletea/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err == nil {
		cfg, err = cli.ParseFlags("playground", "Resize the terminal to watch the layout reflow.", cfg, os.Args[1:], os.Stderr)
	}
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	code, err := run(cfg)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(code)
}

func run(cfg config.Config) (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ServiceName == "" {
		cfg.ServiceName = "playground"
	}
	s, err := cli.Open(ctx, cfg)
	if err != nil {
		return 1, err
	}
	defer s.Close()

	size, err := s.Terminal.Size()
	if err != nil {
		s.Logger.Warn("terminal size unavailable", "err", err, "fallback_width", cfg.FallbackWidth)
		size = app.Size{Width: cfg.FallbackWidth}
	}

	return app.RunWithFlags(ctx, flags{size: size, refresh: cfg.SizePoll}, initPlayground,
		app.Program[model, msg]{
			Update:        update,
			View:          render,
			Subscriptions: subscriptions(s.Terminal),
		}, s.Options()...)
}
