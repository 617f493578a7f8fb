// Command guessing is a number guessing game: the program picks a secret
// digit and the player presses keys until they find it.
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
	"consoletea/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err == nil {
		cfg, err = cli.ParseFlags("guessing", "Guess the secret number between 0 and 9.", cfg, os.Args[1:], os.Stderr)
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
		cfg.ServiceName = "guessing"
	}
	s, err := cli.Open(ctx, cfg)
	if err != nil {
		return 1, err
	}
	defer s.Close()

	return app.Run(ctx, app.Program[model, msg]{
		Init:          initGame,
		Update:        update,
		View:          view.Of[model, msg](render),
		Subscriptions: subscriptions(s.Terminal),
	}, s.Options()...)
}
