package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/scificmdr/scificmdr/internal/app"
	"github.com/scificmdr/scificmdr/internal/config"
	"github.com/scificmdr/scificmdr/internal/logging"
)

const (
	exitChosen    = 0
	exitCancelled = 1
	exitConfig    = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitChosen
		}
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return exitConfig
	}

	if err := logging.Init(cfg.Logging()); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		return exitConfig
	}
	defer logging.Shutdown()

	streams := app.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
	a, err := app.New(cfg, streams)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading commands: %v\n", err)
		return exitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, err := a.Run(ctx)
	if err != nil {
		logging.Error("run failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCancelled
	}
	if out.Cancelled {
		return exitCancelled
	}

	fmt.Fprintln(streams.Out, out.Command)
	if out.Message != "" {
		fmt.Fprintln(streams.Err, out.Message)
	}
	if out.Output != nil {
		fmt.Fprint(streams.Out, formatOutput(out.Output))
	}
	return exitChosen
}

func formatOutput(v any) string {
	s := fmt.Sprint(v)
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
