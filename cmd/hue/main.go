package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/c0rrell/hue-cli/internal/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	setupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.ExecuteContext(ctx, version); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	// Quiet by default; --debug lowers the threshold.
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
}
