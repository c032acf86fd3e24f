// Command slistbench times repeated head insertions into a singly linked list.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"go.expect.digital/linkedlist/internal/bench"
)

func configureLogging() {
	var level slog.Level

	switch os.Getenv("SLIST_LOG_LEVEL") {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func main() {
	var cfg bench.Config

	flag.IntVar(&cfg.Inserts, "n", 100_000, "head insertions per run")
	flag.IntVar(&cfg.Runs, "runs", 1, "number of runs")
	flag.Int64Var(&cfg.Value, "value", 111111111111, "inserted value")
	flag.Parse()

	configureLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting", "inserts", cfg.Inserts, "runs", cfg.Runs)

	res, err := bench.Execute(ctx, cfg)
	if err != nil {
		slog.Error("benchmark failed", "error", err)
		stop()
		os.Exit(1) //nolint:gocritic
	}

	if err := bench.Render(os.Stdout, res); err != nil {
		slog.Error("render failed", "error", err)
		stop()
		os.Exit(1) //nolint:gocritic
	}

	slog.Info("done", "total", res.Total())
}
