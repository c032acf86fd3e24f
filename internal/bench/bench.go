// Package bench measures head insertion throughput of slist.List.
package bench

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"go.expect.digital/linkedlist/slist"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config describes a benchmark.
type Config struct {
	Inserts int   // head insertions per run
	Runs    int   // number of runs, each on a fresh list
	Value   int64 // value inserted
}

// Run is the outcome of one run.
type Run struct {
	Elapsed time.Duration
	Len     int
}

// PerInsert returns the average time of one insertion.
func (r Run) PerInsert() time.Duration {
	if r.Len == 0 {
		return 0
	}

	return r.Elapsed / time.Duration(r.Len)
}

// Result holds all runs of a benchmark.
type Result struct {
	Config Config
	Runs   []Run
}

// Total returns the sum of elapsed time over all runs.
func (r Result) Total() time.Duration {
	var total time.Duration

	for _, run := range r.Runs {
		total += run.Elapsed
	}

	return total
}

func (c Config) validate() error {
	if c.Inserts < 1 {
		return fmt.Errorf("inserts must be positive, got %d: %w", c.Inserts, ErrInvalidConfig)
	}

	if c.Runs < 1 {
		return fmt.Errorf("runs must be positive, got %d: %w", c.Runs, ErrInvalidConfig)
	}

	return nil
}

// Execute runs the benchmark. The context is checked between runs.
func Execute(ctx context.Context, cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}

	res := Result{Config: cfg, Runs: make([]Run, 0, cfg.Runs)}

	for i := range cfg.Runs {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("run %d: %w", i+1, err)
		}

		run := insertHead(cfg.Inserts, cfg.Value)
		res.Runs = append(res.Runs, run)

		slog.DebugContext(ctx, "run finished",
			"run", i+1, "inserts", cfg.Inserts, "elapsed", run.Elapsed)
	}

	return res, nil
}

func insertHead(n int, v int64) Run {
	l := slist.New[int64]()
	start := time.Now()

	for range n {
		l.InsertHead(v)
	}

	return Run{Elapsed: time.Since(start), Len: l.Len()}
}

// Render writes res as a table.
func Render(w io.Writer, res Result) error {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.Style().Format.Footer = text.FormatDefault
	tw.AppendHeader(table.Row{"Run", "Inserts", "Elapsed", "Per insert"})

	for i, run := range res.Runs {
		tw.AppendRow(table.Row{i + 1, run.Len, run.Elapsed, run.PerInsert()})
	}

	tw.AppendFooter(table.Row{"", "Total", res.Total(), ""})

	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return fmt.Errorf("render result: %w", err)
	}

	return nil
}
