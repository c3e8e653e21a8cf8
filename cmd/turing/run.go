// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ezrec/turing/program"
	"github.com/ezrec/turing/runner"
)

const (
	DEFAULT_LIMIT = 1000
)

func newRunCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "run",
		Short: "Run a program until it halts",
		Long: `Runs a program, printing the tape after every step.

The run stops when the machine halts, when a transition is undefined,
after --limit steps (0 for no limit), or on interrupt.`,
		Args: cobra.NoArgs,
		RunE: runRun,
	}

	addProgramFlags(cmd)
	cmd.Flags().IntP("limit", "n", DEFAULT_LIMIT, "Stop after this many steps (0 for no limit)")
	cmd.Flags().Int("head", 0, "Override the initial head position")
	cmd.Flags().String("tape", "", "Override the initial tape, placed from position 1")
	cmd.Flags().Int("window", 0, "Always show at least this many cells each side of the origin")
	cmd.Flags().BoolP("quiet", "q", false, "Only print the final tape")
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")

	return
}

// applyOverrides applies the --head and --tape flags to prog.
func applyOverrides(cmd *cobra.Command, prog *program.Program) (err error) {
	if cmd.Flags().Changed("head") {
		prog.Head, _ = cmd.Flags().GetInt("head")
	}

	if cmd.Flags().Changed("tape") {
		text, _ := cmd.Flags().GetString("tape")
		prog.Tape, err = program.ParseTape(text)
	}

	return
}

// serveMetrics serves the registry at /metrics on addr, until the
// returned stop function is called.
func serveMetrics(log *slog.Logger, addr string, registry *prometheus.Registry) (stop func()) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		log.Info("serving metrics", "addr", addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server", "error", err)
		}
	}()

	stop = func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("metrics server shutdown", "error", err)
		}
	}

	return
}

func runRun(cmd *cobra.Command, args []string) (err error) {
	prog, err := loadProgram(cmd)
	if err != nil {
		return
	}

	err = applyOverrides(cmd, prog)
	if err != nil {
		return
	}

	log, closer, err := newLogger(cmd)
	if err != nil {
		return
	}
	defer closer()

	limit, _ := cmd.Flags().GetInt("limit")
	window, _ := cmd.Flags().GetInt("window")
	quiet, _ := cmd.Flags().GetBool("quiet")
	metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

	u := prog.Universe()
	u.Log = log.With("machine", prog.Name)

	r := &runner.Runner{
		Universe: u,
		Limit:    limit,
		Log:      u.Log,
	}

	if len(metricsAddr) != 0 {
		registry := prometheus.NewRegistry()
		r.Metrics = runner.NewMetrics(registry)
		stop := serveMetrics(log, metricsAddr, registry)
		defer stop()
	}

	p := newPrinter(cmd, cmd.OutOrStdout(), prog)
	p.Window = window
	if !quiet {
		p.Header()
		r.Observe = p.Step
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	steps, err := r.Run(ctx)
	p.Summary(steps, u, err)

	return
}
