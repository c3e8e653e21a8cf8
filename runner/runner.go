// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package runner drives a universe until it halts.
//
// The universe itself never stops on its own; Runner is the caller loop
// that ticks it, reports every step, and applies the caller's step limit
// and cancellation.
package runner

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/translate"
	"github.com/ezrec/turing/universe"
)

var f = translate.From

var (
	ErrLimit = errors.New(f("step limit reached"))
)

// Step is a report of the universe after a tick. Step 0 is the initial
// configuration, with no write or action.
type Step struct {
	Index    int
	Universe *universe.Universe
	Write    machine.Write
	Action   machine.Action
}

// Runner is the driver loop for a single universe.
type Runner struct {
	Universe *universe.Universe
	Limit    int          // If > 0, stop with ErrLimit after this many steps.
	Log      *slog.Logger // If set, logs the run.
	Metrics  *Metrics     // If set, records the run.
	Observe  func(step Step)
}

// observe reports a step, and updates the gauges.
func (r *Runner) observe(step Step) {
	if r.Metrics != nil {
		lo, hi, ok := step.Universe.Tape.Bounds()
		cells := 0
		if ok {
			cells = hi - lo + 1
		}
		r.Metrics.Cells.Set(float64(cells))
		r.Metrics.Head.Set(float64(step.Universe.Head))
	}

	if r.Observe != nil {
		r.Observe(step)
	}
}

// Run ticks the universe until it halts, a tick fails, the limit is reached
// or ctx is done. It returns the number of steps taken.
func (r *Runner) Run(ctx context.Context) (steps int, err error) {
	u := r.Universe

	defer func() {
		if r.Log != nil {
			if err != nil {
				r.Log.Warn("run stopped", "steps", steps, "head", u.Head, "error", err)
			} else {
				r.Log.Info("run halted", "steps", steps, "head", u.Head)
			}
		}
		if r.Metrics != nil {
			if err != nil {
				r.Metrics.Errors.WithLabelValues(errorKind(err)).Inc()
			} else {
				r.Metrics.Halts.Inc()
			}
		}
	}()

	if r.Log != nil {
		r.Log.Info("run", "head", u.Head, "state", u.State().String(), "limit", r.Limit)
	}

	r.observe(Step{Index: 0, Universe: u})

	for !u.Halted() {
		if r.Limit > 0 && steps >= r.Limit {
			err = ErrLimit
			return
		}

		err = ctx.Err()
		if err != nil {
			return
		}

		var step Step
		step.Write, step.Action, err = u.Tick()
		if err != nil {
			return
		}

		steps++
		if r.Metrics != nil {
			r.Metrics.Ticks.Inc()
		}

		step.Index = steps
		step.Universe = u
		r.observe(step)
	}

	return
}
