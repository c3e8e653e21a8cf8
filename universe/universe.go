// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package universe composes a tape, a head and a machine into a runnable
// Turing machine.
package universe

import (
	"context"
	"log/slog"

	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/tape"
)

// Universe state. Tape + head + machine.
type Universe struct {
	Log *slog.Logger // If set, each tick is logged at debug level.

	Tape    *tape.Tape       // Tape contents.
	Head    int              // Current head position.
	Machine *machine.Machine // Control unit.

	Ticks int // Transitions taken since creation.
}

// NewUniverse creates a universe with the initial symbols placed from
// position 1, the head at head, and the machine in the initial state.
func NewUniverse(symbols []machine.Symbol, head int, initial machine.State, function *machine.TransitionFunction) (u *Universe) {
	u = &Universe{
		Tape:    tape.NewTape(symbols...),
		Head:    head,
		Machine: machine.NewMachine(initial, function),
	}

	return
}

// State returns the current machine state.
func (u *Universe) State() machine.State {
	return u.Machine.State
}

// Halted returns true once the machine has halted.
func (u *Universe) Halted() bool {
	return u.Machine.Halted()
}

// Scanned returns the symbol under the head.
func (u *Universe) Scanned() machine.Symbol {
	return u.Tape.Read(u.Head)
}

// Tick performs a single fetch, decide, write and move cycle.
//
// A halted universe ticks as a no-op. On error the tape, head and state are
// unchanged, and the error wraps the machine failure in an *ErrTick.
func (u *Universe) Tick() (write machine.Write, action machine.Action, err error) {
	halted := u.Machine.Halted()
	scanned := u.Tape.Read(u.Head)

	write, action, err = u.Machine.Tick(scanned)
	if err != nil {
		err = &ErrTick{Tick: u.Ticks, Head: u.Head, Err: err}
		return
	}

	from := u.Head
	u.Tape.Write(write, u.Head)
	u.Head += action.Offset()

	if halted {
		return
	}

	u.Ticks++

	if u.Log != nil && u.Log.Enabled(context.Background(), slog.LevelDebug) {
		u.Log.Debug("tick",
			"tick", u.Ticks,
			"head", from,
			"scanned", scanned.String(),
			"write", write.String(),
			"action", action.String(),
			"state", u.Machine.State.String(),
		)
	}

	return
}
