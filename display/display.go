// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package display prints programs and their runs to a terminal.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/program"
	"github.com/ezrec/turing/runner"
	"github.com/ezrec/turing/tape"
	"github.com/ezrec/turing/universe"
)

const (
	HEAD_COLOR  = "#f472b6" // Cell under the head.
	HALT_COLOR  = "#fb7185" // Halt state.
	STATE_COLOR = "#818cf8" // Regular states.
)

// Printer writes a program listing and a line per step.
type Printer struct {
	Program *program.Program
	Window  int // Minimum cells shown on each side of the origin.

	out *termenv.Output
}

// NewPrinter creates a printer for prog on w. The colour profile is
// detected from w; use termenv.WithProfile(termenv.Ascii) for plain text.
func NewPrinter(w io.Writer, prog *program.Program, opts ...termenv.OutputOption) (p *Printer) {
	p = &Printer{
		Program: prog,
		out:     termenv.NewOutput(w, opts...),
	}

	return
}

// state renders a state name, coloured.
func (p *Printer) state(state machine.State) string {
	name := p.Program.StateName(state)
	color := STATE_COLOR
	if state.IsHalt() {
		color = HALT_COLOR
	}
	return p.out.String(name).Foreground(p.out.Color(color)).String()
}

// Header prints the program name, symbol and state sets, and the transition
// function in declaration order.
func (p *Printer) Header() {
	prog := p.Program

	var symbols []string
	for _, symbol := range prog.Symbols() {
		symbols = append(symbols, symbol.String())
	}

	var states []string
	for _, state := range prog.States() {
		states = append(states, prog.StateName(state))
	}

	fmt.Fprintf(p.out, "machine: %v\n", prog.Name)
	fmt.Fprintf(p.out, "symbols: %v\n", strings.Join(symbols, " "))
	fmt.Fprintf(p.out, "states: %v\n", strings.Join(states, " "))
	fmt.Fprintf(p.out, "initial state: %v\n", p.state(prog.Initial))
	fmt.Fprintf(p.out, "transition function:\n")
	fmt.Fprintf(p.out, "  (current state, scanned symbol) -> (print symbol, move tape, next state)\n")

	for _, rule := range prog.Builder.Added() {
		fmt.Fprintf(p.out, "  (%v, %v) -> (%v, %v, %v)\n",
			prog.StateName(rule.Input.State), rule.Input.Symbol,
			rule.Write, rule.Action, prog.StateName(rule.Output.State))
	}

	fmt.Fprintf(p.out, "\ncomputation\n")
	fmt.Fprintf(p.out, "sequence :: state :: tape\n")
}

// window returns the span of positions shown for a universe: the
// materialized tape, the head, and Window cells around the origin.
func (p *Printer) window(u *universe.Universe) (lo, hi int) {
	lo, hi = -p.Window, p.Window
	if tlo, thi, ok := u.Tape.Bounds(); ok {
		lo = min(lo, tlo)
		hi = max(hi, thi)
	}
	lo = min(lo, u.Head)
	hi = max(hi, u.Head)

	return
}

// Tape renders the universe tape, with the head cell bracketed.
func (p *Printer) Tape(u *universe.Universe) string {
	lo, hi := p.window(u)

	var sb strings.Builder
	for pos, symbol := range u.Tape.Cells(lo, hi+1) {
		if pos == u.Head {
			cell := "[" + symbol.String() + "]"
			sb.WriteString(p.out.String(cell).Bold().Foreground(p.out.Color(HEAD_COLOR)).String())
		} else {
			sb.WriteString(symbol.String())
		}
	}

	return sb.String()
}

// Step prints one line of the computation.
func (p *Printer) Step(step runner.Step) {
	u := step.Universe
	name := p.Program.StateName(u.State())
	pad := max(0, 5-len(name))
	state := strings.Repeat(" ", pad/2) + p.state(u.State()) + strings.Repeat(" ", pad-pad/2)

	fmt.Fprintf(p.out, "%8d :: %v :: %v\n", step.Index, state, p.Tape(u))
}

// Summary prints the outcome of a run.
func (p *Printer) Summary(steps int, u *universe.Universe, err error) {
	if err != nil {
		fmt.Fprintf(p.out, "\nstopped after %d steps: %v\n", steps, err)
		return
	}

	fmt.Fprintf(p.out, "\nhalted after %d steps: %v\n", steps, tape.Join(u.Tape.Trimmed()))
}
