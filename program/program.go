// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package program describes a runnable Turing machine: a named transition
// table, the initial configuration, and display names for its states.
//
// Programs are built in Go (see package preset), or loaded from YAML or
// Starlark definition files.
package program

import (
	"slices"

	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/universe"
)

// Program is a transition table plus the configuration to start it from.
type Program struct {
	Name    string                   // Human readable name.
	Head    int                      // Initial head position.
	Initial machine.State            // Initial state.
	Tape    []machine.Symbol         // Initial symbols, placed from position 1.
	Names   map[machine.State]string // Display names of states.
	Builder *machine.Builder         // Rules, in declaration order.
}

// Universe creates a fresh universe running the program.
func (prog *Program) Universe() *universe.Universe {
	return universe.NewUniverse(prog.Tape, prog.Head, prog.Initial, prog.Builder.Build())
}

// StateName returns the display name of a state.
func (prog *Program) StateName(state machine.State) string {
	if state.IsHalt() {
		return state.String()
	}

	name, ok := prog.Names[state]
	if ok {
		return name
	}

	return state.String()
}

// States returns the non-halt states, initial state first.
func (prog *Program) States() (states []machine.State) {
	states = prog.Builder.States()
	if prog.Initial.IsHalt() {
		return
	}

	n := slices.Index(states, prog.Initial)
	switch {
	case n < 0:
		states = slices.Insert(states, 0, prog.Initial)
	case n > 0:
		states = slices.Insert(slices.Delete(states, n, n+1), 0, prog.Initial)
	}

	return
}

// Symbols returns the symbol set, blank first when used.
func (prog *Program) Symbols() (symbols []machine.Symbol) {
	symbols = prog.Builder.Symbols()
	for _, symbol := range prog.Tape {
		if !slices.Contains(symbols, symbol) {
			symbols = append(symbols, symbol)
		}
	}

	n := slices.Index(symbols, machine.Blank())
	if n > 0 {
		symbols = slices.Insert(slices.Delete(symbols, n, n+1), 0, machine.Blank())
	}

	return
}

// Check reports duplicated rules in the program.
func (prog *Program) Check() error {
	return prog.Builder.Check()
}
