// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"errors"
	"fmt"
	"slices"
)

// Input is the key of a transition: the current state and scanned symbol.
type Input struct {
	State  State
	Symbol Symbol
}

// Output is the value of a transition.
type Output struct {
	Write  Write
	Action Action
	State  State // Next state, possibly Halt().
}

// Rule is a single declared transition.
type Rule struct {
	Input
	Output
}

func (r Rule) String() string {
	return fmt.Sprintf("(%v, %v) -> (%v, %v, %v)",
		r.Input.State, r.Input.Symbol, r.Write, r.Action, r.Output.State)
}

// TransitionFunction is the compiled, read-only transition table.
type TransitionFunction struct {
	table map[Input]Output
}

// Act looks up the transition for state and symbol.
func (tf *TransitionFunction) Act(state State, symbol Symbol) (out Output, err error) {
	input := Input{State: state, Symbol: symbol}

	var ok bool
	if tf != nil {
		out, ok = tf.table[input]
	}
	if !ok {
		err = ErrUndefined(input)
		return
	}

	return
}

// Len returns the number of distinct inputs in the table.
func (tf *TransitionFunction) Len() int {
	if tf == nil {
		return 0
	}
	return len(tf.table)
}

// Builder accumulates rules in declaration order.
type Builder struct {
	rules []Rule
}

// Add appends a rule. No validation is performed; if the input was
// already added, the later rule wins in Build.
func (b *Builder) Add(state State, symbol Symbol, write Write, action Action, next State) {
	b.rules = append(b.rules, Rule{
		Input:  Input{State: state, Symbol: symbol},
		Output: Output{Write: write, Action: action, State: next},
	})
}

// Added returns a copy of the rules in declaration order.
func (b *Builder) Added() []Rule {
	return slices.Clone(b.rules)
}

// Len returns the number of rules added.
func (b *Builder) Len() int {
	return len(b.rules)
}

// Build compiles the rules into a TransitionFunction.
func (b *Builder) Build() *TransitionFunction {
	tf := &TransitionFunction{
		table: make(map[Input]Output, len(b.rules)),
	}

	for _, rule := range b.rules {
		tf.table[rule.Input] = rule.Output
	}

	return tf
}

// Check returns an ErrDuplicate for every rule whose input was declared by
// an earlier rule, joined together.
func (b *Builder) Check() (err error) {
	first := make(map[Input]int, len(b.rules))

	var errs []error
	for n, rule := range b.rules {
		prev, ok := first[rule.Input]
		if !ok {
			first[rule.Input] = n
			continue
		}
		errs = append(errs, &ErrDuplicate{
			Index:    n,
			Previous: b.rules[prev],
			Rule:     rule,
		})
	}

	err = errors.Join(errs...)
	return
}

// States returns the non-halt states in order of first appearance, as
// either the current or next state of a rule.
func (b *Builder) States() (states []State) {
	seen := map[State]bool{}
	add := func(s State) {
		if s.IsHalt() || seen[s] {
			return
		}
		seen[s] = true
		states = append(states, s)
	}

	for _, rule := range b.rules {
		add(rule.Input.State)
		add(rule.Output.State)
	}

	return
}

// Symbols returns the symbols read or printed by the rules, in order of
// first appearance.
func (b *Builder) Symbols() (symbols []Symbol) {
	seen := map[Symbol]bool{}
	add := func(s Symbol) {
		if seen[s] {
			return
		}
		seen[s] = true
		symbols = append(symbols, s)
	}

	for _, rule := range b.rules {
		add(rule.Input.Symbol)
		if rule.Write.Op == WRITE_PRINT {
			add(rule.Write.Symbol)
		}
	}

	return
}
