// Package machine implements the control unit of a single-tape Turing
// machine.
//
// A Machine holds the current State and a compiled TransitionFunction. Each
// Tick takes the Symbol under the head and returns the Write to apply to the
// cell and the Action to apply to the head. The distinguished halt State is
// absorbing: a halted Machine answers every Tick with a no-op and never
// consults its table again.
//
// Transition functions are assembled with a Builder, which keeps the rules in
// declaration order for listings and compiles them into a lookup table.
package machine
