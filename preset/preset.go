// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package preset is the catalog of built-in programs.
package preset

import (
	"errors"
	"maps"
	"slices"

	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/program"
	"github.com/ezrec/turing/translate"
)

var f = translate.From

var (
	ErrUnknown = errors.New(f("unknown preset"))
)

// ErrPreset names the preset that could not be found.
type ErrPreset string

func (err ErrPreset) Error() string {
	return f("unknown preset: %v", string(err))
}

func (err ErrPreset) Unwrap() error {
	return ErrUnknown
}

var catalog = map[string](func() *program.Program){
	"beaver_1":  OneStateBusyBeaver,
	"beaver_2":  TwoStateBusyBeaver,
	"beaver_3":  ThreeStateBusyBeaver,
	"beaver_3b": ThreeStateBusyBeaverB,
	"beaver_4":  FourStateBusyBeaver,
	"beaver_5":  FiveStateBusyBeaver,
	"counter_2": BinaryCounter,
}

// Names returns the preset names, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(catalog))
}

// Lookup returns a new copy of the named preset.
func Lookup(name string) (prog *program.Program, err error) {
	fn, ok := catalog[name]
	if !ok {
		err = ErrPreset(name)
		return
	}

	prog = fn()
	return
}

// Letter states A, B, C, ... as used in the busy beaver literature.
var (
	sA = machine.MakeState(0)
	sB = machine.MakeState(1)
	sC = machine.MakeState(2)
	sD = machine.MakeState(3)
	sE = machine.MakeState(4)
	sH = machine.Halt()
)

// letters names the first count letter states.
func letters(count int) (names map[machine.State]string) {
	names = make(map[machine.State]string, count)
	for n := range count {
		names[machine.MakeState(uint(n))] = string(rune('A' + n))
	}
	return
}
