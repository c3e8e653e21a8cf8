// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package preset

import (
	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/program"
)

// Two symbol busy beavers use blank for 0.
var (
	s0 = machine.Blank()
	s1 = machine.MakeSymbol(1)
)

const (
	L = machine.MOVE_LEFT
	R = machine.MOVE_RIGHT
	N = machine.MOVE_NONE
)

// p is shorthand for printing a symbol.
func p(s machine.Symbol) machine.Write {
	return machine.Print(s)
}

// OneStateBusyBeaver halts after 1 step with one 1.
func OneStateBusyBeaver() *program.Program {
	builder := &machine.Builder{}
	builder.Add(sA, s0, p(s1), R, sH)
	builder.Add(sA, s1, p(s1), L, sH)

	return &program.Program{
		Name:    "1-state, 2-symbol busy beaver",
		Head:    0,
		Initial: sA,
		Names:   letters(1),
		Builder: builder,
	}
}

// TwoStateBusyBeaver halts after 6 steps with four 1s.
func TwoStateBusyBeaver() *program.Program {
	builder := &machine.Builder{}
	builder.Add(sA, s0, p(s1), R, sB)
	builder.Add(sA, s1, p(s1), L, sB)

	builder.Add(sB, s0, p(s1), L, sA)
	builder.Add(sB, s1, p(s1), R, sH)

	return &program.Program{
		Name:    "2-state, 2-symbol busy beaver",
		Head:    2,
		Initial: sA,
		Names:   letters(2),
		Builder: builder,
	}
}

// ThreeStateBusyBeaver halts after 14 steps with six 1s.
func ThreeStateBusyBeaver() *program.Program {
	builder := &machine.Builder{}
	builder.Add(sA, s0, p(s1), R, sB)
	builder.Add(sA, s1, p(s1), R, sH)

	builder.Add(sB, s0, p(s0), R, sC)
	builder.Add(sB, s1, p(s1), R, sB)

	builder.Add(sC, s0, p(s1), L, sC)
	builder.Add(sC, s1, p(s1), L, sA)

	return &program.Program{
		Name:    "3-state, 2-symbol busy beaver",
		Head:    1,
		Initial: sA,
		Names:   letters(3),
		Builder: builder,
	}
}

// ThreeStateBusyBeaverB halts after 13 steps with six 1s.
func ThreeStateBusyBeaverB() *program.Program {
	builder := &machine.Builder{}
	builder.Add(sA, s0, p(s1), R, sB)
	builder.Add(sA, s1, p(s1), L, sC)

	builder.Add(sB, s0, p(s1), L, sA)
	builder.Add(sB, s1, p(s1), R, sB)

	builder.Add(sC, s0, p(s1), L, sB)
	builder.Add(sC, s1, p(s1), N, sH)

	return &program.Program{
		Name:    "3-state, 2-symbol busy beaver (13 steps)",
		Head:    1,
		Initial: sA,
		Names:   letters(3),
		Builder: builder,
	}
}

// FourStateBusyBeaver halts after 107 steps with thirteen 1s.
func FourStateBusyBeaver() *program.Program {
	builder := &machine.Builder{}
	builder.Add(sA, s0, p(s1), R, sB)
	builder.Add(sA, s1, p(s1), L, sB)

	builder.Add(sB, s0, p(s1), L, sA)
	builder.Add(sB, s1, p(s0), L, sC)

	builder.Add(sC, s0, p(s1), R, sH)
	builder.Add(sC, s1, p(s1), L, sD)

	builder.Add(sD, s0, p(s1), R, sD)
	builder.Add(sD, s1, p(s0), R, sA)

	return &program.Program{
		Name:    "4-state, 2-symbol busy beaver",
		Head:    9,
		Initial: sA,
		Names:   letters(4),
		Builder: builder,
	}
}

// FiveStateBusyBeaver is the Marxen-Buntrock champion: 47,176,870 steps,
// 4098 1s.
func FiveStateBusyBeaver() *program.Program {
	builder := &machine.Builder{}
	builder.Add(sA, s0, p(s1), R, sB)
	builder.Add(sA, s1, p(s1), L, sC)

	builder.Add(sB, s0, p(s1), R, sC)
	builder.Add(sB, s1, p(s1), R, sB)

	builder.Add(sC, s0, p(s1), R, sD)
	builder.Add(sC, s1, p(s0), L, sE)

	builder.Add(sD, s0, p(s1), L, sA)
	builder.Add(sD, s1, p(s1), L, sD)

	builder.Add(sE, s0, p(s1), R, sH)
	builder.Add(sE, s1, p(s0), L, sA)

	return &program.Program{
		Name:    "5-state, 2-symbol busy beaver",
		Head:    300,
		Initial: sA,
		Names:   letters(5),
		Builder: builder,
	}
}
