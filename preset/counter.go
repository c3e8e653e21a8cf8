package preset

import (
	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/program"
)

// BinaryCounter counts upwards in binary to the left of the origin, and
// never halts.
func BinaryCounter() *program.Program {
	se := machine.Blank()
	c0 := machine.MakeSymbol(0)
	c1 := machine.MakeSymbol(1)

	write := machine.MakeState(1)
	ret := machine.MakeState(2)

	builder := &machine.Builder{}
	builder.Add(write, se, p(c1), R, ret)
	builder.Add(write, c0, p(c1), R, ret)
	builder.Add(write, c1, p(c0), L, write)

	builder.Add(ret, se, machine.NoWrite(), L, write)
	builder.Add(ret, c0, machine.NoWrite(), R, ret)
	builder.Add(ret, c1, machine.NoWrite(), R, ret)

	return &program.Program{
		Name:    "binary counting",
		Head:    0,
		Initial: ret,
		Names: map[machine.State]string{
			write: "write",
			ret:   "return",
		},
		Builder: builder,
	}
}
