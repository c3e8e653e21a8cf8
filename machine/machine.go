// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

// Machine is the control unit: a current state and a shared transition
// function.
type Machine struct {
	State State // Current state.

	function *TransitionFunction
}

// NewMachine creates a machine in the initial state.
func NewMachine(initial State, function *TransitionFunction) (m *Machine) {
	m = &Machine{
		State:    initial,
		function: function,
	}

	return
}

// Function returns the transition function of the machine.
func (m *Machine) Function() *TransitionFunction {
	return m.function
}

// Halted returns true once the machine has reached the halt state.
func (m *Machine) Halted() bool {
	return m.State.IsHalt()
}

// Tick performs a single decision for the scanned symbol.
//
// A halted machine returns NoWrite() and MOVE_NONE without consulting the
// transition function. On error the state is unchanged.
func (m *Machine) Tick(scanned Symbol) (write Write, action Action, err error) {
	if m.Halted() {
		return NoWrite(), MOVE_NONE, nil
	}

	out, err := m.function.Act(m.State, scanned)
	if err != nil {
		return
	}

	m.State = out.State
	write = out.Write
	action = out.Action

	return
}
