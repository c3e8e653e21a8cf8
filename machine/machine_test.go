package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMachine_Tick(t *testing.T) {
	assert := assert.New(t)

	a, b := MakeState(0), MakeState(1)
	s1 := MakeSymbol(1)

	builder := &Builder{}
	builder.Add(a, Blank(), Print(s1), MOVE_RIGHT, b)
	builder.Add(b, Blank(), Print(s1), MOVE_LEFT, Halt())

	m := NewMachine(a, builder.Build())
	assert.False(m.Halted())
	assert.Equal(2, m.Function().Len())

	write, action, err := m.Tick(Blank())
	assert.NoError(err)
	assert.Equal(Print(s1), write)
	assert.Equal(MOVE_RIGHT, action)
	assert.Equal(b, m.State)

	write, action, err = m.Tick(Blank())
	assert.NoError(err)
	assert.Equal(Print(s1), write)
	assert.Equal(MOVE_LEFT, action)
	assert.True(m.Halted())
}

func TestMachine_Tick_Halted(t *testing.T) {
	assert := assert.New(t)

	// No transition function at all: a halted machine must not consult it.
	m := NewMachine(Halt(), nil)
	assert.True(m.Halted())

	for range 5 {
		write, action, err := m.Tick(MakeSymbol(1))
		assert.NoError(err)
		assert.Equal(NoWrite(), write)
		assert.Equal(MOVE_NONE, action)
		assert.True(m.Halted())
	}
}

func TestMachine_Tick_Undefined(t *testing.T) {
	assert := assert.New(t)

	a := MakeState(3)
	builder := &Builder{}
	builder.Add(a, Blank(), Print(MakeSymbol(1)), MOVE_RIGHT, a)

	m := NewMachine(a, builder.Build())
	write, action, err := m.Tick(MakeSymbol(7))
	assert.Error(err)
	assert.Equal(NoWrite(), write)
	assert.Equal(MOVE_NONE, action)

	var undefined ErrUndefined
	assert.True(errors.As(err, &undefined))
	assert.Equal(ErrUndefined{State: a, Symbol: MakeSymbol(7)}, undefined)

	// No partial mutation on failure.
	assert.Equal(a, m.State)
}
