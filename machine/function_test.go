package machine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_Added(t *testing.T) {
	assert := assert.New(t)

	a, b := MakeState(0), MakeState(1)
	s1 := MakeSymbol(1)

	builder := &Builder{}
	builder.Add(a, Blank(), Print(s1), MOVE_RIGHT, b)
	builder.Add(b, Blank(), Print(s1), MOVE_LEFT, Halt())

	rules := builder.Added()
	assert.Equal(2, builder.Len())
	assert.Equal(2, len(rules))
	assert.Equal(Input{State: a, Symbol: Blank()}, rules[0].Input)
	assert.Equal(Output{Write: Print(s1), Action: MOVE_LEFT, State: Halt()}, rules[1].Output)
	assert.Equal("(0, _) -> (W(1), R, 1)", rules[0].String())
	assert.Equal("(1, _) -> (W(1), L, !)", rules[1].String())

	// Added returns a copy.
	rules[0].Output.State = Halt()
	assert.Equal(b, builder.Added()[0].Output.State)
}

func TestTransitionFunction_Act(t *testing.T) {
	assert := assert.New(t)

	a, b := MakeState(0), MakeState(1)
	s1 := MakeSymbol(1)

	builder := &Builder{}
	builder.Add(a, Blank(), Print(s1), MOVE_RIGHT, b)
	builder.Add(a, s1, Erase(), MOVE_LEFT, a)
	builder.Add(b, s1, NoWrite(), MOVE_NONE, Halt())

	tf := builder.Build()
	assert.Equal(3, tf.Len())

	for _, rule := range builder.Added() {
		out, err := tf.Act(rule.Input.State, rule.Input.Symbol)
		assert.NoError(err)
		assert.Equal(rule.Output, out)
	}

	_, err := tf.Act(b, Blank())
	assert.Error(err)
	assert.True(errors.Is(err, ErrTransitionUndefined))

	var undefined ErrUndefined
	assert.True(errors.As(err, &undefined))
	assert.Equal(b, undefined.State)
	assert.Equal(Blank(), undefined.Symbol)
	assert.Equal("1, _ -> ?", err.Error())
}

func TestTransitionFunction_Duplicate(t *testing.T) {
	assert := assert.New(t)

	a := MakeState(0)
	s1 := MakeSymbol(1)
	s2 := MakeSymbol(2)

	builder := &Builder{}
	builder.Add(a, Blank(), Print(s1), MOVE_RIGHT, a)
	builder.Add(a, s1, Print(s1), MOVE_RIGHT, a)
	builder.Add(a, Blank(), Print(s2), MOVE_LEFT, Halt())

	tf := builder.Build()
	assert.Equal(2, tf.Len())

	out, err := tf.Act(a, Blank())
	assert.NoError(err)
	assert.Equal(Output{Write: Print(s2), Action: MOVE_LEFT, State: Halt()}, out)

	// Declaration order is preserved.
	assert.Equal(3, len(builder.Added()))

	err = builder.Check()
	assert.Error(err)
	assert.True(errors.Is(err, ErrTransitionDuplicate))

	var dup *ErrDuplicate
	assert.True(errors.As(err, &dup))
	assert.Equal(2, dup.Index)
	assert.Equal(builder.Added()[0], dup.Previous)
	assert.Equal(builder.Added()[2], dup.Rule)
}

func TestBuilder_Check_Clean(t *testing.T) {
	assert := assert.New(t)

	builder := &Builder{}
	builder.Add(MakeState(0), Blank(), Print(MakeSymbol(1)), MOVE_RIGHT, Halt())
	builder.Add(MakeState(0), MakeSymbol(1), Print(MakeSymbol(1)), MOVE_RIGHT, Halt())
	assert.NoError(builder.Check())

	assert.NoError((&Builder{}).Check())
}

func TestTransitionFunction_Empty(t *testing.T) {
	assert := assert.New(t)

	var tf *TransitionFunction
	assert.Equal(0, tf.Len())
	_, err := tf.Act(MakeState(0), Blank())
	assert.ErrorIs(err, ErrTransitionUndefined)

	tf = (&Builder{}).Build()
	_, err = tf.Act(MakeState(0), Blank())
	assert.ErrorIs(err, ErrTransitionUndefined)
}

func TestBuilder_StatesSymbols(t *testing.T) {
	assert := assert.New(t)

	w, r := MakeState(1), MakeState(2)
	s0, s1 := MakeSymbol(0), MakeSymbol(1)

	builder := &Builder{}
	builder.Add(w, Blank(), Print(s1), MOVE_RIGHT, r)
	builder.Add(w, s0, Print(s1), MOVE_RIGHT, r)
	builder.Add(w, s1, Print(s0), MOVE_LEFT, w)
	builder.Add(r, Blank(), NoWrite(), MOVE_LEFT, Halt())

	assert.Equal([]State{w, r}, builder.States())
	assert.Equal([]Symbol{Blank(), s1, s0}, builder.Symbols())
}
