package universe

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/tape"
)

var (
	blank = machine.Blank()
	s1    = machine.MakeSymbol(1)

	sA = machine.MakeState(0)
	sB = machine.MakeState(1)
	sC = machine.MakeState(2)
	sH = machine.Halt()
)

// threeStateBeaver is the 3-state, 2-symbol busy beaver that halts after
// 13 steps with six 1s on the tape.
func threeStateBeaver() *machine.TransitionFunction {
	builder := &machine.Builder{}
	builder.Add(sA, blank, machine.Print(s1), machine.MOVE_RIGHT, sB)
	builder.Add(sA, s1, machine.Print(s1), machine.MOVE_LEFT, sC)
	builder.Add(sB, blank, machine.Print(s1), machine.MOVE_LEFT, sA)
	builder.Add(sB, s1, machine.Print(s1), machine.MOVE_RIGHT, sB)
	builder.Add(sC, blank, machine.Print(s1), machine.MOVE_LEFT, sB)
	builder.Add(sC, s1, machine.Print(s1), machine.MOVE_NONE, sH)
	return builder.Build()
}

func TestUniverse_New(t *testing.T) {
	assert := assert.New(t)

	u := NewUniverse([]machine.Symbol{s1, blank, s1}, 2, sA, threeStateBeaver())
	assert.Equal(2, u.Head)
	assert.Equal(sA, u.State())
	assert.Equal(blank, u.Scanned())
	assert.Equal(s1, u.Tape.Read(1))
	assert.Equal(s1, u.Tape.Read(3))
	assert.Equal("_1_1", u.Tape.String())
	assert.Equal(0, u.Ticks)
	assert.False(u.Halted())
}

func TestUniverse_ThreeStateBeaver(t *testing.T) {
	assert := assert.New(t)

	u := NewUniverse(nil, 1, sA, threeStateBeaver())

	steps := 0
	for !u.Halted() {
		_, _, err := u.Tick()
		require.NoError(t, err)
		steps++
		require.LessOrEqual(t, steps, 100)
	}

	assert.Equal(13, steps)
	assert.Equal(13, u.Ticks)
	assert.Equal([]machine.Symbol{s1, s1, s1, s1, s1, s1}, u.Tape.Trimmed())
	assert.Equal("111111", tape.Join(u.Tape.Trimmed()))
	assert.True(u.Tape.Equal(tape.NewTape(s1, s1, s1, s1, s1, s1)))
	assert.Equal(1, u.Head)
}

func TestUniverse_HaltIdempotent(t *testing.T) {
	assert := assert.New(t)

	u := NewUniverse([]machine.Symbol{s1}, 1, sH, nil)
	before := u.Tape.Clone()

	for range 10 {
		write, action, err := u.Tick()
		assert.NoError(err)
		assert.Equal(machine.NoWrite(), write)
		assert.Equal(machine.MOVE_NONE, action)
	}

	assert.Equal(1, u.Head)
	assert.Equal(0, u.Ticks)
	assert.Equal(before.AllSymbols(), u.Tape.AllSymbols())
}

func TestUniverse_HeadMovement(t *testing.T) {
	s := machine.MakeState(0)

	tests := []struct {
		name   string
		action machine.Action
		delta  int
	}{
		{"left", machine.MOVE_LEFT, -1},
		{"right", machine.MOVE_RIGHT, 1},
		{"none", machine.MOVE_NONE, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)

			builder := &machine.Builder{}
			builder.Add(s, blank, machine.Print(s1), test.action, s)
			builder.Add(s, s1, machine.NoWrite(), test.action, s)

			for _, head := range []int{-5, 0, 1, 7} {
				u := NewUniverse(nil, head, s, builder.Build())
				write, action, err := u.Tick()
				assert.NoError(err)
				assert.Equal(machine.Print(s1), write)
				assert.Equal(test.action, action)
				assert.Equal(head+test.delta, u.Head)
				assert.Equal(s1, u.Tape.Read(head))
			}
		})
	}
}

func TestUniverse_Undefined(t *testing.T) {
	assert := assert.New(t)

	builder := &machine.Builder{}
	builder.Add(sA, blank, machine.Print(s1), machine.MOVE_RIGHT, sB)

	u := NewUniverse(nil, 1, sA, builder.Build())
	_, _, err := u.Tick()
	assert.NoError(err)

	_, _, err = u.Tick()
	assert.Error(err)
	assert.True(errors.Is(err, machine.ErrTransitionUndefined))

	var tick *ErrTick
	assert.True(errors.As(err, &tick))
	assert.Equal(1, tick.Tick)
	assert.Equal(2, tick.Head)

	var undefined machine.ErrUndefined
	assert.True(errors.As(err, &undefined))
	assert.Equal(sB, undefined.State)
	assert.Equal(blank, undefined.Symbol)

	// Nothing moved.
	assert.Equal(2, u.Head)
	assert.Equal(sB, u.State())
	assert.Equal(1, u.Ticks)
	assert.Equal("_1", u.Tape.String())
}

func TestUniverse_Log(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	u := NewUniverse(nil, 1, sA, threeStateBeaver())
	u.Log = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, _, err := u.Tick()
	assert.NoError(err)
	assert.Contains(buf.String(), "msg=tick")
	assert.Contains(buf.String(), "write=W(1)")
	assert.Contains(buf.String(), "action=R")
	assert.Contains(buf.String(), "state=1")
}
