package program

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/turing/machine"
	"github.com/ezrec/turing/tape"
)

const counterStar = `
machine(name = "binary counting", initial = "return", head = 0)

for read, write, move in [(BLANK, 1, R), (0, 1, R), (1, 0, L)]:
    rule("write", read, write, move, "write" if move == L else "return")

for read in [BLANK, 0, 1]:
    rule("return", read, NONE, L if read == BLANK else R, "write" if read == BLANK else "return")
`

func TestParseStarlark(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseStarlark("counter.star", strings.NewReader(counterStar), Options{Strict: true})
	require.NoError(t, err)

	assert.Equal("binary counting", prog.Name)
	assert.Equal(0, prog.Head)
	assert.Equal("return", prog.StateName(prog.Initial))
	assert.Equal(6, prog.Builder.Len())

	rules := prog.Builder.Added()
	assert.Equal("write", prog.StateName(rules[0].Input.State))
	assert.Equal(machine.Blank(), rules[0].Input.Symbol)
	assert.Equal(machine.Print(machine.MakeSymbol(1)), rules[0].Write)
	assert.Equal(machine.MOVE_LEFT, rules[2].Action)
	assert.Equal(machine.NoWrite(), rules[3].Write)

	// Count to five.
	u := prog.Universe()
	var counts []string
	for range 200 {
		before := u.State()
		_, _, err := u.Tick()
		require.NoError(t, err)
		if prog.StateName(before) == "write" && prog.StateName(u.State()) == "return" {
			counts = append(counts, tape.Join(u.Tape.Trimmed()))
		}
		if len(counts) == 5 {
			break
		}
	}
	assert.Equal([]string{"1", "10", "11", "100", "101"}, counts)
}

func TestParseStarlark_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseStarlark("bad.star", strings.NewReader("machine(initial = \"A\")\nmachine()\n"), Options{})
	assert.ErrorIs(err, ErrMachineRedef)

	_, err = ParseStarlark("bad.star", strings.NewReader("rule(\"A\")\n"), Options{})
	assert.ErrorIs(err, ErrRuleArgs)

	_, err = ParseStarlark("bad.star", strings.NewReader("rule(\"A\", [], 1, R, HALT)\n"), Options{})
	assert.ErrorIs(err, ErrStarlarkValue)

	_, err = ParseStarlark("bad.star", strings.NewReader("this is not starlark\n"), Options{})
	var syntax *ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal("bad.star", syntax.Source)

	text := "machine(initial = \"A\")\nrule(\"A\", BLANK, 1, R, HALT)\nrule(\"A\", 7, \"Z\", R, HALT)\n"
	_, err = ParseStarlark("bad.star", strings.NewReader(text), Options{})
	assert.ErrorIs(err, ErrWrite("Z"))
	assert.True(errors.As(err, &syntax))
	assert.Equal(3, syntax.Line)
}
