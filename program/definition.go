// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"strconv"
	"strings"

	"github.com/ezrec/turing/machine"
)

// Options control how a definition is compiled.
type Options struct {
	Strict bool // If set, duplicated (state, read) rules are an error.
}

// Definition is the textual form of a program, as found in definition
// files.
type Definition struct {
	Name    string    `yaml:"name"`
	Initial string    `yaml:"initial"`
	Head    int       `yaml:"head"`
	Tape    string    `yaml:"tape"`
	Rules   []RuleDef `yaml:"rules"`
}

// RuleDef is the textual form of a single rule.
type RuleDef struct {
	State string `yaml:"state"`
	Read  string `yaml:"read"`
	Write string `yaml:"write"`
	Move  string `yaml:"move"`
	Next  string `yaml:"next"`

	Line int `yaml:"-"` // Source line, if known.
}

// ParseSymbol parses a symbol glyph: "_" (or empty) for blank, otherwise a
// non-negative integer.
func ParseSymbol(text string) (symbol machine.Symbol, err error) {
	text = strings.TrimSpace(text)
	if text == "" || text == machine.BLANK_GLYPH {
		return
	}

	id, err := strconv.ParseUint(text, 10, 0)
	if err != nil {
		err = ErrSymbol(text)
		return
	}

	symbol = machine.MakeSymbol(uint(id))
	return
}

// ParseTape parses a tape glyph string. Without whitespace every character
// is one symbol; with whitespace every field is one symbol.
func ParseTape(text string) (symbols []machine.Symbol, err error) {
	fields := strings.Fields(text)
	if len(fields) == 1 {
		fields = strings.Split(fields[0], "")
	}

	for _, field := range fields {
		var symbol machine.Symbol
		symbol, err = ParseSymbol(field)
		if err != nil {
			return
		}
		symbols = append(symbols, symbol)
	}

	return
}

// ParseWrite parses a write glyph: "E" to erase, "N" (or empty) for no
// effect, otherwise a symbol to print, optionally as "W(symbol)".
func ParseWrite(text string) (write machine.Write, err error) {
	text = strings.TrimSpace(text)
	switch strings.ToUpper(text) {
	case "", "N", "NONE":
		write = machine.NoWrite()
		return
	case "E", "ERASE":
		write = machine.Erase()
		return
	}

	glyph := text
	if strings.HasPrefix(glyph, "W(") && strings.HasSuffix(glyph, ")") {
		glyph = glyph[2 : len(glyph)-1]
	}

	symbol, err := ParseSymbol(glyph)
	if err != nil {
		err = ErrWrite(text)
		return
	}

	write = machine.Print(symbol)
	return
}

// ParseMove parses a move glyph: "L", "R" or "N".
func ParseMove(text string) (action machine.Action, err error) {
	switch strings.ToUpper(strings.TrimSpace(text)) {
	case "L", "LEFT":
		action = machine.MOVE_LEFT
	case "R", "RIGHT":
		action = machine.MOVE_RIGHT
	case "N", "NONE", "":
		action = machine.MOVE_NONE
	default:
		err = ErrMove(text)
	}

	return
}

// isHalt returns true for state names denoting the halt state.
func isHalt(name string) bool {
	return name == machine.HALT_GLYPH || strings.EqualFold(name, "halt")
}

// compiler assigns state identifiers in order of first appearance.
type compiler struct {
	ids   map[string]machine.State
	names map[machine.State]string
}

func (c *compiler) state(name string) (state machine.State, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		err = ErrStateMissing
		return
	}
	if isHalt(name) {
		state = machine.Halt()
		return
	}

	state, ok := c.ids[name]
	if ok {
		return
	}

	state = machine.MakeState(uint(len(c.ids)))
	c.ids[name] = state
	c.names[state] = name

	return
}

// Compile turns a definition into a program. Errors are reported as
// *ErrSyntax against source.
func (def *Definition) Compile(source string, opts Options) (prog *Program, err error) {
	var line int
	defer func() {
		if err != nil {
			err = &ErrSyntax{Source: source, Line: line, Err: err}
			prog = nil
		}
	}()

	c := &compiler{
		ids:   map[string]machine.State{},
		names: map[machine.State]string{},
	}

	if strings.TrimSpace(def.Initial) == "" {
		err = ErrInitialState
		return
	}

	initial, err := c.state(def.Initial)
	if err != nil {
		return
	}

	symbols, err := ParseTape(def.Tape)
	if err != nil {
		return
	}

	if len(def.Rules) == 0 {
		err = ErrRulesMissing
		return
	}

	builder := &machine.Builder{}
	for _, rule := range def.Rules {
		line = rule.Line

		var state, next machine.State
		var read machine.Symbol
		var write machine.Write
		var move machine.Action

		state, err = c.state(rule.State)
		if err != nil {
			return
		}
		read, err = ParseSymbol(rule.Read)
		if err != nil {
			return
		}
		write, err = ParseWrite(rule.Write)
		if err != nil {
			return
		}
		move, err = ParseMove(rule.Move)
		if err != nil {
			return
		}
		next, err = c.state(rule.Next)
		if err != nil {
			return
		}

		builder.Add(state, read, write, move, next)
	}
	line = 0

	if opts.Strict {
		err = builder.Check()
		if err != nil {
			return
		}
	}

	prog = &Program{
		Name:    def.Name,
		Head:    def.Head,
		Initial: initial,
		Tape:    symbols,
		Names:   c.names,
		Builder: builder,
	}

	return
}
