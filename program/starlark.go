// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package program

import (
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predeclared starlark values for definitions.
var starlarkGlyphs = starlark.StringDict{
	"HALT":  starlark.String("!"),
	"BLANK": starlark.String("_"),
	"ERASE": starlark.String("E"),
	"NONE":  starlark.String("N"),
	"L":     starlark.String("L"),
	"R":     starlark.String("R"),
	"N":     starlark.String("N"),
}

// glyph converts a starlark argument to definition text.
func glyph(value starlark.Value) (text string, err error) {
	switch v := value.(type) {
	case starlark.String:
		text = string(v)
	case starlark.Int:
		text = v.String()
	case starlark.NoneType:
		text = ""
	default:
		err = ErrStarlarkValue
	}

	return
}

// callerLine returns the line of the starlark statement calling a builtin.
func callerLine(thread *starlark.Thread) int {
	if thread.CallStackDepth() < 2 {
		return 0
	}
	return int(thread.CallFrame(1).Pos.Line)
}

// ParseStarlark executes a starlark definition. The script declares the
// machine with the machine() and rule() builtins:
//
//	machine(name = "counter", initial = "write", head = 0)
//	for read, write, move in [(BLANK, 1, R), (0, 1, R), (1, 0, L)]:
//	    rule("write", read, write, move, "write" if move == L else "return")
func ParseStarlark(source string, input io.Reader, opts Options) (prog *Program, err error) {
	var def Definition
	declared := false

	machineFn := func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if declared {
			return nil, ErrMachineRedef
		}
		declared = true

		var initial starlark.Value = starlark.None
		var tape starlark.Value = starlark.None
		err := starlark.UnpackArgs(fn.Name(), args, kwargs,
			"name?", &def.Name,
			"initial?", &initial,
			"head?", &def.Head,
			"tape?", &tape,
		)
		if err != nil {
			return nil, err
		}
		def.Initial, err = glyph(initial)
		if err != nil {
			return nil, err
		}
		def.Tape, err = glyph(tape)
		if err != nil {
			return nil, err
		}
		return starlark.None, nil
	}

	ruleFn := func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var values [5]starlark.Value
		err := starlark.UnpackArgs(fn.Name(), args, kwargs,
			"state", &values[0],
			"read", &values[1],
			"write", &values[2],
			"move", &values[3],
			"next", &values[4],
		)
		if err != nil {
			return nil, ErrRuleArgs
		}

		var texts [5]string
		for n, value := range values {
			texts[n], err = glyph(value)
			if err != nil {
				return nil, err
			}
		}

		def.Rules = append(def.Rules, RuleDef{
			State: texts[0],
			Read:  texts[1],
			Write: texts[2],
			Move:  texts[3],
			Next:  texts[4],
			Line:  callerLine(thread),
		})
		return starlark.None, nil
	}

	predeclared := starlark.StringDict{
		"machine": starlark.NewBuiltin("machine", machineFn),
		"rule":    starlark.NewBuiltin("rule", ruleFn),
	}
	for key, value := range starlarkGlyphs {
		predeclared[key] = value
	}

	thread := &starlark.Thread{Name: source}
	opts_file := syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
	}

	_, err = starlark.ExecFileOptions(&opts_file, thread, source, input, predeclared)
	if err != nil {
		err = &ErrSyntax{Source: source, Err: err}
		return
	}

	return def.Compile(source, opts)
}
