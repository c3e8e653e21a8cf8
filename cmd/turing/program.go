// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/ezrec/turing/preset"
	"github.com/ezrec/turing/program"
	"github.com/ezrec/turing/translate"
)

var f = translate.From

var (
	ErrNoProgram   = errors.New(f("one of --preset or --file is required"))
	ErrTwoPrograms = errors.New(f("--preset and --file are exclusive"))
)

// addProgramFlags adds the flags that select a program.
func addProgramFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("preset", "p", "", "Built-in program to use (see 'turing list')")
	cmd.Flags().StringP("file", "f", "", "Definition file to load (.yaml, .yml or .star)")
	cmd.Flags().Bool("strict", false, "Reject duplicate (state, symbol) rules")
}

// loadProgram returns the program selected by the --preset or --file flags.
func loadProgram(cmd *cobra.Command) (prog *program.Program, err error) {
	name, _ := cmd.Flags().GetString("preset")
	path, _ := cmd.Flags().GetString("file")
	strict, _ := cmd.Flags().GetBool("strict")

	switch {
	case len(name) != 0 && len(path) != 0:
		err = ErrTwoPrograms
	case len(name) != 0:
		prog, err = preset.Lookup(name)
		if err == nil && strict {
			err = prog.Check()
		}
	case len(path) != 0:
		prog, err = program.Load(path, program.Options{Strict: strict})
	default:
		err = ErrNoProgram
	}

	return
}
