// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/turing/program"
)

func newCheckCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "check FILE...",
		Short: "Parse definition files and report duplicate rules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			for _, path := range args {
				var prog *program.Program
				prog, err = program.Load(path, program.Options{Strict: true})
				if err != nil {
					return
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%v: ok (%d rules, %d states, %d symbols)\n",
					path, prog.Builder.Len(), len(prog.States()), len(prog.Symbols()))
			}
			return
		},
	}

	return
}
