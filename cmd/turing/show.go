// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"github.com/spf13/cobra"
)

func newShowCmd() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "show",
		Short: "Print a program's symbols, states and transition function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loadProgram(cmd)
			if err != nil {
				return err
			}

			p := newPrinter(cmd, cmd.OutOrStdout(), prog)
			p.Header()
			return nil
		},
	}

	addProgramFlags(cmd)
	return
}
