// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set at link time with -ldflags "-X main.Version=...".
var Version = ""

func version() string {
	if len(Version) != 0 {
		return Version
	}

	info, ok := debug.ReadBuildInfo()
	if ok && len(info.Main.Version) != 0 {
		return info.Main.Version
	}

	return "(devel)"
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of turing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "turing version %s\n", version())
		},
	}
}
