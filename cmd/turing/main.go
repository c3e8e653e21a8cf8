// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command turing runs single-tape Turing machines.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
