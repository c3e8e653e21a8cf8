// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package machine

import (
	"fmt"
)

// Action moves the head after a cell has been written.
type Action int

const (
	MOVE_NONE  = Action(0) // Leave the head in place.
	MOVE_LEFT  = Action(1) // Decrement the head position.
	MOVE_RIGHT = Action(2) // Increment the head position.
)

// Offset returns the change in head position for the action.
func (a Action) Offset() int {
	switch a {
	case MOVE_LEFT:
		return -1
	case MOVE_RIGHT:
		return 1
	default:
		return 0
	}
}

func (a Action) String() string {
	switch a {
	case MOVE_LEFT:
		return "L"
	case MOVE_RIGHT:
		return "R"
	case MOVE_NONE:
		return "N"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// WriteOp selects what a Write does to the scanned cell.
type WriteOp int

const (
	WRITE_NONE  = WriteOp(0) // Leave the cell untouched.
	WRITE_PRINT = WriteOp(1) // Store a symbol in the cell.
	WRITE_ERASE = WriteOp(2) // Delete the cell.
)

// Write is the cell mutation half of a transition. The zero Write has no
// effect.
type Write struct {
	Op     WriteOp
	Symbol Symbol // Symbol stored by WRITE_PRINT.
}

// Print returns a Write storing symbol.
func Print(symbol Symbol) Write {
	return Write{Op: WRITE_PRINT, Symbol: symbol}
}

// Erase returns a Write deleting the scanned cell.
func Erase() Write {
	return Write{Op: WRITE_ERASE}
}

// NoWrite returns a Write with no effect.
func NoWrite() Write {
	return Write{}
}

func (w Write) String() string {
	switch w.Op {
	case WRITE_PRINT:
		return fmt.Sprintf("W(%v)", w.Symbol)
	case WRITE_ERASE:
		return "E"
	case WRITE_NONE:
		return "N"
	default:
		return fmt.Sprintf("Write(%d)", int(w.Op))
	}
}
